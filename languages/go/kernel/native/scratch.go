package native

import (
	"sync"

	"github.com/bearlytools/talon/internal/heap"
)

// ScratchSpaceBytes is the size of the shared zero-filled block.
const ScratchSpaceBytes = 64_000

var (
	scratchOnce sync.Once
	scratchMsg  *heap.Message
	scratchBuf  []byte
)

// ScratchSpace holds a zero-initialized block of memory for read-only access
// to unset nested-message fields. Where the other kernel would hand back a
// default message, this engine hands back nothing for an unset field; since
// a contiguous chunk of zero bytes is a legitimate empty message under this
// engine's representation, every such read shares one big zeroed block and
// never needs a nil check.
//
// The block is initialized exactly once, is safe to request from concurrent
// goroutines, and is read-only forever after initialization.
type ScratchSpace struct{}

// ZeroedBlock returns the shared zeroed message block. Every caller observes
// the same block.
func (ScratchSpace) ZeroedBlock() *heap.Message {
	scratchOnce.Do(func() {
		scratchBuf = make([]byte, ScratchSpaceBytes)
		scratchMsg = heap.MessageFromZeroedBlock(scratchBuf)
	})
	return scratchMsg
}

// ZeroedBytes returns the raw shared block. It must never be written.
func (ScratchSpace) ZeroedBytes() []byte {
	ScratchSpace{}.ZeroedBlock()
	return scratchBuf
}
