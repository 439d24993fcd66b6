// Package compress provides compression support for serialized talon
// payloads. It includes built-in compressors for snappy and zstd and
// supports custom compressor registration. Compressors operate on the byte
// view of a kernel's SerializedData; they never take ownership of it.
package compress

import (
	"fmt"

	"github.com/gostdlib/base/concurrency/sync"
)

// Compression identifies a compression algorithm.
type Compression uint8

const (
	// CmpNone indicates no compression.
	CmpNone Compression = 0
	// CmpGzip indicates gzip compression.
	CmpGzip Compression = 1
	// CmpSnappy indicates Snappy compression.
	CmpSnappy Compression = 2
	// CmpZstd indicates Zstandard compression.
	CmpZstd Compression = 3
)

// Compressor defines the interface for compression algorithms.
type Compressor interface {
	// Compress compresses data. Returns compressed data or error.
	Compress(data []byte) ([]byte, error)

	// Decompress decompresses data. Returns original data or error.
	Decompress(data []byte) ([]byte, error)

	// Type returns the compression type.
	Type() Compression
}

var (
	registry   = map[Compression]Compressor{}
	registryMu sync.RWMutex
)

// Register adds a compressor to the registry. This can be used to register
// custom compressors or override built-in compressors. Thread-safe.
func Register(c Compressor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.Type()] = c
}

// Get returns the compressor for the given type, or nil if not found.
func Get(t Compression) Compressor {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[t]
}

// Compress compresses data using the specified algorithm.
// Returns original data unchanged if type is CmpNone or data is empty.
// Returns an error if the compressor is not registered.
func Compress(t Compression, data []byte) ([]byte, error) {
	if t == CmpNone || len(data) == 0 {
		return data, nil
	}
	c := Get(t)
	if c == nil {
		return nil, fmt.Errorf("compressor not registered for type %d", t)
	}
	return c.Compress(data)
}

// Decompress decompresses data using the specified algorithm.
// Returns original data unchanged if type is CmpNone or data is empty.
// Returns an error if the compressor is not registered.
func Decompress(t Compression, data []byte) ([]byte, error) {
	if t == CmpNone || len(data) == 0 {
		return data, nil
	}
	c := Get(t)
	if c == nil {
		return nil, fmt.Errorf("compressor not registered for type %d", t)
	}
	return c.Decompress(data)
}

func init() {
	Register(&Gzip{})
	Register(&Snappy{})
	Register(&Zstd{})
}
