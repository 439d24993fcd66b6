package arena

import (
	"sync"
)

// Shared read-only containers backing views of absent repeated and map
// fields. They live on a process-lifetime arena that is never freed.
//
// The returned inners must never be mutated. Handing one to a mutator is a
// violation of the aliasing contract with undefined behavior, not an error.
var (
	emptyOnce  sync.Once
	emptyArray RepeatedFieldInner
	emptyMap   MapInner
)

func initEmpty() {
	// This arena backs process-lifetime statics and is never freed.
	a := New()
	// int32 is a placeholder element type; a view of an empty container
	// never reads element storage.
	emptyArray = NewRepeatedField[int32](a).inner
	emptyMap = NewMap[int32, int32](a).inner
}

// EmptyArray returns the shared empty array inner for use in a RepeatedView
// of an unset field.
func EmptyArray() RepeatedFieldInner {
	emptyOnce.Do(initEmpty)
	return emptyArray
}

// EmptyMap returns the shared empty map inner for use in a MapView of an
// unset field.
func EmptyMap() MapInner {
	emptyOnce.Do(initEmpty)
	return emptyMap
}
