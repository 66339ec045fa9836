package blit

// SolidBuffer is a read-only buffer that reports the same value at every
// coordinate, like a plain-colored rectangle. It is useful as a blit
// source for filling regions without allocating a real store.
type SolidBuffer[T any] struct {
	width  int
	height int
	value  T
}

// NewSolid constructs a solid buffer of the given dimensions and value.
func NewSolid[T any](width, height int, value T) SolidBuffer[T] {
	return SolidBuffer[T]{width: width, height: height, value: value}
}

// Width returns the buffer width.
func (b SolidBuffer[T]) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b SolidBuffer[T]) Height() int {
	return b.height
}

// Get returns the stored value regardless of coordinate.
func (b SolidBuffer[T]) Get(x, y int) T {
	return b.value
}
