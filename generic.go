package blit

import "fmt"

// GenericBuffer is the canonical contiguous buffer: a borrowed flat slice
// addressed row-major with no padding, so the element at (x, y) lives at
// index y*width + x. It does not own, allocate, or resize its store.
type GenericBuffer[T any] struct {
	store  []T
	width  int
	height int
}

// NewGeneric constructs a buffer over store with the given dimensions.
// It returns [ErrSizeMismatch] when the store holds fewer than
// width*height elements or a dimension is negative. Extra trailing
// elements are allowed and never touched.
func NewGeneric[T any](store []T, width, height int) (*GenericBuffer[T], error) {
	if width < 0 || height < 0 || len(store) < width*height {
		return nil, fmt.Errorf("%w: %d elements for %dx%d", ErrSizeMismatch, len(store), width, height)
	}
	return &GenericBuffer[T]{store: store, width: width, height: height}, nil
}

// NewGenericInferred constructs a buffer over store, inferring the height
// as len(store)/width. Trailing elements beyond height full rows are not
// addressable. width must be positive.
func NewGenericInferred[T any](store []T, width int) *GenericBuffer[T] {
	return &GenericBuffer[T]{store: store, width: width, height: len(store) / width}
}

// Width returns the buffer width.
func (b *GenericBuffer[T]) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *GenericBuffer[T]) Height() int {
	return b.height
}

// Data returns the backing slice. Elements are laid out row-major.
func (b *GenericBuffer[T]) Data() []T {
	return b.store
}

// Get returns the element at (x, y).
func (b *GenericBuffer[T]) Get(x, y int) T {
	return b.store[y*b.width+x]
}

// Set replaces the element at (x, y).
func (b *GenericBuffer[T]) Set(x, y int, v T) {
	b.store[y*b.width+x] = v
}

// Fill sets every element of the buffer to v.
func (b *GenericBuffer[T]) Fill(v T) {
	n := b.width * b.height
	for i := 0; i < n; i++ {
		b.store[i] = v
	}
}
