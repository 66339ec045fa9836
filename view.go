package blit

import "fmt"

// SubBuffer is a read-only, zero-copy view of a rectangular region of a
// parent buffer. Every Get translates the coordinate by the view's offset
// and delegates to the parent; the view holds no data of its own and must
// not outlive the parent. Views compose: a view of a view simply
// accumulates the translation, validated at each construction step.
type SubBuffer[T any] struct {
	parent Buffer[T]
	off    Point
	size   Size
}

// MutSubBuffer is the writable counterpart of [SubBuffer]. It can only be
// constructed over a [MutableBuffer], so a writable view of a read-only
// buffer is unrepresentable. While a MutSubBuffer is used for writing, no
// other accessor of the same region may be used.
type MutSubBuffer[T any] struct {
	parent MutableBuffer[T]
	off    Point
	size   Size
}

// checkView validates a view rectangle against parent dimensions.
func checkView(parentW, parentH int, off Point, size Size) error {
	if off.X < 0 || off.Y < 0 || size.W < 0 || size.H < 0 ||
		off.X+size.W > parentW || off.Y+size.H > parentH {
		return fmt.Errorf("%w: offset (%d,%d) size %dx%d in %dx%d parent",
			ErrOutOfBounds, off.X, off.Y, size.W, size.H, parentW, parentH)
	}
	return nil
}

// Sub constructs a read-only view of the size-sized region of parent
// starting at off. It returns [ErrOutOfBounds] when the region does not
// fit inside the parent.
func Sub[T any](parent Buffer[T], off Point, size Size) (*SubBuffer[T], error) {
	if err := checkView(parent.Width(), parent.Height(), off, size); err != nil {
		return nil, err
	}
	return &SubBuffer[T]{parent: parent, off: off, size: size}, nil
}

// Offset constructs a read-only view of everything from off to the
// parent's far corner. It returns [ErrOutOfBounds] when the offset itself
// lies outside the parent.
func Offset[T any](parent Buffer[T], off Point) (*SubBuffer[T], error) {
	size := Size{W: parent.Width() - off.X, H: parent.Height() - off.Y}
	if err := checkView(parent.Width(), parent.Height(), off, size); err != nil {
		return nil, err
	}
	return &SubBuffer[T]{parent: parent, off: off, size: size}, nil
}

// Width returns the view width.
func (b *SubBuffer[T]) Width() int {
	return b.size.W
}

// Height returns the view height.
func (b *SubBuffer[T]) Height() int {
	return b.size.H
}

// Get returns the parent element at the translated coordinate.
func (b *SubBuffer[T]) Get(x, y int) T {
	return b.parent.Get(x+b.off.X, y+b.off.Y)
}

// SubMut constructs a writable view of the size-sized region of parent
// starting at off. It returns [ErrOutOfBounds] when the region does not
// fit inside the parent.
func SubMut[T any](parent MutableBuffer[T], off Point, size Size) (*MutSubBuffer[T], error) {
	if err := checkView(parent.Width(), parent.Height(), off, size); err != nil {
		return nil, err
	}
	return &MutSubBuffer[T]{parent: parent, off: off, size: size}, nil
}

// OffsetMut constructs a writable view of everything from off to the
// parent's far corner. It returns [ErrOutOfBounds] when the offset itself
// lies outside the parent.
func OffsetMut[T any](parent MutableBuffer[T], off Point) (*MutSubBuffer[T], error) {
	size := Size{W: parent.Width() - off.X, H: parent.Height() - off.Y}
	if err := checkView(parent.Width(), parent.Height(), off, size); err != nil {
		return nil, err
	}
	return &MutSubBuffer[T]{parent: parent, off: off, size: size}, nil
}

// Width returns the view width.
func (b *MutSubBuffer[T]) Width() int {
	return b.size.W
}

// Height returns the view height.
func (b *MutSubBuffer[T]) Height() int {
	return b.size.H
}

// Get returns the parent element at the translated coordinate.
func (b *MutSubBuffer[T]) Get(x, y int) T {
	return b.parent.Get(x+b.off.X, y+b.off.Y)
}

// Set replaces the parent element at the translated coordinate.
func (b *MutSubBuffer[T]) Set(x, y int, v T) {
	b.parent.Set(x+b.off.X, y+b.off.Y, v)
}
