package blit

// Buffer is the read capability any 2D element container must provide to
// participate in a blit. Coordinates are zero-based; Get is only ever
// called with 0 <= x < Width() and 0 <= y < Height(). Presenting an
// out-of-range coordinate is a contract violation, not a recoverable
// error, and the blit engine never does so.
//
// Implementations must report accurate dimensions at query time: a
// buffer's dimensions must not change between constructing a view over it
// and using that view.
type Buffer[T any] interface {
	// Width returns the number of addressable columns.
	Width() int
	// Height returns the number of addressable rows.
	Height() int
	// Get returns the element at (x, y).
	Get(x, y int) T
}

// MutableBuffer is a Buffer that can also be written. The same coordinate
// contract applies to Set.
type MutableBuffer[T any] interface {
	Buffer[T]
	// Set replaces the element at (x, y).
	Set(x, y int, v T)
}
