package blit

import "errors"

// ErrSizeMismatch is reported by [NewGeneric] when the backing store holds
// fewer elements than width*height, or when a dimension is negative.
var ErrSizeMismatch = errors.New("blit: store smaller than width*height")

// ErrOutOfBounds is reported by the view constructors when the requested
// offset or offset+size does not fit inside the parent buffer.
var ErrOutOfBounds = errors.New("blit: view exceeds parent bounds")
