// Package blit copies rectangular regions of elements between 2D buffers,
// optionally remapping coordinates through one of the eight dihedral
// symmetries (flips, 90-degree rotations, and rotate+flip combinations).
//
// # Overview
//
// blit is a small, format-agnostic compositing core. It treats every pixel
// as an opaque element of some type T and never interprets, converts, or
// blends values. The library is built around three ideas:
//
//   - a capability contract ([Buffer], [MutableBuffer]) that any 2D
//     container can satisfy,
//   - zero-copy views ([Sub], [Offset] and their mutable variants) that
//     narrow the addressable region of a parent buffer,
//   - a clipping copy engine ([Blit] and friends) that shrinks every
//     request to the largest rectangle that fits both buffers instead of
//     failing.
//
// # Quick Start
//
//	store := make([]uint8, 64*64)
//	dst, _ := blit.NewGeneric(store, 64, 64)
//
//	sprite, _ := blit.NewGeneric(spriteData, 16, 16)
//
//	// Copy the sprite at (10, 10), rotated a quarter turn. The element
//	// type is given explicitly: inference cannot deduce it from a
//	// concrete buffer passed as an interface.
//	blit.Blit[uint8](dst, blit.Pt(10, 10), sprite, blit.Pt(0, 0), blit.Sz(16, 16), blit.Rotate90)
//
// # Clipping
//
// A blit that would read or write out of bounds is silently clipped to the
// largest rectangle that fits, down to an empty no-op. Off-screen sprites
// and partially visible tiles are ordinary cases here, not errors. Callers
// that need strict semantics must validate sizes before calling.
//
// # Errors
//
// Only construction can fail: [NewGeneric] reports [ErrSizeMismatch] when
// the backing store is too small, and the view constructors report
// [ErrOutOfBounds] when a view would exceed its parent. The copy operations
// themselves never return errors.
//
// # Concurrency
//
// The engine holds no state of its own. A call is as safe as the buffers
// passed into it: the destination must not be accessed concurrently for
// the duration of the call, and overlapping source/destination views over
// the same store produce unspecified results.
package blit
