package blit

// Blit copies a size-sized region from src at srcPos into dst at dstPos,
// remapping coordinates through tr. size is the logical (post-transform)
// extent of the copy.
//
// The request is clipped to the largest rectangle that fits both buffers:
// the component-wise minimum of size, the destination room left past
// dstPos, and the transformed source room left past srcPos. A request that
// clips to zero width or height is a no-op. Blit never fails; callers that
// need strict bounds semantics must validate sizes beforehand.
//
// A negative offset component clamps to zero and shrinks the request by
// the overhang, with the retained region anchored at the clamped origin.
//
// If dst and src are views over the same underlying store with overlapping
// physical regions, the result is unspecified.
func Blit[T any](dst MutableBuffer[T], dstPos Point, src Buffer[T], srcPos Point, size Size, tr Transform) {
	blitWith(dst, dstPos, src, srcPos, size, []Transform{tr}, func(x, y int, v T, _ Point) {
		dst.Set(x, y, v)
	})
}

// BlitFull copies the whole of src into dst at dstPos, remapped through
// trs applied in order. An empty trs copies as-is. The same clipping rules
// as [Blit] apply, with the requested size being the source size folded
// through the transform chain.
func BlitFull[T any](dst MutableBuffer[T], dstPos Point, src Buffer[T], trs ...Transform) {
	size := Size{W: src.Width(), H: src.Height()}
	for _, tr := range trs {
		size = tr.Size(size)
	}
	blitWith(dst, dstPos, src, Point{}, size, trs, func(x, y int, v T, _ Point) {
		dst.Set(x, y, v)
	})
}

// BlitMasked is [Blit] with a transparency key: source elements equal to
// mask are skipped, leaving the destination element untouched.
func BlitMasked[T comparable](dst MutableBuffer[T], dstPos Point, src Buffer[T], srcPos Point, size Size, mask T, tr Transform) {
	blitWith(dst, dstPos, src, srcPos, size, []Transform{tr}, func(x, y int, v T, _ Point) {
		if v != mask {
			dst.Set(x, y, v)
		}
	})
}

// BlitFunc is the generalized form of [Blit]: for every element of the
// clipped rectangle it reads the current destination value and the mapped
// source value and writes whatever f returns. pos is the element's
// position relative to the clipped rectangle. Source and destination may
// hold different element types, which makes BlitFunc the building block
// for converting and blending copies.
func BlitFunc[T, U any](dst MutableBuffer[T], dstPos Point, src Buffer[U], srcPos Point, size Size, tr Transform, f func(dst T, src U, pos Point) T) {
	blitWith(dst, dstPos, src, srcPos, size, []Transform{tr}, func(x, y int, v U, pos Point) {
		dst.Set(x, y, f(dst.Get(x, y), v, pos))
	})
}

// blitWith is the engine shared by every public blit variant. It clips the
// request, resolves the per-step physical sizes of the transform chain,
// and calls emit with the destination coordinate, the mapped source value,
// and the logical position inside the clipped rectangle. Iteration order
// is not part of the contract.
func blitWith[T any, U any](dst MutableBuffer[T], dstPos Point, src Buffer[U], srcPos Point, size Size, trs []Transform, emit func(x, y int, v U, pos Point)) {
	// Whether the chain as a whole exchanges the axes. Needed to shrink
	// the correct logical axis for a negative physical source offset.
	swapped := false
	for _, tr := range trs {
		if tr.swaps() {
			swapped = !swapped
		}
	}

	// Negative offsets: clamp to zero, shrink the request by the overhang.
	if dstPos.X < 0 {
		size.W += dstPos.X
		dstPos.X = 0
	}
	if dstPos.Y < 0 {
		size.H += dstPos.Y
		dstPos.Y = 0
	}
	if srcPos.X < 0 {
		if swapped {
			size.H += srcPos.X
		} else {
			size.W += srcPos.X
		}
		srcPos.X = 0
	}
	if srcPos.Y < 0 {
		if swapped {
			size.W += srcPos.Y
		} else {
			size.H += srcPos.Y
		}
		srcPos.Y = 0
	}

	// Clip to what both buffers can actually provide. The source room is
	// physical and must be folded through the chain into logical space
	// before it can bound the request.
	srcAvail := Size{W: src.Width() - srcPos.X, H: src.Height() - srcPos.Y}
	for _, tr := range trs {
		srcAvail = tr.Size(srcAvail)
	}
	dstAvail := Size{W: dst.Width() - dstPos.X, H: dst.Height() - dstPos.Y}

	clipped := size.Min(dstAvail).Min(srcAvail)
	if clipped.IsEmpty() {
		if !size.IsEmpty() {
			Logger().Debug("blit clipped to empty",
				"requested_w", size.W, "requested_h", size.H,
				"dst_w", dst.Width(), "dst_h", dst.Height(),
				"src_w", src.Width(), "src_h", src.Height())
		}
		return
	}

	// sizes[i] is the physical extent entering chain step i, derived from
	// the clipped logical extent so that clipping and mapping agree. For a
	// single transform this is exactly the clipped size expressed in the
	// source's pre-transform orientation.
	sizes := make([]Size, len(trs))
	step := clipped
	for i := len(trs) - 1; i >= 0; i-- {
		step = trs[i].Size(step)
		sizes[i] = step
	}

	for ly := 0; ly < clipped.H; ly++ {
		for lx := 0; lx < clipped.W; lx++ {
			p := Point{X: lx, Y: ly}
			for i := len(trs) - 1; i >= 0; i-- {
				p = trs[i].MapPoint(p, sizes[i])
			}
			emit(dstPos.X+lx, dstPos.Y+ly, src.Get(srcPos.X+p.X, srcPos.Y+p.Y), Point{X: lx, Y: ly})
		}
	}
}
