package blit

import "fmt"

// Transform is one of the eight dihedral symmetries of a rectangle. It
// describes how a copied region is remapped: a blit through a Transform
// writes the source region into the destination as it would appear after
// applying the symmetry.
//
// Rotations are clockwise. The two combined variants apply the rotation
// first and then the flip in the rotated orientation; this order is part
// of the contract and collapses to a transpose (Rotate90FlipHorizontal)
// and an anti-transpose (Rotate90FlipVertical).
//
// FlipBoth and Rotate180 describe the same symmetry; both names are kept
// for caller convenience.
type Transform uint8

const (
	// None copies without remapping.
	None Transform = iota
	// FlipHorizontal mirrors the region around its vertical axis.
	FlipHorizontal
	// FlipVertical mirrors the region around its horizontal axis.
	FlipVertical
	// FlipBoth mirrors around both axes. Identical to Rotate180.
	FlipBoth
	// Rotate90 rotates the region a quarter turn clockwise.
	Rotate90
	// Rotate180 rotates the region a half turn.
	Rotate180
	// Rotate270 rotates the region a quarter turn counter-clockwise.
	Rotate270
	// Rotate90FlipHorizontal is Rotate90 followed by FlipHorizontal,
	// i.e. a transpose.
	Rotate90FlipHorizontal
	// Rotate90FlipVertical is Rotate90 followed by FlipVertical,
	// i.e. an anti-transpose.
	Rotate90FlipVertical
)

// MapPoint maps a logical coordinate back to its physical source
// coordinate. The logical coordinate p lies in the post-transform
// rectangle tr.Size(size); the returned point lies in the pre-transform
// rectangle size. Both rectangles are zero-based.
//
// MapPoint is pure integer arithmetic and assumes p is in range; it is the
// inverse of the symmetry, which is why the formulas for Rotate90 and
// Rotate270 look swapped relative to the forward rotation.
func (tr Transform) MapPoint(p Point, size Size) Point {
	w, h := size.W, size.H
	switch tr {
	case FlipHorizontal:
		return Point{X: w - 1 - p.X, Y: p.Y}
	case FlipVertical:
		return Point{X: p.X, Y: h - 1 - p.Y}
	case FlipBoth, Rotate180:
		return Point{X: w - 1 - p.X, Y: h - 1 - p.Y}
	case Rotate90:
		return Point{X: p.Y, Y: h - 1 - p.X}
	case Rotate270:
		return Point{X: w - 1 - p.Y, Y: p.X}
	case Rotate90FlipHorizontal:
		return Point{X: p.Y, Y: p.X}
	case Rotate90FlipVertical:
		return Point{X: w - 1 - p.Y, Y: h - 1 - p.X}
	default:
		return p
	}
}

// Size returns the dimensions of a size-sized rectangle after the
// transform: width and height swap for the four variants that carry a
// quarter turn, and pass through unchanged otherwise.
func (tr Transform) Size(size Size) Size {
	if tr.swaps() {
		return Size{W: size.H, H: size.W}
	}
	return size
}

// swaps reports whether the transform exchanges width and height.
func (tr Transform) swaps() bool {
	switch tr {
	case Rotate90, Rotate270, Rotate90FlipHorizontal, Rotate90FlipVertical:
		return true
	}
	return false
}

var transformNames = map[Transform]string{
	None:                   "none",
	FlipHorizontal:         "flip-horizontal",
	FlipVertical:           "flip-vertical",
	FlipBoth:               "flip-both",
	Rotate90:               "rotate90",
	Rotate180:              "rotate180",
	Rotate270:              "rotate270",
	Rotate90FlipHorizontal: "rotate90-flip-horizontal",
	Rotate90FlipVertical:   "rotate90-flip-vertical",
}

// String returns the canonical lowercase name of the transform, as
// accepted by [ParseTransform].
func (tr Transform) String() string {
	if name, ok := transformNames[tr]; ok {
		return name
	}
	return fmt.Sprintf("Transform(%d)", uint8(tr))
}

// ParseTransform returns the transform named by s. It accepts the
// canonical names returned by [Transform.String] plus the short aliases
// "fliph", "flipv", "flipboth", "r90", "r180" and "r270".
func ParseTransform(s string) (Transform, error) {
	switch s {
	case "fliph":
		return FlipHorizontal, nil
	case "flipv":
		return FlipVertical, nil
	case "flipboth":
		return FlipBoth, nil
	case "r90":
		return Rotate90, nil
	case "r180":
		return Rotate180, nil
	case "r270":
		return Rotate270, nil
	}
	for tr, name := range transformNames {
		if s == name {
			return tr, nil
		}
	}
	return None, fmt.Errorf("blit: unknown transform %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (tr Transform) MarshalText() ([]byte, error) {
	return []byte(tr.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Transform can be
// decoded directly from configuration formats such as TOML or JSON.
func (tr *Transform) UnmarshalText(text []byte) error {
	parsed, err := ParseTransform(string(text))
	if err != nil {
		return err
	}
	*tr = parsed
	return nil
}
