package panzoom

// Alignment positions a box within a larger space as a pair of biases,
// -1 for start/top, 0 for center, +1 for end/bottom. Horizontal start and
// end are direction-aware: under a right-to-left layout they swap sides.
type Alignment struct {
	Horizontal, Vertical float64
}

// The nine named alignments.
var (
	AlignTopStart     = Alignment{Horizontal: -1, Vertical: -1}
	AlignTopCenter    = Alignment{Horizontal: 0, Vertical: -1}
	AlignTopEnd       = Alignment{Horizontal: 1, Vertical: -1}
	AlignCenterStart  = Alignment{Horizontal: -1, Vertical: 0}
	AlignCenter       = Alignment{Horizontal: 0, Vertical: 0}
	AlignCenterEnd    = Alignment{Horizontal: 1, Vertical: 0}
	AlignBottomStart  = Alignment{Horizontal: -1, Vertical: 1}
	AlignBottomCenter = Alignment{Horizontal: 0, Vertical: 1}
	AlignBottomEnd    = Alignment{Horizontal: 1, Vertical: 1}
)

// LayoutDirection selects the horizontal reading direction used to resolve
// start/end alignments.
type LayoutDirection uint8

const (
	// LayoutLTR lays content out left to right.
	LayoutLTR LayoutDirection = iota
	// LayoutRTL lays content out right to left.
	LayoutRTL
)

// String returns the direction name.
func (d LayoutDirection) String() string {
	if d == LayoutRTL {
		return "RTL"
	}
	return "LTR"
}

// Align returns the offset of a box of the given size placed within space.
// A box larger than the space yields a negative offset so that the box
// centers (or pins to the chosen edge) while extending outside.
func (a Alignment) Align(box, space Size, direction LayoutDirection) Offset {
	box.mustSpecified("Align")
	space.mustSpecified("Align")
	h := a.Horizontal
	if direction == LayoutRTL {
		h = -h
	}
	return Offset{
		X: (space.Width - box.Width) / 2 * (1 + h),
		Y: (space.Height - box.Height) / 2 * (1 + a.Vertical),
	}
}
