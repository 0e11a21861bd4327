package panzoom

// Rect represents an axis-aligned rectangle by its edge coordinates.
//
// Consumers assume Right >= Left and Bottom >= Top; construction does not
// enforce it, so degenerate rectangles can be represented when a caller
// needs them.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// ZeroRect is the empty rectangle at the origin.
var ZeroRect = Rect{}

// NewRect creates a rectangle from edge coordinates.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectOf creates the rectangle with top-left corner at offset spanning size.
func RectOf(offset Offset, size Size) Rect {
	offset.mustSpecified("RectOf")
	size.mustSpecified("RectOf")
	return Rect{
		Left:   offset.X,
		Top:    offset.Y,
		Right:  offset.X + size.Width,
		Bottom: offset.Y + size.Height,
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size returns the extent of the rectangle as a Size.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Offset { return Offset{X: r.Left, Y: r.Top} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Offset { return Offset{X: r.Right, Y: r.Bottom} }

// Center returns the center point.
func (r Rect) Center() Offset {
	return Offset{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns the rectangle shifted by the offset.
func (r Rect) Translate(o Offset) Rect {
	o.mustSpecified("Translate")
	return Rect{
		Left:   r.Left + o.X,
		Top:    r.Top + o.Y,
		Right:  r.Right + o.X,
		Bottom: r.Bottom + o.Y,
	}
}

// Scale returns the rectangle scaled uniformly about the origin.
func (r Rect) Scale(v float64) Rect {
	return Rect{
		Left:   r.Left * v,
		Top:    r.Top * v,
		Right:  r.Right * v,
		Bottom: r.Bottom * v,
	}
}

// ScaleXY returns the rectangle scaled per-axis about the origin.
func (r Rect) ScaleXY(f ScaleFactor) Rect {
	return Rect{
		Left:   r.Left * f.ScaleX,
		Top:    r.Top * f.ScaleY,
		Right:  r.Right * f.ScaleX,
		Bottom: r.Bottom * f.ScaleY,
	}
}

// LimitTo clamps all four edges of the rectangle into bounds.
func (r Rect) LimitTo(bounds Rect) Rect {
	return Rect{
		Left:   clamp(r.Left, bounds.Left, bounds.Right),
		Top:    clamp(r.Top, bounds.Top, bounds.Bottom),
		Right:  clamp(r.Right, bounds.Left, bounds.Right),
		Bottom: clamp(r.Bottom, bounds.Top, bounds.Bottom),
	}
}

// Intersect returns the intersection of two rectangles. The result is
// degenerate (IsEmpty) when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
	return out
}

// Overlaps reports whether the two rectangles share any area.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Contains reports whether the point lies inside the rectangle, edges
// included.
func (r Rect) Contains(o Offset) bool {
	o.mustSpecified("Contains")
	return o.X >= r.Left && o.X <= r.Right && o.Y >= r.Top && o.Y <= r.Bottom
}

// Lerp performs linear interpolation between two rectangles.
func (r Rect) Lerp(other Rect, t float64) Rect {
	return Rect{
		Left:   r.Left + (other.Left-r.Left)*t,
		Top:    r.Top + (other.Top-r.Top)*t,
		Right:  r.Right + (other.Right-r.Right)*t,
		Bottom: r.Bottom + (other.Bottom-r.Bottom)*t,
	}
}
