package panzoom

import (
	"fmt"
	"math"
)

// Offset represents a 2D point or translation in logical pixels.
//
// Like Size, it carries two sentinels: UnspecifiedOffset for "not computed
// yet" and InfiniteOffset for unbounded edge computations. Arithmetic on an
// unspecified offset panics.
type Offset struct {
	X, Y float64
}

// UnspecifiedOffset is the sentinel for an offset that has not been
// determined.
var UnspecifiedOffset = Offset{X: math.Inf(-1), Y: math.Inf(-1)}

// InfiniteOffset is an offset at positive infinity on both axes, used to
// express an unbounded extent.
var InfiniteOffset = Offset{X: math.Inf(1), Y: math.Inf(1)}

// Off is a convenience function to create an Offset.
func Off(x, y float64) Offset {
	return Offset{X: x, Y: y}
}

// IsSpecified reports whether the offset has been determined.
func (o Offset) IsSpecified() bool {
	return o != UnspecifiedOffset
}

// IsFinite reports whether both components are finite numbers.
func (o Offset) IsFinite() bool {
	return !math.IsInf(o.X, 0) && !math.IsInf(o.Y, 0)
}

func (o Offset) mustSpecified(op string) {
	if !o.IsSpecified() {
		panic(fmt.Sprintf("panzoom: %s on unspecified Offset", op))
	}
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(q Offset) Offset {
	o.mustSpecified("Add")
	q.mustSpecified("Add")
	return Offset{X: o.X + q.X, Y: o.Y + q.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(q Offset) Offset {
	o.mustSpecified("Sub")
	q.mustSpecified("Sub")
	return Offset{X: o.X - q.X, Y: o.Y - q.Y}
}

// Mul returns the offset scaled by a scalar.
func (o Offset) Mul(v float64) Offset {
	o.mustSpecified("Mul")
	return Offset{X: o.X * v, Y: o.Y * v}
}

// Div returns the offset divided by a scalar.
func (o Offset) Div(v float64) Offset {
	o.mustSpecified("Div")
	return Offset{X: o.X / v, Y: o.Y / v}
}

// MulScale returns the offset scaled per-axis by f.
func (o Offset) MulScale(f ScaleFactor) Offset {
	o.mustSpecified("MulScale")
	return Offset{X: o.X * f.ScaleX, Y: o.Y * f.ScaleY}
}

// DivScale returns the offset divided per-axis by f.
func (o Offset) DivScale(f ScaleFactor) Offset {
	o.mustSpecified("DivScale")
	return Offset{X: o.X / f.ScaleX, Y: o.Y / f.ScaleY}
}

// RotateBy returns the offset rotated by the given angle in degrees around
// the origin. Positive angles rotate clockwise in the screen coordinate
// system (y down).
func (o Offset) RotateBy(degrees float64) Offset {
	o.mustSpecified("RotateBy")
	if degrees == 0 {
		return o
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Offset{
		X: o.X*cos - o.Y*sin,
		Y: o.X*sin + o.Y*cos,
	}
}

// LimitToSize clamps the offset into [0, size.Width] x [0, size.Height].
func (o Offset) LimitToSize(s Size) Offset {
	o.mustSpecified("LimitToSize")
	s.mustSpecified("LimitToSize")
	return Offset{
		X: clamp(o.X, 0, s.Width),
		Y: clamp(o.Y, 0, s.Height),
	}
}

// LimitTo clamps the offset into the rectangle r.
func (o Offset) LimitTo(r Rect) Offset {
	o.mustSpecified("LimitTo")
	return Offset{
		X: clamp(o.X, r.Left, r.Right),
		Y: clamp(o.Y, r.Top, r.Bottom),
	}
}

// Lerp performs linear interpolation between two offsets.
// t=0 returns o, t=1 returns other.
func (o Offset) Lerp(other Offset, t float64) Offset {
	o.mustSpecified("Lerp")
	other.mustSpecified("Lerp")
	return Offset{
		X: o.X + (other.X-o.X)*t,
		Y: o.Y + (other.Y-o.Y)*t,
	}
}

// String returns a compact representation, e.g. "(10, 20)".
func (o Offset) String() string {
	if !o.IsSpecified() {
		return "Unspecified"
	}
	return fmt.Sprintf("(%.4g, %.4g)", o.X, o.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
