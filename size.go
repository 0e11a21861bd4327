package panzoom

import (
	"fmt"
	"math"
)

// Size represents a 2D dimension in logical pixels.
//
// The zero value is an empty size. UnspecifiedSize is a distinct sentinel
// for "no size known yet" (for example before the host layout has measured
// the container); arithmetic on an unspecified size is a programmer error
// and panics rather than silently producing zeros.
type Size struct {
	Width, Height float64
}

// UnspecifiedSize is the sentinel for a size that has not been determined.
// Use IsSpecified to test for it before doing arithmetic.
var UnspecifiedSize = Size{Width: math.Inf(-1), Height: math.Inf(-1)}

// Sz is a convenience function to create a Size.
func Sz(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// IsSpecified reports whether both dimensions are known.
func (s Size) IsSpecified() bool {
	return s != UnspecifiedSize
}

// IsEmpty reports whether the size has no area.
// An unspecified size is considered empty.
func (s Size) IsEmpty() bool {
	return !s.IsSpecified() || s.Width <= 0 || s.Height <= 0
}

func (s Size) mustSpecified(op string) {
	if !s.IsSpecified() {
		panic(fmt.Sprintf("panzoom: %s on unspecified Size", op))
	}
}

// Center returns the center point of the size.
func (s Size) Center() Offset {
	s.mustSpecified("Center")
	return Offset{X: s.Width / 2, Y: s.Height / 2}
}

// Mul returns the size scaled per-axis by f.
func (s Size) Mul(f ScaleFactor) Size {
	s.mustSpecified("Mul")
	return Size{Width: s.Width * f.ScaleX, Height: s.Height * f.ScaleY}
}

// MulScalar returns the size scaled uniformly by v.
func (s Size) MulScalar(v float64) Size {
	s.mustSpecified("MulScalar")
	return Size{Width: s.Width * v, Height: s.Height * v}
}

// Rect returns the rectangle spanning the size with its top-left at the
// origin.
func (s Size) Rect() Rect {
	s.mustSpecified("Rect")
	return Rect{Right: s.Width, Bottom: s.Height}
}

// Rotate returns the size rotated by the given angle in degrees.
// The angle must be a multiple of 90.
func (s Size) Rotate(degrees int) (Size, error) {
	if err := checkRotation(degrees); err != nil {
		return Size{}, err
	}
	return s.rotate(degrees), nil
}

// rotate assumes degrees has already been validated.
func (s Size) rotate(degrees int) Size {
	s.mustSpecified("Rotate")
	if normalizeRotation(degrees)%180 != 0 {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// Lerp performs linear interpolation between two sizes.
// t=0 returns s, t=1 returns other.
func (s Size) Lerp(other Size, t float64) Size {
	s.mustSpecified("Lerp")
	other.mustSpecified("Lerp")
	return Size{
		Width:  s.Width + (other.Width-s.Width)*t,
		Height: s.Height + (other.Height-s.Height)*t,
	}
}

// String returns a compact representation, e.g. "100x50".
func (s Size) String() string {
	if !s.IsSpecified() {
		return "Unspecified"
	}
	return fmt.Sprintf("%.4gx%.4g", s.Width, s.Height)
}
