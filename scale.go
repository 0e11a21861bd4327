package panzoom

import "fmt"

// ScaleFactor represents per-axis scaling.
type ScaleFactor struct {
	ScaleX, ScaleY float64
}

// OriginScaleFactor is the identity scale (1, 1).
var OriginScaleFactor = ScaleFactor{ScaleX: 1, ScaleY: 1}

// ScaleOf creates a per-axis scale factor.
func ScaleOf(x, y float64) ScaleFactor {
	return ScaleFactor{ScaleX: x, ScaleY: y}
}

// UniformScale creates a scale factor equal on both axes.
func UniformScale(v float64) ScaleFactor {
	return ScaleFactor{ScaleX: v, ScaleY: v}
}

// IsOrigin reports whether the scale is the identity (1, 1).
func (f ScaleFactor) IsOrigin() bool {
	return f == OriginScaleFactor
}

// IsUniform reports whether both axes share the same factor.
func (f ScaleFactor) IsUniform() bool {
	return f.ScaleX == f.ScaleY
}

// Mul returns the product of two scale factors.
func (f ScaleFactor) Mul(other ScaleFactor) ScaleFactor {
	return ScaleFactor{ScaleX: f.ScaleX * other.ScaleX, ScaleY: f.ScaleY * other.ScaleY}
}

// Lerp performs linear interpolation between two scale factors.
func (f ScaleFactor) Lerp(other ScaleFactor, t float64) ScaleFactor {
	return ScaleFactor{
		ScaleX: f.ScaleX + (other.ScaleX-f.ScaleX)*t,
		ScaleY: f.ScaleY + (other.ScaleY-f.ScaleY)*t,
	}
}

// String returns a compact representation, e.g. "2x2".
func (f ScaleFactor) String() string {
	return fmt.Sprintf("%.4gx%.4g", f.ScaleX, f.ScaleY)
}
