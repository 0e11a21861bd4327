package panzoom

import "fmt"

// TransformOrigin is the pivot of a scale or rotation, expressed as a
// fraction of the space the transform acts in. (0, 0) is the top-left
// corner, (0.5, 0.5) the center, (1, 1) the bottom-right corner. Values
// outside [0, 1] are legal and place the pivot outside the space.
type TransformOrigin struct {
	PivotFractionX, PivotFractionY float64
}

// TopStartOrigin pivots at the top-left corner. It is the default origin
// of a Transform's zero value.
var TopStartOrigin = TransformOrigin{}

// CenterOrigin pivots at the center of the space.
var CenterOrigin = TransformOrigin{PivotFractionX: 0.5, PivotFractionY: 0.5}

// OriginOf creates a transform origin from pivot fractions.
func OriginOf(x, y float64) TransformOrigin {
	return TransformOrigin{PivotFractionX: x, PivotFractionY: y}
}

// Pivot resolves the origin to a point within the given space.
func (o TransformOrigin) Pivot(space Size) Offset {
	space.mustSpecified("Pivot")
	return Offset{
		X: space.Width * o.PivotFractionX,
		Y: space.Height * o.PivotFractionY,
	}
}

// String returns a compact representation, e.g. "(0.5, 0.5)".
func (o TransformOrigin) String() string {
	return fmt.Sprintf("(%.4g, %.4g)", o.PivotFractionX, o.PivotFractionY)
}
