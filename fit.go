package panzoom

import "math"

// FitMode is the policy for scaling content into a container.
type FitMode uint8

const (
	// FitContain scales uniformly so the content fits entirely inside the
	// container. It never crops and may letterbox.
	FitContain FitMode = iota
	// FitCrop scales uniformly so the content covers the container
	// entirely. It never letterboxes and may crop.
	FitCrop
	// FitFillBounds scales each axis independently so the content fills
	// the container exactly. It may distort.
	FitFillBounds
	// FitFillWidth scales uniformly so the content spans the container's
	// width.
	FitFillWidth
	// FitFillHeight scales uniformly so the content spans the container's
	// height.
	FitFillHeight
	// FitInside behaves like FitContain but never scales up.
	FitInside
	// FitNone applies no scaling.
	FitNone
)

// String returns the fit mode name.
func (m FitMode) String() string {
	switch m {
	case FitContain:
		return "Contain"
	case FitCrop:
		return "Crop"
	case FitFillBounds:
		return "FillBounds"
	case FitFillWidth:
		return "FillWidth"
	case FitFillHeight:
		return "FillHeight"
	case FitInside:
		return "Inside"
	case FitNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ScaleFactor computes the per-axis scale that maps content into container
// under the fit mode. Empty content or container yields the identity scale;
// the emptiness check also guards every division below.
func (m FitMode) ScaleFactor(content, container Size) ScaleFactor {
	if content.IsEmpty() || container.IsEmpty() {
		return OriginScaleFactor
	}
	wx := container.Width / content.Width
	wy := container.Height / content.Height
	switch m {
	case FitContain:
		return UniformScale(math.Min(wx, wy))
	case FitCrop:
		return UniformScale(math.Max(wx, wy))
	case FitFillBounds:
		return ScaleOf(wx, wy)
	case FitFillWidth:
		return UniformScale(wx)
	case FitFillHeight:
		return UniformScale(wy)
	case FitInside:
		return UniformScale(math.Min(1, math.Min(wx, wy)))
	default: // FitNone
		return OriginScaleFactor
	}
}
