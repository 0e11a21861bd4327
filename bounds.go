package panzoom

import "math"

// Edge describes whether panning on one axis has reached a content
// boundary. START and END name the reachable edge of the content, not the
// viewport: panning to the offset where the content's start edge can go no
// further reports END exhausted on the other side. Gesture-interception
// code depends on this polarity; do not invert it.
type Edge uint8

const (
	// EdgeNone means neither boundary has been reached.
	EdgeNone Edge = iota
	// EdgeStart means the content's start edge has been reached.
	EdgeStart
	// EdgeEnd means the content's end edge has been reached.
	EdgeEnd
	// EdgeBoth means the axis cannot pan at all.
	EdgeBoth
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeStart:
		return "Start"
	case EdgeEnd:
		return "End"
	case EdgeBoth:
		return "Both"
	default:
		return "None"
	}
}

// ScrollEdge is the per-axis edge state derived from the current offset and
// its bounds. It is recomputed whenever either changes, never stored apart
// from the transform it was derived from.
type ScrollEdge struct {
	Horizontal, Vertical Edge
}

// ComputeOffsetBounds computes the legal user-offset rectangle for the
// given configuration and user scale: Left..Right bound the X offset and
// Top..Bottom the Y offset. When the scaled content exceeds the container
// on an axis the bounds keep the content edges from leaving the container;
// when it fits, the bounds collapse to the single offset that pins the
// content at its aligned rest position, so no panning happens on that axis.
// With limitToContainer set, the base display rectangle is first clamped
// into the container (the "inside-base" behavior used when the base
// placement must never overflow).
func ComputeOffsetBounds(container, content Size, mode FitMode, align Alignment, rotation int, direction LayoutDirection, userScale float64, limitToContainer bool) (Rect, error) {
	if err := checkRotation(rotation); err != nil {
		return Rect{}, err
	}
	if container.IsEmpty() || content.IsEmpty() || userScale <= 0 {
		return ZeroRect, nil
	}

	layout, err := ComputeBaseLayout(container, content, mode, align, rotation, direction)
	if err != nil {
		return Rect{}, err
	}
	base := layout.DisplayRect
	if limitToContainer {
		base = base.LimitTo(container.Rect())
	}
	scaled := base.Scale(userScale)

	var bounds Rect
	if math.Round(scaled.Width()) >= container.Width {
		bounds.Left = -(scaled.Right - container.Width)
		bounds.Right = -scaled.Left
	} else {
		aligned := align.Align(scaled.Size(), container, direction)
		pinned := aligned.X - scaled.Left
		bounds.Left, bounds.Right = pinned, pinned
	}
	if math.Round(scaled.Height()) >= container.Height {
		bounds.Top = -(scaled.Bottom - container.Height)
		bounds.Bottom = -scaled.Top
	} else {
		aligned := align.Align(scaled.Size(), container, direction)
		pinned := aligned.Y - scaled.Top
		bounds.Top, bounds.Bottom = pinned, pinned
	}
	return bounds, nil
}

// ComputeScrollEdge derives the per-axis edge state from offset bounds and
// the current offset. Comparisons are rounded to whole pixels so that
// sub-pixel residue from gesture arithmetic does not flap the state.
func ComputeScrollEdge(bounds Rect, offset Offset) ScrollEdge {
	offset.mustSpecified("ComputeScrollEdge")
	return ScrollEdge{
		Horizontal: edgeOf(bounds.Left, bounds.Right, offset.X),
		Vertical:   edgeOf(bounds.Top, bounds.Bottom, offset.Y),
	}
}

func edgeOf(lo, hi, v float64) Edge {
	loR, hiR, vR := math.Round(lo), math.Round(hi), math.Round(v)
	switch {
	case loR == hiR:
		return EdgeBoth
	case vR <= loR:
		return EdgeEnd
	case vR >= hiR:
		return EdgeStart
	default:
		return EdgeNone
	}
}

// CanScroll reports whether panning can continue on the given axis in the
// given direction (its sign is what matters: positive toward the content's
// end edge). It is false once the edge state equals the terminal state for
// that direction, or BOTH.
func CanScroll(edge ScrollEdge, horizontal bool, direction int) bool {
	e := edge.Vertical
	if horizontal {
		e = edge.Horizontal
	}
	if e == EdgeBoth {
		return false
	}
	if direction > 0 {
		return e != EdgeEnd
	}
	return e != EdgeStart
}
