package panzoom

// DefaultRubberBandRatio bounds how far a rubber-banded scale can overshoot:
// the limited scale approaches but never reaches max*ratio (or min/ratio).
const DefaultRubberBandRatio = 2.0

// ComposeTransform composes an incremental gesture into a new user offset.
// The invariant it preserves: the content point under the gesture centroid
// stays visually stationary through the scale and rotation change, with the
// pan applied on top. currentScale and targetScale are the user scales
// before and after the gesture tick, currentOffset the user offset before
// it; centroid and pan are in touch coordinates, rotationDelta in degrees.
//
// With pan and rotation zero this reduces to pure re-centering on rescale.
func ComposeTransform(currentScale float64, currentOffset Offset, targetScale float64, centroid, pan Offset, rotationDelta float64) Offset {
	if currentScale <= 0 || targetScale <= 0 {
		return currentOffset
	}
	// Work in unscaled space: where the centroid was before this tick,
	// relative to the content origin. Rotation happens there, then the
	// point is re-projected under the new scale; the pan is compensated by
	// the old scale because it too is measured in touch pixels.
	restored := currentOffset.Div(currentScale).Mul(-1)
	moved := restored.
		Add(centroid.Div(currentScale)).
		RotateBy(rotationDelta).
		Sub(centroid.Div(targetScale)).
		Sub(pan.Div(currentScale))
	return moved.Mul(-targetScale)
}

// ScaleOffset is the scale-only specialization of ComposeTransform used by
// double-tap and step zooming: it returns the offset that keeps the content
// point under centroid stationary while the user scale changes.
func ScaleOffset(currentScale float64, currentOffset Offset, targetScale float64, centroid Offset) Offset {
	return ComposeTransform(currentScale, currentOffset, targetScale, centroid, Offset{}, 0)
}

// LimitScaleWithRubberBand limits a requested scale change to produce a
// decelerating drag beyond [min, max]. Inside the range the target passes
// through unchanged. Beyond it, only (1-progress)*0.5 of the requested
// delta is applied, where progress measures how far the target has pushed
// into the elastic range ending at max*ratio (or min/ratio below). The
// result asymptotically approaches the elastic limit and never exceeds it,
// even transiently. Snapping back into range when the gesture ends is the
// caller's job.
func LimitScaleWithRubberBand(currentScale, targetScale, minScale, maxScale, ratio float64) float64 {
	if ratio <= 1 {
		ratio = DefaultRubberBandRatio
	}
	switch {
	case targetScale > maxScale:
		delta := targetScale - currentScale
		overshoot := targetScale - maxScale
		elasticRange := maxScale*ratio - maxScale
		progress := clamp(overshoot/elasticRange, 0, 1)
		return currentScale + delta*(1-progress)*0.5
	case targetScale < minScale:
		delta := targetScale - currentScale
		overshoot := minScale - targetScale
		elasticRange := minScale - minScale/ratio
		progress := clamp(overshoot/elasticRange, 0, 1)
		return currentScale + delta*(1-progress)*0.5
	default:
		return targetScale
	}
}
