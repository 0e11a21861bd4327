package panzoom

// Point mapping between the three coordinate spaces: touch (raw input
// pixels over the container), container (touch with the user transform
// undone), and content (pixels of the unrotated content). All conversions
// are pure; the content-space side is clamped into the content bounds
// because gesture centroids and taps can land in letterbox areas outside
// the rendered image.

// TouchPointToContainerPoint undoes the user transform on a touch point.
func TouchPointToContainerPoint(touch Offset, userScale float64, userOffset Offset) Offset {
	touch.mustSpecified("TouchPointToContainerPoint")
	userOffset.mustSpecified("TouchPointToContainerPoint")
	if userScale <= 0 {
		return Offset{}
	}
	return touch.Sub(userOffset).Div(userScale)
}

// ContainerPointToTouchPoint re-applies the user transform to a container
// point.
func ContainerPointToTouchPoint(container Offset, userScale float64, userOffset Offset) Offset {
	container.mustSpecified("ContainerPointToTouchPoint")
	userOffset.mustSpecified("ContainerPointToTouchPoint")
	return container.Mul(userScale).Add(userOffset)
}

// ContainerPointToContentPoint projects a container point through the base
// display rectangle into unrotated content coordinates. The result is
// clamped into the content size.
func (l BaseLayout) ContainerPointToContentPoint(p Offset) Offset {
	p.mustSpecified("ContainerPointToContentPoint")
	if l.ContainerSize.IsEmpty() || l.ContentSize.IsEmpty() {
		return Offset{}
	}
	factor := l.Transform.Scale
	if factor.ScaleX == 0 || factor.ScaleY == 0 {
		return Offset{}
	}
	rotatedPoint := p.Sub(l.DisplayRect.TopLeft()).
		DivScale(factor).
		LimitToSize(l.RotatedContentSize)
	return reverseRotatePointInSpace(rotatedPoint, l.RotatedContentSize, l.Rotation)
}

// ContentPointToContainerPoint is the inverse of
// ContainerPointToContentPoint: it rotates a content point into the rotated
// content space, scales it by the fit scale, and shifts it to the display
// rectangle's position.
func (l BaseLayout) ContentPointToContainerPoint(p Offset) Offset {
	p.mustSpecified("ContentPointToContainerPoint")
	if l.ContainerSize.IsEmpty() || l.ContentSize.IsEmpty() {
		return Offset{}
	}
	rotatedPoint := rotatePointInSpace(p.LimitToSize(l.ContentSize), l.ContentSize, l.Rotation)
	return rotatedPoint.MulScale(l.Transform.Scale).Add(l.DisplayRect.TopLeft())
}

// TouchPointToContentPoint composes the touch-to-container and
// container-to-content conversions.
func (l BaseLayout) TouchPointToContentPoint(touch Offset, userScale float64, userOffset Offset) Offset {
	container := TouchPointToContainerPoint(touch, userScale, userOffset)
	return l.ContainerPointToContentPoint(container)
}

// ContentPointToTouchPoint composes the content-to-container and
// container-to-touch conversions.
func (l BaseLayout) ContentPointToTouchPoint(content Offset, userScale float64, userOffset Offset) Offset {
	container := l.ContentPointToContainerPoint(content)
	return ContainerPointToTouchPoint(container, userScale, userOffset)
}
