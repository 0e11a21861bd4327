package panzoom

import "math"

// BaseLayout is the rest-state placement of content within a container for
// a given fit mode, alignment, and rotation, before any user zoom or pan.
// Beyond the transform itself it carries the intermediate quantities that
// downstream computations (offset bounds, point mapping, visible rects)
// reuse instead of recomputing.
type BaseLayout struct {
	// Transform places the content in the container: its scale is the fit
	// scale, its offset the alignment translation, and its rotation pivots
	// about the original content's center expressed as a fraction of the
	// container, which keeps the visual center fixed through aspect-ratio
	// swaps.
	Transform Transform

	// ContainerSize and ContentSize are the inputs the layout was computed
	// from. ContentSize is pre-rotation.
	ContainerSize, ContentSize Size

	// Rotation is the applied rotation in degrees, a multiple of 90.
	Rotation int

	// RotatedContentSize is the content size after rotation (width and
	// height swapped for odd multiples of 90).
	RotatedContentSize Size

	// ScaledContentSize is RotatedContentSize scaled by the fit scale.
	ScaledContentSize Size

	// DisplayRect is the aligned rectangle the scaled, rotated content
	// occupies in container coordinates.
	DisplayRect Rect

	// UnrotatedDisplayRect is DisplayRect with width and height swapped
	// back around its center for odd multiples of 90; it equals
	// DisplayRect otherwise.
	UnrotatedDisplayRect Rect
}

// ComputeBaseLayout computes the rest placement of content in container.
// rotation must be a multiple of 90 degrees. Empty container or content
// yields an identity layout.
func ComputeBaseLayout(container, content Size, mode FitMode, align Alignment, rotation int, direction LayoutDirection) (BaseLayout, error) {
	if err := checkRotation(rotation); err != nil {
		return BaseLayout{}, err
	}
	if container.IsEmpty() || content.IsEmpty() {
		return BaseLayout{
			Transform:     IdentityTransform,
			ContainerSize: container,
			ContentSize:   content,
			Rotation:      rotation,
		}, nil
	}

	rotated := content.rotate(rotation)
	factor := mode.ScaleFactor(rotated, container)
	scaled := rotated.Mul(factor)
	offset := align.Align(scaled, container, direction)
	displayRect := RectOf(offset, scaled)

	// The rotation pivot is the original content's center as a fraction of
	// the container, not the rotated content's. Pivoting there keeps the
	// image visually centered on the same point for every quarter turn.
	center := content.Center()
	rotationOrigin := OriginOf(
		center.X/container.Width,
		center.Y/container.Height,
	)

	unrotated := displayRect
	if normalizeRotation(rotation)%180 != 0 {
		c := displayRect.Center()
		halfW := displayRect.Height() / 2
		halfH := displayRect.Width() / 2
		unrotated = NewRect(c.X-halfW, c.Y-halfH, c.X+halfW, c.Y+halfH)
	}

	return BaseLayout{
		Transform: Transform{
			Scale:          factor,
			Offset:         offset,
			Rotation:       float64(rotation),
			ScaleOrigin:    TopStartOrigin,
			RotationOrigin: rotationOrigin,
		},
		ContainerSize:        container,
		ContentSize:          content,
		Rotation:             rotation,
		RotatedContentSize:   rotated,
		ScaledContentSize:    scaled,
		DisplayRect:          displayRect,
		UnrotatedDisplayRect: unrotated,
	}, nil
}

// Matrix returns the affine matrix that paints the unrotated content into
// DisplayRect: the rotation about the content's center with the rotated
// bounding box re-anchored to the origin, then the fit scale, then the
// alignment offset. A content-space point run through it lands exactly
// where ContentPointToContainerPoint puts it.
func (l BaseLayout) Matrix() Matrix {
	if l.ContainerSize.IsEmpty() || l.ContentSize.IsEmpty() {
		return Identity()
	}
	m := Identity()
	if rot := normalizeRotation(l.Rotation); rot != 0 {
		center := l.ContentSize.Center()
		m = RotateAbout(float64(rot)*math.Pi/180, center.X, center.Y)
		// Rotation about the center leaves the rotated bounding box
		// displaced; shift its top-left back to the origin so the fit
		// scale and alignment see the rotated size anchored like an
		// unrotated one.
		m = Translate(
			-(l.ContentSize.Width-l.RotatedContentSize.Width)/2,
			-(l.ContentSize.Height-l.RotatedContentSize.Height)/2,
		).Multiply(m)
	}
	factor := l.Transform.Scale
	m = Scale(factor.ScaleX, factor.ScaleY).Multiply(m)
	offset := l.Transform.Offset
	return Translate(offset.X, offset.Y).Multiply(m)
}

// ComputeBaseTransform computes only the rest transform. See
// ComputeBaseLayout for the full intermediate set.
func ComputeBaseTransform(container, content Size, mode FitMode, align Alignment, rotation int, direction LayoutDirection) (Transform, error) {
	layout, err := ComputeBaseLayout(container, content, mode, align, rotation, direction)
	if err != nil {
		return Transform{}, err
	}
	return layout.Transform, nil
}
