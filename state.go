package panzoom

import "math"

// InitialZoom is the computed rest state for a container/content/mode
// configuration: the three step scales and the transforms content starts
// from. It is replaced wholesale whenever any input changes, never mutated
// field by field.
type InitialZoom struct {
	MinScale    float64
	MediumScale float64
	MaxScale    float64

	BaseTransform Transform
	UserTransform Transform
}

// State owns the current user transform and recomputes every derived
// quantity (base layout, step scales, offset bounds, scroll edge, visible
// rects) whenever the container size, content size, mode, or the transform
// itself changes.
//
// State is designed for a single logical timeline, typically the UI event
// thread: gesture callbacks arrive serially and each produces one
// recomputed transform. It performs no locking. The free functions it is
// built from are all pure and safe for concurrent use on their own.
type State struct {
	opts      stateOptions
	container Size
	content   Size

	layout BaseLayout
	zoom   InitialZoom
	user   Transform
}

// NewState creates a State. Sizes start unspecified; the host layout feeds
// them in through SetContainerSize and SetContentSize. NewState fails when
// an option carries an invalid rotation.
func NewState(opts ...StateOption) (*State, error) {
	o := defaultStateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkRotation(o.rotation); err != nil {
		return nil, err
	}
	s := &State{
		opts:      o,
		container: UnspecifiedSize,
		content:   UnspecifiedSize,
	}
	s.reset("init")
	return s, nil
}

// reset recomputes the rest state from the current inputs and drops the
// user transform back to identity. rotation is already validated by every
// path that can change it, so the computations cannot fail here.
func (s *State) reset(cause string) {
	layout, _ := ComputeBaseLayout(s.container, s.content, s.opts.fitMode, s.opts.alignment, s.opts.rotation, s.opts.direction)
	steps, _ := ComputeStepScales(s.container, s.content, s.opts.originalContent, s.opts.fitMode, s.opts.rotation, s.opts.mediumMultiple)

	s.layout = layout
	s.zoom = InitialZoom{
		MinScale:      steps.Min,
		MediumScale:   steps.Medium,
		MaxScale:      steps.Max,
		BaseTransform: layout.Transform,
		UserTransform: IdentityTransform,
	}
	s.user = IdentityTransform

	Logger().Debug("panzoom: state reset",
		"cause", cause,
		"container", s.container,
		"content", s.content,
		"fitMode", s.opts.fitMode,
		"rotation", s.opts.rotation,
		"minScale", steps.Min,
		"mediumScale", steps.Medium,
		"maxScale", steps.Max,
	)
}

// SetContainerSize sets the viewport size and recomputes the rest state.
func (s *State) SetContainerSize(size Size) {
	if size == s.container {
		return
	}
	s.container = size
	s.reset("container")
}

// SetContentSize sets the content's logical size (already
// orientation-corrected by the caller) and recomputes the rest state.
func (s *State) SetContentSize(size Size) {
	if size == s.content {
		return
	}
	s.content = size
	s.reset("content")
}

// SetOriginalContentSize declares the original decoded resolution; see
// WithOriginalContentSize.
func (s *State) SetOriginalContentSize(size Size) {
	if size == s.opts.originalContent {
		return
	}
	s.opts.originalContent = size
	s.reset("originalContent")
}

// SetFitMode changes the fit mode and recomputes the rest state.
func (s *State) SetFitMode(m FitMode) {
	if m == s.opts.fitMode {
		return
	}
	s.opts.fitMode = m
	s.reset("fitMode")
}

// SetAlignment changes the alignment and recomputes the rest state.
func (s *State) SetAlignment(a Alignment) {
	if a == s.opts.alignment {
		return
	}
	s.opts.alignment = a
	s.reset("alignment")
}

// SetLayoutDirection changes the reading direction and recomputes the rest
// state.
func (s *State) SetLayoutDirection(d LayoutDirection) {
	if d == s.opts.direction {
		return
	}
	s.opts.direction = d
	s.reset("direction")
}

// SetRotation changes the content rotation. It fails when degrees is not a
// multiple of 90, leaving the state untouched; catch this at configuration
// time rather than during a live gesture.
func (s *State) SetRotation(degrees int) error {
	if err := checkRotation(degrees); err != nil {
		return err
	}
	if degrees == s.opts.rotation {
		return nil
	}
	s.opts.rotation = degrees
	s.reset("rotation")
	return nil
}

// Reset drops the user transform back to the rest state.
func (s *State) Reset() {
	s.reset("reset")
}

// ContainerSize returns the current viewport size.
func (s *State) ContainerSize() Size { return s.container }

// ContentSize returns the current content size.
func (s *State) ContentSize() Size { return s.content }

// FitMode returns the current fit mode.
func (s *State) FitMode() FitMode { return s.opts.fitMode }

// Alignment returns the current alignment.
func (s *State) Alignment() Alignment { return s.opts.alignment }

// Rotation returns the current rotation in degrees.
func (s *State) Rotation() int { return s.opts.rotation }

// InitialZoom returns the rest state computed from the current inputs.
func (s *State) InitialZoom() InitialZoom { return s.zoom }

// BaseLayout returns the rest placement and its intermediates.
func (s *State) BaseLayout() BaseLayout { return s.layout }

// UserTransform returns the current user transform.
func (s *State) UserTransform() Transform { return s.user }

// BaseTransform returns the rest transform.
func (s *State) BaseTransform() Transform { return s.layout.Transform }

// Transform returns the full display transform, the base transform with
// the user transform applied on top.
func (s *State) Transform() (Transform, error) {
	return s.layout.Transform.Concat(s.user)
}

// DisplayMatrix flattens the full display transform into the affine matrix
// a renderer applies to paint the unrotated content: the base layout's
// painting matrix with the user transform on top.
func (s *State) DisplayMatrix() Matrix {
	if s.container.IsEmpty() || s.content.IsEmpty() {
		return Identity()
	}
	return s.user.Matrix(s.container).Multiply(s.layout.Matrix())
}

// UserScale returns the current user scale (1 at rest).
func (s *State) UserScale() float64 { return s.user.Scale.ScaleX }

// TotalScale returns the effective content scale, base times user.
func (s *State) TotalScale() float64 {
	return s.layout.Transform.Scale.ScaleX * s.user.Scale.ScaleX
}

// userScaleRange converts the total-scale limits of the rest state into
// user-scale limits. At rest the minimum user scale is exactly 1.
func (s *State) userScaleRange() (lo, hi float64) {
	base := s.layout.Transform.Scale.ScaleX
	if base <= 0 {
		return 1, 1
	}
	return s.zoom.MinScale / base, s.zoom.MaxScale / base
}

// Gesture folds one gesture tick into the user transform: pan and centroid
// in touch coordinates, scaleDelta as the multiplicative pinch change for
// this tick, rotationDelta in degrees. The scale is rubber-band limited
// beyond the configured range and the offset is clamped into the legal
// bounds for the resulting scale, preserving the point under the centroid
// through the change.
func (s *State) Gesture(centroid, pan Offset, scaleDelta, rotationDelta float64) {
	if s.container.IsEmpty() || s.content.IsEmpty() {
		return
	}
	current := s.user.Scale.ScaleX
	lo, hi := s.userScaleRange()
	target := LimitScaleWithRubberBand(current, current*scaleDelta, lo, hi, s.opts.rubberBandRatio)

	offset := ComposeTransform(current, s.user.Offset, target, centroid, pan, rotationDelta)
	s.setUserTransform(target, offset, s.user.Rotation+rotationDelta)
}

// ScaleTo jumps to the given total scale, keeping the content point under
// centroid stationary. Unlike Gesture the scale is clamped hard into the
// configured range; use it for programmatic and step zooming.
func (s *State) ScaleTo(totalScale float64, centroid Offset) {
	if s.container.IsEmpty() || s.content.IsEmpty() {
		return
	}
	base := s.layout.Transform.Scale.ScaleX
	if base <= 0 {
		return
	}
	lo, hi := s.userScaleRange()
	target := clamp(totalScale/base, lo, hi)

	current := s.user.Scale.ScaleX
	offset := ScaleOffset(current, s.user.Offset, target, centroid)
	s.setUserTransform(target, offset, s.user.Rotation)
}

// SwitchNextStepScale cycles to the next step scale about centroid and
// returns the total scale it switched to.
func (s *State) SwitchNextStepScale(centroid Offset) float64 {
	next := NextStepScale(s.zoom.steps(), s.TotalScale(), s.opts.stepTolerance)
	s.ScaleTo(next, centroid)
	return next
}

func (z InitialZoom) steps() []float64 {
	return []float64{z.MinScale, z.MediumScale, z.MaxScale}
}

// setUserTransform installs a new user transform with the offset clamped
// into the bounds for the new scale.
func (s *State) setUserTransform(scale float64, offset Offset, rotation float64) {
	bounds, _ := s.offsetBounds(scale)
	t := Transform{
		Scale:       UniformScale(scale),
		Offset:      offset.LimitTo(bounds),
		Rotation:    rotation,
		ScaleOrigin: TopStartOrigin,
	}
	// A rotating user transform must pivot where the base rotation pivots,
	// otherwise composing the two is ill-defined.
	if rotation != 0 {
		t.RotationOrigin = s.layout.Transform.RotationOrigin
	}
	s.user = t
}

func (s *State) offsetBounds(userScale float64) (Rect, error) {
	return ComputeOffsetBounds(s.container, s.content, s.opts.fitMode, s.opts.alignment,
		s.opts.rotation, s.opts.direction, userScale, s.opts.limitOffsetToBase)
}

// OffsetBounds returns the legal user-offset bounds at the current user
// scale.
func (s *State) OffsetBounds() Rect {
	bounds, _ := s.offsetBounds(s.user.Scale.ScaleX)
	return bounds
}

// ClampUserOffset clamps the current user offset into its bounds. Callers
// use it after feeding an externally computed transform.
func (s *State) ClampUserOffset() {
	s.user.Offset = s.user.Offset.LimitTo(s.OffsetBounds())
}

// ApplyAnimatedTransform installs an externally interpolated user transform
// (one tick of a fling, snap or rebound animation), clamping its offset
// into the bounds for its scale.
func (s *State) ApplyAnimatedTransform(t Transform) {
	s.setUserTransform(t.Scale.ScaleX, t.Offset, t.Rotation)
}

// ReboundUserScale reports the user scale an ended gesture should animate
// back to after rubber-band overshoot. ok is false when the scale is
// already within range.
func (s *State) ReboundUserScale() (target float64, ok bool) {
	lo, hi := s.userScaleRange()
	current := s.user.Scale.ScaleX
	clamped := clamp(current, lo, hi)
	return clamped, clamped != current
}

// ScrollEdge derives which pan directions are exhausted at the current
// offset.
func (s *State) ScrollEdge() ScrollEdge {
	return ComputeScrollEdge(s.OffsetBounds(), s.user.Offset)
}

// CanScroll reports whether panning can continue on the given axis in the
// direction of the given sign. Gesture code uses it to decide between
// consuming a drag and handing it to an ancestor scrollable.
func (s *State) CanScroll(horizontal bool, direction int) bool {
	return CanScroll(s.ScrollEdge(), horizontal, direction)
}

// ContainerVisibleRect returns the part of container space currently shown
// through the user transform.
func (s *State) ContainerVisibleRect() Rect {
	if s.container.IsEmpty() {
		return ZeroRect
	}
	scale := s.user.Scale.ScaleX
	if scale <= 0 {
		return ZeroRect
	}
	tl := TouchPointToContainerPoint(Offset{}, scale, s.user.Offset)
	br := TouchPointToContainerPoint(Off(s.container.Width, s.container.Height), scale, s.user.Offset)
	return NewRect(tl.X, tl.Y, br.X, br.Y)
}

// ContentVisibleRect returns the part of the content currently visible in
// the container, in content coordinates. Tile-decoding collaborators
// consume it together with TotalScale to decide what to decode.
func (s *State) ContentVisibleRect() Rect {
	if s.container.IsEmpty() || s.content.IsEmpty() {
		return ZeroRect
	}
	scale := s.user.Scale.ScaleX
	if scale <= 0 {
		return ZeroRect
	}
	a := s.layout.TouchPointToContentPoint(Offset{}, scale, s.user.Offset)
	b := s.layout.TouchPointToContentPoint(Off(s.container.Width, s.container.Height), scale, s.user.Offset)
	return NewRect(
		math.Min(a.X, b.X), math.Min(a.Y, b.Y),
		math.Max(a.X, b.X), math.Max(a.Y, b.Y),
	)
}

// TouchPointToContentPoint converts a raw touch point to content
// coordinates under the current transforms, clamped into the content.
func (s *State) TouchPointToContentPoint(touch Offset) Offset {
	return s.layout.TouchPointToContentPoint(touch, s.user.Scale.ScaleX, s.user.Offset)
}

// ContentPointToTouchPoint converts a content point back to touch
// coordinates under the current transforms.
func (s *State) ContentPointToTouchPoint(content Offset) Offset {
	return s.layout.ContentPointToTouchPoint(content, s.user.Scale.ScaleX, s.user.Offset)
}
