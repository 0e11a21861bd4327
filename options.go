package panzoom

// StateOption configures a State during creation.
// Use functional options to customize State behavior.
//
// Example:
//
//	st, err := panzoom.NewState(
//	    panzoom.WithFitMode(panzoom.FitCrop),
//	    panzoom.WithAlignment(panzoom.AlignTopStart),
//	)
type StateOption func(*stateOptions)

// stateOptions holds optional configuration for State creation.
type stateOptions struct {
	fitMode           FitMode
	alignment         Alignment
	rotation          int
	direction         LayoutDirection
	originalContent   Size
	mediumMultiple    float64
	rubberBandRatio   float64
	stepTolerance     float64
	limitOffsetToBase bool
}

// defaultStateOptions returns the default state options.
func defaultStateOptions() stateOptions {
	return stateOptions{
		fitMode:         FitContain,
		alignment:       AlignCenter,
		direction:       LayoutLTR,
		originalContent: UnspecifiedSize,
		mediumMultiple:  DefaultMediumScaleMultiple,
		rubberBandRatio: DefaultRubberBandRatio,
		stepTolerance:   DefaultStepScaleTolerance,
	}
}

// WithFitMode sets the fit mode. The default is FitContain.
func WithFitMode(m FitMode) StateOption {
	return func(o *stateOptions) { o.fitMode = m }
}

// WithAlignment sets the alignment of the content within the container.
// The default is AlignCenter.
func WithAlignment(a Alignment) StateOption {
	return func(o *stateOptions) { o.alignment = a }
}

// WithRotation sets the content rotation in degrees. It must be a multiple
// of 90; NewState fails otherwise.
func WithRotation(degrees int) StateOption {
	return func(o *stateOptions) { o.rotation = degrees }
}

// WithLayoutDirection sets the reading direction used to resolve start/end
// alignments. The default is LayoutLTR.
func WithLayoutDirection(d LayoutDirection) StateOption {
	return func(o *stateOptions) { o.direction = d }
}

// WithOriginalContentSize declares the original decoded resolution of the
// content when the displayed content is a downsample of it. The step scale
// sequencer then offers a step that restores 1:1 original pixels.
func WithOriginalContentSize(s Size) StateOption {
	return func(o *stateOptions) { o.originalContent = s }
}

// WithMediumScaleMultiple sets the multiple of the minimum scale used as
// the medium step candidate. The default is DefaultMediumScaleMultiple.
func WithMediumScaleMultiple(m float64) StateOption {
	return func(o *stateOptions) { o.mediumMultiple = m }
}

// WithRubberBandRatio sets how far gesture scaling can overshoot the scale
// limits; the limited scale approaches but never reaches max*ratio (or
// min/ratio). The default is DefaultRubberBandRatio.
func WithRubberBandRatio(r float64) StateOption {
	return func(o *stateOptions) { o.rubberBandRatio = r }
}

// WithStepScaleTolerance sets the slack used when cycling step scales.
// The default is DefaultStepScaleTolerance.
func WithStepScaleTolerance(t float64) StateOption {
	return func(o *stateOptions) { o.stepTolerance = t }
}

// WithLimitOffsetToBase restricts panning to the part of the base display
// rectangle that lies inside the container, instead of the full (possibly
// overflowing) base rectangle.
func WithLimitOffsetToBase(limit bool) StateOption {
	return func(o *stateOptions) { o.limitOffsetToBase = limit }
}
