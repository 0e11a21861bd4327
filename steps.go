package panzoom

import (
	"math"
	"sort"
)

// DefaultMediumScaleMultiple is the factor between the minimum and medium
// step scales when no other candidate wins.
const DefaultMediumScaleMultiple = 3.0

// DefaultStepScaleTolerance is the slack added to the current scale before
// the next step is selected, so a scale already "at" a step advances past
// it.
const DefaultStepScaleTolerance = 0.1

// StepScales are the three canonical zoom levels for tap-to-cycle zooming.
// Min is the fit-mode baseline, Max is always exactly twice Medium.
type StepScales struct {
	Min, Medium, Max float64
}

// Slice returns the steps in ascending order for NextStepScale.
func (s StepScales) Slice() []float64 {
	return []float64{s.Min, s.Medium, s.Max}
}

// ComputeStepScales computes the step scales for the given configuration.
// The medium step is the largest of: min times mediumMultiple, the scale
// filling the container on both axes (skipped for FitFillBounds, which
// already fills both), and the scale restoring the original decoded
// resolution when a strictly larger original size is known. Empty container
// or content yields (1, 1, 1). rotation must be a multiple of 90.
func ComputeStepScales(container, content, originalContent Size, mode FitMode, rotation int, mediumMultiple float64) (StepScales, error) {
	if err := checkRotation(rotation); err != nil {
		return StepScales{}, err
	}
	if container.IsEmpty() || content.IsEmpty() {
		return StepScales{Min: 1, Medium: 1, Max: 1}, nil
	}
	if mediumMultiple <= 0 {
		mediumMultiple = DefaultMediumScaleMultiple
	}

	rotated := content.rotate(rotation)
	minScale := mode.ScaleFactor(rotated, container).ScaleX

	medium := minScale * mediumMultiple
	if mode != FitFillBounds {
		fillBoth := math.Max(
			container.Width/rotated.Width,
			container.Height/rotated.Height,
		)
		medium = math.Max(medium, fillBoth)
	}
	if originalContent.IsSpecified() && !originalContent.IsEmpty() &&
		(originalContent.Width > content.Width || originalContent.Height > content.Height) {
		originScale := math.Max(
			originalContent.Width/content.Width,
			originalContent.Height/content.Height,
		)
		medium = math.Max(medium, originScale)
	}

	return StepScales{Min: minScale, Medium: medium, Max: medium * 2}, nil
}

// NextStepScale returns the step to jump to from currentScale: the smallest
// step strictly greater than currentScale plus tolerance, comparing both
// sides rounded to one decimal so float noise cannot make repeated taps
// oscillate. When no step qualifies the cycle wraps to the smallest step.
func NextStepScale(steps []float64, currentScale, tolerance float64) float64 {
	if len(steps) == 0 {
		return currentScale
	}
	sorted := make([]float64, len(steps))
	copy(sorted, steps)
	sort.Float64s(sorted)

	target := round1(currentScale + tolerance)
	for _, step := range sorted {
		if round1(step) > target {
			return step
		}
	}
	return sorted[0]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
