package panzoom

import (
	"errors"
	"fmt"
	"math"
)

// ErrOriginMismatch is returned when two transforms with incompatible
// scale or rotation origins are combined. Composing such transforms is
// ill-defined; the caller must bring them to a common origin first.
var ErrOriginMismatch = errors.New("panzoom: transform origins do not match")

// Transform represents an affine composition applied to content within a
// container: rotate about RotationOrigin, then scale about ScaleOrigin,
// then translate by Offset. Both origins are fractions of the container.
//
// The zero value of Transform is not the identity; use IdentityTransform.
type Transform struct {
	Scale          ScaleFactor
	Offset         Offset
	Rotation       float64 // degrees
	ScaleOrigin    TransformOrigin
	RotationOrigin TransformOrigin
}

// IdentityTransform leaves content at its rest position.
var IdentityTransform = Transform{Scale: OriginScaleFactor}

// IsIdentity reports whether the transform has no effect.
func (t Transform) IsIdentity() bool {
	return t.Scale.IsOrigin() && t.Offset == (Offset{}) && t.Rotation == 0
}

// ScaleX returns the horizontal scale component. For the uniform scales the
// kernel produces it doubles as "the" scale of the transform.
func (t Transform) ScaleX() float64 { return t.Scale.ScaleX }

// ScaleY returns the vertical scale component.
func (t Transform) ScaleY() float64 { return t.Scale.ScaleY }

// checkOriginCompat verifies that two transforms can be combined: whenever
// both apply a non-identity scale (or a non-zero rotation) their respective
// origins must be equal.
func checkOriginCompat(a, b Transform) error {
	if !a.Scale.IsOrigin() && !b.Scale.IsOrigin() && a.ScaleOrigin != b.ScaleOrigin {
		return fmt.Errorf("%w: scale origins %v and %v", ErrOriginMismatch, a.ScaleOrigin, b.ScaleOrigin)
	}
	if a.Rotation != 0 && b.Rotation != 0 && a.RotationOrigin != b.RotationOrigin {
		return fmt.Errorf("%w: rotation origins %v and %v", ErrOriginMismatch, a.RotationOrigin, b.RotationOrigin)
	}
	return nil
}

// mergeOrigins picks the origin of whichever transform actually uses it.
func mergeOrigins(a, b Transform) (scale, rotation TransformOrigin) {
	scale = a.ScaleOrigin
	if a.Scale.IsOrigin() {
		scale = b.ScaleOrigin
	}
	rotation = a.RotationOrigin
	if a.Rotation == 0 {
		rotation = b.RotationOrigin
	}
	return scale, rotation
}

// Concat combines t with other applied on top of it: scales multiply,
// rotations add, and t's offset is carried through other's scale before
// other's offset is added. It fails with ErrOriginMismatch when the two
// transforms pivot about different origins.
func (t Transform) Concat(other Transform) (Transform, error) {
	if err := checkOriginCompat(t, other); err != nil {
		return Transform{}, err
	}
	scaleOrigin, rotationOrigin := mergeOrigins(t, other)
	return Transform{
		Scale:          t.Scale.Mul(other.Scale),
		Offset:         t.Offset.MulScale(other.Scale).Add(other.Offset),
		Rotation:       t.Rotation + other.Rotation,
		ScaleOrigin:    scaleOrigin,
		RotationOrigin: rotationOrigin,
	}, nil
}

// Lerp interpolates between t (fraction 0) and end (fraction 1). Animated
// transitions call it once per externally driven tick. Like Concat it fails
// with ErrOriginMismatch when the endpoints pivot about different origins.
func (t Transform) Lerp(end Transform, fraction float64) (Transform, error) {
	if err := checkOriginCompat(t, end); err != nil {
		return Transform{}, err
	}
	scaleOrigin, rotationOrigin := mergeOrigins(t, end)
	return Transform{
		Scale:          t.Scale.Lerp(end.Scale, fraction),
		Offset:         t.Offset.Lerp(end.Offset, fraction),
		Rotation:       t.Rotation + (end.Rotation-t.Rotation)*fraction,
		ScaleOrigin:    scaleOrigin,
		RotationOrigin: rotationOrigin,
	}, nil
}

// Matrix flattens the transform into an affine matrix for the given
// container size, resolving the fractional origins into pixel pivots.
func (t Transform) Matrix(container Size) Matrix {
	container.mustSpecified("Matrix")
	m := Identity()
	if t.Rotation != 0 {
		pivot := t.RotationOrigin.Pivot(container)
		m = RotateAbout(t.Rotation*math.Pi/180, pivot.X, pivot.Y).Multiply(m)
	}
	if !t.Scale.IsOrigin() {
		pivot := t.ScaleOrigin.Pivot(container)
		m = ScaleAbout(t.Scale.ScaleX, t.Scale.ScaleY, pivot.X, pivot.Y).Multiply(m)
	}
	if t.Offset != (Offset{}) {
		m = Translate(t.Offset.X, t.Offset.Y).Multiply(m)
	}
	return m
}

// String returns a compact representation for logs and test failures.
func (t Transform) String() string {
	return fmt.Sprintf("Transform(scale=%v, offset=%v, rotation=%.4g)",
		t.Scale, t.Offset, t.Rotation)
}
