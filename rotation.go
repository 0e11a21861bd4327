package panzoom

import (
	"errors"
	"fmt"
)

// ErrRotationNotMultipleOf90 is returned when a rotation-aware operation
// receives an angle that is not a multiple of 90 degrees.
var ErrRotationNotMultipleOf90 = errors.New("panzoom: rotation must be a multiple of 90")

func checkRotation(degrees int) error {
	if degrees%90 != 0 {
		return fmt.Errorf("%w (got %d)", ErrRotationNotMultipleOf90, degrees)
	}
	return nil
}

// normalizeRotation maps any multiple of 90 into [0, 360).
func normalizeRotation(degrees int) int {
	return ((degrees % 360) + 360) % 360
}

// rotatePointInSpace maps a point in a space of the given size to its
// position after the space is rotated clockwise by degrees. The rotated
// space has its own top-left origin, with width and height swapped for odd
// multiples of 90. degrees must already be validated.
func rotatePointInSpace(p Offset, space Size, degrees int) Offset {
	p.mustSpecified("rotatePointInSpace")
	space.mustSpecified("rotatePointInSpace")
	switch normalizeRotation(degrees) {
	case 90:
		return Offset{X: space.Height - p.Y, Y: p.X}
	case 180:
		return Offset{X: space.Width - p.X, Y: space.Height - p.Y}
	case 270:
		return Offset{X: p.Y, Y: space.Width - p.X}
	default:
		return p
	}
}

// reverseRotatePointInSpace undoes rotatePointInSpace: p is a point in the
// rotated space (of size rotatedSpace) and the result is its position in
// the original orientation.
func reverseRotatePointInSpace(p Offset, rotatedSpace Size, degrees int) Offset {
	return rotatePointInSpace(p, rotatedSpace, 360-normalizeRotation(degrees))
}
