package st7789

import "fmt"

// Rotation defines the panel rotation in quarter turns.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90°
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270°
)

// RotationFromDegrees converts 0, 90, 180 or 270 degrees to a Rotation.
func RotationFromDegrees(degrees int) (Rotation, error) {
	switch degrees {
	case 0:
		return NoRotation, nil
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	default:
		return NoRotation, &ConfigError{
			Field:  "rotation",
			Reason: fmt.Sprintf("%d is not one of 0, 90, 180 or 270", degrees),
		}
	}
}

// Degrees returns the rotation in degrees.
func (r Rotation) Degrees() int {
	return int(r%4) * 90
}

// QuarterTurns returns the number of counter-clockwise quarter turns applied to images.
func (r Rotation) QuarterTurns() int {
	return int(r % 4)
}

// Transposed reports whether the rotation swaps the panel axes.
func (r Rotation) Transposed() bool {
	return r%2 == 1
}

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}
