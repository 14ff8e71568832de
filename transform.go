package polaris

import (
	"fmt"
	"math"
)

// Transform is a 2D rigid-body pose: a rotation by Theta radians followed by
// a translation by (X, Y) millimetres.
//
// Theta is never normalized. Transforms are values; composition always
// returns a new Transform.
type Transform struct {
	X     float64 `json:"x"`     // Translation along X in millimetres
	Y     float64 `json:"y"`     // Translation along Y in millimetres
	Theta float64 `json:"theta"` // Rotation in radians
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{}
}

// FromTranslation returns a pure translation.
func FromTranslation(x, y float64) Transform {
	return Transform{X: x, Y: y}
}

// FromRotation returns a pure rotation.
func FromRotation(theta float64) Transform {
	return Transform{Theta: theta}
}

// Compose returns the transform where b happens first and a happens second.
// This is the language's @ operator: a @ b.
//
// a's translation is rotated into the frame established by b, then b's own
// translation and rotation are added.
func Compose(a, b Transform) Transform {
	s, c := math.Sincos(b.Theta)

	return Transform{
		X:     b.X + c*a.X - s*a.Y,
		Y:     b.Y + s*a.X + c*a.Y,
		Theta: b.Theta + a.Theta,
	}
}

// Inverse returns the transform t' such that Compose(t', t) is the identity.
func (t Transform) Inverse() Transform {
	s, c := math.Sincos(t.Theta)

	// Undo t's translation, then rotate back by -Theta.
	return Transform{
		X:     -(c*t.X + s*t.Y),
		Y:     -(-s*t.X + c*t.Y),
		Theta: -t.Theta,
	}
}

// Apply maps the point (x, y) through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	p := Compose(FromTranslation(x, y), t)
	return p.X, p.Y
}

// Degrees returns Theta in degrees.
func (t Transform) Degrees() float64 {
	return t.Theta * 180 / math.Pi
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("Transform(%gx%g,%g)", t.X, t.Y, t.Theta)
}
