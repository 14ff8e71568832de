package polaris

import "math"

// Unit scale factors applied by the built-in functions.
const (
	DegreeScale = math.Pi / 180 // Degrees to radians
	GradScale   = math.Pi / 200 // Gradians to radians
	RadianScale = 1.0           // Radians to radians
	TurnScale   = 2 * math.Pi   // Turns to radians
	InchScale   = 25.4          // Inches to millimetres
	MilScale    = 0.0254        // Mils to millimetres
	MMScale     = 1.0           // Millimetres to millimetres
)

// NewRootScope returns a fresh root scope holding the built-in functions:
// deg, grad, rad and turn build rotations; inch, mil and mm build
// translations.
func NewRootScope() *Scope {
	return NewScope(nil, map[string]Binding{
		"deg":  rotation(DegreeScale),
		"grad": rotation(GradScale),
		"rad":  rotation(RadianScale),
		"turn": rotation(TurnScale),
		"inch": translation(InchScale),
		"mil":  translation(MilScale),
		"mm":   translation(MMScale),
	})
}

// rotation returns a one-argument function building a scaled rotation.
func rotation(scale float64) Function {
	return Function{Arity: 1, Call: func(s *Scope, args []Node) (Value, error) {
		angle, err := EvaluateNumber(s, args[0])
		if err != nil {
			return Value{}, err
		}

		return Pose(FromRotation(angle * scale)), nil
	}}
}

// translation returns a two-argument function building a scaled translation.
func translation(scale float64) Function {
	return Function{Arity: 2, Call: func(s *Scope, args []Node) (Value, error) {
		x, err := EvaluateNumber(s, args[0])
		if err != nil {
			return Value{}, err
		}

		y, err := EvaluateNumber(s, args[1])
		if err != nil {
			return Value{}, err
		}

		return Pose(FromTranslation(x*scale, y*scale)), nil
	}}
}
