package polaris

import "strconv"

// ValueKind represents the runtime kind of a Value.
type ValueKind int

const (
	// ValueNumber indicates a float64 number.
	ValueNumber ValueKind = iota
	// ValuePose indicates a Transform.
	ValuePose
)

// String implements fmt.Stringer.
func (k ValueKind) String() string {
	switch k {
	case ValueNumber:
		return "number"
	case ValuePose:
		return "transform"
	default:
		return "unknown"
	}
}

// Value is the result of evaluating an expression: either a number or a pose.
type Value struct {
	Pose Transform // Pose value, valid when Kind is ValuePose
	Num  float64   // Number value, valid when Kind is ValueNumber
	Kind ValueKind // Value kind
}

// Number wraps a float64 into a Value.
func Number(v float64) Value {
	return Value{Kind: ValueNumber, Num: v}
}

// Pose wraps a Transform into a Value.
func Pose(t Transform) Value {
	return Value{Kind: ValuePose, Pose: t}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.Kind == ValuePose {
		return v.Pose.String()
	}

	return strconv.FormatFloat(v.Num, 'g', -1, 64)
}
