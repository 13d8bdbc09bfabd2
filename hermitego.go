package hermitego

// Axis identifies one of the three Euclidean axes. Axes are 1-based so that
// the zero value is invalid.
type Axis int

const (
	// AxisX is the first axis, variable x.
	AxisX Axis = iota + 1
	// AxisY is the second axis, variable y.
	AxisY
	// AxisZ is the third axis, variable z.
	AxisZ
)

// Label returns the variable label of the axis ("x", "y" or "z").
func (a Axis) Label() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (a Axis) String() string { return a.Label() }

func (a Axis) valid() bool { return a >= AxisX && a <= AxisZ }

// Normalization selects one of the two standard Hermite polynomial families.
type Normalization int

const (
	// Probabilist selects He_n, orthogonal under the standard Gaussian
	// weight. This is the default.
	Probabilist Normalization = iota
	// Physicist selects H_n, the scaled-argument family common in physics.
	Physicist
)

// String implements fmt.Stringer.
func (n Normalization) String() string {
	switch n {
	case Probabilist:
		return "probabilist"
	case Physicist:
		return "physicist"
	default:
		return "unknown"
	}
}

// axisBytes are the index-string labels in axis order.
var axisBytes = [3]byte{'x', 'y', 'z'}
