package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form values such as rule strings.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe their settings.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Flatten returns every parameter as key/value pairs, in group order, ready
// for structured logging.
func (s ParameterSnapshot) Flatten() []any {
	var out []any
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out = append(out, p.Key, p.Value)
		}
	}
	return out
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param builds an integer parameter from an int64.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a floating-point parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// BoolParam builds a boolean parameter.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// StringParam builds a string parameter.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}
