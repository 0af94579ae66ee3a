package lint

// Constants are the thresholds that are compiled in and cannot be
// overridden by configuration.
const (
	MaxConditions     = 4
	MaxCompares       = 2
	MaxElifs          = 3
	MaxExceptCases    = 3
	MaxLenTupleOutput = 5
)

// Option keys, as they appear in configuration files.
const (
	OptMaxDecorators        = "max_decorators"
	OptMaxModuleMembers     = "max_module_members"
	OptMaxTryBodyLength     = "max_try_body_length"
	OptMaxFinallyLength     = "max_finally_length"
	OptMaxExceptExceptions  = "max_except_exceptions"
	OptMaxTupleUnpackLength = "max_tuple_unpack_length"
	OptMaxTypeParams        = "max_type_params"
)

// Options holds the user-overridable thresholds.
// Values are trusted as given; rules never validate them.
type Options struct {
	MaxDecorators        int `koanf:"max_decorators" json:"max_decorators"`
	MaxModuleMembers     int `koanf:"max_module_members" json:"max_module_members"`
	MaxTryBodyLength     int `koanf:"max_try_body_length" json:"max_try_body_length"`
	MaxFinallyLength     int `koanf:"max_finally_length" json:"max_finally_length"`
	MaxExceptExceptions  int `koanf:"max_except_exceptions" json:"max_except_exceptions"`
	MaxTupleUnpackLength int `koanf:"max_tuple_unpack_length" json:"max_tuple_unpack_length"`
	MaxTypeParams        int `koanf:"max_type_params" json:"max_type_params"`
}

// DefaultOptions returns the shipped thresholds.
func DefaultOptions() Options {
	return Options{
		MaxDecorators:        5,
		MaxModuleMembers:     7,
		MaxTryBodyLength:     1,
		MaxFinallyLength:     2,
		MaxExceptExceptions:  3,
		MaxTupleUnpackLength: 4,
		MaxTypeParams:        6,
	}
}

// Apply returns a copy of o with any thresholds present in m replaced.
func (o Options) Apply(m map[string]any) Options {
	o.MaxDecorators = GetIntOption(m, OptMaxDecorators, o.MaxDecorators)
	o.MaxModuleMembers = GetIntOption(m, OptMaxModuleMembers, o.MaxModuleMembers)
	o.MaxTryBodyLength = GetIntOption(m, OptMaxTryBodyLength, o.MaxTryBodyLength)
	o.MaxFinallyLength = GetIntOption(m, OptMaxFinallyLength, o.MaxFinallyLength)
	o.MaxExceptExceptions = GetIntOption(m, OptMaxExceptExceptions, o.MaxExceptExceptions)
	o.MaxTupleUnpackLength = GetIntOption(m, OptMaxTupleUnpackLength, o.MaxTupleUnpackLength)
	o.MaxTypeParams = GetIntOption(m, OptMaxTypeParams, o.MaxTypeParams)
	return o
}

// Map returns the thresholds keyed by option name.
func (o Options) Map() map[string]any {
	return map[string]any{
		OptMaxDecorators:        o.MaxDecorators,
		OptMaxModuleMembers:     o.MaxModuleMembers,
		OptMaxTryBodyLength:     o.MaxTryBodyLength,
		OptMaxFinallyLength:     o.MaxFinallyLength,
		OptMaxExceptExceptions:  o.MaxExceptExceptions,
		OptMaxTupleUnpackLength: o.MaxTupleUnpackLength,
		OptMaxTypeParams:        o.MaxTypeParams,
	}
}

// GetIntOption extracts an int option, handling float64 from JSON.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return defaultVal
	}
}
