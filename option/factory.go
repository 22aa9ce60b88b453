package option

// Factory functions are the sanctioned way to create options. Each of them
// knows the payload kind of its type. Optional arguments stand in for
// default values; only the first one is considered.

// Auto creates an Auto option, defaulting to true.
func Auto(val ...bool) Option {
	return NewBool(TypeAuto, or(val, true))
}

// Cutoff creates a Cutoff option with a real payload, defaulting to 0.
func Cutoff(val ...float64) Option {
	return NewReal(TypeCutoff, or(val, 0))
}

// CutoffN creates a Cutoff option from an integer. The integer is stored as
// a real: CutoffN(n) returns the same option as Cutoff(float64(n)).
func CutoffN(n int) Option {
	return NewInt(TypeCutoff, n)
}

// DebugLevel creates a DebugLevel option.
func DebugLevel(level int) Option {
	return NewInt(TypeDebugLevel, level)
}

// DoPinning creates a DoPinning flag.
func DoPinning() Option {
	return New(TypeDoPinning)
}

// NumCenter creates a NumCenter option, defaulting to 2.
func NumCenter(nc ...int) Option {
	return NewInt(TypeNumCenter, or(nc, 2))
}

// Offset creates an Offset option, defaulting to 0.
func Offset(n ...int) Option {
	return NewInt(TypeOffset, or(n, 0))
}

// PreserveShape creates a PreserveShape flag.
func PreserveShape() Option {
	return New(TypePreserveShape)
}

// Quiet creates a Quiet option, defaulting to true.
func Quiet(val ...bool) Option {
	return NewBool(TypeQuiet, or(val, true))
}

// UseWF creates a UseWF flag.
func UseWF() Option {
	return New(TypeUseWF)
}

// Verbose creates a Verbose option, defaulting to true.
func Verbose(val ...bool) Option {
	return NewBool(TypeVerbose, or(val, true))
}

// Weight creates a Weight option, defaulting to 1.
func Weight(w ...float64) Option {
	return NewReal(TypeWeight, or(w, 1))
}

// Default returns the option a factory function creates for type t when
// called without arguments. DebugLevel defaults to level 0. For TypeNull
// and unknown types, Default returns the null option.
func Default(t Type) Option {
	switch t {
	case TypeAuto:
		return Auto()
	case TypeCutoff:
		return Cutoff()
	case TypeDebugLevel:
		return DebugLevel(0)
	case TypeDoPinning:
		return DoPinning()
	case TypeNumCenter:
		return NumCenter()
	case TypeOffset:
		return Offset()
	case TypePreserveShape:
		return PreserveShape()
	case TypeQuiet:
		return Quiet()
	case TypeUseWF:
		return UseWF()
	case TypeVerbose:
		return Verbose()
	case TypeWeight:
		return Weight()
	}
	return Option{}
}

// or returns the first argument, or def if there is none.
func or[T any](args []T, def T) T {
	if len(args) > 0 {
		return args[0]
	}
	return def
}
