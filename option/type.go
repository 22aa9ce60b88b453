package option

import "fmt"

// Type is the discriminant of an Option. The set of types is closed.
type Type uint8

// List of all option types. TypeNull comes first, so that the zero value of
// Option is the null option; the remaining types are in alphabetical order.
const (
	TypeNull          Type = iota // sentinel for "no option"
	TypeAuto                      // bool
	TypeCutoff                    // real, truncation error cutoff
	TypeDebugLevel                // int
	TypeDoPinning                 // flag
	TypeNumCenter                 // int, number of center sites
	TypeOffset                    // int
	TypePreserveShape             // flag
	TypeQuiet                     // bool
	TypeUseWF                     // flag, use wavefunction
	TypeVerbose                   // bool
	TypeWeight                    // real
	typeCount
)

var typeNames = [...]string{
	TypeNull:          "NullOption",
	TypeAuto:          "Auto",
	TypeCutoff:        "Cutoff",
	TypeDebugLevel:    "DebugLevel",
	TypeDoPinning:     "DoPinning",
	TypeNumCenter:     "NumCenter",
	TypeOffset:        "Offset",
	TypePreserveShape: "PreserveShape",
	TypeQuiet:         "Quiet",
	TypeUseWF:         "UseWF",
	TypeVerbose:       "Verbose",
	TypeWeight:        "Weight",
}

var typeKinds = [...]Kind{
	TypeNull:          KindNone,
	TypeAuto:          KindBool,
	TypeCutoff:        KindReal,
	TypeDebugLevel:    KindInt,
	TypeDoPinning:     KindFlag,
	TypeNumCenter:     KindInt,
	TypeOffset:        KindInt,
	TypePreserveShape: KindFlag,
	TypeQuiet:         KindBool,
	TypeUseWF:         KindFlag,
	TypeVerbose:       KindBool,
	TypeWeight:        KindReal,
}

// Types returns all valid option types except TypeNull, in declaration order.
func Types() []Type {
	types := make([]Type, 0, typeCount-1)
	for t := TypeNull + 1; t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Valid reports whether t is a member of the enumeration.
func (t Type) Valid() bool {
	return t < typeCount
}

// Kind returns the kind of payload an option of type t carries.
// Unknown types carry no payload.
func (t Type) Kind() Kind {
	if !t.Valid() {
		return KindNone
	}
	return typeKinds[t]
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// Kind is the kind of payload of an option.
type Kind uint8

const (
	KindNone   Kind = iota // null option, no payload
	KindFlag               // presence is the information, no payload
	KindBool               // boolean payload
	KindString             // text payload
	KindInt                // integer payload
	KindReal               // real payload, compared with tolerance
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFlag:
		return "flag"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	}
	return "unknown"
}
