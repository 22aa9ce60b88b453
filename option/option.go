package option

import (
	"cmp"
	"strconv"

	"github.com/npillmayer/itensor/approx"
)

// Option is a named, typed parameter. It holds a Type and exactly one
// payload, the kind of which is determined by the type.
//
// Options are values and immutable after construction. The zero value
// is the null option.
type Option struct {
	typ Type
	val payload // nil for flags and the null option
}

// payload is the sealed set of payload variants.
type payload interface {
	kind() Kind
	compare(other payload) int
	value() any
}

type boolPayload bool
type textPayload string
type intPayload int
type realPayload approx.Real

func (p boolPayload) kind() Kind { return KindBool }
func (p textPayload) kind() Kind { return KindString }
func (p intPayload) kind() Kind  { return KindInt }
func (p realPayload) kind() Kind { return KindReal }

func (p boolPayload) value() any { return bool(p) }
func (p textPayload) value() any { return string(p) }
func (p intPayload) value() any  { return int(p) }
func (p realPayload) value() any { return float64(p) }

func (p boolPayload) compare(other payload) int {
	q := other.(boolPayload)
	switch {
	case p == q:
		return 0
	case !bool(p):
		return -1
	}
	return 1
}

func (p textPayload) compare(other payload) int {
	return cmp.Compare(p, other.(textPayload))
}

func (p intPayload) compare(other payload) int {
	return cmp.Compare(p, other.(intPayload))
}

func (p realPayload) compare(other payload) int {
	return approx.Real(p).Compare(approx.Real(other.(realPayload)))
}

func zeroPayload(k Kind) payload {
	switch k {
	case KindBool:
		return boolPayload(false)
	case KindString:
		return textPayload("")
	case KindInt:
		return intPayload(0)
	case KindReal:
		return realPayload(0)
	}
	return nil
}

func kindOf(p payload) Kind {
	if p == nil {
		return KindFlag
	}
	return p.kind()
}

// --- Constructors ----------------------------------------------------------

// New creates an option of type t with the zero value of its payload kind.
// This is the constructor for flag-style options, which carry no payload.
// An unknown type results in the null option.
func New(t Type) Option {
	if !t.Valid() {
		return rejected(t, KindNone)
	}
	return Option{typ: t, val: zeroPayload(t.Kind())}
}

// NewBool creates an option of type t with a boolean payload.
// If t does not carry a boolean payload, the result is the null option.
func NewBool(t Type, b bool) Option {
	if t.Kind() != KindBool {
		return rejected(t, KindBool)
	}
	return Option{typ: t, val: boolPayload(b)}
}

// NewString creates an option of type t with a text payload.
// If t does not carry a text payload, the result is the null option.
func NewString(t Type, s string) Option {
	if t.Kind() != KindString {
		return rejected(t, KindString)
	}
	return Option{typ: t, val: textPayload(s)}
}

// NewInt creates an option of type t with an integer payload. For types
// carrying a real payload, n is stored as a real. For any other type the
// result is the null option.
func NewInt(t Type, n int) Option {
	switch t.Kind() {
	case KindInt:
		return Option{typ: t, val: intPayload(n)}
	case KindReal:
		return Option{typ: t, val: realPayload(n)}
	}
	return rejected(t, KindInt)
}

// NewReal creates an option of type t with a real payload.
// If t does not carry a real payload, the result is the null option.
func NewReal(t Type, r float64) Option {
	if t.Kind() != KindReal {
		return rejected(t, KindReal)
	}
	return Option{typ: t, val: realPayload(r)}
}

// rejected traces a construction with a payload not fitting t. The null
// option it returns is never inserted into a Set.
func rejected(t Type, got Kind) Option {
	err := &KindError{Type: t, Want: t.Kind(), Got: got, Op: "construct"}
	tracer().Errorf("%s, creating null option", err.Error())
	return Option{}
}

// Make creates an option of type t from a full set of payload candidates.
// It keeps the one matching the kind of t and drops the others. Make never
// fails; an unknown type results in the null option.
func Make(t Type, b bool, s string, n int, r float64) Option {
	if !t.Valid() {
		tracer().Debugf("option: unknown type %d, creating null option", uint8(t))
		return Option{}
	}
	o := Option{typ: t}
	switch t.Kind() {
	case KindBool:
		o.val = boolPayload(b)
	case KindString:
		o.val = textPayload(s)
	case KindInt:
		o.val = intPayload(n)
	case KindReal:
		o.val = realPayload(r)
	}
	return o
}

// --- Accessors -------------------------------------------------------------

// Type returns the discriminant of o.
func (o Option) Type() Type {
	return o.typ
}

// Kind returns the kind of payload o carries.
func (o Option) Kind() Kind {
	return o.typ.Kind()
}

// Is reports whether o is of type t.
func (o Option) Is(t Type) bool {
	return o.typ == t
}

// IsNull reports whether o is the null option.
func (o Option) IsNull() bool {
	return o.typ == TypeNull
}

// IsNotNull is !IsNull().
func (o Option) IsNotNull() bool {
	return o.typ != TypeNull
}

// BoolVal returns the boolean payload of o. It is an error to call BoolVal
// for an option not carrying a boolean payload.
func (o Option) BoolVal() bool {
	if p, ok := o.val.(boolPayload); ok {
		return bool(p)
	}
	kindMismatch(o.typ, KindBool, "access")
	return false
}

// StringVal returns the text payload of o. It is an error to call StringVal
// for an option not carrying a text payload.
func (o Option) StringVal() string {
	if p, ok := o.val.(textPayload); ok {
		return string(p)
	}
	kindMismatch(o.typ, KindString, "access")
	return ""
}

// IntVal returns the integer payload of o. It is an error to call IntVal
// for an option not carrying an integer payload.
func (o Option) IntVal() int {
	if p, ok := o.val.(intPayload); ok {
		return int(p)
	}
	kindMismatch(o.typ, KindInt, "access")
	return 0
}

// RealVal returns the real payload of o. It is an error to call RealVal
// for an option not carrying a real payload.
func (o Option) RealVal() float64 {
	if p, ok := o.val.(realPayload); ok {
		return float64(p)
	}
	kindMismatch(o.typ, KindReal, "access")
	return 0
}

// Value returns the payload of o as bool, string, int or float64, or nil
// for flags and the null option.
func (o Option) Value() any {
	if o.val == nil {
		return nil
	}
	return o.val.value()
}

// --- Comparison ------------------------------------------------------------

// Compare orders options lexicographically: by type first, then by payload.
// Booleans order false before true, reals compare with tolerance.
// It returns -1, 0 or +1.
func (o Option) Compare(other Option) int {
	if c := cmp.Compare(o.typ, other.typ); c != 0 {
		return c
	}
	if o.val == nil || other.val == nil {
		// flags and nulls carry nothing to compare
		return cmp.Compare(kindOf(o.val), kindOf(other.val))
	}
	if c := cmp.Compare(o.val.kind(), other.val.kind()); c != 0 {
		return c
	}
	return o.val.compare(other.val)
}

// Equal reports whether o and other have the same type and equal payloads.
func (o Option) Equal(other Option) bool {
	return o.Compare(other) == 0
}

// Less reports whether o sorts before other.
func (o Option) Less(other Option) bool {
	return o.Compare(other) < 0
}

func (o Option) String() string {
	switch p := o.val.(type) {
	case boolPayload:
		return o.typ.String() + "(" + strconv.FormatBool(bool(p)) + ")"
	case textPayload:
		return o.typ.String() + "(" + strconv.Quote(string(p)) + ")"
	case intPayload:
		return o.typ.String() + "(" + strconv.Itoa(int(p)) + ")"
	case realPayload:
		return o.typ.String() + "(" + approx.Real(p).String() + ")"
	}
	return o.typ.String()
}
