package option

import "fmt"

// LookupError is raised when a Set is asked for an option it does not contain.
type LookupError struct {
	Option Option // the requested option (only its type, if ByType is set)
	ByType bool   // lookup was by type alone
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.ByType {
		return fmt.Sprintf("option set does not contain an option of type %s", e.Option.Type())
	}
	return fmt.Sprintf("option set does not contain requested option %s", e.Option)
}

// KindError is raised when a payload is read from an option whose type
// carries a different kind of payload. Constructors given a payload of the
// wrong kind only trace a KindError and return the null option.
type KindError struct {
	Type Type   // type of the option
	Want Kind   // kind of payload the type carries
	Got  Kind   // kind of payload supplied or requested
	Op   string // "construct" or "access"
}

// Error implements the error interface.
func (e *KindError) Error() string {
	if !e.Type.Valid() {
		return fmt.Sprintf("option: cannot %s option of unknown type %s", e.Op, e.Type)
	}
	return fmt.Sprintf("option: cannot %s %s as %s, type carries %s payload",
		e.Op, e.Type, e.Got, e.Want)
}

// fatal reports err and aborts the current computation.
func fatal(err error) {
	tracer().Errorf("%s", err.Error())
	panic(err)
}

func kindMismatch(t Type, got Kind, op string) {
	fatal(&KindError{Type: t, Want: t.Kind(), Got: got, Op: op})
}
