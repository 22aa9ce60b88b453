package option

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// Set is a duplicate-free collection of options. Two options are duplicates
// if they are Equal; options of the same type with differing payloads may
// both be members.
//
// The zero value is an empty set ready to use. The null option never
// becomes a member.
type Set struct {
	opts []Option // sorted by Option.Compare
}

// NewSet creates a set and inserts opts in order, skipping null options.
func NewSet(opts ...Option) *Set {
	s := &Set{opts: make([]Option, 0, len(opts))}
	for _, o := range opts {
		s.Insert(o)
	}
	return s
}

// Insert adds o to the set. Inserting the null option or an option already
// contained is a no-op. Insert reports whether the set changed.
func (s *Set) Insert(o Option) bool {
	if o.IsNull() {
		return false
	}
	i, found := slices.BinarySearchFunc(s.opts, o, Option.Compare)
	if found {
		return false
	}
	if s.IncludesType(o.typ) {
		tracer().Debugf("option set: %s joins other options of type %s", o, o.typ)
	}
	s.opts = slices.Insert(s.opts, i, o)
	return true
}

// Len returns the number of options in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.opts)
}

// Includes reports whether an option equal to o is a member of s.
func (s *Set) Includes(o Option) bool {
	_, found := s.find(o)
	return found
}

// IncludesType reports whether s contains an option of type t, regardless
// of its payload.
func (s *Set) IncludesType(t Type) bool {
	_, found := s.findType(t)
	return found
}

// Get returns the member of s equal to o. It is an error to call Get
// for an option not contained in s.
func (s *Set) Get(o Option) Option {
	i, found := s.find(o)
	if !found {
		fatal(&LookupError{Option: o})
		return Option{}
	}
	return s.opts[i]
}

// GetType returns a member of s of type t. If more than one member has type
// t, the one with the smallest payload is returned (false before true,
// numerically smallest, lexically first). It is an error to call GetType
// for a type not contained in s.
func (s *Set) GetType(t Type) Option {
	i, found := s.findType(t)
	if !found {
		fatal(&LookupError{Option: Option{typ: t}, ByType: true})
		return Option{}
	}
	return s.opts[i]
}

// BoolVal is Get(o).BoolVal().
func (s *Set) BoolVal(o Option) bool {
	return s.Get(o).BoolVal()
}

// StringVal is Get(o).StringVal().
func (s *Set) StringVal(o Option) string {
	return s.Get(o).StringVal()
}

// IntVal is Get(o).IntVal().
func (s *Set) IntVal(o Option) int {
	return s.Get(o).IntVal()
}

// RealVal is Get(o).RealVal().
func (s *Set) RealVal(o Option) float64 {
	return s.Get(o).RealVal()
}

// OfType returns all members of type t, in sort order.
func (s *Set) OfType(t Type) []Option {
	i, found := s.findType(t)
	if !found {
		return nil
	}
	j := i + 1
	for j < len(s.opts) && s.opts[j].typ == t {
		j++
	}
	return slices.Clone(s.opts[i:j])
}

// Types returns the distinct types of the members of s.
func (s *Set) Types() []Type {
	var types []Type
	for o := range s.All() {
		if len(types) == 0 || types[len(types)-1] != o.typ {
			types = append(types, o.typ)
		}
	}
	return types
}

// All iterates over the members of s in sort order.
func (s *Set) All() iter.Seq[Option] {
	return func(yield func(Option) bool) {
		if s == nil {
			return
		}
		for _, o := range s.opts {
			if !yield(o) {
				return
			}
		}
	}
}

func (s *Set) String() string {
	if s == nil {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, o := range s.opts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(o.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (s *Set) find(o Option) (int, bool) {
	if s == nil {
		return 0, false
	}
	return slices.BinarySearchFunc(s.opts, o, Option.Compare)
}

// findType locates the first member of type t. Members are sorted by type
// first, so this is the member with the smallest payload.
func (s *Set) findType(t Type) (int, bool) {
	if s == nil {
		return 0, false
	}
	return slices.BinarySearchFunc(s.opts, t, func(o Option, t Type) int {
		return cmp.Compare(o.typ, t)
	})
}
