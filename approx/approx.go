package approx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/schuko"
)

// DefaultEpsilon is the tolerance used if no other epsilon has been set.
const DefaultEpsilon = 1e-12

// ConfigKey is the configuration key read by Configure.
const ConfigKey = "approx.epsilon"

var epsilon atomic.Uint64

func init() {
	epsilon.Store(math.Float64bits(DefaultEpsilon))
}

// Epsilon returns the currently active tolerance.
func Epsilon() float64 {
	return math.Float64frombits(epsilon.Load())
}

// SetEpsilon changes the tolerance and returns the previous one.
// Non-positive values and NaN are ignored.
func SetEpsilon(eps float64) float64 {
	prev := Epsilon()
	if !(eps > 0) || math.IsInf(eps, 0) {
		tracer().Errorf("ignoring invalid epsilon %g", eps)
		return prev
	}
	epsilon.Store(math.Float64bits(eps))
	tracer().Debugf("epsilon set to %g (was %g)", eps, prev)
	return prev
}

// Configure sets the tolerance from configuration key "approx.epsilon".
// A missing or empty key leaves the current epsilon untouched.
func Configure(conf schuko.Configuration) error {
	if conf == nil {
		return nil
	}
	s := strings.TrimSpace(conf.GetString(ConfigKey))
	if s == "" {
		return nil
	}
	eps, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("approx: cannot parse %s=%q: %w", ConfigKey, s, err)
	}
	if !(eps > 0) || math.IsInf(eps, 0) {
		return fmt.Errorf("approx: %s must be a positive number, is %q", ConfigKey, s)
	}
	SetEpsilon(eps)
	return nil
}

// Equal reports whether a and b differ by no more than Epsilon.
// A NaN is equal to another NaN and to nothing else.
func Equal(a, b float64) bool {
	return Compare(a, b) == 0
}

// Compare returns 0 if a and b are Equal, -1 if a < b and +1 otherwise.
// As with cmp.Compare, a NaN sorts before every other value.
func Compare(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a == b, math.Abs(a-b) <= Epsilon():
		return 0
	case a < b:
		return -1
	}
	return 1
}

// Real is a float64 which compares with tolerance.
type Real float64

// Equal is Equal(float64(r), float64(other)).
func (r Real) Equal(other Real) bool {
	return Equal(float64(r), float64(other))
}

// Less reports whether r is smaller than other and not Equal to it.
func (r Real) Less(other Real) bool {
	return Compare(float64(r), float64(other)) < 0
}

// Compare is Compare(float64(r), float64(other)).
func (r Real) Compare(other Real) int {
	return Compare(float64(r), float64(other))
}

func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}
