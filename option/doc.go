/*
Package option provides typed, named parameters for numeric routines.

Numeric algorithms tend to grow long lists of tunable parameters: a
truncation cutoff, a verbosity flag, the number of sites to optimize at
once, and so on. Passing all of them through every level of nested calls
is tedious, so this package bundles them as values of type Option, collected
in a Set:

	opts := option.NewSet(option.Cutoff(1e-8), option.Quiet(), option.NumCenter(1))
	…
	if opts.IncludesType(option.TypeCutoff) {
	    cutoff := opts.GetType(option.TypeCutoff).RealVal()
	    …
	}

Every Option has a Type, drawn from a closed enumeration, and exactly one
payload slot. The kind of the payload (bool, integer, real, text, or none at
all for flag-style options) is fixed by the Type, see Type.Kind. Options are
best created with the factory functions (Auto, Cutoff, Verbose, …), which
know the correct payload kind and provide a sensible default value.

Real-valued payloads compare with a tolerance, as provided by package approx.

# Failures

Asking a Set for an option it does not contain is a programming error, as
is reading a payload with an accessor of the wrong kind. Both are reported
through the package's tracer and then raise a panic with a *LookupError or
*KindError, respectively. Clients for which absence is a valid case check
with Includes or IncludesType first.

Constructing options never fails. A constructor handed a payload which does
not fit the type traces the mismatch and returns the null option, which a
Set ignores on insertion.

# Concurrency

Options are immutable and may be shared freely. A Set is not safe for
concurrent modification; the intended usage is to fill it in a single
goroutine and share it read-only afterwards.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'itensor.option'
func tracer() tracing.Trace {
	return tracing.Select("itensor.option")
}
