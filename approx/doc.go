/*
Package approx compares real numbers with a tolerance.

Numeric routines frequently carry real-valued parameters, like a truncation
cutoff or a weight. Two such values are considered equal if they differ by no
more than a small epsilon. This makes equality reflexive and symmetric, but
not transitive near the tolerance boundary; clients which use approximate
reals as keys of ordered collections accept this weaker guarantee.

The epsilon is global to the process. It defaults to DefaultEpsilon and may
be changed with SetEpsilon or from an application configuration with
Configure.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package approx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'itensor.approx'
func tracer() tracing.Trace {
	return tracing.Select("itensor.approx")
}
