package main

import (
	"fmt"

	"github.com/npillmayer/itensor/option"
)

// catalog lists every option type with its payload kind and the option
// its factory creates by default.
func catalog() [][]string {
	data := [][]string{{"Type", "Payload", "Default"}}
	for _, t := range option.Types() {
		data = append(data, []string{t.String(), t.Kind().String(), option.Default(t).String()})
	}
	return data
}

// sampleSet holds a few options, two of which share a type.
func sampleSet() *option.Set {
	return option.NewSet(
		option.Cutoff(1e-5),
		option.Cutoff(1e-8),
		option.Verbose(false),
		option.NumCenter(1),
		option.DoPinning(),
		option.Option{},
	)
}

// lookups shows, for every option type, what a lookup by type in set yields.
func lookups(set *option.Set) [][]string {
	data := [][]string{{"Type", "Members", "GetType"}}
	for _, t := range option.Types() {
		found := "–"
		if set.IncludesType(t) {
			found = set.GetType(t).String()
		}
		members := set.OfType(t)
		tracer().Debugf("%s has %d members in sample set", t, len(members))
		data = append(data, []string{t.String(), fmt.Sprintf("%d", len(members)), found})
	}
	return data
}
