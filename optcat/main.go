/*
Command optcat prints the catalog of option types, together with their
payload kinds and default values, and demonstrates lookups on a sample
option set.

Usage:

	optcat [-trace Debug|Info|Error] [-epsilon 1e-12]

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/itensor/approx"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'itensor.optcat'
func tracer() tracing.Trace {
	return tracing.Select("itensor.optcat")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	eps := flag.String("epsilon", "", "tolerance for comparing real payloads")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.itensor.optcat": *tlevel,
		"trace.itensor.option": *tlevel,
		"trace.itensor.approx": *tlevel,
	}
	if *eps != "" {
		conf[approx.ConfigKey] = *eps
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	switch *tlevel {
	case "Debug", "Info", "Error":
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(2)
	}
	if err := approx.Configure(conf); err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	tracer().Infof("Trace level is %s, epsilon is %g", *tlevel, approx.Epsilon())

	pterm.Info.Println("Option types")
	pterm.DefaultTable.WithHasHeader().WithData(catalog()).Render()
	set := sampleSet()
	pterm.Info.Printf("Lookups by type in sample set %s\n", set)
	pterm.DefaultTable.WithHasHeader().WithData(lookups(set)).Render()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
