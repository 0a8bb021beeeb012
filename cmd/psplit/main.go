/*
Command psplit segments a text file into units and splits the units at a set
of cut points.

	psplit [flags] file

Units are words, sentences, graphemes, fields, lines or file fragments. Cut
points are given as a comma separated list of byte offsets (-at) and/or are
derived from wrapping the text to a line width (-width). The result is printed
as a listing of position-tagged units or to the console in alternating colors.

Settings may be read from a YAML file (-config); flags override them.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/parray"
	"github.com/npillmayer/parray/formatter"
	"github.com/npillmayer/parray/textfile"
	"github.com/npillmayer/parray/units"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("psplit", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		flagConfig   = flags.String("config", "", "YAML configuration file")
		flagUnits    = flags.String("units", "", "units: words|sentences|graphemes|fields|lines|fragments")
		flagAt       = flags.String("at", "", "comma separated list of split points (byte offsets)")
		flagWidth    = flags.Int("width", -1, "additionally split at line breaks for this line width")
		flagSnap     = flags.Bool("snap", false, "move split points to grapheme boundaries")
		flagOutput   = flags.String("output", "", "output format: listing|console")
		flagFragSize = flags.Int64("fragsize", -1, "fragment size for loading the file")
		flagTrace    = flags.String("trace", "", "trace level: Debug|Info|Error")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: psplit [flags] file")
		flags.PrintDefaults()
		return 2
	}
	cfg := Defaults()
	if *flagConfig != "" {
		var err error
		if cfg, err = LoadConfig(*flagConfig); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if *flagUnits != "" {
		cfg.Units = *flagUnits
	}
	if *flagAt != "" {
		points, err := ParsePoints(*flagAt)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cfg.At = points
	}
	if *flagWidth >= 0 {
		cfg.Width = *flagWidth
	}
	if *flagSnap {
		cfg.Snap = true
	}
	if *flagOutput != "" {
		cfg.Output = *flagOutput
	}
	if *flagFragSize >= 0 {
		cfg.FragSize = *flagFragSize
	}
	if *flagTrace != "" {
		cfg.TraceLevel = *flagTrace
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := setupTracing(cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := split(flags.Arg(0), cfg, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func setupTracing(cfg Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(cfg.tracingConfiguration(), "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func split(name string, cfg Config, out io.Writer) error {
	fragments, err := textfile.Load(name, cfg.FragSize)
	if err != nil {
		return err
	}
	text := parray.Text(fragments)
	var unitArray []parray.Item[string]
	switch cfg.Units {
	case "words":
		unitArray = units.Words(text)
	case "sentences":
		unitArray = units.Sentences(text)
	case "graphemes":
		unitArray = units.Graphemes(text)
	case "fields":
		unitArray = units.Fields(text)
	case "lines":
		unitArray = units.Lines(text)
	default:
		unitArray = fragments
	}
	points := append([]int{}, cfg.At...)
	if cfg.Width > 0 {
		points = append(points, formatter.BreakPoints(text, &formatter.Config{LineWidth: cfg.Width})...)
	}
	if cfg.Snap {
		points = units.SnapToGraphemes(text, points)
	}
	result, err := parray.CheckedSplits(unitArray, points, parray.StringSubdivider)
	if err != nil {
		return err
	}
	if cfg.Output == "console" {
		return formatter.NewConsole(out, nil).Print(result)
	}
	return formatter.Listing(out, result)
}
