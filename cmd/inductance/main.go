// Command inductance evaluates closed-form inductance formulas.
//
// Usage:
//
//	inductance [flags] <geometry> [name=value ...]
//	inductance -request calc.yaml
//
// Parameter values take an optional unit symbol matching their kind;
// bare numbers are SI. Omitted parameters use the geometry's defaults.
//
// Examples:
//
//	inductance -list
//	inductance round length=3m diameter=5mm
//	inductance -material iron -unit nH double spacing=25cm
//	inductance -sweep 1kHz:10MHz:31 -xlsx round.xlsx round
//	inductance -request calc.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sgostarter/i/l"

	"github.com/cwbudde/algo-inductance/inductance"
	"github.com/cwbudde/algo-inductance/internal/request"
	"github.com/cwbudde/algo-inductance/material"
	"github.com/cwbudde/algo-inductance/report"
	"github.com/cwbudde/algo-inductance/units"
)

// errUsage marks command-line mistakes that are reported with the usage text.
var errUsage = errors.New("usage")

type options struct {
	list          bool
	listMaterials bool
	unit          string
	requestFile   string
	materialsFile string
	material      string
	sweep         string
	xlsx          string
	tsv           string
	quiet         bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inductance", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.BoolVar(&o.list, "list", false, "list geometries and their parameters")
	fs.BoolVar(&o.listMaterials, "list-materials", false, "list the material table")
	fs.StringVar(&o.unit, "unit", "", "inductance unit of the output (H, mH, uH, nH)")
	fs.StringVar(&o.requestFile, "request", "", "evaluate the calculations of a YAML request file")
	fs.StringVar(&o.materialsFile, "materials", "", "YAML file overriding material properties")
	fs.StringVar(&o.material, "material", "", "conductor material setting conductivity and permeability")
	fs.StringVar(&o.sweep, "sweep", "", "frequency sweep fmin:fmax:n, logarithmic unless fmin is 0")
	fs.StringVar(&o.xlsx, "xlsx", "", "write the result to an XLSX workbook")
	fs.StringVar(&o.tsv, "tsv", "", "write the result as tab-separated values")
	fs.BoolVar(&o.quiet, "quiet", false, "suppress log output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: inductance [flags] <geometry> [name=value ...]\n")
		fmt.Fprintf(stderr, "       inductance -request calc.yaml\n\n")
		fmt.Fprintf(stderr, "Evaluates closed-form inductance formulas after Hertwig.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  inductance round length=3m diameter=5mm\n")
		fmt.Fprintf(stderr, "  inductance -sweep 1kHz:10MHz:31 -xlsx round.xlsx round\n")
		fmt.Fprintf(stderr, "  inductance -list\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	logger := l.NewConsoleLoggerWrapper()
	if o.quiet {
		logger = l.NewNopLoggerWrapper()
	}

	err := execute(&o, fs.Args(), stdout, logger)
	if err == nil {
		return 0
	}

	if errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.Usage()

		return 2
	}

	logger.WithFields(l.ErrorField(err)).Debug("calculation failed")
	fmt.Fprintf(stderr, "invalid input: %v\n", err)

	return 1
}

func execute(o *options, args []string, stdout io.Writer, logger l.Wrapper) error {
	if o.list {
		return printGeometries(stdout)
	}

	table := material.DefaultTable()
	if o.materialsFile != "" {
		var err error
		if table, err = material.LoadTableFile(o.materialsFile, table); err != nil {
			return err
		}

		logger.WithFields(l.StringField("file", o.materialsFile)).Debug("material overrides loaded")
	}

	if o.listMaterials {
		return printMaterials(stdout, table)
	}

	file, err := loadRequest(o, args)
	if err != nil {
		return err
	}

	if table, err = file.MaterialTable(table); err != nil {
		return err
	}

	unit, err := file.OutputUnit(o.unit)
	if err != nil {
		return err
	}

	for i := range file.Calculations {
		c := &file.Calculations[i]
		log := logger.WithFields(l.StringField("geometry", c.Geometry), l.IntField("index", i))

		res, err := c.Evaluate(table, unit)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Geometry, err)
		}

		if err := printResult(stdout, res); err != nil {
			return err
		}

		if err := file.Export(c, res); err != nil {
			log.WithFields(l.ErrorField(err)).Error("export failed")
			return err
		}

		log.Debug("calculation done")
	}

	return nil
}

// perCalculation returns the flags given that describe a single command-line
// calculation.
func (o *options) perCalculation() []string {
	var set []string

	for _, f := range []struct {
		name  string
		value string
	}{
		{"-material", o.material},
		{"-sweep", o.sweep},
		{"-xlsx", o.xlsx},
		{"-tsv", o.tsv},
	} {
		if f.value != "" {
			set = append(set, f.name)
		}
	}

	return set
}

// loadRequest returns the request file named by -request, or a single
// calculation assembled from the command line.
func loadRequest(o *options, args []string) (*request.File, error) {
	if o.requestFile != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: -request takes no geometry arguments", errUsage)
		}

		if flags := o.perCalculation(); len(flags) > 0 {
			return nil, fmt.Errorf("%w: %s cannot be combined with -request; set them in the request file",
				errUsage, strings.Join(flags, ", "))
		}

		return request.LoadFile(o.requestFile)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing geometry (use -list to see available)", errUsage)
	}

	c := request.Calculation{
		Geometry: strings.ToLower(strings.TrimSpace(args[0])),
		Material: o.material,
		Params:   make(map[string]any, len(args)-1),
		XLSX:     o.xlsx,
		TSV:      o.tsv,
	}

	for _, kv := range args[1:] {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: argument %q is not name=value", errUsage, kv)
		}

		c.Params[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	if o.sweep != "" {
		s, err := parseSweep(o.sweep)
		if err != nil {
			return nil, err
		}

		c.Sweep = s
	}

	return &request.File{Calculations: []request.Calculation{c}}, nil
}

// parseSweep reads fmin:fmax:n.
func parseSweep(spec string) (*request.Sweep, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: sweep %q is not fmin:fmax:n", inductance.ErrInvalidSweep, spec)
	}

	start, err := units.ParseValue(units.Frequency, parts[0])
	if err != nil {
		return nil, err
	}

	stop, err := units.ParseValue(units.Frequency, parts[1])
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: point count %q", inductance.ErrInvalidSweep, parts[2])
	}

	return &request.Sweep{Start: start, Stop: stop, Points: n, Log: start > 0}, nil
}

func printGeometries(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Geometry\tParameter\tDefault\tUnit\tDescription\n")
	fmt.Fprintf(tw, "--------\t---------\t-------\t----\t-----------\n")

	for _, g := range inductance.Geometries() {
		fmt.Fprintf(tw, "%s\t\t\t\t%s\n", g.Name, g.Title)

		for _, p := range g.Params {
			symbol := ""
			if list := units.Units(p.Kind); len(list) > 0 {
				symbol = list[0].Symbol
			}

			fmt.Fprintf(tw, "\t%s\t%v\t%s\t%s\n", p.Name, p.Default, symbol, p.Usage)
		}
	}

	return tw.Flush()
}

func printMaterials(w io.Writer, t material.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Material\tConductivity [S/m]\tPermeability\tPermittivity\tSource\n")
	fmt.Fprintf(tw, "--------\t------------------\t------------\t------------\t------\n")

	for _, m := range t.All() {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%s\n", m.Name, m.Conductivity, m.Permeability, m.Permittivity, m.Source)
	}

	return tw.Flush()
}

func printResult(w io.Writer, r *report.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\n", r.Geometry, r.Title)

	for _, e := range r.Params {
		fmt.Fprintf(tw, "  %s\t%v\t%s\n", e.Name, e.Value, e.Unit)
	}

	fmt.Fprintf(tw, "Inductance\t%.6g\t%s\n", r.Unit.FromSI(r.Inductance), r.Unit.Symbol)

	if r.SkinFactor > 0 {
		fmt.Fprintf(tw, "Skin factor\t%.6g\t\n", r.SkinFactor)
	}

	if len(r.Points) > 0 {
		fmt.Fprintf(tw, "\nFrequency [Hz]\tSkin factor\tInductance [%s]\n", r.Unit.Symbol)

		for _, p := range r.Points {
			fmt.Fprintf(tw, "%.6g\t%.6g\t%.6g\n", p.Frequency, p.SkinFactor, r.Unit.FromSI(p.Inductance))
		}
	}

	fmt.Fprintf(tw, "Accuracy\t%s\t\n", r.Accuracy)
	fmt.Fprintf(tw, "Reference\t%s\t\n\n", r.Reference)

	return tw.Flush()
}
