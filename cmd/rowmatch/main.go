// Command rowmatch pairs the rows of two CSV matrices by L1 distance.
//
// Usage:
//
//	rowmatch -a a.csv -b b.csv [flags]
//
// Rows are matched greedily, one pass per threshold, each pass only
// considering rows left unmatched by earlier passes. Every output line holds
// the row index in A, the row index in B and their distance.
//
// Examples:
//
//	rowmatch -a left.csv -b right.csv
//	rowmatch -a left.csv -b right.csv -thresholds 0,0.5,2
//	rowmatch -a left.csv -b right.csv -sort -header -v
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wrangle/match"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	pathA, pathB string
	thresholds   []float64
	sortRows     bool
	header       bool
	legacy       bool
	verbose      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	var thresholds string

	fs := flag.NewFlagSet("rowmatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.pathA, "a", "", "CSV file with the rows of the first matrix")
	fs.StringVar(&o.pathB, "b", "", "CSV file with the rows of the second matrix")
	fs.StringVar(&thresholds, "thresholds", "inf", "comma-separated distance thresholds, one matching pass each")
	fs.BoolVar(&o.sortRows, "sort", false, "sort the rows of both matrices lexicographically before matching")
	fs.BoolVar(&o.header, "header", false, "skip the first line of each CSV file")
	fs.BoolVar(&o.legacy, "legacy", false, "match rows against row 0 once the second matrix is exhausted")
	fs.BoolVar(&o.verbose, "v", false, "log every matching pass to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rowmatch -a a.csv -b b.csv [flags]\n\n")
		fmt.Fprintf(stderr, "Pairs the rows of two matrices by greedy L1 matching.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rowmatch -a left.csv -b right.csv\n")
		fmt.Fprintf(stderr, "  rowmatch -a left.csv -b right.csv -thresholds 0,0.5,2\n")
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.pathA == "" || o.pathB == "" {
		fs.Usage()
		return o, errors.New("both -a and -b are required")
	}

	th, err := parseThresholds(thresholds)
	if err != nil {
		fs.Usage()
		return o, err
	}
	o.thresholds = th

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	a, err := readMatrix(o.pathA, o.header)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	b, err := readMatrix(o.pathB, o.header)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if o.sortRows {
		a, b = match.SortRows(a), match.SortRows(b)
	}

	opts := []match.Option{match.WithLogger(logger)}
	if o.legacy {
		opts = append(opts, match.WithLegacyExhaustion())
	}

	res, err := match.Hierarchical(a, b, o.thresholds, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Info("matching finished", "rows_a", len(a), "rows_b", len(b), "pairs", res.Len())

	if err := printPairs(stdout, res); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func parseThresholds(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		switch strings.ToLower(field) {
		case "inf", "none":
			out = append(out, math.Inf(1))
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(v) {
			return nil, fmt.Errorf("invalid threshold %q", field)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("no thresholds given")
	}
	return out, nil
}

func readMatrix(path string, header bool) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := parseMatrix(f, header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func parseMatrix(r io.Reader, header bool) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if header && len(records) > 0 {
		records = records[1:]
	}

	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func printPairs(w io.Writer, res match.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "A\tB\tDistance\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t-\t--------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for k, ip := range res.Indices {
		p := res.Pairs[k]
		d, err := match.L1(p.A, p.B)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.6g\n", ip.I, ip.J, d); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
