package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/textstat/internal/engine"
	metricspkg "github.com/jeduden/textstat/internal/metrics"
	"github.com/jeduden/textstat/internal/output"
)

func runMetrics(args []string) int {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	var format string

	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat metrics [flags]\n\n"+
			"List the metrics that rank can sort by.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "textstat: metrics takes no file arguments\n")
		return 2
	}

	if err := output.WriteMetricList(os.Stdout, format, metricspkg.All()); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	return 0
}

type rankOptions struct {
	shared     sharedFlags
	metricsRaw string
	byRaw      string
	orderRaw   string
	top        int
	format     string
}

func runRank(args []string) int {
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	var opts rankOptions

	opts.shared.register(fs)
	fs.StringVar(&opts.metricsRaw, "metrics", "", "Comma-separated metrics (defaults to registry defaults)")
	fs.StringVar(&opts.byRaw, "by", "", "Metric to sort by")
	fs.StringVar(&opts.orderRaw, "order", "", "Sort order: asc or desc (defaults by metric)")
	fs.IntVar(&opts.top, "top", 0, "Limit results to top N files (0 = all)")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat rank [flags] [files...]\n\n"+
			"Analyze files and rank them by selected metrics.\n"+
			"With no file arguments, defaults to the current directory.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opts.top < 0 {
		fmt.Fprintf(os.Stderr, "textstat: --top must be >= 0\n")
		return 2
	}

	defs, byDef, order, err := resolveRankSelection(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	cfg, logger, err := opts.shared.load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	fileArgs := fs.Args()
	if len(fileArgs) == 0 {
		fileArgs = []string{"."}
	}
	files, err := opts.shared.resolve(cfg, fileArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &engine.Runner{Config: cfg, Logger: logger}
	result, err := runner.Run(ctx, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	printErrors(result.Errors)

	rows := metricspkg.Collect(result.Files, defs)
	metricspkg.SortRows(rows, byDef, order)
	rows = metricspkg.LimitRows(rows, opts.top)

	if !opts.shared.quiet {
		if err := output.WriteRank(os.Stdout, opts.format, rows, defs); err != nil {
			fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
			return 2
		}
	}
	logger.Printf("ranked %d files by %s (%s)", len(rows), byDef.Name, order)

	if len(result.Errors) > 0 {
		return 2
	}
	return 0
}

func resolveRankSelection(
	opts rankOptions,
) ([]metricspkg.Definition, metricspkg.Definition, metricspkg.Order, error) {
	switch opts.format {
	case "text", "json":
	default:
		return nil, metricspkg.Definition{}, "", fmt.Errorf(
			"unknown format %q (supported: text, json)", opts.format)
	}

	selectedNames := metricspkg.SplitList(opts.metricsRaw)
	defs, err := metricspkg.Resolve(selectedNames)
	if err != nil {
		return nil, metricspkg.Definition{}, "", err
	}

	byDef := defs[0]
	if strings.TrimSpace(opts.byRaw) != "" {
		byDefs, err := metricspkg.Resolve([]string{opts.byRaw})
		if err != nil {
			return nil, metricspkg.Definition{}, "", err
		}
		byDef = byDefs[0]
	}

	// The sort metric is always computed.
	if !containsMetric(defs, byDef.ID) {
		if len(selectedNames) > 0 {
			return nil, metricspkg.Definition{}, "", fmt.Errorf(
				"--by metric %q must be included in --metrics",
				byDef.Name,
			)
		}
		defs = append(defs, byDef)
	}

	order, err := metricspkg.ParseOrder(opts.orderRaw, byDef.DefaultOrder)
	if err != nil {
		return nil, metricspkg.Definition{}, "", err
	}
	return defs, byDef, order, nil
}

func containsMetric(defs []metricspkg.Definition, id string) bool {
	for _, def := range defs {
		if def.ID == id {
			return true
		}
	}
	return false
}
