package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/jeduden/textstat/internal/config"
	"github.com/jeduden/textstat/internal/discovery"
	"github.com/jeduden/textstat/internal/engine"
	vlog "github.com/jeduden/textstat/internal/log"
	"github.com/jeduden/textstat/internal/output"
)

const stdinName = "<stdin>"

const typedInputPrompt = "Enter your text (press Enter twice to finish):\n"

// maxTypedLine bounds a single typed or pasted line.
const maxTypedLine = 16 << 20

// sharedFlags are the flags that analyze and rank both accept. Values set
// on the command line override the loaded config.
type sharedFlags struct {
	configPath  string
	markdown    string
	jobs        int
	noGitignore bool
	verbose     bool
	quiet       bool
}

func (s *sharedFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&s.configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&s.markdown, "markdown", "", "Markdown handling: auto, always, never")
	fs.IntVarP(&s.jobs, "jobs", "j", 0, "Files analyzed in parallel (0 = GOMAXPROCS)")
	fs.BoolVar(&s.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")
	fs.BoolVarP(&s.verbose, "verbose", "v", false, "Show config and per-file progress on stderr")
	fs.BoolVarP(&s.quiet, "quiet", "q", false, "Suppress report output")
}

// load returns the merged config with flag overrides applied and a
// logger honoring --verbose and --quiet.
func (s *sharedFlags) load(fs *flag.FlagSet) (*config.Config, *vlog.Logger, error) {
	logger := &vlog.Logger{Enabled: s.verbose && !s.quiet, W: os.Stderr}

	cfg, cfgPath, err := loadConfig(s.configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	if fs.Changed("markdown") {
		mode, err := config.ParseMarkdownMode(s.markdown)
		if err != nil {
			return nil, nil, err
		}
		cfg.Markdown = mode
		cfg.Pinned.Markdown = mode
	}
	if fs.Changed("jobs") {
		if s.jobs < 0 {
			return nil, nil, fmt.Errorf("--jobs must be >= 0")
		}
		cfg.Jobs = &s.jobs
	}
	return cfg, logger, nil
}

// resolve expands file arguments using cfg's extensions and ignore list.
func (s *sharedFlags) resolve(cfg *config.Config, args []string) ([]string, error) {
	return discovery.Resolve(args, discovery.Options{
		Extensions: cfg.Extensions,
		Ignore:     cfg.Ignore,
		Gitignore:  !s.noGitignore,
	})
}

type analyzeOptions struct {
	shared    sharedFlags
	top       int
	format    string
	noColor   bool
	failUnder float64
}

// runAnalyze implements the "analyze" subcommand.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var opts analyzeOptions

	opts.shared.register(fs)
	fs.IntVarP(&opts.top, "top", "n", config.DefaultTop, "Number of most frequent words to show")
	fs.StringVarP(&opts.format, "format", "f", config.FormatText, "Output format: text, json")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.Float64Var(&opts.failUnder, "fail-under", 0, "Exit 1 when a readability score is below this value")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat analyze [flags] [files...]\n\n"+
			"Print a text analysis report for each file.\n\n"+
			"Files can be paths, directories (walked recursively), or glob patterns.\n"+
			"With no file arguments, reads stdin; on a terminal, reads typed lines\n"+
			"until an empty line.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, logger, err := opts.shared.load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	if err := opts.apply(fs, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	formatter, err := output.New(cfg.Format, cfg.ColorEnabled() && isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	runner := &engine.Runner{Config: cfg, Logger: logger}

	var result *engine.Result
	if fs.NArg() == 0 {
		result, err = analyzeStdin(runner)
	} else {
		result, err = analyzeFiles(runner, &opts.shared, fs.Args())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	printErrors(result.Errors)

	if !opts.shared.quiet && len(result.Files) > 0 {
		if err := formatter.Format(os.Stdout, result.Files); err != nil {
			fmt.Fprintf(os.Stderr, "textstat: error writing output: %v\n", err)
			return 2
		}
	}
	logger.Printf("analyzed %d files", len(result.Files))

	if len(result.Errors) > 0 {
		return 2
	}
	if below := belowThreshold(result.Files, cfg.FailUnder); len(below) > 0 {
		for _, fr := range below {
			fmt.Fprintf(os.Stderr, "textstat: %s: readability %.1f is below %.1f\n",
				fr.Path, fr.Report.Readability.Score, *cfg.FailUnder)
		}
		return 1
	}
	return 0
}

// apply copies analyze-only flags that were set explicitly onto cfg.
func (o *analyzeOptions) apply(fs *flag.FlagSet, cfg *config.Config) error {
	if fs.Changed("top") {
		if o.top < 0 {
			return fmt.Errorf("--top must be >= 0")
		}
		cfg.Top = &o.top
		cfg.Pinned.Top = &o.top
	}
	if fs.Changed("format") {
		cfg.Format = o.format
	}
	if o.noColor {
		off := false
		cfg.Color = &off
	}
	if fs.Changed("fail-under") {
		cfg.FailUnder = &o.failUnder
	}
	return cfg.Validate()
}

func analyzeFiles(runner *engine.Runner, shared *sharedFlags, args []string) (*engine.Result, error) {
	files, err := shared.resolve(runner.Config, args)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to analyze")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runner.Run(ctx, files)
}

func analyzeStdin(runner *engine.Runner) (*engine.Result, error) {
	var (
		source []byte
		err    error
	)
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprint(os.Stderr, typedInputPrompt)
		source, err = readTyped(os.Stdin)
	} else {
		source, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(source)) == "" {
		return nil, fmt.Errorf("no text entered")
	}

	return &engine.Result{Files: []engine.FileReport{runner.RunSource(stdinName, source)}}, nil
}

// readTyped reads lines until the first empty line or EOF. Lines are
// joined with "\n".
func readTyped(r io.Reader) ([]byte, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTypedLine)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// belowThreshold returns the files whose readability score is under
// threshold. A nil threshold disables the gate.
func belowThreshold(files []engine.FileReport, threshold *float64) []engine.FileReport {
	if threshold == nil {
		return nil
	}
	var out []engine.FileReport
	for _, fr := range files {
		if fr.Report.Readability.Score < *threshold {
			out = append(out, fr)
		}
	}
	return out
}
