package main

import (
	"fmt"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/textstat/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const usageText = `Usage: textstat <command> [flags] [files...]

Commands:
  analyze   Analyze text files, or stdin when no files are given
  rank      Rank files by report metrics
  metrics   List available metrics
  init      Generate a default .textstat.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'textstat <command> --help' for more information on a command.
`

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch args[0] {
	case "--help", "-h", "help":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "analyze":
		return runAnalyze(args[1:])
	case "rank":
		return runRank(args[1:])
	case "metrics":
		return runMetrics(args[1:])
	case "init":
		return runInit(args[1:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "textstat: unknown command %q\n\n%s", args[0], usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("textstat %s\n", version)
}

// runInit implements the "init" subcommand: generate .textstat.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.DefaultFileName)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "textstat: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.DefaultFileName); err == nil {
		fmt.Fprintf(os.Stderr, "textstat: %s already exists\n", config.DefaultFileName)
		return 2
	}

	data, err := config.Marshal(config.Defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: marshalling config: %v\n", err)
		return 2
	}
	if err := os.WriteFile(config.DefaultFileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: writing %s: %v\n", config.DefaultFileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "textstat: created %s\n", config.DefaultFileName)
	return 0
}

// printErrors writes runtime errors to stderr.
func printErrors(errs []error) {
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", e)
	}
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory. It returns the
// merged config, the path that was loaded (empty if defaults only), and
// any error.
func loadConfig(configPath string) (*config.Config, string, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		return config.Merge(defaults, loaded), configPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), "", nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), "", nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, "", err
	}
	return config.Merge(defaults, loaded), discovered, nil
}
