// Package main is the entry point for the feedbackd settings tool.
//
// It compiles the feedback event configuration and either reports a
// summary, dumps the resolved event table, or evaluates a query against
// it. The same load path runs at daemon startup; running the tool
// standalone answers "what will the daemon actually play" without
// starting it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/feedbackd/internal/export"
	"github.com/dshills/feedbackd/internal/feedback"
	"github.com/dshills/feedbackd/internal/logging"
	"github.com/dshills/feedbackd/internal/settings"
	"github.com/dshills/feedbackd/internal/vfs"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	dumpFormat string
	queryPath  string
	checkOnly  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	log := logging.New(logging.Config{
		Level: logging.ParseLevel(opts.logLevel),
	})

	ctx := feedback.NewContext()
	fsys := vfs.NewOSFS()

	var err error
	if opts.configPath != "" {
		err = settings.LoadFile(ctx, fsys, log, opts.configPath)
	} else {
		err = settings.Load(ctx, fsys, log)
	}
	if err != nil {
		if errors.Is(err, settings.ErrNoConfig) {
			fmt.Fprintf(os.Stderr, "Error: no configuration found (tried %v)\n", settings.DefaultConfigPaths)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}

	if opts.checkOnly {
		fmt.Printf("OK: %d events, %d definitions\n", ctx.EventCount(), len(ctx.DefinitionNames()))
		return 0
	}

	if opts.queryPath != "" {
		return runQuery(ctx, opts.queryPath)
	}

	if opts.dumpFormat != "" {
		return runDump(ctx, opts.dumpFormat)
	}

	printSummary(ctx)
	return 0
}

func runQuery(ctx *feedback.Context, path string) int {
	doc, err := export.JSON(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	value, ok := export.Query(doc, path)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no value at %q\n", path)
		return 1
	}
	fmt.Println(value)
	return 0
}

func runDump(ctx *feedback.Context, format string) int {
	var data []byte
	var err error

	switch format {
	case "json":
		data, err = export.JSON(ctx)
	case "yaml":
		data, err = export.YAML(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println(string(data))
	return 0
}

func printSummary(ctx *feedback.Context) {
	fmt.Printf("%d events, %d definitions, %d plugins required\n",
		ctx.EventCount(), len(ctx.DefinitionNames()), len(ctx.RequiredPlugins))
	for _, name := range ctx.EventNames() {
		e := ctx.Event(name)
		fmt.Printf("  %-24s audio=%-5t vibra=%-5t led=%-5t sounds=%d patterns=%d\n",
			name, e.AudioEnabled, e.VibrationEnabled, e.LedsEnabled, len(e.Sounds), len(e.Patterns))
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.dumpFormat, "dump", "", "Dump the resolved event table (json, yaml)")
	flag.StringVar(&opts.queryPath, "query", "", "Evaluate a path query against the resolved event table")
	flag.BoolVar(&opts.checkOnly, "check", false, "Load the configuration and report status only")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "feedbackd - feedback event settings tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage: feedbackd [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  feedbackd                                  Summarize the active configuration\n")
		fmt.Fprintf(os.Stderr, "  feedbackd -check                           Validate the active configuration\n")
		fmt.Fprintf(os.Stderr, "  feedbackd -dump yaml                       Dump the resolved event table\n")
		fmt.Fprintf(os.Stderr, "  feedbackd -query events.ringtone.volume    Inspect one resolved value\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("feedbackd %s (%s)\n", version, commit)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	switch opts.dumpFormat {
	case "", "json", "yaml":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid dump format %q (must be json or yaml)\n", opts.dumpFormat)
		os.Exit(1)
	}

	return opts
}
