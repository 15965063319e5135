// Package main provides the CLI entrypoint for codec-generator.
//
// codec-generator reads a mapping file, loads the Go packages it names and
// writes decode/encode functions between the listed classes and their
// providers' raw map[string]any data. Generated files land next to the
// classes they convert.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	goversion "github.com/caarlos0/go-version"
	"github.com/davecgh/go-spew/spew"

	"codec-generator/internal/analyze"
	"codec-generator/internal/diagnostic"
	"codec-generator/internal/gen"
	"codec-generator/internal/mapping"
	"codec-generator/internal/plan"
)

var (
	version   = "0.1.0"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""

	configPath  = flag.String("config", "codec.yaml", "Mapping file (.yaml, .yml or .toml).")
	debug       = flag.Bool("debug", false, "Enable debug logging.")
	logFile     = flag.String("log-file", "", "Path to a file where logs should be written. If empty, logs go to stderr.")
	dryRun      = flag.Bool("dry-run", false, "Print generated files to stdout instead of writing them.")
	dump        = flag.Bool("dump", false, "Dump the resolved generation plan to stdout.")
	jobs        = flag.Int("jobs", 0, "Number of classes generated concurrently. Defaults to GOMAXPROCS.")
	showVersion = flag.Bool("version", false, "Print version information and exit.")
)

// errClassesFailed reports a run in which some classes were not generated.
var errClassesFailed = errors.New("some classes failed to generate")

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: codec-generator [options]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(buildVersion(version, commit, date, builtBy, treeState).String())
		return
	}

	logWriter := os.Stderr

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("Failed to open log file", "file", *logFile, "error", err)
			os.Exit(1)
		}

		logWriter = f
	}

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx)

	stop()

	if logWriter != os.Stderr {
		_ = logWriter.Close()
	}

	if err != nil {
		slog.Error("codec-generator failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	mf, err := mapping.LoadFile(*configPath)
	if err != nil {
		return err
	}

	slog.Debug("Loading packages", "packages", mf.Packages)

	graph, err := analyze.NewAnalyzer().
		WithDir(filepath.Dir(*configPath)).
		LoadPackages(mf.Packages...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	p, diags := plan.Build(mf, graph)
	report(diags)

	if p == nil {
		return fmt.Errorf("invalid mapping file %s", *configPath)
	}

	if *dump {
		spew.Fdump(os.Stdout, p.Classes)
	}

	g := gen.NewGenerator(p, analyze.NewIntrospector(graph, p.Computed),
		gen.WithJobs(*jobs),
		gen.WithLogger(slog.Default()),
	)

	files, diags, err := g.Generate(ctx)
	if err != nil {
		return err
	}

	report(diags)

	if *dryRun {
		for _, f := range files {
			fmt.Fprintf(os.Stdout, "---\n// file: %s\n---\n", f.Path())
			_, _ = os.Stdout.Write(f.Content)
		}
	} else {
		if err := gen.WriteFiles(files); err != nil {
			return err
		}

		for _, f := range files {
			slog.Info("Wrote generated code", "file", f.Path(), "unformatted", f.Unformatted)
		}
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", errClassesFailed, len(diags.Errors))
	}

	return nil
}

// report logs diagnostics, errors first.
func report(diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	diags.Sort()

	for _, d := range diags.Errors {
		slog.Error(d.Message, "code", d.Code, "class", d.Class, "field", d.Field, "suggestions", d.Suggestions)
	}

	for _, d := range diags.Warnings {
		slog.Warn(d.Message, "code", d.Code, "class", d.Class, "field", d.Field)
	}

	for _, d := range diags.Infos {
		slog.Debug(d.Message, "code", d.Code, "class", d.Class, "field", d.Field)
	}
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("codec-generator",
			"Generates decode/encode functions between Go classes and provider data.",
			""),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}

			if version != "" {
				i.GitVersion = version
			}

			if treeState != "" {
				i.GitTreeState = treeState
			}

			if date != "" {
				i.BuildDate = date
			}

			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
