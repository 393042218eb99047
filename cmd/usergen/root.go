package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/usergen/core/config"
	"github.com/dmitrymomot/usergen/core/format"
	"github.com/dmitrymomot/usergen/core/logger"
	"github.com/dmitrymomot/usergen/core/namesource"
	"github.com/dmitrymomot/usergen/core/pipeline"
)

type cliOptions struct {
	input         string
	firstNames    string
	lastNames     string
	output        string
	formats       []string
	formatsFile   string
	threads       int
	caseSensitive bool
	sequential    bool
	quiet         bool
	verbose       bool
	listFormats   bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "usergen",
		Short: "Generate candidate username lists from real names",
		Long: `usergen expands format patterns over lists of real names to produce
candidate usernames, one per line.

Input is either a single file of full names (--input) or a pair of
first-name and last-name files (--first-names with --last-names), which
generates every combination. Patterns come from repeated --format flags,
a --formats-file, or the built-in list (--list-formats shows it).

Settings can also come from the environment (USERGEN_WORKERS,
USERGEN_BATCH_SIZE, USERGEN_BUFFER_LINES, USERGEN_CASE_SENSITIVE,
USERGEN_SEQUENTIAL), including a .env file in the working directory.
Flags take precedence over the environment.`,
		Example: `  usergen -i names.txt -o usernames.txt
  usergen -i names.txt -f first.last -f 'first[1]last'
  usergen --first-names first.txt --last-names last.txt -o out.txt
  usergen -i names.txt --formats-file formats.txt --case-sensitive`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.input, "input", "i", "users.txt", "file of full names, one per line")
	fl.StringVar(&opts.firstNames, "first-names", "", "file of first names (requires --last-names)")
	fl.StringVar(&opts.lastNames, "last-names", "", "file of last names (requires --first-names)")
	fl.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	fl.StringArrayVarP(&opts.formats, "format", "f", nil, "format spec, repeatable")
	fl.StringVar(&opts.formatsFile, "formats-file", "", "file of format specs, one per line")
	fl.IntVarP(&opts.threads, "threads", "t", pipeline.DefaultWorkers, "number of worker goroutines")
	fl.BoolVar(&opts.caseSensitive, "case-sensitive", false, "keep the casing patterns produce instead of lowercasing")
	fl.BoolVar(&opts.sequential, "sequential", false, "expand records one at a time in input order")
	fl.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress banner, progress, and summary")
	fl.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	fl.BoolVar(&opts.listFormats, "list-formats", false, "print the built-in format list and exit")

	return cmd
}

func run(cmd *cobra.Command, opts *cliOptions) error {
	if opts.listFormats {
		for _, spec := range format.DefaultFormats() {
			fmt.Fprintln(cmd.OutOrStdout(), spec)
		}
		return nil
	}

	var cfg pipeline.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	applyFlags(cmd, opts, &cfg)

	if cfg.Workers < 1 {
		return fmt.Errorf("threads must be positive, got %d", cfg.Workers)
	}
	if (opts.firstNames == "") != (opts.lastNames == "") {
		return errors.New("--first-names and --last-names must be used together")
	}

	log := newLogger(cmd, opts)

	patterns, err := compilePatterns(cmd, opts, log)
	if err != nil {
		return err
	}

	variants := 0
	for _, p := range patterns {
		variants += p.Variants()
	}

	var (
		src   namesource.Source
		total int64
	)
	if opts.firstNames != "" {
		product, err := namesource.OpenProduct(opts.firstNames, opts.lastNames)
		if err != nil {
			return err
		}
		src = product
		total = int64(product.Len()) * int64(variants)
	} else {
		n, err := namesource.Count(opts.input)
		if err != nil {
			return err
		}
		file, err := namesource.Open(opts.input)
		if err != nil {
			return err
		}
		src = file
		total = int64(n) * int64(variants)
	}
	defer src.Close()

	var (
		dst      io.Writer
		closeDst func() error
	)
	if opts.output == "" {
		dst = cmd.OutOrStdout()
	} else {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		dst = f
		closeDst = f.Close
	}

	p, err := pipeline.NewFromConfig(cfg, patterns, src, dst, pipeline.WithLogger(log))
	if err != nil {
		if closeDst != nil {
			closeDst()
		}
		return err
	}

	banner(cmd, opts, cfg, len(patterns), total)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The bar would fight the generated lines for the terminal when the
	// destination is stdout, so it only renders for file output.
	var finish func()
	if opts.output != "" && !opts.quiet {
		finish = watchProgress(cmd.ErrOrStderr(), p, total)
	}

	start := time.Now()
	runErr := p.Run(ctx)
	if finish != nil {
		finish()
	}

	if closeDst != nil {
		if err := closeDst(); err != nil && runErr == nil {
			runErr = fmt.Errorf("close output: %w", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	if !opts.quiet {
		stats := p.Stats()
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(),
			"generated %d lines from %d records in %s (skipped %d blank)\n",
			stats.Lines, stats.Records, time.Since(start).Round(time.Millisecond), stats.Skipped)
	}
	return nil
}

// applyFlags overlays explicitly set flags onto the environment-derived
// configuration.
func applyFlags(cmd *cobra.Command, opts *cliOptions, cfg *pipeline.Config) {
	fl := cmd.Flags()
	if fl.Changed("threads") {
		cfg.Workers = opts.threads
	}
	if fl.Changed("case-sensitive") {
		cfg.CaseSensitive = opts.caseSensitive
	}
	if fl.Changed("sequential") {
		cfg.Sequential = opts.sequential
	}
}

func newLogger(cmd *cobra.Command, opts *cliOptions) *slog.Logger {
	if opts.quiet {
		return logger.New(logger.WithOutput(io.Discard))
	}
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	return logger.New(logger.WithOutput(cmd.ErrOrStderr()), logger.WithLevel(level))
}

// compilePatterns gathers specs from flags, the formats file, or the
// built-in defaults. A spec that fails to compile is reported and skipped;
// only an empty result is fatal.
func compilePatterns(cmd *cobra.Command, opts *cliOptions, log *slog.Logger) ([]*format.Pattern, error) {
	specs := append([]string(nil), opts.formats...)
	if opts.formatsFile != "" {
		f, err := os.Open(opts.formatsFile)
		if err != nil {
			return nil, fmt.Errorf("open formats file: %w", err)
		}
		fromFile, err := format.ReadSpecs(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		specs = append(specs, fromFile...)
	}
	if len(specs) == 0 {
		specs = format.DefaultFormats()
	}

	warn := color.New(color.FgYellow)
	patterns := make([]*format.Pattern, 0, len(specs))
	for _, spec := range specs {
		p, err := format.Compile(spec)
		if err != nil {
			warn.Fprintf(cmd.ErrOrStderr(), "skipping format %q: %v\n", spec, err)
			log.Debug("format rejected", logger.Spec(spec), logger.Error(err))
			continue
		}
		patterns = append(patterns, p)
	}
	if len(patterns) == 0 {
		return nil, errors.New("no usable format specs")
	}
	return patterns, nil
}

// banner prints a short run header, only on interactive terminals.
func banner(cmd *cobra.Command, opts *cliOptions, cfg pipeline.Config, patterns int, total int64) {
	if opts.quiet {
		return
	}
	w := cmd.ErrOrStderr()
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return
	}

	color.New(color.FgCyan, color.Bold).Fprintln(w, "usergen")
	mode := "parallel"
	if cfg.Sequential || cfg.Workers == 1 {
		mode = "sequential"
	}
	fmt.Fprintf(w, "  patterns: %d  workers: %d  mode: %s  expected lines: %d\n",
		patterns, cfg.Workers, mode, total)
}
