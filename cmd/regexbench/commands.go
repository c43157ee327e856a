package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"go.dw1.io/regexbench/bench"
	"go.dw1.io/regexbench/config"
	"go.dw1.io/regexbench/pattern"
	"go.dw1.io/regexbench/report"
	"go.dw1.io/regexbench/suite"
)

type options struct {
	size            int
	samples         int
	seed            uint64
	delimiter       string
	warmUp          time.Duration
	measurementTime time.Duration
	filter          string
	format          string
	output          string
	logLevel        string
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:           "regexbench",
		Short:         "Benchmark greedy, possessive and non-greedy regex quantifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuite(cmd, o)
		},
	}

	defaults := config.Default()
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&o.size, "size", defaults.Size, "payload length of the inputs")
	flags.IntVar(&o.samples, "samples", defaults.SampleSize, "samples per benchmark")
	flags.Uint64Var(&o.seed, "seed", 0, "payload seed (0 picks one at random)")
	flags.StringVar(&o.delimiter, "delimiter", string(defaults.Delimiter), "quote character")
	flags.DurationVar(&o.warmUp, "warm-up", defaults.WarmUp, "warm-up time per benchmark")
	flags.DurationVar(&o.measurementTime, "measurement-time", defaults.MeasurementTime, "target sampling time per benchmark")
	flags.StringVar(&o.filter, "filter", "", "run only benchmarks whose group/variant/size name matches this regexp")
	flags.StringVar(&o.format, "format", string(report.FormatText), "report format: text, benchfmt or json")
	flags.StringVarP(&o.output, "output", "o", "", "write the report to this file instead of stdout")
	flags.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark groups and print the report (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuite(cmd, o)
		},
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the benchmarked patterns and the engine that runs each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listPatterns(cmd, o)
		},
	}

	rootCmd.AddCommand(runCmd, patternsCmd)
	return rootCmd
}

// loadConfig layers the environment and then the flags that were set on top
// of the defaults.
func loadConfig(cmd *cobra.Command, o *options) (config.Config, error) {
	cfg, err := config.FromEnv(config.Default(), os.LookupEnv)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = o.size
	}
	if flags.Changed("samples") {
		cfg.SampleSize = o.samples
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("delimiter") {
		if cfg.Delimiter, err = config.ParseDelimiter(o.delimiter); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	if flags.Changed("warm-up") {
		cfg.WarmUp = o.warmUp
	}
	if flags.Changed("measurement-time") {
		cfg.MeasurementTime = o.measurementTime
	}
	if flags.Changed("filter") {
		cfg.Filter = o.filter
	}

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

func runSuite(cmd *cobra.Command, o *options) error {
	logger, err := newLogger(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return err
	}

	d, err := suite.New(cfg)
	if err != nil {
		return err
	}

	meta := report.NewMeta(d)
	logger.Info("starting benchmarks",
		"size", meta.Size,
		"samples", meta.SampleSize,
		"seed", meta.Seed,
		"fingerprint", meta.Fingerprint,
		"warm_up", cfg.WarmUp,
		"measurement_time", cfg.MeasurementTime,
	)

	groups, runErr := d.Run(cmd.Context(), func(r *bench.Result) {
		logger.Debug("benchmark finished",
			"group", r.Group,
			"id", r.ID.String(),
			"iters", r.Iters,
			"median_ns", r.Stats.Median,
			"outliers", r.Stats.Outliers.Total(),
		)
	})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if runErr != nil {
		logger.Warn("interrupted, writing partial report", "groups", len(groups))
	}

	if err := writeReport(cmd, o.output, format, groups, meta); err != nil {
		return err
	}

	logger.Info("benchmarks done", "groups", len(groups), "format", string(format))
	return runErr
}

func writeReport(cmd *cobra.Command, path string, format report.Format, groups []*bench.Group, meta report.Meta) (err error) {
	if path == "" || path == "-" {
		return report.Write(cmd.OutOrStdout(), format, groups, meta)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.Write(f, format, groups, meta)
}

func listPatterns(cmd *cobra.Command, o *options) error {
	cfg, err := loadConfig(cmd, o)
	if err != nil {
		return err
	}

	set, err := pattern.Compile(cfg.Delimiter)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FAMILY\tVARIANT\tENGINE\tPATTERN\tEXPR")
	for _, f := range pattern.Families {
		for _, v := range pattern.Variants {
			re := set.Get(f, v)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				f, v, re.Engine(), re.String(), re.Expr())
		}
	}
	return tw.Flush()
}
