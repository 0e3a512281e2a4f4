package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cavepath/cave"
	"github.com/katalvlaran/cavepath/config"
	"github.com/katalvlaran/cavepath/lines"
	"github.com/katalvlaran/cavepath/paths"
	"github.com/katalvlaran/cavepath/survey"
)

// flags mirrors the command-line surface; set values override the config file.
type flags struct {
	configPath string
	policies   []string
	strategy   string
	parallel   bool
	list       bool
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "cavepath [file]",
		Short: "Count every route from start to end through a cave system",
		Long: `Count every route from start to end through a cave system.

Input is one edge per line in the form LABEL-LABEL. Lower-case caves are
small and may only be revisited as the policy allows; upper-case caves are big
and may be revisited freely.

Policies:
  single  - every small cave at most once (part 1)
  double  - one small cave may be visited twice (part 2)

Examples:
  cavepath inputs/input12.txt
  cat inputs/input12.txt | cavepath --parallel
  cavepath example.txt --policy double --list`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fs.StringSliceVarP(&f.policies, "policy", "p", nil, "revisit policy to run (repeatable): single, double")
	fs.StringVar(&f.strategy, "strategy", "", "enumeration strategy: backtrack or frontier")
	fs.BoolVar(&f.parallel, "parallel", false, "run policies concurrently")
	fs.BoolVar(&f.list, "list", false, "print every route")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json")

	return cmd
}

// resolveConfig layers defaults, the optional config file, explicitly set
// flags and the positional input argument, then validates the result.
func resolveConfig(cmd *cobra.Command, f flags, args []string) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("policy") {
		cfg.Policies = f.policies
	}
	if fs.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fs.Changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if fs.Changed("list") {
		cfg.List = f.list
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	return cfg, cfg.Validate()
}

// newLogger builds the stderr handler described by cfg.
func newLogger(w io.Writer, cfg config.Log) *slog.Logger {
	lvl, _ := cfg.SlogLevel() // validated earlier
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.Format, config.FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func run(cmd *cobra.Command, cfg config.Config) error {
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)

	in := cmd.InOrStdin()
	if cfg.Input != "" && cfg.Input != "-" {
		fh, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer fh.Close()
		in = fh
	}

	g, err := readGraph(in)
	if err != nil {
		return err
	}

	policies, _ := cfg.ResolvePolicies() // validated earlier
	strategy, _ := paths.ParseStrategy(cfg.Strategy)
	opts := []survey.Option{
		survey.WithPolicies(policies...),
		survey.WithStrategy(strategy),
		survey.WithParallel(cfg.Parallel),
		survey.WithLogger(logger),
	}
	if cfg.List {
		opts = append(opts, survey.WithCollect())
	}

	report, err := survey.Run(cmd.Context(), g, opts...)
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), report, cfg.List)
}

// readGraph streams edge lines from r straight into a cave.Builder.
func readGraph(r io.Reader) (*cave.Graph, error) {
	b := cave.NewBuilder()
	n := 0
	err := lines.Each(r, func(line string) error {
		n++
		if err := b.AddLine(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.Build()
}

func printReport(w io.Writer, report *survey.Report, list bool) error {
	if _, err := fmt.Fprintln(w, "Result of day 12:"); err != nil {
		return err
	}
	for i, e := range report.Entries {
		if _, err := fmt.Fprintf(w, "* Part %d: %d\n", i+1, e.Count); err != nil {
			return err
		}
		if !list {
			continue
		}
		for _, p := range e.Paths {
			if _, err := fmt.Fprintf(w, "    %s\n", strings.Join(p, ",")); err != nil {
				return err
			}
		}
	}

	return nil
}
