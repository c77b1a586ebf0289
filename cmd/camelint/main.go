// Package main provides the camelint binary entry point.
// Camelint checks JavaScript sources for camelcase naming violations
// and can re-check a directory tree continuously as files change.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pabigot/camelint/checker"
	"github.com/pabigot/camelint/report"
	"github.com/pabigot/camelint/runner"
	"github.com/pabigot/camelint/watch"
	"github.com/pabigot/camelint/workspace"
)

const (
	Version = "0.1.0"
	appName = "camelint"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

type cliOptions struct {
	configPath     string
	format         string
	propertyPolicy string
	prefixes       []string
	suffixes       []string
	exceptions     []string
	watchMode      bool
	debounce       time.Duration
	logLevel       string
}

func rootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "camelint [path...]",
		Short: "Camelcase naming checker for JavaScript sources",
		Long: `Camelint parses JavaScript sources and reports identifiers that are
not written in camel case, following the conventions of the classic
camelcase lint rule.

Configuration is read from ` + workspace.ConfigName + ` in the checked
tree or any of its ancestors; flags override the file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return run(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (text, json, yaml)")
	cmd.Flags().StringVar(&opts.propertyPolicy, "property-policy", "", "Property checking policy (always, never)")
	cmd.Flags().StringSliceVar(&opts.prefixes, "prefix", nil, "Allowed name prefix (repeatable)")
	cmd.Flags().StringSliceVar(&opts.suffixes, "suffix", nil, "Allowed name suffix (repeatable)")
	cmd.Flags().StringSliceVar(&opts.exceptions, "exception", nil, "Exempt name (repeatable)")
	cmd.Flags().BoolVarP(&opts.watchMode, "watch", "w", false, "Re-check as files change")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", 200*time.Millisecond, "Watch debounce interval")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func run(paths []string, opts *cliOptions) error {
	logger := newLogger(opts.logLevel)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if project, err := workspace.NewDetector().Detect(ctx, paths[0]); err == nil {
		logger.Info("detected project",
			"name", project.Name,
			"type", project.Type,
			"root", project.RootPath)
	}

	config, err := resolveConfig(ctx, paths[0], opts)
	if err != nil {
		return err
	}
	checkRunner, err := runner.New(config, runner.WithLogger(logger))
	if err != nil {
		return err
	}
	formatter, err := report.NewFormatter(config.Format)
	if err != nil {
		return err
	}

	if opts.watchMode {
		return runWatch(ctx, paths, opts, checkRunner, formatter, logger)
	}

	result, err := checkRunner.CheckPaths(ctx, paths...)
	if err != nil {
		return err
	}
	if err := formatter.Format(os.Stdout, result); err != nil {
		return err
	}
	if !result.Clean() {
		os.Exit(1)
	}
	return nil
}

// resolveConfig loads the configuration file, preferring the --config
// flag over discovery from the first checked path, then applies flag
// overrides on top.
func resolveConfig(ctx context.Context, startPath string, opts *cliOptions) (*runner.Config, error) {
	config := runner.DefaultConfig()

	configPath := opts.configPath
	if configPath == "" {
		if found, ok := workspace.FindConfig(startPath); ok {
			configPath = found
		}
	}
	if configPath != "" {
		loaded, err := runner.LoadConfig(ctx, configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
		slog.Debug("loaded configuration", "path", configPath)
	}

	if opts.format != "" {
		config.Format = opts.format
	}
	if opts.propertyPolicy != "" {
		config.Rule.PropertyPolicy = opts.propertyPolicy
	}
	if len(opts.prefixes) > 0 {
		config.Rule.AllowedPrefixes = append(config.Rule.AllowedPrefixes, checker.Literals(opts.prefixes...)...)
	}
	if len(opts.suffixes) > 0 {
		config.Rule.AllowedSuffixes = append(config.Rule.AllowedSuffixes, checker.Literals(opts.suffixes...)...)
	}
	if len(opts.exceptions) > 0 {
		config.Rule.Exceptions = append(config.Rule.Exceptions, checker.Literals(opts.exceptions...)...)
	}
	return config, nil
}

// runWatch performs an initial pass, then re-formats a report for every
// settled batch of edits until interrupted. The first path is the
// watched root.
func runWatch(ctx context.Context, paths []string, opts *cliOptions, checkRunner *runner.Runner, formatter report.Formatter, logger *slog.Logger) error {
	result, err := checkRunner.CheckPaths(ctx, paths...)
	if err != nil {
		return err
	}
	if err := formatter.Format(os.Stdout, result); err != nil {
		return err
	}

	watcher, err := watch.NewWatcher(watch.Config{
		Root:     paths[0],
		Debounce: opts.debounce,
		Logger:   logger,
	}, checkRunner)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil
		case batch, ok := <-watcher.Reports():
			if !ok {
				logger.Info("watch stopped")
				return nil
			}
			if err := formatter.Format(os.Stdout, batch); err != nil {
				return err
			}
		}
	}
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
