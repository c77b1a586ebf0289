// Package runner orchestrates lint runs over files and directory
// trees, turning checker findings into position-annotated reports.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	"github.com/pabigot/camelint/checker"
	"github.com/pabigot/camelint/report"
	"github.com/pabigot/camelint/syntax"
)

// Runner checks sources against a resolved rule configuration.
type Runner struct {
	config   *Config
	resolved *checker.Config
	fs       afs.Service
	logger   *slog.Logger
}

type Option func(*Runner)

// WithLogger sets the logger used for per-file progress and summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithFS overrides the storage service used to read sources.
func WithFS(service afs.Service) Option {
	return func(r *Runner) {
		r.fs = service
	}
}

// New creates a runner for the given configuration. The rule options
// are resolved once here; an invalid exception or affix pattern fails
// the whole run.
func New(config *Config, options ...Option) (*Runner, error) {
	if config == nil {
		config = DefaultConfig()
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	resolved, err := checker.Resolve(config.Rule)
	if err != nil {
		return nil, err
	}
	runner := &Runner{
		config:   config,
		resolved: resolved,
		fs:       afs.New(),
		logger:   slog.Default(),
	}
	for _, option := range options {
		option(runner)
	}
	return runner, nil
}

// Config returns the runner's selection configuration.
func (r *Runner) Config() *Config {
	return r.config
}

// CheckSource checks an in-memory source and returns its findings. The
// path is only used to label the result.
func (r *Runner) CheckSource(ctx context.Context, sourcePath string, source []byte) (*report.File, error) {
	tree, err := syntax.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	chk := checker.NewChecker(r.resolved, source)
	chk.Check(tree.RootNode())

	file := &report.File{Path: sourcePath}
	for _, violation := range chk.Violations() {
		line, column := syntax.Position(violation.Node)
		file.Violations = append(file.Violations, report.Violation{
			File:    sourcePath,
			Line:    line,
			Column:  column,
			Name:    violation.Name,
			Message: violation.Message,
			Rule:    checker.RuleName,
		})
	}
	return file, nil
}

// CheckFile reads and checks one file. Read and parse failures are
// recorded on the result rather than aborting the run.
func (r *Runner) CheckFile(ctx context.Context, URL string) *report.File {
	source, err := r.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		r.logger.Warn("failed to read file", "file", URL, "error", err)
		return &report.File{Path: URL, Error: err.Error()}
	}
	file, err := r.CheckSource(ctx, URL, source)
	if err != nil {
		r.logger.Warn("failed to check file", "file", URL, "error", err)
		return &report.File{Path: URL, Error: err.Error()}
	}
	return file
}

// CheckPaths checks the given files and directory trees. Directories
// are expanded through the include and exclude globs; explicit file
// arguments bypass them. Results are ordered by path.
func (r *Runner) CheckPaths(ctx context.Context, paths ...string) (*report.Report, error) {
	seen := map[string]bool{}
	var targets []string
	add := func(target string) {
		if !seen[target] {
			seen[target] = true
			targets = append(targets, target)
		}
	}

	for _, checkPath := range paths {
		object, err := r.fs.Object(ctx, checkPath)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %v: %w", checkPath, err)
		}
		if !object.IsDir() {
			add(checkPath)
			continue
		}
		resolved, err := r.resolveTargets(ctx, checkPath)
		if err != nil {
			return nil, err
		}
		for _, target := range resolved {
			add(target)
		}
	}
	sort.Strings(targets)

	result := &report.Report{}
	for _, target := range targets {
		r.logger.Debug("checking file", "file", target)
		result.Add(r.CheckFile(ctx, target))
	}
	r.logger.Info("check complete",
		"files", len(result.Files),
		"violations", result.TotalViolations(),
		"errors", result.ErrorCount())
	return result, nil
}

// resolveTargets walks a directory tree under root and collects the
// files selected by the configuration.
func (r *Runner) resolveTargets(ctx context.Context, root string) ([]string, error) {
	var targets []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		relative := path.Join(parent, info.Name())
		if !r.config.Matches(relative) {
			return true, nil
		}
		targets = append(targets, url.Join(baseURL, relative))
		return true, nil
	}
	if err := r.fs.Walk(ctx, root, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %v: %w", root, err)
	}
	return targets, nil
}
