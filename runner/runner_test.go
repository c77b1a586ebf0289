package runner_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabigot/camelint/checker"
	"github.com/pabigot/camelint/runner"
)

func quietRunner(t *testing.T, config *runner.Config) *runner.Runner {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := runner.New(config, runner.WithLogger(logger))
	require.NoError(t, err)
	return r
}

func TestRunner_CheckSource(t *testing.T) {
	r := quietRunner(t, nil)
	source := []byte("var first_name = \"Ada\";\n")

	file, err := r.CheckSource(context.Background(), "app.js", source)
	require.NoError(t, err)

	require.Len(t, file.Violations, 1)
	violation := file.Violations[0]
	assert.Equal(t, "app.js", violation.File)
	assert.Equal(t, 1, violation.Line)
	assert.Equal(t, 5, violation.Column)
	assert.Equal(t, "first_name", violation.Name)
	assert.Equal(t, "Identifier 'first_name' is not in camel case.", violation.Message)
	assert.Equal(t, checker.RuleName, violation.Rule)
}

func TestRunner_CheckPaths_Directory(t *testing.T) {
	r := quietRunner(t, nil)

	result, err := r.CheckPaths(context.Background(), filepath.Join("testdata", "project"))
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	for _, file := range result.Files {
		assert.NotContains(t, file.Path, "node_modules")
		assert.Empty(t, file.Error)
	}
	assert.Contains(t, result.Files[0].Path, "app.js")
	assert.Contains(t, result.Files[1].Path, "widgets.jsx")
	assert.Equal(t, 3, result.TotalViolations())
	assert.Equal(t, 0, result.ErrorCount())
}

func TestRunner_CheckPaths_ExplicitFileBypassesGlobs(t *testing.T) {
	r := quietRunner(t, nil)
	target := filepath.Join("testdata", "project", "node_modules", "pkg", "index.js")

	result, err := r.CheckPaths(context.Background(), target)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, 2, result.TotalViolations())
	for _, violation := range result.Files[0].Violations {
		assert.Equal(t, "snake_case", violation.Name)
	}
}

func TestRunner_CheckPaths_MissingPath(t *testing.T) {
	r := quietRunner(t, nil)

	_, err := r.CheckPaths(context.Background(), filepath.Join("testdata", "no-such-tree"))
	assert.Error(t, err)
}

func TestRunner_CheckFile_MissingFile(t *testing.T) {
	r := quietRunner(t, nil)

	file := r.CheckFile(context.Background(), filepath.Join("testdata", "project", "absent.js"))
	assert.NotEmpty(t, file.Error)
	assert.Empty(t, file.Violations)
}

func TestRunner_New_Invalid(t *testing.T) {
	t.Run("bad exception pattern", func(t *testing.T) {
		config := &runner.Config{
			Rule: checker.Options{
				Exceptions: []checker.Descriptor{{Pattern: `[unclosed`}},
			},
		}
		_, err := runner.New(config)
		assert.Error(t, err)
	})

	t.Run("bad include glob", func(t *testing.T) {
		config := &runner.Config{Include: []string{"src/[!.js"}}
		_, err := runner.New(config)
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		config := &runner.Config{Format: "xml"}
		_, err := runner.New(config)
		assert.Error(t, err)
	})
}

func TestConfig_Matches(t *testing.T) {
	config := runner.DefaultConfig()

	tests := []struct {
		relative string
		want     bool
	}{
		{"src/app.js", true},
		{"app.js", true},
		{"src/widgets.jsx", true},
		{"lib/util.mjs", true},
		{"node_modules/pkg/index.js", false},
		{".git/hooks/pre-commit.js", false},
		{"src/style.css", false},
		{"README.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.relative, func(t *testing.T) {
			assert.Equal(t, tt.want, config.Matches(tt.relative))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), ".camelint.yaml")
		content := "rule:\n  propertyPolicy: never\nformat: json\n"
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

		config, err := runner.LoadConfig(context.Background(), configPath)
		require.NoError(t, err)
		assert.Equal(t, "never", config.Rule.PropertyPolicy)
		assert.Equal(t, "json", config.Format)
		assert.Equal(t, runner.DefaultConfig().Include, config.Include)
		assert.Equal(t, runner.DefaultConfig().Exclude, config.Exclude)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runner.LoadConfig(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), ".camelint.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("rule: ["), 0o644))

		_, err := runner.LoadConfig(context.Background(), configPath)
		assert.Error(t, err)
	})
}
