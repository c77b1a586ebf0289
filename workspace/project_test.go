package workspace_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabigot/camelint/workspace"
)

func TestDetector_Detect(t *testing.T) {
	detector := workspace.NewDetector()
	ctx := context.Background()

	jsRoot, err := filepath.Abs(filepath.Join("testdata", "jsproject"))
	require.NoError(t, err)

	t.Run("javascript project from file", func(t *testing.T) {
		project, err := detector.Detect(ctx, filepath.Join("testdata", "jsproject", "src", "index.js"))
		require.NoError(t, err)
		assert.Equal(t, "javascript", project.Type)
		assert.Equal(t, "sample-app", project.Name)
		assert.Equal(t, jsRoot, project.RootPath)
	})

	t.Run("javascript project from directory", func(t *testing.T) {
		project, err := detector.Detect(ctx, filepath.Join("testdata", "jsproject"))
		require.NoError(t, err)
		assert.Equal(t, "javascript", project.Type)
		assert.Equal(t, "sample-app", project.Name)
	})

	t.Run("go project", func(t *testing.T) {
		project, err := detector.Detect(ctx, filepath.Join("testdata", "goproject"))
		require.NoError(t, err)
		assert.Equal(t, "go", project.Type)
		assert.Equal(t, "example.com/sample", project.Name)
	})

	t.Run("git marker fallback", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
		nested := filepath.Join(root, "src", "lib")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		project, err := detector.Detect(ctx, nested)
		require.NoError(t, err)
		assert.Equal(t, "git", project.Type)
		assert.Equal(t, filepath.Base(root), project.Name)
		assert.Equal(t, root, project.RootPath)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := detector.Detect(ctx, filepath.Join("testdata", "no-such-path"))
		assert.Error(t, err)
	})
}

func TestFindConfig(t *testing.T) {
	expected, err := filepath.Abs(filepath.Join("testdata", "jsproject", workspace.ConfigName))
	require.NoError(t, err)

	t.Run("from nested file", func(t *testing.T) {
		found, ok := workspace.FindConfig(filepath.Join("testdata", "jsproject", "src", "index.js"))
		require.True(t, ok)
		assert.Equal(t, expected, found)
	})

	t.Run("from project root", func(t *testing.T) {
		found, ok := workspace.FindConfig(filepath.Join("testdata", "jsproject"))
		require.True(t, ok)
		assert.Equal(t, expected, found)
	})

	t.Run("not found", func(t *testing.T) {
		_, ok := workspace.FindConfig(t.TempDir())
		assert.False(t, ok)
	})
}
