// Package workspace locates the project that contains a checked path
// and discovers per-project lint configuration.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Project describes the detected project root for a checked path.
type Project struct {
	Name     string
	Type     string
	RootPath string
}

// Detector identifies project root folders for checked paths.
type Detector struct {
	fs afs.Service
	// Root marker files/directories, in precedence order within a directory
	markers []string
}

// NewDetector creates a project detector covering the ecosystems the
// checker runs against.
func NewDetector() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []string{
			"package.json", // JavaScript/Node projects
			"go.mod",       // Go projects
			".git",         // Generic VCS marker
		},
	}
}

// Detect identifies the project root for the given file or directory
// path. The nearest marked ancestor wins; a path with no marked
// ancestor yields an "unknown" project rooted at the path itself.
func (d *Detector) Detect(ctx context.Context, path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	// If the path is a file, start from its parent directory
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project for %v: %w", path, err)
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)
	project := &Project{
		Type:     "unknown",
		RootPath: absPath,
	}
	if rootPath == "" {
		project.Name = filepath.Base(absPath)
		return project, nil
	}

	project.Type = projectType
	project.RootPath = rootPath
	project.Name = d.projectName(ctx, rootPath, projectType)
	return project, nil
}

// findProjectRoot searches up from the start directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			markerPath := filepath.Join(dir, marker)
			if _, err := os.Stat(markerPath); err == nil {
				return dir, projectTypeForMarker(marker)
			}
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// projectName extracts a display name from the project's config file,
// falling back to the root directory name.
func (d *Detector) projectName(ctx context.Context, rootPath, projectType string) string {
	switch projectType {
	case "javascript":
		if name := d.packageName(ctx, filepath.Join(rootPath, "package.json")); name != "" {
			return name
		}
	case "go":
		if name := d.moduleName(ctx, filepath.Join(rootPath, "go.mod")); name != "" {
			return name
		}
	}
	return filepath.Base(rootPath)
}

var packageNameExpr = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)

// packageName extracts the "name" field from package.json. Not a full
// JSON parse, but enough for well-formed manifests.
func (d *Detector) packageName(ctx context.Context, manifestPath string) string {
	data, err := d.fs.DownloadWithURL(ctx, manifestPath)
	if err != nil {
		return ""
	}
	matches := packageNameExpr.FindSubmatch(data)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}

func (d *Detector) moduleName(ctx context.Context, goModPath string) string {
	data, err := d.fs.DownloadWithURL(ctx, goModPath)
	if err != nil {
		return ""
	}
	if mod, _ := modfile.Parse(goModPath, data, nil); mod != nil && mod.Module != nil {
		return mod.Module.Mod.Path
	}
	return ""
}

// projectTypeForMarker identifies the type of project based on the marker file
func projectTypeForMarker(marker string) string {
	switch marker {
	case "package.json":
		return "javascript"
	case "go.mod":
		return "go"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}
