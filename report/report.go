// Package report holds the output side of a lint run: plain result
// types detached from any syntax tree, plus formatters that render
// them for terminals and machine consumers.
package report

// Violation is a single naming finding, located by file position.
type Violation struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
	Rule    string `json:"rule" yaml:"rule"`
}

// File aggregates the findings for one checked file. Error is set when
// the file could not be read or parsed; such files carry no violations.
type File struct {
	Path       string      `json:"path" yaml:"path"`
	Violations []Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
	Error      string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the result of checking a set of files, in check order.
type Report struct {
	Files []*File `json:"files" yaml:"files"`
}

// Add appends a file result to the report.
func (r *Report) Add(file *File) {
	r.Files = append(r.Files, file)
}

// TotalViolations counts the findings across all files.
func (r *Report) TotalViolations() int {
	var total int
	for _, file := range r.Files {
		total += len(file.Violations)
	}
	return total
}

// ErrorCount counts the files that failed to be checked.
func (r *Report) ErrorCount() int {
	var count int
	for _, file := range r.Files {
		if file.Error != "" {
			count++
		}
	}
	return count
}

// Clean reports whether the run produced no findings and no failures.
func (r *Report) Clean() bool {
	return r.TotalViolations() == 0 && r.ErrorCount() == 0
}
