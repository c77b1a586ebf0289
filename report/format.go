package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter renders a report to a writer.
type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// NewFormatter returns the formatter registered under name. An empty
// name selects the text formatter.
func NewFormatter(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return &textFormatter{}, nil
	case "json":
		return &jsonFormatter{}, nil
	case "yaml", "yml":
		return &yamlFormatter{}, nil
	}
	return nil, fmt.Errorf("unsupported output format: %q", name)
}

// textFormatter prints one line per finding and a closing summary.
// A clean report prints nothing.
type textFormatter struct{}

func (f *textFormatter) Format(w io.Writer, report *Report) error {
	if report.Clean() {
		return nil
	}
	for _, file := range report.Files {
		if file.Error != "" {
			if _, err := fmt.Fprintf(w, "%s  error  %s\n", file.Path, file.Error); err != nil {
				return err
			}
			continue
		}
		for _, violation := range file.Violations {
			_, err := fmt.Fprintf(w, "%s:%d:%d  error  %s  (%s)\n",
				file.Path, violation.Line, violation.Column, violation.Message, violation.Rule)
			if err != nil {
				return err
			}
		}
	}
	problems := report.TotalViolations() + report.ErrorCount()
	_, err := fmt.Fprintf(w, "\n%d problem%s found\n", problems, plural(problems))
	return err
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

type yamlFormatter struct{}

func (f *yamlFormatter) Format(w io.Writer, report *Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
