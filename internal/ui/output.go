// Package ui prints human-readable arq command results.
package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
)

// Writer prints status lines. Results go to out, diagnostics to errOut.
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
	baseDir string
}

// NewWriter creates a Writer on stdout and stderr. Color is disabled when
// noColor is set or NO_COLOR is present in the environment.
func NewWriter(noColor bool) *Writer {
	return NewWriterWithOutputs(os.Stdout, os.Stderr, noColor || os.Getenv("NO_COLOR") != "")
}

// NewWriterWithOutputs creates a Writer on the given destinations.
func NewWriterWithOutputs(out, errOut io.Writer, noColor bool) *Writer {
	return &Writer{out: out, errOut: errOut, noColor: noColor}
}

// RelativeTo makes Changed print paths relative to dir.
func (w *Writer) RelativeTo(dir string) *Writer {
	w.baseDir = dir

	return w
}

// Out returns the result destination.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Successf prints a line prefixed with a green check mark.
func (w *Writer) Successf(format string, args ...any) {
	w.line(w.out, green, "✓", fmt.Sprintf(format, args...))
}

// Changed reports a file written by the command.
func (w *Writer) Changed(path string) {
	if w.baseDir != "" {
		if rel, err := filepath.Rel(w.baseDir, path); err == nil {
			path = rel
		}
	}

	w.line(w.out, cyan, "updated", path)
}

// Warningf prints a warning to errOut.
func (w *Writer) Warningf(format string, args ...any) {
	w.line(w.errOut, yellow, "warning:", fmt.Sprintf(format, args...))
}

// Error prints err to errOut.
func (w *Writer) Error(err error) {
	w.line(w.errOut, red, "error:", err.Error())
}

// Bold returns s in bold.
func (w *Writer) Bold(s string) string {
	return w.paint(bold, s)
}

func (w *Writer) paint(color, s string) string {
	if w.noColor {
		return s
	}

	return color + s + reset
}

func (w *Writer) line(dst io.Writer, color, prefix, msg string) {
	// Status output is best-effort.
	_, _ = fmt.Fprintf(dst, "%s %s\n", w.paint(color, prefix), msg)
}
