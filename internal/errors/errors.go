// Package errors provides error formatting utilities for the Purr CLI.
// It formats diagnostics with source context, line/column information,
// and visual indicators (carets) pointing at the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/purrlang/purr/internal/lexer"
)

// Diagnostic is a single reportable error with position and source
// context.
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Start   lexer.Position
	End     lexer.Position
}

// New creates a diagnostic spanning start..end.
func New(start, end lexer.Position, message, source, file string) *Diagnostic {
	return &Diagnostic{
		Start:   start,
		End:     end,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with source context. If color is true,
// ANSI color codes are used for terminal output.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", d.File, d.Start.Line, d.Start.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", d.Start.Line, d.Start.Column))
	}

	sourceLine := d.getSourceLine(d.Start.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Start.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		// Caret indicator; underline the full span when it fits on the
		// line.
		width := 1
		if d.End.Line == d.Start.Line && d.End.Column > d.Start.Column {
			width = d.End.Column - d.Start.Column
		}
		if d.Start.Column-1+width > len(sourceLine) {
			width = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Start.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString(strings.Repeat("^", width))
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// getSourceLine extracts a specific line from the source code. Lines are
// 1-indexed.
func (d *Diagnostic) getSourceLine(lineNum int) string {
	if d.Source == "" {
		return ""
	}

	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FromStringErrors converts plain parser error strings into diagnostics.
// Parser errors embed their own "line:column:" prefix, so no span is
// attached.
func FromStringErrors(errs []string, source, file string) []*Diagnostic {
	diags := make([]*Diagnostic, len(errs))
	for i, msg := range errs {
		diags[i] = &Diagnostic{Message: msg, Source: source, File: file}
	}
	return diags
}

// FormatErrors renders a list of diagnostics, one per line block.
func FormatErrors(diags []*Diagnostic, color bool) string {
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteString("\n")
		}
		if d.Start.Line == 0 {
			// No position information; print the bare message.
			sb.WriteString(d.Message)
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(d.Format(color))
		sb.WriteString("\n")
	}
	return sb.String()
}
