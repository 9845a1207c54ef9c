package asm

import (
	"fmt"
	"strings"
)

// Error describes a single diagnostic raised anywhere in the assembly
// pipeline: the scanner, the parser, either pass, or the image merger.
// It mirrors the teacher's asmerror record but carries a filename so
// diagnostics from multiple input files (and the merger, which straddles
// two of them) can be told apart. SourceLine is filled in by Assemble
// once the offending file's text is known; it is empty for errors raised
// outside a single file's pipeline (e.g. the merger).
type Error struct {
	Filename   string
	Line       int
	Column     int
	Message    string
	SourceLine string
}

func (e *Error) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("%s: %s", e.Filename, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Message)
}

// Detail renders the offending source line with a caret under the
// column the error was raised at, for the CLI's verbose diagnostic
// output. It returns "" when no source line is available.
func (e *Error) Detail() string {
	if e.SourceLine == "" {
		return ""
	}
	col := e.Column
	if col < 0 {
		col = 0
	}
	return e.SourceLine + "\n" + strings.Repeat(" ", col) + "^"
}

func newError(filename string, line, column int, format string, args ...interface{}) *Error {
	return &Error{
		Filename: filename,
		Line:     line,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
	}
}

// sourceLineText returns the 1-indexed line's text from source, with no
// trailing newline, or "" if line is out of range.
func sourceLineText(source string, line int) string {
	if line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
