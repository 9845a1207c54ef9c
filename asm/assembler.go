package asm

import (
	"go.uber.org/zap"
)

// Assemble runs the full pipeline for a single file: scanning, parsing,
// first pass, and second pass, in that order. The first error raised by
// any stage aborts the whole file; later stages never run against a
// partially-failed earlier one.
func Assemble(filename, source string, log *zap.SugaredLogger) (*Image, error) {
	t := newTracer(log)
	t.section(filename)

	p := NewParser(NewScanner(filename, source))

	var lines []*Line
	for {
		line, err := p.ParseLine()
		if err != nil {
			return nil, annotate(err, source)
		}
		if line == nil {
			break
		}
		lines = append(lines, line)
	}

	fp, err := FirstPass(filename, lines, t)
	if err != nil {
		return nil, annotate(err, source)
	}

	img, err := SecondPass(fp, t)
	if err != nil {
		return nil, annotate(err, source)
	}

	return img, nil
}

// annotate fills in the offending source line's text on err, so the
// CLI's verbose diagnostic output can print it with a caret. Errors not
// raised as *Error (there are none in this package, but callers may wrap
// pipeline errors) pass through unchanged.
func annotate(err error, source string) error {
	if ae, ok := err.(*Error); ok {
		ae.SourceLine = sourceLineText(source, ae.Line)
	}
	return err
}
