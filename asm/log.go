package asm

import (
	"fmt"

	"go.uber.org/zap"
)

// tracer wraps a *zap.SugaredLogger to give each pipeline stage the same
// section/line tracing vocabulary the teacher's assembler used
// (logSection/logLine/log, backed by fmt.Printf). Passing a nop logger
// disables all output at negligible cost, matching the teacher's verbose
// flag.
type tracer struct {
	log *zap.SugaredLogger
}

func newTracer(log *zap.SugaredLogger) tracer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return tracer{log: log}
}

func (t tracer) section(name string) {
	t.log.Debugf("-- %s --", name)
}

func (t tracer) line(filename string, lineNumber int, format string, args ...interface{}) {
	t.log.Debugw(fmt.Sprintf(format, args...), "file", filename, "line", lineNumber)
}

func (t tracer) bytes(addr int, b []byte) {
	t.log.Debugw("bytes written", "addr", fmt.Sprintf("$%04X", addr), "length", len(b))
}
