package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// maxFrames bounds the number of stack frames rendered per trace.
const maxFrames = 32

// traceSkip drops the logger's own frames from a captured stack:
// runtime.Callers, captureFrames, frames, printTrace, and the public
// Warning/Severe method, so the first rendered frame is the log call site.
const traceSkip = 5

// stackTracer is the interface pkg/errors values expose for the call stack
// recorded when the error was created or wrapped.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// frames returns one rendered line per stack frame for err.
// Errors created or wrapped by pkg/errors render the stack recorded at
// creation; any other error gets the current call stack so a trace is
// always available.
func frames(err error) []string {
	var tracer stackTracer
	if errors.As(err, &tracer) {
		return renderStack(tracer.StackTrace())
	}
	return captureFrames(traceSkip)
}

// renderStack formats a recorded pkg/errors stack as "function (file:line)"
// lines, capped at maxFrames.
func renderStack(stack errors.StackTrace) []string {
	if len(stack) > maxFrames {
		stack = stack[:maxFrames]
	}
	lines := make([]string, 0, len(stack))
	for _, frame := range stack {
		lines = append(lines, fmt.Sprintf("%n (%v)", frame, frame))
	}
	return lines
}

// captureFrames walks the current call stack, skipping the given number of
// frames, and formats each as "function (file:line)" with package-qualified
// function names reduced to their base.
func captureFrames(skip int) []string {
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callers := runtime.CallersFrames(pc[:n])
	var lines []string
	for {
		frame, more := callers.Next()
		if frame.Function != "" {
			lines = append(lines, fmt.Sprintf("%s (%s:%d)",
				shortFuncName(frame.Function),
				filepath.Base(frame.File),
				frame.Line))
		}
		if !more {
			break
		}
	}
	return lines
}

// shortFuncName strips the import path prefix from a fully qualified
// function name, keeping "pkg.Func" or "pkg.(*Type).Method".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
