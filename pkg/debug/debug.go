// Package debug reports severity-tagged diagnostics and checks invariants
// at runtime.
//
// There are four levels of logging:
//   - Info(...)
//   - Warn(...)
//   - Error(...)
//   - Panic(...) which terminates the program after logging.
//
// Each call writes one line to stderr in the form
//
//	[<Severity>] <file>:<line> - <message>
//
// There is also a debug version prefixed with `D` for each operation, e.g.
//   - DInfo(...)
//   - DPanic(...)
//
// They compile to no-ops unless the `debug` build tag is set.
package debug

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

const (
	levelInfo  = "Info"
	levelWarn  = "Warn"
	levelError = "Error"
	levelPanic = "Panic"

	lineFmt       = "[%s] %s:%d - %s\n"
	terminatedMsg = "Program terminated due to the error above."
)

var (
	out  io.Writer = os.Stderr
	exit           = os.Exit
)

func callSite(calldepth int) (string, int) {
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		return "???", 0
	}
	return file, line
}

// emit writes one diagnostic line. calldepth counts frames above emit to the
// call site whose file:line should appear in the line; exported entry points
// pass 2.
func emit(calldepth int, level string, format string, a ...any) {
	file, line := callSite(calldepth + 1)
	fmt.Fprintf(out, lineFmt, level, file, line, fmt.Sprintf(format, a...))
}

// fatal writes the caller's message at the Panic level, then a fixed notice
// at the same call site, then terminates the process. It never returns.
func fatal(calldepth int, format string, a ...any) {
	file, line := callSite(calldepth + 1)
	fmt.Fprintf(out, lineFmt, levelPanic, file, line, fmt.Sprintf(format, a...))
	fmt.Fprintf(out, lineFmt, levelPanic, file, line, terminatedMsg)
	exit(1)
}

// Info logs a message at the Info level.
func Info(format string, a ...any) {
	emit(2, levelInfo, format, a...)
}

// Warn logs a message at the Warn level.
func Warn(format string, a ...any) {
	emit(2, levelWarn, format, a...)
}

// Error logs a message at the Error level. The level is a label only; Error
// does not alter control flow.
func Error(format string, a ...any) {
	emit(2, levelError, format, a...)
}

// Panic logs a message at the Panic level and terminates the program.
// It never returns.
func Panic(format string, a ...any) {
	fatal(2, format, a...)
}

// Lazy defers computing a message argument until the line is actually
// written. Use it for expensive or side-effecting arguments passed to the
// `*If` guards, which must stay unevaluated when the guard is false:
//
//	debug.ErrorIf(rare, "state: %v", debug.Lazy(dumpState))
func Lazy(f func() string) fmt.Stringer {
	return lazyArg(f)
}

type lazyArg func() string

func (f lazyArg) String() string { return f() }
