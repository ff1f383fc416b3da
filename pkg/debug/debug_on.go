//go:build debug
// +build debug

package debug

import (
	"fmt"
	"io"
)

// Enabled reports whether the debug tier was compiled in. Guard argument
// expressions that must not run at all in release builds with
// `if debug.Enabled { ... }`.
const Enabled = true

func DInfo(format string, a ...any) {
	emit(2, levelInfo, format, a...)
}

func DWarn(format string, a ...any) {
	emit(2, levelWarn, format, a...)
}

func DError(format string, a ...any) {
	emit(2, levelError, format, a...)
}

func DPanic(format string, a ...any) {
	fatal(2, format, a...)
}

func DInfoIf(cond bool, format string, a ...any) {
	if cond {
		emit(2, levelInfo, format, a...)
	}
}

func DWarnIf(cond bool, format string, a ...any) {
	if cond {
		emit(2, levelWarn, format, a...)
	}
}

func DErrorIf(cond bool, format string, a ...any) {
	if cond {
		emit(2, levelError, format, a...)
	}
}

func DPanicIf(cond bool, format string, a ...any) {
	if cond {
		fatal(2, format, a...)
	}
}

// DCheck is Check, active only in debug builds.
func DCheck(cond bool, format string, a ...any) {
	ok := cond
	if !ok {
		fatal(2, format, a...)
	}
}

// DCheckNoErr is CheckNoErr, active only in debug builds.
func DCheckNoErr(err error, format string, a ...any) {
	if err != nil {
		fatal(2, "%s: %s", fmt.Sprintf(format, a...), err)
	}
}

// DFprintf writes raw formatted output to w, only in debug builds.
func DFprintf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format, a...)
}

// DFprint writes s to w, only in debug builds.
func DFprint(w io.Writer, s string) {
	fmt.Fprint(w, s)
}
