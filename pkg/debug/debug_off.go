//go:build !debug
// +build !debug

package debug

import "io"

// no-op stubs used when the debug tier is not compiled in

// Enabled reports whether the debug tier was compiled in. Guard argument
// expressions that must not run at all in release builds with
// `if debug.Enabled { ... }`.
const Enabled = false

func DInfo(format string, a ...any) {}

func DWarn(format string, a ...any) {}

func DError(format string, a ...any) {}

func DPanic(format string, a ...any) {}

func DInfoIf(cond bool, format string, a ...any) {}

func DWarnIf(cond bool, format string, a ...any) {}

func DErrorIf(cond bool, format string, a ...any) {}

func DPanicIf(cond bool, format string, a ...any) {}

// DCheck is Check, active only in debug builds.
func DCheck(cond bool, format string, a ...any) {}

// DCheckNoErr is CheckNoErr, active only in debug builds.
func DCheckNoErr(err error, format string, a ...any) {}

// DFprintf writes raw formatted output to w, only in debug builds.
func DFprintf(w io.Writer, format string, a ...any) {}

// DFprint writes s to w, only in debug builds.
func DFprint(w io.Writer, s string) {}
