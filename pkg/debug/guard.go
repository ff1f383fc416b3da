package debug

// InfoIf logs at the Info level only if cond is true.
func InfoIf(cond bool, format string, a ...any) {
	if cond {
		emit(2, levelInfo, format, a...)
	}
}

// WarnIf logs at the Warn level only if cond is true.
func WarnIf(cond bool, format string, a ...any) {
	if cond {
		emit(2, levelWarn, format, a...)
	}
}

// ErrorIf logs at the Error level only if cond is true. cond is expected to
// be false in the common case.
func ErrorIf(cond bool, format string, a ...any) {
	if cond {
		emit(2, levelError, format, a...)
	}
}

// PanicIf logs at the Panic level and terminates the program if cond is
// true. It returns normally only when cond is false.
func PanicIf(cond bool, format string, a ...any) {
	if cond {
		fatal(2, format, a...)
	}
}
