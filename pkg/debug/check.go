package debug

import "fmt"

// Check panics with the given message if cond is false. cond is snapshotted
// into a local before the test, so a condition expression with side effects
// runs exactly once whatever the outcome.
func Check(cond bool, format string, a ...any) {
	ok := cond
	if !ok {
		fatal(2, format, a...)
	}
}

// CheckNoErr panics if err is not nil, appending the error text to the
// message.
func CheckNoErr(err error, format string, a ...any) {
	if err != nil {
		fatal(2, "%s: %s", fmt.Sprintf(format, a...), err)
	}
}
