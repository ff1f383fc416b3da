//go:build !debug
// +build !debug

package debug

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugTierElided(t *testing.T) {
	assert.False(t, Enabled)

	got, codes := capture(t, func() {
		DInfo("hidden %d", 1)
		DWarn("hidden")
		DError("hidden")
		DPanic("hidden")
		DInfoIf(true, "hidden")
		DWarnIf(true, "hidden")
		DErrorIf(true, "hidden")
		DPanicIf(true, "hidden")
		DCheck(false, "hidden")
		DCheckNoErr(fmt.Errorf("ignored"), "hidden")
	})
	assert.Empty(t, got)
	assert.Empty(t, codes)
}

func TestDebugTierDoesNotRenderLazyArgs(t *testing.T) {
	called := false
	spy := Lazy(func() string {
		called = true
		return "rendered"
	})
	got, codes := capture(t, func() {
		DInfo("%v", spy)
		DCheck(false, "%v", spy)
	})
	assert.Empty(t, got)
	assert.Empty(t, codes)
	assert.False(t, called)
}

func TestDebugWritersElided(t *testing.T) {
	var buf bytes.Buffer
	DFprintf(&buf, "x=%d\n", 7)
	DFprint(&buf, "y\n")
	assert.Zero(t, buf.Len())
}
