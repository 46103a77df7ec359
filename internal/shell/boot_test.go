package shell

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/np-os/npos/pkg/npos"
)

func TestBootScript_OffsetsAreCumulative(t *testing.T) {
	script := BootScript{
		{"one", 300 * time.Millisecond},
		{"two", 700 * time.Millisecond},
		{"three", 100 * time.Millisecond},
	}

	assert.Equal(t, 300*time.Millisecond, script.Offset(0))
	assert.Equal(t, 1000*time.Millisecond, script.Offset(1))
	assert.Equal(t, 1100*time.Millisecond, script.Offset(2))
	assert.Equal(t, 1100*time.Millisecond+npos.BootSettleDelay, script.Duration())
}

func TestDefaultBootScript_StrictlyIncreasing(t *testing.T) {
	script := DefaultBootScript("user", fixedNow)
	require.Len(t, script, 11)

	for i := 1; i < len(script); i++ {
		assert.Greater(t, script.Offset(i), script.Offset(i-1), "step %d fires no later than step %d", i, i-1)
	}
	assert.Equal(t, 4900*time.Millisecond, script.Offset(len(script)-1))
}

func TestDefaultBootScript_Content(t *testing.T) {
	script := DefaultBootScript("neo", fixedNow)

	assert.True(t, strings.HasPrefix(script[0].Text, "NP-OS Bootloader"))
	assert.Equal(t, "Login: neo (automatic login sequence initiated...)", script[7].Text)
	assert.Equal(t, "Last login: 10/13/2026, 9:30:00 AM from /dev/console", script[8].Text)
	assert.Contains(t, script[len(script)-1].Text, "cat welcome.txt")
}

func TestBootScript_Wait(t *testing.T) {
	script := BootScript{{"a", 100 * time.Millisecond}, {"b", 200 * time.Millisecond}}

	assert.Equal(t, 100*time.Millisecond, script.Wait(0, 0))
	assert.Equal(t, 250*time.Millisecond, script.Wait(1, 50*time.Millisecond))
	assert.Equal(t, time.Duration(0), script.Wait(1, time.Second))
}

func TestBootScript_Scaled(t *testing.T) {
	script := BootScript{{"a", 100 * time.Millisecond}, {"b", 200 * time.Millisecond}}

	fast := script.Scaled(0.5)
	assert.Equal(t, 50*time.Millisecond, fast[0].Delay)
	assert.Equal(t, 100*time.Millisecond, fast[1].Delay)
	assert.Equal(t, 100*time.Millisecond, script[0].Delay, "original must be unchanged")

	instant := script.Scaled(0)
	assert.Equal(t, time.Duration(0), instant.Offset(1))
}
