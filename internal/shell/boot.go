package shell

import (
	"time"

	"github.com/np-os/npos/pkg/npos"
)

// lastLoginLayout mimics a US locale date-time rendering.
const lastLoginLayout = "1/2/2006, 3:04:05 PM"

// BootStep is one scripted boot message and the pause preceding it.
type BootStep struct {
	Text  string
	Delay time.Duration
}

// BootScript is an ordered boot sequence. Step i fires at Offset(i), the
// running sum of the delays up to and including step i.
type BootScript []BootStep

// DefaultBootScript returns the NP-OS boot sequence for user logging in at now.
func DefaultBootScript(user string, now time.Time) BootScript {
	ms := time.Millisecond
	return BootScript{
		{"NP-OS Bootloader v1.3.37 initializing...", 300 * ms},
		{"[  0.000001] Kernel panic - not syncing: Just kidding! Proceeding with boot.", 700 * ms},
		{"[  0.524152] Memory check: All 16EB of RAM detected (in my dreams).", 500 * ms},
		{"[  1.123456] Mounting virtual file systems...", 400 * ms},
		{"[  1.567890] Network interface 'eth0_hack': link established (10 Gbps)", 600 * ms},
		{"[  2.010101] Starting services: [matrix_screensaver] [coffee_compiler] [system_monitor_daemon]", 700 * ms},
		{"[  2.505050] Welcome to NP-OS (Kernel 6.7.8-hckr-edition)", 500 * ms},
		{"Login: " + user + " (automatic login sequence initiated...)", 500 * ms},
		{"Last login: " + now.Add(-24*time.Hour).Format(lastLoginLayout) + " from /dev/console", 400 * ms},
		{" ", 100 * ms},
		{"Type 'help' for a list of commands, or 'cat welcome.txt'.", 200 * ms},
	}
}

// Offset returns the absolute fire time of step i relative to the boot start.
func (b BootScript) Offset(i int) time.Duration {
	var total time.Duration
	for j := 0; j <= i && j < len(b); j++ {
		total += b[j].Delay
	}
	return total
}

// Duration returns the time from boot start until input is enabled:
// the last step's offset plus npos.BootSettleDelay.
func (b BootScript) Duration() time.Duration {
	return b.Offset(len(b)-1) + npos.BootSettleDelay
}

// Wait returns how long to wait before firing step i when elapsed time has
// already passed since the boot start. It never returns a negative duration.
// Waiting on cumulative offsets keeps the schedule free of drift.
func (b BootScript) Wait(i int, elapsed time.Duration) time.Duration {
	d := b.Offset(i) - elapsed
	if d < 0 {
		return 0
	}
	return d
}

// Scaled returns a copy with every delay multiplied by factor.
// A factor of 0 makes every step fire immediately.
func (b BootScript) Scaled(factor float64) BootScript {
	out := make(BootScript, len(b))
	for i, step := range b {
		out[i] = BootStep{Text: step.Text, Delay: time.Duration(float64(step.Delay) * factor)}
	}
	return out
}
