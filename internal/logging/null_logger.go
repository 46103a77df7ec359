package logging

import "github.com/np-os/npos/pkg/npos"

var _ npos.Logger = (*NullLogger)(nil)

// NullLogger discards everything. The full-screen shell uses it when no
// log file is configured, since any write to the terminal would corrupt the view.
type NullLogger struct{}

// NewNullLogger returns a logger that drops all messages.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}

func (*NullLogger) Info(string, ...interface{}) {}

func (*NullLogger) Error(string, ...interface{}) {}
