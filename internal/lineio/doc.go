// Package lineio hosts a shell session on plain line-oriented streams.
//
// It is used when stdin or stdout is not a terminal: input lines are read
// from an io.Reader, and every new log line is written to an io.Writer,
// optionally colored by kind. The boot script is played with real delays
// that stop when the context is cancelled.
package lineio
