// Package logging provides concrete implementations of the npos.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted lines to a writer (stderr by default)
//   - ZapLogger: Writes structured JSON records to a file, for TUI sessions
//     that own the terminal
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
