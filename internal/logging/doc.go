// Package logging provides concrete implementations of the apiscan.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: zerolog console output on stderr, verbose gated by level
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
