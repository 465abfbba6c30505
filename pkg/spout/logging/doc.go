// Package logging provides a minimal logging facade for the Spout binding.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. Applications normally configure logging
// through spout.SetLogger; the interface exists so tests and hosts with their
// own logging systems can substitute an implementation.
//
// # What is logged
//
// Only lifecycle events are logged: loading the library, resolving the entry
// point, acquiring and releasing handles. Calls through the function table
// are never logged.
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	spout.SetLogger(slog.New(handler))
package logging
