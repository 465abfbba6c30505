package spout

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/hsiuhsiu/spout-go/internal/native"
	"github.com/hsiuhsiu/spout-go/pkg/spout/logging"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with Open, Close and cleanups.
var loggerPtr atomic.Pointer[logging.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger configures the logger used for library loading and handle
// lifecycle events. By default nothing is logged. Pass nil to restore the
// default.
//
// Log levels used:
//   - [slog.LevelDebug]: library loaded, entry point resolved, handle acquired or released
//   - [slog.LevelWarn]: a Spout was released by its cleanup rather than Close
func SetLogger(l *slog.Logger) {
	var lg logging.Logger
	if l == nil {
		lg = logging.Discard()
	} else {
		lg = logging.New(l)
	}
	loggerPtr.Store(&lg)
}

func logger() logging.Logger {
	return *loggerPtr.Load()
}

// loggedBackend reports library loading and symbol resolution. Bind is not
// logged; it runs once per function table slot.
type loggedBackend struct {
	native.Backend
}

func (b loggedBackend) Open(path string) (uintptr, error) {
	h, err := b.Backend.Open(path)
	if err != nil {
		logger().Debug(context.Background(), "spout: library not loaded", "path", path, "err", err)
		return h, err
	}
	logger().Debug(context.Background(), "spout: library loaded", "path", path)
	return h, nil
}

func (b loggedBackend) Lookup(lib uintptr, name string) (uintptr, error) {
	addr, err := b.Backend.Lookup(lib, name)
	if err != nil {
		logger().Debug(context.Background(), "spout: symbol not resolved", "symbol", name, "err", err)
		return addr, err
	}
	logger().Debug(context.Background(), "spout: symbol resolved", "symbol", name)
	return addr, nil
}
