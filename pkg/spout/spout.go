package spout

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hsiuhsiu/spout-go/internal/native"
	"github.com/hsiuhsiu/spout-go/pkg/spout/logging"
)

// Spout is one SpoutLibrary object obtained from GetSpout. Its methods are
// generated from vtable and call the matching function table slot with the
// object's handle as the first argument.
type Spout struct {
	handle  *Handle
	vt      vtable
	cleanup runtime.Cleanup
	closed  bool
}

// binding is the process-wide state shared by every Spout of one library.
type binding struct {
	backend native.Backend
	entry   *native.EntryPoint[func() *Handle]
}

func newBinding(b native.Backend, path string) *binding {
	b = loggedBackend{b}
	return &binding{
		backend: b,
		entry:   native.NewEntryPoint[func() *Handle](b, path, EntryPointName),
	}
}

var defaultBinding = newBinding(native.System, LibraryPath)

// Open loads the library if needed, obtains a new SpoutLibrary object and
// binds its function table. It fails with ErrLibraryNotFound,
// ErrEntryPointNotFound or ErrNullHandle; none of these conditions change
// while the process runs.
func Open() (*Spout, error) {
	return defaultBinding.open()
}

// New is like Open but panics if the library cannot be used. A missing or
// broken Spout installation is a deployment error the caller cannot work
// around.
func New() *Spout {
	s, err := Open()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *binding) open() (*Spout, error) {
	ctx := context.Background()
	getSpout, err := b.entry.Func()
	if err != nil {
		return nil, remapError(err)
	}
	lib, err := b.entry.Library()
	if err != nil {
		return nil, remapError(err)
	}

	h := getSpout()
	if h == nil {
		return nil, fmt.Errorf("%w: %s", ErrNullHandle, lib.Path())
	}

	s := newSpout(b.backend, h)
	logger().Debug(ctx, "spout: handle acquired", "path", lib.Path(), logging.Handle("handle", h))
	return s, nil
}

// newSpout binds the function table of h and arranges for h to be released
// if the Spout is dropped without Close.
func newSpout(b native.Backend, h *Handle) *Spout {
	s := &Spout{handle: h}
	s.vt.bind(b, h.table())
	s.cleanup = runtime.AddCleanup(s, releaseUnclosed, unclosed{release: s.vt.release, handle: h})
	return s
}

// unclosed carries what the cleanup of a Spout needs. It must not refer to
// the Spout itself.
type unclosed struct {
	release func(*Handle)
	handle  *Handle
}

func releaseUnclosed(u unclosed) {
	logger().Warn(context.Background(), "spout: handle released by cleanup; call Close", logging.Handle("handle", u.handle))
	u.release(u.handle)
}

// Close releases the SpoutLibrary object. After Close every method of s
// panics. Close returns ErrClosed if s was already closed.
func (s *Spout) Close() error {
	if s == nil {
		return nil
	}
	if s.closed {
		return ErrClosed
	}

	s.cleanup.Stop()
	s.vt.release(s.handle)
	logger().Debug(context.Background(), "spout: handle released", logging.Handle("handle", s.handle))

	s.closed = true
	s.handle = nil
	s.vt = vtable{}
	return nil
}
