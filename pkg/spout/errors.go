package spout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hsiuhsiu/spout-go/internal/native"
)

var (
	// ErrLibraryNotFound reports that LibraryPath could not be loaded.
	ErrLibraryNotFound = errors.New("spout: library not found")

	// ErrEntryPointNotFound reports that the library does not export
	// GetSpout.
	ErrEntryPointNotFound = errors.New("spout: entry point not found")

	// ErrNullHandle reports that GetSpout returned a null object. No slot of
	// the function table can be called without one.
	ErrNullHandle = errors.New("spout: GetSpout returned a null handle")

	// ErrClosed is returned by Close when the Spout was already released.
	ErrClosed = errors.New("spout: already closed")
)

// remapError converts loader errors to the errors of this package, keeping
// the library path, symbol and platform message.
func remapError(err error) error {
	switch {
	case errors.Is(err, native.ErrLibraryNotFound):
		return fmt.Errorf("%w: %s", ErrLibraryNotFound, detail(err, native.ErrLibraryNotFound))
	case errors.Is(err, native.ErrSymbolNotFound):
		return fmt.Errorf("%w: %s", ErrEntryPointNotFound, detail(err, native.ErrSymbolNotFound))
	}
	return err
}

func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
