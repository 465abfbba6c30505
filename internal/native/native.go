package native

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotFound reports that the shared library could not be mapped.
	ErrLibraryNotFound = errors.New("native: shared library not found")

	// ErrSymbolNotFound reports that a library does not export a symbol.
	ErrSymbolNotFound = errors.New("native: symbol not found")
)

// Backend is the platform facility used to map libraries, resolve their
// exported symbols and install callable Go functions at native addresses.
type Backend interface {
	// Open maps the library at path and returns its platform handle.
	Open(path string) (uintptr, error)

	// Lookup returns the address of the named export of lib.
	Lookup(lib uintptr, name string) (uintptr, error)

	// Bind sets the func variable pointed to by fptr to a Go function that
	// calls the C function at addr.
	Bind(fptr any, addr uintptr)
}

// System is the Backend for the host platform.
var System Backend = system{}

type system struct{}

func (system) Open(path string) (uintptr, error) { return openLibrary(path) }

func (system) Lookup(lib uintptr, name string) (uintptr, error) { return lookupSymbol(lib, name) }

func (system) Bind(fptr any, addr uintptr) { bindFunc(fptr, addr) }

// Library is a shared library image mapped into the process.
type Library struct {
	backend Backend
	path    string
	handle  uintptr
}

// Open maps the library at path using b.
func Open(b Backend, path string) (*Library, error) {
	h, err := b.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, path, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLibraryNotFound, path)
	}
	return &Library{backend: b, path: path, handle: h}, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string { return l.path }

// Bind resolves the named export and installs it into the func variable
// pointed to by fptr. The signature of *fptr is trusted, not checked.
func (l *Library) Bind(fptr any, name string) error {
	addr, err := l.backend.Lookup(l.handle, name)
	if err != nil {
		return fmt.Errorf("%w: %s in %s: %w", ErrSymbolNotFound, name, l.path, err)
	}
	if addr == 0 {
		return fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, name, l.path)
	}
	l.backend.Bind(fptr, addr)
	return nil
}
