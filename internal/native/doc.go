// Package native maps shared libraries into the process and binds Go
// function variables to addresses inside them.
//
// # Platforms
//
// On darwin, freebsd and linux libraries are opened with purego's
// dlopen and symbols resolved with dlsym. On Windows the loader uses
// LoadLibrary and GetProcAddress from golang.org/x/sys/windows. On both,
// calls are made through purego.RegisterFunc, which marshals Go arguments
// into the platform C calling convention. Other platforms compile but every
// operation reports errors.ErrUnsupported.
//
// # Lifetime
//
// Libraries opened by this package are never closed. An EntryPoint keeps its
// library mapped for the remainder of the process so that any function bound
// from it stays valid.
//
// # Threading
//
// EntryPoint is safe for concurrent use. Nothing else in this package
// synchronises calls into native code; the bound library defines its own
// threading rules.
package native
