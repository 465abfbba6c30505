package native

import "sync"

// EntryPoint is a process-wide, lazily initialised binding of one exported
// function of one library. The library is opened at most once and the symbol
// is resolved at most once, regardless of how many goroutines race on first
// use. Failures are remembered as well; a missing library is not retried.
type EntryPoint[F any] struct {
	library func() (*Library, error)
	fn      func() (F, error)
}

// NewEntryPoint returns an EntryPoint for the export symbol of the library at
// path. Nothing is loaded until Library or Func is first called.
func NewEntryPoint[F any](b Backend, path, symbol string) *EntryPoint[F] {
	e := &EntryPoint[F]{}
	e.library = sync.OnceValues(func() (*Library, error) {
		return Open(b, path)
	})
	e.fn = sync.OnceValues(func() (F, error) {
		var fn F
		lib, err := e.library()
		if err != nil {
			return fn, err
		}
		if err := lib.Bind(&fn, symbol); err != nil {
			return fn, err
		}
		return fn, nil
	})
	return e
}

// Library returns the mapped library, loading it on first use.
func (e *EntryPoint[F]) Library() (*Library, error) { return e.library() }

// Func returns the bound entry point, loading and resolving it on first use.
func (e *EntryPoint[F]) Func() (F, error) { return e.fn() }
