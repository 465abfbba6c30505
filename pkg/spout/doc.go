// Package spout binds the Spout texture sharing library (SpoutLibrary.dll)
// for use from Go.
//
// The library exports a single function, GetSpout, which returns a pointer to
// an object whose first word is a function table. Open loads the library,
// resolves GetSpout and binds every table slot to a method on Spout. The
// methods are a raw pass-through: arguments are forwarded unchanged and
// results are returned exactly as the library produced them. Consult the
// Spout SDK documentation for the meaning of each call.
//
// # Lifecycle
//
// The library is loaded and GetSpout resolved at most once per process. Each
// Open or New call obtains a fresh SpoutLibrary object from GetSpout.
//
//	sp := spout.New()
//	defer sp.Close()
//
//	name, err := spout.CString("my sender")
//	if err != nil {
//	    return err
//	}
//	sp.SetSenderName(name)
//	if !sp.SendImage(&pixels[0], 1920, 1080, glRGBA, false) {
//	    // the library reported failure
//	}
//
// Close releases the object. A Spout that becomes unreachable without Close
// is released by a runtime cleanup instead, so the object is released exactly
// once either way. Calling a method after Close panics.
//
// # Library location
//
// The library is opened from LibraryPath, which defaults to SpoutLibrary.dll
// and is set at build time:
//
//	go build -ldflags "-X github.com/hsiuhsiu/spout-go/pkg/spout.LibraryPath=C:\Spout\SpoutLibrary.dll"
//
// # Threading
//
// Spout performs no locking. Whether a single Spout, or several, may be used
// from multiple goroutines is decided by the native library. Graphics calls
// generally need the goroutine locked to the OS thread that owns the GL or
// DirectX context; see runtime.LockOSThread.
package spout
