package spout

import (
	"structs"
	"unsafe"
)

// Handle is an opaque SpoutLibrary object owned by the native library. Only
// its first word, the function table pointer, is read by this package.
// Handles are never allocated by Go.
type Handle struct {
	_      structs.HostLayout
	_      [0]func()
	vtable unsafe.Pointer
}

// table returns the function table of h.
func (h *Handle) table() unsafe.Pointer { return h.vtable }

// LogLevel is the severity threshold of the Spout log.
type LogLevel int32

//go:generate stringer -type=LogLevel -trimprefix=LogLevel

const (
	LogLevelSilent LogLevel = iota
	LogLevelVerbose
	LogLevelNotice
	LogLevelWarning
	LogLevelError
	LogLevelFatal
	LogLevelNone
)
