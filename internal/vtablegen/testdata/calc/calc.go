package calc

import "unsafe"

type Handle struct {
	vtable unsafe.Pointer
}

type table struct {
	Add func(h *Handle, a, b int32) int32
	// Width reports the width.
	Width      func(h *Handle) uint32
	reserved   func(*Handle)
	Store      func(h *Handle, dst *byte, n int32)
	Next, Prev func(h *Handle) bool
	release    func(h *Handle)
}

type Calc struct {
	handle *Handle
	vt     table
}
