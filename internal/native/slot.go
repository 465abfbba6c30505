package native

import "unsafe"

const wordSize = unsafe.Sizeof(uintptr(0))

// Slot returns the function address stored in slot i of the function table
// starting at table. Neither the table nor the index is validated.
func Slot(table unsafe.Pointer, i int) uintptr {
	return *(*uintptr)(unsafe.Add(table, uintptr(i)*wordSize))
}
