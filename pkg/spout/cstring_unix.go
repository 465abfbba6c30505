//go:build unix

package spout

import "golang.org/x/sys/unix"

// CString returns a NUL-terminated copy of s for passing to the library. It
// fails if s contains a NUL byte. The memory is Go-owned: the library must not
// keep the pointer after the call returns.
func CString(s string) (*byte, error) {
	return unix.BytePtrFromString(s)
}

// GoString copies the NUL-terminated string at p. A nil p yields "".
func GoString(p *byte) string {
	return unix.BytePtrToString(p)
}

// BufferString returns the contents of buf up to its first NUL byte, as
// filled in by calls such as GetSender and GetAdapterName.
func BufferString(buf []byte) string {
	return unix.ByteSliceToString(buf)
}
