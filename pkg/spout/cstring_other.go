//go:build !unix && !windows

package spout

import (
	"bytes"
	"strings"
	"syscall"
	"unsafe"
)

// CString returns a NUL-terminated copy of s for passing to the library. It
// fails if s contains a NUL byte.
func CString(s string) (*byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, syscall.EINVAL
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0], nil
}

// GoString copies the NUL-terminated string at p. A nil p yields "".
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// BufferString returns the contents of buf up to its first NUL byte.
func BufferString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
