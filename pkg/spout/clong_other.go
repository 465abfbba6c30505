//go:build !windows

package spout

// CLong is the C long type of the LP64 data model.
type CLong = int64
