package spout

// CLong is the C long type. Windows is LLP64, so long is 32 bits.
type CLong = int32
