package utils

import "encoding/binary"

// KeyBytes encodes an integer key as 8 big-endian bytes, the canonical
// form used wherever a key is hashed.
func KeyBytes(key int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

// KeyFromBytes decodes a key previously encoded by KeyBytes.
func KeyFromBytes(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}
