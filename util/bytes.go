package util

// Concat joins chunks into a single freshly allocated buffer, preserving
// order. Nil and empty chunks contribute nothing.
func Concat(chunks ...[]byte) []byte {
	var l int
	for _, c := range chunks {
		l += len(c)
	}
	out := make([]byte, 0, l)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// PadLeft returns b left-padded with zeroes to size bytes. b is returned
// as-is if it is already at least size bytes long.
func PadLeft(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// PadRight returns b right-padded with zeroes to the next multiple of
// size bytes.
func PadRight(b []byte, size int) []byte {
	rem := len(b) % size
	if rem == 0 {
		return b
	}
	out := make([]byte, len(b)+size-rem)
	copy(out, b)
	return out
}
