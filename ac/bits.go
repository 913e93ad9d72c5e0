package ac

// PackBits packs bits into bytes, most significant bit first.
// The last byte is padded on the right with zeros, so the result has
// (len(bits)+7)/8 bytes.
func PackBits(bits []bool) []byte {
	buf := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			buf[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return buf
}

// UnpackBits is the inverse of PackBits, padding included.
func UnpackBits(buf []byte) []bool {
	bits := make([]bool, 0, 8*len(buf))
	for _, bt := range buf {
		for i := uint(0); i < 8; i++ {
			bits = append(bits, bt&(0x80>>i) != 0)
		}
	}
	return bits
}
