package cityhash

// loadBytes packs up to 8 trailing bytes little-endian into a uint64.
// Callers guarantee len(p) < 9.
func loadBytes(p []byte) uint64 {
	var val uint64
	for i := len(p) - 1; i >= 0; i-- {
		val = val<<8 | uint64(p[i])
	}
	return val
}

// Murmur64 computes a Murmur-derived 64-bit hash of data. It shares the
// reproducibility contract of Hash64 but is a different hash family; the two
// are not interchangeable once values have been stored or partitioned on.
func Murmur64(data []byte) uint64 {
	const mul uint64 = 0xc6a4a7935bd1e995
	n := len(data)

	// Strip the bytes not divisible by 8 so the loop consumes the data as
	// whole 64-bit words.
	aligned := n &^ 0x7
	hash := uint64(n) * mul
	for i := 0; i < aligned; i += 8 {
		hash ^= shiftMix(read64(data[i:])*mul) * mul
		hash *= mul
	}
	if n&0x7 != 0 {
		hash ^= loadBytes(data[aligned:])
		hash *= mul
	}
	hash = shiftMix(hash) * mul
	hash = shiftMix(hash)
	return hash
}

// Murmur64String computes the Murmur-derived 64-bit hash of s.
func Murmur64String(s string) uint64 {
	return Murmur64([]byte(s))
}
