// Package cityhash provides fast, non-cryptographic 64-bit string hashing.
//
// Hash64 is a CityHash-derived tiered hash: inputs are routed by length to
// one of four fixed arithmetic paths, so short keys pay no loop overhead and
// long keys are consumed 64 bytes per iteration. Results are reproducible
// across runs, processes, and machines; they carry no security guarantees.
package cityhash

import (
	"encoding/binary"
	"math/bits"
)

// Some primes between 2^63 and 2^64 for various uses.
const (
	k0 uint64 = 0xc3a5c85c97cb3127
	k1 uint64 = 0xb492b66fbe98f273
	k2 uint64 = 0x9ae16a3b2f90404f
)

// read64 reads a little-endian uint64 from a byte slice
func read64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

// read32 reads a little-endian uint32 from a byte slice
func read32(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}

func bswap64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// rotate64 right-rotates val by shift bits, 0 <= shift < 64.
func rotate64(val, shift uint64) uint64 {
	// Avoid shifting by 64: doing so yields an undefined result.
	if shift == 0 {
		return val
	}
	return val>>shift | val<<(64-shift)
}

func shiftMix(val uint64) uint64 {
	return val ^ (val >> 47)
}

// hash128to64 folds a 128-bit value (lo, hi) down to 64 bits.
func hash128to64(lo, hi uint64) uint64 {
	// Murmur-inspired hashing.
	const kMul uint64 = 0x9ddfea08eb382d69
	a := (lo ^ hi) * kMul
	a ^= a >> 47
	b := (hi ^ a) * kMul
	b ^= b >> 47
	b *= kMul
	return b
}

func hashLen16(u, v uint64) uint64 {
	return hash128to64(u, v)
}

func hashLen16Mul(u, v, mul uint64) uint64 {
	// Murmur-inspired hashing.
	a := (u ^ v) * mul
	a ^= a >> 47
	b := (v ^ a) * mul
	b ^= b >> 47
	b *= mul
	return b
}

func hashLen0to16(s []byte) uint64 {
	n := uint64(len(s))
	if n >= 8 {
		mul := k2 + n*2
		a := read64(s) + k2
		b := read64(s[n-8:])
		c := rotate64(b, 37)*mul + a
		d := (rotate64(a, 25) + b) * mul
		return hashLen16Mul(c, d, mul)
	}
	if n >= 4 {
		mul := k2 + n*2
		a := uint64(read32(s))
		return hashLen16Mul(n+(a<<3), uint64(read32(s[n-4:])), mul)
	}
	if n > 0 {
		a := s[0]
		b := s[n>>1]
		c := s[n-1]
		y := uint32(a) + uint32(b)<<8
		z := uint32(n) + uint32(c)<<2
		return shiftMix(uint64(y)*k2^uint64(z)*k0) * k2
	}
	return k2
}

// This probably works well for 16-byte strings as well, but it may be
// overkill in that case.
func hashLen17to32(s []byte) uint64 {
	n := uint64(len(s))
	mul := k2 + n*2
	a := read64(s) * k1
	b := read64(s[8:])
	c := read64(s[n-8:]) * mul
	d := read64(s[n-16:]) * k2
	return hashLen16Mul(rotate64(a+b, 43)+rotate64(c, 30)+d,
		a+rotate64(b+k2, 18)+c, mul)
}

// weakHashLen32WithSeedsWords returns a 16-byte hash for 48 bytes. Quick and
// dirty. Callers do best to use "random-looking" values for a and b.
func weakHashLen32WithSeedsWords(w, x, y, z, a, b uint64) (uint64, uint64) {
	a += w
	b = rotate64(b+a+z, 21)
	c := a
	a += x
	a += y
	b += rotate64(a, 44)
	return a + z, b + c
}

// weakHashLen32WithSeeds returns a 16-byte hash for s[0] ... s[31], a, and b.
func weakHashLen32WithSeeds(s []byte, a, b uint64) (uint64, uint64) {
	return weakHashLen32WithSeedsWords(read64(s), read64(s[8:]),
		read64(s[16:]), read64(s[24:]), a, b)
}

// hashLen33to64 returns an 8-byte hash for 33 to 64 bytes.
func hashLen33to64(s []byte) uint64 {
	n := uint64(len(s))
	mul := k2 + n*2
	a := read64(s) * k2
	b := read64(s[8:])
	c := read64(s[n-24:])
	d := read64(s[n-32:])
	e := read64(s[16:]) * k2
	f := read64(s[24:]) * 9
	g := read64(s[n-8:])
	h := read64(s[n-16:]) * mul
	u := rotate64(a+g, 43) + (rotate64(b, 30)+c)*9
	v := ((a + g) ^ d) + f + 1
	w := bswap64((u+v)*mul) + h
	x := rotate64(e+f, 42) + c
	y := (bswap64((v+w)*mul) + g) * mul
	z := e + f + c
	a = bswap64((x+z)*mul+y) + b
	b = shiftMix((z+a)*mul+d+h) * mul
	return b + x
}

// Hash64 computes the 64-bit fingerprint of data. It is a pure function of
// the input bytes: every call on the same bytes yields the same value, on
// any host, and data is never retained or mutated.
func Hash64(data []byte) uint64 {
	s := data
	n := uint64(len(s))
	if n <= 32 {
		if n <= 16 {
			return hashLen0to16(s)
		}
		return hashLen17to32(s)
	} else if n <= 64 {
		return hashLen33to64(s)
	}

	// For strings over 64 bytes we hash the end first, and then as we
	// loop we keep 56 bytes of state: v, w, x, y, and z.
	x := read64(s[n-40:])
	y := read64(s[n-16:]) + read64(s[n-56:])
	z := hashLen16(read64(s[n-48:])+n, read64(s[n-24:]))
	v1, v2 := weakHashLen32WithSeeds(s[n-64:], n, z)
	w1, w2 := weakHashLen32WithSeeds(s[n-32:], y+k1, x)
	x = x*k1 + read64(s)

	// Decrease n to the nearest multiple of 64, and operate on 64-byte
	// chunks.
	n = (n - 1) &^ 63
	for {
		x = rotate64(x+y+v1+read64(s[8:]), 37) * k1
		y = rotate64(y+v2+read64(s[48:]), 42) * k1
		x ^= w2
		y += v1 + read64(s[40:])
		z = rotate64(z+w1, 33) * k1
		v1, v2 = weakHashLen32WithSeeds(s, v2*k1, x+w1)
		w1, w2 = weakHashLen32WithSeeds(s[32:], z+w2, y+read64(s[16:]))
		z, x = x, z
		s = s[64:]
		n -= 64
		if n == 0 {
			break
		}
	}
	return hashLen16(hashLen16(v1, w1)+shiftMix(y)*k1+z,
		hashLen16(v2, w2)+x)
}

// Hash64String computes the 64-bit fingerprint of s.
func Hash64String(s string) uint64 {
	return Hash64([]byte(s))
}
