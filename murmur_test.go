package cityhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMurmur64GoldenStrings(t *testing.T) {
	// Expected values computed from the C++ reference implementation.
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0x0000000000000000},
		{"a", 0x071717d2d36b6b11},
		{"ab", 0x62be85b2fe53d1f8},
		{"abc", 0x9cc9c33498a95efb},
		{"hash", 0xda17dbed262069bd},
		{"abcdefg", 0x241aa52b0a62005d},
		{"fingerprint", 0x7db906708b9c731d},
		{"hello, world", 0x9659ad0699a8465f},
		{"0123456789abcdef", 0x93a92d1a91a24bc7},
		{"The quick brown fox jumps over the lazy dog", 0x5589ca33042a861b},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Murmur64([]byte(tt.in)), "input %q", tt.in)
		assert.Equal(t, tt.want, Murmur64String(tt.in), "input %q", tt.in)
	}
}

func TestMurmur64GoldenPattern(t *testing.T) {
	// Lengths 0-9 cover every remainder the tail packing can see; the
	// rest exercise the aligned word loop. Expected values computed from
	// the C++ reference implementation over patternBytes.
	tests := []struct {
		n    int
		want uint64
	}{
		{0, 0x0000000000000000},
		{1, 0xccfe8f15b6dbc8dd},
		{2, 0xd9dd2b8c4a007466},
		{3, 0x4358f8fecf9fb21a},
		{4, 0xa759d51ccd80a65d},
		{5, 0xb9e8fb3482188abf},
		{7, 0x9b937a3990ef8d87},
		{8, 0xc40a5ddf4f18d273},
		{9, 0xfc69d0f5396d2c35},
		{16, 0x571ddccdc3d87acd},
		{17, 0xa31287880f2ff4fc},
		{31, 0x27be0f8a01ce03bc},
		{32, 0x341ab6471c7b13e3},
		{33, 0xc229f1b1afc0b896},
		{48, 0xaca19da9fb078c0f},
		{63, 0x1a3209c181936e5d},
		{64, 0x1273ac4be64bb659},
		{65, 0xd63e9266867934d9},
		{127, 0xeaf95c1697865d4a},
		{128, 0x59d5a35c405a755f},
		{129, 0x78b371a5865e1a42},
		{256, 0xd95f7fde4a76eec0},
		{1023, 0x1638ba90b0184dc7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Murmur64(patternBytes(tt.n)), "length %d", tt.n)
	}
}

func TestLoadBytes(t *testing.T) {
	assert.Equal(t, uint64(0), loadBytes(nil))
	assert.Equal(t, uint64(0x42), loadBytes([]byte{0x42}))
	assert.Equal(t, uint64(0x0201), loadBytes([]byte{0x01, 0x02}))
	assert.Equal(t, uint64(0x0807060504030201),
		loadBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
}

func TestMurmur64DiffersFromHash64(t *testing.T) {
	// The two families must not be mistaken for each other on stored
	// values; a shared output on short common keys would mask misuse.
	for _, in := range []string{"a", "key", "hello, world", "0123456789abcdef"} {
		assert.NotEqual(t, Hash64([]byte(in)), Murmur64([]byte(in)), "input %q", in)
	}
}

func BenchmarkMurmur64_16(b *testing.B) {
	data := []byte("0123456789abcdef")
	b.SetBytes(16)
	for i := 0; i < b.N; i++ {
		Murmur64(data)
	}
}

func BenchmarkMurmur64_256(b *testing.B) {
	data := patternBytes(256)
	b.SetBytes(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Murmur64(data)
	}
}

func BenchmarkMurmur64_1024(b *testing.B) {
	data := patternBytes(1024)
	b.SetBytes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Murmur64(data)
	}
}
