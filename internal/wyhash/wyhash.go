package wyhash

import (
	"encoding/binary"
	"math/bits"
)

// wyhash secrets of the reference implementation. They are fixed so a
// fingerprint stays comparable across runs and machines.
const (
	k0 = uint64(0xa0761d6478bd642f)
	k1 = uint64(0xe7037ed1a0b428db)
	k2 = uint64(0x8ebc6af09c88c6e3)
	k3 = uint64(0x589965cc75374cc3)
	k4 = uint64(0x1d8e4e27c47d124f)
)

// Sum64 returns the wyhash-64 of b with seed 0.
func Sum64(b []byte) uint64 { return sum64(b, 0) }

// Sum64String is Sum64 for a string.
func Sum64String(s string) uint64 { return sum64([]byte(s), 0) }

// sum64 follows the Go runtime's portable wyhash fallback.
func sum64(b []byte, seed uint64) uint64 {
	var a, c uint64
	n := len(b)
	seed ^= k0

	switch {
	case n == 0:
		return seed
	case n < 4:
		a = uint64(b[0]) | uint64(b[n>>1])<<8 | uint64(b[n-1])<<16
	case n == 4:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = a
	case n < 8:
		a = uint64(binary.LittleEndian.Uint32(b))
		c = uint64(binary.LittleEndian.Uint32(b[n-4:]))
	case n == 8:
		a = binary.LittleEndian.Uint64(b)
		c = a
	case n <= 16:
		a = binary.LittleEndian.Uint64(b)
		c = binary.LittleEndian.Uint64(b[n-8:])
	default:
		seed = bulk(b, seed)
		a = binary.LittleEndian.Uint64(b[n-16:])
		c = binary.LittleEndian.Uint64(b[n-8:])
	}

	return mix(k4^uint64(n), mix(a^k1, c^seed))
}

// bulk folds every full stripe of b into seed, leaving the last 1 to 16
// bytes to the caller. len(b) must exceed 16.
func bulk(b []byte, seed uint64) uint64 {
	rest := len(b)
	i := 0

	if rest > 48 {
		s1, s2 := seed, seed
		for ; rest > 48; rest -= 48 {
			seed = mix(load(b, i)^k1, load(b, i+8)^seed)
			s1 = mix(load(b, i+16)^k2, load(b, i+24)^s1)
			s2 = mix(load(b, i+32)^k3, load(b, i+40)^s2)
			i += 48
		}
		seed ^= s1 ^ s2
	}

	for ; rest > 16; rest -= 16 {
		seed = mix(load(b, i)^k1, load(b, i+8)^seed)
		i += 16
	}
	return seed
}

func load(b []byte, i int) uint64 { return binary.LittleEndian.Uint64(b[i:]) }

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
