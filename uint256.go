package secp256k1

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"
)

// Uint256 is a fixed-width unsigned 256-bit integer stored as four 64-bit
// limbs in little-endian order: limb 0 holds the least significant word, so
// bit i of the integer is (limbs[i/64] >> (i%64)) & 1.
//
// Uint256 is a plain value type. Operations never mutate the receiver; sums
// and differences report their carry or borrow explicitly so that no bit is
// ever silently dropped.
type Uint256 struct {
	limbs [4]uint64
}

// Uint512 holds an exact double-width product of two Uint256 values, again
// as little-endian 64-bit limbs.
type Uint512 struct {
	limbs [8]uint64
}

func newUint256(l0, l1, l2, l3 uint64) Uint256 {
	return Uint256{limbs: [4]uint64{l0, l1, l2, l3}}
}

// NewUint256 builds a Uint256 from a 32-byte big-endian slice.
func NewUint256(b []byte) (Uint256, error) {
	if len(b) != 32 {
		return Uint256{}, fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	var u Uint256
	u.limbs[3] = binary.BigEndian.Uint64(b[0:8])
	u.limbs[2] = binary.BigEndian.Uint64(b[8:16])
	u.limbs[1] = binary.BigEndian.Uint64(b[16:24])
	u.limbs[0] = binary.BigEndian.Uint64(b[24:32])
	return u, nil
}

// mustUint256 parses a 64-character big-endian hex string. It is reserved
// for the package-level curve constants, where a malformed literal is a
// programming error.
func mustUint256(s string) Uint256 {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		panic(fmt.Sprintf("malformed curve constant %q", s))
	}
	u, err := NewUint256(b)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns the value as a 32-byte big-endian array.
func (u Uint256) Bytes() [32]byte {
	var b [32]byte
	binary.BigEndian.PutUint64(b[0:8], u.limbs[3])
	binary.BigEndian.PutUint64(b[8:16], u.limbs[2])
	binary.BigEndian.PutUint64(b[16:24], u.limbs[1])
	binary.BigEndian.PutUint64(b[24:32], u.limbs[0])
	return b
}

// String returns the value as big-endian hex.
func (u Uint256) String() string {
	b := u.Bytes()
	return hex.EncodeToString(b[:])
}

// Add returns u+v together with the carry out of the top limb (0 or 1). A
// sum that overflows 2^256 is reported through the carry, never truncated
// silently.
func (u Uint256) Add(v Uint256) (Uint256, uint64) {
	var r Uint256
	var c uint64
	r.limbs[0], c = bits.Add64(u.limbs[0], v.limbs[0], 0)
	r.limbs[1], c = bits.Add64(u.limbs[1], v.limbs[1], c)
	r.limbs[2], c = bits.Add64(u.limbs[2], v.limbs[2], c)
	r.limbs[3], c = bits.Add64(u.limbs[3], v.limbs[3], c)
	return r, c
}

// Sub returns u-v together with the borrow out of the top limb (0 or 1).
// When the borrow is 1 the returned limbs hold u-v+2^256.
func (u Uint256) Sub(v Uint256) (Uint256, uint64) {
	var r Uint256
	var borrow uint64
	r.limbs[0], borrow = bits.Sub64(u.limbs[0], v.limbs[0], 0)
	r.limbs[1], borrow = bits.Sub64(u.limbs[1], v.limbs[1], borrow)
	r.limbs[2], borrow = bits.Sub64(u.limbs[2], v.limbs[2], borrow)
	r.limbs[3], borrow = bits.Sub64(u.limbs[3], v.limbs[3], borrow)
	return r, borrow
}

// Mul returns the exact 512-bit product u*v using schoolbook 64x64->128
// multiplication with a running carry.
func (u Uint256) Mul(v Uint256) Uint512 {
	var w [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(u.limbs[i], v.limbs[j])
			var c uint64
			lo, c = bits.Add64(lo, w[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			w[i+j] = lo
			carry = hi
		}
		w[i+4] = carry
	}
	return Uint512{limbs: w}
}

// ShiftLeft returns u << n, truncated at 256 bits and zero-filled from the
// right. Shifts of 256 or more return zero.
func (u Uint256) ShiftLeft(n uint) Uint256 {
	if n >= 256 {
		return Uint256{}
	}
	words := int(n / 64)
	off := n % 64
	var r Uint256
	for i := 3; i >= 0; i-- {
		src := i - words
		if src < 0 {
			continue
		}
		r.limbs[i] = u.limbs[src] << off
		if off > 0 && src > 0 {
			r.limbs[i] |= u.limbs[src-1] >> (64 - off)
		}
	}
	return r
}

// ShiftRight returns u >> n, zero-filled from the left. Shifts of 256 or
// more return zero.
func (u Uint256) ShiftRight(n uint) Uint256 {
	if n >= 256 {
		return Uint256{}
	}
	words := int(n / 64)
	off := n % 64
	var r Uint256
	for i := 0; i < 4; i++ {
		src := i + words
		if src > 3 {
			continue
		}
		r.limbs[i] = u.limbs[src] >> off
		if off > 0 && src < 3 {
			r.limbs[i] |= u.limbs[src+1] << (64 - off)
		}
	}
	return r
}

// Bit returns bit i of the integer (0 or 1). Bits at or above 256 read as
// zero.
func (u Uint256) Bit(i uint) uint64 {
	if i >= 256 {
		return 0
	}
	return (u.limbs[i/64] >> (i % 64)) & 1
}

// IsZero reports whether the value is zero. The check touches every limb
// regardless of contents.
func (u Uint256) IsZero() bool {
	return u.limbs[0]|u.limbs[1]|u.limbs[2]|u.limbs[3] == 0
}

// Equal reports whether u == v in constant time.
func (u Uint256) Equal(v Uint256) bool {
	var diff uint64
	for i := 0; i < 4; i++ {
		diff |= u.limbs[i] ^ v.limbs[i]
	}
	return diff == 0
}

// Cmp compares u and v, returning -1, 0 or 1. The comparison is
// variable-time and must only be applied to public values.
func (u Uint256) Cmp(v Uint256) int {
	for i := 3; i >= 0; i-- {
		if u.limbs[i] < v.limbs[i] {
			return -1
		}
		if u.limbs[i] > v.limbs[i] {
			return 1
		}
	}
	return 0
}

// ctSelect returns a when choice is 1 and b when choice is 0, without
// branching on choice.
func ctSelect(a, b Uint256, choice uint64) Uint256 {
	mask := -choice
	var r Uint256
	for i := 0; i < 4; i++ {
		r.limbs[i] = (a.limbs[i] & mask) | (b.limbs[i] &^ mask)
	}
	return r
}

// eqWord returns 1 when u == v and 0 otherwise, without branching.
func (u Uint256) eqWord(v Uint256) uint64 {
	var d Uint256
	for i := range d.limbs {
		d.limbs[i] = u.limbs[i] ^ v.limbs[i]
	}
	return d.isZeroWord()
}

// isZeroWord returns 1 when u is zero and 0 otherwise, without branching.
func (u Uint256) isZeroWord() uint64 {
	x := u.limbs[0] | u.limbs[1] | u.limbs[2] | u.limbs[3]
	// x == 0 iff neither x nor -x has the top bit set.
	return 1 - ((x | -x) >> 63)
}

// lo returns the low 256 bits of the product.
func (w Uint512) lo() Uint256 {
	return newUint256(w.limbs[0], w.limbs[1], w.limbs[2], w.limbs[3])
}

// hi returns the high 256 bits of the product.
func (w Uint512) hi() Uint256 {
	return newUint256(w.limbs[4], w.limbs[5], w.limbs[6], w.limbs[7])
}
