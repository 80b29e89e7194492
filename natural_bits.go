package bignum

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// BitLen returns the index of the highest set bit plus one, or 0 for zero.
func (n Natural) BitLen() int { return bitLenLimbs(n.limbs) }

// ByteLen returns the minimum number of bytes needed to hold n, or 0 for zero.
func (n Natural) ByteLen() int { return (bitLenLimbs(n.limbs) + 7) / 8 }

// OnesCount returns the number of set bits in n.
func (n Natural) OnesCount() (c int) {
	for _, l := range n.limbs {
		c += bits.OnesCount32(l)
	}
	return c
}

// TrailingZeros returns the number of trailing zero bits in n. Zero has no
// set bits and returns 0.
func (n Natural) TrailingZeros() int {
	for i, l := range n.limbs {
		if l != 0 {
			return i*limbBits + bits.TrailingZeros32(l)
		}
	}
	return 0
}

func (n Natural) Bit(i uint) bool {
	w := i / limbBits
	if w >= uint(len(n.limbs)) {
		return false
	}
	return n.limbs[w]>>(i%limbBits)&1 == 1
}

// SetBit returns a copy of n with bit i set to v. The result grows as needed
// when setting a bit beyond BitLen().
func (n Natural) SetBit(i uint, v bool) Natural {
	w := int(i / limbBits)
	if w >= len(n.limbs) && !v {
		return Natural{limbs: cloneLimbs(n.limbs)}
	}

	z := growLimbs(n.limbs, w+1)
	if v {
		z[w] |= 1 << (i % limbBits)
	} else {
		z[w] &^= 1 << (i % limbBits)
	}
	return Natural{limbs: trimLimbs(z)}
}

// FlipBit returns a copy of n with bit i inverted.
func (n Natural) FlipBit(i uint) Natural {
	w := int(i / limbBits)
	z := growLimbs(n.limbs, w+1)
	z[w] ^= 1 << (i % limbBits)
	return Natural{limbs: trimLimbs(z)}
}

// Byte returns byte i of n, where byte 0 is the least significant.
func (n Natural) Byte(i uint) byte {
	w := i / 4
	if w >= uint(len(n.limbs)) {
		return 0
	}
	return byte(n.limbs[w] >> ((i % 4) * 8))
}

// SetByte returns a copy of n with byte i, counting from the least
// significant, replaced by b.
func (n Natural) SetByte(i uint, b byte) Natural {
	w := int(i / 4)
	if w >= len(n.limbs) && b == 0 {
		return Natural{limbs: cloneLimbs(n.limbs)}
	}

	sh := (i % 4) * 8
	z := growLimbs(n.limbs, w+1)
	z[w] = z[w]&^(0xFF<<sh) | uint32(b)<<sh
	return Natural{limbs: trimLimbs(z)}
}

// growLimbs returns a copy of x with room for at least n limbs.
func growLimbs(x []uint32, n int) []uint32 {
	if n < len(x) {
		n = len(x)
	}
	z := make([]uint32, n)
	copy(z, x)
	return z
}

// WriteBE fills buf with the big-endian representation of n. If n is smaller
// than buf it is zero-padded on the left; if it is larger, the most
// significant bytes are silently dropped.
func (n Natural) WriteBE(buf []byte) {
	last := len(buf) - 1
	for i := range buf {
		buf[last-i] = n.Byte(uint(i))
	}
}

// WriteLE is the little-endian counterpart of WriteBE.
func (n Natural) WriteLE(buf []byte) {
	for i := range buf {
		buf[i] = n.Byte(uint(i))
	}
}

// Bytes returns the minimal big-endian representation of n. Zero returns an
// empty slice.
func (n Natural) Bytes() []byte {
	buf := make([]byte, n.ByteLen())
	n.WriteBE(buf)
	return buf
}

// NaturalFromBE creates a Natural from an unsigned big-endian byte buffer.
func NaturalFromBE(buf []byte) Natural {
	z := make([]uint32, (len(buf)+3)/4)
	for i := range buf {
		b := buf[len(buf)-1-i]
		z[i/4] |= uint32(b) << (uint(i%4) * 8)
	}
	return Natural{limbs: trimLimbs(z)}
}

// NaturalFromLE creates a Natural from an unsigned little-endian byte buffer.
func NaturalFromLE(buf []byte) Natural {
	z := make([]uint32, (len(buf)+3)/4)
	for i, b := range buf {
		z[i/4] |= uint32(b) << (uint(i%4) * 8)
	}
	return Natural{limbs: trimLimbs(z)}
}

// Hash returns a hash of n suitable for use as a hash table key. Equal values
// always produce equal hashes; the hash depends on the order of the limbs.
func (n Natural) Hash() uint64 {
	return hashLimbs(false, n.limbs)
}

// hashLimbs feeds a sign byte, the limb count and then each limb in
// little-endian order to xxhash.
func hashLimbs(neg bool, limbs []uint32) uint64 {
	buf := make([]byte, 9, 9+4*len(limbs))
	if neg {
		buf[0] = 1
	}
	binary.LittleEndian.PutUint64(buf[1:], uint64(len(limbs)))
	for _, l := range limbs {
		buf = binary.LittleEndian.AppendUint32(buf, l)
	}

	d := xxhash.New()
	_, _ = d.Write(buf)
	return d.Sum64()
}
