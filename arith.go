package bignum

import (
	"math/bits"
)

// Limb vectors are []uint32, least-significant limb first. A vector is
// canonical when its most-significant limb is non-zero; zero is the nil
// slice. Unless a helper says otherwise, inputs are assumed canonical, are
// never written to, and the result is a fresh canonical slice.

const (
	limbBits = 32
	limbMask = 1<<limbBits - 1
)

// trimLimbs reslices z to drop most-significant zero limbs.
func trimLimbs(z []uint32) []uint32 {
	n := len(z)
	for n > 0 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return z[:n]
}

func cloneLimbs(x []uint32) []uint32 {
	if len(x) == 0 {
		return nil
	}
	z := make([]uint32, len(x))
	copy(z, x)
	return z
}

func cmpLimbs(x, y []uint32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func bitLenLimbs(x []uint32) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*limbBits + bits.Len32(x[len(x)-1])
}

func addLimbs(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return cloneLimbs(x)
	}

	z := make([]uint32, len(x), len(x)+1)
	var carry uint64
	for i := range x {
		s := uint64(x[i]) + carry
		if i < len(y) {
			s += uint64(y[i])
		}
		z[i] = uint32(s)
		carry = s >> limbBits
	}
	if carry != 0 {
		z = append(z, uint32(carry))
	}
	return trimLimbs(z)
}

// subLimbs returns x - y. It panics if y > x.
func subLimbs(x, y []uint32) []uint32 {
	if len(y) > len(x) {
		panic(errNaturalUnderflow)
	}
	z := make([]uint32, len(x))
	var borrow uint32
	for i := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = bits.Sub32(x[i], yi, borrow)
	}
	if borrow != 0 {
		panic(errNaturalUnderflow)
	}
	return trimLimbs(z)
}

// mulLimbs is schoolbook multiplication, computed one output column at a
// time. The column sum is held as acc + over<<64 so that no partial product
// is lost however many limbs overlap.
func mulLimbs(x, y []uint32) []uint32 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}

	n := len(x) + len(y)
	z := make([]uint32, n)

	var acc, over uint64
	for k := 0; k < n-1; k++ {
		lo, hi := 0, k
		if k >= len(y) {
			lo = k - len(y) + 1
		}
		if hi >= len(x) {
			hi = len(x) - 1
		}
		for i := lo; i <= hi; i++ {
			var c uint64
			acc, c = bits.Add64(acc, uint64(x[i])*uint64(y[k-i]), 0)
			over += c
		}
		z[k] = uint32(acc)
		acc = acc>>limbBits | over<<limbBits
		over = 0
	}
	z[n-1] = uint32(acc)

	return trimLimbs(z)
}

// mulAddLimb returns x*m + a.
func mulAddLimb(x []uint32, m, a uint32) []uint32 {
	z := make([]uint32, len(x), len(x)+1)
	carry := uint64(a)
	for i, v := range x {
		t := uint64(v)*uint64(m) + carry
		z[i] = uint32(t)
		carry = t >> limbBits
	}
	if carry != 0 {
		z = append(z, uint32(carry))
	}
	return trimLimbs(z)
}

// divLimb returns x / d and x % d for a single-limb divisor. d must not be
// zero.
func divLimb(x []uint32, d uint32) (q []uint32, r uint32) {
	if len(x) == 0 {
		return nil, 0
	}
	q = make([]uint32, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem<<limbBits | uint64(x[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trimLimbs(q), uint32(rem)
}

func shlLimbs(x []uint32, s uint) []uint32 {
	if len(x) == 0 {
		return nil
	}
	if s == 0 {
		return cloneLimbs(x)
	}

	w, b := int(s/limbBits), s%limbBits
	z := make([]uint32, len(x)+w+1)
	if b == 0 {
		copy(z[w:], x)
	} else {
		var carry uint32
		for i, v := range x {
			z[i+w] = v<<b | carry
			carry = v >> (limbBits - b)
		}
		z[len(x)+w] = carry
	}
	return trimLimbs(z)
}

func shrLimbs(x []uint32, s uint) []uint32 {
	w, b := s/limbBits, s%limbBits
	if uint(len(x)) <= w {
		return nil
	}

	src := x[w:]
	z := make([]uint32, len(src))
	if b == 0 {
		copy(z, src)
	} else {
		for i := range src {
			z[i] = src[i] >> b
			if i+1 < len(src) {
				z[i] |= src[i+1] << (limbBits - b)
			}
		}
	}
	return trimLimbs(z)
}

// subInPlace computes dst -= y in place. dst must be >= y; dst may be
// left non-canonical.
func subInPlace(dst, y []uint32) {
	var borrow uint32
	for i := range dst {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		} else if borrow == 0 {
			break
		}
		dst[i], borrow = bits.Sub32(dst[i], yi, borrow)
	}
}

func shr1InPlace(z []uint32) {
	var carry uint32
	for i := len(z) - 1; i >= 0; i-- {
		v := z[i]
		z[i] = v>>1 | carry<<(limbBits-1)
		carry = v & 1
	}
}

// divLimbs returns the quotient and remainder of x / y using binary long
// division: the divisor is aligned with the dividend's top bit, then
// repeatedly compared, subtracted and halved, producing one quotient bit per
// step. y must not be zero.
func divLimbs(x, y []uint32) (q, r []uint32) {
	if len(y) == 0 {
		panic(errDivisionByZero)
	}
	if cmpLimbs(x, y) < 0 {
		return nil, cloneLimbs(x)
	}
	if len(y) == 1 {
		q, rl := divLimb(x, y[0])
		if rl != 0 {
			r = []uint32{rl}
		}
		return q, r
	}

	shift := bitLenLimbs(x) - bitLenLimbs(y)
	d := shlLimbs(y, uint(shift))
	if cmpLimbs(d, x) > 0 {
		shift--
		shr1InPlace(d)
		d = trimLimbs(d)
	}

	rem := cloneLimbs(x)
	q = make([]uint32, shift/limbBits+1)
	for i := shift; i >= 0; i-- {
		if cmpLimbs(rem, d) >= 0 {
			subInPlace(rem, d)
			rem = trimLimbs(rem)
			q[i/limbBits] |= 1 << uint(i%limbBits)
		}
		shr1InPlace(d)
		d = trimLimbs(d)
	}

	return trimLimbs(q), rem
}
