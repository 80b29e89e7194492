package bignum

import (
	"math"
)

// NaturalFromFloat64 creates a Natural from a float64. Any fractional portion
// is truncated towards zero.
//
// Negative values, NaN and infinities cannot be represented: they produce 0
// and inRange is set to false. Negative values that truncate to zero, such as
// -0.5, are in range.
func NaturalFromFloat64(f float64) (out Natural, inRange bool) {
	if f != f || math.IsInf(f, 0) { // f != f == isnan
		return out, false
	}

	f = math.Trunc(f)
	if f == 0 {
		return out, true
	} else if f < 0 {
		return out, false
	}

	// f == frac * 2**exp, with 0.5 <= frac < 1. Scaling frac by 2**64 gives an
	// exact 64-bit mantissa because a float64 only carries 53 bits.
	frac, exp := math.Frexp(f)
	mant := uint64(math.Ldexp(frac, 64))
	return NaturalFrom64(mant).Lsh(exp - 64), true
}

func NaturalFromFloat32(f float32) (out Natural, inRange bool) {
	return NaturalFromFloat64(float64(f))
}

// AsFloat64 returns the float64 nearest to n. Values too large for a float64
// return +Inf.
func (n Natural) AsFloat64() float64 {
	return limbsToFloat64(n.limbs)
}

func limbsToFloat64(x []uint32) float64 {
	bl := bitLenLimbs(x)
	if bl <= 64 {
		return float64(Natural{limbs: x}.AsUint64())
	}

	// Take the top 64 bits and fold everything below them into a sticky bit.
	// The sticky bit sits below the 53-bit rounding position, so the
	// conversion to float64 rounds exactly as if every bit were present.
	drop := bl - 64
	top := Natural{limbs: shrLimbs(x, uint(drop))}.AsUint64()
	if (Natural{limbs: x}).TrailingZeros() < drop {
		top |= 1
	}
	return math.Ldexp(float64(top), drop)
}
