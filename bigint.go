package bignum

import (
	"math/big"
)

const intSize = 32 << (^uint(0) >> 63)

// NaturalFromBigInt creates a Natural from a big.Int. Negative values cannot
// be represented: they produce 0 and accurate is set to false.
func NaturalFromBigInt(v *big.Int) (out Natural, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	return Natural{limbs: limbsFromWords(v.Bits())}, true
}

// IntegerFromBigInt creates an Integer from a big.Int. Every big.Int can be
// represented exactly.
func IntegerFromBigInt(v *big.Int) Integer {
	return newInteger(Natural{limbs: limbsFromWords(v.Bits())}, v.Sign() < 0)
}

func limbsFromWords(words []big.Word) []uint32 {
	switch intSize {
	case 64:
		z := make([]uint32, 2*len(words))
		for i, w := range words {
			z[2*i] = uint32(w)
			z[2*i+1] = uint32(uint64(w) >> limbBits)
		}
		return trimLimbs(z)

	case 32:
		z := make([]uint32, len(words))
		for i, w := range words {
			z[i] = uint32(w)
		}
		return trimLimbs(z)

	default:
		panic("bignum: unsupported bit size")
	}
}

// IntoBigInt copies n into b, allowing you to retain and recycle memory.
func (n Natural) IntoBigInt(b *big.Int) {
	var words []big.Word
	switch intSize {
	case 64:
		words = b.Bits()[:0]
		for i := 0; i < len(n.limbs); i += 2 {
			w := uint64(n.limbs[i])
			if i+1 < len(n.limbs) {
				w |= uint64(n.limbs[i+1]) << limbBits
			}
			words = append(words, big.Word(w))
		}

	case 32:
		words = b.Bits()[:0]
		for _, l := range n.limbs {
			words = append(words, big.Word(l))
		}

	default:
		panic("bignum: unsupported bit size")
	}
	b.SetBits(words)
}

// AsBigInt allocates a new big.Int and copies n into it.
func (n Natural) AsBigInt() *big.Int {
	var b big.Int
	n.IntoBigInt(&b)
	return &b
}

// IntoBigInt copies i into b, allowing you to retain and recycle memory.
func (i Integer) IntoBigInt(b *big.Int) {
	i.mag.IntoBigInt(b)
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies i into it.
func (i Integer) AsBigInt() *big.Int {
	var b big.Int
	i.IntoBigInt(&b)
	return &b
}
