package bignum

type RandSource interface {
	Uint64() uint64
}

// DifferenceNatural subtracts the smaller of a and b from the larger.
func DifferenceNatural(a, b Natural) Natural {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerNatural(a, b Natural) Natural {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerNatural(a, b Natural) Natural {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceInteger subtracts the smaller of a and b from the larger; the
// result is never negative.
func DifferenceInteger(a, b Integer) Integer {
	return a.Sub(b).Abs()
}

func LargerInteger(a, b Integer) Integer {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerInteger(a, b Integer) Integer {
	if b.LessThan(a) {
		return b
	}
	return a
}

// RandNatural generates a random Natural of at most bits bits from an
// external source.
func RandNatural(source RandSource, bits int) Natural {
	if bits <= 0 {
		return Natural{}
	}
	z := make([]uint32, (bits+limbBits-1)/limbBits)
	for i := 0; i < len(z); i += 2 {
		v := source.Uint64()
		z[i] = uint32(v)
		if i+1 < len(z) {
			z[i+1] = uint32(v >> limbBits)
		}
	}
	if rem := bits % limbBits; rem != 0 {
		z[len(z)-1] &= 1<<uint(rem) - 1
	}
	return Natural{limbs: trimLimbs(z)}
}

// RandInteger generates a random Integer whose magnitude has at most bits
// bits, with a random sign.
func RandInteger(source RandSource, bits int) Integer {
	neg := source.Uint64()&1 == 1
	return newInteger(RandNatural(source, bits), neg)
}
