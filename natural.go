package bignum

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Natural is a non-negative integer of unbounded size.
//
// The zero value is 0. Natural is a value type: every operation returns a new
// value and no two Naturals share limb storage.
type Natural struct {
	limbs []uint32
}

func NaturalFrom32(v uint32) Natural {
	if v == 0 {
		return Natural{}
	}
	return Natural{limbs: []uint32{v}}
}

func NaturalFrom64(v uint64) Natural {
	if v == 0 {
		return Natural{}
	}
	if v>>limbBits == 0 {
		return Natural{limbs: []uint32{uint32(v)}}
	}
	return Natural{limbs: []uint32{uint32(v), uint32(v >> limbBits)}}
}

// NaturalFrom creates a Natural from any unsigned integer type.
func NaturalFrom[T constraints.Unsigned](v T) Natural {
	return NaturalFrom64(uint64(v))
}

// NaturalFromLimbs creates a Natural from a little-endian sequence of 32-bit
// limbs. The slice is copied.
func NaturalFromLimbs(limbs []uint32) Natural {
	return Natural{limbs: cloneLimbs(trimLimbs(limbs))}
}

// NaturalFromString parses s in the given base, which must be 0 or in the
// range [2, MaxBase].
//
// If base is 0, a "0x" or "0b" prefix selects base 16 or base 2; anything
// else is read as base 10. Apostrophes are accepted as digit separators, i.e.
// "1'000'000". Letters are case-insensitive.
func NaturalFromString(s string, base int) (out Natural, err error) {
	limbs, err := parseMagnitude(s, base)
	if err != nil {
		return out, err
	}
	return Natural{limbs: limbs}, nil
}

// MustNatural is like NaturalFromString with base 0, but panics if s cannot
// be parsed. It is intended for literals in tests and package variables.
func MustNatural(s string) Natural {
	n, err := NaturalFromString(s, 0)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Natural) IsZero() bool { return len(n.limbs) == 0 }

func (n Natural) IsOdd() bool { return len(n.limbs) > 0 && n.limbs[0]&1 == 1 }

// Limbs returns a copy of the little-endian 32-bit limbs of n. Zero has no
// limbs.
func (n Natural) Limbs() []uint32 { return cloneLimbs(n.limbs) }

func (n Natural) String() string {
	if len(n.limbs) == 0 {
		return "0"
	}
	return formatMagnitude(n.limbs, 10, 1, false)
}

// Text returns n in the given base, left-padded with zeros to at least
// minDigits digits. Letters are used for digits above 9, upper-case if upper
// is set.
func (n Natural) Text(base int, minDigits int, upper bool) (string, error) {
	if err := checkBase(base, false); err != nil {
		return "", err
	}
	if minDigits < 1 {
		minDigits = 1
	}
	return formatMagnitude(n.limbs, base, minDigits, upper), nil
}

// Roman returns n as a Roman numeral, upper-case if upper is set. Values
// below 1 have no Roman representation and return an error, as do values
// needing more than 16777216 leading Ms.
func (n Natural) Roman(upper bool) (string, error) {
	if len(n.limbs) == 0 {
		return "", errRomanDomain(n.String())
	}
	return formatRoman(n.limbs, upper)
}

func (n Natural) Inc() Natural {
	return Natural{limbs: addLimbs(n.limbs, oneNatural.limbs)}
}

// Dec returns n - 1. It panics if n is zero.
func (n Natural) Dec() Natural {
	return Natural{limbs: subLimbs(n.limbs, oneNatural.limbs)}
}

func (n Natural) Add(m Natural) Natural {
	return Natural{limbs: addLimbs(n.limbs, m.limbs)}
}

// Sub returns n - m. The caller must ensure n >= m; if it is not, Sub panics.
// See DifferenceNatural if the ordering is unknown.
func (n Natural) Sub(m Natural) Natural {
	return Natural{limbs: subLimbs(n.limbs, m.limbs)}
}

func (n Natural) Mul(m Natural) Natural {
	return Natural{limbs: mulLimbs(n.limbs, m.limbs)}
}

// QuoRem returns the quotient q and remainder r of n / by. If by is zero, a
// division-by-zero run-time panic occurs.
func (n Natural) QuoRem(by Natural) (q, r Natural) {
	ql, rl := divLimbs(n.limbs, by.limbs)
	return Natural{limbs: ql}, Natural{limbs: rl}
}

// Quo returns the quotient n / by. If by is zero, a division-by-zero run-time
// panic occurs.
func (n Natural) Quo(by Natural) (q Natural) {
	q, _ = n.QuoRem(by)
	return q
}

// Rem returns the remainder n % by. If by is zero, a division-by-zero
// run-time panic occurs.
func (n Natural) Rem(by Natural) (r Natural) {
	_, r = n.QuoRem(by)
	return r
}

// Pow returns n**exp, computed by squaring and multiplying over the bits of
// exp. 0**0 is 1.
func (n Natural) Pow(exp Natural) Natural {
	result := oneNatural.limbs
	base := n.limbs
	bl := exp.BitLen()
	for i := 0; i < bl; i++ {
		if exp.Bit(uint(i)) {
			result = mulLimbs(result, base)
		}
		if i+1 < bl {
			base = mulLimbs(base, base)
		}
	}
	return Natural{limbs: cloneLimbs(result)}
}

func (n Natural) And(m Natural) Natural {
	x, y := n.limbs, m.limbs
	if len(x) > len(y) {
		x, y = y, x
	}
	z := make([]uint32, len(x))
	for i := range x {
		z[i] = x[i] & y[i]
	}
	// The top limb of the shorter operand may be cleared by the mask, so this
	// has to be trimmed like Xor.
	return Natural{limbs: trimLimbs(z)}
}

func (n Natural) Or(m Natural) Natural {
	x, y := n.limbs, m.limbs
	if len(x) < len(y) {
		x, y = y, x
	}
	z := cloneLimbs(x)
	for i := range y {
		z[i] |= y[i]
	}
	return Natural{limbs: z}
}

func (n Natural) Xor(m Natural) Natural {
	x, y := n.limbs, m.limbs
	if len(x) < len(y) {
		x, y = y, x
	}
	z := cloneLimbs(x)
	for i := range y {
		z[i] ^= y[i]
	}
	return Natural{limbs: trimLimbs(z)}
}

// Lsh returns n << s. A negative s shifts right instead.
func (n Natural) Lsh(s int) Natural {
	if s < 0 {
		return Natural{limbs: shrLimbs(n.limbs, uint(-s))}
	}
	return Natural{limbs: shlLimbs(n.limbs, uint(s))}
}

// Rsh returns n >> s. A negative s shifts left instead.
func (n Natural) Rsh(s int) Natural {
	if s < 0 {
		return Natural{limbs: shlLimbs(n.limbs, uint(-s))}
	}
	return Natural{limbs: shrLimbs(n.limbs, uint(s))}
}

// Cmp compares n to m and returns:
//
//	-1 if n <  m
//	 0 if n == m
//	+1 if n >  m
func (n Natural) Cmp(m Natural) int {
	return cmpLimbs(n.limbs, m.limbs)
}

func (n Natural) Equal(m Natural) bool            { return cmpLimbs(n.limbs, m.limbs) == 0 }
func (n Natural) GreaterThan(m Natural) bool      { return cmpLimbs(n.limbs, m.limbs) > 0 }
func (n Natural) GreaterOrEqualTo(m Natural) bool { return cmpLimbs(n.limbs, m.limbs) >= 0 }
func (n Natural) LessThan(m Natural) bool         { return cmpLimbs(n.limbs, m.limbs) < 0 }
func (n Natural) LessOrEqualTo(m Natural) bool    { return cmpLimbs(n.limbs, m.limbs) <= 0 }

// AsUint64 truncates n to its low 64 bits. See IsUint64() if you want to
// check before you convert.
func (n Natural) AsUint64() uint64 {
	var v uint64
	for i := 0; i < len(n.limbs) && i < 2; i++ {
		v |= uint64(n.limbs[i]) << (uint(i) * limbBits)
	}
	return v
}

// IsUint64 reports whether n can be represented as a uint64.
func (n Natural) IsUint64() bool { return len(n.limbs) <= 2 }

// AsUint32 truncates n to its low 32 bits.
func (n Natural) AsUint32() uint32 {
	if len(n.limbs) == 0 {
		return 0
	}
	return n.limbs[0]
}

func (n Natural) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Natural) UnmarshalText(bts []byte) (err error) {
	v, err := NaturalFromString(string(bts), 0)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Natural) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

func (n *Natural) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return invalidArgf("bignum: natural invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := NaturalFromString(string(bts), 0)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// GoString implements fmt.GoStringer, so that %#v prints the decimal value
// rather than the limb slice.
func (n Natural) GoString() string {
	return fmt.Sprintf("bignum.MustNatural(%q)", n.String())
}
