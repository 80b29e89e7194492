package bignum

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Integer is a signed integer of unbounded size, stored as a sign and a
// Natural magnitude. Zero is never negative.
//
// The zero value is 0. Like Natural, Integer is a value type.
type Integer struct {
	mag Natural
	neg bool
}

// newInteger is the only way an Integer is built from parts; it clears the
// sign of a zero magnitude.
func newInteger(mag Natural, neg bool) Integer {
	return Integer{mag: mag, neg: neg && !mag.IsZero()}
}

func IntegerFrom64(v int64) Integer {
	if v < 0 {
		// -v overflows for math.MinInt64, but the uint64 conversion of the
		// two's complement is still the correct magnitude.
		return newInteger(NaturalFrom64(uint64(^v)+1), true)
	}
	return newInteger(NaturalFrom64(uint64(v)), false)
}

// IntegerFrom creates an Integer from any signed integer type.
func IntegerFrom[T constraints.Signed](v T) Integer {
	return IntegerFrom64(int64(v))
}

func IntegerFromU64(v uint64) Integer { return newInteger(NaturalFrom64(v), false) }

// IntegerFromNatural creates a non-negative Integer with magnitude n.
func IntegerFromNatural(n Natural) Integer { return newInteger(n, false) }

// IntegerFromString parses s as an optionally signed integer in the given
// base. The sign, if any, must come first; the rest of s follows the same
// rules as NaturalFromString, so "-0x'ff" is -255 in base 0.
func IntegerFromString(s string, base int) (out Integer, err error) {
	if err := checkBase(base, true); err != nil {
		return out, err
	}

	digits, neg := s, false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}

	limbs, err := parseMagnitude(digits, base)
	if err != nil {
		// Report the whole input rather than the unsigned remainder:
		return out, errInvalidDigit(s, base)
	}
	return newInteger(Natural{limbs: limbs}, neg), nil
}

// MustInteger is like IntegerFromString with base 0, but panics if s cannot
// be parsed.
func MustInteger(s string) Integer {
	i, err := IntegerFromString(s, 0)
	if err != nil {
		panic(err)
	}
	return i
}

// IntegerFromFloat64 creates an Integer from a float64, truncating towards
// zero. NaN and infinities produce 0 and inRange is set to false.
func IntegerFromFloat64(f float64) (out Integer, inRange bool) {
	if f < 0 {
		mag, inRange := NaturalFromFloat64(-f)
		return newInteger(mag, true), inRange
	}
	mag, inRange := NaturalFromFloat64(f)
	return newInteger(mag, false), inRange
}

func (i Integer) IsZero() bool { return i.mag.IsZero() }

// Magnitude returns |i| as a Natural.
func (i Integer) Magnitude() Natural { return i.mag }

func (i Integer) Sign() int {
	if i.mag.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

func (i Integer) Neg() Integer { return newInteger(i.mag, !i.neg) }

func (i Integer) Abs() Integer { return Integer{mag: i.mag} }

func (i Integer) Inc() Integer { return i.Add(oneInteger) }

func (i Integer) Dec() Integer { return i.Sub(oneInteger) }

var oneInteger = Integer{mag: oneNatural}

// Add returns i + n. When the signs differ, the result takes the sign of the
// operand with the larger magnitude.
func (i Integer) Add(n Integer) Integer {
	if n.IsZero() {
		return i
	} else if i.IsZero() {
		return n
	}

	if i.neg == n.neg {
		return newInteger(i.mag.Add(n.mag), i.neg)
	}

	switch i.mag.Cmp(n.mag) {
	case 1:
		return newInteger(i.mag.Sub(n.mag), i.neg)
	case -1:
		return newInteger(n.mag.Sub(i.mag), n.neg)
	}
	return zeroInteger
}

func (i Integer) Sub(n Integer) Integer {
	return i.Add(n.Neg())
}

func (i Integer) Mul(n Integer) Integer {
	return newInteger(i.mag.Mul(n.mag), i.neg != n.neg)
}

// DivMod returns the Euclidean quotient q and modulus m of i / by, such that:
//
//	by*q + m == i
//	0 <= m < |by|
//
// This floors the quotient for a positive divisor regardless of the sign of
// i; for example, -5 DivMod 3 is (-2, 1). If by is zero, a division-by-zero
// run-time panic occurs. See QuoRem for truncated division.
func (i Integer) DivMod(by Integer) (q, m Integer) {
	uq, ur := i.mag.QuoRem(by.mag)
	if i.neg && !ur.IsZero() {
		uq = uq.Inc()
		ur = by.mag.Sub(ur)
	}
	return newInteger(uq, i.neg != by.neg), newInteger(ur, false)
}

// Div returns the Euclidean quotient of i / by; see DivMod.
func (i Integer) Div(by Integer) (q Integer) {
	q, _ = i.DivMod(by)
	return q
}

// Mod returns the Euclidean modulus of i / by, which is never negative; see
// DivMod.
func (i Integer) Mod(by Integer) (m Integer) {
	_, m = i.DivMod(by)
	return m
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// See DivMod for Euclidean division.
func (i Integer) QuoRem(by Integer) (q, r Integer) {
	uq, ur := i.mag.QuoRem(by.mag)
	return newInteger(uq, i.neg != by.neg), newInteger(ur, i.neg)
}

// Quo returns the truncated quotient i / by; see QuoRem.
func (i Integer) Quo(by Integer) (q Integer) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the truncated remainder i % by, which has the sign of i; see
// QuoRem.
func (i Integer) Rem(by Integer) (r Integer) {
	_, r = i.QuoRem(by)
	return r
}

// Pow returns i**exp. The result is negative only if i is negative and exp is
// odd.
func (i Integer) Pow(exp Natural) Integer {
	return newInteger(i.mag.Pow(exp), i.neg && exp.IsOdd())
}

// Lsh shifts the magnitude of i left by s bits, keeping the sign. A negative
// s shifts right instead.
func (i Integer) Lsh(s int) Integer { return newInteger(i.mag.Lsh(s), i.neg) }

// Rsh shifts the magnitude of i right by s bits, keeping the sign, so the
// result is truncated towards zero. A negative s shifts left instead.
func (i Integer) Rsh(s int) Integer { return newInteger(i.mag.Rsh(s), i.neg) }

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Integer) Cmp(n Integer) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := i.mag.Cmp(n.mag)
	if i.neg {
		return -c
	}
	return c
}

func (i Integer) Equal(n Integer) bool            { return i.neg == n.neg && i.mag.Equal(n.mag) }
func (i Integer) GreaterThan(n Integer) bool      { return i.Cmp(n) > 0 }
func (i Integer) GreaterOrEqualTo(n Integer) bool { return i.Cmp(n) >= 0 }
func (i Integer) LessThan(n Integer) bool         { return i.Cmp(n) < 0 }
func (i Integer) LessOrEqualTo(n Integer) bool    { return i.Cmp(n) <= 0 }

// AsInt64 truncates i to fit in an int64, wrapping like a two's complement
// conversion. See IsInt64() if you want to check before you convert.
func (i Integer) AsInt64() int64 {
	v := i.mag.AsUint64()
	if i.neg {
		return -int64(v)
	}
	return int64(v)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Integer) IsInt64() bool {
	if !i.mag.IsUint64() {
		return false
	}
	v := i.mag.AsUint64()
	if i.neg {
		return v <= maxInt64+1
	}
	return v <= maxInt64
}

func (i Integer) AsFloat64() float64 {
	f := i.mag.AsFloat64()
	if i.neg {
		return -f
	}
	return f
}

// Hash returns a hash of i; equal Integers produce equal hashes and i and -i
// hash differently unless i is zero.
func (i Integer) Hash() uint64 {
	return hashLimbs(i.neg, i.mag.limbs)
}

func (i Integer) String() string {
	if i.neg {
		return "-" + i.mag.String()
	}
	return i.mag.String()
}

// Text returns i in the given base with at least minDigits digits, prefixed
// with '-' if i is negative. See Natural.Text.
func (i Integer) Text(base int, minDigits int, upper bool) (string, error) {
	s, err := i.mag.Text(base, minDigits, upper)
	if err != nil {
		return "", err
	}
	if i.neg {
		return "-" + s, nil
	}
	return s, nil
}

// Roman returns i as a Roman numeral. Values below 1 have no Roman
// representation and return an error.
func (i Integer) Roman(upper bool) (string, error) {
	if i.neg || i.mag.IsZero() {
		return "", errRomanDomain(i.String())
	}
	return i.mag.Roman(upper)
}

func (i Integer) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Integer) UnmarshalText(bts []byte) (err error) {
	v, err := IntegerFromString(string(bts), 0)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Integer) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Integer) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return invalidArgf("bignum: integer invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntegerFromString(string(bts), 0)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Integer) GoString() string {
	return fmt.Sprintf("bignum.MustInteger(%q)", i.String())
}
