/*
Package bignum provides arbitrary-precision unsigned (Natural) and signed
(Integer) integers.

A Natural is a little-endian sequence of 32-bit limbs kept in canonical form:
the most significant limb is never zero and zero has no limbs. An Integer is
a Natural magnitude plus a sign; zero is never negative.

Natural and Integer are value types; all operations return new values and
no two values share storage, so they may be used from multiple goroutines
without coordination.

Simple example:

	n, _ := NaturalFromString("123456789123456789123456789", 10)
	s, _ := n.Text(16, 1, false)
	fmt.Println(s)
	// Output: 661efdf2e3b19f7c045f15

	q, r := IntegerFrom64(-5).DivMod(IntegerFrom64(3))
	fmt.Println(q, r)
	// Output: -2 1

Natural and Integer can be created from a variety of sources:

	NaturalFrom64(v uint64) Natural
	NaturalFrom[T constraints.Unsigned](v T) Natural
	NaturalFromString(s string, base int) (Natural, error)
	NaturalFromFloat64(f float64) (out Natural, inRange bool)
	NaturalFromBE(buf []byte) Natural
	NaturalFromLE(buf []byte) Natural
	NaturalFromBigInt(v *big.Int) (out Natural, accurate bool)
	IntegerFrom64(v int64) Integer
	IntegerFromNatural(n Natural) Integer
	IntegerFromString(s string, base int) (Integer, error)

Strings are accepted in any base from 2 to 36. Base 0 detects a "0x" or "0b"
prefix and otherwise reads decimal; apostrophes may separate digit groups, as
in "0xffff'ffff".

Parsing and formatting errors wrap ErrInvalidArgument. Division by zero and
subtracting a larger Natural from a smaller one are programming errors and
panic.

Natural and Integer support the following formatting and marshalling
interfaces:

	- fmt.Formatter (verbs d b o x X r R e f g s v)
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package bignum
