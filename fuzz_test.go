package bignum

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

type fuzzOp string
type fuzzType string

// This is the equivalent of passing -bignum.fuzziter=2000 to 'go test':
const fuzzDefaultIterations = 2000

// This is the equivalent of passing -bignum.fuzzbits=512 to 'go test':
const fuzzDefaultMaxBits = 512

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-bignum.fuzzop=add -bignum.fuzzop=sub', or
// you can use the short form '-bignum.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAdd         fuzzOp = "add"
	fuzzAnd         fuzzOp = "and"
	fuzzAsFloat64   fuzzOp = "asfloat64"
	fuzzBit         fuzzOp = "bit"
	fuzzBitLen      fuzzOp = "bitlen"
	fuzzBytes       fuzzOp = "bytes"
	fuzzCmp         fuzzOp = "cmp"
	fuzzDivMod      fuzzOp = "divmod"
	fuzzFlipBit     fuzzOp = "flipbit"
	fuzzFromFloat64 fuzzOp = "fromfloat64"
	fuzzLsh         fuzzOp = "lsh"
	fuzzMul         fuzzOp = "mul"
	fuzzOr          fuzzOp = "or"
	fuzzPow         fuzzOp = "pow"
	fuzzQuoRem      fuzzOp = "quorem"
	fuzzRsh         fuzzOp = "rsh"
	fuzzSetBit      fuzzOp = "setbit"
	fuzzString      fuzzOp = "string"
	fuzzSub         fuzzOp = "sub"
	fuzzXor         fuzzOp = "xor"
)

// These types are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-bignum.fuzztype=natural'
const (
	fuzzTypeNatural fuzzType = "natural"
	fuzzTypeInteger fuzzType = "integer"
)

var allFuzzTypes = []fuzzType{fuzzTypeNatural, fuzzTypeInteger}

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzAnd,
	fuzzAsFloat64,
	fuzzBit,
	fuzzBitLen,
	fuzzBytes,
	fuzzCmp,
	fuzzDivMod,
	fuzzFlipBit,
	fuzzFromFloat64,
	fuzzLsh,
	fuzzMul,
	fuzzOr,
	fuzzPow,
	fuzzQuoRem,
	fuzzRsh,
	fuzzSetBit,
	fuzzString,
	fuzzSub,
	fuzzXor,
}

// NEWOP: update this interface if a new op is added.
type fuzzOps interface {
	Name() string // Not an op

	Add() error
	And() error
	AsFloat64() error
	Bit() error
	BitLen() error
	Bytes() error
	Cmp() error
	DivMod() error
	FlipBit() error
	FromFloat64() error
	Lsh() error
	Mul() error
	Or() error
	Pow() error
	QuoRem() error
	Rsh() error
	SetBit() error
	String() error
	Sub() error
	Xor() error
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
	maxBits  int
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

func (r *rando) Intn(n int) int {
	v := r.rng.Intn(n)
	r.operands = append(r.operands, new(big.Int).SetInt64(int64(v)))
	return v
}

// samesies returns the number of arguments up to n - 1 that should be the same
// for this request. Only used for randos that are 'x2', 'x3', etc.
//
// We need this because the chance of even two random large operands being
// the same is unfathomable.
func (r *rando) samesies(n int) int {
	const samesiesChance = 0.03
	if r.rng.Float64() < samesiesChance {
		return r.rng.Intn(n)
	}
	return 0
}

func (r *rando) BigNatural() *big.Int {
	v := randomBigNatural(r.rng, r.maxBits)
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) BigInteger() *big.Int {
	v := randomBigNatural(r.rng, r.maxBits)
	if r.rng.Intn(2) == 1 {
		v.Neg(v)
	}
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) BigNaturalx2() (b1, b2 *big.Int) {
	b1 = r.BigNatural()
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigNatural()
	}
	return b1, b2
}

func (r *rando) BigIntegerx2() (b1, b2 *big.Int) {
	b1 = r.BigInteger()
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigInteger()
	}
	return b1, b2
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("bignum(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("bignum(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualString(u fmt.Stringer, b fmt.Stringer) error {
	if u.String() != b.String() {
		return fmt.Errorf("bignum(%s) != big(%s)", u.String(), b.String())
	}
	return nil
}

func checkFloat(result float64, b *big.Int) error {
	expected, _ := new(big.Float).SetInt(b).Float64()
	if result != expected {
		return fmt.Errorf("bignum(%g) != big(%g)", result, expected)
	}
	return nil
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -bignum.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	// fuzzTypesActive comes from the -bignum.fuzztype flag, in TestMain:
	var runFuzzTypes = fuzzTypesActive

	var source = &rando{rng: globalRNG, maxBits: fuzzMaxBits} // Classic rando!
	var totalFailures int

	var fuzzTypes []fuzzOps

	for _, fuzzType := range runFuzzTypes {
		switch fuzzType {
		case fuzzTypeNatural:
			fuzzTypes = append(fuzzTypes, &fuzzNatural{source: source})
		case fuzzTypeInteger:
			fuzzTypes = append(fuzzTypes, &fuzzInteger{source: source})
		default:
			panic("unknown fuzz type")
		}
	}

	for _, fuzzImpl := range fuzzTypes {
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()

				var err error

				// NEWOP: add a new branch here in alphabetical order if a new
				// op is added.
				switch op {
				case fuzzAdd:
					err = fuzzImpl.Add()
				case fuzzAnd:
					err = fuzzImpl.And()
				case fuzzAsFloat64:
					err = fuzzImpl.AsFloat64()
				case fuzzBit:
					err = fuzzImpl.Bit()
				case fuzzBitLen:
					err = fuzzImpl.BitLen()
				case fuzzBytes:
					err = fuzzImpl.Bytes()
				case fuzzCmp:
					err = fuzzImpl.Cmp()
				case fuzzDivMod:
					err = fuzzImpl.DivMod()
				case fuzzFlipBit:
					err = fuzzImpl.FlipBit()
				case fuzzFromFloat64:
					err = fuzzImpl.FromFloat64()
				case fuzzLsh:
					err = fuzzImpl.Lsh()
				case fuzzMul:
					err = fuzzImpl.Mul()
				case fuzzOr:
					err = fuzzImpl.Or()
				case fuzzPow:
					err = fuzzImpl.Pow()
				case fuzzQuoRem:
					err = fuzzImpl.QuoRem()
				case fuzzRsh:
					err = fuzzImpl.Rsh()
				case fuzzSetBit:
					err = fuzzImpl.SetBit()
				case fuzzString:
					err = fuzzImpl.String()
				case fuzzSub:
					err = fuzzImpl.Sub()
				case fuzzXor:
					err = fuzzImpl.Xor()
				default:
					panic(fmt.Errorf("unsupported op %q", op))
				}

				if err != nil {
					failures[opIdx]++
					t.Logf("%s: %s\n", op.Print(source.Operands()...), err)
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	//
	// It should be safe to assume the appropriate number of operands are set
	// in 'operands'; if not, it's a bug to be fixed elsewhere.
	switch op {
	case fuzzAsFloat64,
		fuzzFromFloat64,
		fuzzBitLen,
		fuzzBytes:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzString:
		return fmt.Sprintf("string(%d, base=%d)", operands[0], operands[1])

	case fuzzSetBit:
		return fmt.Sprintf("%d|(1<<%d)", operands[0], operands[1])

	case fuzzFlipBit:
		return fmt.Sprintf("%d^(1<<%d)", operands[0], operands[1])

	case fuzzBit:
		return fmt.Sprintf("(%b>>%d)&1", operands[0], operands[1])

	case fuzzAdd,
		fuzzAnd,
		fuzzCmp,
		fuzzDivMod,
		fuzzLsh,
		fuzzMul,
		fuzzOr,
		fuzzPow,
		fuzzQuoRem,
		fuzzRsh,
		fuzzSub,
		fuzzXor:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAdd:
		return "+"
	case fuzzAnd:
		return "&"
	case fuzzAsFloat64:
		return "float64()"
	case fuzzBit:
		return "bit()"
	case fuzzBitLen:
		return "bitlen()"
	case fuzzBytes:
		return "bytes()"
	case fuzzCmp:
		return "<=>"
	case fuzzDivMod:
		return "divmod"
	case fuzzFlipBit:
		return "flipbit()"
	case fuzzFromFloat64:
		return "fromfloat64()"
	case fuzzLsh:
		return "<<"
	case fuzzMul:
		return "*"
	case fuzzOr:
		return "|"
	case fuzzPow:
		return "**"
	case fuzzQuoRem:
		return "/%"
	case fuzzRsh:
		return ">>"
	case fuzzSetBit:
		return "setbit()"
	case fuzzString:
		return "string()"
	case fuzzSub:
		return "-"
	case fuzzXor:
		return "^"
	default:
		return string(op)
	}
}

type fuzzNatural struct {
	source *rando
}

func (f fuzzNatural) Name() string { return "natural" }

func (f fuzzNatural) Add() error {
	b1, b2 := f.source.BigNaturalx2()
	n1, n2 := accNaturalFromBigInt(b1), accNaturalFromBigInt(b2)
	rb := new(big.Int).Add(b1, b2)
	return checkEqualString(n1.Add(n2), rb)
}

func (f fuzzNatural) Sub() error {
	b1, b2 := f.source.BigNaturalx2()
	if b1.Cmp(b2) < 0 {
		b1, b2 = b2, b1
	}
	n1, n2 := accNaturalFromBigInt(b1), accNaturalFromBigInt(b2)
	rb := new(big.Int).Sub(b1, b2)
	return checkEqualString(n1.Sub(n2), rb)
}

func (f fuzzNatural) Mul() error {
	b1, b2 := f.source.BigNaturalx2()
	n1, n2 := accNaturalFromBigInt(b1), accNaturalFromBigInt(b2)
	rb := new(big.Int).Mul(b1, b2)
	return checkEqualString(n1.Mul(n2), rb)
}

func (f fuzzNatural) QuoRem() error {
	b1, b2 := f.source.BigNaturalx2()
	n1, n2 := accNaturalFromBigInt(b1), accNaturalFromBigInt(b2)
	if b2.Sign() == 0 {
		return nil // Just skip this iteration, we know what happens!
	}

	rbq, rbr := new(big.Int).QuoRem(b1, b2, new(big.Int))
	q, r := n1.QuoRem(n2)
	if err := checkEqualString(q, rbq); err != nil {
		return err
	}
	return checkEqualString(r, rbr)
}

func (f fuzzNatural) DivMod() error {
	return nil // Same as QuoRem for Natural
}

func (f fuzzNatural) Pow() error {
	b1 := randomBigNatural(f.source.rng, 64)
	f.source.operands = append(f.source.operands, b1)
	e := f.source.Intn(20)
	n1 := accNaturalFromBigInt(b1)
	rb := new(big.Int).Exp(b1, big.NewInt(int64(e)), nil)
	return checkEqualString(n1.Pow(n64(uint64(e))), rb)
}

func (f fuzzNatural) Cmp() error {
	b1, b2 := f.source.BigNaturalx2()
	n1, n2 := accNaturalFromBigInt(b1), accNaturalFromBigInt(b2)
	return checkEqualInt(n1.Cmp(n2), b1.Cmp(b2))
}

func (f fuzzNatural) And() error {
	b1, b2 := f.source.BigNaturalx2()
	n1, n2 := accNaturalFromBigInt(b1), accNaturalFromBigInt(b2)
	rb := new(big.Int).And(b1, b2)
	result := n1.And(n2)
	if err := checkCanonical(result); err != nil {
		return err
	}
	return checkEqualString(result, rb)
}

func (f fuzzNatural) Or() error {
	b1, b2 := f.source.BigNaturalx2()
	n1, n2 := accNaturalFromBigInt(b1), accNaturalFromBigInt(b2)
	rb := new(big.Int).Or(b1, b2)
	return checkEqualString(n1.Or(n2), rb)
}

func (f fuzzNatural) Xor() error {
	b1, b2 := f.source.BigNaturalx2()
	n1, n2 := accNaturalFromBigInt(b1), accNaturalFromBigInt(b2)
	rb := new(big.Int).Xor(b1, b2)
	result := n1.Xor(n2)
	if err := checkCanonical(result); err != nil {
		return err
	}
	return checkEqualString(result, rb)
}

func (f fuzzNatural) Lsh() error {
	b1 := f.source.BigNatural()
	by := f.source.Intn(f.source.maxBits)
	n1 := accNaturalFromBigInt(b1)
	rb := new(big.Int).Lsh(b1, uint(by))
	return checkEqualString(n1.Lsh(by), rb)
}

func (f fuzzNatural) Rsh() error {
	b1 := f.source.BigNatural()
	by := f.source.Intn(f.source.maxBits)
	n1 := accNaturalFromBigInt(b1)
	rb := new(big.Int).Rsh(b1, uint(by))
	return checkEqualString(n1.Rsh(by), rb)
}

func (f fuzzNatural) Bit() error {
	b1 := f.source.BigNatural()
	bit := f.source.Intn(f.source.maxBits + 64)
	n1 := accNaturalFromBigInt(b1)
	return checkEqualBool(n1.Bit(uint(bit)), b1.Bit(bit) == 1)
}

func (f fuzzNatural) SetBit() error {
	b1 := f.source.BigNatural()
	bit := f.source.Intn(f.source.maxBits + 64)
	val := f.source.Intn(2)
	n1 := accNaturalFromBigInt(b1)
	rb := new(big.Int).SetBit(b1, bit, uint(val))
	result := n1.SetBit(uint(bit), val == 1)
	if err := checkCanonical(result); err != nil {
		return err
	}
	return checkEqualString(result, rb)
}

func (f fuzzNatural) FlipBit() error {
	b1 := f.source.BigNatural()
	bit := f.source.Intn(f.source.maxBits + 64)
	n1 := accNaturalFromBigInt(b1)
	rb := new(big.Int).SetBit(b1, bit, b1.Bit(bit)^1)
	result := n1.FlipBit(uint(bit))
	if err := checkCanonical(result); err != nil {
		return err
	}
	return checkEqualString(result, rb)
}

func (f fuzzNatural) BitLen() error {
	b1 := f.source.BigNatural()
	n1 := accNaturalFromBigInt(b1)
	return checkEqualInt(n1.BitLen(), b1.BitLen())
}

func (f fuzzNatural) Bytes() error {
	b1 := f.source.BigNatural()
	n1 := accNaturalFromBigInt(b1)
	if fmt.Sprintf("%x", n1.Bytes()) != fmt.Sprintf("%x", b1.Bytes()) {
		return fmt.Errorf("bignum(%x) != big(%x)", n1.Bytes(), b1.Bytes())
	}
	return checkEqualString(NaturalFromBE(b1.Bytes()), b1)
}

func (f fuzzNatural) String() error {
	b1 := f.source.BigNatural()
	base := 2 + f.source.Intn(MaxBase-1)
	n1 := accNaturalFromBigInt(b1)

	s, err := n1.Text(base, 1, false)
	if err != nil {
		return err
	}
	if s != b1.Text(base) {
		return fmt.Errorf("bignum(%s) != big(%s)", s, b1.Text(base))
	}

	back, err := NaturalFromString(s, base)
	if err != nil {
		return err
	}
	return checkEqualString(back, b1)
}

func (f fuzzNatural) AsFloat64() error {
	b1 := f.source.BigNatural()
	n1 := accNaturalFromBigInt(b1)
	return checkFloat(n1.AsFloat64(), b1)
}

func (f fuzzNatural) FromFloat64() error {
	b1 := f.source.BigNatural()
	f1, _ := new(big.Float).SetInt(b1).Float64()
	rb, _ := big.NewFloat(f1).Int(nil)
	result, inRange := NaturalFromFloat64(f1)
	if !inRange {
		return fmt.Errorf("float %g out of range", f1)
	}
	return checkEqualString(result, rb)
}

type fuzzInteger struct {
	source *rando
}

func (f fuzzInteger) Name() string { return "integer" }

func (f fuzzInteger) Add() error {
	b1, b2 := f.source.BigIntegerx2()
	i1, i2 := IntegerFromBigInt(b1), IntegerFromBigInt(b2)
	rb := new(big.Int).Add(b1, b2)
	return checkEqualString(i1.Add(i2), rb)
}

func (f fuzzInteger) Sub() error {
	b1, b2 := f.source.BigIntegerx2()
	i1, i2 := IntegerFromBigInt(b1), IntegerFromBigInt(b2)
	rb := new(big.Int).Sub(b1, b2)
	return checkEqualString(i1.Sub(i2), rb)
}

func (f fuzzInteger) Mul() error {
	b1, b2 := f.source.BigIntegerx2()
	i1, i2 := IntegerFromBigInt(b1), IntegerFromBigInt(b2)
	rb := new(big.Int).Mul(b1, b2)
	return checkEqualString(i1.Mul(i2), rb)
}

func (f fuzzInteger) QuoRem() error {
	b1, b2 := f.source.BigIntegerx2()
	i1, i2 := IntegerFromBigInt(b1), IntegerFromBigInt(b2)
	if b2.Sign() == 0 {
		return nil // Just skip this iteration, we know what happens!
	}

	rbq, rbr := new(big.Int).QuoRem(b1, b2, new(big.Int))
	q, r := i1.QuoRem(i2)
	if err := checkEqualString(q, rbq); err != nil {
		return err
	}
	return checkEqualString(r, rbr)
}

func (f fuzzInteger) DivMod() error {
	b1, b2 := f.source.BigIntegerx2()
	i1, i2 := IntegerFromBigInt(b1), IntegerFromBigInt(b2)
	if b2.Sign() == 0 {
		return nil // Just skip this iteration, we know what happens!
	}

	// big.Int.DivMod implements Euclidean division:
	rbq, rbm := new(big.Int).DivMod(b1, b2, new(big.Int))
	q, m := i1.DivMod(i2)
	if err := checkEqualString(q, rbq); err != nil {
		return err
	}
	return checkEqualString(m, rbm)
}

func (f fuzzInteger) Pow() error {
	b1 := randomBigNatural(f.source.rng, 64)
	if f.source.rng.Intn(2) == 1 {
		b1.Neg(b1)
	}
	f.source.operands = append(f.source.operands, b1)
	e := f.source.Intn(20)
	i1 := IntegerFromBigInt(b1)
	rb := new(big.Int).Exp(b1, big.NewInt(int64(e)), nil)
	return checkEqualString(i1.Pow(n64(uint64(e))), rb)
}

func (f fuzzInteger) Cmp() error {
	b1, b2 := f.source.BigIntegerx2()
	i1, i2 := IntegerFromBigInt(b1), IntegerFromBigInt(b2)
	return checkEqualInt(i1.Cmp(i2), b1.Cmp(b2))
}

func (f fuzzInteger) Lsh() error {
	b1 := f.source.BigInteger()
	by := f.source.Intn(f.source.maxBits)
	i1 := IntegerFromBigInt(b1)
	rb := new(big.Int).Lsh(b1, uint(by))
	return checkEqualString(i1.Lsh(by), rb)
}

func (f fuzzInteger) Rsh() error {
	b1 := f.source.BigInteger()
	by := f.source.Intn(f.source.maxBits)
	i1 := IntegerFromBigInt(b1)

	// big.Int.Rsh floors negative values; Integer.Rsh truncates the
	// magnitude:
	rb := new(big.Int).Abs(b1)
	rb.Rsh(rb, uint(by))
	if b1.Sign() < 0 {
		rb.Neg(rb)
	}
	return checkEqualString(i1.Rsh(by), rb)
}

func (f fuzzInteger) String() error {
	b1 := f.source.BigInteger()
	base := 2 + f.source.Intn(MaxBase-1)
	i1 := IntegerFromBigInt(b1)

	s, err := i1.Text(base, 1, false)
	if err != nil {
		return err
	}
	if s != b1.Text(base) {
		return fmt.Errorf("bignum(%s) != big(%s)", s, b1.Text(base))
	}

	back, err := IntegerFromString(s, base)
	if err != nil {
		return err
	}
	return checkEqualString(back, b1)
}

func (f fuzzInteger) AsFloat64() error {
	b1 := f.source.BigInteger()
	i1 := IntegerFromBigInt(b1)
	return checkFloat(i1.AsFloat64(), b1)
}

func (f fuzzInteger) FromFloat64() error {
	b1 := f.source.BigInteger()
	f1, _ := new(big.Float).SetInt(b1).Float64()
	rb, _ := big.NewFloat(f1).Int(nil)
	result, inRange := IntegerFromFloat64(f1)
	if !inRange {
		return fmt.Errorf("float %g out of range", f1)
	}
	return checkEqualString(result, rb)
}

func (f fuzzInteger) And() error     { return nil } // Not implemented for Integer
func (f fuzzInteger) Or() error      { return nil } // Not implemented for Integer
func (f fuzzInteger) Xor() error     { return nil } // Not implemented for Integer
func (f fuzzInteger) Bit() error     { return nil } // Not implemented for Integer
func (f fuzzInteger) SetBit() error  { return nil } // Not implemented for Integer
func (f fuzzInteger) FlipBit() error { return nil } // Not implemented for Integer
func (f fuzzInteger) BitLen() error  { return nil } // Not implemented for Integer
func (f fuzzInteger) Bytes() error   { return nil } // Not implemented for Integer

// checkCanonical reports a Natural whose most significant limb is zero.
func checkCanonical(n Natural) error {
	if len(n.limbs) > 0 && n.limbs[len(n.limbs)-1] == 0 {
		return fmt.Errorf("non-canonical limbs %#x", n.limbs)
	}
	return nil
}
