package bignum

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is the cause of every error returned by this package.
// Use errors.Is or errors.Cause to test for it:
//
//	if _, err := NaturalFromString("12z", 10); errors.Is(err, ErrInvalidArgument) {
//		// ...
//	}
var ErrInvalidArgument = errors.New("invalid argument")

var (
	errDivisionByZero   = errors.New("bignum: division by zero")
	errNaturalUnderflow = errors.New("bignum: natural subtraction underflow")
)

func invalidArgf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func errInvalidBase(base int) error {
	return invalidArgf("bignum: invalid base %d", base)
}

func errInvalidDigit(s string, base int) error {
	return invalidArgf("bignum: string %q invalid in base %d", s, base)
}

func errRomanDomain(s string) error {
	return invalidArgf("bignum: roman numerals require a value >= 1, found %s", s)
}

func errRomanRange(s string) error {
	return invalidArgf("bignum: value %s too large for roman numerals", s)
}
