package bignum

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatSpec is a parsed formatting request, as produced by a format-string
// parser. Precision is the minimum number of digits and is only used if
// HasPrecision is set; otherwise, or if it is below 1, a minimum of 1 digit
// applies. For the float verbs Precision is passed to strconv.FormatFloat
// as-is.
//
// Verbs:
//
//	d           decimal
//	b           binary
//	o           octal
//	x, X        hexadecimal, lower or upper-case digits
//	r, R        Roman numerals, lower or upper-case; fails for values < 1
//	e E f F g G converted to float64 and formatted by strconv.FormatFloat
//
// Upper forces upper-case letter digits (or Roman numerals) for any verb.
type FormatSpec struct {
	Verb         rune
	Precision    int
	HasPrecision bool
	Upper        bool
}

func (spec FormatSpec) minDigits() int {
	if !spec.HasPrecision {
		return 1
	}
	return spec.Precision
}

func isFloatVerb(c rune) bool {
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return true
	}
	return false
}

func formatFloatSpec(f float64, spec FormatSpec) string {
	prec := -1
	if spec.HasPrecision {
		prec = spec.Precision
	}
	verb := byte(spec.Verb)
	if verb == 'F' {
		verb = 'f'
	}
	return strconv.FormatFloat(f, verb, prec, 64)
}

// Render formats n as described by spec.
func (n Natural) Render(spec FormatSpec) (string, error) {
	switch spec.Verb {
	case 'd':
		return n.Text(10, spec.minDigits(), spec.Upper)
	case 'b':
		return n.Text(2, spec.minDigits(), spec.Upper)
	case 'o':
		return n.Text(8, spec.minDigits(), spec.Upper)
	case 'x':
		return n.Text(16, spec.minDigits(), spec.Upper)
	case 'X':
		return n.Text(16, spec.minDigits(), true)
	case 'r':
		return n.Roman(spec.Upper)
	case 'R':
		return n.Roman(true)
	}
	if isFloatVerb(spec.Verb) {
		return formatFloatSpec(n.AsFloat64(), spec), nil
	}
	return "", invalidArgf("bignum: unknown format verb %q", spec.Verb)
}

// Render formats i as described by spec. Negative values are prefixed with
// '-', except in Roman mode, which fails for values < 1.
func (i Integer) Render(spec FormatSpec) (string, error) {
	if isFloatVerb(spec.Verb) {
		return formatFloatSpec(i.AsFloat64(), spec), nil
	}
	if (spec.Verb == 'r' || spec.Verb == 'R') && i.Sign() <= 0 {
		return "", errRomanDomain(i.String())
	}
	s, err := i.mag.Render(spec)
	if err != nil {
		return "", err
	}
	if i.neg {
		return "-" + s, nil
	}
	return s, nil
}

// Format implements fmt.Formatter. It accepts the verbs listed on FormatSpec
// as well as 's' and 'v' (decimal), width, precision and the '+', '-', '0'
// and '#' flags.
func (n Natural) Format(s fmt.State, c rune) {
	if c == 'v' && s.Flag('#') {
		_, _ = io.WriteString(s, n.GoString())
		return
	}
	writeFormatted(s, c, "Natural", n, false)
}

// Format implements fmt.Formatter; see Natural.Format.
func (i Integer) Format(s fmt.State, c rune) {
	if c == 'v' && s.Flag('#') {
		_, _ = io.WriteString(s, i.GoString())
		return
	}
	writeFormatted(s, c, "Integer", i.mag, i.neg)
}

func writeFormatted(s fmt.State, c rune, typ string, mag Natural, neg bool) {
	spec := FormatSpec{Verb: c}
	spec.Precision, spec.HasPrecision = s.Precision()
	if c == 's' || c == 'v' {
		spec.Verb = 'd'
	}

	var body string
	var err error
	if (c == 'r' || c == 'R') && neg {
		err = errRomanDomain("-" + mag.String())
	} else if isFloatVerb(c) {
		body = formatFloatSpec(mag.AsFloat64(), spec)
	} else {
		body, err = mag.Render(spec)
	}
	if err != nil {
		sign := ""
		if neg {
			sign = "-"
		}
		fmt.Fprintf(s, "%%!%c(bignum.%s=%s%s)", c, typ, sign, mag.String())
		return
	}

	var sign string
	if neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	}

	var prefix string
	if s.Flag('#') {
		switch c {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}

	width, _ := s.Width()
	pad := width - len(sign) - len(prefix) - len(body)
	if pad <= 0 {
		_, _ = io.WriteString(s, sign+prefix+body)
		return
	}

	switch {
	case s.Flag('-'):
		_, _ = io.WriteString(s, sign+prefix+body+strings.Repeat(" ", pad))
	case s.Flag('0') && !spec.HasPrecision:
		_, _ = io.WriteString(s, sign+prefix+strings.Repeat("0", pad)+body)
	default:
		_, _ = io.WriteString(s, strings.Repeat(" ", pad)+sign+prefix+body)
	}
}
