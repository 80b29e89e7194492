package bignum

import (
	"strings"
)

// checkBase rejects any base outside [2, MaxBase]. If auto is set, 0 is also
// accepted and means "detect from the prefix".
func checkBase(base int, auto bool) error {
	if (auto && base == 0) || (base >= 2 && base <= MaxBase) {
		return nil
	}
	return errInvalidBase(base)
}

// groupPow returns the largest power of base that fits in a single limb,
// and the number of digits that power spans.
func groupPow(base uint32) (pow uint32, digits int) {
	pow, digits = base, 1
	for max := uint32(maxUint32) / base; pow <= max; digits++ {
		pow *= base
	}
	return pow, digits
}

func pow32(base uint32, n int) uint32 {
	p := uint32(1)
	for ; n > 0; n-- {
		p *= base
	}
	return p
}

func digitValue(ch byte) uint32 {
	switch {
	case '0' <= ch && ch <= '9':
		return uint32(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return uint32(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return uint32(ch-'A') + 10
	}
	return MaxBase + 1
}

// parseMagnitude converts s to a canonical limb vector.
//
// If base is 0, a "0x" or "0b" prefix (either case) selects base 16 or 2,
// otherwise base 10 is used. Apostrophes may be used to separate digit
// groups and are ignored. Digits are collected in groups that fit in a limb
// and folded into the result with a single multiply-add per group.
func parseMagnitude(s string, base int) ([]uint32, error) {
	if err := checkBase(base, true); err != nil {
		return nil, err
	}

	digits := s
	if base == 0 {
		base = 10
		if len(digits) >= 2 && digits[0] == '0' {
			switch digits[1] {
			case 'x', 'X':
				base, digits = 16, digits[2:]
			case 'b', 'B':
				base, digits = 2, digits[2:]
			}
		}
	}

	b := uint32(base)
	gpow, glen := groupPow(b)

	var (
		z     []uint32
		acc   uint32 // digits collected since the last fold
		n     int    // number of digits in acc
		count int
	)

	for i := 0; i < len(digits); i++ {
		ch := digits[i]
		if ch == digitSeparator {
			continue
		}
		d := digitValue(ch)
		if d >= b {
			return nil, errInvalidDigit(s, base)
		}
		acc = acc*b + d
		n++
		count++
		if n == glen {
			z = mulAddLimb(z, gpow, acc)
			acc, n = 0, 0
		}
	}

	if count == 0 {
		return nil, errInvalidDigit(s, base)
	}
	if n > 0 {
		z = mulAddLimb(z, pow32(b, n), acc)
	}
	return z, nil
}

// formatMagnitude renders x in the given base, which must already have been
// checked. The output is left-padded with zeros to at least minDigits.
func formatMagnitude(x []uint32, base int, minDigits int, upper bool) string {
	digits := digitsLower
	if upper {
		digits = digitsUpper
	}

	b := uint32(base)
	gpow, glen := groupPow(b)

	buf := make([]byte, 0, bitLenLimbs(x)+1)
	q := x
	for len(q) > 0 {
		var r uint32
		q, r = divLimb(q, gpow)
		for j := 0; j < glen; j++ {
			if len(q) == 0 && r == 0 {
				break // no zero padding for the most significant group
			}
			buf = append(buf, digits[r%b])
			r /= b
		}
	}
	for len(buf) < minDigits {
		buf = append(buf, '0')
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

var romanTable = []struct {
	value  uint32
	digits string
}{
	{900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// maxRomanThousands caps the number of leading Ms a Roman numeral may carry.
const maxRomanThousands = 1 << 24

// formatRoman renders x, which must be at least 1, as a Roman numeral. There
// is no numeral above M, so every whole thousand is written as an M. Values
// with more than maxRomanThousands thousands are rejected.
func formatRoman(x []uint32, upper bool) (string, error) {
	thousands, rem := divLimb(x, 1000)
	if len(thousands) > 1 || (len(thousands) == 1 && thousands[0] > maxRomanThousands) {
		return "", errRomanRange(Natural{limbs: x}.String())
	}

	var sb strings.Builder
	if len(thousands) > 0 {
		sb.WriteString(strings.Repeat("M", int(thousands[0])))
	}
	for _, r := range romanTable {
		for rem >= r.value {
			sb.WriteString(r.digits)
			rem -= r.value
		}
	}

	if upper {
		return sb.String(), nil
	}
	return strings.ToLower(sb.String()), nil
}
