package bignum

const (
	// MaxBase is the largest base accepted by the string conversions:
	// digits 0-9 followed by the letters a-z.
	MaxBase = 10 + ('z' - 'a' + 1)

	maxUint64 = 1<<64 - 1
	maxUint32 = 1<<32 - 1
	maxInt64  = 1<<63 - 1

	digitSeparator = '\''

	digitsLower = "0123456789abcdefghijklmnopqrstuvwxyz"
	digitsUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	zeroNatural Natural
	oneNatural  = Natural{limbs: []uint32{1}}

	zeroInteger Integer
)
