package alphanum

import "math"

// parseUint reads an unsigned integer starting at s[pos] the way strtoul does
// with base 0: a "0x" prefix followed by a hex digit selects base 16, any other
// leading zero selects base 8, and everything else is decimal. It returns the
// value and the position right after the last consumed byte. The value saturates
// at math.MaxUint64 but all valid digits are still consumed.
//
// The caller guarantees that s[pos] is a decimal digit.
func parseUint[T text](s T, pos int) (uint64, int) {
	base := uint64(10)

	if s[pos] == '0' {
		base = 8

		if pos+2 < len(s) && (s[pos+1] == 'x' || s[pos+1] == 'X') && digitValue(s[pos+2]) < 16 {
			base = 16
			pos += 2
		}
	}

	var (
		n        uint64
		overflow bool
	)

	for ; pos < len(s); pos++ {
		d := digitValue(s[pos])
		if d >= base {
			break
		}

		if overflow {
			continue
		}

		if n > (math.MaxUint64-d)/base {
			n, overflow = math.MaxUint64, true
			continue
		}

		n = n*base + d
	}

	return n, pos
}

// digitValue returns the value of c as a base-36 digit, or 36 if c is not a digit.
func digitValue(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10
	default:
		return 36
	}
}
