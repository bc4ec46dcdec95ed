package alphanum

type mode uint8

const (
	modeString mode = iota
	modeNumber
)

type text interface {
	~string | ~[]byte
}

// Compare compares l and r with strcmp semantics using the alphanum algorithm:
// runs of digits are compared by their numeric value, everything else byte by byte.
// It returns a negative number if l < r, 0 if l == r, and a positive number if l > r.
// Only the sign of the result is meaningful.
func Compare(l, r string) int {
	return compare(l, r)
}

// CompareBytes is like Compare but operates on byte slices.
func CompareBytes(l, r []byte) int {
	return compare(l, r)
}

// compare walks both inputs once, without copying substrings.
func compare[T text](l, r T) int {
	var i, j int

	m := modeString

	for i < len(l) && j < len(r) {
		if m == modeString {
			for i < len(l) && j < len(r) {
				lc, rc := l[i], r[j]
				ldigit, rdigit := isDigit(lc), isDigit(rc)

				if ldigit && rdigit {
					m = modeNumber
					break
				}

				// A digit always goes before a non-digit.
				if ldigit {
					return -1
				} else if rdigit {
					return +1
				}

				if diff := int(lc) - int(rc); diff != 0 {
					return diff
				}

				i++
				j++
			}

			continue
		}

		var lnum, rnum uint64
		lnum, i = parseUint(l, i)
		rnum, j = parseUint(r, j)

		if lnum < rnum {
			return -1
		} else if lnum > rnum {
			return +1
		}

		m = modeString
	}

	if j < len(r) {
		return -1
	} else if i < len(l) {
		return +1
	}

	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
