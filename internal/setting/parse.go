package setting

import "strconv"

// Textual sets follow C-style numeric scanning: take the longest valid
// leading prefix and ignore whatever trails it. "12abc" reads as 12;
// "abc" reads as nothing at all and the previous value stands.

func digitsEnd(s string, from int) int {
	i := from
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}

// intPrefixEnd returns the end of an optionally signed decimal prefix,
// or 0 when there is none.
func intPrefixEnd(s string, signed bool) int {
	i := 0
	if signed && i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	end := digitsEnd(s, i)
	if end == i {
		return 0
	}
	return end
}

func parseIntPrefix(s string) (int, bool) {
	end := intPrefixEnd(s, true)
	if end == 0 {
		return 0, false
	}
	// Out-of-range prefixes are rejected, not clamped.
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseUint8Prefix(s string) (uint8, bool) {
	end := intPrefixEnd(s, false)
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(s[:end], 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// floatPrefixEnd matches what strtod-style parsers consume:
// [sign] digits [. digits] [e [sign] digits], where the mantissa needs at
// least one digit on either side of the dot, and a dangling exponent
// marker is not consumed.
func floatPrefixEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intEnd := digitsEnd(s, i)
	mantEnd := intEnd
	hasDigits := intEnd > i
	if mantEnd < len(s) && s[mantEnd] == '.' {
		fracEnd := digitsEnd(s, mantEnd+1)
		switch {
		case fracEnd > mantEnd+1:
			mantEnd = fracEnd
			hasDigits = true
		case hasDigits:
			mantEnd++ // trailing dot after digits, e.g. "1."
		}
	}
	if !hasDigits {
		return 0
	}
	end := mantEnd
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expEnd := digitsEnd(s, j); expEnd > j {
			end = expEnd
		}
	}
	return end
}

func parseFloatPrefix(s string) (float64, bool) {
	end := floatPrefixEnd(s)
	if end == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
