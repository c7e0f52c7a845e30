// Package validators holds the pure checksum/structure functions behind
// the detectors: Luhn (credit cards), IBAN mod-97, the German tax-ID
// mod-11-10, and the KVNR modified-Luhn. None of them allocate more than
// a small fixed buffer and none of them touch the detector's regex or
// context logic — they take an already-matched string and say yes or no.
package validators

// Luhn reports whether digits (a string of ASCII digits only) passes the
// standard mod-10 Luhn check: starting from the rightmost digit, double
// every second digit and subtract 9 if the result exceeds 9, then sum
// everything; valid iff the sum is a multiple of 10.
func Luhn(digits string) bool {
	if len(digits) == 0 {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
