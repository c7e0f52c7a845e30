package validators

// ValidateKVNR checks a German Krankenversichertennummer (health insurance
// number): one letter followed by nine digits. The letter is expanded to
// its two-digit ordinal (A=01 ... Z=26), giving a ten-digit string with
// the leading eight digits as payload and the ninth as check digit; a
// modified Luhn weighting of [1,2,1,2,...] is applied to the ten digits
// and each weighted product is cross-summed (folded into a single digit
// when it exceeds 9) before the check digit is compared against the
// total mod 10.
func ValidateKVNR(raw string) bool {
	if len(raw) != 10 {
		return false
	}
	letter := raw[0]
	if letter < 'A' || letter > 'Z' {
		return false
	}
	for i := 1; i < 10; i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}

	ordinal := int(letter-'A') + 1
	digits := make([]int, 0, 10)
	digits = append(digits, ordinal/10, ordinal%10)
	for i := 1; i < 9; i++ {
		digits = append(digits, int(raw[i]-'0'))
	}

	total := 0
	for i, d := range digits {
		weight := 1
		if i%2 == 1 {
			weight = 2
		}
		product := d * weight
		total += product/10 + product%10
	}

	expected := total % 10
	return expected == int(raw[9]-'0')
}
