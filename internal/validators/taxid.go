package validators

// TaxIDResult is the outcome of running the mod-11-10 check against a
// German Steueridentifikationsnummer candidate.
type TaxIDResult struct {
	// StructurallyValid is false when the digit string isn't 11 ASCII
	// digits, or when the algorithm itself yields a check value of 10 —
	// a mathematical impossibility for a genuine tax ID, since every
	// real one has at least one repeated or cyclically-shifted digit
	// among the first ten. A structurally invalid candidate should be
	// dropped outright, with no checksum-mismatch finding either.
	StructurallyValid bool
	// ChecksumOK is true when StructurallyValid and the computed check
	// digit equals the 11th digit of the candidate.
	ChecksumOK bool
}

// ValidateTaxID checks the 11th digit of a German Steueridentifikationsnummer
// against the ISO 7064 MOD 11,10 check-digit algorithm. digits must be
// exactly 11 ASCII digits (spaces already stripped by the caller); the
// first 10 are the payload, the 11th is the check digit.
func ValidateTaxID(digits string) TaxIDResult {
	if len(digits) != 11 {
		return TaxIDResult{}
	}
	for i := 0; i < 11; i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return TaxIDResult{}
		}
	}

	product := 10
	for i := 0; i < 10; i++ {
		d := int(digits[i] - '0')
		sum := (d + product) % 10
		if sum == 0 {
			sum = 10
		}
		product = (sum * 2) % 11
	}

	check := 11 - product
	switch check {
	case 10:
		return TaxIDResult{}
	case 11:
		check = 0
	}

	return TaxIDResult{
		StructurallyValid: true,
		ChecksumOK:        check == int(digits[10]-'0'),
	}
}
