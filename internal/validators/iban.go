package validators

import "strings"

// IBANLengths maps an ISO two-letter country code to the expected total
// IBAN length (country code + check digits + BBAN, no spaces). A country
// code absent from this table is rejected outright — the detector never
// falls back to a generic length check.
var IBANLengths = map[string]int{
	"AD": 24, "AE": 23, "AL": 28, "AT": 20, "AZ": 28, "BA": 20, "BE": 16,
	"BG": 22, "BH": 22, "BR": 29, "BY": 28, "CH": 21, "CR": 22, "CY": 28,
	"CZ": 24, "DE": 22, "DJ": 27, "DK": 18, "DO": 28, "EE": 20, "EG": 29,
	"ES": 24, "FI": 18, "FO": 18, "FR": 27, "GB": 22, "GE": 22, "GI": 23,
	"GL": 18, "GR": 27, "GT": 28, "HR": 21, "HU": 28, "IE": 22, "IL": 23,
	"IQ": 23, "IS": 26, "IT": 27, "JO": 30, "KW": 30, "KZ": 20, "LB": 28,
	"LC": 32, "LI": 21, "LT": 20, "LU": 20, "LV": 21, "LY": 25, "MC": 27,
	"MD": 24, "ME": 22, "MK": 19, "MN": 20, "MR": 27, "MT": 31, "MU": 30,
	"NI": 28, "NL": 18, "NO": 15, "OM": 23, "PK": 24, "PL": 28, "PS": 29,
	"PT": 25, "QA": 29, "RO": 24, "RS": 22, "RU": 33, "SA": 24, "SC": 31,
	"SD": 18, "SE": 24, "SI": 19, "SK": 24, "SM": 27, "SO": 23, "ST": 25,
	"SV": 28, "TL": 23, "TN": 24, "TR": 26, "UA": 29, "VA": 22, "VG": 24,
	"XK": 20, "YE": 30,
}

// IBANResult is the outcome of validating an IBAN-shaped string.
type IBANResult struct {
	// FormatOK is true when the country code is known and the length
	// matches the table, regardless of checksum.
	FormatOK bool
	// ChecksumOK is true when FormatOK and the mod-97 remainder is 1.
	ChecksumOK bool
}

// ValidateIBAN strips spaces, checks the country's expected length, and
// runs the ISO 7064 MOD-97-10 check. Unknown country codes are rejected
// (FormatOK=false) rather than falling through to a generic check.
func ValidateIBAN(raw string) IBANResult {
	clean := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	if len(clean) < 5 {
		return IBANResult{}
	}
	country := clean[:2]
	expected, known := IBANLengths[country]
	if !known || len(clean) != expected {
		return IBANResult{}
	}

	rearranged := clean[4:] + clean[:4]
	if mod97(rearranged) == 1 {
		return IBANResult{FormatOK: true, ChecksumOK: true}
	}
	return IBANResult{FormatOK: true, ChecksumOK: false}
}

// mod97 computes the ISO 7064 MOD-97-10 remainder of an IBAN (already
// rearranged so the country code and check digits trail the BBAN),
// expanding letters to their two-digit numeric value (A=10 ... Z=35) and
// folding the remainder in digit by digit so no big-integer type is
// needed for IBANs far longer than 64 bits of decimal digits.
func mod97(s string) int {
	remainder := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			val := int(r-'A') + 10
			remainder = (remainder*100 + val) % 97
		default:
			return -1
		}
	}
	return remainder
}
