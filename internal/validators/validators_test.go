package validators

import "testing"

func TestLuhn(t *testing.T) {
	cases := []struct {
		digits string
		want   bool
	}{
		{"4532015112830366", true},
		{"4532015112830367", false},
		{"", false},
		{"79927398713", true},
		{"1234567890123456a", false},
	}
	for _, c := range cases {
		if got := Luhn(c.digits); got != c.want {
			t.Errorf("Luhn(%q) = %v, want %v", c.digits, got, c.want)
		}
	}
}

func TestValidateIBAN(t *testing.T) {
	cases := []struct {
		name       string
		raw        string
		formatOK   bool
		checksumOK bool
	}{
		{"valid DE", "DE89 3704 0044 0532 0130 00", true, true},
		{"bad checksum DE", "DE89 3704 0044 0532 0130 01", true, false},
		{"unknown country", "ZZ89370400440532013000", false, false},
		{"wrong length", "DE8937040044", false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ValidateIBAN(c.raw)
			if got.FormatOK != c.formatOK || got.ChecksumOK != c.checksumOK {
				t.Errorf("ValidateIBAN(%q) = %+v, want format=%v checksum=%v", c.raw, got, c.formatOK, c.checksumOK)
			}
		})
	}
}

func TestValidateTaxID(t *testing.T) {
	cases := []struct {
		name       string
		digits     string
		structural bool
		checksumOK bool
	}{
		{"valid check digit 3", "12345678903", true, true},
		{"wrong check digit", "12345678901", true, false},
		{"wrong length", "1234567890", false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ValidateTaxID(c.digits)
			if got.StructurallyValid != c.structural || got.ChecksumOK != c.checksumOK {
				t.Errorf("ValidateTaxID(%q) = %+v, want structural=%v checksum=%v", c.digits, got, c.structural, c.checksumOK)
			}
		})
	}
}

func TestValidateKVNR(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"A123456780", true},
		{"A123456789", false},
	}
	for _, c := range cases {
		if got := ValidateKVNR(c.raw); got != c.want {
			t.Errorf("ValidateKVNR(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}
