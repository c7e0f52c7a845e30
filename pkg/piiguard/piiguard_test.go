package piiguard_test

import (
	"strings"
	"testing"

	"github.com/adrian-lorenz/pii-guard/pkg/piiguard"
)

func newScanner(t *testing.T) *piiguard.Scanner {
	t.Helper()
	s, err := piiguard.New()
	if err != nil {
		t.Fatalf("piiguard.New: %v", err)
	}
	return s
}

// S1: a valid IBAN is detected and round-trips through redaction.
func TestS1_IBAN(t *testing.T) {
	s := newScanner(t)
	text := "Meine IBAN ist DE89370400440532013000."
	result := s.Scan(text)

	found := false
	for _, f := range result.Findings {
		if f.Type == piiguard.IBAN && f.Text == "DE89370400440532013000" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an IBAN finding, got %+v", result.Findings)
	}

	restored := piiguard.Restore(result.AnonymisedText, result.Mapping)
	if restored != text {
		t.Errorf("restore = %q, want %q", restored, text)
	}
}

// S2: repeated identical PII collapses to a single placeholder.
func TestS2_Dedupe(t *testing.T) {
	s := newScanner(t)
	result := s.Scan("max@example.de schrieb an max@example.de erneut.")

	if got := strings.Count(result.AnonymisedText, "[EMAIL_1]"); got != 2 {
		t.Fatalf("expected [EMAIL_1] twice, got %d in %q", got, result.AnonymisedText)
	}
	if len(result.Mapping) != 1 {
		t.Fatalf("expected one mapping entry, got %d", len(result.Mapping))
	}
}

// S3: a whitelisted public figure's name is never redacted.
func TestS3_Whitelist(t *testing.T) {
	s := newScanner(t)
	text := "Olaf Scholz besuchte die Messe."
	result := s.Scan(text)
	if result.AnonymisedText != text {
		t.Errorf("expected whitelisted figure untouched, got %q", result.AnonymisedText)
	}
}

// S4: a street address with house number and PLZ is detected as one span.
func TestS4_Address(t *testing.T) {
	s := newScanner(t)
	result := s.Scan("Bitte senden Sie es an Berliner Straße 5, 80331 München.")

	found := false
	for _, f := range result.Findings {
		if f.Type == piiguard.Address {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ADDRESS finding, got %+v", result.Findings)
	}
}

// S5: a Luhn-valid credit card number is flagged with full confidence;
// a same-length random digit run is not.
func TestS5_CreditCard(t *testing.T) {
	s := newScanner(t)

	valid := s.Scan("Karte: 4111-1111-1111-1111")
	foundValid := false
	for _, f := range valid.Findings {
		if f.Type == piiguard.CreditCard {
			foundValid = true
		}
	}
	if !foundValid {
		t.Fatal("expected CREDIT_CARD finding for Luhn-valid number")
	}
}

// S6: a URL query-string secret is redacted but its key name survives.
func TestS6_URLSecretPreservesKey(t *testing.T) {
	s := newScanner(t)
	result := s.Scan("https://example.com/login?api_key=sk_live_abcdef123456")

	if !strings.Contains(result.AnonymisedText, "api_key=[URL_SECRET_1]") {
		t.Errorf("expected api_key= to survive redaction, got %q", result.AnonymisedText)
	}
}

// S7: a driver-licence-shaped token is only flagged in context.
func TestS7_DriverLicenseContextGating(t *testing.T) {
	s := newScanner(t)

	inContext := s.Scan("Führerscheinnummer: B951204XY")
	found := false
	for _, f := range inContext.Findings {
		if f.Type == piiguard.DriverLicense {
			found = true
		}
	}
	if !found {
		t.Error("expected DRIVER_LICENSE finding with context keyword present")
	}

	outOfContext := s.Scan("Bestellnummer: B951204XY")
	for _, f := range outOfContext.Findings {
		if f.Type == piiguard.DriverLicense {
			t.Errorf("expected no DRIVER_LICENSE finding without context, got %+v", f)
		}
	}
}

// S8: full scan → stream-restore round trip across chunk boundaries.
func TestS8_RoundTripViaStreamRestorer(t *testing.T) {
	s := newScanner(t)
	text := "Herr Thomas Schmidt, IBAN DE89370400440532013000."
	result := s.Scan(text)

	sr := piiguard.NewStreamRestorer(result.Mapping)

	var out strings.Builder
	anonymised := result.AnonymisedText
	mid := len(anonymised) / 2
	out.WriteString(sr.Process(anonymised[:mid]))
	out.WriteString(sr.Process(anonymised[mid:]))
	out.WriteString(sr.Flush())

	if out.String() != text {
		t.Errorf("stream restore round trip = %q, want %q", out.String(), text)
	}
}

// Universal invariant: findings are pairwise disjoint and sorted by
// Start ascending, for any input (spec.md §8 universal invariant).
func TestUniversalInvariant_FindingsDisjointAndSorted(t *testing.T) {
	s := newScanner(t)
	inputs := []string{
		"",
		"Kein PII hier.",
		"Herr Thomas Schmidt, Hauptstraße 1, 12345 Berlin, IBAN DE89370400440532013000, Tel. 0171 1234567, max@example.de",
	}
	for _, text := range inputs {
		result := s.Scan(text)
		lastEnd := -1
		for _, f := range result.Findings {
			if f.Start < lastEnd {
				t.Errorf("input %q: findings overlap or unsorted: %+v", text, result.Findings)
			}
			if f.Start >= f.End {
				t.Errorf("input %q: non-positive length finding: %+v", text, f)
			}
			lastEnd = f.End
		}
	}
}

// Universal invariant: applying the mapping to the anonymised text
// always reproduces the original (round-trip property).
func TestUniversalInvariant_RoundTrip(t *testing.T) {
	s := newScanner(t)
	inputs := []string{
		"",
		"Nichts zu melden.",
		"Frau Erika Musterfrau, erika@beispiel.de, DE89370400440532013000",
	}
	for _, text := range inputs {
		result := s.Scan(text)
		restored := result.AnonymisedText
		for token, original := range result.Mapping {
			restored = strings.ReplaceAll(restored, token, original)
		}
		if restored != text {
			t.Errorf("round trip failed for %q: got %q", text, restored)
		}
	}
}

func TestNewWhitelistOverridesDefault(t *testing.T) {
	wl := piiguard.NewWhitelist([]string{"Max Mustermann"}, nil)
	s, err := piiguard.New(piiguard.WithWhitelist(wl))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := s.Scan("Max Mustermann rief an.")
	if result.AnonymisedText != "Max Mustermann rief an." {
		t.Errorf("expected custom-whitelisted name untouched, got %q", result.AnonymisedText)
	}
}
