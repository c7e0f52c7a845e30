package detectors

import (
	"testing"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

func assertSingleFinding(t *testing.T, findings []pii.Finding, wantText string, wantConfidence float64) {
	t.Helper()
	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].Text != wantText {
		t.Errorf("text = %q, want %q", findings[0].Text, wantText)
	}
	if findings[0].Confidence != wantConfidence {
		t.Errorf("confidence = %v, want %v", findings[0].Confidence, wantConfidence)
	}
}

func TestEmailDetector(t *testing.T) {
	d := NewEmailDetector()
	findings := d.Detect("Kontakt: max.mustermann@example.de bitte")
	assertSingleFinding(t, findings, "max.mustermann@example.de", 1.0)
}

func TestIBANDetectorValid(t *testing.T) {
	d := NewIBANDetector()
	findings := d.Detect("IBAN DE89370400440532013000")
	assertSingleFinding(t, findings, "DE89370400440532013000", 1.0)
}

func TestIBANDetectorBadChecksum(t *testing.T) {
	d := NewIBANDetector()
	findings := d.Detect("IBAN DE89370400440532013001")
	assertSingleFinding(t, findings, "DE89370400440532013001", 0.6)
}

func TestCreditCardValidFormatted(t *testing.T) {
	d := NewCreditCardDetector()
	findings := d.Detect("Karte: 4111 1111 1111 1111 danke")
	assertSingleFinding(t, findings, "4111 1111 1111 1111", 1.0)
}

func TestCreditCardRawLuhnFailDropped(t *testing.T) {
	d := NewCreditCardDetector()
	findings := d.Detect("Nummer 1234567890123456 ungueltig")
	if len(findings) != 0 {
		t.Fatalf("expected no findings for a raw Luhn-failing run, got %+v", findings)
	}
}

func TestURLSecretPreservesKey(t *testing.T) {
	d := NewURLSecretDetector()
	findings := d.Detect("?token=abc123def456")
	assertSingleFinding(t, findings, "abc123def456", 0.85)
}

func TestDriverLicenseRequiresContext(t *testing.T) {
	d := NewDriverLicenseDetector()

	withContext := d.Detect("Führerschein: B951204XY")
	if len(withContext) != 1 {
		t.Fatalf("expected 1 finding with context keyword present, got %d", len(withContext))
	}

	withoutContext := d.Detect("Referenz: B951204XY")
	if len(withoutContext) != 0 {
		t.Fatalf("expected 0 findings without context keyword, got %d", len(withoutContext))
	}
}

func TestAddressDetector(t *testing.T) {
	d, err := NewAddressDetector()
	if err != nil {
		t.Fatalf("NewAddressDetector: %v", err)
	}
	findings := d.Detect("Ich wohne in der Hauptstraße 12, 10115 Berlin.")
	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 address finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", findings[0].Confidence)
	}
}

func TestTaxIDDetector(t *testing.T) {
	d := NewTaxIDDetector()

	valid := d.Detect("Steuer-ID: 12 345 678 903")
	assertSingleFinding(t, valid, "12 345 678 903", 1.0)

	invalid := d.Detect("Steuer-ID: 12 345 678 901")
	assertSingleFinding(t, invalid, "12 345 678 901", 0.6)
}

func TestLicensePlateHyphenPreferredOverSpace(t *testing.T) {
	d := NewLicensePlateDetector()
	findings := d.Detect("Kennzeichen B-AB 1234 geparkt.")
	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].Confidence != 0.75 {
		t.Errorf("confidence = %v, want 0.75 (hyphen form)", findings[0].Confidence)
	}
}
