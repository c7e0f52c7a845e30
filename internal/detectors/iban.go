package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/validators"
)

var ibanPattern = regexp.MustCompile(`\b[A-Z]{2}\d{2}(?:[ ]?[A-Z0-9]){11,31}\b`)

type ibanDetector struct{}

// NewIBANDetector recognises IBANs. A country code missing from
// validators.IBANLengths, or a length mismatch for its country, is
// rejected outright; a format-valid IBAN whose mod-97 checksum fails is
// still reported, at reduced confidence, since a human reviewer may
// still want to see it.
func NewIBANDetector() Detector {
	return &ibanDetector{}
}

func (ibanDetector) Type() pii.PiiType {
	return pii.IBAN
}

func (ibanDetector) Detect(text string) []pii.Finding {
	var findings []pii.Finding
	for _, loc := range ibanPattern.FindAllStringIndex(text, -1) {
		matched := text[loc[0]:loc[1]]
		result := validators.ValidateIBAN(matched)
		if !result.FormatOK {
			continue
		}
		confidence := 0.6
		if result.ChecksumOK {
			confidence = 1.0
		}
		findings = append(findings, pii.Finding{
			Type:       pii.IBAN,
			Start:      loc[0],
			End:        loc[1],
			Text:       matched,
			Confidence: confidence,
		})
	}
	return findings
}
