package detectors

import (
	"regexp"
	"strings"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/validators"
)

// creditCardPattern tries, in order, the 16-digit 4-4-4-4 form, the
// 15-digit AmEx 4-6-5 form, the 14-digit Diners 4-6-4 form, and finally
// a raw run of 13-19 digits. Digit-boundary checks (no digit immediately
// before or after the match) are done in Detect since RE2 has no
// look-around.
var creditCardPattern = regexp.MustCompile(
	`\d{4}[ -]\d{4}[ -]\d{4}[ -]\d{4}` +
		`|\d{4}[ -]\d{6}[ -]\d{5}` +
		`|\d{4}[ -]\d{6}[ -]\d{4}` +
		`|\d{13,19}`,
)

type creditCardDetector struct{}

// NewCreditCardDetector recognises credit-card numbers. A formatted
// match (spaces or hyphens present) is reported even when its Luhn
// check fails, at reduced confidence, for reviewer visibility; a raw
// digit run is dropped entirely unless it passes Luhn, since unvalidated
// 13-19-digit runs produce too many false positives otherwise.
func NewCreditCardDetector() Detector {
	return &creditCardDetector{}
}

func (creditCardDetector) Type() pii.PiiType {
	return pii.CreditCard
}

func (creditCardDetector) Detect(text string) []pii.Finding {
	var findings []pii.Finding
	for _, loc := range creditCardPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isDigitByte(text[start-1]) {
			continue
		}
		if end < len(text) && isDigitByte(text[end]) {
			continue
		}

		raw := text[start:end]
		isFormatted := strings.ContainsAny(raw, " -")
		digits := strings.NewReplacer(" ", "", "-", "").Replace(raw)
		luhnOK := validators.Luhn(digits)

		var confidence float64
		if isFormatted {
			if luhnOK {
				confidence = 1.0
			} else {
				confidence = 0.6
			}
		} else {
			if !luhnOK {
				continue
			}
			confidence = 0.9
		}

		findings = append(findings, pii.Finding{
			Type:       pii.CreditCard,
			Start:      start,
			End:        end,
			Text:       raw,
			Confidence: confidence,
		})
	}
	return findings
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
