package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

// phonePattern covers DACH phone numbers in international form (+49/+43/+41
// or 0049/0043/0041, optionally followed by a German-style "(0)" trunk
// prefix) and national form (leading 0, not immediately followed by
// another 0). Go's RE2 engine has no look-around, so the "not preceded by
// a digit or +" / "not followed by a digit" / "second digit isn't 0"
// conditions that the source expresses as lookaround are re-checked in
// Detect against the runes immediately surrounding each raw match.
var phonePattern = regexp.MustCompile(
	`(?:\+|00)(?:49|43|41)[\s()\-]*(?:\(0\)[\s()\-]*)?\d[\d\s()\-]{5,16}\d` +
		`|` +
		`0\d[\d\s\-/]{5,13}\d`,
)

const phoneMinDigits = 9

type phoneDetector struct{}

// NewPhoneDetector recognises DACH phone numbers. Matches with fewer
// than 9 digits (after trimming trailing whitespace) are dropped. No
// checksum applies; accepted matches are reported at confidence 1.0.
func NewPhoneDetector() Detector {
	return &phoneDetector{}
}

func (phoneDetector) Type() pii.PiiType {
	return pii.Phone
}

func (phoneDetector) Detect(text string) []pii.Finding {
	var findings []pii.Finding
	for _, loc := range phonePattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]

		if start > 0 {
			prev := text[start-1]
			if prev == '+' || (prev >= '0' && prev <= '9') {
				continue
			}
		}
		if end < len(text) {
			next := text[end]
			if next >= '0' && next <= '9' {
				continue
			}
		}

		raw := text[start:end]
		for len(raw) > 0 && isTrailingSpace(raw[len(raw)-1]) {
			raw = raw[:len(raw)-1]
			end--
		}
		if isNationalForm(raw) && len(raw) > 1 && raw[1] == '0' {
			continue
		}
		if digitCount(raw) < phoneMinDigits {
			continue
		}

		findings = append(findings, pii.Finding{
			Type:       pii.Phone,
			Start:      start,
			End:        end,
			Text:       raw,
			Confidence: 1.0,
		})
	}
	return findings
}

func isTrailingSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isNationalForm(raw string) bool {
	return len(raw) > 0 && raw[0] == '0'
}

func digitCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
