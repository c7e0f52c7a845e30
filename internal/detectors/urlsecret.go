package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

// urlSecretPattern matches "key=value" pairs whose key names a
// sensitive credential. RE2 has no negative look-behind, so the
// "not preceded by a word character" condition the source expresses as
// `(?<!\w)` is re-checked in Detect against the rune immediately before
// the match.
var urlSecretPattern = regexp.MustCompile(
	`(?i)(?:token|api[_-]?key|apikey|api[_-]?token|access[_-]?token|auth[_-]?token|auth|secret|password|passwd|pwd|client[_-]?secret|private[_-]?key)=([^&\s"'<>\[\]{}]{6,})`,
)

type urlSecretDetector struct{}

// NewURLSecretDetector recognises "key=value" style credentials
// embedded in URLs or config-like text. Only the value (capture group
// 1) is reported as a Finding — the key name stays visible in the
// anonymised text so reviewers can see what kind of secret it was.
func NewURLSecretDetector() Detector {
	return &urlSecretDetector{}
}

func (urlSecretDetector) Type() pii.PiiType {
	return pii.URLSecret
}

func (urlSecretDetector) Detect(text string) []pii.Finding {
	var findings []pii.Finding
	for _, loc := range urlSecretPattern.FindAllStringSubmatchIndex(text, -1) {
		matchStart := loc[0]
		if matchStart > 0 && isWordByte(text[matchStart-1]) {
			continue
		}
		valStart, valEnd := loc[2], loc[3]
		if valStart < 0 {
			continue
		}
		findings = append(findings, pii.Finding{
			Type:       pii.URLSecret,
			Start:      valStart,
			End:        valEnd,
			Text:       text[valStart:valEnd],
			Confidence: 0.85,
		})
	}
	return findings
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
