// Package detectors implements the per-type PII recognisers: one
// Detector per pii.PiiType, each a pure function of the input text (no
// detector reads or writes shared state), so the scanner facade can run
// them concurrently. Detectors never communicate with each other —
// overlap between their findings is resolved afterwards by the overlap
// package.
package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

// Detector recognises one category of PII in text.
type Detector interface {
	Type() pii.PiiType
	Detect(text string) []pii.Finding
}

// regexDetector is the shared implementation behind most detectors: run
// a compiled pattern over the text, optionally extract one capture
// group as the matched text, and hand each candidate to classify for
// acceptance/rejection and a confidence score. It mirrors the teacher
// repo's RegexScanner but produces variable per-match confidence instead
// of one fixed score, since several of this engine's types (IBAN, tax
// ID, credit card) report different confidence for a format-only match
// versus a checksum-validated one.
type regexDetector struct {
	piiType      pii.PiiType
	pattern      *regexp.Regexp
	extractGroup int
	classify     func(matched string) (confidence float64, ok bool)
}

func (d *regexDetector) Type() pii.PiiType {
	return d.piiType
}

func (d *regexDetector) Detect(text string) []pii.Finding {
	matches := d.pattern.FindAllStringSubmatchIndex(text, -1)
	findings := make([]pii.Finding, 0, len(matches))
	for _, loc := range matches {
		start, end := loc[0], loc[1]
		if d.extractGroup > 0 {
			g := d.extractGroup
			if g*2+1 >= len(loc) || loc[g*2] < 0 {
				continue
			}
			start, end = loc[g*2], loc[g*2+1]
		}
		matched := text[start:end]
		confidence, ok := 1.0, true
		if d.classify != nil {
			confidence, ok = d.classify(matched)
		}
		if !ok {
			continue
		}
		findings = append(findings, pii.Finding{
			Type:       d.piiType,
			Start:      start,
			End:        end,
			Text:       matched,
			Confidence: confidence,
		})
	}
	return findings
}

// fixedConfidence builds a classify func that accepts every match at a
// single confidence score, for detectors with no checksum to grade on.
func fixedConfidence(score float64) func(string) (float64, bool) {
	return func(string) (float64, bool) {
		return score, true
	}
}
