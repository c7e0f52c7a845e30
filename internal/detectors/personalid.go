package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

var personalIDPattern = regexp.MustCompile(`\b[A-Z][A-Z0-9]{8}\b`)

// NewPersonalIDDetector recognises German personal-ID / passport
// document numbers. There is no public checksum for this format, so
// every match is reported at a fixed, moderate confidence.
func NewPersonalIDDetector() Detector {
	return &regexDetector{
		piiType:  pii.PersonalID,
		pattern:  personalIDPattern,
		classify: fixedConfidence(0.75),
	}
}
