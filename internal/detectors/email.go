package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

// NewEmailDetector recognises email addresses. No checksum applies, so
// every match is reported at confidence 1.0.
func NewEmailDetector() Detector {
	return &regexDetector{
		piiType:  pii.Email,
		pattern:  emailPattern,
		classify: fixedConfidence(1.0),
	}
}
