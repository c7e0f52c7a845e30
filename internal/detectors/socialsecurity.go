package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

var socialSecurityPattern = regexp.MustCompile(`\b\d{2}[ ]?\d{6}[ ]?[A-Z][ ]?\d{3}\b`)

// NewSocialSecurityDetector recognises the German RVNR/SV-Nummer. There
// is no checksum to validate against; every shape match is reported at
// a fixed confidence.
func NewSocialSecurityDetector() Detector {
	return &regexDetector{
		piiType:  pii.SocialSecurity,
		pattern:  socialSecurityPattern,
		classify: fixedConfidence(0.9),
	}
}
