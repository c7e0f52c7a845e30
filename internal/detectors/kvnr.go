package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/validators"
)

var kvnrPattern = regexp.MustCompile(`\b[A-Z][0-9]{9}\b`)

// NewKVNRDetector recognises German health-insurance numbers
// (Krankenversichertennummer). A modified-Luhn check grades confidence:
// 0.95 when it passes, 0.6 when only the shape matches.
func NewKVNRDetector() Detector {
	return &regexDetector{
		piiType: pii.KVNR,
		pattern: kvnrPattern,
		classify: func(matched string) (float64, bool) {
			if validators.ValidateKVNR(matched) {
				return 0.95, true
			}
			return 0.6, true
		},
	}
}
