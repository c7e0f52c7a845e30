package detectors

import (
	"regexp"
	"strings"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

var vatIDPattern = regexp.MustCompile(`\bDE[ ]?\d{3}[ ]?\d{3}[ ]?\d{3}\b`)

// NewVatIDDetector recognises the German VAT identifier (USt-IdNr).
// There is no public checksum; the only structural check beyond the
// pattern itself is that exactly 9 digits remain after the "DE" prefix
// and any spaces are stripped.
func NewVatIDDetector() Detector {
	return &regexDetector{
		piiType: pii.VatID,
		pattern: vatIDPattern,
		classify: func(matched string) (float64, bool) {
			digits := strings.ReplaceAll(matched[2:], " ", "")
			if len(digits) != 9 {
				return 0, false
			}
			return 0.85, true
		},
	}
}
