package detectors

import (
	"regexp"
	"strings"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/validators"
)

var taxIDPattern = regexp.MustCompile(`\b[1-9]\d(?:[ ]?\d{3}){3}\b`)

// NewTaxIDDetector recognises the German tax identification number
// (Steuer-ID, §139b AO). Candidates that are structurally invalid for
// the mod-11-10 algorithm are skipped entirely; otherwise confidence is
// 1.0 when the check digit matches and 0.6 when only the shape matches.
func NewTaxIDDetector() Detector {
	return &regexDetector{
		piiType: pii.TaxID,
		pattern: taxIDPattern,
		classify: func(matched string) (float64, bool) {
			digits := strings.ReplaceAll(matched, " ", "")
			result := validators.ValidateTaxID(digits)
			if !result.StructurallyValid {
				return 0, false
			}
			if result.ChecksumOK {
				return 1.0, true
			}
			return 0.6, true
		},
	}
}
