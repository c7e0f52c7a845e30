package detectors

import (
	"regexp"
	"strings"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

var (
	driverLicensePattern = regexp.MustCompile(`\b[A-Z]{1,3}[0-9]{6}[A-Z0-9]{2}\b`)
	driverLicenseContext = regexp.MustCompile(`führerschein|fuhrerschein|fahrerlaubnis|fs[-\s]?nr|driver\s+licen[sc]e|driving\s+licen[sc]e`)
)

const driverLicenseWindow = 200

type driverLicenseDetector struct{}

// NewDriverLicenseDetector recognises German driver-licence numbers.
// The format alone is too weak a signal (it collides with ordinary
// alphanumeric codes), so a match is only kept when one of the context
// keywords appears within 200 characters either side of it, checked
// against a lower-cased copy of the text.
func NewDriverLicenseDetector() Detector {
	return &driverLicenseDetector{}
}

func (driverLicenseDetector) Type() pii.PiiType {
	return pii.DriverLicense
}

func (driverLicenseDetector) Detect(text string) []pii.Finding {
	matches := driverLicensePattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	lower := strings.ToLower(text)

	var findings []pii.Finding
	for _, loc := range matches {
		start, end := loc[0], loc[1]
		windowStart := start - driverLicenseWindow
		if windowStart < 0 {
			windowStart = 0
		}
		windowEnd := end + driverLicenseWindow
		if windowEnd > len(lower) {
			windowEnd = len(lower)
		}
		if !driverLicenseContext.MatchString(lower[windowStart:windowEnd]) {
			continue
		}

		findings = append(findings, pii.Finding{
			Type:       pii.DriverLicense,
			Start:      start,
			End:        end,
			Text:       text[start:end],
			Confidence: 0.75,
		})
	}
	return findings
}
