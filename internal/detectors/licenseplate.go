package detectors

import (
	"regexp"
	"strings"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

var (
	licensePlateHyphenPattern = regexp.MustCompile(`\b([A-ZÄÖÜ]{1,3})-([A-Z]{1,2})[ ]?([1-9][0-9]{0,3}[EH]?)\b`)
	licensePlateSpacePattern  = regexp.MustCompile(`\b([A-ZÄÖÜ]{1,3}) ([A-Z]{1,2}) ([1-9][0-9]{0,3}[EH]?)\b`)
)

type licensePlateDetector struct{}

// NewLicensePlateDetector recognises German vehicle registration plates
// (Kfz-Kennzeichen): a 1-3 letter district code, 1-2 recognition
// letters, and a 1-4 digit number with an optional trailing E
// (Elektro) or H (Historisch). The hyphenated official form is tried
// first at confidence 0.75; the space-separated form is tried second at
// confidence 0.65 and dropped wherever it exactly overlaps a span
// already found by the hyphen pattern, so a plate isn't reported twice.
func NewLicensePlateDetector() Detector {
	return &licensePlateDetector{}
}

func (licensePlateDetector) Type() pii.PiiType {
	return pii.LicensePlate
}

func (licensePlateDetector) Detect(text string) []pii.Finding {
	var findings []pii.Finding

	for _, loc := range licensePlateHyphenPattern.FindAllStringSubmatchIndex(text, -1) {
		district := text[loc[2]:loc[3]]
		letters := text[loc[4]:loc[5]]
		digits := text[loc[6]:loc[7]]
		if !validPlate(district, letters, digits) {
			continue
		}
		findings = append(findings, pii.Finding{
			Type:       pii.LicensePlate,
			Start:      loc[0],
			End:        loc[1],
			Text:       text[loc[0]:loc[1]],
			Confidence: 0.75,
		})
	}

	for _, loc := range licensePlateSpacePattern.FindAllStringSubmatchIndex(text, -1) {
		district := text[loc[2]:loc[3]]
		letters := text[loc[4]:loc[5]]
		digits := text[loc[6]:loc[7]]
		if !validPlate(district, letters, digits) {
			continue
		}
		start, end := loc[0], loc[1]
		if overlapsExisting(findings, start, end) {
			continue
		}
		findings = append(findings, pii.Finding{
			Type:       pii.LicensePlate,
			Start:      start,
			End:        end,
			Text:       text[start:end],
			Confidence: 0.65,
		})
	}

	return findings
}

// validPlate applies the structural guard: the district, recognition
// letters, and digits (with a trailing E/H suffix stripped) must total
// between 4 and 8 characters.
func validPlate(district, letters, digits string) bool {
	base := strings.TrimRight(digits, "EH")
	total := len(district) + len(letters) + len(base)
	return total >= 4 && total <= 8
}

func overlapsExisting(findings []pii.Finding, start, end int) bool {
	for _, f := range findings {
		if f.Start == start && f.End == end {
			return true
		}
	}
	return false
}
