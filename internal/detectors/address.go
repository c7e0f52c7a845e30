package detectors

import (
	"regexp"
	"strings"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/ruledata"
)

const (
	streetNamePattern  = `[A-ZÄÖÜ][a-zäöüß]+(?:[-][A-ZÄÖÜ]?[a-zäöüß]+)*`
	houseNumberPattern = `\d+\s*[a-zA-Z]?(?:\s*/\s*\d+)?`
	cityNamePattern    = `[A-ZÄÖÜ][a-zäöüß]+(?:(?:\s+|-)[A-ZÄÖÜ]?[a-zäöüß]+)*`
	// plzPattern accepts a 5-digit German postal code or a 4-digit
	// Austrian/Swiss one; both are plain digit runs of fixed length, so
	// trying the longer alternative first is not required.
	plzPattern = `(?:\d{5}|\d{4})`
)

var plzPrefilter = regexp.MustCompile(`\b\d{4,5}\b`)

type addressDetector struct {
	pattern *regexp.Regexp
}

// NewAddressDetector recognises DACH street addresses: an optional
// preposition or required-preposition-plus-bare-noun street reference,
// a house number, an optional comma, a postal code, and a city. The
// street-suffix and street-preposition alternations are built from the
// embedded ruledata word lists at construction time (both already
// longest-first, so "An der" is tried before "Am" and "hauptstraße"
// isn't shadowed by a shorter contained suffix). Construction fails if
// either word list cannot be loaded.
func NewAddressDetector() (Detector, error) {
	suffixes, err := ruledata.StreetSuffixes()
	if err != nil {
		return nil, &pii.ConfigurationError{Op: "load street suffixes", Err: err}
	}
	prepositions, err := ruledata.StreetPrepositions()
	if err != nil {
		return nil, &pii.ConfigurationError{Op: "load street prepositions", Err: err}
	}

	suffixRe := alternation(suffixes, false)
	prepRe := alternation(prepositions, true) + `\s+`

	source := `(?i)(?:` +
		// Variant A: optional preposition + street name + suffix.
		`(?:` + prepRe + `)?(` + streetNamePattern + `)[-\s]*(` + suffixRe + `)\.?` +
		`|` +
		// Variant B: required preposition + bare noun, e.g. "Beim Brunnen".
		`(?:` + prepRe + `)(` + streetNamePattern + `)` +
		`)` +
		`\s+(` + houseNumberPattern + `)` +
		`,?\s+` +
		`(` + plzPattern + `)\s+(` + cityNamePattern + `)`

	pattern, err := regexp.Compile(source)
	if err != nil {
		return nil, &pii.ConfigurationError{Op: "compile address pattern", Err: err}
	}

	return &addressDetector{pattern: pattern}, nil
}

func (addressDetector) Type() pii.PiiType {
	return pii.Address
}

func (d *addressDetector) Detect(text string) []pii.Finding {
	if !plzPrefilter.MatchString(text) {
		return nil
	}

	var findings []pii.Finding
	for _, loc := range d.pattern.FindAllStringIndex(text, -1) {
		findings = append(findings, pii.Finding{
			Type:       pii.Address,
			Start:      loc[0],
			End:        loc[1],
			Text:       text[loc[0]:loc[1]],
			Confidence: 0.9,
		})
	}
	return findings
}

// alternation builds a "|"-joined, regexp.QuoteMeta-escaped alternation
// from entries already sorted longest-first. When collapseSpaces is
// true, escaped internal spaces are widened back to "\s+" so a
// preposition written with a single space in the data file (e.g. "An
// der") still matches runs of whitespace in the input.
func alternation(entries []string, collapseSpaces bool) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		escaped := regexp.QuoteMeta(e)
		if collapseSpaces {
			escaped = strings.ReplaceAll(escaped, `\ `, `\s+`)
		}
		parts[i] = escaped
	}
	return strings.Join(parts, "|")
}
