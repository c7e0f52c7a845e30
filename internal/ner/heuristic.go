package ner

import (
	"regexp"
	"strings"
)

// nameComponent matches one capitalised word, including the diacritics
// common in DACH names (Müller, Özdemir-style compounds get matched
// component by component and hyphen-joined by namePattern below).
const nameComponent = `[A-ZÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖØÙÚÛÜÝÞ][a-zàáâãäåæçèéêëìíîïðñòóôõöøùúûüýþß]+`

// namePattern additionally allows a single hyphenated component, e.g.
// "Müller-Schmidt" or "Jean-Pierre".
const namePattern = nameComponent + `(?:-` + nameComponent + `)?`

// nameParticle covers the lower-case connectors found in multi-part
// surnames across the languages this tagger is tuned for.
const nameParticle = `(?:de|van|der|von|di|del|della|le|la|da|dos|das|du|ten|ter|het)`

// fullName is two to four name components, with optional particles
// between them.
const fullName = namePattern + `(?:[ \t]+(?:` + nameParticle + `[ \t]+)*` + namePattern + `){1,3}`

// triggers are the keywords that, immediately followed by a capitalised
// name, mark a PERSON mention with high confidence. German/DACH forms
// lead since this tagger exists for German-language text, with a few
// neighbouring-language forms retained for mixed-language documents.
var triggers = []string{
	`Dr\.\s?med\.`,
	`mein(?:e)?\s+(?:Freund(?:in)?|Kolleg(?:e|in))`,
	`meinen?\s+Patient(?:en|in)?`,
	`Antragsteller(?:in)?`, `Sachbearbeiter(?:in)?`, `Bearbeiter(?:in)?`,
	`Konsiliarius`,
	`Prof\.?`, `Dr\.?`, `Dipl\.?-?Ing\.?`, `Mag\.?`, `Ing\.?`,
	`Herr`, `Frau`, `Patient(?:in)?`, `Kollege`, `Kollegin`,
	`Mr\.?`, `Mrs\.?`, `Ms\.?`,
}

var (
	triggerGroup    = `(?:` + strings.Join(triggers, `|`) + `)`
	contextPattern  = regexp.MustCompile(`(?i:` + triggerGroup + `)[: \t]+(` + fullName + `)`)
	verbPattern     = regexp.MustCompile(`(?i:told|asked|called|emailed|contacted|met|visited|informed|fragte|rief an|bat)[ \t]+(` + fullName + `)`)
	maidenNamePattr = regexp.MustCompile(`(?i:geb(?:oren(?:e)?)?\.)[ \t]+(` + namePattern + `)`)
)

// HeuristicTagger is the default Tagger: it finds "PER"-labelled spans using the
// same trigger-word-plus-capitalised-name heuristic the rest of the
// engine's regex detectors use, rather than a statistical model. Title
// expansion (stripping the trigger back off the matched span so "Dr."
// isn't part of the name) is intentionally NOT done here — that belongs
// to the NAME detector, which owns the decision of how much of a
// surrounding title to fold into the final Finding.
type HeuristicTagger struct{}

// NewHeuristicTagger returns the default Tagger implementation.
func NewHeuristicTagger() *HeuristicTagger {
	return &HeuristicTagger{}
}

// Tag implements Tagger.
func (HeuristicTagger) Tag(text string) []Span {
	var spans []Span
	for _, re := range []*regexp.Regexp{contextPattern, verbPattern, maidenNamePattr} {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2], loc[3]
			spans = append(spans, Span{
				Label:     "PER",
				StartChar: byteToCharOffset(text, start),
				EndChar:   byteToCharOffset(text, end),
				Text:      text[start:end],
			})
		}
	}
	return spans
}

// byteToCharOffset converts a byte offset into text to the equivalent
// rune offset, since FindAllStringSubmatchIndex reports byte offsets but
// the Tagger contract promises character offsets.
func byteToCharOffset(text string, byteOffset int) int {
	chars := 0
	for i := range text {
		if i >= byteOffset {
			return chars
		}
		chars++
	}
	return chars
}
