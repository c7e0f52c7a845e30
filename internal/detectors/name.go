package detectors

import (
	"regexp"

	"github.com/adrian-lorenz/pii-guard/internal/ner"
	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/whitelist"
)

// titlePattern matches one or more whitespace-separated titles anchored
// to the end of the text immediately preceding a NER "PER" span, so it
// can be searched against text[:entityStart] to find how far back the
// finding should be widened.
var titlePattern = regexp.MustCompile(
	`(?i)(?:(?:Herr|Frau|Dr\.?|Prof\.?|Mag\.?|DI|Ing\.?|Dipl\.?-?Ing\.?|ao\.?\s*Univ\.?-?Prof\.?|Univ\.?-?Prof\.?|Priv\.?-?Doz\.?|MSc|MBA|BSc|LL\.M)\.?\s+)+$`,
)

type nameDetector struct {
	tagger ner.Tagger
	list   *whitelist.List
}

// NewNameDetector recognises person names via the external NER
// collaborator. Each "PER" span is widened to include any
// immediately-preceding title ("Herr", "Dr.", "Prof." and so on,
// possibly repeated), then checked against the whitelist; a span that
// matches a known public figure is dropped rather than reported.
func NewNameDetector(tagger ner.Tagger, list *whitelist.List) Detector {
	return &nameDetector{tagger: tagger, list: list}
}

func (nameDetector) Type() pii.PiiType {
	return pii.Name
}

func (d *nameDetector) Detect(text string) []pii.Finding {
	spans := d.tagger.Tag(text)
	if len(spans) == 0 {
		return nil
	}

	var findings []pii.Finding
	for _, span := range spans {
		if span.Label != "PER" {
			continue
		}
		start, end := ner.SpanToByteOffsets(text, span)
		if start < 0 || end > len(text) || start >= end {
			continue
		}

		hasTitle := false
		if loc := titlePattern.FindStringIndex(text[:start]); loc != nil {
			start = loc[0]
			hasTitle = true
		}

		candidate := text[start:end]
		if d.list != nil && d.list.IsWhitelisted(candidate) {
			continue
		}

		confidence := 0.85
		if hasTitle {
			confidence = 0.95
		}

		findings = append(findings, pii.Finding{
			Type:       pii.Name,
			Start:      start,
			End:        end,
			Text:       candidate,
			Confidence: confidence,
		})
	}
	return findings
}
