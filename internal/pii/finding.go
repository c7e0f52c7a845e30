package pii

// Finding is an immutable record produced by a detector (and later
// enriched with a placeholder by the redactor stage).
//
// Invariants: Start < End; text[Start:End] == Text for the string the
// detector ran against; Confidence is in [0, 1].
type Finding struct {
	Type        PiiType `json:"type"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Text        string  `json:"text"`
	Confidence  float64 `json:"confidence"`
	Placeholder string  `json:"placeholder,omitempty"`
	RuleID      string  `json:"rule_id,omitempty"`
}

// Len returns the byte length of the matched span.
func (f Finding) Len() int {
	return f.End - f.Start
}
