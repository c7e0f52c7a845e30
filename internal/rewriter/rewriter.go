// Package rewriter performs the final pipeline stage: substituting each
// already-placeholdered Finding's span with its placeholder text,
// producing the anonymised output string.
package rewriter

import (
	"sort"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

// Rewrite replaces each finding's [Start:End) span in text with its
// Placeholder. Findings are processed start-descending so earlier
// substitutions never invalidate the byte offsets of ones still to
// come — this avoids tracking a running offset delta, unlike left-to-
// right accumulation. findings need not be pre-sorted; Rewrite sorts a
// copy internally and does not mutate the input slice.
func Rewrite(text string, findings []pii.Finding) string {
	if len(findings) == 0 {
		return text
	}

	ordered := make([]pii.Finding, len(findings))
	copy(ordered, findings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	buf := []byte(text)
	for _, f := range ordered {
		out := make([]byte, 0, len(buf)-(f.End-f.Start)+len(f.Placeholder))
		out = append(out, buf[:f.Start]...)
		out = append(out, f.Placeholder...)
		out = append(out, buf[f.End:]...)
		buf = out
	}
	return string(buf)
}
