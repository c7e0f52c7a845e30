// Package redactor implements the placeholder-assignment stage: given
// the overlap resolver's disjoint findings, it assigns each one a
// stable `[TYPE_N]` placeholder — reusing the placeholder already
// assigned to identical text — and builds the placeholder→original
// mapping for the final ScanResult. It does not touch the text itself;
// substitution is the rewriter package's job.
package redactor

import (
	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

// Assign walks findings in their given order (the overlap resolver
// already sorts them by start ascending) and returns a copy of each
// with its Placeholder field set, plus the placeholder→original
// mapping. Identical finding text shares one placeholder and one
// mapping entry, regardless of how many times it occurs.
func Assign(findings []pii.Finding) ([]pii.Finding, map[string]string) {
	if len(findings) == 0 {
		return nil, map[string]string{}
	}

	counter := NewCounter()
	tagged := make([]pii.Finding, len(findings))
	mapping := make(map[string]string)

	for i, f := range findings {
		token := counter.Next(string(f.Type), f.Text)
		f.Placeholder = token
		tagged[i] = f
		mapping[token] = f.Text
	}

	return tagged, mapping
}
