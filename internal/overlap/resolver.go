// Package overlap merges the raw findings emitted by every detector
// into a disjoint, start-ascending list, the sole point in the pipeline
// where detector outputs are compared against each other.
package overlap

import (
	"sort"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

// priority ranks each PiiType for collision resolution; a higher number
// wins. Types absent from the spec's own priority table (KVNR, VAT_ID,
// DRIVER_LICENSE, LICENSE_PLATE) are assigned the same tier as the
// other structured, checksum-or-context-gated document identifiers
// (PERSONAL_ID, TAX_ID, EMAIL).
var priority = map[pii.PiiType]int{
	pii.Secret:         6,
	pii.URLSecret:      6,
	pii.IBAN:           5,
	pii.CreditCard:     5,
	pii.SocialSecurity: 5,
	pii.PersonalID:     4,
	pii.TaxID:          4,
	pii.Email:          4,
	pii.VatID:          4,
	pii.KVNR:           4,
	pii.DriverLicense:  4,
	pii.LicensePlate:   4,
	pii.Phone:          3,
	pii.Address:        2,
	pii.Name:           1,
}

// Priority returns the collision-resolution rank of t.
func Priority(t pii.PiiType) int {
	return priority[t]
}

// Resolve sorts findings by (start ascending, priority descending,
// length descending) and sweeps left to right, keeping at each
// position the single finding that both respects priority order and
// covers the least-overlapping choice: the currently accepted finding
// is replaced only when the next candidate outranks it, or ties its
// rank with a strictly longer span. The result is disjoint and sorted
// by start ascending.
func Resolve(findings []pii.Finding) []pii.Finding {
	if len(findings) == 0 {
		return nil
	}

	ordered := make([]pii.Finding, len(findings))
	copy(ordered, findings)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		pi, pj := priority[ordered[i].Type], priority[ordered[j].Type]
		if pi != pj {
			return pi > pj
		}
		return ordered[i].Len() > ordered[j].Len()
	})

	resolved := make([]pii.Finding, 0, len(ordered))
	lastEnd := -1
	for _, f := range ordered {
		if len(resolved) == 0 || f.Start >= lastEnd {
			resolved = append(resolved, f)
			lastEnd = f.End
			continue
		}

		prev := resolved[len(resolved)-1]
		if outranks(f, prev) {
			resolved[len(resolved)-1] = f
			lastEnd = f.End
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Start < resolved[j].Start
	})
	return resolved
}

// outranks reports whether candidate should replace current when their
// spans overlap: a strictly higher priority wins outright; a tied
// priority is broken by the longer span.
func outranks(candidate, current pii.Finding) bool {
	pc, pp := priority[candidate.Type], priority[current.Type]
	if pc != pp {
		return pc > pp
	}
	return candidate.Len() > current.Len()
}
