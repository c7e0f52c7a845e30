// Package whitelist implements the name-allowlist the NAME detector
// consults before turning a person-name candidate into a Finding:
// public figures and user-supplied extra names are never anonymised.
package whitelist

import (
	"strings"
	"sync"
)

// List is a case-insensitive, substring-tolerant set of known names. A
// candidate is considered whitelisted if it exactly matches an entry or
// is a substring of one — so "Merz" is whitelisted by virtue of "Friedrich
// Merz" being in the list, matching how a surname alone should be spared
// once the full name is known to be a public figure.
//
// List is safe for concurrent read access after construction; Add and
// Remove take a write lock.
type List struct {
	mu      sync.RWMutex
	entries []string // lower-cased
}

// New builds a List seeded with base (typically the shipped public-figures
// file) plus any caller-supplied extra names, deduplicated case-insensitively.
func New(base, extra []string) *List {
	l := &List{}
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, group := range [][]string{base, extra} {
		for _, name := range group {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			lower := strings.ToLower(name)
			if _, ok := seen[lower]; ok {
				continue
			}
			seen[lower] = struct{}{}
			l.entries = append(l.entries, lower)
		}
	}
	return l
}

// IsWhitelisted reports whether name exactly matches, or is a substring
// of, any entry in the list (case-insensitive).
func (l *List) IsWhitelisted(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, entry := range l.entries {
		if entry == name || strings.Contains(entry, name) {
			return true
		}
	}
	return false
}

// Add inserts name into the list if it isn't already present.
func (l *List) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	lower := strings.ToLower(name)
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range l.entries {
		if entry == lower {
			return
		}
	}
	l.entries = append(l.entries, lower)
}

// Remove deletes every entry exactly equal to name (case-insensitive).
// It does not remove entries that merely contain name as a substring.
func (l *List) Remove(name string) {
	lower := strings.ToLower(strings.TrimSpace(name))
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.entries[:0]
	for _, entry := range l.entries {
		if entry != lower {
			kept = append(kept, entry)
		}
	}
	l.entries = kept
}

// Names returns a snapshot of the current entries, in insertion order.
func (l *List) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}
