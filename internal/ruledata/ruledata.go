// Package ruledata ships the engine's reference data — street-name
// vocabulary, the public-figures whitelist seed, and the declarative
// secret-rule catalogue — baked into the binary via go:embed so the
// scanner never depends on files being present on disk at runtime.
package ruledata

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/adrian-lorenz/pii-guard/internal/logging"
)

//go:embed data/street_suffixes.txt data/street_prepositions.txt data/public_figures.txt data/secret_rules.toml
var dataFS embed.FS

// logger receives construction-time data-load events (street word lists,
// the secret-rule catalogue). It is silent by default; SetLogger wires
// it to a real sink, typically once at process startup before the first
// Scanner is constructed.
var logger = zerolog.Nop()

// SetLogger replaces the logger that data-load events are reported
// through. Safe to call only before the first load of each data file —
// each file is loaded and logged at most once per process.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// onceStrings lazily loads and caches a []string data file exactly once
// per process, logging the outcome the first time it's requested.
type onceStrings struct {
	once sync.Once
	vals []string
	err  error
}

func (o *onceStrings) get(component string, load func() ([]string, error)) ([]string, error) {
	o.once.Do(func() {
		o.vals, o.err = load()
		logging.LogDataLoad(logger, component, len(o.vals), o.err)
	})
	return o.vals, o.err
}

var (
	streetSuffixesCache     onceStrings
	streetPrepositionsCache onceStrings
	publicFiguresCache      onceStrings
)

// loadLines reads name from the embedded filesystem and returns its
// non-blank, non-comment lines with surrounding whitespace trimmed.
// Comments start with '#' and run to the end of the line; blank lines
// are skipped entirely. Every line is normalised to NFC so that an
// editor which saved "Straße" in decomposed form (s-t-r-a-a-combining-ring
// or similar) still compares equal to the composed form byte offsets in
// scanned text use.
func loadLines(name string) ([]string, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("ruledata: read %s: %w", name, err)
	}
	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(norm.NFC.String(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// StreetSuffixes returns the known German street-name suffixes, sorted
// longest-first so that regex alternation tries the more specific suffix
// before a shorter one it contains. The file is read and logged once per
// process; subsequent calls return the cached result.
func StreetSuffixes() ([]string, error) {
	return streetSuffixesCache.get("street_suffixes", func() ([]string, error) {
		return loadSortedLongestFirst("data/street_suffixes.txt")
	})
}

// StreetPrepositions returns the known street-name prepositions, sorted
// longest-first for the same reason as StreetSuffixes. Cached like
// StreetSuffixes.
func StreetPrepositions() ([]string, error) {
	return streetPrepositionsCache.get("street_prepositions", func() ([]string, error) {
		return loadSortedLongestFirst("data/street_prepositions.txt")
	})
}

// PublicFigures returns the seed list of public-figure full names used
// to pre-populate the name whitelist. Cached like StreetSuffixes.
func PublicFigures() ([]string, error) {
	return publicFiguresCache.get("public_figures", func() ([]string, error) {
		return loadLines("data/public_figures.txt")
	})
}

func loadSortedLongestFirst(name string) ([]string, error) {
	lines, err := loadLines(name)
	if err != nil {
		return nil, err
	}
	sort.Slice(lines, func(i, j int) bool {
		if len(lines[i]) != len(lines[j]) {
			return len(lines[i]) > len(lines[j])
		}
		return lines[i] < lines[j]
	})
	return lines, nil
}
