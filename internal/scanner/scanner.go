// Package scanner provides the engine's public-facing facade: it owns
// the full detector set, orchestrates a scan end to end (detect →
// resolve overlap → assign placeholders → rewrite), and exposes
// per-type enable/disable toggles.
package scanner

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adrian-lorenz/pii-guard/internal/detectors"
	"github.com/adrian-lorenz/pii-guard/internal/logging"
	"github.com/adrian-lorenz/pii-guard/internal/ner"
	"github.com/adrian-lorenz/pii-guard/internal/overlap"
	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/redactor"
	"github.com/adrian-lorenz/pii-guard/internal/ruledata"
	"github.com/adrian-lorenz/pii-guard/internal/rewriter"
	"github.com/adrian-lorenz/pii-guard/internal/whitelist"
)

// Scanner runs the full detection-and-anonymisation pipeline. Its
// detector set, compiled patterns and data tables are process-wide and
// read-only once constructed; the only mutable state is the per-type
// disabled set, guarded by mu, so a Scanner is safe for concurrent Scan
// calls as long as no goroutine concurrently calls EnableDetector or
// DisableDetector.
type Scanner struct {
	detectors map[pii.PiiType]detectors.Detector
	order     []pii.PiiType
	whitelist *whitelist.List
	logger    zerolog.Logger

	mu       sync.RWMutex
	disabled map[pii.PiiType]struct{}
}

// Option configures a Scanner at construction time.
type Option func(*options)

type options struct {
	whitelist           *whitelist.List
	extraWhitelistNames []string
	tagger              ner.Tagger
	logger              zerolog.Logger
}

// WithLogger wires the Scanner's construction and per-scan events to
// logger. Without this option the Scanner logs nothing (zerolog.Nop()).
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithWhitelist supplies a caller-built whitelist in place of the
// default one (seeded from the shipped public-figures list).
func WithWhitelist(list *whitelist.List) Option {
	return func(o *options) { o.whitelist = list }
}

// WithExtraWhitelistNames extends whichever whitelist is in effect
// (default or caller-supplied) with additional names.
func WithExtraWhitelistNames(names []string) Option {
	return func(o *options) { o.extraWhitelistNames = names }
}

// WithTagger overrides the default HeuristicTagger used by the name
// detector — the NER contract's external-collaborator seam.
func WithTagger(tagger ner.Tagger) Option {
	return func(o *options) { o.tagger = tagger }
}

// New constructs a Scanner with every built-in detector enabled. It
// returns a *pii.ConfigurationError if any detector's data dependency
// (the address word lists, the secret-rule catalogue, the public
// figures seed) fails to load or compile.
func New(opts ...Option) (*Scanner, error) {
	cfg := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	ruledata.SetLogger(cfg.logger)

	if cfg.whitelist == nil {
		figures, err := ruledata.PublicFigures()
		if err != nil {
			return nil, &pii.ConfigurationError{Op: "load public figures whitelist seed", Err: err}
		}
		cfg.whitelist = whitelist.New(figures, cfg.extraWhitelistNames)
	} else if len(cfg.extraWhitelistNames) > 0 {
		for _, name := range cfg.extraWhitelistNames {
			cfg.whitelist.Add(name)
		}
	}

	if cfg.tagger == nil {
		cfg.tagger = ner.NewHeuristicTagger()
	}

	all, err := detectors.BuildAll(cfg.tagger, cfg.whitelist)
	if err != nil {
		return nil, err
	}

	byType := make(map[pii.PiiType]detectors.Detector, len(all))
	order := make([]pii.PiiType, 0, len(all))
	for _, d := range all {
		byType[d.Type()] = d
		order = append(order, d.Type())
	}

	cfg.logger.Info().Int("detectors", len(order)).Msg("scanner initialised")

	return &Scanner{
		detectors: byType,
		order:     order,
		whitelist: cfg.whitelist,
		logger:    cfg.logger,
		disabled:  make(map[pii.PiiType]struct{}),
	}, nil
}

// ScanOption customises a single Scan call.
type ScanOption func(*scanConfig)

type scanConfig struct {
	onlyTypes map[pii.PiiType]struct{}
}

// WithOnlyTypes restricts this call to the given detector types,
// overriding the scanner's enabled/disabled state for the duration of
// the call (it does not change EnableDetector/DisableDetector state).
func WithOnlyTypes(types ...pii.PiiType) ScanOption {
	return func(c *scanConfig) {
		c.onlyTypes = make(map[pii.PiiType]struct{}, len(types))
		for _, t := range types {
			c.onlyTypes[t] = struct{}{}
		}
	}
}

// Scan runs every enabled detector over text concurrently, resolves
// overlapping raw findings, assigns placeholders, and rewrites the text.
// Every string is a valid input, including the empty string.
func (s *Scanner) Scan(text string, opts ...ScanOption) pii.ScanResult {
	start := time.Now()

	cfg := &scanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	active := s.activeDetectors(cfg)
	raw := s.runDetectors(text, active)

	resolved := overlap.Resolve(raw)
	tagged, mapping := redactor.Assign(resolved)
	anonymised := rewriter.Rewrite(text, tagged)

	result := pii.ScanResult{
		OriginalText:   text,
		AnonymisedText: anonymised,
		Findings:       tagged,
		Mapping:        mapping,
	}

	logging.LogScan(s.logger, result, len(active), time.Since(start))
	return result
}

// activeDetectors returns the detectors to run for one Scan call,
// honouring both the persistent disabled set and a per-call
// WithOnlyTypes restriction.
func (s *Scanner) activeDetectors(cfg *scanConfig) []detectors.Detector {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]detectors.Detector, 0, len(s.order))
	for _, t := range s.order {
		if cfg.onlyTypes != nil {
			if _, ok := cfg.onlyTypes[t]; !ok {
				continue
			}
		}
		if _, off := s.disabled[t]; off {
			continue
		}
		active = append(active, s.detectors[t])
	}
	return active
}

// runDetectors fans out each detector's Detect call onto its own
// goroutine — detectors are pure functions of text and never touch each
// other's state, so they may run in parallel; the overlap resolver
// remains the single sequential merge point.
func (s *Scanner) runDetectors(text string, active []detectors.Detector) []pii.Finding {
	results := make([][]pii.Finding, len(active))
	var wg sync.WaitGroup
	wg.Add(len(active))
	for i, d := range active {
		go func(i int, d detectors.Detector) {
			defer wg.Done()
			results[i] = d.Detect(text)
		}(i, d)
	}
	wg.Wait()

	var all []pii.Finding
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

// EnableDetector turns a detector type back on for subsequent Scan
// calls. It is a no-op if the type was never disabled.
func (s *Scanner) EnableDetector(t pii.PiiType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.disabled, t)
}

// DisableDetector turns a detector type off for subsequent Scan calls.
func (s *Scanner) DisableDetector(t pii.PiiType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disabled[t] = struct{}{}
}

// IsEnabled reports whether t currently participates in Scan calls.
func (s *Scanner) IsEnabled(t pii.PiiType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, off := s.disabled[t]
	return !off
}

// Whitelist returns the scanner's whitelist, so callers can add or
// remove names at runtime (e.g. from a settings UI).
func (s *Scanner) Whitelist() *whitelist.List {
	return s.whitelist
}
