// Package piiguard provides the public API for the pii-guard German/DACH
// PII detection-and-anonymisation engine.
//
// It re-exports the core types and functions so that external Go modules
// can import them without reaching into internal packages.
package piiguard

import (
	"github.com/rs/zerolog"

	"github.com/adrian-lorenz/pii-guard/internal/ner"
	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/restorer"
	"github.com/adrian-lorenz/pii-guard/internal/scanner"
	"github.com/adrian-lorenz/pii-guard/internal/whitelist"
)

// ---------- Core domain types ----------

// PiiType is the closed set of PII categories the engine recognises.
type PiiType = pii.PiiType

// The full enumeration of recognised PII categories.
const (
	Name           = pii.Name
	Address        = pii.Address
	Phone          = pii.Phone
	Email          = pii.Email
	IBAN           = pii.IBAN
	CreditCard     = pii.CreditCard
	PersonalID     = pii.PersonalID
	KVNR           = pii.KVNR
	SocialSecurity = pii.SocialSecurity
	TaxID          = pii.TaxID
	VatID          = pii.VatID
	DriverLicense  = pii.DriverLicense
	LicensePlate   = pii.LicensePlate
	URLSecret      = pii.URLSecret
	Secret         = pii.Secret
)

// AllTypes lists every PiiType in a stable order.
var AllTypes = pii.AllTypes

// Finding is a single detected PII span with byte offsets into the
// scanned text.
type Finding = pii.Finding

// ScanResult is the output of a single Scan call.
type ScanResult = pii.ScanResult

// ConfigurationError signals a fatal problem discovered while
// constructing a Scanner: a missing data file, a malformed secret-rule
// catalogue, or an unknown severity.
type ConfigurationError = pii.ConfigurationError

// ---------- Scanner ----------

// Scanner runs the full detection-and-anonymisation pipeline. A Scanner
// is safe for concurrent Scan calls.
type Scanner = scanner.Scanner

// Option configures a Scanner at construction time.
type Option = scanner.Option

// WithWhitelist supplies a caller-built whitelist in place of the
// default one (seeded from the shipped public-figures list).
func WithWhitelist(list *Whitelist) Option {
	return scanner.WithWhitelist(list)
}

// WithExtraWhitelistNames extends whichever whitelist is in effect with
// additional names.
func WithExtraWhitelistNames(names []string) Option {
	return scanner.WithExtraWhitelistNames(names)
}

// WithTagger overrides the default heuristic NER tagger used by the NAME
// detector.
func WithTagger(tagger Tagger) Option {
	return scanner.WithTagger(tagger)
}

// WithLogger reports construction and per-scan events through logger
// instead of discarding them. Only counts, types and durations are ever
// logged — never the scanned text or any restored value.
func WithLogger(logger zerolog.Logger) Option {
	return scanner.WithLogger(logger)
}

// New constructs a Scanner with every built-in detector enabled.
func New(opts ...Option) (*Scanner, error) {
	return scanner.New(opts...)
}

// ScanOption customises a single Scan call.
type ScanOption = scanner.ScanOption

// WithOnlyTypes restricts a single Scan call to the given detector types.
func WithOnlyTypes(types ...PiiType) ScanOption {
	return scanner.WithOnlyTypes(types...)
}

// ---------- Whitelist ----------

// Whitelist holds names the NAME detector must never flag (public
// figures, caller-supplied exceptions).
type Whitelist = whitelist.List

// NewWhitelist builds a Whitelist from a base list plus extra entries.
func NewWhitelist(base, extra []string) *Whitelist {
	return whitelist.New(base, extra)
}

// ---------- NER ----------

// Tagger identifies candidate person-name spans by character offset,
// the seam through which an external NER model can be plugged in.
type Tagger = ner.Tagger

// Span is a single tagged span, expressed in character (rune) offsets.
type Span = ner.Span

// NewHeuristicTagger returns the shipped regex/trigger-word based
// Tagger, used when no external model is supplied.
func NewHeuristicTagger() Tagger {
	return ner.NewHeuristicTagger()
}

// ---------- Restoration ----------

// Restore replaces every placeholder token in text with its original
// value, using the same placeholder→original mapping a Scan call
// returns (ScanResult.Mapping). Tokens are replaced longest-first to
// avoid partial matches (e.g. [NAME_10] is replaced before [NAME_1]).
func Restore(text string, mapping map[string]string) string {
	return restorer.Restore(text, mapping)
}

// StreamRestorer incrementally restores tokens from streaming chunks of
// already-anonymised text, buffering incomplete tokens (an opening '['
// without a matching ']').
type StreamRestorer = restorer.StreamRestorer

// NewStreamRestorer returns a StreamRestorer configured with the given
// placeholder→original mapping (ScanResult.Mapping).
func NewStreamRestorer(mapping map[string]string) *StreamRestorer {
	return restorer.NewStreamRestorer(mapping)
}
