// Package logging wires the engine's structured logging. It follows the
// zerolog conventions the pack's PII-sanitizing logger examples use,
// with one added rule specific to this domain: a Finding's matched text
// and a ScanResult's original/anonymised text must never reach a log
// event, only counts and type tags.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

// New builds a zerolog.Logger writing to w at the given level. An
// unrecognised level falls back to info.
func New(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	zl, err := zerolog.ParseLevel(level)
	if err != nil {
		zl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(zl).With().Timestamp().Logger()
}

// ScanSummary returns the per-type finding counts for a ScanResult, safe
// to attach to a log event. It never includes Finding.Text, Mapping
// values, OriginalText or AnonymisedText.
func ScanSummary(result pii.ScanResult) map[string]int {
	counts := make(map[string]int)
	for _, f := range result.Findings {
		counts[string(f.Type)]++
	}
	return counts
}

// LogScan records a completed scan: how many detectors ran, how many
// findings of each type were produced, and how long it took — never the
// matched text itself.
func LogScan(logger zerolog.Logger, result pii.ScanResult, detectorCount int, duration time.Duration) {
	evt := logger.Info()
	total := 0
	for typ, n := range ScanSummary(result) {
		evt = evt.Int(typ, n)
		total += n
	}
	evt.Int("total", total).
		Int("detectors", detectorCount).
		Dur("duration", duration).
		Msg("scan complete")
}

// LogDataLoad records a construction-time data load (a word list, the
// secret-rule catalogue) succeeding or failing. It logs the item count
// and, on failure, the error — never the loaded values themselves.
func LogDataLoad(logger zerolog.Logger, component string, count int, err error) {
	if err != nil {
		logger.Error().Str("component", component).Err(err).Msg("data load failed")
		return
	}
	logger.Info().Str("component", component).Int("count", count).Msg("data load complete")
}
