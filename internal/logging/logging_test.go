package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

func TestScanSummaryCounts(t *testing.T) {
	result := pii.ScanResult{
		Findings: []pii.Finding{
			{Type: pii.Name, Text: "Thomas Schmidt"},
			{Type: pii.Name, Text: "Alice"},
			{Type: pii.Email, Text: "alice@example.com"},
		},
	}

	counts := ScanSummary(result)
	if counts["NAME"] != 2 {
		t.Errorf("counts[NAME] = %d, want 2", counts["NAME"])
	}
	if counts["EMAIL"] != 1 {
		t.Errorf("counts[EMAIL] = %d, want 1", counts["EMAIL"])
	}
}

func TestLogScanNeverLeaksText(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	result := pii.ScanResult{
		OriginalText:   "Thomas Schmidt lives at Hauptstraße 12.",
		AnonymisedText: "[NAME_1] lives at [ADDRESS_1].",
		Findings: []pii.Finding{
			{Type: pii.Name, Text: "Thomas Schmidt", Placeholder: "[NAME_1]"},
			{Type: pii.Address, Text: "Hauptstraße 12", Placeholder: "[ADDRESS_1]"},
		},
		Mapping: map[string]string{
			"[NAME_1]":    "Thomas Schmidt",
			"[ADDRESS_1]": "Hauptstraße 12",
		},
	}

	LogScan(logger, result, 15, 2*time.Millisecond)

	out := buf.String()
	if strings.Contains(out, "Thomas Schmidt") {
		t.Fatalf("log output leaked PII text: %s", out)
	}
	if strings.Contains(out, "Hauptstraße") {
		t.Fatalf("log output leaked PII text: %s", out)
	}
	if !strings.Contains(out, "\"NAME\":1") {
		t.Errorf("expected NAME count in log output, got %s", out)
	}
	if !strings.Contains(out, "\"detectors\":15") {
		t.Errorf("expected detector count in log output, got %s", out)
	}
}

func TestLogDataLoadSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	LogDataLoad(logger, "street_suffixes", 42, nil)

	out := buf.String()
	if !strings.Contains(out, "\"component\":\"street_suffixes\"") {
		t.Errorf("expected component name in log output, got %s", out)
	}
	if !strings.Contains(out, "\"count\":42") {
		t.Errorf("expected count in log output, got %s", out)
	}
}

func TestLogDataLoadFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	LogDataLoad(logger, "secret_rules", 0, errors.New("decode secret rules: bad toml"))

	out := buf.String()
	if !strings.Contains(out, "\"level\":\"error\"") {
		t.Errorf("expected error level in log output, got %s", out)
	}
	if !strings.Contains(out, "data load failed") {
		t.Errorf("expected failure message in log output, got %s", out)
	}
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("not-a-level", &buf)
	if logger.GetLevel().String() != "info" {
		t.Errorf("level = %q, want %q", logger.GetLevel().String(), "info")
	}
}
