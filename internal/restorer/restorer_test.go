package restorer

import (
	"testing"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/redactor"
	"github.com/adrian-lorenz/pii-guard/internal/rewriter"
)

func TestRestore_SingleToken(t *testing.T) {
	text := "Call [NAME_1] tomorrow."
	mapping := map[string]string{"[NAME_1]": "Thomas Schmidt"}

	got := Restore(text, mapping)
	want := "Call Thomas Schmidt tomorrow."
	if got != want {
		t.Errorf("Restore = %q, want %q", got, want)
	}
}

func TestRestore_MultipleTokens(t *testing.T) {
	text := "[NAME_1] emailed [EMAIL_1]."
	mapping := map[string]string{
		"[NAME_1]":  "Alice",
		"[EMAIL_1]": "alice@example.com",
	}

	got := Restore(text, mapping)
	want := "Alice emailed alice@example.com."
	if got != want {
		t.Errorf("Restore = %q, want %q", got, want)
	}
}

func TestRestore_LongestFirst(t *testing.T) {
	// [NAME_10] must be replaced before [NAME_1] to avoid a partial match.
	text := "Hello [NAME_1] and [NAME_10]."
	mapping := map[string]string{
		"[NAME_1]":  "Alice",
		"[NAME_10]": "Bob",
	}

	got := Restore(text, mapping)
	want := "Hello Alice and Bob."
	if got != want {
		t.Errorf("Restore = %q, want %q", got, want)
	}
}

func TestRestore_EmptyMapping(t *testing.T) {
	text := "Nothing to restore."
	got := Restore(text, nil)
	if got != text {
		t.Errorf("Restore = %q, want %q", got, text)
	}
}

func TestRoundTrip(t *testing.T) {
	original := "Alice met Bob at the park."
	findings := []pii.Finding{
		{Type: pii.Name, Start: 0, End: 5, Text: "Alice"},
		{Type: pii.Name, Start: 10, End: 13, Text: "Bob"},
	}

	tagged, mapping := redactor.Assign(findings)
	anonymised := rewriter.Rewrite(original, tagged)

	restored := Restore(anonymised, mapping)
	if restored != original {
		t.Errorf("round-trip failed: got %q, want %q", restored, original)
	}
}

func TestStreamRestore_CompleteToken(t *testing.T) {
	mapping := map[string]string{"[NAME_1]": "Alice"}
	sr := NewStreamRestorer(mapping)

	got := sr.Process("Hello [NAME_1]!")
	want := "Hello Alice!"
	if got != want {
		t.Errorf("Process = %q, want %q", got, want)
	}
}

func TestStreamRestore_SplitToken(t *testing.T) {
	mapping := map[string]string{"[NAME_1]": "Alice"}
	sr := NewStreamRestorer(mapping)

	out1 := sr.Process("Hello [NA")
	if out1 != "Hello " {
		t.Errorf("Process chunk1 = %q, want %q", out1, "Hello ")
	}

	out2 := sr.Process("ME_1] rest")
	if out2 != "Alice rest" {
		t.Errorf("Process chunk2 = %q, want %q", out2, "Alice rest")
	}
}

func TestStreamRestore_Flush(t *testing.T) {
	mapping := map[string]string{"[NAME_1]": "Alice"}
	sr := NewStreamRestorer(mapping)

	out := sr.Process("end [")
	if out != "end " {
		t.Errorf("Process = %q, want %q", out, "end ")
	}

	flushed := sr.Flush()
	if flushed != "[" {
		t.Errorf("Flush = %q, want %q", flushed, "[")
	}
}
