package rewriter

import (
	"testing"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

func TestRewriteSingleFinding(t *testing.T) {
	text := "Call Thomas Schmidt tomorrow."
	findings := []pii.Finding{
		{Type: pii.Name, Start: 5, End: 19, Text: "Thomas Schmidt", Placeholder: "[NAME_1]"},
	}
	got := Rewrite(text, findings)
	want := "Call [NAME_1] tomorrow."
	if got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteMultipleFindingsPreservesOffsets(t *testing.T) {
	text := "Email alice@example.com or call Alice."
	findings := []pii.Finding{
		{Type: pii.Email, Start: 6, End: 23, Text: "alice@example.com", Placeholder: "[EMAIL_1]"},
		{Type: pii.Name, Start: 33, End: 38, Text: "Alice", Placeholder: "[NAME_1]"},
	}
	got := Rewrite(text, findings)
	want := "Email [EMAIL_1] or call [NAME_1]."
	if got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteUnsortedInputAccepted(t *testing.T) {
	text := "Alice and Bob met Alice again."
	findings := []pii.Finding{
		{Type: pii.Name, Start: 18, End: 23, Text: "Alice", Placeholder: "[NAME_1]"},
		{Type: pii.Name, Start: 0, End: 5, Text: "Alice", Placeholder: "[NAME_1]"},
		{Type: pii.Name, Start: 10, End: 13, Text: "Bob", Placeholder: "[NAME_2]"},
	}
	got := Rewrite(text, findings)
	want := "[NAME_1] and [NAME_2] met [NAME_1] again."
	if got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteEmptyFindings(t *testing.T) {
	text := "nothing to redact"
	if got := Rewrite(text, nil); got != text {
		t.Errorf("Rewrite with no findings = %q, want unchanged %q", got, text)
	}
}
