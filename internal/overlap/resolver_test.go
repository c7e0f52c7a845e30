package overlap

import (
	"testing"

	"github.com/adrian-lorenz/pii-guard/internal/pii"
)

func TestResolveHigherPriorityWins(t *testing.T) {
	findings := []pii.Finding{
		{Type: pii.Name, Start: 0, End: 10, Text: "0123456789"},
		{Type: pii.IBAN, Start: 2, End: 8, Text: "234567"},
	}
	resolved := Resolve(findings)
	if len(resolved) != 1 {
		t.Fatalf("expected 1 disjoint finding, got %d: %+v", len(resolved), resolved)
	}
	if resolved[0].Type != pii.IBAN {
		t.Errorf("expected IBAN (higher priority) to win, got %v", resolved[0].Type)
	}
}

func TestResolveTieBreaksOnLength(t *testing.T) {
	findings := []pii.Finding{
		{Type: pii.Email, Start: 0, End: 5, Text: "aaaaa"},
		{Type: pii.Email, Start: 0, End: 9, Text: "aaaaaaaaa"},
	}
	resolved := Resolve(findings)
	if len(resolved) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(resolved))
	}
	if resolved[0].End != 9 {
		t.Errorf("expected the longer span to win, got end=%d", resolved[0].End)
	}
}

func TestResolveNonOverlappingKeepsBoth(t *testing.T) {
	findings := []pii.Finding{
		{Type: pii.Name, Start: 0, End: 5, Text: "Hans "},
		{Type: pii.Email, Start: 10, End: 20, Text: "a@b.de xxxx"},
	}
	resolved := Resolve(findings)
	if len(resolved) != 2 {
		t.Fatalf("expected 2 disjoint findings, got %d", len(resolved))
	}
}

func TestResolveSortedByStart(t *testing.T) {
	findings := []pii.Finding{
		{Type: pii.Email, Start: 10, End: 15, Text: "aaaaa"},
		{Type: pii.Name, Start: 0, End: 5, Text: "bbbbb"},
	}
	resolved := Resolve(findings)
	if len(resolved) != 2 || resolved[0].Start != 0 || resolved[1].Start != 10 {
		t.Fatalf("expected findings sorted by start ascending, got %+v", resolved)
	}
}
