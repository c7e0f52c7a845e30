package whitelist

import "testing"

func TestIsWhitelistedSubstring(t *testing.T) {
	l := New([]string{"Friedrich Merz"}, nil)
	if !l.IsWhitelisted("Merz") {
		t.Error("expected Merz to be whitelisted as a substring of Friedrich Merz")
	}
	if !l.IsWhitelisted("Friedrich Merz") {
		t.Error("expected exact match to be whitelisted")
	}
	if l.IsWhitelisted("Jane Doe") {
		t.Error("did not expect Jane Doe to be whitelisted")
	}
}

func TestAddAndRemove(t *testing.T) {
	l := New(nil, nil)
	l.Add("Max Mustermann")
	if !l.IsWhitelisted("Max Mustermann") {
		t.Fatal("expected added name to be whitelisted")
	}
	l.Remove("Max Mustermann")
	if l.IsWhitelisted("Max Mustermann") {
		t.Fatal("expected removed name to no longer be whitelisted")
	}
}

func TestNewDeduplicatesCaseInsensitively(t *testing.T) {
	l := New([]string{"Angela Merkel"}, []string{"angela merkel", "Olaf Scholz"})
	if len(l.Names()) != 2 {
		t.Fatalf("expected 2 deduplicated entries, got %d: %v", len(l.Names()), l.Names())
	}
}
