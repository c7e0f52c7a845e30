package ruledata

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/adrian-lorenz/pii-guard/internal/logging"
)

// SeverityConfidence maps a rule's declared severity to the confidence
// score a match against that rule is reported with.
var SeverityConfidence = map[string]float64{
	"CRITICAL": 1.0,
	"HIGH":     0.9,
	"MEDIUM":   0.75,
	"LOW":      0.6,
	"WARNING":  0.5,
}

// ruleFile is the raw TOML shape of secret_rules.toml.
type ruleFile struct {
	Rule []rawRule `toml:"rule"`
}

type rawRule struct {
	ID          string   `toml:"id"`
	Description string   `toml:"description"`
	Pattern     string   `toml:"pattern"`
	SecretGroup int      `toml:"secret_group"`
	Severity    string   `toml:"severity"`
	Multiline   bool     `toml:"multiline"`
	Tags        []string `toml:"tags"`
}

// SecretRule is a compiled, ready-to-run entry from the secret-rule
// catalogue.
type SecretRule struct {
	ID          string
	Description string
	Pattern     *regexp.Regexp
	SecretGroup int
	Confidence  float64
	Multiline   bool
	Tags        []string
}

var secretRulesCache struct {
	once  sync.Once
	rules []SecretRule
	err   error
}

// SecretRules loads and compiles the embedded secret-rule catalogue. It
// fails fast on a malformed pattern or an unrecognised severity — both
// are considered programmer errors in the shipped data, not something a
// caller can recover from at scan time. The catalogue is parsed and
// logged once per process; subsequent calls return the cached result.
func SecretRules() ([]SecretRule, error) {
	secretRulesCache.once.Do(func() {
		secretRulesCache.rules, secretRulesCache.err = loadSecretRules()
		logging.LogDataLoad(logger, "secret_rules", len(secretRulesCache.rules), secretRulesCache.err)
	})
	return secretRulesCache.rules, secretRulesCache.err
}

func loadSecretRules() ([]SecretRule, error) {
	raw, err := dataFS.ReadFile("data/secret_rules.toml")
	if err != nil {
		return nil, fmt.Errorf("ruledata: read secret rules: %w", err)
	}

	var parsed ruleFile
	if _, err := toml.Decode(string(raw), &parsed); err != nil {
		return nil, fmt.Errorf("ruledata: decode secret rules: %w", err)
	}

	rules := make([]SecretRule, 0, len(parsed.Rule))
	for _, r := range parsed.Rule {
		confidence, ok := SeverityConfidence[r.Severity]
		if !ok {
			return nil, fmt.Errorf("ruledata: rule %s: unknown severity %q", r.ID, r.Severity)
		}
		pattern := r.Pattern
		if r.Multiline {
			// (?m) makes ^ and $ match at line boundaries within the
			// matched text rather than only at the start/end of the
			// whole input, mirroring the original catalogue's re.MULTILINE.
			pattern = "(?m)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("ruledata: rule %s: compile pattern: %w", r.ID, err)
		}
		rules = append(rules, SecretRule{
			ID:          r.ID,
			Description: r.Description,
			Pattern:     re,
			SecretGroup: r.SecretGroup,
			Confidence:  confidence,
			Multiline:   r.Multiline,
			Tags:        r.Tags,
		})
	}
	return rules, nil
}
