package detectors

import (
	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/ruledata"
)

type secretDetector struct {
	rules []ruledata.SecretRule
}

// NewSecretDetector recognises secrets via the declarative rule
// catalogue (secret_rules.toml): each rule is evaluated independently
// and a match contributes a finding covering only rule.SecretGroup (0
// means the whole match), tagged with the rule's ID and a
// severity-derived confidence. A rule whose secret_group exceeds the
// number of groups a particular match actually captured is skipped for
// that match rather than aborting the scan — a malformed or
// over-specific rule is a data-quality issue, not a runtime fault.
func NewSecretDetector() (Detector, error) {
	rules, err := ruledata.SecretRules()
	if err != nil {
		return nil, &pii.ConfigurationError{Op: "load secret rule catalogue", Err: err}
	}
	return &secretDetector{rules: rules}, nil
}

func (secretDetector) Type() pii.PiiType {
	return pii.Secret
}

func (d *secretDetector) Detect(text string) []pii.Finding {
	var findings []pii.Finding
	for _, rule := range d.rules {
		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(text, -1) {
			g := rule.SecretGroup
			if g*2+1 >= len(loc) || loc[g*2] < 0 {
				continue
			}
			start, end := loc[g*2], loc[g*2+1]
			if start == end {
				continue
			}
			findings = append(findings, pii.Finding{
				Type:       pii.Secret,
				Start:      start,
				End:        end,
				Text:       text[start:end],
				Confidence: rule.Confidence,
				RuleID:     rule.ID,
			})
		}
	}
	return findings
}
