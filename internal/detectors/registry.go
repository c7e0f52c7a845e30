package detectors

import (
	"github.com/adrian-lorenz/pii-guard/internal/ner"
	"github.com/adrian-lorenz/pii-guard/internal/whitelist"
)

// BuildAll constructs one Detector per PiiType, in the priority order
// most relevant to secret/credential types first (the same order
// internal/overlap ranks them), using tagger for the name detector and
// list as its whitelist. It fails fast — wrapped in a
// *pii.ConfigurationError — if the address pattern or the secret-rule
// catalogue can't be built from the embedded data.
func BuildAll(tagger ner.Tagger, list *whitelist.List) ([]Detector, error) {
	secret, err := NewSecretDetector()
	if err != nil {
		return nil, err
	}
	address, err := NewAddressDetector()
	if err != nil {
		return nil, err
	}

	return []Detector{
		secret,
		NewURLSecretDetector(),
		NewIBANDetector(),
		NewCreditCardDetector(),
		NewSocialSecurityDetector(),
		NewPersonalIDDetector(),
		NewTaxIDDetector(),
		NewVatIDDetector(),
		NewKVNRDetector(),
		NewDriverLicenseDetector(),
		NewLicensePlateDetector(),
		NewEmailDetector(),
		NewPhoneDetector(),
		address,
		NewNameDetector(tagger, list),
	}, nil
}
