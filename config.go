package twittertext

import "sync"

var (
	defaultExtractor     *Extractor
	defaultExtractorOnce sync.Once

	defaultValidator     *Validator
	defaultValidatorOnce sync.Once
)

// DefaultExtractor returns the shared extractor with default options (singleton).
func DefaultExtractor() *Extractor {
	defaultExtractorOnce.Do(func() {
		defaultExtractor = NewExtractor()
	})
	return defaultExtractor
}

// DefaultValidator returns the shared validator with default options (singleton).
func DefaultValidator() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewValidator()
	})
	return defaultValidator
}
