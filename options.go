package twittertext

// ExtractOptions holds options for entity extraction.
type ExtractOptions struct {
	// URLWithoutProtocol extracts links such as "example.com" that lack http(s)://.
	URLWithoutProtocol bool
	// Debug logs one line per rejected candidate to Logger.
	Debug bool
}

// Option is a function that configures ExtractOptions.
type Option func(*ExtractOptions)

// WithURLWithoutProtocol sets whether URLs lacking a protocol are extracted.
func WithURLWithoutProtocol(enable bool) Option {
	return func(opts *ExtractOptions) {
		opts.URLWithoutProtocol = enable
	}
}

// WithDebug sets whether rejected candidates are logged.
func WithDebug(enable bool) Option {
	return func(opts *ExtractOptions) {
		opts.Debug = enable
	}
}

// defaultExtractOptions returns the default extraction options.
func defaultExtractOptions() *ExtractOptions {
	return &ExtractOptions{
		URLWithoutProtocol: true,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ExtractOptions {
	options := defaultExtractOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// ValidatorOptions holds the length budget used by Validator.
type ValidatorOptions struct {
	MaxTweetLength      int
	ShortURLLength      int
	ShortURLLengthHTTPS int
	Extractor           *Extractor
}

// ValidatorOption is a function that configures ValidatorOptions.
type ValidatorOption func(*ValidatorOptions)

// WithMaxTweetLength sets the maximum weighted length.
func WithMaxTweetLength(n int) ValidatorOption {
	return func(opts *ValidatorOptions) {
		opts.MaxTweetLength = n
	}
}

// WithShortURLLength sets the cost charged for a non-https URL.
func WithShortURLLength(n int) ValidatorOption {
	return func(opts *ValidatorOptions) {
		opts.ShortURLLength = n
	}
}

// WithShortURLLengthHTTPS sets the cost charged for an https URL.
func WithShortURLLengthHTTPS(n int) ValidatorOption {
	return func(opts *ValidatorOptions) {
		opts.ShortURLLengthHTTPS = n
	}
}

// WithExtractor sets the extractor used to find URLs.
func WithExtractor(e *Extractor) ValidatorOption {
	return func(opts *ValidatorOptions) {
		opts.Extractor = e
	}
}

func defaultValidatorOptions() *ValidatorOptions {
	return &ValidatorOptions{
		MaxTweetLength:      MaxTweetLength,
		ShortURLLength:      ShortURLLength,
		ShortURLLengthHTTPS: ShortURLLengthHTTPS,
	}
}

func applyValidatorOptions(opts ...ValidatorOption) *ValidatorOptions {
	options := defaultValidatorOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Extractor == nil {
		options.Extractor = DefaultExtractor()
	}
	return options
}
