package kindaxml

import (
	"github.com/soraxas/kindaxml/internal"
)

// Parse recovers annotations from text using a Config built from opts,
// equivalent to building a Config with NewConfig and calling
// ParseWithConfig. Parse never fails on malformed input (spec §7); the
// only error it can return is a configuration error from the options.
func Parse(text string, opts ...Option) (*ParseResult, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return ParseWithConfig(text, cfg), nil
}

// ParseWithConfig runs the recovery engine over text with an
// already-resolved Config. It is a pure function of (text, cfg): no
// logging, no I/O, no shared state (spec §5) — callers that want
// observability wrap this call themselves, the way ResultCache does.
func ParseWithConfig(text string, cfg *Config) *ParseResult {
	r := internal.Run(text, cfg.toEngineConfig())
	return resultFromInternal(r)
}

// MustParse is like Parse but panics on a configuration error.
func MustParse(text string, opts ...Option) *ParseResult {
	r, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return r
}
