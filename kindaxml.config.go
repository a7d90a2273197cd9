package kindaxml

import (
	"sort"
	"strings"

	"github.com/soraxas/kindaxml/internal"
)

// Strategy names the recovery behavior applied when a recognized tag
// is closed implicitly rather than by its own matching end tag.
type Strategy int

const (
	StrategyRetroLine Strategy = iota
	StrategyForwardUntilTag
	StrategyForwardUntilNewline
	StrategyForwardNextToken
	StrategyNoop
)

func (s Strategy) String() string {
	switch s {
	case StrategyRetroLine:
		return "retro_line"
	case StrategyForwardUntilTag:
		return "forward_until_tag"
	case StrategyForwardUntilNewline:
		return "forward_until_newline"
	case StrategyForwardNextToken:
		return "forward_next_token"
	case StrategyNoop:
		return "noop"
	default:
		return "unknown"
	}
}

func (s Strategy) valid() bool {
	return s >= StrategyRetroLine && s <= StrategyNoop
}

func (s Strategy) toInternal() internal.Strategy {
	return internal.Strategy(s)
}

// UnknownMode names how an unrecognized tag is handled.
type UnknownMode int

const (
	UnknownStrip UnknownMode = iota
	UnknownPassthrough
	UnknownTreatAsText
)

func (m UnknownMode) valid() bool {
	return m >= UnknownStrip && m <= UnknownTreatAsText
}

func (m UnknownMode) toInternal() internal.UnknownMode {
	return internal.UnknownMode(m)
}

// StrayEndTagPolicy names how a recognized end tag with no matching
// open tag on the stack is handled. It has no bearing on unrecognized
// stray end tags, which always dispatch via UnknownMode.
type StrayEndTagPolicy int

const (
	StrayDrop StrayEndTagPolicy = iota
	StrayPassthrough
)

func (p StrayEndTagPolicy) valid() bool {
	return p == StrayDrop || p == StrayPassthrough
}

func (p StrayEndTagPolicy) toInternal() internal.StrayEndTagPolicy {
	return internal.StrayEndTagPolicy(p)
}

const defaultUnknownMode = UnknownStrip
const defaultStrategy = StrategyRetroLine
const defaultStrayPolicy = StrayDrop

// Config is the resolved, immutable configuration a Parse call runs
// against. Build one with NewConfig and functional Options, grounded on
// the teacher's engineConfig/Option pair (prompty.options.go).
type Config struct {
	recognizedTags     map[string]bool
	caseSensitiveTags  bool
	unknownMode        UnknownMode
	defaultStrategy    Strategy
	perTagStrategy     map[string]Strategy
	trimPunctuation    bool
	autocloseOnAnyTag  bool
	autocloseOnSameTag bool
	strayEndTagPolicy  StrayEndTagPolicy
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// defaultConfig returns the configuration named as default for every
// field: no recognized tags, case-sensitive matching, unknown tags
// stripped, retro_line as the default recovery strategy, punctuation
// trimming on, autoclose on any tag, autoclose on same tag, and
// recognized stray end tags dropped.
func defaultConfig() *Config {
	return &Config{
		recognizedTags:     make(map[string]bool),
		caseSensitiveTags:  true,
		unknownMode:        defaultUnknownMode,
		defaultStrategy:    defaultStrategy,
		perTagStrategy:     make(map[string]Strategy),
		trimPunctuation:    true,
		autocloseOnAnyTag:  true,
		autocloseOnSameTag: true,
		strayEndTagPolicy:  defaultStrayPolicy,
	}
}

// WithRecognizedTags sets the set of tag names Parse treats as
// structured annotations; every other tag name is handled per
// WithUnknownMode. Names are folded per WithCaseSensitiveTags.
func WithRecognizedTags(names ...string) Option {
	return func(c *Config) {
		for _, n := range names {
			if n == "" {
				continue
			}
			c.recognizedTags[n] = true
		}
	}
}

// WithCaseSensitiveTags controls whether tag name matching against the
// recognized set (and stack matching) is case-sensitive. Default true.
func WithCaseSensitiveTags(sensitive bool) Option {
	return func(c *Config) {
		c.caseSensitiveTags = sensitive
	}
}

// WithUnknownMode sets how unrecognized tags are handled. Default
// UnknownStrip.
func WithUnknownMode(mode UnknownMode) Option {
	return func(c *Config) {
		c.unknownMode = mode
	}
}

// WithDefaultStrategy sets the recovery strategy used for a recognized
// tag with no per-tag override. Default StrategyRetroLine.
func WithDefaultStrategy(s Strategy) Option {
	return func(c *Config) {
		c.defaultStrategy = s
	}
}

// WithTagStrategy sets the recovery strategy for a single recognized
// tag name, overriding the default strategy for that tag only.
func WithTagStrategy(name string, s Strategy) Option {
	return func(c *Config) {
		c.perTagStrategy[name] = s
	}
}

// WithTrimPunctuation controls whether retro_line trims leading
// whitespace and trailing punctuation/whitespace from its span. Default
// true.
func WithTrimPunctuation(trim bool) Option {
	return func(c *Config) {
		c.trimPunctuation = trim
	}
}

// WithAutocloseOnAnyTag closes the innermost open tag whenever any
// other recognized tag is scanned while it is still open. Default true.
// Mutually exclusive in effect with WithAutocloseOnSameTag — when both
// are set, autoclose-on-any-tag takes precedence (it is the strictly
// broader policy).
func WithAutocloseOnAnyTag(enabled bool) Option {
	return func(c *Config) {
		c.autocloseOnAnyTag = enabled
	}
}

// WithAutocloseOnSameTag closes the innermost open tag when another
// start tag of the exact same name is scanned while it is still open.
// Default true. Ignored when WithAutocloseOnAnyTag is also enabled.
func WithAutocloseOnSameTag(enabled bool) Option {
	return func(c *Config) {
		c.autocloseOnSameTag = enabled
	}
}

// WithStrayEndTagPolicy sets the behavior for a recognized end tag with
// no matching open tag on the stack. Default StrayDrop.
func WithStrayEndTagPolicy(p StrayEndTagPolicy) Option {
	return func(c *Config) {
		c.strayEndTagPolicy = p
	}
}

// NewConfig builds a Config from the given options and validates it.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig is like NewConfig but panics on a validation error.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Config) validate() error {
	for name := range c.recognizedTags {
		if strings.TrimSpace(name) == "" {
			return NewConfigError(ErrMsgEmptyTagName, MetaKeyTag, name)
		}
	}
	if !c.defaultStrategy.valid() {
		return NewConfigError(ErrMsgUnknownDefaultStrategy, MetaKeyStrategy, c.defaultStrategy.String())
	}
	for tag, s := range c.perTagStrategy {
		if !s.valid() {
			return NewConfigError(ErrMsgUnknownTagStrategy, MetaKeyTag, tag)
		}
	}
	if !c.unknownMode.valid() {
		return NewConfigError(ErrMsgUnknownUnknownMode, MetaKeyMode, "")
	}
	if !c.strayEndTagPolicy.valid() {
		return NewConfigError(ErrMsgUnknownStrayPolicy, MetaKeyPolicy, "")
	}
	return nil
}

func (c *Config) fold(name string) string {
	if c.caseSensitiveTags {
		return name
	}
	return strings.ToLower(name)
}

// toEngineConfig resolves c into the internal package's engine
// configuration, folding tag names once here so the engine's own
// folding only ever needs to apply to names encountered in the input.
func (c *Config) toEngineConfig() internal.EngineConfig {
	recognized := make(map[string]bool, len(c.recognizedTags))
	for name := range c.recognizedTags {
		recognized[c.fold(name)] = true
	}
	perTag := make(map[string]internal.Strategy, len(c.perTagStrategy))
	for name, s := range c.perTagStrategy {
		perTag[c.fold(name)] = s.toInternal()
	}
	return internal.EngineConfig{
		RecognizedTags:     recognized,
		CaseSensitiveTags:  c.caseSensitiveTags,
		UnknownMode:        c.unknownMode.toInternal(),
		DefaultStrategy:    c.defaultStrategy.toInternal(),
		PerTagStrategy:     perTag,
		TrimPunctuation:    c.trimPunctuation,
		AutocloseOnAnyTag:  c.autocloseOnAnyTag,
		AutocloseOnSameTag: c.autocloseOnSameTag,
		StrayEndTagPolicy:  c.strayEndTagPolicy.toInternal(),
	}
}

// canonicalKey returns a deterministic string encoding of c, used by
// ResultCache to key cached results on the resolved configuration as
// well as the input text (grounded on prompty.cache.results.go's cache
// key, which likewise hashes more than raw input).
func (c *Config) canonicalKey() string {
	var b strings.Builder
	b.WriteString("tags=")
	names := make([]string, 0, len(c.recognizedTags))
	for name := range c.recognizedTags {
		names = append(names, c.fold(name))
	}
	sort.Strings(names)
	b.WriteString(strings.Join(names, ","))
	b.WriteString(";cs=")
	b.WriteString(boolStr(c.caseSensitiveTags))
	b.WriteString(";unknown=")
	b.WriteString(strings.TrimSpace(unknownModeName(c.unknownMode)))
	b.WriteString(";default=")
	b.WriteString(c.defaultStrategy.String())
	b.WriteString(";per=")
	perNames := make([]string, 0, len(c.perTagStrategy))
	for name := range c.perTagStrategy {
		perNames = append(perNames, c.fold(name))
	}
	sort.Strings(perNames)
	for _, name := range perNames {
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(c.perTagStrategy[name].String())
		b.WriteString(",")
	}
	b.WriteString(";trim=")
	b.WriteString(boolStr(c.trimPunctuation))
	b.WriteString(";autoany=")
	b.WriteString(boolStr(c.autocloseOnAnyTag))
	b.WriteString(";autosame=")
	b.WriteString(boolStr(c.autocloseOnSameTag))
	b.WriteString(";stray=")
	if c.strayEndTagPolicy == StrayDrop {
		b.WriteString("drop")
	} else {
		b.WriteString("passthrough")
	}
	return b.String()
}

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func unknownModeName(m UnknownMode) string {
	switch m {
	case UnknownStrip:
		return "strip"
	case UnknownPassthrough:
		return "passthrough"
	case UnknownTreatAsText:
		return "treat_as_text"
	default:
		return "unknown"
	}
}
