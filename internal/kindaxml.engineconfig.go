package internal

import "strings"

// Strategy is the recovery behavior applied when an open tag is closed
// implicitly (by autoclose or end of input) rather than by its matching
// end tag. Grounded on spec §4.6's dispatch table.
type Strategy int

const (
	StrategyRetroLine Strategy = iota
	StrategyForwardUntilTag
	StrategyForwardUntilNewline
	StrategyForwardNextToken
	StrategyNoop
)

// UnknownMode governs how a tag whose name is not in RecognizedTags is
// handled, per spec §4.5.
type UnknownMode int

const (
	UnknownStrip UnknownMode = iota
	UnknownPassthrough
	UnknownTreatAsText
)

// StrayEndTagPolicy governs a recognized end tag with no matching open
// tag on the stack, per spec §4.7. It has no bearing on unrecognized
// stray end tags, which always dispatch via UnknownMode regardless.
type StrayEndTagPolicy int

const (
	StrayDrop StrayEndTagPolicy = iota
	StrayPassthrough
)

// EngineConfig is the fully-resolved configuration the recovery engine
// runs against, built by the root package's Config from user-facing
// options (grounded on the teacher's engineConfig feeding
// internal.LexerConfig in internal/prompty.lexer.go).
type EngineConfig struct {
	RecognizedTags     map[string]bool
	CaseSensitiveTags  bool
	UnknownMode        UnknownMode
	DefaultStrategy    Strategy
	PerTagStrategy     map[string]Strategy
	TrimPunctuation    bool
	AutocloseOnAnyTag  bool
	AutocloseOnSameTag bool
	StrayEndTagPolicy  StrayEndTagPolicy
}

func (c EngineConfig) fold(name string) string {
	if c.CaseSensitiveTags {
		return name
	}
	return strings.ToLower(name)
}

func (c EngineConfig) isRecognized(foldedName string) bool {
	return c.RecognizedTags[foldedName]
}

func (c EngineConfig) strategyFor(foldedName string) Strategy {
	if s, ok := c.PerTagStrategy[foldedName]; ok {
		return s
	}
	return c.DefaultStrategy
}
