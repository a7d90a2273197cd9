package kindaxml

import (
	"os"

	"gopkg.in/yaml.v3"
)

// configPreset is the YAML-serializable form of a Config, grounded on
// the teacher's YAML-tagged Prompt struct (prompty.prompt.go) — a flat,
// yaml-tagged mirror of the in-memory type that toConfig turns into
// Options.
type configPreset struct {
	RecognizedTags     []string          `yaml:"recognized_tags"`
	CaseSensitiveTags  *bool             `yaml:"case_sensitive_tags,omitempty"`
	UnknownMode        string            `yaml:"unknown_mode,omitempty"`
	DefaultStrategy    string            `yaml:"default_strategy,omitempty"`
	TagStrategies      map[string]string `yaml:"tag_strategies,omitempty"`
	TrimPunctuation    *bool             `yaml:"trim_punctuation,omitempty"`
	AutocloseOnAnyTag  *bool             `yaml:"autoclose_on_any_tag,omitempty"`
	AutocloseOnSameTag *bool             `yaml:"autoclose_on_same_tag,omitempty"`
	StrayEndTagPolicy  string            `yaml:"stray_end_tag_policy,omitempty"`
}

var strategyByName = map[string]Strategy{
	"retro_line":            StrategyRetroLine,
	"forward_until_tag":     StrategyForwardUntilTag,
	"forward_until_newline": StrategyForwardUntilNewline,
	"forward_next_token":    StrategyForwardNextToken,
	"noop":                  StrategyNoop,
}

var unknownModeByName = map[string]UnknownMode{
	"strip":         UnknownStrip,
	"passthrough":   UnknownPassthrough,
	"treat_as_text": UnknownTreatAsText,
}

var strayPolicyByName = map[string]StrayEndTagPolicy{
	"drop":        StrayDrop,
	"passthrough": StrayPassthrough,
}

// LoadConfigPreset reads a YAML preset from path and builds a Config
// from it.
func LoadConfigPreset(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewPresetError(path, err)
	}
	return ParseConfigPreset(data)
}

// ParseConfigPreset builds a Config from YAML preset bytes.
func ParseConfigPreset(data []byte) (*Config, error) {
	var preset configPreset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, NewPresetError("<bytes>", err)
	}
	return preset.toConfig()
}

func (p configPreset) toConfig() (*Config, error) {
	var opts []Option
	if len(p.RecognizedTags) > 0 {
		opts = append(opts, WithRecognizedTags(p.RecognizedTags...))
	}
	if p.CaseSensitiveTags != nil {
		opts = append(opts, WithCaseSensitiveTags(*p.CaseSensitiveTags))
	}

	if p.UnknownMode != "" {
		mode, ok := unknownModeByName[p.UnknownMode]
		if !ok {
			return nil, NewConfigError(ErrMsgUnknownUnknownMode, MetaKeyMode, p.UnknownMode)
		}
		opts = append(opts, WithUnknownMode(mode))
	}

	if p.DefaultStrategy != "" {
		s, ok := strategyByName[p.DefaultStrategy]
		if !ok {
			return nil, NewConfigError(ErrMsgUnknownDefaultStrategy, MetaKeyStrategy, p.DefaultStrategy)
		}
		opts = append(opts, WithDefaultStrategy(s))
	}
	for tag, name := range p.TagStrategies {
		s, ok := strategyByName[name]
		if !ok {
			return nil, NewConfigError(ErrMsgUnknownTagStrategy, MetaKeyTag, tag)
		}
		opts = append(opts, WithTagStrategy(tag, s))
	}

	if p.TrimPunctuation != nil {
		opts = append(opts, WithTrimPunctuation(*p.TrimPunctuation))
	}
	if p.AutocloseOnAnyTag != nil {
		opts = append(opts, WithAutocloseOnAnyTag(*p.AutocloseOnAnyTag))
	}
	if p.AutocloseOnSameTag != nil {
		opts = append(opts, WithAutocloseOnSameTag(*p.AutocloseOnSameTag))
	}

	if p.StrayEndTagPolicy != "" {
		policy, ok := strayPolicyByName[p.StrayEndTagPolicy]
		if !ok {
			return nil, NewConfigError(ErrMsgUnknownStrayPolicy, MetaKeyPolicy, p.StrayEndTagPolicy)
		}
		opts = append(opts, WithStrayEndTagPolicy(policy))
	}

	return NewConfig(opts...)
}
