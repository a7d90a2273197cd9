package kindaxml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePresetYAML = `
recognized_tags:
  - cite
  - note
case_sensitive_tags: false
unknown_mode: passthrough
default_strategy: forward_until_tag
tag_strategies:
  cite: retro_line
trim_punctuation: true
autoclose_on_any_tag: true
stray_end_tag_policy: passthrough
`

func TestParseConfigPreset_BuildsMatchingConfig(t *testing.T) {
	cfg, err := ParseConfigPreset([]byte(samplePresetYAML))
	require.NoError(t, err)
	assert.Equal(t, UnknownPassthrough, cfg.unknownMode)
	assert.Equal(t, StrategyForwardUntilTag, cfg.defaultStrategy)
	assert.Equal(t, StrategyRetroLine, cfg.perTagStrategy["cite"])
	assert.Equal(t, StrayPassthrough, cfg.strayEndTagPolicy)
	assert.True(t, cfg.recognizedTags["cite"])
	assert.True(t, cfg.recognizedTags["note"])
}

func TestParseConfigPreset_UnknownStrategyNameFails(t *testing.T) {
	_, err := ParseConfigPreset([]byte("default_strategy: not_a_real_strategy\n"))
	assert.Error(t, err)
}

func TestParseConfigPreset_UnknownModeNameFails(t *testing.T) {
	_, err := ParseConfigPreset([]byte("unknown_mode: bogus\n"))
	assert.Error(t, err)
}

func TestParseConfigPreset_UnknownStrayPolicyNameFails(t *testing.T) {
	_, err := ParseConfigPreset([]byte("stray_end_tag_policy: bogus\n"))
	assert.Error(t, err)
}

func TestParseConfigPreset_InvalidYAMLFails(t *testing.T) {
	_, err := ParseConfigPreset([]byte("not: [valid: yaml"))
	assert.Error(t, err)
}

func TestLoadConfigPreset_ReadsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePresetYAML), 0644))

	cfg, err := LoadConfigPreset(path)
	require.NoError(t, err)
	assert.Equal(t, UnknownPassthrough, cfg.unknownMode)
}

func TestLoadConfigPreset_MissingFileFails(t *testing.T) {
	_, err := LoadConfigPreset("/nonexistent/path/preset.yaml")
	assert.Error(t, err)
}
