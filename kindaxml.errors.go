package kindaxml

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants for configuration, preset and store errors.
const (
	ErrMsgUnknownDefaultStrategy = "unknown default recovery strategy"
	ErrMsgUnknownTagStrategy     = "unknown per-tag recovery strategy"
	ErrMsgUnknownUnknownMode     = "unknown unknown-tag mode"
	ErrMsgUnknownStrayPolicy     = "unknown stray end tag policy"
	ErrMsgEmptyTagName           = "recognized tag name cannot be empty"
	ErrMsgPresetNotFound         = "named config preset not found"
	ErrMsgPresetDecode           = "failed to decode config preset"
	ErrMsgCacheMiss              = "result not present in cache"
	ErrMsgStoreUnavailable       = "persistent store is not configured"
)

// Error code constants for categorization, mirroring the convention of
// prefixing every code with the module name (grounded on the teacher's
// PROMPTY_* codes in prompty.errors.go).
const (
	ErrCodeConfig = "KINDAXML_CONFIG"
	ErrCodePreset = "KINDAXML_PRESET"
	ErrCodeCache  = "KINDAXML_CACHE"
	ErrCodeStore  = "KINDAXML_STORE"
)

// Metadata keys attached to configuration errors.
const (
	MetaKeyTag      = "tag"
	MetaKeyStrategy = "strategy"
	MetaKeyMode     = "mode"
	MetaKeyPolicy   = "policy"
	MetaKeyPreset   = "preset"
)

// NewConfigError wraps a configuration-time validation failure. Parse
// itself never returns this error type — by construction, a *Config
// only reaches Parse once NewConfig's validate step has already
// succeeded (see kindaxml.config.go).
func NewConfigError(msg, field, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(field, value)
}

// NewPresetError wraps a failure loading or decoding a named preset.
func NewPresetError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodePreset, ErrMsgPresetDecode).
		WithMetadata(MetaKeyPreset, name)
}

// NewStoreUnavailableError wraps a PostgresStore failure: opening or
// pinging the database, running a query or migration, or encoding or
// decoding a stored result.
func NewStoreUnavailableError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeStore, ErrMsgStoreUnavailable)
}
