package main

// Command names
const (
	CmdNameParse           = "parse"
	CmdNameValidateConfig  = "validate-config"
	CmdNameVersion         = "version"
	CmdNameHelp            = "help"
)

// Flag names - long form
const (
	FlagInput   = "input"
	FlagConfig  = "config"
	FlagOutput  = "output"
	FlagFormat  = "format"
	FlagQuiet   = "quiet"
)

// Flag names - short form
const (
	FlagInputShort  = "i"
	FlagConfigShort = "c"
	FlagOutputShort = "o"
	FlagFormatShort = "F"
	FlagQuietShort  = "q"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText    = "text"
	OutputFormatJSON    = "json"
	OutputFormatCompact = "compact"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - every CLI-surfaced message is a named constant.
const (
	ErrMsgMissingInput      = "input source required"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgLoadConfigFailed  = "failed to load config preset"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgUnknownCommand    = "unknown command"
)

// Help text templates
const (
	HelpMainUsage = `kindaxml - tolerant recovery parser for LLM-emitted annotation markup

Usage:
    kindaxml <command> [options]

Commands:
    parse             Parse input text and print its annotations
    validate-config   Validate a YAML config preset without parsing anything
    version           Show version information
    help              Show help for a command

Use "kindaxml help <command>" for more information about a command.`

	HelpParseUsage = `Parse input text and print its annotations

Usage:
    kindaxml parse [options]

Options:
    -i, --input <file>    Input file (use "-" for stdin, default: stdin)
    -c, --config <file>   YAML config preset (default: built-in defaults)
    -o, --output <file>   Output file (default: stdout)
    -F, --format <format> Output format: text, json, compact (default: text)
    -q, --quiet           Suppress the status line printed after writing to a file

Examples:
    kindaxml parse -i doc.txt -c preset.yaml
    cat doc.txt | kindaxml parse -F json`

	HelpValidateConfigUsage = `Validate a YAML config preset without parsing anything

Usage:
    kindaxml validate-config [options]

Options:
    -c, --config <file>   YAML config preset (use "-" for stdin)

Examples:
    kindaxml validate-config -c preset.yaml
    cat preset.yaml | kindaxml validate-config -c -`

	HelpVersionUsage = `Show version information

Usage:
    kindaxml version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    kindaxml help [command]

Commands:
    parse             Show help for parse command
    validate-config   Show help for validate-config command
    version           Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "kindaxml version %s\nCommit: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
