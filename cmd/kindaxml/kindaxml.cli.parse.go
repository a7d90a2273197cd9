package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/soraxas/kindaxml"
)

type parseFlags struct {
	input   string
	config  string
	output  string
	format  string
	quiet   bool
}

func runParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	pf, err := parseParseFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	raw, err := readInput(pf.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	cfg, err := loadParseConfig(pf.config, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadConfigFailed, err)
		return ExitCodeUsageError
	}

	result := kindaxml.ParseWithConfig(string(raw), cfg)

	rendered, err := renderParseResult(result, pf.format)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeError
	}

	if err := writeOutput(pf.output, []byte(rendered), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	if !pf.quiet && pf.output != FlagDefaultOutput && pf.output != "" {
		fmt.Fprintf(stderr, "written to %s\n", pf.output)
	}

	return ExitCodeSuccess
}

func parseParseFlags(args []string) (*parseFlags, error) {
	fs := flag.NewFlagSet(CmdNameParse, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	pf := &parseFlags{}
	fs.StringVar(&pf.input, FlagInput, InputSourceStdin, "")
	fs.StringVar(&pf.input, FlagInputShort, InputSourceStdin, "")
	fs.StringVar(&pf.config, FlagConfig, "", "")
	fs.StringVar(&pf.config, FlagConfigShort, "", "")
	fs.StringVar(&pf.output, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&pf.output, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&pf.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&pf.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.BoolVar(&pf.quiet, FlagQuiet, false, "")
	fs.BoolVar(&pf.quiet, FlagQuietShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return pf, nil
}

func loadParseConfig(path string, stdin io.Reader) (*kindaxml.Config, error) {
	if path == "" {
		return kindaxml.NewConfig()
	}
	if path == InputSourceStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return kindaxml.ParseConfigPreset(data)
	}
	return kindaxml.LoadConfigPreset(path)
}

func renderParseResult(result *kindaxml.ParseResult, format string) (string, error) {
	switch format {
	case OutputFormatJSON:
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case OutputFormatCompact:
		return result.Report(kindaxml.ReportFormatCompact)
	case OutputFormatText, "":
		return result.Report(kindaxml.ReportFormatDefault)
	default:
		return "", fmt.Errorf("%s: %s", ErrMsgInvalidFormat, format)
	}
}
