package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/soraxas/kindaxml"
)

type validateConfigFlags struct {
	config string
}

func runValidateConfig(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	vf, err := parseValidateConfigFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	if vf.config == "" {
		fmt.Fprintln(stderr, ErrMsgMissingInput)
		return ExitCodeUsageError
	}

	var cfg *kindaxml.Config
	if vf.config == InputSourceStdin {
		data, readErr := io.ReadAll(stdin)
		if readErr != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, readErr)
			return ExitCodeInputError
		}
		cfg, err = kindaxml.ParseConfigPreset(data)
	} else {
		cfg, err = kindaxml.LoadConfigPreset(vf.config)
	}

	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadConfigFailed, err)
		return ExitCodeError
	}

	_ = cfg
	fmt.Fprintln(stdout, "config preset is valid")
	return ExitCodeSuccess
}

func parseValidateConfigFlags(args []string) (*validateConfigFlags, error) {
	fs := flag.NewFlagSet(CmdNameValidateConfig, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	vf := &validateConfigFlags{}
	fs.StringVar(&vf.config, FlagConfig, "", "")
	fs.StringVar(&vf.config, FlagConfigShort, "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return vf, nil
}
