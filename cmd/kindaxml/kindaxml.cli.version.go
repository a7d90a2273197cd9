package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

type versionConfig struct {
	format string
}

type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

type versionInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

// versionsYAML mirrors a project versions.yaml file, if one is present
// in the working directory or one of its two parent directories —
// grounded on the teacher's equivalent (its own
// cmd/prompty/prompty.cli.version.go).
type versionsYAML struct {
	Project struct {
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	v := getVersionInfo()
	if cfg.format == OutputFormatJSON {
		return outputVersionJSON(v, stdout)
	}
	return outputVersionText(v, stdout)
}

func parseVersionFlags(args []string) (*versionConfig, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &versionConfig{}
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	return cfg, nil
}

func getVersionInfo() *versionInfo {
	v := &versionInfo{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	for _, path := range []string{"versions.yaml", "../versions.yaml", "../../versions.yaml"} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var vy versionsYAML
		if err := yaml.Unmarshal(data, &vy); err != nil {
			continue
		}
		v.Version = vy.Project.Version
		v.Commit = vy.Git.Commit
		if vy.Build.Time != "" {
			v.BuildTime = vy.Build.Time
		}
		if vy.Build.GoVersion != "" {
			v.GoVersion = vy.Build.GoVersion
		}
		break
	}
	return v
}

func outputVersionText(v *versionInfo, stdout io.Writer) int {
	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline, v.Version, v.Commit, v.BuildTime, v.GoVersion)
	return ExitCodeSuccess
}

func outputVersionJSON(v *versionInfo, stdout io.Writer) int {
	out := versionOutput{Version: v.Version, Commit: v.Commit, BuildTime: v.BuildTime, GoVersion: v.GoVersion}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(stdout, string(b))
	return ExitCodeSuccess
}
