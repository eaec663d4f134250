package config

import (
	"flag"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	apperrors "github.com/agbru/termdrills/internal/errors"
)

// fileConfig is the schema of the HCL configuration file. Every attribute
// is optional; unknown attributes are rejected by the decoder.
type fileConfig struct {
	LogLevel          *string `hcl:"log_level,optional"`
	LogFormat         *string `hcl:"log_format,optional"`
	Verbose           *bool   `hcl:"verbose,optional"`
	NoColor           *bool   `hcl:"no_color,optional"`
	Theme             *string `hcl:"theme,optional"`
	TUI               *bool   `hcl:"tui,optional"`
	MetricsFile       *string `hcl:"metrics_file,optional"`
	ProgressThreshold *int    `hcl:"progress_threshold,optional"`
}

// loadFile parses and decodes the HCL configuration file at path.
func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fc, apperrors.WrapConfigError(diags, "failed to parse config file %s", path)
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return fc, apperrors.WrapConfigError(diags, "failed to decode config file %s", path)
	}
	return fc, nil
}

// apply copies the attributes present in the file into c, skipping values
// whose flag was set on the command line.
func (fc fileConfig) apply(c *AppConfig, fs *flag.FlagSet) {
	if fc.LogLevel != nil && !isFlagSet(fs, "log-level") {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil && !isFlagSet(fs, "log-format") {
		c.LogFormat = *fc.LogFormat
	}
	if fc.Verbose != nil && !isFlagSetAny(fs, "v", "verbose") {
		c.Verbose = *fc.Verbose
	}
	if fc.NoColor != nil && !isFlagSet(fs, "no-color") {
		c.NoColor = *fc.NoColor
	}
	if fc.Theme != nil && !isFlagSet(fs, "theme") {
		c.Theme = *fc.Theme
	}
	if fc.TUI != nil && !isFlagSet(fs, "tui") {
		c.TUI = *fc.TUI
	}
	if fc.MetricsFile != nil && !isFlagSet(fs, "metrics-file") {
		c.MetricsFile = *fc.MetricsFile
	}
	if fc.ProgressThreshold != nil && !isFlagSet(fs, "progress-threshold") {
		c.ProgressThreshold = *fc.ProgressThreshold
	}
}
