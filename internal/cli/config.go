// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/matrix2d/matrix"
	"gopkg.in/yaml.v3"
)

// configValidate runs before any With* constructor sees a config value.
var configValidate = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("fmtverb", func(fl validator.FieldLevel) bool {
		return matrix.ValidateVerb(fl.Field().String()) == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// FormatConfig is the YAML form of the rendering policy. Unset fields keep
// the library defaults; pointer fields distinguish "absent" from "".
// Align and Width are case-insensitive.
//
//	delimiter: ","
//	row_delimiter: "\n"
//	align: left        # right | left
//	width: global      # column | global
//	pad: 1
//	verb: "%.2f"
type FormatConfig struct {
	Delimiter    *string `yaml:"delimiter"`
	RowDelimiter *string `yaml:"row_delimiter"`
	Align        string  `yaml:"align" validate:"omitempty,oneof=right left"`
	Width        string  `yaml:"width" validate:"omitempty,oneof=column global"`
	Pad          *int    `yaml:"pad" validate:"omitempty,gte=0,lte=1024"`
	Verb         string  `yaml:"verb" validate:"omitempty,fmtverb"`
}

// Validate reports the first invalid field as matrix.ErrInvalidOption.
func (c FormatConfig) Validate() error {
	if err := configValidate.Struct(c.normalized()); err != nil {
		return fmt.Errorf("format config: %w: %w", matrix.ErrInvalidOption, err)
	}

	return nil
}

// normalized folds the enum fields to the lower-case names the parsers use.
func (c FormatConfig) normalized() FormatConfig {
	c.Align = strings.ToLower(strings.TrimSpace(c.Align))
	c.Width = strings.ToLower(strings.TrimSpace(c.Width))

	return c
}

// LoadFormatConfig reads and decodes a policy file. Unknown keys are errors.
func LoadFormatConfig(path string) (FormatConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormatConfig{}, fmt.Errorf("failed to read the config file: %w", err)
	}

	return ParseFormatConfig(data)
}

// ParseFormatConfig decodes a YAML policy document. An empty document is
// the zero FormatConfig.
func ParseFormatConfig(data []byte) (FormatConfig, error) {
	var cfg FormatConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FormatConfig{}, fmt.Errorf("failed to parse the config file: %w", err)
	}

	return cfg, nil
}

// Options validates the config and converts it to format options.
// Invalid values return matrix.ErrInvalidOption rather than panicking.
func (c FormatConfig) Options() ([]matrix.FormatOption, error) {
	c = c.normalized()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []matrix.FormatOption
	if c.Delimiter != nil {
		opts = append(opts, matrix.WithDelimiter(*c.Delimiter))
	}
	if c.RowDelimiter != nil {
		opts = append(opts, matrix.WithRowDelimiter(*c.RowDelimiter))
	}
	if c.Align != "" {
		a, err := matrix.ParseAlign(c.Align)
		if err != nil {
			return nil, err
		}
		opts = append(opts, matrix.WithAlign(a))
	}
	if c.Width != "" {
		p, err := matrix.ParseWidthPolicy(c.Width)
		if err != nil {
			return nil, err
		}
		opts = append(opts, matrix.WithWidthPolicy(p))
	}
	if c.Pad != nil {
		opts = append(opts, matrix.WithPad(*c.Pad))
	}
	if c.Verb != "" {
		opts = append(opts, matrix.WithVerb(c.Verb))
	}

	return opts, nil
}
