package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	LayoutConfig struct {
		FontSize         float64 `yaml:"font_size" validate:"gt=0"`
		PageWidth        float64 `yaml:"page_width" validate:"gt=0"`
		PageHeight       float64 `yaml:"page_height" validate:"gt=0"`
		LineHeightFactor float64 `yaml:"line_height_factor" validate:"gt=0"`
		CharWidthFactor  float64 `yaml:"char_width_factor" validate:"gt=0"`
	}

	FontsConfig struct {
		Generic  string            `yaml:"generic" validate:"omitempty,oneof=serif sans-serif monospace cursive fantasy system-ui"`
		Families map[string]string `yaml:"families" validate:"dive,keys,required,endkeys,required"`
	}

	OutputConfig struct {
		Format                OutputFmt `yaml:"format" validate:"gte=0"`
		OutputNameTemplate    string    `yaml:"output_name_template"`
		FileNameTransliterate bool      `yaml:"file_name_transliterate"`
		Title                 string    `yaml:"title"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Layout    LayoutConfig   `yaml:"layout"`
		Fonts     FontsConfig    `yaml:"fonts"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// checkLayout makes sure at least one character fits on a page line.
func checkLayout(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	l := cfg.Layout
	if l.FontSize > 0 && l.CharWidthFactor > 0 && l.PageWidth < l.FontSize*l.CharWidthFactor {
		sl.ReportError(l.PageWidth, "PageWidth", "page_width", "gtefield", "FontSize*CharWidthFactor")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkLayout)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
