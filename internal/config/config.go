// Package config loads normalizer and lemmatizer settings for the binaries
// from a TOML or YAML file, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kerem-kaynak/persian-normalizer/pkg/normalizer"
)

// EnvPrefix prefixes environment overrides, e.g. PERSIAN_NORMALIZER_SEPERATE_MI=false.
const EnvPrefix = "PERSIAN_NORMALIZER_"

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	Normalizer NormalizerSettings `toml:"normalizer" yaml:"normalizer"`
	Lemmatizer LemmatizerSettings `toml:"lemmatizer" yaml:"lemmatizer"`
}

// NormalizerSettings mirrors normalizer.Config. A nil field keeps the stage enabled.
type NormalizerSettings struct {
	CorrectSpacing        *bool `toml:"correct_spacing" yaml:"correct_spacing"`
	RemoveDiacritics      *bool `toml:"remove_diacritics" yaml:"remove_diacritics"`
	RemoveSpecialsChars   *bool `toml:"remove_specials_chars" yaml:"remove_specials_chars"`
	DecreaseRepeatedChars *bool `toml:"decrease_repeated_chars" yaml:"decrease_repeated_chars"`
	PersianStyle          *bool `toml:"persian_style" yaml:"persian_style"`
	PersianNumbers        *bool `toml:"persian_numbers" yaml:"persian_numbers"`
	UnicodesReplacement   *bool `toml:"unicodes_replacement" yaml:"unicodes_replacement"`
	SeperateMi            *bool `toml:"seperate_mi" yaml:"seperate_mi"`
}

type LemmatizerSettings struct {
	Dictionary    string `toml:"dictionary" yaml:"dictionary"`
	Cache         bool   `toml:"cache" yaml:"cache"`
	JoinVerbParts bool   `toml:"join_verb_parts" yaml:"join_verb_parts"`
}

// Load reads the config file at path and applies environment overrides.
// An empty path yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewDecoder(file).Decode(cfg); err != nil {
			return fmt.Errorf("failed to decode TOML configuration: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to decode YAML configuration: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

// applyEnv overrides normalizer options from PERSIAN_NORMALIZER_<OPTION>
// and the lemmatizer dictionary from PERSIAN_NORMALIZER_DICTIONARY.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, name := range normalizer.OptionNames {
		key := EnvPrefix + strings.ToUpper(name)
		raw, ok := lookup(key)
		if !ok || raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, raw, err)
		}
		*c.Normalizer.field(name) = &value
	}

	if dict, ok := lookup(EnvPrefix + "DICTIONARY"); ok && dict != "" {
		c.Lemmatizer.Dictionary = dict
	}
	return nil
}

// field returns the setting for the named option.
func (s *NormalizerSettings) field(name string) **bool {
	switch name {
	case normalizer.OptCorrectSpacing:
		return &s.CorrectSpacing
	case normalizer.OptRemoveDiacritics:
		return &s.RemoveDiacritics
	case normalizer.OptRemoveSpecialsChars:
		return &s.RemoveSpecialsChars
	case normalizer.OptDecreaseRepeatedChars:
		return &s.DecreaseRepeatedChars
	case normalizer.OptPersianStyle:
		return &s.PersianStyle
	case normalizer.OptPersianNumbers:
		return &s.PersianNumbers
	case normalizer.OptUnicodesReplacement:
		return &s.UnicodesReplacement
	case normalizer.OptSeperateMi:
		return &s.SeperateMi
	}
	panic("config: unknown normalizer option " + name)
}

// Options returns the explicitly set options keyed by name.
func (s NormalizerSettings) Options() map[string]bool {
	opts := make(map[string]bool)
	for _, name := range normalizer.OptionNames {
		if value := *s.field(name); value != nil {
			opts[name] = *value
		}
	}
	return opts
}

// NormalizerConfig converts the settings to a normalizer.Config.
func (c *Config) NormalizerConfig() (normalizer.Config, error) {
	cfg, err := normalizer.ParseOptions(c.Normalizer.Options())
	if err != nil {
		return normalizer.Config{}, fmt.Errorf("failed to build normalizer config: %w", err)
	}
	return cfg, nil
}
