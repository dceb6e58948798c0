package normalizer

import (
	"errors"
	"fmt"

	"github.com/kerem-kaynak/persian-normalizer/pkg/tokenizer"
)

// Option names, as used in configuration files and Options().
const (
	OptCorrectSpacing        = "correct_spacing"
	OptRemoveDiacritics      = "remove_diacritics"
	OptRemoveSpecialsChars   = "remove_specials_chars"
	OptDecreaseRepeatedChars = "decrease_repeated_chars"
	OptPersianStyle          = "persian_style"
	OptPersianNumbers        = "persian_numbers"
	OptUnicodesReplacement   = "unicodes_replacement"
	OptSeperateMi            = "seperate_mi"
)

// OptionNames lists every recognized option in canonical order.
var OptionNames = []string{
	OptCorrectSpacing,
	OptRemoveDiacritics,
	OptRemoveSpecialsChars,
	OptDecreaseRepeatedChars,
	OptPersianStyle,
	OptPersianNumbers,
	OptUnicodesReplacement,
	OptSeperateMi,
}

// ErrUnknownOption is returned by ParseOptions for unrecognized option names.
var ErrUnknownOption = errors.New("unknown normalizer option")

// Config enables or disables each pipeline stage.
// Character canonicalization is not configurable and always runs.
type Config struct {
	CorrectSpacing        bool
	RemoveDiacritics      bool
	RemoveSpecialsChars   bool
	DecreaseRepeatedChars bool
	PersianStyle          bool
	PersianNumbers        bool
	UnicodesReplacement   bool
	SeperateMi            bool

	// Collaborators held for callers. Nil means a default is built with
	// verb parts kept separate.
	Tokenizer  *tokenizer.WordTokenizer
	Lemmatizer *tokenizer.Lemmatizer
}

// DefaultConfig returns a Config with every stage enabled.
func DefaultConfig() Config {
	return Config{
		CorrectSpacing:        true,
		RemoveDiacritics:      true,
		RemoveSpecialsChars:   true,
		DecreaseRepeatedChars: true,
		PersianStyle:          true,
		PersianNumbers:        true,
		UnicodesReplacement:   true,
		SeperateMi:            true,
	}
}

// ParseOptions builds a Config from a name to value mapping.
// Missing options stay enabled.
func ParseOptions(values map[string]bool) (Config, error) {
	cfg := DefaultConfig()
	for name, enabled := range values {
		field := cfg.field(name)
		if field == nil {
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownOption, name)
		}
		*field = enabled
	}
	return cfg, nil
}

// field returns a pointer to the flag for the named option, or nil.
func (c *Config) field(name string) *bool {
	switch name {
	case OptCorrectSpacing:
		return &c.CorrectSpacing
	case OptRemoveDiacritics:
		return &c.RemoveDiacritics
	case OptRemoveSpecialsChars:
		return &c.RemoveSpecialsChars
	case OptDecreaseRepeatedChars:
		return &c.DecreaseRepeatedChars
	case OptPersianStyle:
		return &c.PersianStyle
	case OptPersianNumbers:
		return &c.PersianNumbers
	case OptUnicodesReplacement:
		return &c.UnicodesReplacement
	case OptSeperateMi:
		return &c.SeperateMi
	}
	return nil
}

// options returns the flags keyed by option name.
func (c Config) options() map[string]bool {
	opts := make(map[string]bool, len(OptionNames))
	for _, name := range OptionNames {
		opts[name] = *c.field(name)
	}
	return opts
}

// Option configures a Normalizer built with New.
type Option func(*Config)

// WithCorrectSpacing toggles whitespace and punctuation spacing correction.
func WithCorrectSpacing(enabled bool) Option {
	return func(c *Config) { c.CorrectSpacing = enabled }
}

// WithRemoveDiacritics toggles removal of Arabic diacritics.
func WithRemoveDiacritics(enabled bool) Option {
	return func(c *Config) { c.RemoveDiacritics = enabled }
}

// WithRemoveSpecialsChars toggles removal of annotation marks and presentation forms.
func WithRemoveSpecialsChars(enabled bool) Option {
	return func(c *Config) { c.RemoveSpecialsChars = enabled }
}

// WithDecreaseRepeatedChars toggles collapsing of letters repeated three or more times.
func WithDecreaseRepeatedChars(enabled bool) Option {
	return func(c *Config) { c.DecreaseRepeatedChars = enabled }
}

// WithPersianStyle toggles guillemets, ellipsis and decimal separator styling.
func WithPersianStyle(enabled bool) Option {
	return func(c *Config) { c.PersianStyle = enabled }
}

// WithPersianNumbers toggles ASCII to Persian digit conversion.
func WithPersianNumbers(enabled bool) Option {
	return func(c *Config) { c.PersianNumbers = enabled }
}

// WithUnicodesReplacement toggles expansion of ligature characters.
func WithUnicodesReplacement(enabled bool) Option {
	return func(c *Config) { c.UnicodesReplacement = enabled }
}

// WithSeperateMi toggles insertion of a ZWNJ after the "mi" and "nemi" prefixes.
func WithSeperateMi(enabled bool) Option {
	return func(c *Config) { c.SeperateMi = enabled }
}

// WithTokenizer sets the word tokenizer held by the normalizer.
func WithTokenizer(t *tokenizer.WordTokenizer) Option {
	return func(c *Config) { c.Tokenizer = t }
}

// WithLemmatizer sets the lemmatizer held by the normalizer.
func WithLemmatizer(l *tokenizer.Lemmatizer) Option {
	return func(c *Config) { c.Lemmatizer = l }
}
