// Package normalizer rewrites raw Persian text into a canonical form for
// tokenization, lemmatization and indexing.
//
// A Normalizer runs a fixed chain of stages, each enabled by its own
// option. Letterform and digit canonicalization always runs first. A
// Normalizer is immutable after construction and safe for concurrent use.
package normalizer

import (
	"strings"

	"github.com/kerem-kaynak/persian-normalizer/pkg/tokenizer"
)

// Normalizer applies the Persian normalization pipeline.
type Normalizer struct {
	cfg        Config
	rules      *rules
	tokenizer  *tokenizer.WordTokenizer
	lemmatizer *tokenizer.Lemmatizer
}

// New creates a normalizer with every stage enabled, then applies opts.
func New(opts ...Option) *Normalizer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a normalizer from an explicit configuration.
func NewWithConfig(cfg Config) *Normalizer {
	tok := cfg.Tokenizer
	if tok == nil {
		tok = tokenizer.NewWordTokenizer(tokenizer.Config{JoinVerbParts: false})
	}
	lem := cfg.Lemmatizer
	if lem == nil {
		lem = tokenizer.NewLemmatizer(nil, tokenizer.LemmatizerConfig{JoinedVerbParts: false})
	}
	cfg.Tokenizer, cfg.Lemmatizer = nil, nil

	return &Normalizer{
		cfg:        cfg,
		rules:      newRules(),
		tokenizer:  tok,
		lemmatizer: lem,
	}
}

// Normalize runs the pipeline over text and trims surrounding whitespace.
func (n *Normalizer) Normalize(text string) string {
	r := n.rules
	text = r.canonicalize(text)

	if n.cfg.UnicodesReplacement {
		text = r.replaceUnicodes(text)
	}
	if n.cfg.PersianStyle {
		text = r.persianStyle(text)
	}
	if n.cfg.PersianNumbers {
		text = r.convertNumbers(text)
	}
	if n.cfg.RemoveDiacritics {
		text = r.removeDiacritics(text)
	}
	if n.cfg.RemoveSpecialsChars {
		text = r.removeSpecialChars(text)
	}
	if n.cfg.CorrectSpacing {
		text = r.correctSpacing(text)
	}
	if n.cfg.DecreaseRepeatedChars {
		text = decreaseRepeatedChars(text)
	}
	if n.cfg.SeperateMi {
		text = separateMi(text)
	}

	return strings.TrimFunc(text, isSpace)
}

// NormalizeAll normalizes each text in order.
func (n *Normalizer) NormalizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = n.Normalize(text)
	}
	return out
}

// Config returns the stage configuration without collaborators.
func (n *Normalizer) Config() Config {
	return n.cfg
}

// Options returns the stage flags keyed by option name.
// The map is a copy; changing it does not affect the normalizer.
func (n *Normalizer) Options() map[string]bool {
	return n.cfg.options()
}

// Tokenizer returns the word tokenizer held for callers.
// Normalize never uses it.
func (n *Normalizer) Tokenizer() *tokenizer.WordTokenizer {
	return n.tokenizer
}

// Lemmatizer returns the lemmatizer held for callers.
// Normalize never uses it.
func (n *Normalizer) Lemmatizer() *tokenizer.Lemmatizer {
	return n.lemmatizer
}
