// Package tokenizer provides the Persian word tokenizer and lemmatizer that
// accompany the normalizer. Both follow the same verb-prefix policy: with
// verb parts not joined, the imperfective prefix stays a separate part of
// the word (می‌روم) instead of being fused with the stem.
package tokenizer

import "strings"

// Config configures a WordTokenizer.
type Config struct {
	// JoinVerbParts fuses compound verb forms such as "خواهد رفت" into a
	// single "_"-joined token.
	JoinVerbParts bool
}

// beforeVerbs are future-tense auxiliaries that precede the verb stem.
var beforeVerbs = map[string]struct{}{
	"خواهم": {}, "خواهی": {}, "خواهد": {}, "خواهیم": {}, "خواهید": {}, "خواهند": {},
	"نخواهم": {}, "نخواهی": {}, "نخواهد": {}, "نخواهیم": {}, "نخواهید": {}, "نخواهند": {},
}

// afterVerbs are auxiliaries that follow a past participle.
var afterVerbs = map[string]struct{}{
	"ام": {}, "ای": {}, "است": {}, "ایم": {}, "اید": {}, "اند": {},
	"بودم": {}, "بودی": {}, "بود": {}, "بودیم": {}, "بودید": {}, "بودند": {},
	"باشم": {}, "باشی": {}, "باشد": {}, "باشیم": {}, "باشید": {}, "باشند": {},
	"شدم": {}, "شدی": {}, "شد": {}, "شدیم": {}, "شدید": {}, "شدند": {},
	"شوم": {}, "شوی": {}, "شود": {}, "شویم": {}, "شوید": {}, "شوند": {},
	"شده": {}, "نشده": {},
}

// WordTokenizer splits Persian text into word tokens.
type WordTokenizer struct {
	joinVerbParts bool
}

// NewWordTokenizer creates a tokenizer with the given policy.
func NewWordTokenizer(cfg Config) *WordTokenizer {
	return &WordTokenizer{joinVerbParts: cfg.JoinVerbParts}
}

// JoinVerbParts reports whether compound verb forms are fused.
func (t *WordTokenizer) JoinVerbParts() bool {
	return t.joinVerbParts
}

// Tokenize returns the word tokens of text in order.
func (t *WordTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, raw := range SplitWords(text) {
		if raw.Type != TokenWord {
			continue
		}
		word := strings.Trim(raw.Text, string(ZWNJ))
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}

	if t.joinVerbParts {
		return joinVerbParts(tokens)
	}
	return tokens
}

// joinVerbParts fuses auxiliaries with the verb they belong to, scanning
// from the end so chains like "خواهد رفته شد" collapse into one token.
func joinVerbParts(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if n := len(result); n > 0 {
			head := result[n-1]
			_, before := beforeVerbs[token]
			_, after := afterVerbs[head]
			if before || (after && strings.HasSuffix(token, "ه")) {
				result[n-1] = token + "_" + head
				continue
			}
		}
		result = append(result, token)
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// isAuxiliary reports whether word is a known verb auxiliary.
func isAuxiliary(word string) bool {
	if _, ok := beforeVerbs[word]; ok {
		return true
	}
	_, ok := afterVerbs[word]
	return ok
}
