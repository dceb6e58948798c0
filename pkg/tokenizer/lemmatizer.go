package tokenizer

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kljensen/snowball"
)

// CacheSize is the maximum number of entries in the lemma cache.
const CacheSize = 100_000

// LemmatizerConfig configures a Lemmatizer.
type LemmatizerConfig struct {
	// JoinedVerbParts treats input as produced by a tokenizer that fuses
	// verb parts: "_"-joined forms are resolved and a fused می prefix is
	// stripped. When false, only the ZWNJ-separated prefix is recognized.
	JoinedVerbParts bool

	// Cache memoizes lemmas in an LRU cache.
	Cache bool
}

// persianSuffixes are tried longest first. ZWNJ forms come before their
// attached forms so a stripped "ها" never leaves a trailing ZWNJ.
var persianSuffixes = []string{
	"\u200cهایی", "\u200cهای", "\u200cترین", "\u200cها", "\u200cتر", "\u200cای", "\u200cام", "\u200cاند",
	"هایی", "های", "ترین", "ها", "تر", "ان", "یی",
	"ام", "ات", "اش", "مان", "تان", "شان",
	"ی", "م", "ت", "ش",
}

// verbPrefixes in ZWNJ form; the fused form drops the ZWNJ.
var verbPrefixes = []string{"نمی\u200c", "می\u200c"}

// verbEndings are personal endings of present and past verbs.
var verbEndings = []string{"یم", "ید", "ند", "م", "ی", "د"}

// Lemmatizer reduces Persian words to dictionary lemmas.
type Lemmatizer struct {
	dict            *Dictionary
	cache           *lru.Cache[string, string]
	joinedVerbParts bool
}

// NewLemmatizer creates a lemmatizer. dict may be nil, in which case only
// unambiguous ZWNJ-attached affixes are stripped.
func NewLemmatizer(dict *Dictionary, cfg LemmatizerConfig) *Lemmatizer {
	l := &Lemmatizer{
		dict:            dict,
		joinedVerbParts: cfg.JoinedVerbParts,
	}
	if cfg.Cache {
		l.cache, _ = lru.New[string, string](CacheSize)
	}
	return l
}

// JoinedVerbParts reports whether fused verb forms are expected.
func (l *Lemmatizer) JoinedVerbParts() bool {
	return l.joinedVerbParts
}

// Lemmatize returns the lemma of word, or word itself when no rule applies.
func (l *Lemmatizer) Lemmatize(word string) string {
	key := canonicalLetters.Replace(strings.TrimSpace(word))

	if l.cache == nil {
		return l.lemmatizeUncached(key)
	}

	// LRU is thread-safe
	if lemma, ok := l.cache.Get(key); ok {
		return lemma
	}

	lemma := l.lemmatizeUncached(key)
	l.cache.Add(key, lemma)
	return lemma
}

// lemmatizeUncached performs the actual lookup without cache.
func (l *Lemmatizer) lemmatizeUncached(word string) string {
	if word == "" {
		return word
	}

	if isLatin(word) {
		return StemEnglish(word)
	}

	if strings.Contains(word, "_") {
		if !l.joinedVerbParts {
			return word
		}
		return l.lemmatizeJoined(word)
	}

	if l.dict != nil && l.dict.Contains(word) {
		return word
	}

	if stem, ok := l.stripVerbPrefix(word); ok {
		return stem
	}

	if stem, ok := l.stripSuffix(word); ok {
		return stem
	}

	return word
}

// lemmatizeJoined resolves a "_"-joined verb to its main part.
func (l *Lemmatizer) lemmatizeJoined(word string) string {
	for _, part := range strings.Split(word, "_") {
		if !isAuxiliary(part) {
			return l.lemmatizeUncached(part)
		}
	}
	return word
}

// stripVerbPrefix removes an imperfective prefix and, when a dictionary is
// present, the personal ending.
func (l *Lemmatizer) stripVerbPrefix(word string) (string, bool) {
	for _, prefix := range verbPrefixes {
		stem, ok := strings.CutPrefix(word, prefix)
		if !ok && l.joinedVerbParts {
			stem, ok = strings.CutPrefix(word, strings.TrimSuffix(prefix, string(ZWNJ)))
		}
		if !ok || runeCount(stem) < 2 {
			continue
		}

		if l.dict == nil {
			return stem, true
		}
		if l.dict.Contains(stem) {
			return stem, true
		}
		for _, ending := range verbEndings {
			base, found := strings.CutSuffix(stem, ending)
			if found && runeCount(base) >= 1 && l.dict.Contains(base) {
				return base, true
			}
		}
	}
	return "", false
}

// stripSuffix removes a plural, possessive or comparative suffix.
// Without a dictionary only ZWNJ-attached suffixes are trusted.
func (l *Lemmatizer) stripSuffix(word string) (string, bool) {
	for _, suffix := range persianSuffixes {
		stem, found := strings.CutSuffix(word, suffix)
		if !found || runeCount(stem) < 2 {
			continue
		}

		if l.dict == nil {
			if strings.HasPrefix(suffix, string(ZWNJ)) {
				return stem, true
			}
			continue
		}
		if l.dict.Contains(stem) {
			return stem, true
		}
	}
	return "", false
}

// ClearCache clears the lemma cache.
func (l *Lemmatizer) ClearCache() {
	if l.cache != nil {
		l.cache.Purge()
	}
}

// CacheSize returns the number of cached entries (0 if cache is disabled).
func (l *Lemmatizer) CacheSize() int {
	if l.cache == nil {
		return 0
	}
	return l.cache.Len()
}

// CacheEnabled returns true if caching is enabled.
func (l *Lemmatizer) CacheEnabled() bool {
	return l.cache != nil
}

// StemEnglish applies the English Snowball stemmer to Latin-script words
// found in mixed Persian text.
func StemEnglish(s string) string {
	stemmed, err := snowball.Stem(s, "english", true)
	if err != nil {
		return strings.ToLower(s)
	}
	return stemmed
}

// isLatin reports whether every letter of s is in the Latin script.
func isLatin(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.Is(unicode.Latin, r) {
				return false
			}
			hasLetter = true
		}
	}
	return hasLetter
}

func runeCount(s string) int {
	return len([]rune(s))
}
