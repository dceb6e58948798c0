package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	zwnj = "\u200c"

	// Persian letter range used for repeated characters and the mi prefix.
	letterFirst = 'آ'
	letterLast  = 'ی'

	// whitespace matches what unicode.IsSpace accepts plus the
	// information separators U+001C to U+001F.
	whitespace = `\t\n\v\f\r \x{1C}-\x{1F}\x{85}\p{Z}`

	punctuation = `،؛:؟!.`
)

// canonicalChars maps Arabic letterforms and ASCII digits to their Persian forms.
var canonicalChars = map[rune]rune{
	'ك': 'ک',
	'ي': 'ی',
	'0': '۰',
	'1': '۱',
	'2': '۲',
	'3': '۳',
	'4': '۴',
	'5': '۵',
	'6': '۶',
	'7': '۷',
	'8': '۸',
	'9': '۹',
}

// unicodeReplacements are applied in order as literal substitutions.
var unicodeReplacements = [][2]string{
	{"﷽", "بسم الله الرحمن الرحیم"},
	{"ﷲ", "الله"},
	{"﷼", "ریال"},
	{"ﻻ", "لا"},
	{"…", " …"},
}

// rules holds the translation tables and compiled patterns of the pipeline.
// It is immutable once built.
type rules struct {
	translator   transform.Transformer
	digits       transform.Transformer
	replacements [][2]string

	reQuoted      *regexp.Regexp
	reGluedDots   *regexp.Regexp
	reDots        *regexp.Regexp
	reDecimal     *regexp.Regexp
	reDiacritics  *regexp.Regexp
	reSpecials    *regexp.Regexp
	reMultiSpace  *regexp.Regexp
	rePunctBefore *regexp.Regexp
	rePunctAfter  *regexp.Regexp
}

func newRules() *rules {
	return &rules{
		translator: runes.Map(func(r rune) rune {
			if mapped, ok := canonicalChars[r]; ok {
				return mapped
			}
			return r
		}),
		digits: runes.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return '۰' + (r - '0')
			}
			return r
		}),
		replacements: unicodeReplacements,

		reQuoted:     regexp.MustCompile(`"([^"]+)"`),
		reGluedDots:  regexp.MustCompile(`([^` + whitespace + `])\.\.\.`),
		reDots:       regexp.MustCompile(`\.\.\.`),
		reDecimal:    regexp.MustCompile(`(\p{Nd})\.(\p{Nd})`),
		reDiacritics: regexp.MustCompile(`[\x{064B}-\x{0652}]`),
		reSpecials: regexp.MustCompile(
			`[\x{0610}-\x{061A}\x{06D6}-\x{06ED}\x{08D4}-\x{08FF}\x{FE70}-\x{FEFF}\x{0600}-\x{0605}\x{0660}-\x{0669}]`,
		),
		reMultiSpace:  regexp.MustCompile(`[` + whitespace + `]{2,}`),
		rePunctBefore: regexp.MustCompile(`([^` + whitespace + `])([` + punctuation + `])`),
		rePunctAfter:  regexp.MustCompile(`([` + punctuation + `])([^` + whitespace + `])`),
	}
}

func (r *rules) canonicalize(s string) string {
	result, _, _ := transform.String(r.translator, s)
	return result
}

func (r *rules) replaceUnicodes(s string) string {
	for _, pair := range r.replacements {
		s = strings.ReplaceAll(s, pair[0], pair[1])
	}
	return s
}

func (r *rules) persianStyle(s string) string {
	s = r.reQuoted.ReplaceAllString(s, "«${1}»")
	s = r.reGluedDots.ReplaceAllString(s, "${1} …")
	s = r.reDots.ReplaceAllString(s, "…")
	return r.reDecimal.ReplaceAllString(s, "${1}٫${2}")
}

func (r *rules) convertNumbers(s string) string {
	result, _, _ := transform.String(r.digits, s)
	return result
}

func (r *rules) removeDiacritics(s string) string {
	return r.reDiacritics.ReplaceAllString(s, "")
}

func (r *rules) removeSpecialChars(s string) string {
	return r.reSpecials.ReplaceAllString(s, "")
}

func (r *rules) correctSpacing(s string) string {
	s = r.reMultiSpace.ReplaceAllString(s, " ")
	s = r.rePunctBefore.ReplaceAllString(s, "${1} ${2}")
	return r.rePunctAfter.ReplaceAllString(s, "${1} ${2}")
}

// decreaseRepeatedChars keeps at most two consecutive copies of a Persian letter.
func decreaseRepeatedChars(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run > 2 && isPersianLetter(r) {
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// separateMi inserts a ZWNJ after "می" or "نمی" when the prefix starts a
// word and is directly followed by a Persian letter.
func separateMi(s string) string {
	text := []rune(s)
	var result strings.Builder
	result.Grow(len(s) + len(zwnj))

	for i := 0; i < len(text); {
		if i == 0 || !isWordRune(text[i-1]) {
			if n := miPrefixLen(text[i:]); n > 0 {
				result.WriteString(string(text[i : i+n]))
				result.WriteString(zwnj)
				i += n
				continue
			}
		}
		result.WriteRune(text[i])
		i++
	}
	return result.String()
}

// miPrefixLen returns the length of a "نمی" or "می" prefix at the start of
// text that is followed by a Persian letter, or 0.
func miPrefixLen(text []rune) int {
	prefix, n := text, 2
	if len(text) > 0 && text[0] == 'ن' {
		prefix, n = text[1:], 3
	}
	if len(prefix) > 2 && prefix[0] == 'م' && prefix[1] == 'ی' && isPersianLetter(prefix[2]) {
		return n
	}
	return 0
}

func isPersianLetter(r rune) bool {
	return r >= letterFirst && r <= letterLast
}

// isWordRune reports whether r is a word character for boundary detection.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// isSpace reports whether r is stripped from the ends of normalized text.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}
