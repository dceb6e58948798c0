package normalizer

// StepFunc is a single normalization stage.
type StepFunc func(string) string

var defaultRules = newRules()

// Chain composes steps into one StepFunc applied left to right.
func Chain(steps ...StepFunc) StepFunc {
	return func(s string) string {
		for _, step := range steps {
			s = step(s)
		}
		return s
	}
}

// CanonicalizeCharacters maps Arabic kaf and yeh to their Persian forms
// and ASCII digits to Persian digits.
func CanonicalizeCharacters(s string) string {
	return defaultRules.canonicalize(s)
}

// ReplaceUnicodes expands ligature and compatibility characters (﷽, ﷲ, ﷼, ﻻ)
// and puts a space before the ellipsis character.
func ReplaceUnicodes(s string) string {
	return defaultRules.replaceUnicodes(s)
}

// ApplyPersianStyle converts "quotes" to «guillemets», three dots to an
// ellipsis and the decimal point between digits to ٫.
func ApplyPersianStyle(s string) string {
	return defaultRules.persianStyle(s)
}

// ConvertNumbers converts ASCII digits to Persian digits.
func ConvertNumbers(s string) string {
	return defaultRules.convertNumbers(s)
}

// RemoveDiacritics removes fatha, damma, kasra, shadda, sukun and tanwin marks.
func RemoveDiacritics(s string) string {
	return defaultRules.removeDiacritics(s)
}

// RemoveSpecialChars removes Quranic annotation marks, Arabic presentation
// forms B, number signs and Arabic-Indic digits.
func RemoveSpecialChars(s string) string {
	return defaultRules.removeSpecialChars(s)
}

// CorrectSpacing collapses whitespace runs and spaces out punctuation.
func CorrectSpacing(s string) string {
	return defaultRules.correctSpacing(s)
}

// DecreaseRepeatedChars collapses a Persian letter repeated three or more
// times to two.
func DecreaseRepeatedChars(s string) string {
	return decreaseRepeatedChars(s)
}

// SeparateMi inserts a zero-width non-joiner after the verb prefixes می and نمی.
func SeparateMi(s string) string {
	return separateMi(s)
}
