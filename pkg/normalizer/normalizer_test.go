package normalizer

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/kerem-kaynak/persian-normalizer/pkg/tokenizer"
)

// allStagesDisabled returns a Config with every optional stage turned off.
func allStagesDisabled() Config {
	return Config{}
}

func TestNormalizer_Normalize(t *testing.T) {
	n := New()

	tests := []struct {
		input    string
		expected string
	}{
		{"این 3.5 است...", "این ۳٫۵ است …"},
		{"میروم", "می\u200cروم"},
		{"نمیدانم  چرا!!!", "نمی\u200cدانم چرا ! ! !"},
		{"سلام،خوبی؟", "سلام ، خوبی ؟"},
		{"خیلییییی خوب", "خیلیی خوب"},
		{"قیمت 12.50 ﷼ است.", "قیمت ۱۲٫۵۰ ریال است ."},
		{"\"الف\" و \"ب\"", "«الف» و «ب»"},
		{"كتاب ي 123", "کتاب ی ۱۲۳"},
		{"کِتابٌ", "کتاب"},
		{"  \t\n", ""},
		{"", ""},
	}

	for _, tt := range tests {
		result := n.Normalize(tt.input)
		if result != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizer_NoASCIIDigits(t *testing.T) {
	inputs := []string{
		"0123456789",
		"سال 1402 و 3.14",
		"a1b2c3",
	}
	asciiDigit := regexp.MustCompile(`[0-9]`)

	for _, n := range []*Normalizer{New(), New(WithPersianNumbers(false)), NewWithConfig(allStagesDisabled())} {
		for _, input := range inputs {
			result := n.Normalize(input)
			if asciiDigit.MatchString(result) {
				t.Errorf("Normalize(%q) = %q still contains ASCII digits", input, result)
			}
		}
	}
}

func TestNormalizer_Bismillah(t *testing.T) {
	n := New()

	result := n.Normalize("﷽ متن")
	if !strings.Contains(result, "بسم الله الرحمن الرحیم") {
		t.Errorf("Normalize(%q) = %q, missing expanded phrase", "﷽ متن", result)
	}
	if strings.ContainsRune(result, '﷽') {
		t.Errorf("Normalize(%q) = %q still contains the ligature", "﷽ متن", result)
	}
}

func TestNormalizer_NoWhitespaceRuns(t *testing.T) {
	n := New(WithCorrectSpacing(true))
	run := regexp.MustCompile(`[\s\p{Z}]{2,}`)

	inputs := []string{
		"الف    ب",
		"الف\t\t\nب",
		"الف  ب  ج",
	}
	for _, input := range inputs {
		result := n.Normalize(input)
		if run.MatchString(result) {
			t.Errorf("Normalize(%q) = %q contains a whitespace run", input, result)
		}
	}
}

func TestNormalizer_RepeatedChars(t *testing.T) {
	n := New(WithDecreaseRepeatedChars(true))

	result := n.Normalize("سسسس")
	if result != "سس" {
		t.Errorf("Normalize(%q) = %q, want %q", "سسسس", result, "سس")
	}
}

func TestNormalizer_AllStagesDisabled(t *testing.T) {
	n := NewWithConfig(allStagesDisabled())

	input := "كتاب  \"x\" 12.5 ... کِتاب سسسس میروم ﷽"
	expected := "کتاب  \"x\" ۱۲.۵ ... کِتاب سسسس میروم ﷽"

	result := n.Normalize(input)
	if result != expected {
		t.Errorf("Normalize(%q) = %q, want %q", input, result, expected)
	}
}

func TestNormalizer_EachStageToggles(t *testing.T) {
	tests := []struct {
		name     string
		opt      Option
		input    string
		enabled  string
		disabled string
	}{
		{OptUnicodesReplacement, WithUnicodesReplacement(false), "ﷲ", "الله", "ﷲ"},
		{OptPersianStyle, WithPersianStyle(false), "\"متن\"", "«متن»", "\"متن\""},
		{OptRemoveDiacritics, WithRemoveDiacritics(false), "کِتاب", "کتاب", "کِتاب"},
		{OptRemoveSpecialsChars, WithRemoveSpecialsChars(false), "الف\u0610", "الف", "الف\u0610"},
		{OptCorrectSpacing, WithCorrectSpacing(false), "الف  ب", "الف ب", "الف  ب"},
		{OptDecreaseRepeatedChars, WithDecreaseRepeatedChars(false), "ببببب", "بب", "ببببب"},
		{OptSeperateMi, WithSeperateMi(false), "میروم", "می\u200cروم", "میروم"},
	}

	for _, tt := range tests {
		if result := New().Normalize(tt.input); result != tt.enabled {
			t.Errorf("%s enabled: Normalize(%q) = %q, want %q", tt.name, tt.input, result, tt.enabled)
		}
		if result := New(tt.opt).Normalize(tt.input); result != tt.disabled {
			t.Errorf("%s disabled: Normalize(%q) = %q, want %q", tt.name, tt.input, result, tt.disabled)
		}
	}
}

func TestNormalizer_PersianNumbersToggleIsRedundant(t *testing.T) {
	input := "عدد 42"
	on := New().Normalize(input)
	off := New(WithPersianNumbers(false)).Normalize(input)

	if on != off {
		t.Errorf("persian_numbers changed output: on %q, off %q", on, off)
	}
}

func TestNormalizer_NearIdempotent(t *testing.T) {
	n := New()

	inputs := []string{
		"این 3.5 است...",
		"میروم",
		"سلام،خوبی؟",
		"hi ﷲ ﷼ ﻻ…",
		"\"الف\" و \"ب\"",
		"نمیدانم  چرا!!!",
		"خیلییییی خوب",
		"قیمت 12.50 ﷼ است.",
	}

	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not stable for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizer_Options(t *testing.T) {
	n := New(WithSeperateMi(false))

	opts := n.Options()
	if len(opts) != len(OptionNames) {
		t.Fatalf("Options() has %d entries, want %d", len(opts), len(OptionNames))
	}
	for _, name := range OptionNames {
		want := name != OptSeperateMi
		if opts[name] != want {
			t.Errorf("Options()[%q] = %v, want %v", name, opts[name], want)
		}
	}

	// Mutating the returned map must not leak into the normalizer.
	opts[OptCorrectSpacing] = false
	if !n.Options()[OptCorrectSpacing] {
		t.Error("Options() returned a shared map")
	}
}

func TestParseOptions(t *testing.T) {
	cfg, err := ParseOptions(map[string]bool{
		OptPersianStyle: false,
		OptSeperateMi:   false,
	})
	if err != nil {
		t.Fatalf("ParseOptions returned error: %v", err)
	}
	if cfg.PersianStyle || cfg.SeperateMi {
		t.Errorf("ParseOptions did not disable options: %+v", cfg)
	}
	if !cfg.CorrectSpacing || !cfg.RemoveDiacritics || !cfg.PersianNumbers {
		t.Errorf("ParseOptions did not default missing options to true: %+v", cfg)
	}

	_, err = ParseOptions(map[string]bool{"separate_mi": true})
	if !errors.Is(err, ErrUnknownOption) {
		t.Errorf("ParseOptions with unknown name: err = %v, want ErrUnknownOption", err)
	}
}

func TestNormalizer_Collaborators(t *testing.T) {
	n := New()

	if n.Tokenizer() == nil || n.Lemmatizer() == nil {
		t.Fatal("default collaborators not built")
	}
	if n.Tokenizer().JoinVerbParts() {
		t.Error("default tokenizer joins verb parts")
	}
	if n.Lemmatizer().JoinedVerbParts() {
		t.Error("default lemmatizer expects joined verb parts")
	}

	// The tokenizer keeps a separated mi prefix inside the word.
	tokens := n.Tokenizer().Tokenize(n.Normalize("میروم"))
	if len(tokens) != 1 || tokens[0] != "می\u200cروم" {
		t.Errorf("Tokenize(Normalize(%q)) = %q, want [%q]", "میروم", tokens, "می\u200cروم")
	}

	custom := tokenizer.NewWordTokenizer(tokenizer.Config{JoinVerbParts: true})
	n = New(WithTokenizer(custom))
	if n.Tokenizer() != custom {
		t.Error("WithTokenizer was ignored")
	}
}

func TestNormalizer_NormalizeAll(t *testing.T) {
	n := New()

	result := n.NormalizeAll([]string{"میروم", "سسسس"})
	expected := []string{"می\u200cروم", "سس"}
	if len(result) != len(expected) {
		t.Fatalf("NormalizeAll returned %d texts, want %d", len(result), len(expected))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("NormalizeAll[%d] = %q, want %q", i, result[i], expected[i])
		}
	}
}

func TestNormalizer_ConcurrentUse(t *testing.T) {
	n := New()
	want := n.Normalize("این 3.5 است...")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := n.Normalize("این 3.5 است..."); got != want {
					t.Errorf("concurrent Normalize = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
