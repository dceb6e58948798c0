package tokenizer

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// getTestDictPath copies the lemma list into a temp dir so FST builds do
// not write into the repository.
func getTestDictPath(tb testing.TB) string {
	tb.Helper()

	paths := []string{
		"../../dictionaries/persian_lemmas.txt",
		"dictionaries/persian_lemmas.txt",
	}

	for _, p := range paths {
		src, err := os.Open(p)
		if err != nil {
			continue
		}
		defer src.Close()

		dst := filepath.Join(tb.TempDir(), "persian_lemmas.txt")
		out, err := os.Create(dst)
		if err != nil {
			tb.Fatalf("Failed to create test dictionary: %v", err)
		}
		defer out.Close()

		if _, err := io.Copy(out, src); err != nil {
			tb.Fatalf("Failed to copy test dictionary: %v", err)
		}
		return dst
	}

	tb.Fatal("persian_lemmas.txt not found")
	return ""
}

func TestWordTokenizer_Tokenize(t *testing.T) {
	tok := NewWordTokenizer(Config{JoinVerbParts: false})

	tests := []struct {
		input    string
		expected []string
	}{
		{"این کتاب خوب است.", []string{"این", "کتاب", "خوب", "است"}},
		{"می\u200cروم", []string{"می\u200cروم"}},
		{"«سلام»، دنیا!", []string{"سلام", "دنیا"}},
		{"سال ۱۴۰۲", []string{"سال", "۱۴۰۲"}},
		{"خواهد رفت", []string{"خواهد", "رفت"}},
		{"رفته است", []string{"رفته", "است"}},
		{"", nil},
	}

	for _, tt := range tests {
		result := tok.Tokenize(tt.input)
		if len(result) != len(tt.expected) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.input, result, tt.expected)
			continue
		}
		for i := range result {
			if result[i] != tt.expected[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
			}
		}
	}
}

func TestWordTokenizer_JoinVerbParts(t *testing.T) {
	tok := NewWordTokenizer(Config{JoinVerbParts: true})

	if !tok.JoinVerbParts() {
		t.Fatal("JoinVerbParts() = false, want true")
	}

	tests := []struct {
		input    string
		expected []string
	}{
		{"خواهد رفت", []string{"خواهد_رفت"}},
		{"رفته است", []string{"رفته_است"}},
		{"او به خانه رفته بود", []string{"او", "به", "خانه", "رفته_بود"}},
		{"کتاب خوب است", []string{"کتاب", "خوب", "است"}},
		{"نخواهم گفت", []string{"نخواهم_گفت"}},
	}

	for _, tt := range tests {
		result := tok.Tokenize(tt.input)
		if len(result) != len(tt.expected) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.input, result, tt.expected)
			continue
		}
		for i := range result {
			if result[i] != tt.expected[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
			}
		}
	}
}
