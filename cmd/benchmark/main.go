package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kerem-kaynak/persian-normalizer/pkg/normalizer"
	"github.com/kerem-kaynak/persian-normalizer/pkg/tokenizer"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62
	nameWidth  = 28

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	dictPath := "dictionaries/persian_lemmas.txt"
	if len(os.Args) > 1 {
		dictPath = os.Args[1]
	}

	fmt.Print("Loading Persian lemma dictionary... ")
	start := time.Now()
	dict, err := tokenizer.NewDictionary(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer dict.Close()
	fmt.Printf("done (%d words in %v)\n", dict.WordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println()

	// Test data
	word := "میروم"
	sentence := "این کتاب\u200cها را در سال 1402 خریدم... قیمتش 12.5 ﷼ بود!!"
	noisy := "  سلامممممم،  \"دوست\"   عزیزِ مَن؛ نمیدانم   چرا…  "

	norm := normalizer.New()
	tok := norm.Tokenizer()
	lem := tokenizer.NewLemmatizer(dict, tokenizer.LemmatizerConfig{Cache: true})

	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Single word", func() { norm.Normalize(word) })
	bench("Sentence", func() { norm.Normalize(sentence) })
	bench("Noisy sentence", func() { norm.Normalize(noisy) })
	printFooter()
	fmt.Println()

	printHeader("NORMALIZER STAGES BREAKDOWN")
	bench("Canonicalize characters", func() { normalizer.CanonicalizeCharacters(sentence) })
	bench("Replace unicodes", func() { normalizer.ReplaceUnicodes(sentence) })
	bench("Persian style", func() { normalizer.ApplyPersianStyle(sentence) })
	bench("Convert numbers", func() { normalizer.ConvertNumbers(sentence) })
	bench("Remove diacritics", func() { normalizer.RemoveDiacritics(noisy) })
	bench("Remove special chars", func() { normalizer.RemoveSpecialChars(noisy) })
	bench("Correct spacing", func() { normalizer.CorrectSpacing(noisy) })
	bench("Decrease repeated chars", func() { normalizer.DecreaseRepeatedChars(noisy) })
	bench("Separate mi", func() { normalizer.SeparateMi(noisy) })
	printFooter()
	fmt.Println()

	normalized := norm.Normalize(sentence)
	printHeader("COLLABORATORS")
	bench("Tokenize", func() { tok.Tokenize(normalized) })
	bench("Dictionary lookup", func() { dict.Contains("کتاب") })
	lem.Lemmatize("کتاب\u200cها")
	bench("Lemmatize (cache hit)", func() { lem.Lemmatize("کتاب\u200cها") })
	bench("Lemmatize (cache miss)", func() {
		lem.ClearCache()
		lem.Lemmatize("کتاب\u200cها")
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	if len(name) > nameWidth {
		name = name[:nameWidth]
	}

	plain := fmt.Sprintf("  %-*s %10.0f ops/s %8.0f ns", nameWidth, name, opsPerSec, nsPerOp)
	colored := fmt.Sprintf("  %-*s %s%10.0f%s ops/s %s%8.0f%s ns",
		nameWidth, name,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)
	if pad := boxWidth - len(plain); pad > 0 {
		colored += strings.Repeat(" ", pad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	title = "  " + title
	if pad := boxWidth - len(title); pad > 0 {
		title += strings.Repeat(" ", pad)
	}
	fmt.Println(colorDim + "│" + colorReset + colorCyan + title + colorReset + colorDim + "│" + colorReset)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}
