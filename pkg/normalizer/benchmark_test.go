package normalizer

import (
	"testing"
)

const benchSentence = "این کتاب\u200cها را در سال 1402 خریدم... قیمتش 12.5 ﷼ بود!!"

func BenchmarkNormalizer_FullPipeline(b *testing.B) {
	n := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Normalize(benchSentence)
	}
}

func BenchmarkNormalizer_AllStagesDisabled(b *testing.B) {
	n := NewWithConfig(Config{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Normalize(benchSentence)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New()
	}
}

func BenchmarkCorrectSpacing(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CorrectSpacing(benchSentence)
	}
}

func BenchmarkSeparateMi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SeparateMi("میروم و نمیدانم")
	}
}
