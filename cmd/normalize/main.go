package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kerem-kaynak/persian-normalizer/internal/config"
	"github.com/kerem-kaynak/persian-normalizer/internal/logger"
	"github.com/kerem-kaynak/persian-normalizer/pkg/normalizer"
	"github.com/kerem-kaynak/persian-normalizer/pkg/tokenizer"
)

// result is printed as one JSON line per input.
type result struct {
	Normalized string   `json:"normalized"`
	Tokens     []string `json:"tokens"`
	Lemmas     []string `json:"lemmas"`
}

func main() {
	configPath := flag.String("config", "", "path to a TOML or YAML config file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: normalize [-config file] [text]")
		fmt.Fprintln(os.Stderr, "       normalize [-config file]          (interactive mode)")
	}
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using system environment")
	}

	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	norm, closeDict, err := build(cfg)
	if err != nil {
		logger.Fatal("Failed to build normalizer", err)
	}
	defer closeDict()

	logger.Debug("Normalizer ready", "options", norm.Options())

	// If text provided as argument, normalize and exit
	if flag.NArg() > 0 {
		printResult(norm, strings.Join(flag.Args(), " "))
		return
	}

	// Interactive mode
	fmt.Println("Persian Normalizer (interactive mode)")
	fmt.Println("Type a sentence, press Enter to normalize. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		printResult(norm, text)
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Failed to read input", "error", err)
	}
}

// build wires the normalizer with a tokenizer and lemmatizer that follow
// the configured verb-part policy.
func build(cfg *config.Config) (*normalizer.Normalizer, func(), error) {
	ncfg, err := cfg.NormalizerConfig()
	if err != nil {
		return nil, nil, err
	}

	var dict *tokenizer.Dictionary
	closeDict := func() {}
	if cfg.Lemmatizer.Dictionary != "" {
		dict, err = tokenizer.NewDictionary(cfg.Lemmatizer.Dictionary)
		if err != nil {
			return nil, nil, err
		}
		closeDict = func() {
			if err := dict.Close(); err != nil {
				logger.Warn("Failed to close dictionary", "error", err)
			}
		}
		logger.Info("Dictionary loaded", "path", cfg.Lemmatizer.Dictionary, "words", dict.WordCount())
	}

	ncfg.Tokenizer = tokenizer.NewWordTokenizer(tokenizer.Config{
		JoinVerbParts: cfg.Lemmatizer.JoinVerbParts,
	})
	ncfg.Lemmatizer = tokenizer.NewLemmatizer(dict, tokenizer.LemmatizerConfig{
		JoinedVerbParts: cfg.Lemmatizer.JoinVerbParts,
		Cache:           cfg.Lemmatizer.Cache,
	})

	return normalizer.NewWithConfig(ncfg), closeDict, nil
}

func printResult(norm *normalizer.Normalizer, text string) {
	normalized := norm.Normalize(text)
	tokens := norm.Tokenizer().Tokenize(normalized)

	lemmas := make([]string, len(tokens))
	for i, tok := range tokens {
		lemmas[i] = norm.Lemmatizer().Lemmatize(tok)
	}

	output, err := json.Marshal(result{Normalized: normalized, Tokens: tokens, Lemmas: lemmas})
	if err != nil {
		logger.Error("Failed to encode result", "error", err)
		return
	}
	fmt.Println(string(output))
}
