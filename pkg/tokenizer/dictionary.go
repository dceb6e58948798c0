package tokenizer

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
)

// canonicalLetters maps Arabic kaf and yeh to their Persian forms so
// dictionary keys agree with normalized text.
var canonicalLetters = strings.NewReplacer("ك", "ک", "ي", "ی")

// Dictionary holds Persian lemmas in an FST for fast lookups.
type Dictionary struct {
	fst     *vellum.FST
	words   map[string]struct{} // Source of truth for modifications
	fstPath string
	txtPath string
	mu      sync.RWMutex
}

// NewDictionary loads a lemma list from file into an FST.
// If the FST doesn't exist next to the text file, builds it.
func NewDictionary(txtPath string) (*Dictionary, error) {
	fstPath := strings.TrimSuffix(txtPath, ".txt") + ".fst"

	d := &Dictionary{
		words:   make(map[string]struct{}, 50000),
		fstPath: fstPath,
		txtPath: txtPath,
	}

	if err := d.loadTextFile(); err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", txtPath, err)
	}

	if err := d.loadOrBuildFST(); err != nil {
		return nil, fmt.Errorf("build dictionary fst %s: %w", fstPath, err)
	}

	return d, nil
}

// NewMemoryDictionary builds a dictionary that lives only in memory.
// AddWord and RemoveWord rebuild the FST but never touch disk.
func NewMemoryDictionary(words []string) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		if key := dictionaryKey(word); key != "" {
			d.words[key] = struct{}{}
		}
	}

	if err := d.rebuildFST(); err != nil {
		return nil, fmt.Errorf("build in-memory dictionary: %w", err)
	}
	return d, nil
}

func dictionaryKey(word string) string {
	return canonicalLetters.Replace(strings.ToLower(strings.TrimSpace(word)))
}

// loadTextFile reads words from the source text file.
func (d *Dictionary) loadTextFile() error {
	file, err := os.Open(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.words[dictionaryKey(line)] = struct{}{}
	}
	return scanner.Err()
}

// loadOrBuildFST loads existing FST or builds a new one.
func (d *Dictionary) loadOrBuildFST() error {
	if fst, err := vellum.Open(d.fstPath); err == nil {
		d.fst = fst
		return nil
	}

	return d.rebuildFST()
}

// Contains checks if a word exists in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	key := dictionaryKey(word)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.fst == nil {
		return false
	}
	_, exists, _ := d.fst.Get([]byte(key))
	return exists
}

// AddWord adds a word to the dictionary and rebuilds FST.
func (d *Dictionary) AddWord(word string) error {
	key := dictionaryKey(word)
	if key == "" {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.words[key] = struct{}{}
	return d.rebuildFST()
}

// RemoveWord removes a word from the dictionary and rebuilds FST.
func (d *Dictionary) RemoveWord(word string) error {
	key := dictionaryKey(word)

	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.words, key)
	return d.rebuildFST()
}

// RebuildFST rebuilds the FST from the current word set and saves to disk.
func (d *Dictionary) RebuildFST() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rebuildFST()
}

// rebuildFST rebuilds FST without locking (caller must hold lock).
func (d *Dictionary) rebuildFST() error {
	if d.fst != nil {
		d.fst.Close()
		d.fst = nil
	}

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return err
	}

	for _, word := range d.sortedWords() {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return err
		}
	}

	if err := builder.Close(); err != nil {
		return err
	}

	if d.fstPath == "" {
		fst, err := vellum.Load(buf.Bytes())
		if err != nil {
			return err
		}
		d.fst = fst
		return nil
	}

	if err := os.WriteFile(d.fstPath, buf.Bytes(), 0o644); err != nil {
		return err
	}

	fst, err := vellum.Open(d.fstPath)
	if err != nil {
		return err
	}
	d.fst = fst

	return d.saveTextFile()
}

// sortedWords returns the word set in FST insertion order.
func (d *Dictionary) sortedWords() []string {
	sorted := make([]string, 0, len(d.words))
	for word := range d.words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	return sorted
}

// saveTextFile writes the current word set back to the text file.
func (d *Dictionary) saveTextFile() error {
	file, err := os.Create(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range d.sortedWords() {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Close releases FST resources.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fst != nil {
		err := d.fst.Close()
		d.fst = nil
		return err
	}
	return nil
}

// WordCount returns the number of words in the dictionary.
func (d *Dictionary) WordCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
