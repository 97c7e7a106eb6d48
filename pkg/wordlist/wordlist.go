// Package wordlist defines the 2048-word vocabulary used for checkphrase
// derivation.
//
// Every word is uniquely identified by its first four characters, so a
// reader only has to compare short prefixes to tell two phrases apart.
// A Wordlist is validated once at construction and immutable afterwards;
// building new lists happens through Build, never by mutating a loaded list.
package wordlist

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	"github.com/zeebo/blake3"
)

const (
	// Size is the required word count. Exactly 2^11 words, so every
	// 11-bit value maps to a word and no index can be out of range.
	Size = 2048

	// PrefixLen is the number of leading characters that must be unique
	// across the list. Words shorter than PrefixLen use their full length.
	PrefixLen = 4
)

// Validation errors.
var (
	ErrWrongSize      = errors.New("wordlist must have exactly 2048 words")
	ErrPrefixConflict = errors.New("duplicate 4-character prefix")
	ErrMalformedWord  = errors.New("word contains hyphen or whitespace")
)

// Wordlist is an immutable, validated vocabulary of exactly Size words.
// Index is the word's canonical identity.
type Wordlist struct {
	words []string
	index map[string]int
}

// New validates words and returns a Wordlist. The slice is copied, so the
// caller may keep mutating its own copy.
func New(words []string) (*Wordlist, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrWrongSize, len(words))
	}

	owned := make([]string, Size)
	index := make(map[string]int, Size)
	prefixes := make(map[string]string, Size)

	for i, word := range words {
		if word == "" || strings.ContainsAny(word, "- \t") {
			return nil, fmt.Errorf("%w: %q at index %d", ErrMalformedWord, word, i)
		}
		if _, dup := index[word]; dup {
			return nil, fmt.Errorf("duplicate word %q at index %d", word, i)
		}
		p := Prefix(word)
		if other, taken := prefixes[p]; taken {
			return nil, fmt.Errorf("%w: %q collides with %q", ErrPrefixConflict, word, other)
		}
		prefixes[p] = word
		index[word] = i
		owned[i] = word
	}

	return &Wordlist{words: owned, index: index}, nil
}

// English returns the canonical wordlist: the BIP-39 English list, which is
// the base corpus the checkphrase vocabulary was built from and satisfies
// every invariant (2048 entries, unique 4-character prefixes).
func English() *Wordlist {
	wl, err := New(wordlists.English)
	if err != nil {
		// The library ships a fixed, known-good list.
		panic(fmt.Sprintf("bip39 english wordlist invalid: %v", err))
	}
	return wl
}

// Prefix returns the identity prefix of a word: its first PrefixLen
// characters, or the whole word when shorter.
func Prefix(word string) string {
	if len(word) <= PrefixLen {
		return word
	}
	return word[:PrefixLen]
}

// Len returns the number of words. Always Size for a constructed Wordlist.
func (w *Wordlist) Len() int {
	return len(w.words)
}

// Word returns the word at index i.
func (w *Wordlist) Word(i int) string {
	return w.words[i]
}

// Words returns a copy of the full word slice in canonical order.
func (w *Wordlist) Words() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}

// IndexOf returns the canonical index of a word.
func (w *Wordlist) IndexOf(word string) (int, bool) {
	i, ok := w.index[word]
	return i, ok
}

// Contains reports whether word is a member of the list.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// Fingerprint returns the hex-encoded BLAKE3-256 hash of the canonical text
// encoding (one word per line). Used to pin a corpus to the exact wordlist
// version that produced it.
func (w *Wordlist) Fingerprint() string {
	sum := blake3.Sum256(w.encodeText())
	return hex.EncodeToString(sum[:])
}

func (w *Wordlist) encodeText() []byte {
	var sb strings.Builder
	for _, word := range w.words {
		sb.WriteString(word)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Parse reads a newline-delimited wordlist. Leading/trailing whitespace is
// trimmed and blank lines are skipped, matching the file format used by the
// sibling implementations.
func Parse(r io.Reader) (*Wordlist, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(words)
}

// Load reads and validates a wordlist file.
func Load(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load wordlist %s: %w", path, err)
	}
	return wl, nil
}

// Save writes the canonical text encoding to path.
func (w *Wordlist) Save(path string) error {
	return os.WriteFile(path, w.encodeText(), 0644)
}
