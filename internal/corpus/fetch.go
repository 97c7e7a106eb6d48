// Package corpus loads candidate word corpora for the wordlist builder.
//
// The canonical base corpus is the upstream BIP-39 English list; it is
// cached on disk after the first fetch so builds work offline. Everything
// here runs before the derivation engine is ever involved.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/quantus-network/go-checkphrase/internal/log"
)

// ErrCorpusLength is returned when a fetched base corpus does not have the
// expected line count.
var ErrCorpusLength = errors.New("corpus has wrong length")

// Fetcher loads a candidate corpus from a cache file, falling back to an
// HTTP fetch that repopulates the cache.
type Fetcher struct {
	URL       string
	CachePath string

	// Expect is the required word count; zero disables the check
	// (candidate pools, unlike the base corpus, have no fixed size).
	Expect int

	// Client defaults to a client with a modest timeout.
	Client *http.Client
}

// Load returns the corpus words, one per input line, blanks dropped.
func (f *Fetcher) Load() ([]string, error) {
	if f.CachePath != "" {
		words, err := readLines(f.CachePath)
		switch {
		case err == nil && (f.Expect == 0 || len(words) == f.Expect):
			log.Corpus.Info().
				Int("words", len(words)).
				Str("file", f.CachePath).
				Msg("loaded corpus from cache")
			return words, nil
		case err == nil:
			log.Corpus.Warn().
				Int("words", len(words)).
				Str("file", f.CachePath).
				Msg("cached corpus incomplete, refetching")
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	words, err := f.fetch()
	if err != nil {
		return nil, err
	}

	if f.CachePath != "" {
		if err := writeLines(f.CachePath, words); err != nil {
			return nil, fmt.Errorf("cache corpus: %w", err)
		}
		log.Corpus.Info().
			Int("words", len(words)).
			Str("file", f.CachePath).
			Msg("saved corpus to cache")
	}
	return words, nil
}

func (f *Fetcher) fetch() ([]string, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Get(f.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus %s: %w", f.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch corpus %s: status %s", f.URL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	words := splitLines(string(body))
	if f.Expect != 0 && len(words) != f.Expect {
		return nil, fmt.Errorf("%w: fetched %d, want %d", ErrCorpusLength, len(words), f.Expect)
	}
	return words, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

func writeLines(path string, words []string) error {
	return os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644)
}

func splitLines(s string) []string {
	var words []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words
}
