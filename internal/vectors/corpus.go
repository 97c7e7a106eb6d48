// Package vectors produces and verifies the cross-implementation
// conformance corpus: golden address -> checkphrase pairs that every
// sibling implementation replays in its test suite.
package vectors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantus-network/go-checkphrase/pkg/checkphrase"
	"github.com/quantus-network/go-checkphrase/pkg/wordlist"
)

// Vector is a single conformance case.
type Vector struct {
	Address     string   `json:"address"`
	Description string   `json:"description,omitempty"`
	Expected    []string `json:"expected"`
}

// Constants pins the derivation parameters the corpus was generated with.
type Constants struct {
	Salt           string `json:"salt"`
	Iterations     int    `json:"iterations"`
	ChecksumLength int    `json:"checksumLength"`
}

// Statistics summarizes word coverage across the corpus.
type Statistics struct {
	TotalVectors    int     `json:"totalVectors"`
	WordsCovered    int     `json:"wordsCovered"`
	TotalWords      int     `json:"totalWords"`
	CoveragePercent float64 `json:"coveragePercent"`
}

// Corpus is the on-disk conformance document.
type Corpus struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	GeneratedBy string `json:"generatedBy,omitempty"`

	// WordlistFingerprint ties the corpus to the exact wordlist version
	// that produced it. Phrases are meaningless against any other list.
	WordlistFingerprint string `json:"wordlistFingerprint,omitempty"`

	Constants  Constants  `json:"constants"`
	Statistics Statistics `json:"statistics"`
	TestCases  []Vector   `json:"testCases"`
}

// FullCoverage reports whether every wordlist entry appears in at least one
// vector.
func (c *Corpus) FullCoverage() bool {
	return c.Statistics.WordsCovered == c.Statistics.TotalWords
}

// Load reads a corpus file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return &c, nil
}

// Save writes the corpus as indented JSON, creating parent directories.
func (c *Corpus) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Mismatch records one conformance failure during Verify.
type Mismatch struct {
	Address  string
	Expected []string
	Got      []string
}

// Verify replays every test case against wl and collects mismatches.
// This is the check a conforming implementation runs in CI.
func (c *Corpus) Verify(wl *wordlist.Wordlist) ([]Mismatch, error) {
	n := c.Constants.ChecksumLength
	if n == 0 {
		n = checkphrase.DefaultLength
	}

	var mismatches []Mismatch
	for _, tc := range c.TestCases {
		got, err := checkphrase.Derive([]byte(tc.Address), wl, n)
		if err != nil {
			return nil, fmt.Errorf("derive %q: %w", tc.Address, err)
		}
		if !equal(got, tc.Expected) {
			mismatches = append(mismatches, Mismatch{
				Address:  tc.Address,
				Expected: tc.Expected,
				Got:      got,
			})
		}
	}
	return mismatches, nil
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
