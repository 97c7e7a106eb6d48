// Package config handles tool configuration.
//
// Configuration is split into two categories:
//   - Derivation constants: salt, iterations, checksum length. Fixed by the
//     cross-implementation contract, hardcoded in pkg/checkphrase, never
//     configurable.
//   - Tool settings: paths, corpus sources, generator knobs. Runtime
//     configuration, can vary per invocation.
package config

import (
	"os"
	"path/filepath"
)

// Config holds tool settings. Nothing in here affects derived phrases.
type Config struct {
	// Core
	DataDir string `conf:"datadir"`

	// Wordlist
	Wordlist WordlistConfig

	// Candidate corpus source
	Corpus CorpusConfig

	// Test vector generation
	Vectors VectorsConfig

	// Wordlist sync targets
	Sync SyncConfig

	// Logging
	Log LogConfig
}

// WordlistConfig selects the wordlist. An empty File means the built-in
// canonical list.
type WordlistConfig struct {
	File string `conf:"wordlist.file"`
}

// CorpusConfig holds candidate corpus fetch settings.
type CorpusConfig struct {
	URL       string `conf:"corpus.url"`
	CacheFile string `conf:"corpus.cache"`
}

// VectorsConfig holds conformance corpus generation settings.
type VectorsConfig struct {
	Count  int    `conf:"vectors.count"`
	Seed   int64  `conf:"vectors.seed"`
	Output string `conf:"vectors.output"`

	// FullCoverage keeps generating past Count until every word has
	// appeared in at least one vector.
	FullCoverage bool `conf:"vectors.fullcoverage"`
}

// SyncConfig holds paths of derived wordlist representations kept in step
// with the canonical text file.
type SyncConfig struct {
	TextTargets []string `conf:"sync.text"`
	JSONTargets []string `conf:"sync.json"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultDataDir returns the default data directory (~/.checkphrase).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".checkphrase"
	}
	return filepath.Join(home, ".checkphrase")
}

// ConfigFileName is the default configuration file name inside DataDir.
const ConfigFileName = "checkphrase.conf"
