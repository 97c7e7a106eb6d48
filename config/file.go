package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads tool configuration from a .conf file.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key = value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a tool config value by key. Derivation constants are
// intentionally absent: they are contract, not configuration.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Core
	case "datadir":
		cfg.DataDir = value

	// Wordlist
	case "wordlist.file", "wordlist":
		cfg.Wordlist.File = value

	// Corpus
	case "corpus.url":
		cfg.Corpus.URL = value
	case "corpus.cache":
		cfg.Corpus.CacheFile = value

	// Vectors
	case "vectors.count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Vectors.Count = n
	case "vectors.seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		cfg.Vectors.Seed = n
	case "vectors.output":
		cfg.Vectors.Output = value
	case "vectors.fullcoverage":
		cfg.Vectors.FullCoverage = parseBool(value)

	// Sync
	case "sync.text":
		cfg.Sync.TextTargets = parseStringList(value)
	case "sync.json":
		cfg.Sync.JSONTargets = parseStringList(value)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// parseStringList parses a comma-separated list.
func parseStringList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// WriteDefaultConfig writes a default configuration file.
func WriteDefaultConfig(path string) error {
	content := `# checkphrase configuration
#
# This file contains TOOL settings only.
# Derivation constants (salt, iterations, checksum length) are part of the
# cross-implementation contract and cannot be changed here.

# Data directory (default: ~/.checkphrase)
# datadir = ~/.checkphrase

# ============================================================================
# Wordlist
# ============================================================================

# Path to a 2048-word list file. Empty = built-in canonical list.
# wordlist.file = final_wordlist.txt

# ============================================================================
# Candidate corpus
# ============================================================================

corpus.url = ` + BIP39EnglishURL + `
corpus.cache = crypto_checksum_bip39.txt

# ============================================================================
# Test vectors
# ============================================================================

vectors.count = 1000
vectors.seed = 42
vectors.output = test-vectors/checksums.json
vectors.fullcoverage = true

# ============================================================================
# Wordlist sync
# ============================================================================

# Derived representations kept in step with the canonical wordlist
# sync.text = dart/assets/final_wordlist.txt
# sync.json = js/src/wordlist.json

# ============================================================================
# Logging
# ============================================================================

log.level = info
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
