// Package wlsync keeps derived wordlist representations in step with the
// canonical list.
//
// Sibling implementations in other languages consume the vocabulary in
// their own formats (a plain-text asset, a JSON array); this package writes
// those files from the canonical Wordlist and can check them for drift
// without writing, for CI.
package wlsync

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/quantus-network/go-checkphrase/internal/log"
	"github.com/quantus-network/go-checkphrase/pkg/wordlist"
)

// Format selects a target representation.
type Format string

const (
	FormatText Format = "text" // One word per line, trailing newline.
	FormatJSON Format = "json" // Indented JSON string array.
)

// Target is one derived file to keep in sync.
type Target struct {
	Path   string
	Format Format
}

// State of a target relative to the canonical list.
type State string

const (
	StateOK      State = "ok"      // Already identical.
	StateSynced  State = "synced"  // Was stale or missing, now written.
	StateDiff    State = "diff"    // Differs (check-only mode).
	StateMissing State = "missing" // Absent (check-only mode).
)

// Result describes one target after a Sync run.
type Result struct {
	Target      Target
	State       State
	Fingerprint string // BLAKE3 of the expected content.
}

// Report is the outcome of a Sync run over all targets.
type Report struct {
	Results []Result
}

// InSync reports whether every target matched (or was written).
func (r *Report) InSync() bool {
	for _, res := range r.Results {
		if res.State == StateDiff || res.State == StateMissing {
			return false
		}
	}
	return true
}

// Sync renders wl into each target. In checkOnly mode nothing is written;
// stale or missing targets are reported instead.
func Sync(wl *wordlist.Wordlist, targets []Target, checkOnly bool) (*Report, error) {
	report := &Report{}

	for _, t := range targets {
		expected, err := Render(wl, t.Format)
		if err != nil {
			return nil, err
		}

		sum := blake3.Sum256(expected)
		res := Result{Target: t, Fingerprint: hex.EncodeToString(sum[:])}

		current, err := os.ReadFile(t.Path)
		switch {
		case err == nil && bytes.Equal(current, expected):
			res.State = StateOK
		case os.IsNotExist(err):
			res.State = StateMissing
		case err != nil:
			return nil, err
		default:
			res.State = StateDiff
		}

		if !checkOnly && res.State != StateOK {
			if err := writeTarget(t.Path, expected); err != nil {
				return nil, err
			}
			res.State = StateSynced
		}

		log.Sync.Info().
			Str("path", t.Path).
			Str("format", string(t.Format)).
			Str("state", string(res.State)).
			Msg("sync target")
		report.Results = append(report.Results, res)
	}

	return report, nil
}

// Render produces the byte-exact content of a representation.
func Render(wl *wordlist.Wordlist, format Format) ([]byte, error) {
	words := wl.Words()
	switch format {
	case FormatText:
		var buf bytes.Buffer
		for _, w := range words {
			buf.WriteString(w)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(words, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown sync format %q", format)
	}
}

func writeTarget(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, content, 0644)
}
