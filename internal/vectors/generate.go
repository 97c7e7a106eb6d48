package vectors

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/quantus-network/go-checkphrase/internal/log"
	"github.com/quantus-network/go-checkphrase/pkg/checkphrase"
	"github.com/quantus-network/go-checkphrase/pkg/wordlist"
)

// CanonicalCase is a fixed, hand-picked input that anchors the corpus to a
// human-meaningful scenario. Canonical cases are always included, first and
// in order, regardless of coverage logic.
type CanonicalCase struct {
	Address     string
	Description string
}

// DefaultCanonicalCases are the anchor addresses every corpus must carry,
// including the deliberately near-duplicate "poisoned" Bitcoin variant.
var DefaultCanonicalCases = []CanonicalCase{
	{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "Bitcoin - Satoshi's address"},
	{"1A1zP1eP5QGefi2DMPTfTL5SLmv7DixfNa", "Bitcoin - poisoned variant"},
	{"0x742d35Cc6634C0532925a3b844Bc9e7595f5bE21", "Ethereum"},
	{"5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", "Polkadot"},
	{"cosmos1hsk6jryyqjfhp5dhc55tc9jtckygx0eph6dd02", "Cosmos"},
	{"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", "Bitcoin bech32"},
	{"qzk7h3xH4Fmv2RqKpN8sT5jW9cY6gB1dL3mX0vQwEaUoZrJtS", "Quantus 1"},
	{"qzkABCDEF123456789abcdefGHIJKLMNOPQRSTUVWXYZ000001", "Quantus 2"},
	{"qzkXyZ987654321FeDcBaAbCdEfGhIjKlMnOpQrStUvWxYz99", "Quantus 3"},
}

// chainPrefixes simulate address styles of different chains.
var chainPrefixes = []string{
	"0x",      // Ethereum-style
	"1",       // Bitcoin legacy
	"3",       // Bitcoin P2SH
	"bc1q",    // Bitcoin bech32
	"cosmos1", // Cosmos
	"osmo1",   // Osmosis
	"5",       // Polkadot
	"qzk",     // Quantus
	"",        // Generic
}

const addressChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Synthesized address lengths, inclusive.
const (
	minAddressLen = 30
	maxAddressLen = 64
)

// attemptsPerVector bounds total synthesis attempts at
// TargetCount*attemptsPerVector, so generation always halts even when a few
// words stay stubbornly uncovered.
const attemptsPerVector = 1000

// Options controls corpus generation.
type Options struct {
	TargetCount        int
	EnsureFullCoverage bool
	Seed               int64

	// Canonical overrides DefaultCanonicalCases when non-nil.
	Canonical []CanonicalCase

	// Length is the words-per-phrase; zero means checkphrase.DefaultLength.
	Length int
}

// Generate derives a conformance corpus over wl.
//
// Canonical cases come first. Synthetic vectors are then drawn from a seeded
// generator (reproducible run-to-run for the same seed; cross-language
// reproducibility is not a goal, the emitted corpus is the oracle). A vector
// is kept while the corpus is short of TargetCount, or when full coverage is
// requested and it contributes an unseen word. Partial coverage after the
// attempt budget is a reported status, never an error.
func Generate(wl *wordlist.Wordlist, opts Options) (*Corpus, error) {
	n := opts.Length
	if n == 0 {
		n = checkphrase.DefaultLength
	}
	canonical := opts.Canonical
	if canonical == nil {
		canonical = DefaultCanonicalCases
	}

	corpus := &Corpus{
		Version:             "1.0",
		Description:         "Cross-platform test vectors for human-checkphrase",
		GeneratedBy:         "checkphrase vectors",
		WordlistFingerprint: wl.Fingerprint(),
		Constants: Constants{
			Salt:           checkphrase.Salt,
			Iterations:     checkphrase.Iterations,
			ChecksumLength: n,
		},
	}

	seen := make(map[string]bool, wl.Len())

	for _, cc := range canonical {
		phrase, err := checkphrase.Derive([]byte(cc.Address), wl, n)
		if err != nil {
			return nil, err
		}
		corpus.TestCases = append(corpus.TestCases, Vector{
			Address:     cc.Address,
			Description: cc.Description,
			Expected:    phrase,
		})
		for _, w := range phrase {
			seen[w] = true
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	maxAttempts := opts.TargetCount * attemptsPerVector

	attempts := 0
	for attempts < maxAttempts {
		attempts++

		address := randomAddress(rng)
		phrase, err := checkphrase.Derive([]byte(address), wl, n)
		if err != nil {
			return nil, err
		}

		hasNewWords := false
		for _, w := range phrase {
			if !seen[w] {
				hasNewWords = true
				break
			}
		}

		needMoreVectors := len(corpus.TestCases) < opts.TargetCount
		needMoreCoverage := opts.EnsureFullCoverage && len(seen) < wl.Len()

		if needMoreVectors || (needMoreCoverage && hasNewWords) {
			corpus.TestCases = append(corpus.TestCases, Vector{
				Address:     address,
				Description: describeGenerated(len(corpus.TestCases) + 1),
				Expected:    phrase,
			})
			for _, w := range phrase {
				seen[w] = true
			}
		}

		if len(corpus.TestCases) >= opts.TargetCount &&
			(len(seen) == wl.Len() || !opts.EnsureFullCoverage) {
			break
		}
	}

	corpus.Statistics = Statistics{
		TotalVectors:    len(corpus.TestCases),
		WordsCovered:    len(seen),
		TotalWords:      wl.Len(),
		CoveragePercent: roundPercent(len(seen), wl.Len()),
	}

	if !corpus.FullCoverage() && opts.EnsureFullCoverage {
		log.Vectors.Warn().
			Int("attempts", attempts).
			Int("covered", len(seen)).
			Int("total", wl.Len()).
			Msg("attempt budget exhausted before full coverage")
	} else {
		log.Vectors.Info().
			Int("vectors", len(corpus.TestCases)).
			Int("attempts", attempts).
			Float64("coverage", corpus.Statistics.CoveragePercent).
			Msg("corpus generated")
	}

	return corpus, nil
}

// randomAddress synthesizes a chain-styled pseudo-address: a prefix from the
// menu plus random alphanumerics up to a total length in [30, 64].
func randomAddress(rng *rand.Rand) string {
	prefix := chainPrefixes[rng.Intn(len(chainPrefixes))]
	length := minAddressLen + rng.Intn(maxAddressLen-minAddressLen+1)

	buf := make([]byte, 0, length)
	buf = append(buf, prefix...)
	for len(buf) < length {
		buf = append(buf, addressChars[rng.Intn(len(addressChars))])
	}
	return string(buf)
}

func describeGenerated(num int) string {
	return "Generated test vector #" + strconv.Itoa(num)
}

// roundPercent computes covered/total as a percentage with two decimals.
func roundPercent(covered, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(covered) / float64(total) * 100
	return math.Round(p*100) / 100
}
