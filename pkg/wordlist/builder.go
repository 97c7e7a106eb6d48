package wordlist

import (
	"sort"
	"strings"
)

// Conflict records a candidate rejected because its prefix was already
// claimed by another word.
type Conflict struct {
	Word     string // Rejected candidate.
	Prefix   string // The contested prefix.
	Existing string // The word that claimed the prefix first.
}

// BuildResult is the outcome of one Build call.
type BuildResult struct {
	Words    []string   // existing ∪ accepted, sorted lexicographically.
	Added    []string   // Accepted candidates, in acceptance order.
	Rejected []Conflict // Candidates with a prefix conflict.

	SkippedDuplicate  []string // Candidates already present.
	SkippedHyphenated []string // Candidates containing a hyphen.

	// Warnings lists prefix collisions found inside existing itself.
	// Existing data is trusted but flagged, never rejected.
	Warnings []Conflict

	MaxWords int
}

// Complete reports whether the result reached MaxWords.
func (r *BuildResult) Complete() bool {
	return len(r.Words) >= r.MaxWords
}

// Remaining returns how many more words are needed to reach MaxWords.
func (r *BuildResult) Remaining() int {
	if n := r.MaxWords - len(r.Words); n > 0 {
		return n
	}
	return 0
}

// Build extends existing with candidates whose 4-character prefixes are not
// yet claimed, stopping once the running total reaches maxWords.
//
// All inputs are normalized (trimmed, lowercased) and empty entries dropped.
// Candidate order is priority order: earlier candidates win contested
// prefixes. Candidates after the cap is reached are not evaluated at all.
// Build never removes an existing word and never fails; shortfall against
// maxWords is reported through the result, not an error.
func Build(existing, candidates []string, maxWords int) *BuildResult {
	existing = normalize(existing)
	candidates = normalize(candidates)

	result := &BuildResult{MaxWords: maxWords}

	// Prefix index over existing. Collisions inside existing are warnings:
	// the data is already shipped, flagging beats breaking it.
	prefixes := make(map[string]string, len(existing))
	accepted := make(map[string]bool, len(existing))
	for _, word := range existing {
		accepted[word] = true
		p := Prefix(word)
		if other, taken := prefixes[p]; taken {
			result.Warnings = append(result.Warnings, Conflict{Word: word, Prefix: p, Existing: other})
			continue
		}
		prefixes[p] = word
	}

	total := len(accepted)
	for _, candidate := range candidates {
		if total >= maxWords {
			break
		}
		if strings.Contains(candidate, "-") {
			result.SkippedHyphenated = append(result.SkippedHyphenated, candidate)
			continue
		}
		if accepted[candidate] {
			result.SkippedDuplicate = append(result.SkippedDuplicate, candidate)
			continue
		}
		p := Prefix(candidate)
		if other, taken := prefixes[p]; taken {
			result.Rejected = append(result.Rejected, Conflict{Word: candidate, Prefix: p, Existing: other})
			continue
		}
		prefixes[p] = candidate
		accepted[candidate] = true
		result.Added = append(result.Added, candidate)
		total++
	}

	result.Words = make([]string, 0, len(accepted))
	for word := range accepted {
		result.Words = append(result.Words, word)
	}
	sort.Strings(result.Words)

	return result
}

// normalize trims and lowercases words, dropping empties.
func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			out = append(out, word)
		}
	}
	return out
}
