package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// AFINNFilter selects builder candidates from an AFINN sentiment list
// (tab-separated word<TAB>score, scores -5..+5). Only pleasant words make
// good checkphrase material, so the default keeps any positively scored
// word of reasonable length.
type AFINNFilter struct {
	MinScore  int
	MinLength int
	MaxLength int
}

// DefaultAFINNFilter matches the settings used to build the shipped list.
func DefaultAFINNFilter() AFINNFilter {
	return AFINNFilter{MinScore: 1, MinLength: 3, MaxLength: 8}
}

// Filter reads an AFINN file and returns the words passing the filter,
// lowercased, in input order.
func (f AFINNFilter) Filter(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		word, scoreStr, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("afinn line %d: expected word<TAB>score", lineNum)
		}
		score, err := strconv.Atoi(strings.TrimSpace(scoreStr))
		if err != nil {
			return nil, fmt.Errorf("afinn line %d: bad score: %w", lineNum, err)
		}

		word = strings.ToLower(strings.TrimSpace(word))
		if score < f.MinScore {
			continue
		}
		if len(word) < f.MinLength || len(word) > f.MaxLength {
			continue
		}
		// Multi-word entries ("cool stuff") can't be phrase members.
		if strings.ContainsAny(word, " -") {
			continue
		}
		out = append(out, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
