package wordlist

import (
	"sort"
	"testing"
)

func TestBuild_PrefixConflict(t *testing.T) {
	// "apply" shares the prefix "appl" with the existing "apple" and must
	// be rejected without touching the existing set.
	result := Build([]string{"apple"}, []string{"apply"}, 10)

	if len(result.Added) != 0 {
		t.Errorf("Added = %v, want empty", result.Added)
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("Rejected = %v, want one conflict", result.Rejected)
	}
	c := result.Rejected[0]
	if c.Word != "apply" || c.Prefix != "appl" || c.Existing != "apple" {
		t.Errorf("conflict = %+v, want apply/appl/apple", c)
	}
	if len(result.Words) != 1 || result.Words[0] != "apple" {
		t.Errorf("Words = %v, want [apple]", result.Words)
	}
}

func TestBuild_AcceptsAndSorts(t *testing.T) {
	result := Build(
		[]string{"ocean", "tiger"},
		[]string{"maple", "bridge", "amber"},
		10,
	)

	wantAdded := []string{"maple", "bridge", "amber"}
	if !equalStrings(result.Added, wantAdded) {
		t.Errorf("Added = %v, want %v", result.Added, wantAdded)
	}
	want := []string{"amber", "bridge", "maple", "ocean", "tiger"}
	if !equalStrings(result.Words, want) {
		t.Errorf("Words = %v, want %v (sorted)", result.Words, want)
	}
	if !sort.StringsAreSorted(result.Words) {
		t.Error("Words not sorted")
	}
}

func TestBuild_Normalization(t *testing.T) {
	result := Build(
		[]string{"  Apple "},
		[]string{" MAPLE ", "", "   "},
		10,
	)

	if !equalStrings(result.Words, []string{"apple", "maple"}) {
		t.Errorf("Words = %v, want [apple maple]", result.Words)
	}
}

func TestBuild_SkipsHyphenatedAndDuplicates(t *testing.T) {
	result := Build(
		[]string{"apple"},
		[]string{"well-known", "apple", "maple", "maple"},
		10,
	)

	if !equalStrings(result.SkippedHyphenated, []string{"well-known"}) {
		t.Errorf("SkippedHyphenated = %v", result.SkippedHyphenated)
	}
	if !equalStrings(result.SkippedDuplicate, []string{"apple", "maple"}) {
		t.Errorf("SkippedDuplicate = %v", result.SkippedDuplicate)
	}
	if !equalStrings(result.Added, []string{"maple"}) {
		t.Errorf("Added = %v, want [maple]", result.Added)
	}
}

func TestBuild_PriorityOrder(t *testing.T) {
	// Earlier candidates win contested prefixes, including against
	// later candidates in the same run (single running index).
	result := Build(
		nil,
		[]string{"bright", "brigand"},
		10,
	)

	if !equalStrings(result.Added, []string{"bright"}) {
		t.Errorf("Added = %v, want [bright]", result.Added)
	}
	if len(result.Rejected) != 1 || result.Rejected[0].Word != "brigand" {
		t.Fatalf("Rejected = %+v, want brigand", result.Rejected)
	}
	if result.Rejected[0].Existing != "bright" {
		t.Errorf("conflict attributed to %q, want %q", result.Rejected[0].Existing, "bright")
	}
}

func TestBuild_CapRespected(t *testing.T) {
	result := Build(
		[]string{"one", "two"},
		[]string{"alpha", "bravo", "carol", "delta"},
		4,
	)

	if len(result.Words) != 4 {
		t.Errorf("len(Words) = %d, want 4", len(result.Words))
	}
	if !equalStrings(result.Added, []string{"alpha", "bravo"}) {
		t.Errorf("Added = %v, want [alpha bravo]", result.Added)
	}
	// Candidates past the cap are not evaluated: no conflict records for
	// them even if their prefixes were contestable.
	if len(result.Rejected) != 0 {
		t.Errorf("Rejected = %v, want empty", result.Rejected)
	}
	if !result.Complete() {
		t.Error("Complete() = false at cap")
	}
}

func TestBuild_Monotonic(t *testing.T) {
	existing := []string{"apple", "ocean", "tiger"}
	result := Build(existing, []string{"appliance", "oceanic", "maple"}, 4)

	for _, word := range existing {
		found := false
		for _, w := range result.Words {
			if w == word {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("existing word %q missing from result", word)
		}
	}
}

func TestBuild_ExistingCollisionWarns(t *testing.T) {
	// Collisions already inside existing are flagged, not fatal, and the
	// existing words all survive.
	result := Build(
		[]string{"apple", "apply"},
		[]string{"maple"},
		10,
	)

	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %+v, want one", result.Warnings)
	}
	w := result.Warnings[0]
	if w.Word != "apply" || w.Existing != "apple" {
		t.Errorf("warning = %+v, want apply vs apple", w)
	}
	if !equalStrings(result.Words, []string{"apple", "apply", "maple"}) {
		t.Errorf("Words = %v", result.Words)
	}
}

func TestBuild_ShortWordPrefix(t *testing.T) {
	// Words shorter than 4 chars use their full length as prefix, so
	// "sun" does not conflict with "sunny" ("sun" vs "sunn").
	result := Build(nil, []string{"sun", "sunny"}, 10)

	if !equalStrings(result.Added, []string{"sun", "sunny"}) {
		t.Errorf("Added = %v, want both", result.Added)
	}
}

func TestBuild_Incomplete(t *testing.T) {
	result := Build(nil, []string{"alpha"}, 5)

	if result.Complete() {
		t.Error("Complete() = true below cap")
	}
	if result.Remaining() != 4 {
		t.Errorf("Remaining() = %d, want 4", result.Remaining())
	}
}

func equalStrings(a, b []string) bool {
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
