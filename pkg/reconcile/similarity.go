package reconcile

import "strings"

// similarityThreshold is the normalized edit-distance similarity above which
// two phrases are treated as duplicates.
const similarityThreshold = 0.8

// normalizePhrase lowercases and collapses whitespace for comparison.
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// phraseSimilarity returns 1 - levenshtein/maxLen on normalized phrases.
func phraseSimilarity(a, b string) float64 {
	a, b = normalizePhrase(a), normalizePhrase(b)
	if a == b {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance with a two-row table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// canonicalPatterns maps recurring advisory phrasings to one canonical form.
// Checked in order; the first keyword hit rewrites the phrase.
var canonicalPatterns = []struct {
	keywords  []string
	canonical string
}{
	{[]string{"hard-coded", "hardcoded", "hard coded"}, "Replace hard-coded values with design tokens"},
	{[]string{"token coverage", "more tokens", "bind tokens"}, "Replace hard-coded values with design tokens"},
	{[]string{"rename", "layer name", "generic name"}, "Rename generic layers descriptively"},
	{[]string{"interaction state", "hover", "focus state"}, "Add interaction state variants"},
	{[]string{"add propert", "missing propert", "expose propert"}, "Add missing component properties"},
	{[]string{"component boundary", "convert to component"}, "Promote the element to a component"},
}

// canonicalize rewrites a phrase to its table form when a pattern matches;
// otherwise the phrase passes through unchanged.
func canonicalize(phrase string) string {
	lower := strings.ToLower(phrase)
	for _, p := range canonicalPatterns {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				return p.canonical
			}
		}
	}
	return strings.TrimSpace(phrase)
}

// DedupePhrases collapses a free-text list: canonical pattern rewrite first,
// then exact matches, substring containment, and similarity above the
// threshold all fold into the first-seen phrasing. It is meant for advisory
// prose only; fact-derived entries go through AppendDistinct.
func DedupePhrases(items []string) []string {
	var out []string
	for _, item := range items {
		phrase := canonicalize(item)
		if phrase == "" {
			continue
		}
		dup := false
		for _, kept := range out {
			a, b := normalizePhrase(kept), normalizePhrase(phrase)
			if a == b || strings.Contains(a, b) || strings.Contains(b, a) ||
				phraseSimilarity(a, b) > similarityThreshold {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, phrase)
		}
	}
	return out
}

// AppendDistinct appends items to base, dropping only exact matches after
// case and whitespace normalization. No canonical rewrite and no similarity
// folding: entries synthesized from ground truth are kept verbatim even when
// two of them read alike ("Add Size property" / "Add State property").
func AppendDistinct(base []string, items ...string) []string {
	seen := make(map[string]bool, len(base)+len(items))
	for _, b := range base {
		seen[normalizePhrase(b)] = true
	}
	for _, item := range items {
		key := normalizePhrase(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		base = append(base, item)
	}
	return base
}
