package token

// CategorySummary is the per-category slice of the authoritative counts.
type CategorySummary struct {
	Total       int `json:"total"`
	Tokens      int `json:"tokens"`
	HardCoded   int `json:"hardCoded"`
	Suggestions int `json:"suggestions"`
}

// Summary is the single source of truth for token counts. It is computed
// exactly once per analysis from the finalized extraction lists; no other
// component recomputes these numbers.
type Summary struct {
	TotalTokens     int                          `json:"totalTokens"`
	ActualTokens    int                          `json:"actualTokens"`
	HardCodedValues int                          `json:"hardCodedValues"`
	AISuggestions   int                          `json:"aiSuggestions"`
	ByCategory      map[Category]CategorySummary `json:"byCategory"`
}

// Summarize folds the finalized extraction lists into the authoritative
// summary. Pure function: same lists, same summary.
func Summarize(ext *Extraction) Summary {
	s := Summary{ByCategory: make(map[Category]CategorySummary, 5)}
	for _, c := range Categories() {
		var cs CategorySummary
		for _, t := range ext.List(c) {
			cs.Total++
			switch {
			case t.IsActualToken:
				cs.Tokens++
			case t.Source == SourceAISuggested:
				cs.Suggestions++
			default:
				cs.HardCoded++
			}
		}
		s.ByCategory[c] = cs
		s.TotalTokens += cs.Total
		s.ActualTokens += cs.Tokens
		s.HardCodedValues += cs.HardCoded
		s.AISuggestions += cs.Suggestions
	}
	return s
}
