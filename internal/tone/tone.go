package tone

import (
	"strings"

	"writeassist/internal/lexicon"
)

// Result is the keyword-frequency tone classification of a text.
type Result struct {
	Formality            string `json:"formality"`
	Sentiment            string `json:"sentiment"`
	FormalKeywordCount   int    `json:"formal_keyword_count"`
	InformalKeywordCount int    `json:"informal_keyword_count"`
	PositiveKeywordCount int    `json:"positive_keyword_count"`
	NegativeKeywordCount int    `json:"negative_keyword_count"`
}

// Classify counts case-insensitive substring occurrences of each keyword set
// and compares them pairwise. Ties are neutral.
func Classify(text string) Result {
	lower := strings.ToLower(text)
	r := Result{
		FormalKeywordCount:   count(lower, lexicon.FormalKeywords),
		InformalKeywordCount: count(lower, lexicon.InformalKeywords),
		PositiveKeywordCount: count(lower, lexicon.PositiveKeywords),
		NegativeKeywordCount: count(lower, lexicon.NegativeKeywords),
	}
	r.Formality = compare(r.FormalKeywordCount, r.InformalKeywordCount, "formal", "informal")
	r.Sentiment = compare(r.PositiveKeywordCount, r.NegativeKeywordCount, "positive", "negative")
	return r
}

func count(lower string, set lexicon.Set) int {
	n := 0
	for _, kw := range set.Words() {
		n += strings.Count(lower, kw)
	}
	return n
}

func compare(a, b int, above, below string) string {
	switch {
	case a > b:
		return above
	case b > a:
		return below
	default:
		return "neutral"
	}
}
