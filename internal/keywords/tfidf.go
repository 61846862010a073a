package keywords

import (
	"math"
	"sort"
	"strings"

	"writeassist/internal/lexicon"
	"writeassist/internal/stats"
	"writeassist/internal/tokenizer"
)

// Keyword is a ranked term with its summed TF-IDF weight.
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// Extractor ranks document terms by TF-IDF, treating each sentence as a document.
type Extractor struct {
	stopwords lexicon.Set
	minLength int
}

// NewExtractor creates an extractor that ignores stopwords and terms shorter than 3 letters.
func NewExtractor() *Extractor {
	return &Extractor{stopwords: lexicon.Stopwords, minLength: 3}
}

// Extract returns up to n keywords, highest score first. Ties are broken alphabetically.
func (e *Extractor) Extract(doc *tokenizer.Document, n int) []Keyword {
	if n <= 0 || len(doc.Sentences) == 0 {
		return []Keyword{}
	}
	// Build document frequencies
	corpus := make([][]string, len(doc.Sentences))
	df := make(map[string]int)
	counts := make(map[string]int)
	for i, sent := range doc.Sentences {
		corpus[i] = e.terms(sent)
		seen := make(map[string]struct{})
		for _, t := range corpus[i] {
			counts[t]++
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	N := float64(len(corpus))
	scores := make(map[string]float64, len(df))
	for _, terms := range corpus {
		if len(terms) == 0 {
			continue
		}
		tf := make(map[string]int)
		for _, t := range terms {
			tf[t]++
		}
		for t, c := range tf {
			// Smoothed IDF
			idf := math.Log((1+N)/(1+float64(df[t]))) + 1.0
			scores[t] += float64(c) / float64(len(terms)) * idf
		}
	}
	out := make([]Keyword, 0, len(scores))
	for t, s := range scores {
		out = append(out, Keyword{Term: t, Score: stats.Round2(s), Count: counts[t]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (e *Extractor) terms(sent tokenizer.Sentence) []string {
	var out []string
	for _, w := range sent.Words() {
		lw := strings.ToLower(w)
		if len([]rune(lw)) < e.minLength || e.stopwords.Has(lw) {
			continue
		}
		out = append(out, lw)
	}
	return out
}
