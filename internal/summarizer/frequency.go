package summarizer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"writeassist/internal/lexicon"
	"writeassist/internal/tokenizer"
)

// Length is a named summary size.
type Length string

const (
	Short  Length = "short"
	Medium Length = "medium"
	Long   Length = "long"
)

// Quota returns the sentence count for a length. Unknown lengths use the medium quota.
func Quota(l Length) int {
	switch l {
	case Short:
		return 2
	case Long:
		return 5
	default:
		return 3
	}
}

// positionWeight is the bonus per position from the end; earlier sentences score higher.
const positionWeight = 0.3

// fallbackChars bounds the text returned when nothing can be segmented.
const fallbackChars = 500

// FrequencySummarizer ranks sentences by stopword-filtered word frequency plus a position bonus.
type FrequencySummarizer struct {
	stopwords lexicon.Set
}

// NewFrequencySummarizer creates an extractive frequency summarizer.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{stopwords: lexicon.Stopwords}
}

// Summarize selects the quota of sentences for length.
func (s *FrequencySummarizer) Summarize(text string, length string) string {
	return s.SummarizeN(text, Quota(Length(strings.ToLower(length))))
}

// SummarizeN returns the top maxSentences sentences in their original order, joined by a space.
// Text with no more sentences than the quota is returned unchanged.
func (s *FrequencySummarizer) SummarizeN(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = Quota(Medium)
	}
	sentences := tokenizer.SplitSentences(text)
	if len(sentences) == 0 {
		return truncate(text)
	}
	if len(sentences) <= maxSentences {
		return text
	}

	freq := map[string]int{}
	words := make([][]string, len(sentences))
	for i, sent := range sentences {
		words[i] = s.contentWords(sent)
		for _, w := range words[i] {
			freq[w]++
		}
	}

	type pair struct {
		idx   int
		score float64
	}
	total := len(sentences)
	scores := make([]pair, total)
	for i := range sentences {
		sscore := 0.0
		for _, w := range words[i] {
			sscore += float64(freq[w])
		}
		sscore += float64(total-i) * positionWeight
		scores[i] = pair{i, sscore}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	// Keep original order among selected
	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)
	out := make([]string, 0, maxSentences)
	for _, idx := range selected {
		out = append(out, sentences[idx].Text)
	}
	return strings.Join(out, " ")
}

func (s *FrequencySummarizer) contentWords(sent tokenizer.Sentence) []string {
	var out []string
	for _, w := range sent.Words() {
		lw := strings.ToLower(w)
		if s.stopwords.Has(lw) {
			continue
		}
		out = append(out, lw)
	}
	return out
}

func truncate(text string) string {
	if utf8.RuneCountInString(text) <= fallbackChars {
		return text
	}
	r := []rune(text)
	return string(r[:fallbackChars]) + "..."
}
