package stats

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"writeassist/internal/tokenizer"
)

// Statistics are the basic counts of a document.
type Statistics struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	CharacterCount    int     `json:"character_count"`
	ParagraphCount    int     `json:"paragraph_count"`
	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

var paragraphBreak = regexp.MustCompile(`\n[ \t\r\f\v]*\n`)

// Compute counts words, sentences, characters and paragraphs.
// CharacterCount sums the lengths of real words only; averages are 0 when their denominator is.
func Compute(doc *tokenizer.Document) Statistics {
	words := doc.Words()
	chars := 0
	for _, w := range words {
		chars += utf8.RuneCountInString(w)
	}
	s := Statistics{
		WordCount:      len(words),
		SentenceCount:  len(doc.Sentences),
		CharacterCount: chars,
		ParagraphCount: Paragraphs(doc.Text),
	}
	if s.WordCount > 0 {
		s.AvgWordLength = Round2(float64(chars) / float64(s.WordCount))
	}
	if s.SentenceCount > 0 {
		s.AvgSentenceLength = Round2(float64(s.WordCount) / float64(s.SentenceCount))
	}
	return s
}

// Paragraphs counts blank-line separated blocks, never fewer than 1.
func Paragraphs(text string) int {
	n := 0
	for _, block := range paragraphBreak.Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// Round2 rounds to two decimal places for display.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
