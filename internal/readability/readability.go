// Package readability computes the standard published readability indices.
package readability

import (
	"math"
	"strings"
	"unicode"

	"writeassist/internal/domain"
	"writeassist/internal/stats"
	"writeassist/internal/tokenizer"
)

// Scores holds the readability indices of a document, rounded to 2 decimals.
type Scores struct {
	FleschReadingEase         float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade        float64 `json:"flesch_kincaid_grade"`
	SMOGIndex                 float64 `json:"smog_index"`
	ColemanLiauIndex          float64 `json:"coleman_liau_index"`
	AutomatedReadabilityIndex float64 `json:"automated_readability_index"`
	Difficulty                string  `json:"difficulty"`
}

// Counts are the raw inputs to the formulas.
type Counts struct {
	Words         int
	Sentences     int
	Syllables     int
	Polysyllables int
	Letters       int
}

// Count gathers word, sentence, syllable and letter counts from doc.
func Count(doc *tokenizer.Document) Counts {
	c := Counts{Sentences: len(doc.Sentences)}
	for _, w := range doc.Words() {
		c.Words++
		n := Syllables(w)
		c.Syllables += n
		if n >= 3 {
			c.Polysyllables++
		}
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				c.Letters++
			}
		}
	}
	return c
}

// Score computes every index for doc. Documents without words or sentences
// fail with a *domain.ComputationError.
func Score(doc *tokenizer.Document) (Scores, error) {
	return FromCounts(Count(doc))
}

// FromCounts applies the formulas to precomputed counts.
func FromCounts(c Counts) (Scores, error) {
	if c.Words == 0 || c.Sentences == 0 {
		return Scores{}, &domain.ComputationError{Component: "readability", Reason: "text has no words to score"}
	}
	words := float64(c.Words)
	sentences := float64(c.Sentences)
	wps := words / sentences
	spw := float64(c.Syllables) / words

	fre := 206.835 - 1.015*wps - 84.6*spw
	fk := 0.39*wps + 11.8*spw - 15.59
	smog := 1.0430*math.Sqrt(float64(c.Polysyllables)*(30/sentences)) + 3.1291
	l := float64(c.Letters) / words * 100
	s := sentences / words * 100
	cli := 0.0588*l - 0.296*s - 15.8
	ari := 4.71*(float64(c.Letters)/words) + 0.5*wps - 21.43

	return Scores{
		FleschReadingEase:         stats.Round2(fre),
		FleschKincaidGrade:        stats.Round2(fk),
		SMOGIndex:                 stats.Round2(smog),
		ColemanLiauIndex:          stats.Round2(cli),
		AutomatedReadabilityIndex: stats.Round2(ari),
		Difficulty:                Difficulty(fre),
	}, nil
}

// Difficulty maps a Flesch Reading Ease score to its label.
func Difficulty(fre float64) string {
	switch {
	case fre >= 90:
		return "Very Easy"
	case fre >= 80:
		return "Easy"
	case fre >= 70:
		return "Fairly Easy"
	case fre >= 60:
		return "Standard"
	case fre >= 50:
		return "Fairly Difficult"
	case fre >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}

// Syllables estimates the syllable count of an English word by counting vowel groups.
func Syllables(word string) int {
	w := strings.ToLower(word)
	if w == "" {
		return 0
	}
	groups := 0
	prevVowel := false
	hasLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		v := strings.ContainsRune("aeiouy", r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	if !hasLetter {
		return 1
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && groups > 1 {
		groups--
	}
	if len(w) > 3 && strings.HasSuffix(w, "ed") && !strings.ContainsAny(w[len(w)-3:len(w)-2], "td") && groups > 1 {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}
