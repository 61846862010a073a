package readability

import (
	"errors"
	"math"
	"testing"

	"writeassist/internal/domain"
	"writeassist/internal/tokenizer"
)

func TestSyllables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"make", 1},
		{"table", 2},
		{"jumped", 1},
		{"wanted", 2},
		{"beautiful", 3},
		{"rhythm", 1},
		{"readability", 5},
		{"CAT", 1},
		{"123", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := Syllables(tt.word); got != tt.want {
			t.Errorf("Syllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestDifficulty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fre  float64
		want string
	}{
		{100, "Very Easy"},
		{90, "Very Easy"},
		{89.99, "Easy"},
		{80, "Easy"},
		{75, "Fairly Easy"},
		{60, "Standard"},
		{55, "Fairly Difficult"},
		{30, "Difficult"},
		{29.99, "Very Difficult"},
		{-20, "Very Difficult"},
	}
	for _, tt := range tests {
		if got := Difficulty(tt.fre); got != tt.want {
			t.Errorf("Difficulty(%v) = %q, want %q", tt.fre, got, tt.want)
		}
	}
}

func TestFromCounts(t *testing.T) {
	t.Parallel()

	// 100 words, 5 sentences, 140 syllables: the textbook Flesch example.
	s, err := FromCounts(Counts{Words: 100, Sentences: 5, Syllables: 140, Polysyllables: 10, Letters: 450})
	if err != nil {
		t.Fatalf("FromCounts: %v", err)
	}
	want := Scores{
		FleschReadingEase:         206.835 - 1.015*20 - 84.6*1.4,
		FleschKincaidGrade:        0.39*20 + 11.8*1.4 - 15.59,
		SMOGIndex:                 1.0430*math.Sqrt(10*6) + 3.1291,
		ColemanLiauIndex:          0.0588*450 - 0.296*5 - 15.8,
		AutomatedReadabilityIndex: 4.71*4.5 + 0.5*20 - 21.43,
	}
	check := func(name string, got, want float64) {
		if math.Abs(got-want) > 0.006 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	check("flesch_reading_ease", s.FleschReadingEase, want.FleschReadingEase)
	check("flesch_kincaid_grade", s.FleschKincaidGrade, want.FleschKincaidGrade)
	check("smog_index", s.SMOGIndex, want.SMOGIndex)
	check("coleman_liau_index", s.ColemanLiauIndex, want.ColemanLiauIndex)
	check("automated_readability_index", s.AutomatedReadabilityIndex, want.AutomatedReadabilityIndex)
	if s.Difficulty != "Standard" {
		t.Errorf("difficulty = %q, want Standard", s.Difficulty)
	}
}

func TestScoreDegenerate(t *testing.T) {
	t.Parallel()

	for _, c := range []Counts{{}, {Words: 3}, {Sentences: 2}} {
		_, err := FromCounts(c)
		var ce *domain.ComputationError
		if !errors.As(err, &ce) {
			t.Fatalf("FromCounts(%+v) error = %v, want ComputationError", c, err)
		}
		if ce.Component != "readability" {
			t.Errorf("component = %q", ce.Component)
		}
	}

	doc, err := tokenizer.Tokenize("...")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := Score(doc); err == nil {
		t.Error("Score of punctuation-only text should fail")
	}
}

func TestScoreSimpleText(t *testing.T) {
	t.Parallel()

	doc, err := tokenizer.Tokenize("The cat sat. The dog ran.")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	s, err := Score(doc)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// 6 one-syllable words in 2 sentences.
	if s.FleschReadingEase < 90 || s.Difficulty != "Very Easy" {
		t.Errorf("got %+v, want a very easy score", s)
	}
}

func FuzzScore(f *testing.F) {
	f.Add("The cat sat.")
	f.Add("...")
	f.Add("\xff\xfe")
	f.Add("a b c d e f g")

	f.Fuzz(func(t *testing.T, text string) {
		doc, err := tokenizer.Tokenize(text)
		if err != nil {
			return
		}
		s, err := Score(doc)
		if err != nil {
			return
		}
		for _, v := range []float64{s.FleschReadingEase, s.FleschKincaidGrade, s.SMOGIndex, s.ColemanLiauIndex, s.AutomatedReadabilityIndex} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite score %+v for %q", s, text)
			}
		}
	})
}
