package tone

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		wantFormality string
		wantSentiment string
	}{
		{"empty", "", "neutral", "neutral"},
		{"plain", "The meeting is at noon.", "neutral", "neutral"},
		{"formal", "Therefore, we must proceed. Furthermore, the results hold.", "formal", "neutral"},
		{"informal", "Yeah that stuff is gonna be fine.", "informal", "neutral"},
		{"positive", "This is a great and wonderful day.", "neutral", "positive"},
		{"negative", "Unfortunately the result was terrible.", "neutral", "negative"},
		{"case insensitive", "EXCELLENT WORK. THEREFORE WE WIN.", "formal", "positive"},
		{"tie", "Good news and bad news.", "neutral", "neutral"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.input)
			if got.Formality != tt.wantFormality || got.Sentiment != tt.wantSentiment {
				t.Errorf("Classify(%q) = %s/%s, want %s/%s", tt.input, got.Formality, got.Sentiment, tt.wantFormality, tt.wantSentiment)
			}
		})
	}
}

func TestClassifyCounts(t *testing.T) {
	t.Parallel()

	got := Classify("good good bad")
	if got.PositiveKeywordCount != 2 || got.NegativeKeywordCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", got.PositiveKeywordCount, got.NegativeKeywordCount)
	}
}

func TestClassifySymmetry(t *testing.T) {
	t.Parallel()

	// Swapping the counts swaps the label.
	pos := Classify("great great sad")
	neg := Classify("sad sad great")
	if pos.Sentiment != "positive" || neg.Sentiment != "negative" {
		t.Errorf("sentiment = %s/%s, want positive/negative", pos.Sentiment, neg.Sentiment)
	}
}

func FuzzClassify(f *testing.F) {
	f.Add("good")
	f.Add("")
	f.Add("\xff")
	f.Fuzz(func(t *testing.T, text string) {
		a, b := Classify(text), Classify(text)
		if a != b {
			t.Fatalf("non-deterministic: %+v vs %+v", a, b)
		}
	})
}
