package tokenizer

import (
	"errors"
	"slices"
	"testing"

	"writeassist/internal/domain"
)

func texts(ss []Sentence) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Text
	}
	return out
}

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "Hello world. How are you? Fine!", []string{"Hello world.", "How are you?", "Fine!"}},
		{"abbreviation", "Dr. Smith arrived. He sat down.", []string{"Dr. Smith arrived.", "He sat down."}},
		{"ellipsis", "Wait... what?", []string{"Wait...", "what?"}},
		{"closing quote", `He said "hi." Then he left.`, []string{`He said "hi."`, "Then he left."}},
		{"decimal", "Pi is 3.14 roughly.", []string{"Pi is 3.14 roughly."}},
		{"no terminal", "no punctuation here", []string{"no punctuation here"}},
		{"surrounding space", "  One.   Two.  ", []string{"One.", "Two."}},
		{"newlines", "First line.\nSecond line.", []string{"First line.", "Second line."}},
		{"blank", "   \n\t", nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := texts(SplitSentences(tt.input))
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSentenceOffsets(t *testing.T) {
	t.Parallel()

	text := "  Ünïcode works. Dr. Who?  Yes!"
	for i, s := range SplitSentences(text) {
		if s.Index != i {
			t.Errorf("sentence %d has Index %d", i, s.Index)
		}
		if text[s.Start:s.End] != s.Text {
			t.Errorf("sentence %d: text[%d:%d] = %q, want %q", i, s.Start, s.End, text[s.Start:s.End], s.Text)
		}
		for _, tok := range s.Tokens {
			if text[tok.Start:tok.Start+len(tok.Text)] != tok.Text {
				t.Errorf("token %q at %d does not match source", tok.Text, tok.Start)
			}
		}
	}
}

func TestSentenceOffsetsAreBytes(t *testing.T) {
	t.Parallel()

	text := "Café ok. Next one."
	got := SplitSentences(text)
	if len(got) != 2 {
		t.Fatalf("sentences = %q", texts(got))
	}
	// "é" is two bytes, so the rune offset would be 9.
	if got[1].Start != 10 || got[1].End != len(text) {
		t.Errorf("second sentence spans [%d:%d], want [10:%d]", got[1].Start, got[1].End, len(text))
	}
}

func TestSplitTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"I don't think it's cool.", []string{"I", "do", "n't", "think", "it", "'s", "cool", "."}},
		{"Hello, world!", []string{"Hello", ",", "world", "!"}},
		{"state-of-the-art", []string{"state", "-", "of", "-", "the", "-", "art"}},
		{"can’t", []string{"ca", "n’t"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		tt := tt
		toks := SplitTokens(tt.input)
		got := make([]string, len(toks))
		for i, tok := range toks {
			got[i] = tok.Text
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("SplitTokens(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	got := Words("I don't think it's cool.")
	want := []string{"I", "do", "think", "it", "cool"}
	if !slices.Equal(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}

func TestIsRealWord(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"word": true, "42": true, "naïve": true,
		"": false, ".": false, "n't": false, "'s": false, "a-b": false,
	}
	for in, want := range tests {
		if got := IsRealWord(in); got != want {
			t.Errorf("IsRealWord(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "\n\t"} {
		if _, err := Tokenize(in); !errors.Is(err, domain.ErrEmptyInput) {
			t.Errorf("Tokenize(%q) error = %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestTokenizeDocument(t *testing.T) {
	t.Parallel()

	doc, err := Tokenize("This is a test. It has two sentences.")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(doc.Sentences) != 2 {
		t.Fatalf("sentences = %d, want 2", len(doc.Sentences))
	}
	if n := len(doc.Words()); n != 8 {
		t.Errorf("words = %d, want 8", n)
	}
}

func FuzzSplitSentences(f *testing.F) {
	f.Add("Hello world. How are you?")
	f.Add("Dr. Smith. e.g. this")
	f.Add("...!?")
	f.Add("")
	f.Add("\xff\xfe.")
	f.Add("\"Quoted.\" Next")

	f.Fuzz(func(t *testing.T, text string) {
		for _, s := range SplitSentences(text) {
			if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
				t.Fatalf("bad bounds [%d,%d) for len %d", s.Start, s.End, len(text))
			}
			if text[s.Start:s.End] != s.Text {
				t.Fatalf("offset mismatch: %q vs %q", text[s.Start:s.End], s.Text)
			}
		}
	})
}
