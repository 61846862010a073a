package rewriter

import (
	"errors"
	"strings"
	"testing"

	"writeassist/internal/domain"
)

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		style Style
		want  string
	}{
		{"formal expands contractions", "I don't think it's cool.", Formal, "I do not think it is cool."},
		{"formal keeps capital", "Don't stop. It's late.", Formal, "Do not stop. It is late."},
		{"formal slang", "I'm gonna go, yeah.", Formal, "I am going to go, yes."},
		{"casual contracts", "I do not think it is cool.", Casual, "I don't think it's cool."},
		{"friendly contracts", "We are sure that is fine.", Friendly, "We're sure that's fine."},
		{"concise drops fillers", "This is very really good.", Concise, "This is good."},
		{"concise capital filler", "Basically it works.", Concise, "It works."},
		{"concise sentence start", "Just do it. Really good work.", Concise, "Do it. Good work."},
		{"formal curly apostrophe", "I don’t know. It’s late.", Formal, "I do not know. It is late."},
		{"neutral unchanged", "I don't know.", Neutral, "I don't know."},
		{"unknown unchanged", "I don't know.", Style("pirate"), "I don't know."},
		{"word boundary", "Donation isn't dont.", Formal, "Donation is not dont."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Rewrite(tt.input, tt.style); got != tt.want {
				t.Errorf("Rewrite(%q, %s) = %q, want %q", tt.input, tt.style, got, tt.want)
			}
		})
	}
}

func TestRewriteFormalRemovesContractions(t *testing.T) {
	t.Parallel()

	out := Rewrite("I don't know if it's true, but I'm sure they're here and we're ready.", Formal)
	for _, c := range []string{"don't", "it's", "I'm", "they're", "we're"} {
		if strings.Contains(out, c) {
			t.Errorf("output %q still contains %q", out, c)
		}
	}
}

func TestSimplify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"We utilize numerous tools in order to facilitate work.", "We use many tools to help work."},
		{"Utilize it prior to noon.", "Use it before noon."},
		{"It utilizes approximately ten.", "It uses about ten."},
		{"Nothing to change.", "Nothing to change."},
	}
	for _, tt := range tests {
		tt := tt
		if got := Simplify(tt.input); got != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"formal", " Casual ", "CONCISE", "friendly", "neutral"} {
		if _, err := ParseStyle(in); err != nil {
			t.Errorf("ParseStyle(%q): %v", in, err)
		}
	}
	if _, err := ParseStyle("pirate"); !errors.Is(err, domain.ErrInvalidOption) {
		t.Errorf("ParseStyle(pirate) error = %v, want ErrInvalidOption", err)
	}
}

func FuzzRewrite(f *testing.F) {
	f.Add("I don't think it's cool.", "formal")
	f.Add("", "concise")
	f.Add("\xff don't", "casual")

	f.Fuzz(func(t *testing.T, text, style string) {
		a := Rewrite(text, Style(style))
		b := Rewrite(text, Style(style))
		if a != b {
			t.Fatalf("non-deterministic: %q vs %q", a, b)
		}
	})
}
