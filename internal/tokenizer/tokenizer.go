// Package tokenizer splits raw text into sentences and word tokens.
//
// Sentence boundaries fall after runs of terminal punctuation (. ! ?) that are
// followed by whitespace or the end of input. A single period after a known
// abbreviation does not end a sentence. Offsets are byte offsets into the
// original text, so Text[s.Start:s.End] == s.Text for every Sentence.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"writeassist/internal/domain"
)

// Sentence is one segment of a Document in its original position.
type Sentence struct {
	Text   string
	Index  int
	Start  int
	End    int
	Tokens []Token
}

// Words returns the sentence's real-word tokens in order.
func (s Sentence) Words() []string { return realWords(s.Tokens) }

// Token is the smallest unit of word segmentation.
type Token struct {
	Text  string
	Start int
	Word  bool
}

// Document is tokenized text shared by every analyzer.
type Document struct {
	Text      string
	Sentences []Sentence
	Tokens    []Token
}

// Words returns all real-word tokens of the document in order.
func (d *Document) Words() []string { return realWords(d.Tokens) }

// Tokenize segments text into sentences and tokens. Blank input fails with domain.ErrEmptyInput.
func Tokenize(text string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}
	doc := &Document{Text: text, Sentences: SplitSentences(text)}
	for _, s := range doc.Sentences {
		doc.Tokens = append(doc.Tokens, s.Tokens...)
	}
	return doc, nil
}

var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {}, "st": {},
	"vs": {}, "etc": {}, "e.g": {}, "i.e": {}, "inc": {}, "ltd": {}, "fig": {},
	"approx": {}, "dept": {},
}

// SplitSentences returns the sentences of text in order. Whitespace-only text yields none.
func SplitSentences(text string) []Sentence {
	var out []Sentence
	emit := func(start, end int) {
		seg := text[start:end]
		trimmed := strings.TrimRightFunc(seg, unicode.IsSpace)
		end = start + len(trimmed)
		if end <= start {
			return
		}
		out = append(out, Sentence{
			Text:   text[start:end],
			Index:  len(out),
			Start:  start,
			End:    end,
			Tokens: splitTokensAt(text[start:end], start),
		})
	}

	start := -1
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if start < 0 {
			if !unicode.IsSpace(r) {
				start = i
			}
			i += size
			continue
		}
		if !isTerminal(r) {
			i += size
			continue
		}
		j := i + size
		single := true
		for j < len(text) {
			nr, ns := utf8.DecodeRuneInString(text[j:])
			if !isTerminal(nr) {
				break
			}
			single = false
			j += ns
		}
		for j < len(text) {
			nr, ns := utf8.DecodeRuneInString(text[j:])
			if !isCloser(nr) {
				break
			}
			j += ns
		}
		atBoundary := j == len(text)
		if !atBoundary {
			nr, _ := utf8.DecodeRuneInString(text[j:])
			atBoundary = unicode.IsSpace(nr)
		}
		if atBoundary && !(r == '.' && single && endsWithAbbreviation(text[start:i])) {
			emit(start, j)
			start = -1
		}
		i = j
	}
	if start >= 0 {
		emit(start, len(text))
	}
	return out
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '’', '”', '»':
		return true
	}
	return false
}

func endsWithAbbreviation(prefix string) bool {
	idx := strings.LastIndexFunc(prefix, unicode.IsSpace)
	last := strings.TrimLeft(prefix[idx+1:], "([{\"'")
	if last == "" {
		return false
	}
	_, ok := abbreviations[strings.ToLower(last)]
	return ok
}

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*|[^\s\p{L}\p{N}]`)

// SplitTokens segments text on whitespace and punctuation boundaries.
// Clitics are split off the way treebank tokenizers do: "don't" → "do", "n't"; "it's" → "it", "'s".
func SplitTokens(text string) []Token { return splitTokensAt(text, 0) }

func splitTokensAt(text string, base int) []Token {
	locs := tokenPattern.FindAllStringIndex(text, -1)
	out := make([]Token, 0, len(locs))
	add := func(start, end int) {
		t := text[start:end]
		out = append(out, Token{Text: t, Start: base + start, Word: IsRealWord(t)})
	}
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		tok := text[start:end]
		apos := strings.IndexAny(tok, "'’")
		if apos < 0 {
			add(start, end)
			continue
		}
		lower := strings.ToLower(tok)
		if cut := clitic(lower); cut > 0 && cut < len(tok) {
			add(start, start+cut)
			add(start+cut, end)
			continue
		}
		if apos > 0 {
			add(start, start+apos)
			add(start+apos, end)
			continue
		}
		add(start, end)
	}
	return out
}

// clitic returns the byte index where a negative clitic starts, or 0.
func clitic(lower string) int {
	for _, suffix := range []string{"n't", "n’t"} {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			return len(lower) - len(suffix)
		}
	}
	return 0
}

// Words returns the real-word tokens of text.
func Words(text string) []string { return realWords(SplitTokens(text)) }

// IsRealWord reports whether tok is non-empty and made only of letters and digits.
func IsRealWord(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func realWords(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Word {
			out = append(out, t.Text)
		}
	}
	return out
}
