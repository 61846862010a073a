// Package rewriter shifts the style of a text with ordered, case-insensitive,
// word-boundary-anchored substitutions.
package rewriter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"writeassist/internal/domain"
	"writeassist/internal/lexicon"
)

// Style selects a substitution table.
type Style string

const (
	Formal   Style = "formal"
	Casual   Style = "casual"
	Concise  Style = "concise"
	Friendly Style = "friendly"
	Neutral  Style = "neutral"
)

// Styles lists every style that changes text.
var Styles = []Style{Formal, Casual, Concise, Friendly}

// ParseStyle validates a style name. Neutral is accepted and leaves text unchanged.
func ParseStyle(s string) (Style, error) {
	st := Style(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case Formal, Casual, Concise, Friendly, Neutral:
		return st, nil
	}
	return "", fmt.Errorf("style %q: %w", s, domain.ErrInvalidOption)
}

type substitution struct {
	pattern *regexp.Regexp
	to      string
}

func compile(pairs []lexicon.Pair) []substitution {
	out := make([]substitution, len(pairs))
	for i, p := range pairs {
		out[i] = substitution{
			pattern: regexp.MustCompile(`(?i)\b` + apostrophes(regexp.QuoteMeta(p.From)) + `\b`),
			to:      p.To,
		}
	}
	return out
}

// apostrophes lets a straight apostrophe in a pattern also match a curly one.
func apostrophes(pattern string) string {
	return strings.ReplaceAll(pattern, "'", "['’]")
}

func compileFillers(words []string) []substitution {
	out := make([]substitution, len(words))
	for i, w := range words {
		out[i] = substitution{pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\s+`)}
	}
	return out
}

var (
	tables = map[Style][]substitution{
		Formal:   compile(lexicon.Expansions),
		Casual:   compile(lexicon.Contractions),
		Friendly: compile(lexicon.Contractions),
		Concise:  compileFillers(lexicon.Fillers.Words()),
	}
	simplifications = compile(lexicon.Simplifications)
)

// Rewrite applies the table for style in declared order. Unsupported styles return text unchanged.
func Rewrite(text string, style Style) string {
	table, ok := tables[style]
	if !ok {
		return text
	}
	return run(text, table)
}

// Simplify replaces complex vocabulary with plain words.
func Simplify(text string) string { return run(text, simplifications) }

func run(text string, table []substitution) string {
	for _, s := range table {
		text = replace(text, s)
	}
	return text
}

// replace substitutes every match of s. When a capitalized match is removed
// outright, the text that follows it takes over the capital.
func replace(text string, s substitution) string {
	locs := s.pattern.FindAllStringIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	capNext := false
	emit := func(seg string) {
		if capNext && seg != "" {
			seg = upperFirst(seg)
			capNext = false
		}
		b.WriteString(seg)
	}
	last := 0
	for _, loc := range locs {
		emit(text[last:loc[0]])
		match := text[loc[0]:loc[1]]
		repl := matchCase(match, s.to)
		if repl == "" && startsUpper(match) {
			capNext = true
		}
		emit(repl)
		last = loc[1]
	}
	emit(text[last:])
	return b.String()
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// matchCase carries a leading capital from match over to repl.
func matchCase(match, repl string) string {
	if repl == "" || !startsUpper(match) {
		return repl
	}
	return upperFirst(repl)
}
