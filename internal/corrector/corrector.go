// Package corrector applies ordered regex rules that fix capitalization,
// punctuation spacing and repeated spaces.
//
// Rules run in slice order and each rule sees the output of the previous one,
// so a suggestion's Position refers to the text as it stood when its rule ran.
package corrector

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule is one pattern substitution. Replacement uses regexp template syntax ($1).
// When Func is set it is used instead of Replacement.
type Rule struct {
	ID          string
	Pattern     *regexp.Regexp
	Replacement string
	Func        func(string) string
	Message     string
	// WholeWord skips matches that touch a letter, digit or underscore.
	WholeWord bool
}

// Suggestion records a single rule match before substitution.
type Suggestion struct {
	Rule       string `json:"rule"`
	Position   int    `json:"position"`
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
	Message    string `json:"message"`
}

// Result is the output of a correction pass.
type Result struct {
	Original    string       `json:"original"`
	Corrected   string       `json:"corrected"`
	Suggestions []Suggestion `json:"suggestions"`
	HasIssues   bool         `json:"has_issues"`
}

// DefaultRules is the grammar pass, in application order.
var DefaultRules = []Rule{
	{
		ID:          "LOWERCASE_I",
		Pattern:     regexp.MustCompile(`i`),
		Replacement: "I",
		Message:     "The pronoun 'I' should be capitalized",
		WholeWord:   true,
	},
	{
		ID:          "SPACE_BEFORE_PUNCTUATION",
		Pattern:     regexp.MustCompile(`\s+([.,!?;:])`),
		Replacement: "$1",
		Message:     "Remove the space before punctuation",
	},
	{
		ID:          "MISSING_SPACE_AFTER_PUNCTUATION",
		Pattern:     regexp.MustCompile(`([.,!?;:])([A-Z])`),
		Replacement: "$1 $2",
		Message:     "Add a space after punctuation",
	},
	{
		ID:          "DOUBLE_SPACE",
		Pattern:     regexp.MustCompile(` {2,}`),
		Replacement: " ",
		Message:     "Multiple spaces detected; use a single space",
	},
}

// SentenceCaseRule capitalizes the first letter of the text and of every sentence.
var SentenceCaseRule = Rule{
	ID:      "SENTENCE_START",
	Pattern: regexp.MustCompile(`(^\w|[.!?]\s+\w)`),
	Func:    strings.ToUpper,
	Message: "Sentences should start with a capital letter",
}

// Corrector runs an ordered list of rules.
type Corrector struct {
	rules []Rule
}

// New returns a corrector over rules. With no rules it uses DefaultRules.
func New(rules ...Rule) *Corrector {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Corrector{rules: rules}
}

// Rules returns the rule IDs in application order.
func (c *Corrector) Rules() []string {
	ids := make([]string, len(c.rules))
	for i, r := range c.rules {
		ids[i] = r.ID
	}
	return ids
}

// Correct applies every rule in order and records each match.
func (c *Corrector) Correct(text string) Result {
	res := Result{Original: text, Suggestions: []Suggestion{}}
	current := text
	for _, rule := range c.rules {
		current = apply(rule, current, &res.Suggestions)
	}
	res.Corrected = current
	res.HasIssues = len(res.Suggestions) > 0
	return res
}

// Correct runs DefaultRules over text.
func Correct(text string) Result { return New().Correct(text) }

// Proofread runs DefaultRules, capitalizes sentence starts and trims surrounding whitespace.
func Proofread(text string) Result {
	rules := make([]Rule, 0, len(DefaultRules)+1)
	rules = append(rules, DefaultRules...)
	rules = append(rules, SentenceCaseRule)
	res := New(rules...).Correct(text)
	res.Corrected = strings.TrimSpace(res.Corrected)
	return res
}

func apply(rule Rule, text string, out *[]Suggestion) string {
	matches := rule.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		if rule.WholeWord && !standalone(text, m[0], m[1]) {
			continue
		}
		original := text[m[0]:m[1]]
		var repl string
		if rule.Func != nil {
			repl = rule.Func(original)
		} else {
			repl = string(rule.Pattern.ExpandString(nil, rule.Replacement, text, m))
		}
		if repl == original {
			continue
		}
		*out = append(*out, Suggestion{
			Rule:       rule.ID,
			Position:   utf8.RuneCountInString(text[:m[0]]),
			Original:   original,
			Suggestion: repl,
			Message:    rule.Message,
		})
		b.WriteString(text[last:m[0]])
		b.WriteString(repl)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func standalone(text string, start, end int) bool {
	if r, _ := utf8.DecodeLastRuneInString(text[:start]); wordRune(r) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !wordRune(r)
}

func wordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
