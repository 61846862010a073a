package suggest

import (
	"strings"

	"writeassist/internal/lexicon"
	"writeassist/internal/tokenizer"
)

// MaxSuggestions caps the list returned by Generate.
const MaxSuggestions = 10

// LongSentenceWords is the word count above which a sentence is flagged.
const LongSentenceWords = 25

const (
	TypePassiveVoice  = "passive_voice"
	TypeLongSentence  = "long_sentence"
	TypeRepeatedWords = "repeated_words"
)

// Suggestion is an advisory message about one sentence.
type Suggestion struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Sentence string `json:"sentence"`
}

// Generate scans every sentence with the passive-voice, long-sentence and
// repeated-words heuristics, in that order, and keeps the first MaxSuggestions.
func Generate(doc *tokenizer.Document) []Suggestion {
	out := []Suggestion{}
	for _, sent := range doc.Sentences {
		words := sent.Words()
		if Passive(words) {
			out = append(out, Suggestion{
				Type:     TypePassiveVoice,
				Message:  "Consider using active voice instead of passive voice",
				Sentence: sent.Text,
			})
		}
		if len(words) > LongSentenceWords {
			out = append(out, Suggestion{
				Type:     TypeLongSentence,
				Message:  "This sentence is long; consider splitting it",
				Sentence: sent.Text,
			})
		}
		if Repeated(words) {
			out = append(out, Suggestion{
				Type:     TypeRepeatedWords,
				Message:  "This sentence repeats a word; consider varying your vocabulary",
				Sentence: sent.Text,
			})
		}
	}
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// Passive reports whether words contain an auxiliary verb and any word ending in "ed".
// It is a heuristic; false positives are expected.
func Passive(words []string) bool {
	aux, ed := false, false
	for _, w := range words {
		lw := strings.ToLower(w)
		if lexicon.PassiveAuxiliaries.Has(lw) {
			aux = true
		}
		if strings.HasSuffix(lw, "ed") {
			ed = true
		}
	}
	return aux && ed
}

// Repeated reports whether any word occurs twice, ignoring case.
func Repeated(words []string) bool {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		lw := strings.ToLower(w)
		if _, ok := seen[lw]; ok {
			return true
		}
		seen[lw] = struct{}{}
	}
	return false
}
