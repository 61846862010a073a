package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"writeassist/internal/config"
	"writeassist/internal/corrector"
	"writeassist/internal/domain"
	"writeassist/internal/keywords"
	"writeassist/internal/readability"
	"writeassist/internal/remote"
	"writeassist/internal/rewriter"
	"writeassist/internal/stats"
	"writeassist/internal/suggest"
	"writeassist/internal/summarizer"
	"writeassist/internal/tokenizer"
	"writeassist/internal/tone"
)

// PrivacyNotice is attached to every aggregate analysis.
const PrivacyNotice = "Your text was analyzed locally and was not stored or sent to any third party."

// keywordCount is the number of keywords included in an Analysis.
const keywordCount = 10

// Limits bounds accepted input.
type Limits struct {
	MaxChars          int
	MinSummarizeChars int
	MinRewriteChars   int
}

// Defaults are the option values used when a request leaves them empty.
type Defaults struct {
	Length       string
	Style        string
	ReadingLevel string
}

// Assistant composes the analyzers and the optional remote backend.
// It holds no mutable state and is safe for concurrent use.
type Assistant struct {
	backend    *remote.Backend
	summarizer domain.Summarizer
	corrector  *corrector.Corrector
	keywords   *keywords.Extractor
	limits     Limits
	defaults   Defaults
	log        zerolog.Logger
}

// New assembles an Assistant from configuration. A nil backend means heuristics only.
func New(cfg *config.AppConfig, backend *remote.Backend, sum domain.Summarizer, log zerolog.Logger) *Assistant {
	if backend == nil {
		backend = remote.Unavailable("remote backend disabled")
	}
	if sum == nil {
		sum = summarizer.NewFrequencySummarizer()
	}
	return &Assistant{
		backend:    backend,
		summarizer: sum,
		corrector:  corrector.New(),
		keywords:   keywords.NewExtractor(),
		limits: Limits{
			MaxChars:          cfg.Limits.MaxChars,
			MinSummarizeChars: cfg.Limits.MinSummarizeChars,
			MinRewriteChars:   cfg.Limits.MinRewriteChars,
		},
		defaults: Defaults{
			Length:       cfg.Summarizer.Length,
			Style:        cfg.Rewriter.Style,
			ReadingLevel: cfg.Rewriter.ReadingLevel,
		},
		log: log,
	}
}

// Validate trims text and rejects empty or oversized input.
func (a *Assistant) Validate(text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", domain.ErrEmptyInput
	}
	if n := utf8.RuneCountInString(t); a.limits.MaxChars > 0 && n > a.limits.MaxChars {
		return "", &domain.InputTooLargeError{Length: n, Max: a.limits.MaxChars}
	}
	return t, nil
}

func (a *Assistant) validateMin(text string, min int) (string, error) {
	t, err := a.Validate(text)
	if err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(t); n < min {
		return "", &domain.InputTooShortError{Length: n, Min: min}
	}
	return t, nil
}

func (a *Assistant) document(text string) (*tokenizer.Document, error) {
	t, err := a.Validate(text)
	if err != nil {
		return nil, err
	}
	return tokenizer.Tokenize(t)
}

// ReadabilityReport carries either scores or an error, never both.
type ReadabilityReport struct {
	*readability.Scores
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the scores were computed.
func (r ReadabilityReport) OK() bool { return r.Scores != nil }

// Analysis is the aggregate of every local analyzer over one text.
type Analysis struct {
	Grammar       []corrector.Suggestion `json:"grammar"`
	Readability   ReadabilityReport      `json:"readability"`
	Statistics    stats.Statistics       `json:"statistics"`
	Suggestions   []suggest.Suggestion   `json:"suggestions"`
	Tone          tone.Result            `json:"tone"`
	Keywords      []keywords.Keyword     `json:"keywords"`
	PrivacyNotice string                 `json:"privacy_notice"`
}

// Analyze runs every analyzer independently over the same tokenized text.
// A readability failure is reported inside the result and does not abort the rest.
func (a *Assistant) Analyze(text string) (*Analysis, error) {
	doc, err := a.document(text)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Grammar:       a.corrector.Correct(doc.Text).Suggestions,
		Readability:   readabilityReport(doc),
		Statistics:    stats.Compute(doc),
		Suggestions:   suggest.Generate(doc),
		Tone:          tone.Classify(doc.Text),
		Keywords:      a.keywords.Extract(doc, keywordCount),
		PrivacyNotice: PrivacyNotice,
	}, nil
}

func readabilityReport(doc *tokenizer.Document) ReadabilityReport {
	scores, err := readability.Score(doc)
	if err != nil {
		return ReadabilityReport{Error: "computation_error", Message: err.Error()}
	}
	return ReadabilityReport{Scores: &scores}
}

// Grammar runs the rule-based corrector.
func (a *Assistant) Grammar(text string) (corrector.Result, error) {
	t, err := a.Validate(text)
	if err != nil {
		return corrector.Result{}, err
	}
	return a.corrector.Correct(t), nil
}

// Readability scores text; degenerate input is reported in the report, not as an error.
func (a *Assistant) Readability(text string) (ReadabilityReport, error) {
	doc, err := a.document(text)
	if err != nil {
		return ReadabilityReport{}, err
	}
	return readabilityReport(doc), nil
}

// Statistics counts words, sentences, characters and paragraphs.
func (a *Assistant) Statistics(text string) (stats.Statistics, error) {
	doc, err := a.document(text)
	if err != nil {
		return stats.Statistics{}, err
	}
	return stats.Compute(doc), nil
}

// Tone classifies formality and sentiment.
func (a *Assistant) Tone(text string) (tone.Result, error) {
	t, err := a.Validate(text)
	if err != nil {
		return tone.Result{}, err
	}
	return tone.Classify(t), nil
}

// Suggestions returns the style suggestions for text.
func (a *Assistant) Suggestions(text string) ([]suggest.Suggestion, error) {
	doc, err := a.document(text)
	if err != nil {
		return nil, err
	}
	return suggest.Generate(doc), nil
}

// Keywords returns the top n keywords of text.
func (a *Assistant) Keywords(text string, n int) ([]keywords.Keyword, error) {
	doc, err := a.document(text)
	if err != nil {
		return nil, err
	}
	return a.keywords.Extract(doc, n), nil
}

// Improvement is the corrector followed by the style rewriter.
type Improvement struct {
	Original     string                 `json:"original"`
	Corrected    string                 `json:"corrected"`
	Improved     string                 `json:"improved"`
	Style        rewriter.Style         `json:"style"`
	GrammarFixes int                    `json:"grammar_fixes"`
	Suggestions  []corrector.Suggestion `json:"suggestions"`
}

// Improve corrects text and then rewrites it in style. An empty style uses the default.
func (a *Assistant) Improve(text, style string) (*Improvement, error) {
	t, err := a.Validate(text)
	if err != nil {
		return nil, err
	}
	st, err := a.style(style)
	if err != nil {
		return nil, err
	}
	fixed := a.corrector.Correct(t)
	return &Improvement{
		Original:     t,
		Corrected:    fixed.Corrected,
		Improved:     rewriter.Rewrite(fixed.Corrected, st),
		Style:        st,
		GrammarFixes: len(fixed.Suggestions),
		Suggestions:  fixed.Suggestions,
	}, nil
}

func (a *Assistant) style(s string) (rewriter.Style, error) {
	if strings.TrimSpace(s) == "" {
		s = a.defaults.Style
	}
	return rewriter.ParseStyle(s)
}

// Status describes the remote backend as seen by clients.
type Status struct {
	Status          string   `json:"status"`
	RemoteAvailable bool     `json:"remote_available"`
	Backend         string   `json:"backend,omitempty"`
	Reason          string   `json:"reason,omitempty"`
	Methods         []string `json:"methods"`
}

// Status reports remote availability and the supported operations.
func (a *Assistant) Status() Status {
	st := Status{
		Status:          "online",
		RemoteAvailable: a.backend.Available(),
		Backend:         a.backend.Name(),
		Methods: []string{
			"analyze", "grammar", "readability", "statistics", "tone", "suggestions",
			"summarize", "rewrite", "simplify", "improve", "proofread", "translate", "alt-text",
		},
	}
	if !st.RemoteAvailable {
		st.Reason = a.backend.Reason()
	}
	return st
}

// WordCount returns the number of real words in text, for usage tracking.
func WordCount(text string) int { return len(tokenizer.Words(text)) }

func (a *Assistant) attempt(ctx context.Context, op, prompt string) remote.Outcome {
	out := a.backend.Attempt(ctx, prompt)
	switch out.Status {
	case remote.StatusFailed:
		a.log.Warn().Str("op", op).Str("backend", out.Backend).Err(out.Err).Msg("remote call failed, using local fallback")
	case remote.StatusUnavailable:
		a.log.Debug().Str("op", op).Msg("remote backend unavailable, using local fallback")
	}
	return out
}

func methodFor(backend string) domain.Method {
	switch backend {
	case "openai":
		return domain.MethodOpenAI
	default:
		return domain.MethodGemini
	}
}

func invalid(name, value string) error {
	return fmt.Errorf("%s %q: %w", name, value, domain.ErrInvalidOption)
}
