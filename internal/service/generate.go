package service

import (
	"context"
	"fmt"
	"strings"

	"writeassist/internal/corrector"
	"writeassist/internal/domain"
	"writeassist/internal/remote"
	"writeassist/internal/rewriter"
	"writeassist/internal/summarizer"
)

// Generated is the result of an operation that has a remote path and a local fallback.
// Method discloses which one produced Result.
type Generated struct {
	Success        bool          `json:"success"`
	Result         string        `json:"result"`
	Method         domain.Method `json:"method"`
	Error          string        `json:"error,omitempty"`
	TargetLanguage string        `json:"target_language,omitempty"`
}

// SummarizeOptions are the recognized summarize options.
type SummarizeOptions struct {
	Type         string
	Length       string
	MaxSentences int
}

func (a *Assistant) summarizeOptions(o SummarizeOptions) (SummarizeOptions, error) {
	if o.Type == "" {
		o.Type = "key-points"
	}
	if o.Length == "" {
		o.Length = a.defaults.Length
	}
	o.Length = strings.ToLower(o.Length)
	switch summarizer.Length(o.Length) {
	case summarizer.Short, summarizer.Medium, summarizer.Long:
	default:
		return o, invalid("length", o.Length)
	}
	if o.MaxSentences < 0 {
		return o, invalid("max_sentences", fmt.Sprint(o.MaxSentences))
	}
	return o, nil
}

// Summarize asks the remote backend for a summary and falls back to extractive summarization.
func (a *Assistant) Summarize(ctx context.Context, text string, opts SummarizeOptions) (*Generated, error) {
	t, err := a.validateMin(text, a.limits.MinSummarizeChars)
	if err != nil {
		return nil, err
	}
	opts, err = a.summarizeOptions(opts)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf("Summarize the following text in %s length focusing on %s.\n\nText: %s\n\nProvide a clear, concise summary:",
		opts.Length, opts.Type, truncateRunes(t, 5000))
	if out := a.attempt(ctx, "summarize", prompt); out.Status == remote.StatusOK {
		return &Generated{Success: true, Result: out.Text, Method: methodFor(out.Backend)}, nil
	}
	var summary string
	if opts.MaxSentences > 0 {
		summary = a.summarizer.SummarizeN(t, opts.MaxSentences)
	} else {
		summary = a.summarizer.Summarize(t, opts.Length)
	}
	return &Generated{Success: true, Result: summary, Method: domain.MethodExtractive}, nil
}

// RewriteOptions are the recognized rewrite options.
type RewriteOptions struct {
	Style        string
	ReadingLevel string
}

// Rewrite asks the remote backend to restyle text and falls back to the pattern rewriter.
func (a *Assistant) Rewrite(ctx context.Context, text string, opts RewriteOptions) (*Generated, error) {
	t, err := a.validateMin(text, a.limits.MinRewriteChars)
	if err != nil {
		return nil, err
	}
	st, err := a.style(opts.Style)
	if err != nil {
		return nil, err
	}
	level := strings.ToLower(opts.ReadingLevel)
	if level == "" {
		level = a.defaults.ReadingLevel
	}
	switch level {
	case "basic", "intermediate", "advanced":
	default:
		return nil, invalid("reading level", opts.ReadingLevel)
	}
	prompt := fmt.Sprintf("Rewrite the following text with a %s tone at a %s reading level.\nKeep the meaning the same but adjust the style and vocabulary appropriately.\n\nText: %s\n\nRewritten version:",
		st, level, t)
	if out := a.attempt(ctx, "rewrite", prompt); out.Status == remote.StatusOK {
		return &Generated{Success: true, Result: out.Text, Method: methodFor(out.Backend)}, nil
	}
	result := rewriter.Rewrite(t, st)
	if level == "basic" {
		result = rewriter.Simplify(result)
	}
	return &Generated{Success: true, Result: result, Method: domain.MethodHeuristic}, nil
}

// Simplify replaces complex vocabulary locally.
func (a *Assistant) Simplify(text string) (*Generated, error) {
	t, err := a.Validate(text)
	if err != nil {
		return nil, err
	}
	return &Generated{Success: true, Result: rewriter.Simplify(t), Method: domain.MethodHeuristic}, nil
}

// Proofread asks the remote backend for corrected text and falls back to the basic proofreader.
func (a *Assistant) Proofread(ctx context.Context, text string) (*Generated, error) {
	t, err := a.validateMin(text, a.limits.MinRewriteChars)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf("Proofread and correct the following text. Fix spelling, grammar, and punctuation errors.\nReturn ONLY the corrected text, no explanations.\n\nText: %s\n\nCorrected version:", t)
	if out := a.attempt(ctx, "proofread", prompt); out.Status == remote.StatusOK {
		return &Generated{Success: true, Result: out.Text, Method: methodFor(out.Backend)}, nil
	}
	return &Generated{Success: true, Result: corrector.Proofread(t).Corrected, Method: domain.MethodBasic}, nil
}

// Languages maps supported target codes to display names.
var Languages = map[string]string{
	"es": "Spanish", "fr": "French", "de": "German",
	"it": "Italian", "pt": "Portuguese", "ja": "Japanese",
	"zh": "Chinese", "ko": "Korean", "ru": "Russian", "ar": "Arabic",
}

// Translate requires the remote backend; without it the result is an explanatory notice.
func (a *Assistant) Translate(ctx context.Context, text, target string) (*Generated, error) {
	t, err := a.Validate(text)
	if err != nil {
		return nil, err
	}
	if target == "" {
		target = "es"
	}
	name, ok := Languages[strings.ToLower(target)]
	if !ok {
		name = target
	}
	prompt := fmt.Sprintf("Translate the following English text to %s.\nReturn ONLY the translation, no explanations.\n\nText: %s\n\n%s translation:", name, t, name)
	out := a.attempt(ctx, "translate", prompt)
	if out.Status == remote.StatusOK {
		return &Generated{Success: true, Result: out.Text, Method: methodFor(out.Backend), TargetLanguage: target}, nil
	}
	return &Generated{
		Success:        false,
		Result:         fmt.Sprintf("[Translation to %s requires API key. Original: %s]", name, t),
		Method:         domain.MethodNone,
		Error:          out.Err.Error(),
		TargetLanguage: target,
	}, nil
}

// altTextLimit caps generated alt text.
const altTextLimit = 125

// AltText describes an image from its surrounding context.
func (a *Assistant) AltText(ctx context.Context, pageContext, currentAlt string) *Generated {
	pageContext = strings.TrimSpace(pageContext)
	currentAlt = strings.TrimSpace(currentAlt)
	prompt := fmt.Sprintf("Generate descriptive alt text for an image (max %d characters).\n\nContext: %s\nCurrent alt text: %s\n\nProvide improved alt text:",
		altTextLimit, truncateRunes(pageContext, 500), currentAlt)
	if out := a.attempt(ctx, "alt-text", prompt); out.Status == remote.StatusOK {
		return &Generated{Success: true, Result: truncateRunes(out.Text, altTextLimit), Method: methodFor(out.Backend)}
	}
	if currentAlt != "" {
		return &Generated{Success: true, Result: currentAlt, Method: domain.MethodExisting}
	}
	if pageContext != "" {
		return &Generated{Success: true, Result: "Image: " + truncateRunes(pageContext, 100), Method: domain.MethodContext}
	}
	return &Generated{Success: true, Result: "Image description unavailable", Method: domain.MethodContext}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
