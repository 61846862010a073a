package domain

import "context"

// Document represents a single text loaded into the system, from a file or a request body.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Method names the path that actually produced a result.
type Method string

const (
	MethodGemini     Method = "gemini"
	MethodOpenAI     Method = "openai"
	MethodExtractive Method = "extractive"
	MethodHeuristic  Method = "heuristic"
	MethodBasic      Method = "basic"
	MethodExisting   Method = "existing"
	MethodContext    Method = "context"
	MethodNone       Method = "none"
)

// Generator is a remote text-in/text-out model.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, length string) string
	SummarizeN(text string, maxSentences int) string
}
