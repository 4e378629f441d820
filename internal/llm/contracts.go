package llm

import "context"

// Message is one chat turn sent to the completion endpoint.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the interface the audit pipeline depends on: message history
// in, free-text (usually JSON) completion out.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// FileAnalyzer is the variant that takes stored file URLs directly instead
// of extracted text.
type FileAnalyzer interface {
	AnalyzeFiles(ctx context.Context, fileURLs []string) (string, error)
}

// UserPrompt wraps a single prompt as a one-message history.
func UserPrompt(prompt string) []Message {
	return []Message{{Role: "user", Content: prompt}}
}
