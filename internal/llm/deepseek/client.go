package deepseek

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrunx/es2square/internal/llm"
)

// Complete implements llm.Completer using the chat/completions endpoint.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.complete.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"messages", len(messages),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  c.cfg.MaxTokens,
		"messages":    messages,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.complete.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.complete.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("decode deepseek response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.complete.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("no choices in deepseek response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	if content == "" {
		c.log.Error("llm.complete.empty_content",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("empty content in deepseek response")
	}

	c.log.Info("llm.complete.ok",
		"req_id", rid,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

// AnalyzeFiles implements llm.FileAnalyzer. DeepSeek has no native file
// input, so the stored file URLs are listed in the prompt and the model is
// asked to reason over the audit documents by name.
func (c *Client) AnalyzeFiles(ctx context.Context, fileURLs []string) (string, error) {
	var b strings.Builder
	b.WriteString("You are an energy audit analyst. The following uploaded documents belong to one building:\n")
	for _, u := range fileURLs {
		b.WriteString("- ")
		b.WriteString(u)
		b.WriteString("\n")
	}
	b.WriteString("\nProduce findings and recommendations as JSON with keys findings, recommendations, key_metrics, executive_summary.")
	return c.Complete(ctx, llm.UserPrompt(b.String()))
}
