package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrunx/es2square/internal/llm"
)

func chatReply(content string) string {
	bs, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(bs)
}

func TestCompleteReturnsContent(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(chatReply(`{"findings": []}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	out, err := c.Complete(context.Background(), llm.UserPrompt("analyze this building"))
	require.NoError(t, err)

	assert.Equal(t, `{"findings": []}`, out)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "deepseek-chat", gotBody["model"])

	msgs := gotBody["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].(map[string]any)["role"])
}

func TestCompleteTrimsWhitespace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("\n  {\"ok\": true}  \n")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	out, err := c.Complete(context.Background(), llm.UserPrompt("x"))
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, out)
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.Complete(context.Background(), llm.UserPrompt("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCompleteEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("   ")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.Complete(context.Background(), llm.UserPrompt("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.Complete(context.Background(), llm.UserPrompt("x"))
	require.Error(t, err)
}

func TestAnalyzeFilesListsURLs(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []llm.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 1)
		prompt = body.Messages[0].Content
		_, _ = w.Write([]byte(chatReply(`{"findings": []}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.AnalyzeFiles(context.Background(), []string{
		"https://store.example/bill-1.pdf",
		"https://store.example/plan.png",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "bill-1.pdf")
	assert.Contains(t, prompt, "plan.png")
}
