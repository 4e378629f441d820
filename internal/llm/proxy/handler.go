// Package proxy exposes the chat relay the web client talks to. The client
// never holds the provider API key; this handler validates the message
// history, strips unexpected roles, and forwards to the provider.
package proxy

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hrunx/es2square/internal/llm"
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int32
	Timeout     time.Duration
}

type Handler struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewHandler(cfg Config, logger *slog.Logger) *Handler {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.deepseek.com"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Messages []llm.Message `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "messages must be a non-empty array")
		return
	}
	if h.cfg.APIKey == "" {
		h.log.Error("chat.proxy.missing_api_key")
		writeError(w, http.StatusInternalServerError, "chat provider is not configured")
		return
	}

	// Only user and assistant turns are relayed. System prompts belong to
	// the server, not the browser.
	filtered := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == "user" || m.Role == "assistant" {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		writeError(w, http.StatusBadRequest, "messages must contain at least one user or assistant turn")
		return
	}

	body := map[string]any{
		"model":       h.cfg.Model,
		"temperature": h.cfg.Temperature,
		"max_tokens":  h.cfg.MaxTokens,
		"messages":    filtered,
	}
	endpoint := strings.TrimRight(h.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + h.cfg.APIKey}

	raw, status, err := llm.SendJSON(r.Context(), h.httpClient, endpoint, body, headers, h.log)
	if err != nil && status == 0 {
		h.log.Error("chat.proxy.upstream_error", "error", err)
		writeError(w, http.StatusBadGateway, "upstream request failed")
		return
	}
	if status/100 != 2 {
		// Pass the upstream status through so the client can distinguish
		// rate limits from auth failures.
		h.log.Warn("chat.proxy.upstream_status", "status", status)
		writeError(w, status, "upstream returned status "+http.StatusText(status))
		return
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		h.log.Error("chat.proxy.decode_error", "error", err)
		writeError(w, http.StatusInternalServerError, "invalid JSON response from upstream")
		return
	}
	if len(cc.Choices) == 0 || strings.TrimSpace(cc.Choices[0].Message.Content) == "" {
		writeError(w, http.StatusInternalServerError, "empty response from upstream")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"content": cc.Choices[0].Message.Content})
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, content-type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
