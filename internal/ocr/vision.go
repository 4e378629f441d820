// Package ocr extracts text from uploaded audit documents through the Google
// Cloud Vision REST API. Files are fetched back from object storage by URL,
// so the recognizer works on anything the store can serve.
package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Recognizer is what the intake pipeline depends on.
type Recognizer interface {
	RecognizeURL(ctx context.Context, fileURL, fileName string) (Result, error)
}

// Result is the text pulled from a single document.
type Result struct {
	Text       string
	Language   string
	Duration   time.Duration
	Confidence float32
}

type Config struct {
	APIKey   string
	Endpoint string        // default https://vision.googleapis.com/v1/images:annotate
	Timeout  time.Duration // per-request timeout
	Attempts int           // default 3
	// Backoff sleeps between attempts; tests replace it.
	Backoff func(attempt int)
}

type VisionClient struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewVisionClient(cfg Config, logger *slog.Logger) *VisionClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://vision.googleapis.com/v1/images:annotate"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.Backoff == nil {
		cfg.Backoff = func(attempt int) {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &VisionClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// RecognizeURL downloads the stored file and runs both plain and document
// text detection over it, retrying transient failures with linear backoff.
func (v *VisionClient) RecognizeURL(ctx context.Context, fileURL, fileName string) (Result, error) {
	start := time.Now()

	data, err := v.fetch(ctx, fileURL)
	if err != nil {
		return Result{}, fmt.Errorf("fetch %s for OCR: %w", fileName, err)
	}

	var lastErr error
	for attempt := 1; attempt <= v.cfg.Attempts; attempt++ {
		text, lang, conf, err := v.annotate(ctx, data)
		if err == nil {
			res := Result{
				Text:       text,
				Language:   lang,
				Duration:   time.Since(start),
				Confidence: conf,
			}
			v.log.Info("ocr.vision.ok",
				"file", fileName,
				"attempt", attempt,
				"text_len", len(text),
				"elapsed_ms", res.Duration.Milliseconds(),
			)
			return res, nil
		}
		lastErr = err
		v.log.Warn("ocr.vision.attempt_failed",
			"file", fileName,
			"attempt", attempt,
			"error", err,
		)
		if attempt < v.cfg.Attempts {
			v.cfg.Backoff(attempt)
		}
	}

	v.log.Error("ocr.vision.failed",
		"file", fileName,
		"url", fileURL,
		"attempts", v.cfg.Attempts,
		"error", lastErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{}, fmt.Errorf("OCR failed for %s after %d attempts: %w", fileName, v.cfg.Attempts, lastErr)
}

func (v *VisionClient) fetch(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("storage returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (v *VisionClient) annotate(ctx context.Context, data []byte) (string, string, float32, error) {
	body := map[string]any{
		"requests": []map[string]any{{
			"image": map[string]any{
				"content": base64.StdEncoding.EncodeToString(data),
			},
			"features": []map[string]any{
				{"type": "TEXT_DETECTION"},
				{"type": "DOCUMENT_TEXT_DETECTION"},
			},
			"imageContext": map[string]any{
				"languageHints": []string{"en", "ar"},
			},
		}},
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return "", "", 0, fmt.Errorf("encode annotate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.Endpoint+"?key="+v.cfg.APIKey, bytes.NewReader(bs))
	if err != nil {
		return "", "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return "", "", 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return "", "", 0, fmt.Errorf("vision status %d: %s", resp.StatusCode, string(raw))
	}

	var out struct {
		Responses []struct {
			FullTextAnnotation struct {
				Text string `json:"text"`
			} `json:"fullTextAnnotation"`
			TextAnnotations []struct {
				Locale      string `json:"locale"`
				Description string `json:"description"`
			} `json:"textAnnotations"`
			Error *struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"responses"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", "", 0, fmt.Errorf("decode vision response: %w", err)
	}
	if len(out.Responses) == 0 {
		return "", "", 0, fmt.Errorf("empty vision response")
	}
	r := out.Responses[0]
	if r.Error != nil {
		return "", "", 0, fmt.Errorf("vision error: %s", r.Error.Message)
	}

	text := r.FullTextAnnotation.Text
	lang := ""
	if len(r.TextAnnotations) > 0 {
		if text == "" {
			text = r.TextAnnotations[0].Description
		}
		lang = r.TextAnnotations[0].Locale
	}
	if text == "" {
		return "", "", 0, fmt.Errorf("no text detected")
	}
	return text, lang, 1.0, nil
}
