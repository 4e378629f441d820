package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type annotateReply struct {
	status int
	body   string
}

// newVisionServer serves the stored file at /file and plays back the queued
// annotate replies in order.
func newVisionServer(t *testing.T, fileBody string, replies []annotateReply) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/file":
			_, _ = w.Write([]byte(fileBody))
		case "/annotate":
			require.Less(t, calls, len(replies), "more annotate calls than queued replies")
			rep := replies[calls]
			calls++
			w.WriteHeader(rep.status)
			_, _ = w.Write([]byte(rep.body))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return srv, &calls
}

func fullText(text, locale string) string {
	bs, _ := json.Marshal(map[string]any{
		"responses": []map[string]any{{
			"fullTextAnnotation": map[string]any{"text": text},
			"textAnnotations": []map[string]any{
				{"locale": locale, "description": text},
			},
		}},
	})
	return string(bs)
}

func TestRecognizeURLSuccess(t *testing.T) {
	srv, calls := newVisionServer(t, "pdf-bytes", []annotateReply{
		{status: http.StatusOK, body: fullText("Electricity bill\nTotal: 420 kWh", "en")},
	})
	defer srv.Close()

	client := NewVisionClient(Config{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/annotate",
		Backoff:  func(int) {},
	}, nil)

	res, err := client.RecognizeURL(context.Background(), srv.URL+"/file", "march-bill.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Electricity bill\nTotal: 420 kWh", res.Text)
	assert.Equal(t, "en", res.Language)
	assert.Equal(t, 1, *calls)
}

func TestRecognizeURLRetriesThenSucceeds(t *testing.T) {
	srv, calls := newVisionServer(t, "img", []annotateReply{
		{status: http.StatusInternalServerError, body: "boom"},
		{status: http.StatusOK, body: fullText("FLOOR PLAN", "en")},
	})
	defer srv.Close()

	backoffs := 0
	client := NewVisionClient(Config{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/annotate",
		Backoff:  func(int) { backoffs++ },
	}, nil)

	res, err := client.RecognizeURL(context.Background(), srv.URL+"/file", "plan.png")
	require.NoError(t, err)
	assert.Equal(t, "FLOOR PLAN", res.Text)
	assert.Equal(t, 2, *calls)
	assert.Equal(t, 1, backoffs)
}

func TestRecognizeURLExhaustsAttempts(t *testing.T) {
	noText, _ := json.Marshal(map[string]any{
		"responses": []map[string]any{{}},
	})
	srv, calls := newVisionServer(t, "img", []annotateReply{
		{status: http.StatusOK, body: string(noText)},
		{status: http.StatusOK, body: string(noText)},
	})
	defer srv.Close()

	client := NewVisionClient(Config{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/annotate",
		Attempts: 2,
		Backoff:  func(int) {},
	}, nil)

	_, err := client.RecognizeURL(context.Background(), srv.URL+"/file", "blank.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OCR failed for blank.jpg after 2 attempts")
	assert.Contains(t, err.Error(), "no text detected")
	assert.Equal(t, 2, *calls)
}

func TestRecognizeURLSurfacesVisionError(t *testing.T) {
	bad, _ := json.Marshal(map[string]any{
		"responses": []map[string]any{{
			"error": map[string]any{"message": "image too large"},
		}},
	})
	srv, _ := newVisionServer(t, "img", []annotateReply{
		{status: http.StatusOK, body: string(bad)},
	})
	defer srv.Close()

	client := NewVisionClient(Config{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/annotate",
		Attempts: 1,
		Backoff:  func(int) {},
	}, nil)

	_, err := client.RecognizeURL(context.Background(), srv.URL+"/file", "huge.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image too large")
}

func TestRecognizeURLFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewVisionClient(Config{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/annotate",
		Backoff:  func(int) {},
	}, nil)

	_, err := client.RecognizeURL(context.Background(), srv.URL+"/gone.pdf", "gone.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch gone.pdf")
}
