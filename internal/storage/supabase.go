// Package storage persists uploaded audit documents in Supabase object
// storage over its REST API and hands back public URLs the OCR and report
// layers can fetch.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
)

// DocumentStore is what the intake and report layers depend on.
type DocumentStore interface {
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, fileName string, data []byte, contentType string) (string, error)
	PublicURL(objectKey string) string
}

type Config struct {
	BaseURL    string // project URL, e.g. https://xyz.supabase.co
	ServiceKey string
	Bucket     string // default constants.BucketName
	Timeout    time.Duration
}

type SupabaseStore struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewSupabaseStore(cfg Config, logger *slog.Logger) *SupabaseStore {
	if cfg.Bucket == "" {
		cfg.Bucket = constants.BucketName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SupabaseStore{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// EnsureBucket creates the public bucket if it does not exist yet. A 409
// from the API means another instance got there first.
func (s *SupabaseStore) EnsureBucket(ctx context.Context) error {
	// The bucket accepts the intake document types plus application/json,
	// which shared report summaries are uploaded as.
	body := map[string]any{
		"id":                 s.cfg.Bucket,
		"name":               s.cfg.Bucket,
		"public":             true,
		"file_size_limit":    constants.MaxUploadBytes,
		"allowed_mime_types": append(constants.AllowedMIMEList(), "application/json"),
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode bucket request: %w", err)
	}

	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/storage/v1/bucket"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return err
	}
	s.auth(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 == 2 {
		s.log.Info("storage.bucket.created", "bucket", s.cfg.Bucket)
		return nil
	}
	if resp.StatusCode == http.StatusConflict {
		s.log.Debug("storage.bucket.exists", "bucket", s.cfg.Bucket)
		return nil
	}
	raw, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("create bucket status %d: %s", resp.StatusCode, string(raw))
}

// Upload stores the file under a fresh uuid key, preserving the original
// extension, and returns the public URL.
func (s *SupabaseStore) Upload(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	if len(data) > constants.MaxUploadBytes {
		return "", fmt.Errorf("file %s exceeds %d bytes", fileName, constants.MaxUploadBytes)
	}

	key := uuid.New().String()
	if ext := constants.NormalizeExt(filepath.Ext(fileName)); ext != "" {
		key += "." + ext
	}
	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/storage/v1/object/" + s.cfg.Bucket + "/" + key

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	s.auth(req)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload %s status %d: %s", fileName, resp.StatusCode, string(raw))
	}

	s.log.Info("storage.upload.ok",
		"file", fileName,
		"key", key,
		"bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return s.PublicURL(key), nil
}

// PublicURL builds the unauthenticated read URL for an object key.
func (s *SupabaseStore) PublicURL(objectKey string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/storage/v1/object/public/" + s.cfg.Bucket + "/" + objectKey
}

func (s *SupabaseStore) auth(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.cfg.ServiceKey)
	req.Header.Set("apikey", s.cfg.ServiceKey)
}
