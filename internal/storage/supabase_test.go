package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrunx/es2square/constants"
)

func TestEnsureBucket(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "created", status: http.StatusOK, wantErr: false},
		{name: "already exists", status: http.StatusConflict, wantErr: false},
		{name: "rejected", status: http.StatusBadRequest, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/storage/v1/bucket", r.URL.Path)
				assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			store := NewSupabaseStore(Config{BaseURL: srv.URL, ServiceKey: "service-key"}, nil)
			err := store.EnsureBucket(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUploadReturnsPublicURL(t *testing.T) {
	var gotPath, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewSupabaseStore(Config{BaseURL: srv.URL, ServiceKey: "k"}, nil)
	url, err := store.Upload(context.Background(), "March-Bill.PDF", []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", gotType)
	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/"+constants.BucketName+"/"), gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ".pdf"), "key should carry the lowercased extension: %s", gotPath)

	key := strings.TrimPrefix(gotPath, "/storage/v1/object/"+constants.BucketName+"/")
	assert.Equal(t, srv.URL+"/storage/v1/object/public/"+constants.BucketName+"/"+key, url)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	store := NewSupabaseStore(Config{BaseURL: "http://unused", ServiceKey: "k"}, nil)
	data := make([]byte, constants.MaxUploadBytes+1)
	_, err := store.Upload(context.Background(), "huge.pdf", data, "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "huge.pdf")
}

func TestUploadSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"invalid signature"}`))
	}))
	defer srv.Close()

	store := NewSupabaseStore(Config{BaseURL: srv.URL, ServiceKey: "bad"}, nil)
	_, err := store.Upload(context.Background(), "bill.pdf", []byte("x"), "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestPublicURL(t *testing.T) {
	store := NewSupabaseStore(Config{BaseURL: "https://xyz.supabase.co/", ServiceKey: "k", Bucket: "docs"}, nil)
	assert.Equal(t,
		"https://xyz.supabase.co/storage/v1/object/public/docs/abc.png",
		store.PublicURL("abc.png"),
	)
}
