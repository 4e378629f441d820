package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClientSetGet(t *testing.T) {
	c := NewMemoryClient()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryClientMiss(t *testing.T) {
	c := NewMemoryClient()

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientExpiry(t *testing.T) {
	c := NewMemoryClient()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), -time.Second))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientDelete(t *testing.T) {
	c := NewMemoryClient()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClientOverwrite(t *testing.T) {
	c := NewMemoryClient()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, c.Set(ctx, "k", []byte("new"), time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestReportKey(t *testing.T) {
	assert.Equal(t, "detailed:0b7c", ReportKey("0b7c"))
}
