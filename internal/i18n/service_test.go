package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrunx/es2square/internal/entity"
)

type fakeTranslationRepo struct {
	byLocale map[string][]*entity.Translation
	listErr  error
	upserts  []string
}

func (f *fakeTranslationRepo) ListByLocale(ctx context.Context, locale string) ([]*entity.Translation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byLocale[locale], nil
}

func (f *fakeTranslationRepo) Upsert(ctx context.Context, key, locale, value, kind string) error {
	f.upserts = append(f.upserts, key+"/"+locale)
	if f.byLocale == nil {
		f.byLocale = make(map[string][]*entity.Translation)
	}
	f.byLocale[locale] = append(f.byLocale[locale], &entity.Translation{Key: key, Locale: locale, Value: value, Kind: kind})
	return nil
}

func TestLookupBeforeLoad(t *testing.T) {
	s := NewService(&fakeTranslationRepo{}, nil)

	_, err := s.Lookup("dashboard.title")
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = s.All()
	assert.ErrorIs(t, err, ErrNotReady)

	assert.Empty(t, s.Locale())
}

func TestLoadAndLookup(t *testing.T) {
	repo := &fakeTranslationRepo{byLocale: map[string][]*entity.Translation{
		"ar": {
			{Key: "dashboard.title", Locale: "ar", Value: "لوحة التحكم"},
			{Key: "report.export", Locale: "ar", Value: "تصدير"},
		},
	}}
	s := NewService(repo, nil)
	require.NoError(t, s.Load(context.Background(), "ar"))

	assert.Equal(t, "ar", s.Locale())

	v, err := s.Lookup("dashboard.title")
	require.NoError(t, err)
	assert.Equal(t, "لوحة التحكم", v)

	// Missing keys fall back to the key itself.
	v, err = s.Lookup("sidebar.buildings")
	require.NoError(t, err)
	assert.Equal(t, "sidebar.buildings", v)

	all, err := s.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLoadError(t *testing.T) {
	s := NewService(&fakeTranslationRepo{listErr: errors.New("db down")}, nil)

	err := s.Load(context.Background(), "en")
	require.Error(t, err)
	assert.Empty(t, s.Locale())
}

func TestStoreRefreshesLoadedLocale(t *testing.T) {
	repo := &fakeTranslationRepo{byLocale: map[string][]*entity.Translation{"en": {}}}
	s := NewService(repo, nil)
	require.NoError(t, s.Load(context.Background(), "en"))

	require.NoError(t, s.Store(context.Background(), "report.share", "en", "Share report", "ui"))

	v, err := s.Lookup("report.share")
	require.NoError(t, err)
	assert.Equal(t, "Share report", v)
	assert.Equal(t, []string{"report.share/en"}, repo.upserts)
}

func TestStoreOtherLocaleLeavesTableAlone(t *testing.T) {
	repo := &fakeTranslationRepo{byLocale: map[string][]*entity.Translation{"en": {}}}
	s := NewService(repo, nil)
	require.NoError(t, s.Load(context.Background(), "en"))

	require.NoError(t, s.Store(context.Background(), "report.share", "ar", "مشاركة", "ui"))

	v, err := s.Lookup("report.share")
	require.NoError(t, err)
	assert.Equal(t, "report.share", v, "en table should not pick up an ar write")
}
