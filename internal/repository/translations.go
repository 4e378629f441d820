package repository

import (
	"context"
	"log/slog"

	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/gen/ent/translation"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/utils"
)

type TranslationRepository interface {
	ListByLocale(ctx context.Context, locale string) ([]*entity.Translation, error)
	// Upsert writes one key for one locale, overwriting any previous value.
	Upsert(ctx context.Context, key, locale, value, kind string) error
}

type translationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTranslationRepository(client *ent.Client, logger *slog.Logger) TranslationRepository {
	return &translationRepository{
		client: client,
		logger: logger,
	}
}

func (r *translationRepository) ListByLocale(ctx context.Context, locale string) ([]*entity.Translation, error) {
	ts, err := r.client.Translation.Query().
		Where(translation.Locale(locale)).
		Order(translation.ByKey()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list translations", "locale", locale, "error", err)
		return nil, common.NewAppError("DB_ERROR", "list translations", err)
	}

	result := make([]*entity.Translation, len(ts))
	for i, t := range ts {
		result[i] = utils.ToTranslation(t)
	}
	return result, nil
}

func (r *translationRepository) Upsert(ctx context.Context, key, locale, value, kind string) error {
	err := r.client.Translation.Create().
		SetKey(key).
		SetLocale(locale).
		SetValue(value).
		SetKind(kind).
		OnConflictColumns(translation.FieldKey, translation.FieldLocale).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert translation", "key", key, "locale", locale, "error", err)
		return common.NewAppError("DB_ERROR", "upsert translation", err)
	}
	return nil
}
