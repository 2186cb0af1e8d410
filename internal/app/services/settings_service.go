package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/app/models"
)

// SettingsService handles the institution key/value settings.
type SettingsService struct {
	db       TxRunner
	settings SettingsStore
	activity *ActivityService
	logger   zerolog.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(db TxRunner, settings SettingsStore, activity *ActivityService, logger zerolog.Logger) *SettingsService {
	return &SettingsService{
		db:       db,
		settings: settings,
		activity: activity,
		logger:   logger,
	}
}

// All returns every setting as a key → value map.
func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	return s.settings.All(ctx)
}

// Update upserts multiple settings in one transaction.
func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for key, value := range values {
			if err := s.settings.UpsertTx(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.activity.Record(ctx, models.ActivitySystem, "Institution settings updated")
	return nil
}
