package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/app/models"
)

// defaultFeedLimit bounds Recent when the caller passes no usable limit.
const defaultFeedLimit = 5

// ActivityService is the append-only feed behind the dashboard summary.
type ActivityService struct {
	store  ActivityStore
	logger zerolog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(store ActivityStore, logger zerolog.Logger) *ActivityService {
	return &ActivityService{
		store:  store,
		logger: logger,
	}
}

// Record appends a feed entry with the category's presentation hints. A
// feed write must never fail the domain operation that triggered it, so
// errors are logged and swallowed here.
func (s *ActivityService) Record(ctx context.Context, category models.ActivityCategory, details string) {
	icon, color := category.Hints()
	activity := &models.Activity{
		Category: category,
		Details:  details,
		Icon:     icon,
		Color:    color,
	}

	if err := s.store.Insert(ctx, activity); err != nil {
		s.logger.Error().Err(err).Str("category", string(category)).Msg("Failed to record activity")
	}
}

// Recent returns the latest feed entries, most recent first.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return s.store.Recent(ctx, limit)
}
