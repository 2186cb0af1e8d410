package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maazali/collegia/internal/app/models"
)

// ActivityRepository handles the append-only activity log
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// Insert appends one feed entry; the timestamp is store-generated.
func (r *ActivityRepository) Insert(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activity_log (category, details, icon, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, logged_at
	`

	err := r.db.QueryRow(ctx, query,
		activity.Category, activity.Details, activity.Icon, activity.Color,
	).Scan(&activity.ID, &activity.LoggedAt)
	if err != nil {
		return fmt.Errorf("error recording activity: %w", err)
	}

	return nil
}

// Recent fetches the latest entries, most recent first, bounded by limit.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]*models.Activity, error) {
	query := `
		SELECT id, category, details, icon, color, logged_at
		FROM activity_log
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(
			&a.ID,
			&a.Category,
			&a.Details,
			&a.Icon,
			&a.Color,
			&a.LoggedAt,
		); err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
