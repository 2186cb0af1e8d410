package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/config"
)

// CreateDefaultData writes the initial settings rows a fresh install needs.
// Existing keys are left untouched, so operator edits survive restarts.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default settings...")

	defaults := map[string]string{
		"institution_name": cfg.Institution.Name,
		"session":          cfg.Institution.Session,
		"currency":         "PKR",
	}

	for key, value := range defaults {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO school_settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
			key, value)
		if err != nil {
			lgr.Error().Err(err).Str("key", key).Msg("Error seeding default setting")
			return err
		}
	}

	return nil
}
