package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	dbpkg "github.com/ritikraj2425/mergeflow/db"
	"github.com/ritikraj2425/mergeflow/internal/domain"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// SaveStats overwrites the stored stats of the user.
func (r *StatsRepository) SaveStats(ctx context.Context, userID string, stats domain.UserStats) error {
	const q = `
		INSERT INTO user_stats (
			user_id,
			low_impact_prs,
			medium_impact_prs,
			high_impact_prs,
			total_merged_prs,
			last_updated
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET
			low_impact_prs = EXCLUDED.low_impact_prs,
			medium_impact_prs = EXCLUDED.medium_impact_prs,
			high_impact_prs = EXCLUDED.high_impact_prs,
			total_merged_prs = EXCLUDED.total_merged_prs,
			last_updated = EXCLUDED.last_updated
	`

	_, err := dbpkg.Conn(ctx, r.pool).Exec(ctx, q,
		userID,
		stats.LowImpactPRs,
		stats.MediumImpactPRs,
		stats.HighImpactPRs,
		stats.TotalMergedPRs,
		stats.LastUpdated,
	)
	return err
}
