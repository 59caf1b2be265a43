package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dbpkg "github.com/ritikraj2425/mergeflow/db"
	"github.com/ritikraj2425/mergeflow/internal/domain"
)

type AchievementRepository struct {
	pool *pgxpool.Pool
}

func NewAchievementRepository(pool *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{pool: pool}
}

// InsertIfAbsent relies on UNIQUE (user_id, type): a conflicting insert is reported as false.
// Only that conflict is absorbed; every other failure is returned.
func (r *AchievementRepository) InsertIfAbsent(ctx context.Context, a domain.Achievement) (bool, error) {
	const q = `
		INSERT INTO achievements (id, user_id, type, achieved_at, pr_count, impact_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, type) DO NOTHING
		RETURNING id::text
	`

	var id string
	err := dbpkg.Conn(ctx, r.pool).QueryRow(ctx, q,
		a.ID,
		a.UserID,
		string(a.Type),
		a.AchievedAt,
		a.Metadata.PRCount,
		string(a.Metadata.ImpactType),
	).Scan(&id)

	if err == nil {
		return true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}

	// Any other error, a primary key collision included, has aborted the transaction.
	return false, err
}

// FindByUser returns all achievements of the user, newest first.
func (r *AchievementRepository) FindByUser(ctx context.Context, userID string) ([]domain.Achievement, error) {
	const q = `
		SELECT id::text, user_id, type, achieved_at, pr_count, impact_type
		FROM achievements
		WHERE user_id = $1
		ORDER BY achieved_at DESC, type
	`

	rows, err := dbpkg.Conn(ctx, r.pool).Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}

	return collectAchievements(rows)
}

func (r *AchievementRepository) FindByUserAndTypes(ctx context.Context, userID string, types []domain.AchievementType) ([]domain.Achievement, error) {
	const q = `
		SELECT id::text, user_id, type, achieved_at, pr_count, impact_type
		FROM achievements
		WHERE user_id = $1 AND type = ANY($2)
		ORDER BY achieved_at DESC, type
	`

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}

	rows, err := dbpkg.Conn(ctx, r.pool).Query(ctx, q, userID, names)
	if err != nil {
		return nil, err
	}

	return collectAchievements(rows)
}

func collectAchievements(rows pgx.Rows) ([]domain.Achievement, error) {
	defer rows.Close()

	res := make([]domain.Achievement, 0)

	for rows.Next() {
		var (
			a          domain.Achievement
			typ        string
			impactType string
		)

		if err := rows.Scan(&a.ID, &a.UserID, &typ, &a.AchievedAt, &a.Metadata.PRCount, &impactType); err != nil {
			return nil, err
		}

		a.Type = domain.AchievementType(typ)
		a.Metadata.ImpactType = domain.ImpactTier(impactType)

		res = append(res, a)
	}

	return res, rows.Err()
}
