package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dbpkg "github.com/ritikraj2425/mergeflow/db"
	"github.com/ritikraj2425/mergeflow/internal/domain"
)

type PRRepository struct {
	pool *pgxpool.Pool
}

func NewPRRepository(pool *pgxpool.Pool) *PRRepository {
	return &PRRepository{pool: pool}
}

// ReplaceUserPRs drops the stored PR list of the user and writes prs in its place.
// Call it inside a transaction, after UserRepository.LockUser: without the lock two
// concurrent replaces can both survive the DELETE and leave their rows side by side.
func (r *PRRepository) ReplaceUserPRs(ctx context.Context, userID string, prs []domain.ClassifiedPullRequest) error {
	conn := dbpkg.Conn(ctx, r.pool)

	if _, err := conn.Exec(ctx, `DELETE FROM user_pull_requests WHERE user_id = $1`, userID); err != nil {
		return err
	}

	if len(prs) == 0 {
		return nil
	}

	const insert = `
		INSERT INTO user_pull_requests (user_id, position, title, url, repo, stars, impact, merged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	batch := &pgx.Batch{}
	for i, pr := range prs {
		var mergedAt *time.Time
		if !pr.MergedAt.IsZero() {
			t := pr.MergedAt
			mergedAt = &t
		}

		batch.Queue(insert,
			userID,
			i,
			pr.Title,
			pr.URL,
			pr.Repository.FullName,
			pr.Repository.Stars,
			string(pr.Impact),
			mergedAt,
		)
	}

	br := conn.SendBatch(ctx, batch)
	defer br.Close()

	for range prs {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}

	return nil
}

func (r *PRRepository) GetUserPRs(ctx context.Context, userID string) ([]domain.ClassifiedPullRequest, error) {
	const q = `
		SELECT title, url, repo, stars, impact, merged_at
		FROM user_pull_requests
		WHERE user_id = $1
		ORDER BY position
	`

	rows, err := dbpkg.Conn(ctx, r.pool).Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]domain.ClassifiedPullRequest, 0)

	for rows.Next() {
		var (
			pr       domain.ClassifiedPullRequest
			impact   string
			mergedAt *time.Time
		)

		if err := rows.Scan(
			&pr.Title, &pr.URL, &pr.Repository.FullName, &pr.Repository.Stars, &impact, &mergedAt,
		); err != nil {
			return nil, err
		}

		pr.Impact = domain.ImpactTier(impact)
		if mergedAt != nil {
			pr.MergedAt = *mergedAt
		}

		res = append(res, pr)
	}

	return res, rows.Err()
}
