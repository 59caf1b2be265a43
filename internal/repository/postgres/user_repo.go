package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	dbpkg "github.com/ritikraj2425/mergeflow/db"
	"github.com/ritikraj2425/mergeflow/internal/domain"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool: pool,
	}
}

const userColumns = `id, username, name, avatar_url, is_verified, created_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.Username, &u.Name, &u.AvatarURL, &u.IsVerified, &u.CreatedAt)
	return u, err
}

// UpsertUser создаёт пользователя или обновляет его профиль.
// Пустые name и avatar_url не затирают сохранённые значения, верификация не снимается.
func (r *UserRepository) UpsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (id, username, name, avatar_url, is_verified)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET
			username = EXCLUDED.username,
			name = COALESCE(NULLIF(EXCLUDED.name, ''), users.name),
			avatar_url = COALESCE(NULLIF(EXCLUDED.avatar_url, ''), users.avatar_url),
			is_verified = users.is_verified OR EXCLUDED.is_verified
		RETURNING ` + userColumns

	row := dbpkg.Conn(ctx, r.pool).QueryRow(ctx, q,
		user.UserID, user.Username, user.Name, user.AvatarURL, user.IsVerified,
	)

	saved, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.User{}, domain.NewDomainError(domain.ErrorCodeUsernameTaken, "username is taken by another user")
		}
		return domain.User{}, err
	}

	return saved, nil
}

// GetUserByID возвращает пользователя по его id.
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(dbpkg.Conn(ctx, r.pool).QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NewDomainError(domain.ErrorCodeNotFound, "user not found")
		}
		return domain.User{}, err
	}

	return u, nil
}

// GetUserByUsername ищет по логину GitHub без учёта регистра.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1)`

	u, err := scanUser(dbpkg.Conn(ctx, r.pool).QueryRow(ctx, q, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NewDomainError(domain.ErrorCodeNotFound, "user not found")
		}
		return domain.User{}, err
	}

	return u, nil
}

// LockUser берёт блокировку строки пользователя до конца транзакции.
// Вне транзакции блокировка снимается сразу, поэтому вызывать только внутри WithTx.
func (r *UserRepository) LockUser(ctx context.Context, userID string) error {
	const q = `SELECT 1 FROM users WHERE id = $1 FOR UPDATE`

	var one int
	if err := dbpkg.Conn(ctx, r.pool).QueryRow(ctx, q, userID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewDomainError(domain.ErrorCodeNotFound, "user not found")
		}
		return err
	}

	return nil
}

func (r *UserRepository) ListUsersWithStats(ctx context.Context) ([]domain.UserWithStats, error) {
	const q = `
		SELECT
			u.id, u.username, u.name, u.avatar_url, u.is_verified, u.created_at,
			s.low_impact_prs, s.medium_impact_prs, s.high_impact_prs,
			s.total_merged_prs, s.last_updated
		FROM users u
		LEFT JOIN user_stats s ON s.user_id = u.id
		ORDER BY
			COALESCE(s.total_merged_prs, 0) DESC,
			COALESCE(s.high_impact_prs, 0) DESC,
			u.created_at,
			u.id
	`

	rows, err := dbpkg.Conn(ctx, r.pool).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]domain.UserWithStats, 0)

	for rows.Next() {
		var (
			u           domain.User
			low         *int
			medium      *int
			high        *int
			total       *int
			lastUpdated *time.Time
		)

		if err := rows.Scan(
			&u.UserID, &u.Username, &u.Name, &u.AvatarURL, &u.IsVerified, &u.CreatedAt,
			&low, &medium, &high, &total, &lastUpdated,
		); err != nil {
			return nil, err
		}

		item := domain.UserWithStats{User: u}
		if total != nil {
			item.Stats = &domain.UserStats{
				LowImpactPRs:    *low,
				MediumImpactPRs: *medium,
				HighImpactPRs:   *high,
				TotalMergedPRs:  *total,
				LastUpdated:     *lastUpdated,
			}
		}

		res = append(res, item)
	}

	return res, rows.Err()
}
