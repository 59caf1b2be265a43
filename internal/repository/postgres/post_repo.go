package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dbpkg "github.com/ritikraj2425/mergeflow/db"
	"github.com/ritikraj2425/mergeflow/internal/domain"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id::text, user_id, user_name, user_avatar, user_username, content, likes, comments, shares, created_at`

func scanPost(row pgx.Row) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.UserID, &p.Author.Name, &p.Author.Avatar, &p.Author.Username,
		&p.Content, &p.Likes, &p.Comments, &p.Shares, &p.CreatedAt,
	)
	return p, err
}

func (r *PostRepository) CreatePost(ctx context.Context, post domain.Post) (domain.Post, error) {
	const q = `
		INSERT INTO posts (id, user_id, user_name, user_avatar, user_username, content, likes, comments, shares, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + postColumns

	return scanPost(dbpkg.Conn(ctx, r.pool).QueryRow(ctx, q,
		post.ID,
		post.UserID,
		post.Author.Name,
		post.Author.Avatar,
		post.Author.Username,
		post.Content,
		post.Likes,
		post.Comments,
		post.Shares,
		post.CreatedAt,
	))
}

func (r *PostRepository) ListPosts(ctx context.Context, limit, offset int) ([]domain.Post, int, error) {
	conn := dbpkg.Conn(ctx, r.pool)

	var total int
	if err := conn.QueryRow(ctx, `SELECT count(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := conn.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostRepository) ListUserPosts(ctx context.Context, userID string, limit, offset int) ([]domain.Post, int, error) {
	conn := dbpkg.Conn(ctx, r.pool)

	var total int
	if err := conn.QueryRow(ctx, `SELECT count(*) FROM posts WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`

	rows, err := conn.Query(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	defer rows.Close()

	res := make([]domain.Post, 0)

	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
