package repository

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mock.go -package=mock_usecase

import (
	"context"

	"github.com/ritikraj2425/mergeflow/internal/domain"
)

type (
	UserRepository interface {
		UpsertUser(ctx context.Context, user domain.User) (domain.User, error)
		GetUserByID(ctx context.Context, userID string) (domain.User, error)
		GetUserByUsername(ctx context.Context, username string) (domain.User, error)

		// LockUser serialises writers of the user's derived data until the surrounding transaction ends.
		LockUser(ctx context.Context, userID string) error

		// ListUsersWithStats is the user directory used for ranking.
		ListUsersWithStats(ctx context.Context) ([]domain.UserWithStats, error)
	}

	StatsRepository interface {
		SaveStats(ctx context.Context, userID string, stats domain.UserStats) error
	}

	PRRepository interface {
		ReplaceUserPRs(ctx context.Context, userID string, prs []domain.ClassifiedPullRequest) error
		GetUserPRs(ctx context.Context, userID string) ([]domain.ClassifiedPullRequest, error)
	}

	AchievementRepository interface {
		FindByUser(ctx context.Context, userID string) ([]domain.Achievement, error)
		FindByUserAndTypes(ctx context.Context, userID string, types []domain.AchievementType) ([]domain.Achievement, error)

		// InsertIfAbsent returns false when the (user, type) pair is already stored.
		InsertIfAbsent(ctx context.Context, achievement domain.Achievement) (bool, error)
	}

	PostRepository interface {
		CreatePost(ctx context.Context, post domain.Post) (domain.Post, error)

		// ListPosts and ListUserPosts return one page, newest first, and the total number of matching posts.
		ListPosts(ctx context.Context, limit, offset int) ([]domain.Post, int, error)
		ListUserPosts(ctx context.Context, userID string, limit, offset int) ([]domain.Post, int, error)
	}
)
