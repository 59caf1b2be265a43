package usecase

//go:generate mockgen -source=interfaces.go -destination=../mocks/usecase_mock.go -package=mock_usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/ritikraj2425/mergeflow/config"
	"github.com/ritikraj2425/mergeflow/internal/domain"
	"github.com/ritikraj2425/mergeflow/internal/repository"
)

type (
	StatsUseCase interface {
		ClassifyAndAggregate(ctx context.Context, userID string, prs []domain.PullRequestRecord) (domain.UserStats, []domain.ClassifiedPullRequest, error)
		RefreshPullRequests(ctx context.Context, userID string) (domain.UserStats, []domain.ClassifiedPullRequest, error)
	}

	AchievementUseCase interface {
		CheckAndAward(ctx context.Context, userID string, stats domain.UserStats) ([]domain.Achievement, error)
		GetUserAchievements(ctx context.Context, userID string) ([]domain.Achievement, error)
		IsEligible(ctx context.Context, userID string, qualifyingTypes []domain.AchievementType) (bool, error)
		CheckEligibility(ctx context.Context, userID string) (domain.Eligibility, error)
	}

	LeaderboardUseCase interface {
		ComputeLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
		GetUserProfile(ctx context.Context, username string) (domain.UserProfile, error)
	}

	UserUseCase interface {
		RegisterUser(ctx context.Context, user domain.User) (domain.User, error)
	}

	PostUseCase interface {
		CreatePost(ctx context.Context, userID string, author domain.PostAuthor, content string) (domain.Post, error)
		ListPosts(ctx context.Context, page, limit int) (domain.PostPage, error)
		ListUserPosts(ctx context.Context, userID string, page, limit int) (domain.PostPage, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// PRSource supplies a user's merged PRs with repository metadata.
	PRSource interface {
		MergedPullRequests(ctx context.Context, login string) ([]domain.PullRequestRecord, error)
	}
)

var _ StatsUseCase = (*serviceImpl)(nil)
var _ AchievementUseCase = (*serviceImpl)(nil)
var _ LeaderboardUseCase = (*serviceImpl)(nil)
var _ UserUseCase = (*serviceImpl)(nil)
var _ PostUseCase = (*serviceImpl)(nil)

var tracer = otel.Tracer("mergeflow")

type serviceImpl struct {
	userRepo        repository.UserRepository
	statsRepo       repository.StatsRepository
	prRepo          repository.PRRepository
	achievementRepo repository.AchievementRepository
	postRepo        repository.PostRepository
	prSource        PRSource
	transactor      Transactor
	cfg             config.Engine
	now             func() time.Time
	newID           func() string
}

func NewService(
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	prRepo repository.PRRepository,
	achievementRepo repository.AchievementRepository,
	postRepo repository.PostRepository,
	prSource PRSource,
	transactor Transactor,
	cfg config.Engine,
) *serviceImpl {
	return &serviceImpl{
		userRepo:        userRepo,
		statsRepo:       statsRepo,
		prRepo:          prRepo,
		achievementRepo: achievementRepo,
		postRepo:        postRepo,
		prSource:        prSource,
		transactor:      transactor,
		cfg:             cfg,
		now:             time.Now,
		newID:           uuid.NewString,
	}
}
