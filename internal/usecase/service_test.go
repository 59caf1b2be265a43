package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ritikraj2425/mergeflow/config"
	"github.com/ritikraj2425/mergeflow/internal/domain"
	mock_usecase "github.com/ritikraj2425/mergeflow/internal/mocks"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type deps struct {
	userRepo        *mock_usecase.MockUserRepository
	statsRepo       *mock_usecase.MockStatsRepository
	prRepo          *mock_usecase.MockPRRepository
	achievementRepo *mock_usecase.MockAchievementRepository
	postRepo        *mock_usecase.MockPostRepository
	prSource        *mock_usecase.MockPRSource
	transactor      *mock_usecase.MockTransactor
}

func newService(t *testing.T) (*serviceImpl, *deps) {
	ctrl := gomock.NewController(t)

	d := &deps{
		userRepo:        mock_usecase.NewMockUserRepository(ctrl),
		statsRepo:       mock_usecase.NewMockStatsRepository(ctrl),
		prRepo:          mock_usecase.NewMockPRRepository(ctrl),
		achievementRepo: mock_usecase.NewMockAchievementRepository(ctrl),
		postRepo:        mock_usecase.NewMockPostRepository(ctrl),
		prSource:        mock_usecase.NewMockPRSource(ctrl),
		transactor:      mock_usecase.NewMockTransactor(ctrl),
	}

	var seq int
	s := &serviceImpl{
		userRepo:        d.userRepo,
		statsRepo:       d.statsRepo,
		prRepo:          d.prRepo,
		achievementRepo: d.achievementRepo,
		postRepo:        d.postRepo,
		prSource:        d.prSource,
		transactor:      d.transactor,
		cfg: config.Engine{
			WebhookEndpoint:            "http://automation.local/webhook",
			RequestTimeout:             time.Second,
			QualifyingAchievementTypes: []string{"low_pr_10", "high_pr_1", "medium_pr_5"},
		},
		now: func() time.Time { return fixedNow },
		newID: func() string {
			seq++
			return fmt.Sprintf("ach-%d", seq)
		},
	}

	return s, d
}

// passThroughTx runs the transactional function directly, like a real commit.
func (d *deps) passThroughTx() *gomock.Call {
	return d.transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(txCtx context.Context, f func(context.Context) error) error {
			return f(txCtx)
		})
}

func testUser() domain.User {
	return domain.User{UserID: "u1", Username: "octocat", Name: "The Octocat"}
}
