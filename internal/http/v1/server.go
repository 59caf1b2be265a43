package v1

import (
	"time"

	"github.com/ritikraj2425/mergeflow/internal/usecase"
)

//go:generate oapi-codegen --config=../../../api/oapi-codegen.yaml ../../../api/openapi.yaml

var _ (ServerInterface) = &ServerHandler{}

// ServerHandler — наша реализация сгенерированного ServerInterface.
type ServerHandler struct {
	statsUC       usecase.StatsUseCase
	achievementUC usecase.AchievementUseCase
	leaderboardUC usecase.LeaderboardUseCase
	userUC        usecase.UserUseCase
	postUC        usecase.PostUseCase
	now           func() time.Time
}

// NewServerHandler собирает HTTP-слой поверх юзкейсов.
func NewServerHandler(
	statsUC usecase.StatsUseCase,
	achievementUC usecase.AchievementUseCase,
	leaderboardUC usecase.LeaderboardUseCase,
	userUC usecase.UserUseCase,
	postUC usecase.PostUseCase,
) *ServerHandler {
	return &ServerHandler{
		statsUC:       statsUC,
		achievementUC: achievementUC,
		leaderboardUC: leaderboardUC,
		userUC:        userUC,
		postUC:        postUC,
		now:           time.Now,
	}
}
