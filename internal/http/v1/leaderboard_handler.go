package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	applog "github.com/ritikraj2425/mergeflow/internal/logger"
)

// GET /leaderboard
func (s *ServerHandler) GetLeaderboard(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetLeaderboard called")

	entries, err := s.leaderboardUC.ComputeLeaderboard(ctx.Request().Context())
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	users := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		users = append(users, toAPILeaderboardEntry(e))
	}

	return ctx.JSON(http.StatusOK, Leaderboard{
		Users:       users,
		Total:       len(users),
		GeneratedAt: s.now().UTC(),
	})
}
