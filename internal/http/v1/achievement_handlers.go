package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	applog "github.com/ritikraj2425/mergeflow/internal/logger"
)

// POST /achievements/check
func (s *ServerHandler) PostAchievementsCheck(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostAchievementsCheck called")
	var body PostAchievementsCheckJSONRequestBody

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostAchievementsCheck", zap.Error(err))
		return badRequest(ctx, "invalid json")
	}

	if body.UserId == "" || body.PrStats == nil {
		log.Warn("invalid data in PostAchievementsCheck", zap.String("user_id", body.UserId))
		return badRequest(ctx, "user_id and pr_stats are required")
	}

	granted, err := s.achievementUC.CheckAndAward(ctx.Request().Context(), body.UserId, toDomainStats(*body.PrStats))
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AchievementCheckResponse{
		NewAchievements: toAPIAchievements(granted),
		TotalNew:        len(granted),
	})
}

// GET /achievements/{userId}
func (s *ServerHandler) GetAchievementsUserId(ctx echo.Context, userId string) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetAchievementsUserId called", zap.String("user_id", userId))

	achievements, err := s.achievementUC.GetUserAchievements(ctx.Request().Context(), userId)
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AchievementsResponse{
		Achievements: toAPIAchievements(achievements),
		Total:        len(achievements),
	})
}

// GET /agent/canRun/{userId}
func (s *ServerHandler) GetAgentCanRunUserId(ctx echo.Context, userId string) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetAgentCanRunUserId called", zap.String("user_id", userId))

	eligibility, err := s.achievementUC.CheckEligibility(ctx.Request().Context(), userId)
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIEligibility(eligibility))
}
