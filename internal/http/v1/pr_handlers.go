package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ritikraj2425/mergeflow/internal/domain"
	applog "github.com/ritikraj2425/mergeflow/internal/logger"
)

// POST /pullRequests/recompute
func (s *ServerHandler) PostPullRequestsRecompute(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostPullRequestsRecompute called")
	var body PostPullRequestsRecomputeJSONRequestBody

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostPullRequestsRecompute", zap.Error(err))
		return badRequest(ctx, "invalid json")
	}

	if body.UserId == "" {
		log.Warn("invalid data in PostPullRequestsRecompute", zap.String("user_id", body.UserId))
		return badRequest(ctx, "user_id is required")
	}

	prs := make([]domain.PullRequestRecord, 0, len(body.PullRequests))
	for _, pr := range body.PullRequests {
		prs = append(prs, toDomainPR(pr))
	}

	stats, classified, err := s.statsUC.ClassifyAndAggregate(ctx.Request().Context(), body.UserId, prs)
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsRefreshResponse{
		Stats:        toAPIStats(stats),
		PullRequests: toAPIPRs(classified),
	})
}

// POST /pullRequests/refresh
func (s *ServerHandler) PostPullRequestsRefresh(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostPullRequestsRefresh called")
	var body PostPullRequestsRefreshJSONRequestBody

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostPullRequestsRefresh", zap.Error(err))
		return badRequest(ctx, "invalid json")
	}

	if body.UserId == "" {
		log.Warn("invalid data in PostPullRequestsRefresh", zap.String("user_id", body.UserId))
		return badRequest(ctx, "user_id is required")
	}

	stats, classified, err := s.statsUC.RefreshPullRequests(ctx.Request().Context(), body.UserId)
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsRefreshResponse{
		Stats:        toAPIStats(stats),
		PullRequests: toAPIPRs(classified),
	})
}
