package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	applog "github.com/ritikraj2425/mergeflow/internal/logger"
)

// POST /users
func (s *ServerHandler) PostUsers(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostUsers called")
	var body PostUsersJSONRequestBody

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostUsers", zap.Error(err))
		return badRequest(ctx, "invalid json")
	}

	if body.UserId == "" || body.Username == "" {
		log.Warn("invalid data in PostUsers",
			zap.String("user_id", body.UserId),
			zap.String("username", body.Username),
		)
		return badRequest(ctx, "user_id and username are required")
	}

	user, err := s.userUC.RegisterUser(ctx.Request().Context(), toDomainUser(body))
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UserResponse{User: toAPIUser(user)})
}

// GET /users/{username}
func (s *ServerHandler) GetUsersUsername(ctx echo.Context, username string) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetUsersUsername called", zap.String("username", username))

	profile, err := s.leaderboardUC.GetUserProfile(ctx.Request().Context(), username)
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIProfile(profile))
}
