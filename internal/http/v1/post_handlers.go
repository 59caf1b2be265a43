package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ritikraj2425/mergeflow/internal/domain"
	applog "github.com/ritikraj2425/mergeflow/internal/logger"
)

// отсутствующий параметр пагинации даёт 0, юзкейс подставит значение по умолчанию
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// POST /posts
func (s *ServerHandler) PostPosts(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostPosts called")
	var body PostPostsJSONRequestBody

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostPosts", zap.Error(err))
		return badRequest(ctx, "invalid json")
	}

	author := domain.PostAuthor{
		Name:     body.UserName,
		Username: body.UserUsername,
	}
	if body.UserAvatar != nil {
		author.Avatar = *body.UserAvatar
	}

	post, err := s.postUC.CreatePost(ctx.Request().Context(), body.UserId, author, body.Content)
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PostResponse{Post: toAPIPost(post)})
}

// GET /posts
func (s *ServerHandler) GetPosts(ctx echo.Context, params GetPostsParams) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetPosts called")

	page, err := s.postUC.ListPosts(ctx.Request().Context(), intOrZero(params.Page), intOrZero(params.Limit))
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIPostsPage(page))
}

// GET /posts/user/{userId}
func (s *ServerHandler) GetPostsUserUserId(ctx echo.Context, userId string, params GetPostsUserUserIdParams) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetPostsUserUserId called", zap.String("user_id", userId))

	page, err := s.postUC.ListUserPosts(ctx.Request().Context(), userId, intOrZero(params.Page), intOrZero(params.Limit))
	if err != nil {
		return writeUseCaseError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIPostsPage(page))
}
