package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ritikraj2425/mergeflow/internal/domain"
	"github.com/ritikraj2425/mergeflow/internal/logger"
	"github.com/ritikraj2425/mergeflow/internal/metrics"
)

// CreatePost publishes a feed post. Author fields are stored with the post as given.
func (s *serviceImpl) CreatePost(ctx context.Context, userID string, author domain.PostAuthor, content string) (domain.Post, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.CreatePost",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("post.length", len(content)),
		),
	)
	defer span.End()

	post, err := domain.NewPost(userID, author, content)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "invalid post",
			zap.String("user_id", userID),
		)
		return domain.Post{}, err
	}

	post.ID = s.newID()
	post.CreatedAt = s.now()

	saved, err := s.postRepo.CreatePost(ctx, post)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to create post",
			zap.String("user_id", post.UserID),
		)
		return domain.Post{}, err
	}

	metrics.PostsCreatedTotal.Inc()

	return saved, nil
}

// ListPosts returns one page of the global feed, newest first.
func (s *serviceImpl) ListPosts(ctx context.Context, page, limit int) (domain.PostPage, error) {
	req := domain.NewPageRequest(page, limit, domain.DefaultFeedPageSize)

	ctx, span := tracer.Start(
		ctx,
		"Service.ListPosts",
		trace.WithAttributes(
			attribute.Int("page.number", req.Page),
			attribute.Int("page.limit", req.Limit),
		),
	)
	defer span.End()

	posts, total, err := s.postRepo.ListPosts(ctx, req.Limit, req.Offset())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to list posts",
			zap.Int("page", req.Page),
		)
		return domain.PostPage{}, err
	}

	span.SetAttributes(attribute.Int("posts.total", total))

	return domain.PostPage{
		Posts:      posts,
		Pagination: domain.NewPagination(req, total),
	}, nil
}

// ListUserPosts returns one page of the user's posts, newest first.
func (s *serviceImpl) ListUserPosts(ctx context.Context, userID string, page, limit int) (domain.PostPage, error) {
	req := domain.NewPageRequest(page, limit, domain.DefaultUserPostsPageSize)

	ctx, span := tracer.Start(
		ctx,
		"Service.ListUserPosts",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("page.number", req.Page),
			attribute.Int("page.limit", req.Limit),
		),
	)
	defer span.End()

	if userID == "" {
		derr := domain.NewDomainError(domain.ErrorCodeInvalidInput, "user_id is required")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return domain.PostPage{}, derr
	}

	posts, total, err := s.postRepo.ListUserPosts(ctx, userID, req.Limit, req.Offset())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to list user posts",
			zap.String("user_id", userID),
			zap.Int("page", req.Page),
		)
		return domain.PostPage{}, err
	}

	span.SetAttributes(attribute.Int("posts.total", total))

	return domain.PostPage{
		Posts:      posts,
		Pagination: domain.NewPagination(req, total),
	}, nil
}
