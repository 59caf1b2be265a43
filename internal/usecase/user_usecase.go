package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ritikraj2425/mergeflow/internal/domain"
	"github.com/ritikraj2425/mergeflow/internal/logger"
)

// RegisterUser creates the user or refreshes their profile fields.
func (s *serviceImpl) RegisterUser(ctx context.Context, user domain.User) (domain.User, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.RegisterUser",
		trace.WithAttributes(
			attribute.String("user.id", user.UserID),
			attribute.String("user.username", user.Username),
		),
	)
	defer span.End()

	user.UserID = strings.TrimSpace(user.UserID)
	user.Username = strings.TrimSpace(user.Username)

	if user.UserID == "" || user.Username == "" {
		derr := domain.NewDomainError(domain.ErrorCodeInvalidInput, "user_id and username are required")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return domain.User{}, derr
	}

	saved, err := s.userRepo.UpsertUser(ctx, user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to upsert user",
			zap.String("user_id", user.UserID),
		)
		return domain.User{}, err
	}

	return saved, nil
}
