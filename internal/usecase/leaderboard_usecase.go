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

func (s *serviceImpl) ComputeLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.ComputeLeaderboard",
	)
	defer span.End()

	users, err := s.userRepo.ListUsersWithStats(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to list users for leaderboard")
		return nil, err
	}

	entries := domain.RankLeaderboard(users)

	span.SetAttributes(attribute.Int("leaderboard.size", len(entries)))

	metrics.LeaderboardComputedTotal.Inc()

	return entries, nil
}

// GetUserProfile returns the user together with their current score, rank and stored PR list.
func (s *serviceImpl) GetUserProfile(ctx context.Context, username string) (domain.UserProfile, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.GetUserProfile",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()

	if username == "" {
		derr := domain.NewDomainError(domain.ErrorCodeInvalidInput, "username is required")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return domain.UserProfile{}, derr
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to get user by username",
			zap.String("username", username),
		)
		return domain.UserProfile{}, err
	}

	entries, err := s.ComputeLeaderboard(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.UserProfile{}, err
	}

	prs, err := s.prRepo.GetUserPRs(ctx, user.UserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to get user PRs",
			zap.String("user_id", user.UserID),
		)
		return domain.UserProfile{}, err
	}

	profile := domain.UserProfile{
		User:         user,
		PullRequests: prs,
	}

	// The user may have registered after the directory was read.
	if entry, ok := domain.FindEntry(entries, user.UserID); ok {
		profile.Stats = entry.Stats
		profile.Score = entry.Score
		profile.Rank = entry.Rank
	} else {
		profile.Rank = len(entries) + 1
	}

	span.SetAttributes(
		attribute.Int("user.score", profile.Score),
		attribute.Int("user.rank", profile.Rank),
	)

	return profile, nil
}
