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

// ClassifyAndAggregate recomputes the user's stats from the full list prs.
// The stored PR list and stats are replaced, never merged with previous values.
// Concurrent recomputations of one user are serialised by the user lock.
func (s *serviceImpl) ClassifyAndAggregate(ctx context.Context, userID string, prs []domain.PullRequestRecord) (domain.UserStats, []domain.ClassifiedPullRequest, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.ClassifyAndAggregate",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("prs.input_count", len(prs)),
		),
	)
	defer span.End()

	if userID == "" {
		derr := domain.NewDomainError(domain.ErrorCodeInvalidInput, "user_id is required")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return domain.UserStats{}, nil, derr
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to get user for stats recompute",
			zap.String("user_id", userID),
		)
		return domain.UserStats{}, nil, err
	}

	classified := domain.ClassifyPullRequests(prs, user.Username)
	stats := domain.AggregateStats(classified, s.now())

	err = s.transactor.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.LockUser(txCtx, userID); err != nil {
			logger.LogDomainAware(txCtx, err, "failed to lock user inside transaction",
				zap.String("user_id", userID),
			)
			return err
		}

		if err := s.prRepo.ReplaceUserPRs(txCtx, userID, classified); err != nil {
			logger.LogDomainAware(txCtx, err, "failed to replace user PRs inside transaction",
				zap.String("user_id", userID),
			)
			return err
		}

		if err := s.statsRepo.SaveStats(txCtx, userID, stats); err != nil {
			logger.LogDomainAware(txCtx, err, "failed to save user stats inside transaction",
				zap.String("user_id", userID),
			)
			return err
		}

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.UserStats{}, nil, err
	}

	span.SetAttributes(
		attribute.Int("stats.low", stats.LowImpactPRs),
		attribute.Int("stats.medium", stats.MediumImpactPRs),
		attribute.Int("stats.high", stats.HighImpactPRs),
		attribute.Int("stats.total", stats.TotalMergedPRs),
	)

	metrics.PRRefreshTotal.Inc()
	metrics.PRExcludedTotal.Add(float64(len(prs) - len(classified)))
	for _, pr := range classified {
		metrics.PRClassifiedTotal.WithLabelValues(string(pr.Impact)).Inc()
	}

	return stats, classified, nil
}

// RefreshPullRequests fetches the user's merged PRs from the PR source and recomputes stats from them.
func (s *serviceImpl) RefreshPullRequests(ctx context.Context, userID string) (domain.UserStats, []domain.ClassifiedPullRequest, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.RefreshPullRequests",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	if userID == "" {
		derr := domain.NewDomainError(domain.ErrorCodeInvalidInput, "user_id is required")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return domain.UserStats{}, nil, derr
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to get user for PR refresh",
			zap.String("user_id", userID),
		)
		return domain.UserStats{}, nil, err
	}

	fetchCtx := ctx
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	prs, err := s.prSource.MergedPullRequests(fetchCtx, user.Username)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to fetch merged PRs",
			zap.String("user_id", userID),
			zap.String("username", user.Username),
		)
		return domain.UserStats{}, nil, err
	}

	span.SetAttributes(attribute.Int("prs.fetched", len(prs)))

	return s.ClassifyAndAggregate(ctx, userID, prs)
}
