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

// CheckAndAward grants every achievement stats qualify for that the user does not hold yet.
// It returns only the achievements granted by this call. When persisting fails
// nothing is granted and the error is returned.
func (s *serviceImpl) CheckAndAward(ctx context.Context, userID string, stats domain.UserStats) ([]domain.Achievement, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.CheckAndAward",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("stats.low", stats.LowImpactPRs),
			attribute.Int("stats.medium", stats.MediumImpactPRs),
			attribute.Int("stats.high", stats.HighImpactPRs),
		),
	)
	defer span.End()

	if userID == "" {
		derr := domain.NewDomainError(domain.ErrorCodeInvalidInput, "user_id is required")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return nil, derr
	}

	if err := stats.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "invalid pr stats payload",
			zap.String("user_id", userID),
		)
		return nil, err
	}

	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to get user for achievement check",
			zap.String("user_id", userID),
		)
		return nil, err
	}

	existing, err := s.achievementRepo.FindByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to get existing achievements",
			zap.String("user_id", userID),
		)
		return nil, err
	}

	candidates := domain.EvaluateAchievements(userID, stats, existing, s.now())
	if len(candidates) == 0 {
		return []domain.Achievement{}, nil
	}

	var granted []domain.Achievement

	err = s.transactor.WithTx(ctx, func(txCtx context.Context) error {
		granted = make([]domain.Achievement, 0, len(candidates))

		for _, a := range candidates {
			a.ID = s.newID()

			inserted, err := s.achievementRepo.InsertIfAbsent(txCtx, a)
			if err != nil {
				logger.LogDomainAware(txCtx, err, "failed to insert achievement inside transaction",
					zap.String("user_id", userID),
					zap.String("type", string(a.Type)),
				)
				return err
			}

			if !inserted {
				logger.FromContext(txCtx).Info("achievement already awarded",
					zap.String("user_id", userID),
					zap.String("type", string(a.Type)),
				)
				continue
			}

			granted = append(granted, a)
		}

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("achievements.granted", len(granted)))

	for _, a := range granted {
		metrics.AchievementsAwardedTotal.WithLabelValues(string(a.Type)).Inc()
	}

	return granted, nil
}

// GetUserAchievements returns the user's achievement history, newest first.
func (s *serviceImpl) GetUserAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.GetUserAchievements",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	if userID == "" {
		derr := domain.NewDomainError(domain.ErrorCodeInvalidInput, "user_id is required")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return nil, derr
	}

	achievements, err := s.achievementRepo.FindByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to get user achievements",
			zap.String("user_id", userID),
		)
		return nil, err
	}

	span.SetAttributes(attribute.Int("achievements.count", len(achievements)))

	return achievements, nil
}

// IsEligible reports whether the user holds at least one of qualifyingTypes.
func (s *serviceImpl) IsEligible(ctx context.Context, userID string, qualifyingTypes []domain.AchievementType) (bool, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.IsEligible",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	held, err := s.qualifyingAchievements(ctx, span, userID, qualifyingTypes)
	if err != nil {
		return false, err
	}
	return domain.HoldsAny(held, qualifyingTypes), nil
}

// CheckEligibility gates the downstream automation action on the configured qualifying achievements.
func (s *serviceImpl) CheckEligibility(ctx context.Context, userID string) (domain.Eligibility, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.CheckEligibility",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	types := s.cfg.QualifyingTypes()

	held, err := s.qualifyingAchievements(ctx, span, userID, types)
	if err != nil {
		return domain.Eligibility{}, err
	}

	res := domain.Eligibility{
		CanRun:       domain.HoldsAny(held, types),
		Achievements: held,
	}
	if res.CanRun {
		res.AutomationEndpoint = s.cfg.WebhookEndpoint
	}

	return res, nil
}

// qualifyingAchievements records its outcome on the caller's span.
func (s *serviceImpl) qualifyingAchievements(ctx context.Context, span trace.Span, userID string, types []domain.AchievementType) ([]domain.Achievement, error) {
	span.SetAttributes(attribute.Int("eligibility.qualifying_types", len(types)))

	if userID == "" {
		derr := domain.NewDomainError(domain.ErrorCodeInvalidInput, "user_id is required")
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		return nil, derr
	}

	if len(types) == 0 {
		return []domain.Achievement{}, nil
	}

	held, err := s.achievementRepo.FindByUserAndTypes(ctx, userID, types)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to get qualifying achievements",
			zap.String("user_id", userID),
		)
		return nil, err
	}

	span.SetAttributes(attribute.Bool("eligibility.can_run", len(held) > 0))

	return held, nil
}
