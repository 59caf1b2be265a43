package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PRRefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pr_refresh_total",
		Help: "Total number of PR stats recomputations",
	})

	PRClassifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pr_classified_total",
		Help: "Total number of counted PRs by impact tier",
	}, []string{"impact"})

	PRExcludedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pr_excluded_total",
		Help: "Total number of PRs excluded as private or self-owned",
	})

	AchievementsAwardedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "achievements_awarded_total",
		Help: "Total number of granted achievements by type",
	}, []string{"type"})

	LeaderboardComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leaderboard_computed_total",
		Help: "Total number of leaderboard computations",
	})

	PostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "posts_created_total",
		Help: "Total number of created feed posts",
	})
)
