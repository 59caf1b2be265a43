package domain

import "time"

type UserStats struct {
	LowImpactPRs    int
	MediumImpactPRs int
	HighImpactPRs   int
	TotalMergedPRs  int
	LastUpdated     time.Time
}

// AggregateStats recomputes a user's counters from the full set of classified PRs.
// The result never depends on prior stats or on the order of prs.
func AggregateStats(prs []ClassifiedPullRequest, at time.Time) UserStats {
	var stats UserStats
	for _, pr := range prs {
		switch pr.Impact {
		case ImpactHigh:
			stats.HighImpactPRs++
		case ImpactMedium:
			stats.MediumImpactPRs++
		case ImpactLow:
			stats.LowImpactPRs++
		}
	}

	stats.TotalMergedPRs = stats.LowImpactPRs + stats.MediumImpactPRs + stats.HighImpactPRs
	stats.LastUpdated = at

	return stats
}

// Validate rejects stats payloads that could not have come out of AggregateStats.
func (s UserStats) Validate() error {
	if s.LowImpactPRs < 0 || s.MediumImpactPRs < 0 || s.HighImpactPRs < 0 || s.TotalMergedPRs < 0 {
		return NewDomainError(ErrorCodeInvalidInput, "pr stats counts must not be negative")
	}
	return nil
}

// CountFor returns the counter that belongs to tier.
func (s UserStats) CountFor(tier ImpactTier) int {
	switch tier {
	case ImpactHigh:
		return s.HighImpactPRs
	case ImpactMedium:
		return s.MediumImpactPRs
	case ImpactLow:
		return s.LowImpactPRs
	default:
		return 0
	}
}
