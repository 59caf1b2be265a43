package domain

import "time"

type AchievementType string

const (
	AchievementLowPR10           AchievementType = "low_pr_10"
	AchievementMediumPR5         AchievementType = "medium_pr_5"
	AchievementHighPR1           AchievementType = "high_pr_1"
	AchievementFirstContribution AchievementType = "first_contribution"
)

// DefaultQualifyingAchievements unlock the downstream automation action.
var DefaultQualifyingAchievements = []AchievementType{
	AchievementLowPR10,
	AchievementHighPR1,
	AchievementMediumPR5,
}

func (t AchievementType) Valid() bool {
	switch t {
	case AchievementLowPR10, AchievementMediumPR5, AchievementHighPR1, AchievementFirstContribution:
		return true
	default:
		return false
	}
}

// AchievementMetadata is captured once, when the achievement is granted.
type AchievementMetadata struct {
	PRCount    int
	ImpactType ImpactTier
}

type Achievement struct {
	ID         string
	UserID     string
	Type       AchievementType
	AchievedAt time.Time
	Metadata   AchievementMetadata
}

type AchievementRule struct {
	Type      AchievementType
	Tier      ImpactTier
	Threshold int
}

// AchievementRules are evaluated independently, in this order.
var AchievementRules = []AchievementRule{
	{Type: AchievementLowPR10, Tier: ImpactLow, Threshold: 10},
	{Type: AchievementHighPR1, Tier: ImpactHigh, Threshold: 1},
	{Type: AchievementMediumPR5, Tier: ImpactMedium, Threshold: 5},
}

// EvaluateAchievements returns the achievements stats qualify for that are not in existing.
// IDs are left empty; the caller assigns them when persisting.
func EvaluateAchievements(userID string, stats UserStats, existing []Achievement, at time.Time) []Achievement {
	held := make(map[AchievementType]struct{}, len(existing))
	for _, a := range existing {
		held[a.Type] = struct{}{}
	}

	res := make([]Achievement, 0, len(AchievementRules))
	for _, rule := range AchievementRules {
		if _, ok := held[rule.Type]; ok {
			continue
		}

		count := stats.CountFor(rule.Tier)
		if count < rule.Threshold {
			continue
		}

		res = append(res, Achievement{
			UserID:     userID,
			Type:       rule.Type,
			AchievedAt: at,
			Metadata: AchievementMetadata{
				PRCount:    count,
				ImpactType: rule.Tier,
			},
		})
	}

	return res
}

// HoldsAny reports whether achievements contain at least one of types.
func HoldsAny(achievements []Achievement, types []AchievementType) bool {
	for _, a := range achievements {
		for _, t := range types {
			if a.Type == t {
				return true
			}
		}
	}
	return false
}

type Eligibility struct {
	CanRun             bool
	Achievements       []Achievement
	AutomationEndpoint string
}
