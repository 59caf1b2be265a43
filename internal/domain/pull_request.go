package domain

import (
	"strings"
	"time"
)

type ImpactTier string

const (
	ImpactLow    ImpactTier = "low"
	ImpactMedium ImpactTier = "medium"
	ImpactHigh   ImpactTier = "high"
)

const (
	highImpactMinStars   = 501
	mediumImpactMinStars = 100
)

// Rank orders tiers low < medium < high. Unknown tiers rank 0.
func (t ImpactTier) Rank() int {
	switch t {
	case ImpactLow:
		return 1
	case ImpactMedium:
		return 2
	case ImpactHigh:
		return 3
	default:
		return 0
	}
}

func (t ImpactTier) Valid() bool {
	return t.Rank() > 0
}

type RepositorySnapshot struct {
	FullName   string
	Stars      int
	Private    bool
	OwnerLogin string
}

// PullRequestRecord is a merged pull request together with the repository it was merged into.
type PullRequestRecord struct {
	Title      string
	URL        string
	Repository RepositorySnapshot
	MergedAt   time.Time
}

type ClassifiedPullRequest struct {
	PullRequestRecord
	Impact ImpactTier
}

// ClassifyRepository returns the impact tier of a PR merged into repo by login.
// The second result is false when the PR does not count: private repositories
// and repositories owned by the author themselves are excluded.
func ClassifyRepository(repo RepositorySnapshot, login string) (ImpactTier, bool) {
	if repo.Private || strings.EqualFold(repo.OwnerLogin, login) {
		return "", false
	}

	switch {
	case repo.Stars >= highImpactMinStars:
		return ImpactHigh, true
	case repo.Stars >= mediumImpactMinStars:
		return ImpactMedium, true
	default:
		return ImpactLow, true
	}
}

// ClassifyPullRequests keeps the counted PRs of prs, each tagged with its tier.
func ClassifyPullRequests(prs []PullRequestRecord, login string) []ClassifiedPullRequest {
	res := make([]ClassifiedPullRequest, 0, len(prs))
	for _, pr := range prs {
		tier, ok := ClassifyRepository(pr.Repository, login)
		if !ok {
			continue
		}
		res = append(res, ClassifiedPullRequest{
			PullRequestRecord: pr,
			Impact:            tier,
		})
	}
	return res
}
