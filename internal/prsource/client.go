// Package prsource fetches a user's merged pull requests from GitHub together
// with a snapshot of the repository each one was merged into.
package prsource

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"go.uber.org/zap"

	"github.com/ritikraj2425/mergeflow/config"
	"github.com/ritikraj2425/mergeflow/internal/domain"
	"github.com/ritikraj2425/mergeflow/internal/logger"
)

// searchPageSize is the only page fetched; pagination is left to callers that need it.
const searchPageSize = 50

type Client struct {
	gh *github.Client
}

func NewClient(cfg config.GitHub) (*Client, error) {
	gh := github.NewClient(nil)
	if cfg.Token != "" {
		gh = gh.WithAuthToken(cfg.Token)
	}

	if cfg.APIURL != "" {
		base, err := url.Parse(cfg.APIURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url %q: %w", cfg.APIURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		gh.BaseURL = base
	}

	return &Client{gh: gh}, nil
}

// MergedPullRequests returns the merged PRs authored by login. A PR whose
// repository cannot be fetched is skipped with a warning.
func (c *Client) MergedPullRequests(ctx context.Context, login string) ([]domain.PullRequestRecord, error) {
	log := logger.FromContext(ctx)

	query := fmt.Sprintf("is:pr author:%s is:merged", login)
	result, _, err := c.gh.Search.Issues(ctx, query, &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: searchPageSize},
	})
	if err != nil {
		return nil, fmt.Errorf("search merged pull requests of %s: %w", login, err)
	}

	log.Debug("merged pull requests found",
		zap.String("login", login),
		zap.Int("count", len(result.Issues)),
	)

	repos := make(map[string]domain.RepositorySnapshot)
	res := make([]domain.PullRequestRecord, 0, len(result.Issues))

	for _, issue := range result.Issues {
		owner, name, err := repoFromURL(issue.GetRepositoryURL())
		if err != nil {
			log.Warn("skipping pull request with unparsable repository url",
				zap.String("pr_url", issue.GetHTMLURL()),
				zap.Error(err),
			)
			continue
		}

		key := owner + "/" + name
		repo, ok := repos[key]
		if !ok {
			repo, err = c.repository(ctx, owner, name)
			if err != nil {
				log.Warn("repository fetch failed",
					zap.String("repo", key),
					zap.Error(err),
				)
				continue
			}
			repos[key] = repo
		}

		res = append(res, domain.PullRequestRecord{
			Title:      issue.GetTitle(),
			URL:        issue.GetHTMLURL(),
			Repository: repo,
			MergedAt:   mergedAt(issue),
		})
	}

	return res, nil
}

func (c *Client) repository(ctx context.Context, owner, name string) (domain.RepositorySnapshot, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return domain.RepositorySnapshot{}, err
	}

	return domain.RepositorySnapshot{
		FullName:   repo.GetFullName(),
		Stars:      repo.GetStargazersCount(),
		Private:    repo.GetPrivate(),
		OwnerLogin: repo.GetOwner().GetLogin(),
	}, nil
}

// repoFromURL extracts owner and name from an API url ending in /repos/{owner}/{name}.
func repoFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 3 || parts[len(parts)-3] != "repos" {
		return "", "", fmt.Errorf("not a repository url: %q", raw)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}

func mergedAt(issue *github.Issue) time.Time {
	if links := issue.GetPullRequestLinks(); links != nil && links.MergedAt != nil {
		return links.GetMergedAt().Time
	}
	return issue.GetClosedAt().Time
}
