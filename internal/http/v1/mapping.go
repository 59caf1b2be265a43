package v1

import (
	"time"

	"github.com/ritikraj2425/mergeflow/internal/domain"
)

// вспомогательная ф-ция для nullable time
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	tt := t.UTC()
	return &tt
}

func toAPIUser(u domain.User) User {
	return User{
		UserId:     u.UserID,
		Username:   u.Username,
		Name:       u.Name,
		AvatarUrl:  u.AvatarURL,
		IsVerified: u.IsVerified,
		CreatedAt:  timePtr(u.CreatedAt),
	}
}

// Пропущенные поля остаются пустыми, репозиторий тогда сохраняет прежние значения.
func toDomainUser(body PostUsersJSONRequestBody) domain.User {
	user := domain.User{
		UserID:   body.UserId,
		Username: body.Username,
	}
	if body.Name != nil {
		user.Name = *body.Name
	}
	if body.AvatarUrl != nil {
		user.AvatarURL = *body.AvatarUrl
	}
	if body.IsVerified != nil {
		user.IsVerified = *body.IsVerified
	}
	return user
}

func toDomainPR(in PullRequestInput) domain.PullRequestRecord {
	rec := domain.PullRequestRecord{
		Title: in.Title,
		URL:   in.Url,
		Repository: domain.RepositorySnapshot{
			FullName:   in.Repository.FullName,
			Stars:      in.Repository.Stars,
			Private:    in.Repository.Private,
			OwnerLogin: in.Repository.OwnerLogin,
		},
	}
	if in.MergedAt != nil {
		rec.MergedAt = *in.MergedAt
	}
	return rec
}

func toAPIPR(pr domain.ClassifiedPullRequest) PullRequest {
	return PullRequest{
		Title:    pr.Title,
		Url:      pr.URL,
		Repo:     pr.Repository.FullName,
		Stars:    pr.Repository.Stars,
		Impact:   string(pr.Impact),
		MergedAt: timePtr(pr.MergedAt),
	}
}

func toAPIPRs(prs []domain.ClassifiedPullRequest) []PullRequest {
	items := make([]PullRequest, 0, len(prs))
	for _, pr := range prs {
		items = append(items, toAPIPR(pr))
	}
	return items
}

func toAPIStats(s domain.UserStats) UserStats {
	return UserStats{
		LowImpactPrs:    s.LowImpactPRs,
		MediumImpactPrs: s.MediumImpactPRs,
		HighImpactPrs:   s.HighImpactPRs,
		TotalMergedPrs:  s.TotalMergedPRs,
		LastUpdated:     timePtr(s.LastUpdated),
	}
}

// Итог не передаётся клиентом, а пересчитывается из счётчиков.
func toDomainStats(in PRStatsInput) domain.UserStats {
	return domain.UserStats{
		LowImpactPRs:    in.LowImpactPrs,
		MediumImpactPRs: in.MediumImpactPrs,
		HighImpactPRs:   in.HighImpactPrs,
		TotalMergedPRs:  in.LowImpactPrs + in.MediumImpactPrs + in.HighImpactPrs,
	}
}

func toAPIAchievement(a domain.Achievement) Achievement {
	return Achievement{
		Type:       string(a.Type),
		AchievedAt: a.AchievedAt.UTC(),
		Metadata: AchievementMetadata{
			PrCount:    a.Metadata.PRCount,
			ImpactType: string(a.Metadata.ImpactType),
		},
	}
}

func toAPIAchievements(as []domain.Achievement) []Achievement {
	items := make([]Achievement, 0, len(as))
	for _, a := range as {
		items = append(items, toAPIAchievement(a))
	}
	return items
}

func toAPILeaderboardEntry(e domain.LeaderboardEntry) LeaderboardEntry {
	entry := LeaderboardEntry{
		UserId:          e.User.UserID,
		Username:        e.User.Username,
		Name:            e.User.Name,
		AvatarUrl:       e.User.AvatarURL,
		IsVerified:      e.User.IsVerified,
		Score:           e.Score,
		Rank:            e.Rank,
		PrsCount:        e.Stats.TotalMergedPRs,
		HighImpactPrs:   e.Stats.HighImpactPRs,
		MediumImpactPrs: e.Stats.MediumImpactPRs,
		LowImpactPrs:    e.Stats.LowImpactPRs,
	}
	if e.HasStats {
		entry.LastUpdated = timePtr(e.Stats.LastUpdated)
	}
	return entry
}

func toAPIProfile(p domain.UserProfile) UserProfile {
	return UserProfile{
		User:         toAPIUser(p.User),
		Score:        p.Score,
		Rank:         p.Rank,
		Stats:        toAPIStats(p.Stats),
		PullRequests: toAPIPRs(p.PullRequests),
	}
}

func toAPIEligibility(e domain.Eligibility) Eligibility {
	resp := Eligibility{
		CanRun:               e.CanRun,
		EligibleAchievements: toAPIAchievements(e.Achievements),
	}
	if e.AutomationEndpoint != "" {
		endpoint := e.AutomationEndpoint
		resp.AutomationEndpoint = &endpoint
	}
	return resp
}

func toAPIPost(p domain.Post) Post {
	return Post{
		Id:        p.ID,
		UserId:    p.UserID,
		Content:   p.Content,
		Likes:     p.Likes,
		Comments:  p.Comments,
		Shares:    p.Shares,
		CreatedAt: p.CreatedAt.UTC(),
		User: PostAuthor{
			Name:     p.Author.Name,
			Avatar:   p.Author.Avatar,
			Username: p.Author.Username,
		},
	}
}

func toAPIPostsPage(page domain.PostPage) PostsPage {
	posts := make([]Post, 0, len(page.Posts))
	for _, p := range page.Posts {
		posts = append(posts, toAPIPost(p))
	}
	return PostsPage{
		Posts: posts,
		Pagination: Pagination{
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalPosts:  page.Pagination.TotalPosts,
			HasNext:     page.Pagination.HasNext,
			HasPrev:     page.Pagination.HasPrev,
		},
	}
}
