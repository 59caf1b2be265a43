package domain

import "time"

type User struct {
	UserID     string
	Username   string
	Name       string
	AvatarURL  string
	IsVerified bool
	CreatedAt  time.Time
}

// UserWithStats is a user directory row. Stats is nil until the user's PRs were fetched at least once.
type UserWithStats struct {
	User  User
	Stats *UserStats
}

type UserProfile struct {
	User         User
	Stats        UserStats
	Score        int
	Rank         int
	PullRequests []ClassifiedPullRequest
}
