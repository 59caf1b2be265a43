package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxPostContentLength = 500
	DefaultPostAvatar    = "/placeholder.svg"

	DefaultFeedPageSize      = 20
	DefaultUserPostsPageSize = 10
	MaxPostsPageSize         = 100
)

// PostAuthor is copied onto the post when it is written and is not kept in sync with the user.
type PostAuthor struct {
	Name     string
	Avatar   string
	Username string
}

type Post struct {
	ID        string
	UserID    string
	Author    PostAuthor
	Content   string
	Likes     int
	Comments  int
	Shares    int
	CreatedAt time.Time
}

// NewPost validates a feed post and normalises its content and author.
// Content is trimmed and must hold 1..MaxPostContentLength characters.
func NewPost(userID string, author PostAuthor, content string) (Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Post{}, NewDomainError(ErrorCodeInvalidInput, "post content is required")
	}
	if utf8.RuneCountInString(content) > MaxPostContentLength {
		return Post{}, NewDomainError(ErrorCodeInvalidInput, "post content cannot exceed 500 characters")
	}

	userID = strings.TrimSpace(userID)
	author.Name = strings.TrimSpace(author.Name)
	author.Username = strings.TrimSpace(author.Username)
	if userID == "" || author.Name == "" || author.Username == "" {
		return Post{}, NewDomainError(ErrorCodeInvalidInput, "user_id, user_name and user_username are required")
	}

	if strings.TrimSpace(author.Avatar) == "" {
		author.Avatar = DefaultPostAvatar
	}

	return Post{
		UserID:  userID,
		Author:  author,
		Content: content,
	}, nil
}

type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest falls back to page 1 and defaultLimit for missing or non-positive values.
func NewPageRequest(page, limit, defaultLimit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPostsPageSize {
		limit = MaxPostsPageSize
	}
	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalPosts  int
	HasNext     bool
	HasPrev     bool
}

func NewPagination(req PageRequest, total int) Pagination {
	pages := 0
	if req.Limit > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}

	return Pagination{
		CurrentPage: req.Page,
		TotalPages:  pages,
		TotalPosts:  total,
		HasNext:     req.Page < pages,
		HasPrev:     req.Page > 1,
	}
}

// PostPage is one page of a feed, newest first.
type PostPage struct {
	Posts      []Post
	Pagination Pagination
}
