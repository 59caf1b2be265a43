package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireInvalidInput(t *testing.T, err error) {
	t.Helper()
	var derr *DomainError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, ErrorCodeInvalidInput, derr.Code)
}

func TestNewPost_TrimsAndDefaultsAvatar(t *testing.T) {
	post, err := NewPost(" u1 ", PostAuthor{Name: "Octo", Username: "octocat"}, "  shipped a fix  \n")
	require.NoError(t, err)

	require.Equal(t, "u1", post.UserID)
	require.Equal(t, "shipped a fix", post.Content)
	require.Equal(t, DefaultPostAvatar, post.Author.Avatar)
	require.Zero(t, post.Likes)
}

func TestNewPost_KeepsAvatar(t *testing.T) {
	post, err := NewPost("u1", PostAuthor{Name: "Octo", Username: "octocat", Avatar: "https://a/1.png"}, "hi")
	require.NoError(t, err)
	require.Equal(t, "https://a/1.png", post.Author.Avatar)
}

func TestNewPost_Content(t *testing.T) {
	author := PostAuthor{Name: "Octo", Username: "octocat"}

	_, err := NewPost("u1", author, "   ")
	requireInvalidInput(t, err)

	_, err = NewPost("u1", author, strings.Repeat("a", MaxPostContentLength))
	require.NoError(t, err)

	_, err = NewPost("u1", author, strings.Repeat("a", MaxPostContentLength+1))
	requireInvalidInput(t, err)

	// length is counted in characters, not bytes
	_, err = NewPost("u1", author, strings.Repeat("ж", MaxPostContentLength))
	require.NoError(t, err)

	// surrounding whitespace does not count
	_, err = NewPost("u1", author, "  "+strings.Repeat("a", MaxPostContentLength)+"  ")
	require.NoError(t, err)
}

func TestNewPost_RequiresAuthor(t *testing.T) {
	_, err := NewPost("", PostAuthor{Name: "Octo", Username: "octocat"}, "hi")
	requireInvalidInput(t, err)

	_, err = NewPost("u1", PostAuthor{Username: "octocat"}, "hi")
	requireInvalidInput(t, err)

	_, err = NewPost("u1", PostAuthor{Name: "Octo"}, "hi")
	requireInvalidInput(t, err)
}

func TestNewPageRequest(t *testing.T) {
	require.Equal(t, PageRequest{Page: 1, Limit: 20}, NewPageRequest(0, 0, DefaultFeedPageSize))
	require.Equal(t, PageRequest{Page: 1, Limit: 10}, NewPageRequest(-3, -1, DefaultUserPostsPageSize))
	require.Equal(t, PageRequest{Page: 3, Limit: 5}, NewPageRequest(3, 5, DefaultFeedPageSize))
	require.Equal(t, PageRequest{Page: 2, Limit: MaxPostsPageSize}, NewPageRequest(2, 1000, DefaultFeedPageSize))

	require.Equal(t, 10, PageRequest{Page: 3, Limit: 5}.Offset())
	require.Equal(t, 0, PageRequest{Page: 1, Limit: 20}.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		req   PageRequest
		total int
		want  Pagination
	}{
		{
			name:  "empty feed",
			req:   PageRequest{Page: 1, Limit: 20},
			total: 0,
			want:  Pagination{CurrentPage: 1},
		},
		{
			name:  "first of three",
			req:   PageRequest{Page: 1, Limit: 10},
			total: 21,
			want:  Pagination{CurrentPage: 1, TotalPages: 3, TotalPosts: 21, HasNext: true},
		},
		{
			name:  "last full page",
			req:   PageRequest{Page: 2, Limit: 10},
			total: 20,
			want:  Pagination{CurrentPage: 2, TotalPages: 2, TotalPosts: 20, HasPrev: true},
		},
		{
			name:  "past the end",
			req:   PageRequest{Page: 5, Limit: 10},
			total: 12,
			want:  Pagination{CurrentPage: 5, TotalPages: 2, TotalPosts: 12, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewPagination(tt.req, tt.total))
		})
	}
}
