package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ritikraj2425/mergeflow/internal/domain"
)

func directory() []domain.UserWithStats {
	return []domain.UserWithStats{
		{User: domain.User{UserID: "c", Username: "carol"}, Stats: &domain.UserStats{MediumImpactPRs: 2, TotalMergedPRs: 2}},
		{User: domain.User{UserID: "a", Username: "alice"}, Stats: &domain.UserStats{HighImpactPRs: 2, MediumImpactPRs: 3, LowImpactPRs: 4, TotalMergedPRs: 9}},
		{User: domain.User{UserID: "n", Username: "newbie"}},
		{User: domain.User{UserID: "b", Username: "bob"}, Stats: &domain.UserStats{HighImpactPRs: 3, MediumImpactPRs: 1, LowImpactPRs: 4, TotalMergedPRs: 8}},
	}
}

func TestComputeLeaderboard(t *testing.T) {
	s, d := newService(t)

	d.userRepo.EXPECT().ListUsersWithStats(gomock.Any()).Return(directory(), nil)

	entries, err := s.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	got := make([]string, 0, len(entries))
	for i, e := range entries {
		require.Equal(t, i+1, e.Rank)
		got = append(got, e.User.UserID)
	}
	require.Equal(t, []string{"a", "b", "c", "n"}, got)
	require.Equal(t, 43, entries[0].Score)
	require.Equal(t, 43, entries[1].Score)
	require.Equal(t, 10, entries[2].Score)
	require.Equal(t, 0, entries[3].Score)
	require.False(t, entries[3].HasStats)
}

func TestComputeLeaderboard_Error(t *testing.T) {
	s, d := newService(t)

	wantErr := errors.New("list failed")
	d.userRepo.EXPECT().ListUsersWithStats(gomock.Any()).Return(nil, wantErr)

	entries, err := s.ComputeLeaderboard(context.Background())
	require.ErrorIs(t, err, wantErr)
	require.Nil(t, entries)
}

func TestGetUserProfile(t *testing.T) {
	s, d := newService(t)

	bob := domain.User{UserID: "b", Username: "bob"}
	prs := []domain.ClassifiedPullRequest{{Impact: domain.ImpactHigh}}

	d.userRepo.EXPECT().GetUserByUsername(gomock.Any(), "Bob").Return(bob, nil)
	d.userRepo.EXPECT().ListUsersWithStats(gomock.Any()).Return(directory(), nil)
	d.prRepo.EXPECT().GetUserPRs(gomock.Any(), "b").Return(prs, nil)

	profile, err := s.GetUserProfile(context.Background(), "Bob")
	require.NoError(t, err)
	require.Equal(t, bob, profile.User)
	require.Equal(t, 43, profile.Score)
	require.Equal(t, 2, profile.Rank)
	require.Equal(t, 8, profile.Stats.TotalMergedPRs)
	require.Equal(t, prs, profile.PullRequests)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	s, d := newService(t)

	notFound := domain.NewDomainError(domain.ErrorCodeNotFound, "user not found")
	d.userRepo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(domain.User{}, notFound)

	_, err := s.GetUserProfile(context.Background(), "ghost")
	require.ErrorIs(t, err, notFound)
}
