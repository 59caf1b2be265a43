package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyRepository_StarBoundaries(t *testing.T) {
	cases := []struct {
		stars int
		want  ImpactTier
	}{
		{stars: 0, want: ImpactLow},
		{stars: 99, want: ImpactLow},
		{stars: 100, want: ImpactMedium},
		{stars: 101, want: ImpactMedium},
		{stars: 500, want: ImpactMedium},
		{stars: 501, want: ImpactHigh},
		{stars: 100000, want: ImpactHigh},
	}

	for _, tc := range cases {
		tier, ok := ClassifyRepository(RepositorySnapshot{
			FullName:   "kubernetes/kubernetes",
			Stars:      tc.stars,
			OwnerLogin: "kubernetes",
		}, "octocat")

		require.True(t, ok, "stars=%d", tc.stars)
		require.Equal(t, tc.want, tier, "stars=%d", tc.stars)
	}
}

func TestClassifyRepository_PrivateExcluded(t *testing.T) {
	for _, stars := range []int{0, 100, 500, 501, 90000} {
		_, ok := ClassifyRepository(RepositorySnapshot{
			FullName:   "acme/secret",
			Stars:      stars,
			Private:    true,
			OwnerLogin: "acme",
		}, "octocat")
		require.False(t, ok, "stars=%d", stars)
	}
}

func TestClassifyRepository_SelfOwnedExcluded(t *testing.T) {
	for _, stars := range []int{0, 100, 500, 501, 90000} {
		_, ok := ClassifyRepository(RepositorySnapshot{
			FullName:   "octocat/hello-world",
			Stars:      stars,
			OwnerLogin: "octocat",
		}, "octocat")
		require.False(t, ok, "stars=%d", stars)
	}

	_, ok := ClassifyRepository(RepositorySnapshot{
		FullName:   "OctoCat/hello-world",
		Stars:      1000,
		OwnerLogin: "OctoCat",
	}, "octocat")
	require.False(t, ok)
}

func TestClassifyPullRequests_DropsExcluded(t *testing.T) {
	prs := []PullRequestRecord{
		{Title: "fix", Repository: RepositorySnapshot{FullName: "a/x", Stars: 5, OwnerLogin: "a"}},
		{Title: "own", Repository: RepositorySnapshot{FullName: "me/x", Stars: 5000, OwnerLogin: "me"}},
		{Title: "private", Repository: RepositorySnapshot{FullName: "b/x", Stars: 5000, Private: true, OwnerLogin: "b"}},
		{Title: "big", Repository: RepositorySnapshot{FullName: "c/x", Stars: 800, OwnerLogin: "c"}},
	}

	res := ClassifyPullRequests(prs, "me")
	require.Len(t, res, 2)
	require.Equal(t, "fix", res[0].Title)
	require.Equal(t, ImpactLow, res[0].Impact)
	require.Equal(t, "big", res[1].Title)
	require.Equal(t, ImpactHigh, res[1].Impact)
}

func TestImpactTier_Order(t *testing.T) {
	require.Less(t, ImpactLow.Rank(), ImpactMedium.Rank())
	require.Less(t, ImpactMedium.Rank(), ImpactHigh.Rank())
	require.False(t, ImpactTier("huge").Valid())
}
