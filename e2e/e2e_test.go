//go:build integration

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/testcontainers/testcontainers-go"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/ritikraj2425/mergeflow/config"
	dbpkg "github.com/ritikraj2425/mergeflow/db"
	"github.com/ritikraj2425/mergeflow/internal/domain"
	v1 "github.com/ritikraj2425/mergeflow/internal/http/v1"
	"github.com/ritikraj2425/mergeflow/internal/logger"
	"github.com/ritikraj2425/mergeflow/internal/prsource"
	"github.com/ritikraj2425/mergeflow/internal/repository/postgres"
	"github.com/ritikraj2425/mergeflow/internal/usecase"

	"net/http/httptest"
)

const webhookURL = "http://automation.local/webhook"

var (
	dbPool      *pgxpool.Pool
	httpServer  *httptest.Server
	githubStub  *httptest.Server
	pgContainer testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_DB": "mergeflow", "POSTGRES_USER": "test", "POSTGRES_PASSWORD": "test"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
		os.Exit(1)
	}
	pgContainer = container

	host, err := container.Host(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get container port: %v\n", err)
		os.Exit(1)
	}

	dbCfg := config.DB{Host: host, Port: port.Port(), User: "test", Password: "test", Name: "mergeflow"}

	dbPool, err = pgxpool.New(ctx, dbCfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create pgx pool: %v\n", err)
		os.Exit(1)
	}

	logg := logger.New(true)
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	dbpkg.SetupPostgres(dbPool, logg)

	githubStub = newGitHubStub()

	prSource, err := prsource.NewClient(config.GitHub{APIURL: githubStub.URL})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create github client: %v\n", err)
		os.Exit(1)
	}

	svc := usecase.NewService(
		postgres.NewUserRepository(dbPool),
		postgres.NewStatsRepository(dbPool),
		postgres.NewPRRepository(dbPool),
		postgres.NewAchievementRepository(dbPool),
		postgres.NewPostRepository(dbPool),
		prSource,
		dbpkg.NewTransactor(dbPool),
		config.Engine{
			WebhookEndpoint:            webhookURL,
			RequestTimeout:             5 * time.Second,
			QualifyingAchievementTypes: []string{"low_pr_10", "high_pr_1", "medium_pr_5"},
		},
	)

	handler := v1.NewServerHandler(svc, svc, svc, svc, svc)
	e := v1.NewRouter(handler)
	e.Use(logger.Middleware(logg))

	httpServer = httptest.NewServer(e)

	code := m.Run()

	httpServer.Close()
	githubStub.Close()
	dbPool.Close()
	_ = pgContainer.Terminate(ctx)

	os.Exit(code)
}

// newGitHubStub отдаёт два смерженных PR пользователя "octocat": один в большой репозиторий, один в свой.
func newGitHubStub() *httptest.Server {
	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total_count": 2,
			"items": []map[string]any{
				{
					"title":          "Fix scheduler race",
					"html_url":       "https://github.com/kube/kube/pull/1",
					"repository_url": srv.URL + "/repos/kube/kube",
					"pull_request":   map[string]any{"merged_at": "2025-01-02T09:00:00Z"},
				},
				{
					"title":          "Own project",
					"html_url":       "https://github.com/octocat/dotfiles/pull/2",
					"repository_url": srv.URL + "/repos/octocat/dotfiles",
					"pull_request":   map[string]any{"merged_at": "2025-01-03T09:00:00Z"},
				},
			},
		})
	})

	mux.HandleFunc("/repos/kube/kube", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"full_name":        "kube/kube",
			"stargazers_count": 100000,
			"owner":            map[string]any{"login": "kube"},
		})
	})

	mux.HandleFunc("/repos/octocat/dotfiles", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"full_name":        "octocat/dotfiles",
			"stargazers_count": 3,
			"owner":            map[string]any{"login": "octocat"},
		})
	})

	srv = httptest.NewServer(mux)
	return srv
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := dbPool.Exec(context.Background(),
		`TRUNCATE TABLE posts, achievements, user_pull_requests, user_stats, users CASCADE`)
	require.NoError(t, err)
}

func postJSON(t *testing.T, path string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	resp, err := http.Post(httpServer.URL+path, "application/json", &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func getJSON(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := http.Get(httpServer.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func registerUser(t *testing.T, id, username string) {
	t.Helper()
	status := postJSON(t, "/users", v1.PostUsersJSONRequestBody{UserId: id, Username: username, Name: &username}, nil)
	require.Equal(t, http.StatusCreated, status)
}

func repoPRs(n int, owner string, stars int) []v1.PullRequestInput {
	prs := make([]v1.PullRequestInput, 0, n)
	for i := 0; i < n; i++ {
		prs = append(prs, v1.PullRequestInput{
			Title: fmt.Sprintf("PR %d", i),
			Url:   fmt.Sprintf("https://github.com/%s/repo/pull/%d", owner, i),
			Repository: v1.Repository{
				FullName:   owner + "/repo",
				Stars:      stars,
				OwnerLogin: owner,
			},
		})
	}
	return prs
}

func recompute(t *testing.T, userID string, prs []v1.PullRequestInput) v1.StatsRefreshResponse {
	t.Helper()
	var out v1.StatsRefreshResponse
	status := postJSON(t, "/pullRequests/recompute", v1.PostPullRequestsRecomputeJSONRequestBody{
		UserId:       userID,
		PullRequests: prs,
	}, &out)
	require.Equal(t, http.StatusOK, status)
	return out
}

type checkResponse = v1.AchievementCheckResponse

func TestRegisterUser_DuplicateUsername_E2E(t *testing.T) {
	truncateAll(t)

	registerUser(t, "u1", "octocat")

	var errResp v1.ErrorResponse
	status := postJSON(t, "/users", v1.PostUsersJSONRequestBody{UserId: "u2", Username: "OctoCat"}, &errResp)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, v1.USERNAMETAKEN, errResp.Error.Code)
}

func TestRegisterUser_PartialUpdateKeepsProfile_E2E(t *testing.T) {
	truncateAll(t)

	name, avatar := "Octo Cat", "https://avatars.example.com/octo.png"
	status := postJSON(t, "/users", v1.PostUsersJSONRequestBody{
		UserId:    "u1",
		Username:  "octocat",
		Name:      &name,
		AvatarUrl: &avatar,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	verified := true
	var out v1.UserResponse
	status = postJSON(t, "/users", v1.PostUsersJSONRequestBody{UserId: "u1", Username: "octocat", IsVerified: &verified}, &out)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, name, out.User.Name)
	require.Equal(t, avatar, out.User.AvatarUrl)
	require.True(t, out.User.IsVerified)

	var profile v1.UserProfile
	require.Equal(t, http.StatusOK, getJSON(t, "/users/octocat", &profile))
	require.Equal(t, name, profile.User.Name)
	require.Equal(t, avatar, profile.User.AvatarUrl)
}

func TestRecompute_FullReplace_E2E(t *testing.T) {
	truncateAll(t)
	registerUser(t, "u1", "octocat")

	prs := append(repoPRs(3, "big", 1000), repoPRs(2, "mid", 200)...)
	prs = append(prs, repoPRs(4, "small", 10)...)
	prs = append(prs, repoPRs(2, "octocat", 5000)...)

	first := recompute(t, "u1", prs)
	require.Equal(t, 3, first.Stats.HighImpactPrs)
	require.Equal(t, 2, first.Stats.MediumImpactPrs)
	require.Equal(t, 4, first.Stats.LowImpactPrs)
	require.Equal(t, 9, first.Stats.TotalMergedPrs)
	require.Len(t, first.PullRequests, 9)

	second := recompute(t, "u1", repoPRs(1, "small", 10))
	require.Equal(t, 1, second.Stats.TotalMergedPrs)
	require.Equal(t, 0, second.Stats.HighImpactPrs)

	var profile v1.UserProfile
	require.Equal(t, http.StatusOK, getJSON(t, "/users/octocat", &profile))
	require.Equal(t, 2, profile.Score)
	require.Len(t, profile.PullRequests, 1)
}

func TestRefreshFromGitHub_E2E(t *testing.T) {
	truncateAll(t)
	registerUser(t, "u1", "octocat")

	var out v1.StatsRefreshResponse
	status := postJSON(t, "/pullRequests/refresh", v1.PostPullRequestsRefreshJSONRequestBody{UserId: "u1"}, &out)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, out.Stats.HighImpactPrs)
	require.Equal(t, 1, out.Stats.TotalMergedPrs)
	require.Len(t, out.PullRequests, 1)
	require.Equal(t, "kube/kube", out.PullRequests[0].Repo)
}

func TestRefresh_UnknownUser_E2E(t *testing.T) {
	truncateAll(t)

	var errResp v1.ErrorResponse
	status := postJSON(t, "/pullRequests/refresh", v1.PostPullRequestsRefreshJSONRequestBody{UserId: "ghost"}, &errResp)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, v1.NOTFOUND, errResp.Error.Code)
}

func TestAchievements_AwardedOnce_E2E(t *testing.T) {
	truncateAll(t)
	registerUser(t, "u1", "octocat")

	stats := &v1.PRStatsInput{LowImpactPrs: 12, MediumImpactPrs: 2, HighImpactPrs: 0}

	var first checkResponse
	status := postJSON(t, "/achievements/check", v1.PostAchievementsCheckJSONRequestBody{UserId: "u1", PrStats: stats}, &first)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, first.TotalNew)
	require.Equal(t, "low_pr_10", first.NewAchievements[0].Type)
	require.Equal(t, 12, first.NewAchievements[0].Metadata.PrCount)

	var second checkResponse
	status = postJSON(t, "/achievements/check", v1.PostAchievementsCheckJSONRequestBody{UserId: "u1", PrStats: stats}, &second)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, second.TotalNew)

	// metadata of a held achievement is not updated by later counts
	var third checkResponse
	status = postJSON(t, "/achievements/check", v1.PostAchievementsCheckJSONRequestBody{
		UserId:  "u1",
		PrStats: &v1.PRStatsInput{LowImpactPrs: 20, HighImpactPrs: 1},
	}, &third)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, third.TotalNew)
	require.Equal(t, "high_pr_1", third.NewAchievements[0].Type)

	var history v1.AchievementsResponse
	require.Equal(t, http.StatusOK, getJSON(t, "/achievements/u1", &history))
	require.Equal(t, 2, history.Total)
	for _, a := range history.Achievements {
		if a.Type == "low_pr_10" {
			require.Equal(t, 12, a.Metadata.PrCount)
		}
	}
}

func TestAchievements_ConcurrentChecks_E2E(t *testing.T) {
	truncateAll(t)
	registerUser(t, "u1", "octocat")

	const workers = 8
	stats := &v1.PRStatsInput{HighImpactPrs: 1}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var buf bytes.Buffer
			if err := json.NewEncoder(&buf).Encode(v1.PostAchievementsCheckJSONRequestBody{UserId: "u1", PrStats: stats}); err != nil {
				return
			}
			resp, err := http.Post(httpServer.URL+"/achievements/check", "application/json", &buf)
			if err != nil {
				return
			}
			defer resp.Body.Close()

			var out checkResponse
			if resp.StatusCode != http.StatusOK || json.NewDecoder(resp.Body).Decode(&out) != nil {
				return
			}

			mu.Lock()
			granted += out.TotalNew
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, granted)

	var count int
	err := dbPool.QueryRow(context.Background(),
		`SELECT count(*) FROM achievements WHERE user_id = $1 AND type = 'high_pr_1'`, "u1").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAgentCanRun_E2E(t *testing.T) {
	truncateAll(t)
	registerUser(t, "u1", "octocat")
	registerUser(t, "u2", "hubot")

	status := postJSON(t, "/achievements/check", v1.PostAchievementsCheckJSONRequestBody{
		UserId:  "u1",
		PrStats: &v1.PRStatsInput{MediumImpactPrs: 5},
	}, nil)
	require.Equal(t, http.StatusOK, status)

	var eligible v1.Eligibility
	require.Equal(t, http.StatusOK, getJSON(t, "/agent/canRun/u1", &eligible))
	require.True(t, eligible.CanRun)
	require.Len(t, eligible.EligibleAchievements, 1)
	require.NotNil(t, eligible.AutomationEndpoint)
	require.Equal(t, webhookURL, *eligible.AutomationEndpoint)

	var notEligible v1.Eligibility
	require.Equal(t, http.StatusOK, getJSON(t, "/agent/canRun/u2", &notEligible))
	require.False(t, notEligible.CanRun)
	require.Nil(t, notEligible.AutomationEndpoint)
}

func TestLeaderboard_E2E(t *testing.T) {
	truncateAll(t)
	registerUser(t, "a", "alice")
	registerUser(t, "b", "bob")
	registerUser(t, "c", "carol")
	registerUser(t, "d", "dave")

	// alice: 4 high + 1 low = 42; bob: 2 high + 4 medium + 1 low = 42; carol: 5 low = 10
	recompute(t, "a", append(repoPRs(4, "big", 1000), repoPRs(1, "small", 1)...))
	bobPRs := append(repoPRs(2, "big", 1000), repoPRs(4, "mid", 300)...)
	recompute(t, "b", append(bobPRs, repoPRs(1, "small", 1)...))
	recompute(t, "c", repoPRs(5, "small", 1))

	var board v1.Leaderboard
	require.Equal(t, http.StatusOK, getJSON(t, "/leaderboard", &board))
	require.Equal(t, 4, board.Total)

	got := make([]string, 0, len(board.Users))
	for i, u := range board.Users {
		require.Equal(t, i+1, u.Rank)
		got = append(got, u.Username)
	}
	// bob has more merged PRs, so the directory order puts him first among equal scores
	require.Equal(t, []string{"bob", "alice", "carol", "dave"}, got)
	require.Equal(t, 42, board.Users[0].Score)
	require.Equal(t, 42, board.Users[1].Score)
	require.Equal(t, 0, board.Users[3].Score)

	var profile v1.UserProfile
	require.Equal(t, http.StatusOK, getJSON(t, "/users/alice", &profile))
	require.Equal(t, 2, profile.Rank)
	require.Equal(t, 42, profile.Score)
}

func TestRecompute_ConcurrentSameUser_E2E(t *testing.T) {
	truncateAll(t)
	registerUser(t, "u1", "octocat")

	const workers = 8

	var wg sync.WaitGroup
	statuses := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			var buf bytes.Buffer
			body := v1.PostPullRequestsRecomputeJSONRequestBody{
				UserId:       "u1",
				PullRequests: repoPRs(i+1, fmt.Sprintf("owner%d", i), 10),
			}
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				return
			}
			resp, err := http.Post(httpServer.URL+"/pullRequests/recompute", "application/json", &buf)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for i, status := range statuses {
		require.Equal(t, http.StatusOK, status, "worker %d", i)
	}

	var stored, total int
	err := dbPool.QueryRow(context.Background(),
		`SELECT count(*) FROM user_pull_requests WHERE user_id = $1`, "u1").Scan(&stored)
	require.NoError(t, err)
	err = dbPool.QueryRow(context.Background(),
		`SELECT total_merged_prs FROM user_stats WHERE user_id = $1`, "u1").Scan(&total)
	require.NoError(t, err)

	require.Equal(t, total, stored)
	require.GreaterOrEqual(t, total, 1)
	require.LessOrEqual(t, total, workers)
}

func createPost(t *testing.T, userID, username, content string) (v1.PostResponse, int) {
	t.Helper()
	var out v1.PostResponse
	status := postJSON(t, "/posts", v1.PostPostsJSONRequestBody{
		UserId:       userID,
		UserName:     username,
		UserUsername: username,
		Content:      content,
	}, &out)
	return out, status
}

func TestPosts_E2E(t *testing.T) {
	truncateAll(t)

	for i := 0; i < 5; i++ {
		_, status := createPost(t, "u1", "octocat", fmt.Sprintf("  post %d  ", i))
		require.Equal(t, http.StatusCreated, status)
	}
	created, status := createPost(t, "u2", "hubot", "hello")
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.Post.Id)
	require.Equal(t, "hello", created.Post.Content)
	require.Equal(t, "/placeholder.svg", created.Post.User.Avatar)
	require.Zero(t, created.Post.Likes)

	var feed v1.PostsPage
	require.Equal(t, http.StatusOK, getJSON(t, "/posts?page=1&limit=4", &feed))
	require.Len(t, feed.Posts, 4)
	require.Equal(t, created.Post.Id, feed.Posts[0].Id)
	require.Equal(t, v1.Pagination{CurrentPage: 1, TotalPages: 2, TotalPosts: 6, HasNext: true, HasPrev: false}, feed.Pagination)
	for i := 1; i < len(feed.Posts); i++ {
		require.False(t, feed.Posts[i].CreatedAt.After(feed.Posts[i-1].CreatedAt))
	}

	var last v1.PostsPage
	require.Equal(t, http.StatusOK, getJSON(t, "/posts?page=2&limit=4", &last))
	require.Len(t, last.Posts, 2)
	require.False(t, last.Pagination.HasNext)
	require.True(t, last.Pagination.HasPrev)

	var mine v1.PostsPage
	require.Equal(t, http.StatusOK, getJSON(t, "/posts/user/u1", &mine))
	require.Len(t, mine.Posts, 5)
	require.Equal(t, 5, mine.Pagination.TotalPosts)
	require.Equal(t, "post 4", mine.Posts[0].Content)
	for _, p := range mine.Posts {
		require.Equal(t, "u1", p.UserId)
	}

	var errResp v1.ErrorResponse
	status = postJSON(t, "/posts", v1.PostPostsJSONRequestBody{
		UserId: "u1", UserName: "octocat", UserUsername: "octocat", Content: "   ",
	}, &errResp)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, v1.INVALIDINPUT, errResp.Error.Code)

	status = postJSON(t, "/posts", v1.PostPostsJSONRequestBody{
		UserId: "u1", UserName: "octocat", UserUsername: "octocat", Content: strings.Repeat("x", 501),
	}, nil)
	require.Equal(t, http.StatusBadRequest, status)

	_, status = createPost(t, "u1", "octocat", strings.Repeat("x", 500))
	require.Equal(t, http.StatusCreated, status)
}

func TestAchievementRepo_InsertIfAbsent_E2E(t *testing.T) {
	truncateAll(t)
	registerUser(t, "u1", "octocat")

	ctx := context.Background()
	repo := postgres.NewAchievementRepository(dbPool)

	first := domain.Achievement{
		ID:         "7d1f0c2e-3f5a-4b8e-9c61-2a4d5e6f7a81",
		UserID:     "u1",
		Type:       domain.AchievementHighPR1,
		AchievedAt: time.Now().UTC(),
		Metadata:   domain.AchievementMetadata{PRCount: 1, ImpactType: domain.ImpactHigh},
	}
	inserted, err := repo.InsertIfAbsent(ctx, first)
	require.NoError(t, err)
	require.True(t, inserted)

	// same (user, type) under a new id is the only conflict absorbed
	again := first
	again.ID = "0b6a2c4d-8e1f-4a3b-9d5c-7e8f9a0b1c2d"
	inserted, err = repo.InsertIfAbsent(ctx, again)
	require.NoError(t, err)
	require.False(t, inserted)

	// a different type reusing an existing id must fail loudly
	clash := first
	clash.Type = domain.AchievementLowPR10
	clash.Metadata = domain.AchievementMetadata{PRCount: 10, ImpactType: domain.ImpactLow}
	inserted, err = repo.InsertIfAbsent(ctx, clash)
	require.Error(t, err)
	require.False(t, inserted)

	held, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, held, 1)
}
