package user_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/ghusers/internal/user"
)

// newGitHub starts a fake GitHub API that answers every request with
// status and body.
func newGitHub(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRepositoryList(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotAccept, gotAgent string
	server := newGitHub(t, http.StatusOK,
		`[{"login":"a","avatar_url":"u1","name":"A","html_url":"h1"},{"login":"b","avatar_url":"u2","html_url":"h2"}]`,
		func(r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("per_page")
			gotAccept = r.Header.Get("Accept")
			gotAgent = r.Header.Get("User-Agent")
		})

	repo := user.NewRepository(server.Client(), server.URL, "ghusers-test")
	users, err := repo.List(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, "10", gotQuery)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	assert.Equal(t, "ghusers-test", gotAgent)

	require.Len(t, users, 2)
	assert.Equal(t, &user.UserSummary{Login: "a", AvatarURL: "u1", Name: "A", HTMLURL: "h1"}, users[0])
	assert.Empty(t, users[1].Name)
	assert.Equal(t, "b", users[1].DisplayName())
}

func TestRepositoryList_EmptyArray(t *testing.T) {
	t.Parallel()

	server := newGitHub(t, http.StatusOK, `[]`, nil)

	users, err := user.NewRepository(server.Client(), server.URL, "").List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestRepositoryGetByUsername(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := newGitHub(t, http.StatusOK,
		`{"login":"a","avatar_url":"u1","name":"A","company":"Acme","blog":"https://a.dev","followers":5,"following":2,"public_repos":3,
		  "social_urls":[{"name":"mastodon","url":"https://m.example/@a"}]}`,
		func(r *http.Request) { gotPath = r.URL.Path })

	repo := user.NewRepository(server.Client(), server.URL+"/", "")
	profile, err := repo.GetByUsername(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, "/users/a", gotPath)
	assert.Equal(t, &user.UserProfile{
		Login:       "a",
		AvatarURL:   "u1",
		Name:        "A",
		Company:     "Acme",
		Blog:        "https://a.dev",
		Followers:   5,
		Following:   2,
		PublicRepos: 3,
		SocialURLs:  []user.SocialLink{{Name: "mastodon", URL: "https://m.example/@a"}},
	}, profile)
}

func TestRepositoryGetByUsername_NullsAndMissingSocialURLs(t *testing.T) {
	t.Parallel()

	server := newGitHub(t, http.StatusOK,
		`{"login":"a","name":null,"company":null,"blog":"","followers":5,"following":2,"public_repos":3}`, nil)

	profile, err := user.NewRepository(server.Client(), server.URL, "").GetByUsername(context.Background(), "a")
	require.NoError(t, err)

	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Company)
	assert.Empty(t, profile.Blog)
	assert.NotNil(t, profile.SocialURLs)
	assert.Empty(t, profile.SocialURLs)
}

func TestRepositoryGetByUsername_EscapesPath(t *testing.T) {
	t.Parallel()

	var gotRawPath string
	server := newGitHub(t, http.StatusOK, `{"login":"x"}`, func(r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
	})

	_, err := user.NewRepository(server.Client(), server.URL, "").GetByUsername(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/users/a%2Fb", gotRawPath)
}

func TestRepository_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := newGitHub(t, http.StatusNotFound, `{"message":"Not Found"}`, nil)

	_, err := user.NewRepository(server.Client(), server.URL, "").GetByUsername(context.Background(), "ghost")
	require.Error(t, err)

	var fe *user.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Equal(t, "Request failed with status code 404", err.Error())
	assert.True(t, user.IsNotFound(err))
}

func TestRepository_ServerError(t *testing.T) {
	t.Parallel()

	server := newGitHub(t, http.StatusInternalServerError, ``, nil)

	_, err := user.NewRepository(server.Client(), server.URL, "").List(context.Background(), 10)
	require.Error(t, err)
	assert.Equal(t, "Request failed with status code 500", err.Error())
	assert.False(t, user.IsNotFound(err))
}

func TestRepository_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := newGitHub(t, http.StatusOK, `{not json`, nil)

	_, err := user.NewRepository(server.Client(), server.URL, "").List(context.Background(), 10)
	require.Error(t, err)

	var fe *user.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, err.Error(), "failed to decode response")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestRepository_NetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := user.NewRepository(nil, url, "").List(context.Background(), 10)
	require.Error(t, err)

	var fe *user.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Zero(t, fe.StatusCode)
	assert.NotEmpty(t, err.Error())
}

func TestRepository_CanceledContext(t *testing.T) {
	t.Parallel()

	server := newGitHub(t, http.StatusOK, `[]`, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := user.NewRepository(server.Client(), server.URL, "").List(ctx, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
