package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultBaseURL is the root of the public GitHub REST API
	DefaultBaseURL = "https://api.github.com"

	apiVersion = "2022-11-28"
)

// FetchError is the single failure kind of a GitHub request. Its message
// is shown to the user verbatim.
type FetchError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Repository fetches users from the GitHub REST API
type Repository struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewRepository creates a new user repository with the HTTP client injected
func NewRepository(httpClient *http.Client, baseURL, userAgent string) *Repository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Repository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// List retrieves the first page of users
func (r *Repository) List(ctx context.Context, perPage int) ([]*UserSummary, error) {
	endpoint := r.baseURL + "/users?per_page=" + strconv.Itoa(perPage)

	var users []*UserSummary
	if err := r.get(ctx, endpoint, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []*UserSummary{}
	}

	return users, nil
}

// GetByUsername retrieves the profile of a single user
func (r *Repository) GetByUsername(ctx context.Context, username string) (*UserProfile, error) {
	endpoint := r.baseURL + "/users/" + url.PathEscape(username)

	profile := &UserProfile{}
	if err := r.get(ctx, endpoint, profile); err != nil {
		return nil, err
	}
	if profile.SocialURLs == nil {
		profile.SocialURLs = []SocialLink{}
	}

	return profile, nil
}

func (r *Repository) get(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return &FetchError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{
			Message:    fmt.Sprintf("Request failed with status code %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &FetchError{
			Message:    fmt.Sprintf("failed to decode response: %v", err),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	return nil
}
