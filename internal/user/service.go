package user

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// DefaultPageSize is the number of users requested for the list
const DefaultPageSize = 10

// Common errors
var (
	ErrUsernameRequired = errors.New("username is required")
)

// Service handles user business logic
type Service struct {
	repo *Repository
}

// NewService creates a new user service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves the first page of users
func (s *Service) List(ctx context.Context) ([]*UserSummary, error) {
	return s.repo.List(ctx, DefaultPageSize)
}

// GetByUsername retrieves a single user's profile
func (s *Service) GetByUsername(ctx context.Context, username string) (*UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	return s.repo.GetByUsername(ctx, username)
}

// IsNotFound reports whether err is a fetch that GitHub answered with 404
func IsNotFound(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.StatusCode == http.StatusNotFound
}
