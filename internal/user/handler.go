package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/fkhayef/ghusers/pkg/response"
)

// Handler handles JSON API requests for user operations
type Handler struct {
	service *Service
}

// NewHandler creates a new user handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for user endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{username}", h.GetByUsername)

	return r
}

// List handles GET /users
// @Summary      List GitHub users
// @Description  Get the first page of GitHub users (10 per page)
// @Tags         users
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]UserSummaryResponse}
// @Failure      502 {object} response.APIResponse
// @Router       /users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("list users failed")
		response.BadGateway(w, err.Error())
		return
	}

	// Convert to response DTOs
	userResponses := make([]*UserSummaryResponse, len(users))
	for i, u := range users {
		userResponses[i] = u.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, userResponses, &response.Meta{
		Page:    1,
		PerPage: DefaultPageSize,
	})
}

// GetByUsername handles GET /users/{username}
// @Summary      Get user profile
// @Description  Get the profile of a single GitHub user
// @Tags         users
// @Produce      json
// @Param        username path string true "GitHub login"
// @Success      200 {object} response.APIResponse{data=UserProfileResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      502 {object} response.APIResponse
// @Router       /users/{username} [get]
func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameRequired):
			response.BadRequest(w, err.Error())
		case IsNotFound(err):
			response.NotFound(w, err.Error())
		default:
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("username", username).Msg("get user failed")
			response.BadGateway(w, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusOK, profile.ToResponse())
}
