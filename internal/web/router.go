// Package web maps the page routes onto the user views.
package web

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/fkhayef/ghusers/internal/user"
)

// Service is what the pages need from the user service
type Service interface {
	user.Lister
	user.Getter
}

// Pages serves the two HTML views
type Pages struct {
	service Service
}

// NewPages creates the page handlers with the user service injected
func NewPages(service Service) *Pages {
	return &Pages{service: service}
}

// Routes maps / to the user list and /users/{username} to the user details
func (p *Pages) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", p.List)
	r.Get("/users/{username}", p.Detail)

	return r
}

// List handles GET /
func (p *Pages) List(w http.ResponseWriter, r *http.Request) {
	v := user.NewListView(p.service)
	defer v.Close()

	<-v.Mount(r.Context())

	if st := v.State(); st.IsFailed() {
		zerolog.Ctx(r.Context()).Warn().Str("error", st.Err).Msg("list users failed")
	}
	render(w, r, layout("GitHub Users", v.Render()))
}

// Detail handles GET /users/{username}
func (p *Pages) Detail(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	v := user.NewDetailView(p.service)
	defer v.Close()

	<-v.SetUsername(r.Context(), username)

	if st := v.State(); st.IsFailed() {
		zerolog.Ctx(r.Context()).Warn().Str("error", st.Err).Str("username", username).Msg("get user failed")
	}
	render(w, r, layout("User Details", v.Render()))
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	templ.Handler(c, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("render page failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}
