package user

import (
	"context"
	"sync"

	"github.com/a-h/templ"

	"github.com/fkhayef/ghusers/internal/view"
)

// Lister fetches the users listing
type Lister interface {
	List(ctx context.Context) ([]*UserSummary, error)
}

// Getter fetches a single user profile
type Getter interface {
	GetByUsername(ctx context.Context, username string) (*UserProfile, error)
}

const listKey = "users"

// ListView fetches the users listing once on mount and renders it
type ListView struct {
	lister Lister
	effect *view.Effect[[]*UserSummary]

	once sync.Once
	done <-chan struct{}
}

// NewListView creates a list view that has not been mounted yet
func NewListView(lister Lister) *ListView {
	return &ListView{
		lister: lister,
		effect: view.NewEffect[[]*UserSummary](),
	}
}

// Mount starts the list fetch. Only the first call fetches; every call
// returns the channel of that first fetch.
func (v *ListView) Mount(ctx context.Context) <-chan struct{} {
	v.once.Do(func() {
		v.done = v.effect.Run(ctx, listKey, func(ctx context.Context, _ string) ([]*UserSummary, error) {
			return v.lister.List(ctx)
		})
	})
	return v.done
}

// State returns a snapshot of the view state
func (v *ListView) State() view.State[[]*UserSummary] {
	return v.effect.State()
}

// Close cancels the fetch if it is still in flight
func (v *ListView) Close() {
	v.effect.Cancel()
}

// Render returns the component for the current state
func (v *ListView) Render() templ.Component {
	return listComponent(v.effect.State())
}

// DetailView fetches and renders one user's profile, refetching whenever
// the username changes.
type DetailView struct {
	getter Getter
	effect *view.Effect[*UserProfile]
}

// NewDetailView creates a detail view with no username selected
func NewDetailView(getter Getter) *DetailView {
	return &DetailView{
		getter: getter,
		effect: view.NewEffect[*UserProfile](),
	}
}

// SetUsername points the view at username. A change cancels the fetch in
// flight and starts exactly one new one; setting the current username
// again starts nothing and hands back the channel of the fetch already
// made for it. The returned channel closes when that fetch settles.
func (v *DetailView) SetUsername(ctx context.Context, username string) <-chan struct{} {
	if v.effect.Key() == username && v.effect.State().Status != view.StatusNotLoaded {
		return v.effect.Done()
	}
	return v.effect.Run(ctx, username, v.getter.GetByUsername)
}

// Username returns the username the view currently shows
func (v *DetailView) Username() string {
	return v.effect.Key()
}

// Loading reports whether a fetch for the current username is in flight
func (v *DetailView) Loading() bool {
	return v.effect.State().IsLoading()
}

// State returns a snapshot of the view state
func (v *DetailView) State() view.State[*UserProfile] {
	return v.effect.State()
}

// Close cancels the fetch if it is still in flight
func (v *DetailView) Close() {
	v.effect.Cancel()
}

// Render returns the component for the current state
func (v *DetailView) Render() templ.Component {
	return detailComponent(v.effect.State())
}
