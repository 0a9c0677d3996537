package view

// Status identifies which variant of State is active
type Status int

const (
	StatusNotLoaded Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

// String returns the lowercase name of the status
func (s Status) String() string {
	switch s {
	case StatusNotLoaded:
		return "not_loaded"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the per-view fetch state. Value is only meaningful when
// Status is StatusLoaded and Err only when Status is StatusFailed.
type State[T any] struct {
	Status Status
	Value  T
	Err    string
}

// NotLoaded returns the initial state of a view
func NotLoaded[T any]() State[T] {
	return State[T]{Status: StatusNotLoaded}
}

// Loading returns the state of a view with a fetch in flight
func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

// Loaded returns a successful state holding v
func Loaded[T any](v T) State[T] {
	return State[T]{Status: StatusLoaded, Value: v}
}

// Failed returns a failed state carrying the error message
func Failed[T any](msg string) State[T] {
	return State[T]{Status: StatusFailed, Err: msg}
}

func (s State[T]) IsLoading() bool { return s.Status == StatusLoading }
func (s State[T]) IsLoaded() bool  { return s.Status == StatusLoaded }
func (s State[T]) IsFailed() bool  { return s.Status == StatusFailed }
