package localstate

import (
	"net/http"
	"time"
)

type InMemState struct {
	Values map[string]string
}

func NewInMemState() *InMemState {
	return &InMemState{
		Values: map[string]string{},
	}
}

// NewInMemFactory hands the same state to every request, mimicking a browser
// that keeps its cookie jar across page loads.
func NewInMemFactory(state *InMemState) Factory {
	return func(w http.ResponseWriter, r *http.Request) LocalState {
		return state
	}
}

func (s *InMemState) Get(name string) (string, bool) {
	value, ok := s.Values[name]
	return value, ok
}

func (s *InMemState) Set(name string, value string, ttl time.Duration) {
	s.Values[name] = value
}

func (s *InMemState) Clear(name string) {
	delete(s.Values, name)
}
