package localstate

import (
	"net/http"
	"time"
)

// LocalState is a tiny key-value store with TTL semantics that lives in the
// shopper's browser. The cookie implementation is the real thing; the in-memory
// implementation exists so workflow logic can be tested without HTTP plumbing.
type LocalState interface {
	Get(name string) (string, bool)
	Set(name string, value string, ttl time.Duration)
	Clear(name string)
}

// Factory binds a LocalState to the request/response pair of a single page load.
type Factory func(w http.ResponseWriter, r *http.Request) LocalState

func NewCookieFactory() Factory {
	return func(w http.ResponseWriter, r *http.Request) LocalState {
		return newCookieState(w, r)
	}
}
