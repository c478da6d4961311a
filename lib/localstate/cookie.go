package localstate

import (
	"net/http"
	"net/url"
	"time"
)

type cookieState struct {
	w http.ResponseWriter
	r *http.Request

	// Values written during this request shadow what the browser sent along,
	// so a read-after-write within one page load observes the new value.
	written map[string]string
	cleared map[string]bool
}

func newCookieState(w http.ResponseWriter, r *http.Request) *cookieState {
	return &cookieState{
		w:       w,
		r:       r,
		written: map[string]string{},
		cleared: map[string]bool{},
	}
}

func (s *cookieState) Get(name string) (string, bool) {
	if s.cleared[name] {
		return "", false
	}
	if value, ok := s.written[name]; ok {
		return value, true
	}

	cookie, err := s.r.Cookie(name)
	if err != nil {
		return "", false
	}

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}

	return value, true
}

func (s *cookieState) Set(name string, value string, ttl time.Duration) {
	// Cookie values must not contain separators or quotes: escape the payload
	http.SetCookie(s.w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})

	s.written[name] = value
	delete(s.cleared, name)
}

func (s *cookieState) Clear(name string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})

	delete(s.written, name)
	s.cleared[name] = true
}
