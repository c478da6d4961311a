package myhttp

import (
	"fmt"
	"net/http"
	"os"
)

// GuessHostnameWithScheme is for contexts without a request at hand, like
// composing the push URL of a pubsub subscription at startup.
func GuessHostnameWithScheme() string {
	if host := os.Getenv("PUBLIC_URL"); host != "" {
		return host
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("http://localhost:%s", port)
}

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
