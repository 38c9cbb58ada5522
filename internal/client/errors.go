package client

import (
	"errors"
	"net/http"

	"distress-intel/client-go/internal/payload"
)

// ErrAuthExpired matches (via errors.Is) any upstream 401.
var ErrAuthExpired = errors.New("authentication expired")

// UpstreamError is a non-2xx response. Detail is the human-readable message
// taken from the body's detail/message field, or the HTTP status text.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string { return e.Detail }

func (e *UpstreamError) Is(target error) bool {
	return target == ErrAuthExpired && e.Status == http.StatusUnauthorized
}

func errorDetail(body []byte, status int) string {
	doc := payload.Parse(body)
	if d := payload.String(doc, "detail", ""); d != "" {
		return d
	}
	if m := payload.String(doc, "message", ""); m != "" {
		return m
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "upstream error"
}
