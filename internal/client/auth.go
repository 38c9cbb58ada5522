package client

import "sync"

// TokenProvider supplies the authentication state the controller consults on
// every operation. Implementations must be safe for concurrent use.
type TokenProvider interface {
	IsAuthenticated() bool
	Token() string
}

// StaticToken is a fixed bearer token; empty means unauthenticated.
type StaticToken string

func (s StaticToken) IsAuthenticated() bool { return s != "" }
func (s StaticToken) Token() string         { return string(s) }

// SessionAuth is a mutable provider for callers whose session can sign in and
// out while a controller is live.
type SessionAuth struct {
	mu    sync.Mutex
	token string
}

func NewSessionAuth(token string) *SessionAuth {
	return &SessionAuth{token: token}
}

func (a *SessionAuth) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

func (a *SessionAuth) SignOut() {
	a.SetToken("")
}

func (a *SessionAuth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token != ""
}

func (a *SessionAuth) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}
