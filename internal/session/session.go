package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Accessor is the single place the console reads or writes the admin bearer
// token. Handlers never touch the cookie or the store directly, so tests can
// swap in a fake session.
type Accessor interface {
	// Read returns the bearer token for the request's session, if any.
	Read(r *http.Request) (string, bool)
	// Issue stores a token under a fresh session and sets its cookie.
	Issue(w http.ResponseWriter, token string)
	// Clear drops the request's session and expires its cookie.
	Clear(w http.ResponseWriter, r *http.Request)
}

type entry struct {
	token     string
	expiresAt time.Time
}

// CookieStore keeps bearer tokens in process memory keyed by an opaque
// session ID carried in an HttpOnly cookie. The browser never sees the
// token itself.
type CookieStore struct {
	cookieName string
	ttl        time.Duration

	mu      sync.Mutex
	entries map[string]entry

	now func() time.Time
}

func NewCookieStore(cookieName string, ttl time.Duration) *CookieStore {
	return &CookieStore{
		cookieName: cookieName,
		ttl:        ttl,
		entries:    make(map[string]entry),
		now:        time.Now,
	}
}

func (s *CookieStore) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[cookie.Value]
	if !ok {
		return "", false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, cookie.Value)
		return "", false
	}
	return e.token, true
}

func (s *CookieStore) Issue(w http.ResponseWriter, token string) {
	id := uuid.NewString()

	s.mu.Lock()
	s.entries[id] = entry{token: token, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.cookieName); err == nil && cookie.Value != "" {
		s.mu.Lock()
		delete(s.entries, cookie.Value)
		s.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
