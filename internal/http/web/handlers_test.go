package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondsio/admin-console/config"
	"github.com/bondsio/admin-console/internal/deps"
	"github.com/bondsio/admin-console/internal/http/bondsio"
)

// fakeSessions is an Accessor with a fixed token, recording what handlers
// issue and clear.
type fakeSessions struct {
	token   string
	found   bool
	issued  []string
	cleared bool
}

func (f *fakeSessions) Read(*http.Request) (string, bool) { return f.token, f.found }

func (f *fakeSessions) Issue(_ http.ResponseWriter, token string) {
	f.issued = append(f.issued, token)
}

func (f *fakeSessions) Clear(http.ResponseWriter, *http.Request) { f.cleared = true }

func newTestAPI(t *testing.T, backendURL string, sessions *fakeSessions) (*API, http.Handler) {
	t.Helper()

	api := &API{
		Config: &config.Config{
			Port:              0,
			UserPageLimit:     20,
			ActivityPageLimit: 20,
			TrendingPageLimit: 5,
		},
		Deps: &deps.Dependencies{
			Bondsio:  bondsio.NewClient(backendURL, 5*time.Second),
			Sessions: sessions,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}
	require.NoError(t, api.Init())
	return api, api.setUpServerHandler()
}

func TestProtectedPageWithoutSessionRedirectsToLogin(t *testing.T) {
	var upstreamCalls atomic.Int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{found: false})

	for _, path := range []string{"/dashboard", "/users", "/activities", "/reports/activities", "/bonds/reported"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
	assert.Equal(t, int64(0), upstreamCalls.Load(), "no upstream call should happen without a session")
}

func TestLoginSuccessIssuesSessionAndRedirects(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/admin/login", r.URL.Path)
		w.Write([]byte(`{"code":200,"message":"success","data":{"id":"u1","email":"admin@bondsio.com","role":"admin","access_token":"tok-123"}}`))
	}))
	defer backend.Close()

	sessions := &fakeSessions{}
	_, handler := newTestAPI(t, backend.URL, sessions)

	form := url.Values{"email": {"admin@bondsio.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Equal(t, []string{"tok-123"}, sessions.issued)
}

func TestLoginFailureRendersFormWithEmailPreserved(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"message":"invalid credentials"}`))
	}))
	defer backend.Close()

	sessions := &fakeSessions{}
	_, handler := newTestAPI(t, backend.URL, sessions)

	form := url.Values{"email": {"admin@bondsio.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
	assert.Contains(t, rec.Body.String(), "admin@bondsio.com")
	assert.Empty(t, sessions.issued)
}

func TestLoginRejectsInvalidEmailBeforeUpstream(t *testing.T) {
	var upstreamCalls atomic.Int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{})

	form := url.Values{"email": {"not-an-email"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, int64(0), upstreamCalls.Load())
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := &fakeSessions{token: "tok", found: true}
	_, handler := newTestAPI(t, "http://localhost:0", sessions)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.True(t, sessions.cleared)
}

func TestEmptyActivityListRendersEmptyState(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"code":200,"message":"success","data":{"activities":[],"total":0}}`))
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No activities found.")
	assert.NotContains(t, rec.Body.String(), "pagination-buttons", "empty list shows no pagination controls")
}

func TestUpstreamFailureRendersErrorPage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load users")
}

func TestActivityReportsReviewParamOpensForm(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"message":"success","data":{"reports":[{"id":5,"activity_id":9,"reporter_id":"u1","reason":"spam","description":"spammy","status":"pending","created_at":"2025-01-02T10:00:00Z","reviewed_at":null}],"total":1}}`))
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/activities?review=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Review report #5")
	assert.Contains(t, rec.Body.String(), `action="/reports/activities/5/review"`)
}

func TestBondReportsReviewOnlyOpensOnPending(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bonds/admin/reports/3", r.URL.Path)
		w.Write([]byte(`{"code":200,"message":"success","data":{"reports":[{"id":7,"bond_id":3,"reporter_id":"u1","reason":"abuse","description":"bad","status":"resolved","created_at":"2025-01-02T10:00:00Z","reviewed_at":"2025-01-03T10:00:00Z"}],"total":1}}`))
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bonds/3/reports?review=7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Review report #7", "resolved report is not reviewable")
}

func TestReviewSubmitPatchesAndRedirects(t *testing.T) {
	var patches atomic.Int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			require.Equal(t, "/api/activity/admin/reports/5/status", r.URL.Path)
			patches.Add(1)
			w.Write([]byte(`{"code":200,"message":"success","data":{"id":5,"activity_id":9,"reporter_id":"u1","reason":"spam","description":"spammy","status":"resolved","created_at":"2025-01-02T10:00:00Z","reviewed_at":"2025-01-04T10:00:00Z"}}`))
			return
		}
		w.Write([]byte(`{"code":200,"message":"success","data":{"reports":[],"total":0}}`))
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	form := url.Values{"status": {"resolved"}, "notes": {"handled"}}
	req := httptest.NewRequest(http.MethodPost, "/reports/activities/5/review", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/reports/activities", rec.Header().Get("Location"))
	assert.Equal(t, int64(1), patches.Load())
}

func TestReviewSubmitRejectsInvalidStatus(t *testing.T) {
	var patches atomic.Int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			patches.Add(1)
			return
		}
		w.Write([]byte(`{"code":200,"message":"success","data":{"reports":[],"total":0}}`))
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	form := url.Values{"status": {"approved"}}
	req := httptest.NewRequest(http.MethodPost, "/reports/activities/5/review", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Select a valid status.")
	assert.Equal(t, int64(0), patches.Load())
}

func TestReviewFailureKeepsFormOpenWithNotes(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"code":200,"message":"success","data":{"reports":[],"total":0}}`))
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	form := url.Values{"status": {"resolved"}, "notes": {"checked with the organiser"}}
	req := httptest.NewRequest(http.MethodPost, "/reports/activities/5/review", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Failed to update status.")
	assert.Contains(t, body, "checked with the organiser", "submitted notes survive the failed submit")
	assert.Contains(t, body, `action="/reports/activities/5/review"`, "the form stays open")
}

func TestBondReviewFailureKeepsFormOpenWithNotes(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			require.Equal(t, "/api/bonds/admin/reports/7", r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"code":200,"message":"success","data":{"reports":[],"total":0}}`))
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	form := url.Values{"status": {"dismissed"}, "notes": {"duplicate of an earlier report"}}
	req := httptest.NewRequest(http.MethodPost, "/bonds/3/reports/7/review", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Failed to update status.")
	assert.Contains(t, body, "duplicate of an earlier report", "submitted notes survive the failed submit")
	assert.Contains(t, body, `action="/bonds/3/reports/7/review"`, "the form stays open")
}

func TestConcurrentReviewSubmitsSendOnePatch(t *testing.T) {
	var patches atomic.Int64
	release := make(chan struct{})
	firstPatch := make(chan struct{})

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			if patches.Add(1) == 1 {
				close(firstPatch)
				<-release
			}
			w.Write([]byte(`{"code":200,"message":"success","data":{"id":5,"activity_id":9,"reporter_id":"u1","reason":"spam","description":"spammy","status":"resolved","created_at":"2025-01-02T10:00:00Z","reviewed_at":null}}`))
			return
		}
		w.Write([]byte(`{"code":200,"message":"success","data":{"reports":[],"total":0}}`))
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	submit := func() *httptest.ResponseRecorder {
		form := url.Values{"status": {"resolved"}}
		req := httptest.NewRequest(http.MethodPost, "/reports/activities/5/review", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var first *httptest.ResponseRecorder
	go func() {
		defer wg.Done()
		first = submit()
	}()

	<-firstPatch
	second := submit()
	close(release)
	wg.Wait()

	assert.Equal(t, http.StatusSeeOther, first.Code)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "already being submitted")
	assert.Equal(t, int64(1), patches.Load(), "duplicate submit must not reach the backend")
}

func TestDashboardPartialFailureKeepsOtherCards(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/analytics/total":
			w.Write([]byte(`{"code":200,"message":"success","data":{"total":1284}}`))
		case "/api/user/analytics/users/verification":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/user/analytics/users/demography":
			w.Write([]byte(`{"code":200,"message":"success","data":{"age":[{"bucket":"18-24","count":"6"},{"bucket":"25-34","count":2}],"gender":[{"gender":"female","count":5},{"gender":"unknown","count":3}],"countries":[{"country":null,"count":"3"},{"country":"Cyprus","count":"2"}]}}`))
		case "/api/user/analytics/overview":
			require.Equal(t, "weekly", r.URL.Query().Get("period"))
			w.Write([]byte(`{"code":200,"message":"success","data":{"signUps":[{"label":"W1","count":"4"}],"active":[{"label":"W1","count":3}],"churned":[]}}`))
		default:
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
	}))
	defer backend.Close()

	_, handler := newTestAPI(t, backend.URL, &fakeSessions{token: "tok", found: true})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1284")
	assert.Contains(t, body, "Failed to load verification stats.")
	assert.Contains(t, body, "75%")
	assert.Contains(t, body, "Cyprus")
	assert.Contains(t, body, "Not Specified")
	assert.NotContains(t, body, "Unknown", "null-country bucket is not listed")
}

func TestGuardAllowsDistinctKeys(t *testing.T) {
	g := newReviewGuard()

	require.True(t, g.begin("activity/1"))
	assert.True(t, g.begin("bond/1"), "variants guard independently")
	assert.False(t, g.begin("activity/1"))

	g.end("activity/1")
	assert.True(t, g.begin("activity/1"))
}
