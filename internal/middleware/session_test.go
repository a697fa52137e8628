package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/epeers/fundsdash/internal/middleware"
)

func newSessionRouter() *gin.Engine {
	return newSessionRouterTTL(90 * time.Minute)
}

func newSessionRouterTTL(ttl time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session("test_session", ttl))
	r.GET("/", func(c *gin.Context) {
		id, _ := middleware.GetSessionID(c)
		c.String(http.StatusOK, id)
	})
	return r
}

func TestSession_AssignsNewID(t *testing.T) {
	w := httptest.NewRecorder()
	newSessionRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(middleware.SessionHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a uuid session id, got %q", id)
	}
	if w.Body.String() != id {
		t.Errorf("expected handler to see %q, got %q", id, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "test_session" || cookies[0].Value != id {
		t.Fatalf("expected session cookie with %q, got %+v", id, cookies)
	}
	if cookies[0].MaxAge != 90*60 {
		t.Errorf("expected cookie max age 5400, got %d", cookies[0].MaxAge)
	}
}

func TestSession_DefaultCookieMaxAge(t *testing.T) {
	w := httptest.NewRecorder()
	newSessionRouterTTL(0).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != 24*60*60 {
		t.Errorf("expected a 24h session cookie, got %+v", cookies)
	}
}

func TestSession_ReusesHeaderAndCookie(t *testing.T) {
	router := newSessionRouter()
	id := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.SessionHeader, id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Body.String() != id {
		t.Errorf("expected header session %q, got %q", id, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: id})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Body.String() != id {
		t.Errorf("expected cookie session %q, got %q", id, w.Body.String())
	}
}

func TestSession_RejectsMalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.SessionHeader, "../../etc/passwd")
	w := httptest.NewRecorder()
	newSessionRouter().ServeHTTP(w, req)

	if w.Body.String() == "../../etc/passwd" {
		t.Fatal("expected a malformed id to be replaced")
	}
	if _, err := uuid.Parse(w.Body.String()); err != nil {
		t.Errorf("expected a fresh uuid, got %q", w.Body.String())
	}
}
