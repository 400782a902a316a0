package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type stubParser struct {
	actor *domain.Actor
	err   error
	got   string
}

func (p *stubParser) Parse(raw string) (*domain.Actor, error) {
	p.got = raw
	return p.actor, p.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEngine(t *testing.T, mw ...ginext.HandlerFunc) *ginext.Engine {
	t.Helper()
	r := ginext.New("test")
	r.Use(mw...)
	r.GET("/whoami", func(c *ginext.Context) {
		actor := ActorFrom(c)
		if actor == nil {
			c.JSON(http.StatusOK, ginext.H{"actor": nil})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"actor": actor.Email})
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})
	return r
}

func TestAuthenticate_Anonymous(t *testing.T) {
	r := newEngine(t, Authenticate(&stubParser{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"actor":null}`, w.Body.String())
}

func TestAuthenticate_ValidToken(t *testing.T) {
	parser := &stubParser{actor: &domain.Actor{UserID: 1, Email: "alice@example.com"}}
	r := newEngine(t, Authenticate(parser))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer abc.def")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc.def", parser.got)
	assert.JSONEq(t, `{"actor":"alice@example.com"}`, w.Body.String())
}

func TestAuthenticate_Rejects(t *testing.T) {
	cases := map[string]string{
		"not bearer":    "Basic Zm9vOmJhcg==",
		"empty token":   "Bearer ",
		"invalid token": "Bearer broken",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			r := newEngine(t, Authenticate(&stubParser{err: errors.New("bad token")}))

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireActor(t *testing.T) {
	r := newEngine(t, Authenticate(&stubParser{actor: &domain.Actor{UserID: 1}}), RequireActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer ok")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithActor(t *testing.T) {
	injected := &domain.Actor{UserID: 7, Email: "carol@example.com"}
	r := newEngine(t, func(c *ginext.Context) {
		WithActor(c, injected)
		c.Next()
	}, RequireActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"actor":"carol@example.com"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := newEngine(t, RequestID(), RequestLogger(newTestLogger(t)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newEngine(t, RequestID(), Recovery(newTestLogger(t)))

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error","request_id":"req-42"}`, w.Body.String())
}
