package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cpn-service/internal/app/config"
	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/dto/responses"
	"cpn-service/internal/pkg/exceptions"
	"cpn-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAuthUsecase struct {
	sessions map[string]*models.Session
}

func (f *fakeAuthUsecase) Login(context.Context, *requests.Login) (*responses.Login, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) Logout(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeAuthUsecase) FindSession(_ context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func newTestMiddlewares(sessions map[string]*models.Session) *Middlewares {
	return NewMiddlewares(
		&fakeAuthUsecase{sessions: sessions},
		&config.InternalConfig{JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1}},
	)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	logger := zap.NewNop()

	t.Run("missing header is 401", func(t *testing.T) {
		m := newTestMiddlewares(nil)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dossier", nil)

		m.Authenticate(logger)(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token but destroyed session is 401", func(t *testing.T) {
		m := newTestMiddlewares(map[string]*models.Session{})
		token, err := utils.GenerateSessionJWT("gone-session", "test-secret", 1)
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dossier", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

		m.Authenticate(logger)(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token with live session passes", func(t *testing.T) {
		session := &models.Session{ID: "sess-1", Role: constvars.RoleDoctor}
		m := newTestMiddlewares(map[string]*models.Session{"sess-1": session})
		token, err := utils.GenerateSessionJWT("sess-1", "test-secret", 1)
		assert.NoError(t, err)

		var seen *models.Session
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = sessionFrom(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dossier", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

		m.Authenticate(logger)(handler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.RoleDoctor, seen.Role)
	})
}

func TestRequireRoles(t *testing.T) {
	logger := zap.NewNop()
	m := newTestMiddlewares(nil)

	withSession := func(role string, req *http.Request) *http.Request {
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, &models.Session{ID: "s", Role: role})
		return req.WithContext(ctx)
	}

	t.Run("allowed role passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withSession(constvars.RoleAdmin, httptest.NewRequest(http.MethodGet, "/users", nil))

		m.RequireRoles(logger, constvars.RoleAdmin)(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is 403", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withSession(constvars.RoleReceptionist, httptest.NewRequest(http.MethodGet, "/users", nil))

		m.RequireRoles(logger, constvars.RoleAdmin, constvars.RoleDoctor)(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no session is 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users", nil)

		m.RequireRoles(logger, constvars.RoleAdmin)(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
