package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/requestdata"
	"github.com/neoverse/academy-backend/internal/services"
	"github.com/neoverse/academy-backend/internal/types"
)

type stubAuthService struct {
	userID uuid.UUID
	err    error
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user *types.User) (*types.User, error) {
	return user, nil
}

func (s *stubAuthService) LoginUser(ctx context.Context, identifier, password string) (*types.User, *services.TokenPair, error) {
	return nil, nil, nil
}

func (s *stubAuthService) LogoutUser(ctx context.Context) error { return nil }

func (s *stubAuthService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if s.err != nil {
		return ctx, s.err
	}
	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		UserID:      s.userID,
		TokenString: tokenString,
	}), nil
}

func (s *stubAuthService) IssueTokens(ctx context.Context, tx *gorm.DB, user *types.User) (*services.TokenPair, error) {
	return nil, nil
}

func (s *stubAuthService) GetAccessTTL() time.Duration { return time.Hour }

func newAuthRouter(t *testing.T, svc services.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	am := NewAuthMiddleware(log, svc)
	r := gin.New()
	r.GET("/me", am.RequireAuth(), func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": rd.UserID})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("accepts a bearer header", func(t *testing.T) {
		r := newAuthRouter(t, &stubAuthService{userID: userID})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("got status %d", w.Code)
		}
	})

	t.Run("accepts a token query parameter", func(t *testing.T) {
		r := newAuthRouter(t, &stubAuthService{userID: userID})
		req := httptest.NewRequest(http.MethodGet, "/me?token=some-token", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("got status %d", w.Code)
		}
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		r := newAuthRouter(t, &stubAuthService{userID: userID})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d", w.Code)
		}
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		r := newAuthRouter(t, &stubAuthService{err: fmt.Errorf("bad token")})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer junk")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d", w.Code)
		}
	})

	t.Run("rejects a token without a subject", func(t *testing.T) {
		r := newAuthRouter(t, &stubAuthService{userID: uuid.Nil})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("got status %d", w.Code)
		}
	})
}
