package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cctv_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func TestSessionManager_RequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewSessionManager("0123456789abcdef0123456789abcdef", false)
	loggedIn := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)

	r := gin.New()
	r.POST("/login", func(c *gin.Context) {
		if err := m.Save(c, entities.AdminSession{Authenticated: true, Email: "owner@shop.in", LoggedInAt: loggedIn}); err != nil {
			t.Fatalf("save: %v", err)
		}
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		if err := m.Clear(c); err != nil {
			t.Fatalf("clear: %v", err)
		}
		c.Status(http.StatusNoContent)
	})
	r.GET("/private", m.RequireAdmin(), func(c *gin.Context) {
		s, ok := AdminSessionFrom(c)
		if !ok || s.Email != "owner@shop.in" || !s.LoggedInAt.Equal(loggedIn) {
			t.Fatalf("unexpected session in context: %+v", s)
		}
		c.Status(http.StatusOK)
	})

	t.Run("no cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login then access", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		cookies := w.Result().Cookies()
		if len(cookies) == 0 {
			t.Fatalf("expected session cookie")
		}

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(cookies[0])
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: adminSessionName, Value: "forged"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("logout expires cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))
		cookies := w.Result().Cookies()
		if len(cookies) == 0 || cookies[0].MaxAge >= 0 {
			t.Fatalf("expected expiring cookie, got %+v", cookies)
		}
	})
}
