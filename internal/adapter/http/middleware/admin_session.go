package middleware

import (
	"net/http"
	"time"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	adminSessionName = "bms_admin"
	adminSessionTTL  = 12 * time.Hour

	keyAuthenticated = "authenticated"
	keyEmail         = "email"
	keyLoggedInAt    = "logged_in_at"

	// ContextKeyAdminSession holds the entities.AdminSession of an
	// authenticated request.
	ContextKeyAdminSession = "admin_session"
)

// SessionManager keeps the admin session in a signed cookie.
type SessionManager struct {
	store sessions.Store
}

func NewSessionManager(secret string, secure bool) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(adminSessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

// Load returns the session carried by the request. A missing or tampered
// cookie yields an unauthenticated session.
func (m *SessionManager) Load(c *gin.Context) entities.AdminSession {
	sess, err := m.store.Get(c.Request, adminSessionName)
	if err != nil {
		return entities.AdminSession{}
	}
	ok, _ := sess.Values[keyAuthenticated].(bool)
	if !ok {
		return entities.AdminSession{}
	}
	email, _ := sess.Values[keyEmail].(string)
	at, _ := sess.Values[keyLoggedInAt].(int64)
	return entities.AdminSession{Authenticated: true, Email: email, LoggedInAt: time.Unix(at, 0).UTC()}
}

func (m *SessionManager) Save(c *gin.Context, s entities.AdminSession) error {
	sess, _ := m.store.Get(c.Request, adminSessionName)
	sess.Values[keyAuthenticated] = s.Authenticated
	sess.Values[keyEmail] = s.Email
	sess.Values[keyLoggedInAt] = s.LoggedInAt.Unix()
	return sess.Save(c.Request, c.Writer)
}

func (m *SessionManager) Clear(c *gin.Context) error {
	sess, _ := m.store.Get(c.Request, adminSessionName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request, c.Writer)
}

// RequireAdmin rejects requests without an authenticated session and puts
// the session into the gin context for downstream handlers.
func (m *SessionManager) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := m.Load(c)
		if !s.Authenticated {
			c.AbortWithStatusJSON(pkg.ErrUnauthorized.HTTPStatus, pkg.ErrUnauthorized.ToHTTPError())
			return
		}
		c.Set(ContextKeyAdminSession, s)
		c.Next()
	}
}

// AdminSessionFrom reads the session placed by RequireAdmin.
func AdminSessionFrom(c *gin.Context) (entities.AdminSession, bool) {
	v, ok := c.Get(ContextKeyAdminSession)
	if !ok {
		return entities.AdminSession{}, false
	}
	s, ok := v.(entities.AdminSession)
	return s, ok
}
