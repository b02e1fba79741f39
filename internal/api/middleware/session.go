package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

// IdentityKey is the echo context key holding the request's *domain.Identity.
const IdentityKey = "identity"

const (
	valueUserID   = "userId"
	valueUsername = "username"
	valueRole     = "role"
)

// Sessions resolves and mutates the login session stored under Name.
type Sessions struct {
	Name    string
	Options sessions.Options
	Log     zerolog.Logger
}

// CookieOptions returns the session cookie settings: httpOnly always, Secure
// with SameSite=None in production, Lax otherwise.
func CookieOptions(maxAgeSeconds int, production bool) sessions.Options {
	opts := sessions.Options{
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		opts.Secure = true
		opts.SameSite = http.SameSiteNoneMode
	}
	return opts
}

// Identity reads the session once and stores the identity, if any, under
// IdentityKey. Requests without a valid session pass through anonymously.
// It must run after session.Middleware.
func (s *Sessions) Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(s.Name, c)
			if err != nil {
				s.Log.Debug().Err(err).Msg("ignoring unreadable session")
			}
			if sess != nil {
				if id, ok := identityFromValues(sess.Values); ok {
					c.Set(IdentityKey, &id)
				}
			}
			return next(c)
		}
	}
}

// revoker is implemented by server-side stores that can drop a session id.
type revoker interface {
	Delete(ctx context.Context, id string) error
}

// Establish stores id in a freshly issued session. A session the request
// already carried is revoked first so its cookie stops working.
func (s *Sessions) Establish(c echo.Context, id domain.Identity) error {
	sess, err := session.Get(s.Name, c)
	if sess == nil {
		return err
	}

	if !sess.IsNew && sess.ID != "" {
		if rv, ok := sess.Store().(revoker); ok {
			if err := rv.Delete(c.Request().Context(), sess.ID); err != nil {
				return err
			}
		}
	}

	opts := s.Options
	sess.Options = &opts
	// An empty ID makes server-side stores mint a new one.
	sess.ID = ""
	sess.Values = map[interface{}]interface{}{
		valueUserID:   id.UserID,
		valueUsername: id.Username,
		valueRole:     id.Role,
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	c.Set(IdentityKey, &id)
	return nil
}

// Destroy deletes the session and expires its cookie.
func (s *Sessions) Destroy(c echo.Context) error {
	sess, err := session.Get(s.Name, c)
	if sess == nil {
		return err
	}

	opts := s.Options
	opts.MaxAge = -1
	sess.Options = &opts
	sess.Values = map[interface{}]interface{}{}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	c.Set(IdentityKey, nil)
	return nil
}

// IdentityFrom returns the identity resolved by Identity, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	id, _ := c.Get(IdentityKey).(*domain.Identity)
	return id
}

func identityFromValues(values map[interface{}]interface{}) (domain.Identity, bool) {
	userID, _ := values[valueUserID].(string)
	if userID == "" {
		return domain.Identity{}, false
	}
	username, _ := values[valueUsername].(string)
	role, _ := values[valueRole].(string)
	return domain.Identity{UserID: userID, Username: username, Role: role}, true
}
