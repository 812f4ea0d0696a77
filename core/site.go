package core

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"
)

// Site holds everything a request needs to reach.
type Site struct {
	UserDB
	SessionManager *scs.SessionManager
	Log            *zap.Logger
}

// Init sets up the session manager. If sessionStore is nil, sessions are kept in memory.
func (s *Site) Init(sessionStore scs.Store, cookiePath string) {

	if s.Log == nil {
		s.Log = zap.NewNop()
	}

	s.SessionManager = scs.New()
	if sessionStore != nil {
		s.SessionManager.Store = sessionStore
	}
	s.SessionManager.Cookie.Path = cookiePath + "/"
	s.SessionManager.Cookie.Persist = false                 // don't store cookie across browser sessions
	s.SessionManager.Cookie.SameSite = http.SameSiteLaxMode // good CSRF protection if HTTP GET doesn't modify anything
	s.SessionManager.Cookie.Secure = false                  // else running on localhost or behind a http proxy fails
	s.SessionManager.IdleTimeout = 12 * time.Hour
	s.SessionManager.Lifetime = 720 * time.Hour
}
