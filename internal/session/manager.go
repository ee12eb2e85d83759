package session

import (
	"net/http"
	"time"

	"github.com/truvote/portal/internal/logger"
)

const CookieName = "auth"

type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// Manager owns the session of each browser: it reads the auth cookie, resolves
// it through the store and replaces or clears it on sign in and sign out.
type Manager struct {
	store  Store
	log    logger.Logger
	cookie CookieOptions
}

func NewManager(store Store, log logger.Logger, cookie CookieOptions) *Manager {
	return &Manager{store: store, log: log, cookie: cookie}
}

func token(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Load never fails, any problem resolves to the unauthenticated session.
func (m *Manager) Load(r *http.Request) Session {
	t := token(r)
	if t == "" {
		return Unauthenticated()
	}
	sess, err := m.store.Load(r.Context(), t)
	if err != nil {
		m.log.WithError(err).Error("unable to load session")
		return Unauthenticated()
	}
	return sess
}

// Set replaces the current session wholesale. Setting an unauthenticated
// session is the same as clearing it.
func (m *Manager) Set(w http.ResponseWriter, r *http.Request, sess Session) error {
	if !sess.Authenticated {
		return m.Clear(w, r)
	}
	newToken, err := m.store.Save(r.Context(), sess)
	if err != nil {
		return err
	}
	http.SetCookie(w, m.newCookie(newToken, int(m.cookie.MaxAge.Seconds())))

	if previous := token(r); previous != "" {
		if err := m.store.Delete(r.Context(), previous); err != nil {
			m.log.WithError(err).Warn("unable to delete previous session")
		}
	}
	m.log.WithField("role", sess.Role.String()).Debug("session installed")
	return nil
}

func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, m.newCookie("", -1))
	if t := token(r); t != "" {
		if err := m.store.Delete(r.Context(), t); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) newCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
