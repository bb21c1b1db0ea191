// Package flash carries one-shot messages across a redirect in a signed
// session cookie.
package flash

import (
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// DefaultSessionName is used when no session name is configured.
const DefaultSessionName = "mediaindex-session"

// Messenger reads and writes flash messages.
type Messenger struct {
	store sessions.Store
	name  string
	log   *zap.Logger
}

// New returns a Messenger backed by a cookie store signed with key.
// An empty key falls back to a random one, which invalidates pending
// messages on every restart.
//
// secure=true marks cookies Secure; use false for local http.
func New(key, name string, secure bool, logger *zap.Logger) *Messenger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if name == "" {
		name = DefaultSessionName
	}
	k := []byte(key)
	if len(k) == 0 {
		logger.Warn("session key is empty; using a random key")
		k = securecookie.GenerateRandomKey(32)
	} else if len(k) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(k)))
	}

	store := sessions.NewCookieStore(k)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Messenger{store: store, name: name, log: logger}
}

// Add queues msg for the next request.
func (m *Messenger) Add(w http.ResponseWriter, r *http.Request, msg string) error {
	s, err := m.session(r)
	if err != nil {
		return err
	}
	s.AddFlash(msg)
	return s.Save(r, w)
}

// Pop returns and clears the queued messages. Cookie problems are logged
// and yield no messages.
func (m *Messenger) Pop(w http.ResponseWriter, r *http.Request) []string {
	s, err := m.session(r)
	if err != nil {
		m.log.Debug("flash session unreadable", zap.Error(err))
		return nil
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(r, w); err != nil {
		m.log.Warn("flash session save failed", zap.Error(err))
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}

// session returns the named session. A cookie signed with another key is
// replaced by a fresh session rather than reported.
func (m *Messenger) session(r *http.Request) (*sessions.Session, error) {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() && s != nil {
			return s, nil
		}
		return nil, err
	}
	return s, nil
}
