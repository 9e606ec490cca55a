// Package auth gives each browser an anonymous planner identity held in a
// signed session cookie. Projects are scoped to that identity, the way the
// wizard's projects were scoped to the browser that created them.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const plannerIDKey = "planner_id"

// Planner is the identity injected into the request context.
type Planner struct {
	ID string
}

type ctxKey string

const currentPlannerKey ctxKey = "currentPlanner"

// SessionManager issues and reads planner sessions.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager.
//
// secure=true marks cookies Secure with SameSite=None for HTTPS deployments;
// local http development should pass false so the browser keeps the cookie.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, errors.New("session key is empty; provide 32+ random characters")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		return nil, errors.New("session name is empty")
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.Duration("max_age", maxAge))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// LoadPlanner reads the planner id from the session, issuing a new one on
// first visit, and puts it in the request context. A cookie that no longer
// decodes (rotated key, tampering) is replaced with a fresh session.
func (sm *SessionManager) LoadPlanner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.store.Get(r, sm.name)
		if err != nil {
			var scErr securecookie.Error
			if errors.As(err, &scErr) && scErr.IsDecode() {
				sm.log.Info("discarding undecodable session cookie", zap.Error(err))
			} else {
				sm.log.Warn("session load failed", zap.Error(err))
			}
			sess, _ = sm.store.New(r, sm.name)
		}

		id, _ := sess.Values[plannerIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[plannerIDKey] = id
			if err := sess.Save(r, w); err != nil {
				sm.log.Error("session save failed", zap.Error(err))
				http.Error(w, "session error", http.StatusInternalServerError)
				return
			}
		}

		next.ServeHTTP(w, WithPlanner(r, id))
	})
}

// RequirePlanner rejects requests that reach it without a planner.
func (sm *SessionManager) RequirePlanner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentPlanner(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = fmt.Fprint(w, `{"error":"session required"}`+"\n")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentPlanner returns the planner for the request.
func CurrentPlanner(r *http.Request) (Planner, bool) {
	p, ok := r.Context().Value(currentPlannerKey).(Planner)
	if !ok || p.ID == "" {
		return Planner{}, false
	}
	return p, true
}

// PlannerID is CurrentPlanner's id, or "".
func PlannerID(r *http.Request) string {
	p, _ := CurrentPlanner(r)
	return p.ID
}

// WithPlanner returns r carrying the planner id. Handler tests use it to
// skip the cookie round trip.
func WithPlanner(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentPlannerKey, Planner{ID: id}))
}
