// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth implements the authentication gateway: credential exchange,
// session state, change notifications, and the page redirect policy.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kalemci/internal/models"
	"kalemci/internal/prefs"
	"kalemci/internal/session"
)

// GuestLabel is the session label reported while anonymous.
const GuestLabel = "Guest"

// tokenPrefKey is the local preference key holding the session token
// between runs.
const tokenPrefKey = "session_token"

// Authenticator performs the remote credential exchange.
// *store.UserStore satisfies this.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// SessionStore manages remote session tokens. *session.Store satisfies this.
type SessionStore interface {
	Create(ctx context.Context, data *session.Data) (string, error)
	Get(ctx context.Context, token string) (*session.Data, error)
	Delete(ctx context.Context, token string) error
}

// TokenKeeper persists the session token locally between runs.
type TokenKeeper interface {
	Token() string
	SetToken(token string) error
	ClearToken() error
}

// PrefTokens keeps the session token in the local preference store.
type PrefTokens struct {
	p *prefs.Store
}

// NewPrefTokens wraps a preference store as a TokenKeeper.
func NewPrefTokens(p *prefs.Store) *PrefTokens {
	return &PrefTokens{p: p}
}

func (t *PrefTokens) Token() string { return t.p.Get(tokenPrefKey) }

func (t *PrefTokens) SetToken(v string) error { return t.p.Set(tokenPrefKey, v) }

func (t *PrefTokens) ClearToken() error { return t.p.Delete(tokenPrefKey) }

// Session is the authenticated identity held by the gateway.
type Session struct {
	Token string
	Data  session.Data
}

// Navigator abstracts the page the gateway is guarding: where the user is
// and how to send them elsewhere. A redirect is a full navigation.
type Navigator interface {
	CurrentPath() string
	Navigate(target string)
}

// Gateway wraps sign-in and sign-out, exposes the current session state,
// and publishes session-change notifications that drive the redirect
// policy.
type Gateway struct {
	users    Authenticator
	sessions SessionStore
	tokens   TokenKeeper

	mu      sync.Mutex
	current *Session

	// changes carries the current session (or nil) on every change.
	// Single-subscriber; rapid changes are last-write-wins.
	changes chan *Session
}

// NewGateway creates the gateway. The change channel is owned by the
// gateway from construction on; drain it with Watch or Changes.
func NewGateway(users Authenticator, sessions SessionStore, tokens TokenKeeper) *Gateway {
	return &Gateway{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		changes:  make(chan *Session, 1),
	}
}

// Login exchanges credentials for a session. On success the session is held
// by the gateway, its token persisted locally, and a change notification
// published. On failure the backend's message comes back as the error.
func (g *Gateway) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := g.users.Authenticate(ctx, email, password)
	if err != nil {
		slog.Error("login failed", "email", email, "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	token, err := g.sessions.Create(ctx, &session.Data{
		UserID:      user.ID.Hex(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
	})
	if err != nil {
		slog.Error("session create failed", "email", email, "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	sess, err := g.sessions.Get(ctx, token)
	if err != nil || sess == nil {
		slog.Error("session readback failed", "error", err)
		return nil, fmt.Errorf("login: session not established")
	}

	if err := g.tokens.SetToken(token); err != nil {
		// The remote session exists; a failed local save only costs Resume.
		slog.Warn("could not persist session token", "error", err)
	}

	s := &Session{Token: token, Data: *sess}
	g.setCurrent(s)
	return s, nil
}

// Logout terminates the remote session. The held session and the persisted
// token are cleared only when the backend confirms.
func (g *Gateway) Logout(ctx context.Context) error {
	g.mu.Lock()
	current := g.current
	g.mu.Unlock()
	if current == nil {
		return nil
	}

	if err := g.sessions.Delete(ctx, current.Token); err != nil {
		slog.Error("logout failed", "error", err)
		return fmt.Errorf("logout: %w", err)
	}

	if err := g.tokens.ClearToken(); err != nil {
		slog.Warn("could not clear session token", "error", err)
	}
	g.setCurrent(nil)
	return nil
}

// Resume revalidates a locally persisted token at startup. A token the
// backend no longer recognizes is discarded. Returns the restored session,
// or nil when anonymous.
func (g *Gateway) Resume(ctx context.Context) *Session {
	token := g.tokens.Token()
	if token == "" {
		return nil
	}

	data, err := g.sessions.Get(ctx, token)
	if err != nil {
		slog.Error("session resume failed", "error", err)
		return nil
	}
	if data == nil {
		// Expired or revoked while we were away.
		if err := g.tokens.ClearToken(); err != nil {
			slog.Warn("could not clear stale session token", "error", err)
		}
		return nil
	}

	s := &Session{Token: token, Data: *data}
	g.setCurrent(s)
	return s
}

// IsAuthenticated reports whether a session is currently held.
func (g *Gateway) IsAuthenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current != nil
}

// SessionLabel returns the session's human-readable identifier, or the
// guest sentinel while anonymous.
func (g *Gateway) SessionLabel() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return GuestLabel
	}
	return g.current.Data.Email
}

// Changes exposes the session-change notification stream: the current
// session, or nil after a sign-out.
func (g *Gateway) Changes() <-chan *Session {
	return g.changes
}

// Watch drains the change notifications and applies the redirect policy on
// every one until the context ends.
func (g *Gateway) Watch(ctx context.Context, nav Navigator) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-g.changes:
			if target, ok := Target(nav.CurrentPath(), s != nil); ok {
				nav.Navigate(target)
			}
		}
	}
}

// WatchExpiry polls the remote session at the given interval and converts
// token expiry or external revocation into a sign-out notification. Returns
// when the context ends.
func (g *Gateway) WatchExpiry(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.mu.Lock()
			current := g.current
			g.mu.Unlock()
			if current == nil {
				continue
			}

			data, err := g.sessions.Get(ctx, current.Token)
			if err != nil {
				slog.Error("session check failed", "error", err)
				continue
			}
			if data == nil {
				slog.Info("session expired", "email", current.Data.Email)
				if err := g.tokens.ClearToken(); err != nil {
					slog.Warn("could not clear expired session token", "error", err)
				}
				g.setCurrent(nil)
			}
		}
	}
}

// setCurrent replaces the held session and publishes a change notification.
func (g *Gateway) setCurrent(s *Session) {
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()
	g.publish(s)
}

// publish delivers a notification without blocking: when the subscriber is
// behind, the stale pending notification is dropped so the latest state
// wins.
func (g *Gateway) publish(s *Session) {
	for {
		select {
		case g.changes <- s:
			return
		default:
			select {
			case <-g.changes:
			default:
			}
		}
	}
}
