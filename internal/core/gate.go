package core

import "log/slog"

// SessionSlot is the slice of the session store the gate needs.
type SessionSlot interface {
	Token() (string, bool)
	ClearToken() error
}

// Gate decides whether the console may run. The presence of a stored
// credential is the sole check: the token's shape and expiry are never
// validated client-side. A credential that has expired server-side
// simply makes every later call fail, which the engine logs and
// swallows; the gate does not transition back on a mid-session 401.
// Logout is the only exit from the authenticated state.
type Gate struct {
	sessions SessionSlot
	logger   *slog.Logger
}

// NewGate creates a Gate over the persisted session slot.
func NewGate(sessions SessionSlot, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}

	return &Gate{sessions: sessions, logger: logger}
}

// Enter checks the session slot on console entry. It returns
// ErrNotAuthenticated when no credential is stored; the caller must
// redirect to the entry screen without issuing any service call. On
// success the caller triggers the first refresh.
func (g *Gate) Enter() error {
	if _, ok := g.sessions.Token(); !ok {
		g.logger.Debug("no session credential, redirecting to entry screen")

		return ErrNotAuthenticated
	}

	return nil
}

// Logout clears the stored credential.
func (g *Gate) Logout() error {
	return g.sessions.ClearToken()
}
