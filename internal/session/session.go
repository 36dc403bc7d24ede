// Package session holds the authoritative in-memory record of who is logged
// in, synchronized with the durable store. It is the single writer of the
// durable token/userId entries (the transport middleware only reads them,
// except for the 401 teardown) and the sole entry and exit point for
// authentication.
package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/doebem/doebem-cli/internal/api"
	"github.com/doebem/doebem-cli/internal/errs"
	"github.com/doebem/doebem-cli/internal/model"
	"github.com/doebem/doebem-cli/internal/store"
	"github.com/doebem/doebem-cli/internal/validate"
)

// Store is the injectable session state. At most one session is active per
// process; there is no account switching.
type Store struct {
	api     *api.Client
	durable *store.Store
	log     *zap.Logger

	mu   sync.Mutex
	user *model.Usuario
}

// New wires the session store to the API client and the durable store.
func New(client *api.Client, durable *store.Store, log *zap.Logger) *Store {
	return &Store{api: client, durable: durable, log: log}
}

// Login authenticates against POST /auth/login. The return narrows exactly
// one failure: (false, nil) when the server answered 401 (bad credentials).
// Everything else — validation, network, 5xx, malformed response — comes
// back as an error so callers can tell "wrong password" from "backend down".
//
// On success the token and userId are durably persisted before the in-memory
// user is set, so a request issued immediately afterwards already carries
// the new token.
func (s *Store) Login(ctx context.Context, email, senha string) (bool, error) {
	creds := model.Credenciais{Email: strings.TrimSpace(email), Senha: senha}
	if err := validate.Struct(creds); err != nil {
		return false, err
	}

	resp, err := s.api.Auth.Login(ctx, creds)
	if err != nil {
		if errs.IsUnauthorized(err) {
			return false, nil
		}
		return false, err
	}
	if resp.Token == "" {
		return false, errs.Malformed("POST", "/auth/login", "response carried no token")
	}

	var userID string
	if resp.UsuarioID > 0 {
		userID = strconv.FormatInt(resp.UsuarioID, 10)
	}
	if err := s.durable.SaveSession(resp.Token, userID); err != nil {
		return false, fmt.Errorf("persist session: %w", err)
	}

	user := mapUser(resp, creds.Email)
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.log.Info("logged in", zap.Int64("usuarioId", user.ID))
	return true, nil
}

// mapUser tolerates the response shapes the backend has shipped over time:
// full profile, partial profile, or token only. Missing fields fall back to
// the submitted email; nothing else is guessed.
func mapUser(resp *api.LoginResponse, submittedEmail string) *model.Usuario {
	u := &model.Usuario{
		ID:    resp.UsuarioID,
		Nome:  resp.Nome,
		Email: resp.Email,
	}
	if u.Email == "" {
		u.Email = submittedEmail
	}
	if u.Nome == "" {
		u.Nome = submittedEmail
	}
	return u
}

// Logout clears the in-memory user first, then best-effort removes the
// durable entries. A storage failure is logged but never surfaces: logout
// cannot fail, and calling it twice ends in the same state as once.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.durable.ClearSession(); err != nil {
		s.log.Warn("durable session clear failed", zap.Error(err))
	}
}

// Rehydrate restores the in-memory user from a prior run's durable token by
// probing GET /usuarios/{id}. An absent or expired token, or a 401 from the
// probe (which also tears down the durable entries via the middleware),
// leaves the process logged out without error; only server or network
// failures surface.
func (s *Store) Rehydrate(ctx context.Context) error {
	if s.durable.Token() == "" {
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return nil
	}

	uid, err := strconv.ParseInt(s.durable.UserID(), 10, 64)
	if err != nil || uid <= 0 {
		// Token without a usable userId: nothing to probe with.
		s.log.Warn("stored session has no usable userId, discarding")
		s.Logout()
		return nil
	}

	u, err := s.api.Usuarios.Get(ctx, uid)
	if err != nil {
		if errs.IsUnauthorized(err) {
			s.mu.Lock()
			s.user = nil
			s.mu.Unlock()
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	s.log.Info("session rehydrated", zap.Int64("usuarioId", u.ID))
	return nil
}

// Current returns the logged-in user, or nil.
func (s *Store) Current() *model.Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Authenticated reports whether an in-memory session exists.
func (s *Store) Authenticated() bool { return s.Current() != nil }
