package api

import (
	"context"
	"net/http"

	"github.com/doebem/doebem-cli/internal/model"
)

// AuthService talks to the authentication endpoint. Session semantics
// (persisting the token, building the in-memory user) live in
// internal/session; this is just the wire call.
type AuthService service

// LoginResponse is deliberately loose: backend iterations have returned the
// full profile, a partial one, or only the token.
type LoginResponse struct {
	Token     string `json:"token"`
	UsuarioID int64  `json:"usuarioId,omitempty"`
	Nome      string `json:"nome,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Login exchanges credentials for a bearer token via POST /auth/login.
func (s *AuthService) Login(ctx context.Context, creds model.Credenciais) (*LoginResponse, error) {
	var out LoginResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
