package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/doebem/doebem-cli/internal/model"
)

// UsuariosService covers /usuarios. Create doubles as registration and is
// the one unauthenticated write in the API.
type UsuariosService service

func (s *UsuariosService) List(ctx context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	if err := s.client.do(ctx, http.MethodGet, "/usuarios", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UsuariosService) Get(ctx context.Context, id int64) (*model.Usuario, error) {
	var out model.Usuario
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/usuarios/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuariosService) Create(ctx context.Context, in model.UsuarioCreate) (*model.Usuario, error) {
	var out model.Usuario
	if err := s.client.do(ctx, http.MethodPost, "/usuarios", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuariosService) Update(ctx context.Context, id int64, in model.UsuarioCreate) (*model.Usuario, error) {
	var out model.Usuario
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuariosService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil, nil, nil)
}
