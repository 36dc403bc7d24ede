package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/doebem/doebem-cli/internal/model"
)

// CategoriasService covers /categorias.
type CategoriasService service

func (s *CategoriasService) List(ctx context.Context) ([]model.Categoria, error) {
	var out []model.Categoria
	if err := s.client.do(ctx, http.MethodGet, "/categorias", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CategoriasService) Get(ctx context.Context, id int64) (*model.Categoria, error) {
	var out model.Categoria
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/categorias/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoriasService) Create(ctx context.Context, in model.CategoriaCreate) (*model.Categoria, error) {
	var out model.Categoria
	if err := s.client.do(ctx, http.MethodPost, "/categorias", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoriasService) Update(ctx context.Context, id int64, in model.CategoriaCreate) (*model.Categoria, error) {
	var out model.Categoria
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/categorias/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoriasService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/categorias/%d", id), nil, nil, nil)
}
