package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/doebem/doebem-cli/internal/model"
)

// InstituicoesService covers /instituicoes. The app only lists and reads;
// the write operations exist for the admin tooling that shares this client.
type InstituicoesService service

func (s *InstituicoesService) List(ctx context.Context) ([]model.Instituicao, error) {
	var out []model.Instituicao
	if err := s.client.do(ctx, http.MethodGet, "/instituicoes", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *InstituicoesService) Get(ctx context.Context, id int64) (*model.Instituicao, error) {
	var out model.Instituicao
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/instituicoes/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstituicoesService) Create(ctx context.Context, in model.InstituicaoCreate) (*model.Instituicao, error) {
	var out model.Instituicao
	if err := s.client.do(ctx, http.MethodPost, "/instituicoes", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstituicoesService) Update(ctx context.Context, id int64, in model.InstituicaoCreate) (*model.Instituicao, error) {
	var out model.Instituicao
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/instituicoes/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstituicoesService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/instituicoes/%d", id), nil, nil, nil)
}
