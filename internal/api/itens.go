package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/doebem/doebem-cli/internal/model"
)

// ItensService covers /itens.
type ItensService service

func (s *ItensService) List(ctx context.Context) ([]model.Item, error) {
	var out []model.Item
	if err := s.client.do(ctx, http.MethodGet, "/itens", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ItensService) Get(ctx context.Context, id int64) (*model.Item, error) {
	var out model.Item
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/itens/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ItensService) Create(ctx context.Context, in model.ItemCreate) (*model.Item, error) {
	var out model.Item
	if err := s.client.do(ctx, http.MethodPost, "/itens", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ItensService) Update(ctx context.Context, id int64, in model.ItemCreate) (*model.Item, error) {
	var out model.Item
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/itens/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ItensService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/itens/%d", id), nil, nil, nil)
}
