package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/doebem/doebem-cli/internal/model"
)

// DoacoesService covers /doacoes. Two backend quirks are preserved exactly:
// the acting user travels as the usuarioId query parameter on create (the
// body schema has no user field), and status updates go through a dedicated
// endpoint with the status in the query string, never in a body.
type DoacoesService service

func (s *DoacoesService) List(ctx context.Context) ([]model.Doacao, error) {
	var out []model.Doacao
	if err := s.client.do(ctx, http.MethodGet, "/doacoes", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DoacoesService) Get(ctx context.Context, id int64) (*model.Doacao, error) {
	var out model.Doacao
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/doacoes/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUsuario is the donation-history call backing the history screen.
func (s *DoacoesService) ListByUsuario(ctx context.Context, usuarioID int64) ([]model.Doacao, error) {
	var out []model.Doacao
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/doacoes/usuario/%d", usuarioID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits POST /doacoes?usuarioId={id} with {idInstituicao, idItens}.
func (s *DoacoesService) Create(ctx context.Context, usuarioID int64, in model.DoacaoCreate) (*model.Doacao, error) {
	q := url.Values{"usuarioId": {strconv.FormatInt(usuarioID, 10)}}
	var out model.Doacao
	if err := s.client.do(ctx, http.MethodPost, "/doacoes", q, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus submits PUT /doacoes/{id}/status?status={v} with an empty
// body.
func (s *DoacoesService) UpdateStatus(ctx context.Context, id int64, status model.StatusDoacao) (*model.Doacao, error) {
	q := url.Values{"status": {string(status)}}
	var out model.Doacao
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/doacoes/%d/status", id), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DoacoesService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/doacoes/%d", id), nil, nil, nil)
}
