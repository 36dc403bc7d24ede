// Package api is the single point of outgoing network configuration plus one
// typed accessor per backend resource. Cross-cutting behavior (bearer auth,
// request logging, session teardown on 401) lives in an explicit middleware
// chain around the transport, so accessors never duplicate it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/doebem/doebem-cli/internal/errs"
	"github.com/doebem/doebem-cli/internal/store"
)

// DefaultTimeout bounds every request; a timed-out call simply fails, there
// are no retries anywhere in the client.
const DefaultTimeout = 10 * time.Second

// Config carries the transport settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client wraps one configured http.Client and exposes the resource accessors.
type Client struct {
	base *url.URL
	http *http.Client

	common service

	Auth         *AuthService
	Usuarios     *UsuariosService
	Instituicoes *InstituicoesService
	Itens        *ItensService
	Categorias   *CategoriasService
	Doacoes      *DoacoesService
}

type service struct {
	client *Client
}

// New builds the client. The middleware order is fixed: request-id tagging,
// logging, bearer injection, then 401 teardown closest to the wire so it
// inspects responses before anything else does.
func New(cfg Config, st *store.Store, log *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		base: base,
		http: &http.Client{
			Timeout: timeout,
			Transport: Chain(http.DefaultTransport,
				RequestID(),
				Logging(log),
				BearerAuth(st),
				TeardownOn401(st, log),
			),
		},
	}
	c.common.client = c
	c.Auth = (*AuthService)(&c.common)
	c.Usuarios = (*UsuariosService)(&c.common)
	c.Instituicoes = (*InstituicoesService)(&c.common)
	c.Itens = (*ItensService)(&c.common)
	c.Categorias = (*CategoriasService)(&c.common)
	c.Doacoes = (*DoacoesService)(&c.common)
	return c, nil
}

// errBody is the loose error envelope the backend uses; iterations have
// emitted all three field names.
type errBody struct {
	Message  string `json:"message"`
	Mensagem string `json:"mensagem"`
	Error    string `json:"error"`
}

func (e errBody) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Mensagem != "":
		return e.Mensagem
	default:
		return e.Error
	}
}

// do performs one request. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded JSON response. Non-2xx statuses and
// network-level failures come back classified as *errs.APIError.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = path.Join(c.base.Path, endpoint)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, endpoint, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Network(method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Network(method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errBody
		_ = json.Unmarshal(raw, &eb)
		return errs.FromStatus(method, endpoint, resp.StatusCode, eb.text())
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return errs.Malformed(method, endpoint, "empty response body")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Malformed(method, endpoint, err.Error())
	}
	return nil
}
