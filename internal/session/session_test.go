package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/doebem/doebem-cli/internal/api"
	"github.com/doebem/doebem-cli/internal/errs"
	"github.com/doebem/doebem-cli/internal/store"
)

type fixture struct {
	session *Store
	durable *store.Store
	client  *api.Client
}

func newFixture(t *testing.T, h http.Handler) *fixture {
	t.Helper()
	r := chi.NewRouter()
	r.Mount("/api", h)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	durable := store.NewAt(t.TempDir())
	client, err := api.New(api.Config{BaseURL: srv.URL + "/api"}, durable, zap.NewNop())
	require.NoError(t, err)
	return &fixture{
		session: New(client, durable, zap.NewNop()),
		durable: durable,
		client:  client,
	}
}

func TestLogin_FullProfileResponse(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"abc123","usuarioId":7,"nome":"Ana","email":"a@x.com"}`))
	})
	f := newFixture(t, r)

	ok, err := f.session.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "abc123", f.durable.Token())
	assert.Equal(t, "7", f.durable.UserID())

	u := f.session.Current()
	require.NotNil(t, u)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "Ana", u.Nome)
	assert.Equal(t, "a@x.com", u.Email)
	assert.True(t, f.session.Authenticated())
}

func TestLogin_InvalidCredentialsReturnsFalse(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	f := newFixture(t, r)

	ok, err := f.session.Login(context.Background(), "a@x.com", "wrong")
	require.NoError(t, err, "401 on login is the one non-error failure")
	assert.False(t, ok)
	assert.Empty(t, f.durable.Token(), "no token may be written")
	assert.Nil(t, f.session.Current())
}

func TestLogin_OtherFailuresAreErrors(t *testing.T) {
	t.Parallel()

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		r := chi.NewRouter()
		r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		f := newFixture(t, r)

		ok, err := f.session.Login(context.Background(), "a@x.com", "secret")
		assert.False(t, ok)
		assert.True(t, errs.IsServer(err), "5xx must surface, got %v", err)
	})

	t.Run("network error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		durable := store.NewAt(t.TempDir())
		client, err := api.New(api.Config{BaseURL: srv.URL}, durable, zap.NewNop())
		require.NoError(t, err)
		srv.Close()
		s := New(client, durable, zap.NewNop())

		ok, err := s.Login(context.Background(), "a@x.com", "secret")
		assert.False(t, ok)
		assert.True(t, errs.IsNetwork(err), "dead server must surface as network error, got %v", err)
	})

	t.Run("malformed response without token", func(t *testing.T) {
		t.Parallel()
		r := chi.NewRouter()
		r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"usuarioId":7}`))
		})
		f := newFixture(t, r)

		ok, err := f.session.Login(context.Background(), "a@x.com", "secret")
		assert.False(t, ok)
		assert.ErrorIs(t, err, errs.ErrMalformedResponse)
		assert.Empty(t, f.durable.Token())
	})
}

func TestLogin_MinimalResponseFallsBackToSubmittedEmail(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"only-token"}`))
	})
	f := newFixture(t, r)

	ok, err := f.session.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	u := f.session.Current()
	require.NotNil(t, u)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "a@x.com", u.Nome, "display name falls back to the submitted email")
	assert.Empty(t, f.durable.UserID(), "no usuarioId in the response means none persisted")
}

func TestLogin_ValidationFailsBeforeAnyRequest(t *testing.T) {
	t.Parallel()

	var hits int
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	})
	f := newFixture(t, r)

	for _, in := range []struct{ email, senha string }{
		{"", "secret"},
		{"not-an-email", "secret"},
		{"a@x.com", ""},
	} {
		ok, err := f.session.Login(context.Background(), in.email, in.senha)
		assert.False(t, ok)
		assert.True(t, errs.IsValidation(err), "input %+v", in)
	}
	assert.Zero(t, hits, "validation failures must not reach the network")
}

func TestLogin_TokenVisibleToNextRequestImmediately(t *testing.T) {
	t.Parallel()

	var gotAuth string
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"abc123","usuarioId":7,"nome":"Ana","email":"a@x.com"}`))
	})
	r.Get("/doacoes/usuario/7", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	f := newFixture(t, r)

	ok, err := f.session.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.client.Doacoes.ListByUsuario(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth,
		"token persisted during login must reach the very next request")
}

func TestLogout_ClearsEverythingAndIsIdempotent(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"abc123","usuarioId":7,"nome":"Ana","email":"a@x.com"}`))
	})
	f := newFixture(t, r)

	ok, err := f.session.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	f.session.Logout()
	assert.Nil(t, f.session.Current())
	assert.Empty(t, f.durable.Token())
	assert.Empty(t, f.durable.UserID())

	// Second logout ends in the same state.
	f.session.Logout()
	assert.Nil(t, f.session.Current())
	assert.Empty(t, f.durable.Token())
}

func TestRehydrate_RestoresUserFromStoredSession(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/usuarios/7", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"idUsuario":7,"nome":"Ana","email":"a@x.com"}`))
	})
	f := newFixture(t, r)
	require.NoError(t, f.durable.SaveSession("still-valid", "7"))

	require.NoError(t, f.session.Rehydrate(context.Background()))
	u := f.session.Current()
	require.NotNil(t, u)
	assert.Equal(t, "Ana", u.Nome)
}

func TestRehydrate_NoTokenStaysLoggedOutWithoutRequest(t *testing.T) {
	t.Parallel()

	var hits int
	r := chi.NewRouter()
	r.Get("/usuarios/{id}", func(w http.ResponseWriter, _ *http.Request) { hits++ })
	f := newFixture(t, r)

	require.NoError(t, f.session.Rehydrate(context.Background()))
	assert.Nil(t, f.session.Current())
	assert.Zero(t, hits)
}

func TestRehydrate_StaleTokenTornDownBy401(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/usuarios/7", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	f := newFixture(t, r)
	require.NoError(t, f.durable.SaveSession("revoked", "7"))

	require.NoError(t, f.session.Rehydrate(context.Background()),
		"a revoked token is a normal logged-out outcome, not an error")
	assert.Nil(t, f.session.Current())
	assert.Empty(t, f.durable.Token(), "middleware tears the durable session down")
}

func TestRehydrate_TokenWithoutUserIDDiscards(t *testing.T) {
	t.Parallel()

	var hits int
	r := chi.NewRouter()
	r.Get("/usuarios/{id}", func(w http.ResponseWriter, _ *http.Request) { hits++ })
	f := newFixture(t, r)
	require.NoError(t, f.durable.SaveSession("orphan-token", ""))

	require.NoError(t, f.session.Rehydrate(context.Background()))
	assert.Nil(t, f.session.Current())
	assert.Empty(t, f.durable.Token(), "unusable session must be discarded")
	assert.Zero(t, hits)
}

func TestRehydrate_ServerErrorSurfaces(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Get("/usuarios/7", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	f := newFixture(t, r)
	require.NoError(t, f.durable.SaveSession("valid", "7"))

	err := f.session.Rehydrate(context.Background())
	assert.True(t, errs.IsServer(err))
	assert.Equal(t, "valid", f.durable.Token(), "5xx must not destroy the stored session")
}
