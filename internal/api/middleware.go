package api

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/doebem/doebem-cli/internal/store"
)

// Middleware decorates a RoundTripper. The chain is explicit and ordered:
// the first middleware sees the request first and the response last.
type Middleware func(http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

// Chain wraps base with mws, preserving declaration order on the request
// path.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	rt := base
	for i := len(mws) - 1; i >= 0; i-- {
		rt = mws[i](rt)
	}
	return rt
}

// RequestID tags every outgoing request with an X-Request-Id so client and
// server logs correlate.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("X-Request-Id") == "" {
				if id, err := uuid.NewV4(); err == nil {
					req.Header.Set("X-Request-Id", id.String())
				}
			}
			return next.RoundTrip(req)
		})
	}
}

// Logging emits one structured line per round-trip, metadata only, never
// payloads.
func Logging(log *zap.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("request_id", req.Header.Get("X-Request-Id")),
				zap.Duration("dur", time.Since(start)),
			}
			if err != nil {
				log.Warn("http no response", append(fields, zap.Error(err))...)
				return resp, err
			}
			log.Debug("http", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, err
		})
	}
}

// BearerAuth reads the durable store on every request and, when a token is
// present, attaches it as the Authorization bearer credential. No token, no
// header.
func BearerAuth(st *store.Store) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if tok := st.Token(); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
			return next.RoundTrip(req)
		})
	}
}

// TeardownOn401 eagerly clears the persisted token and userId whenever any
// endpoint answers 401. The response still propagates so the caller sees the
// unauthorized error; only the durable session dies here.
func TeardownOn401(st *store.Store, log *zap.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err == nil && resp.StatusCode == http.StatusUnauthorized {
				if clearErr := st.ClearSession(); clearErr != nil {
					log.Warn("session teardown failed", zap.Error(clearErr))
				} else {
					log.Info("401 received, durable session cleared",
						zap.String("path", req.URL.Path))
				}
			}
			return resp, err
		})
	}
}
