// Package store persists the two durable session entries, token and userId,
// as a JSON file under the user's config directory. It is the only shared
// mutable state in the client: the request middleware reads it, the session
// store writes it.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const fileName = "session.json"

type sessionFile struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// Store reads and writes the durable session file. The zero value is not
// usable; construct with New or NewAt.
type Store struct {
	dir string
}

// New resolves the config directory the way the rest of the platform's
// tooling does: $XDG_CONFIG_HOME/doebem, falling back to ~/.config/doebem.
func New() *Store {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return &Store{dir: filepath.Join(v, "doebem")}
	}
	home, _ := os.UserHomeDir()
	return &Store{dir: filepath.Join(home, ".config", "doebem")}
}

// NewAt uses an explicit directory. Tests point this at t.TempDir().
func NewAt(dir string) *Store { return &Store{dir: dir} }

func (s *Store) path() string { return filepath.Join(s.dir, fileName) }

// SaveSession durably writes both entries. Callers that also keep in-memory
// state must call this first, so a request issued right after sees the token.
func (s *Store) SaveSession(token, userID string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sessionFile{Token: token, UserID: userID})
}

// Token returns the stored bearer token, or "" when no usable token exists.
// A token that parses as a JWT with a past exp claim counts as absent; opaque
// tokens are returned as-is.
func (s *Store) Token() string {
	sf, err := s.read()
	if err != nil || sf.Token == "" {
		return ""
	}
	if expired(sf.Token) {
		return ""
	}
	return sf.Token
}

// UserID returns the stored user id (decimal string), or "".
func (s *Store) UserID() string {
	sf, err := s.read()
	if err != nil {
		return ""
	}
	return sf.UserID
}

// ClearSession removes both entries. Removing an already-absent file is not
// an error; callers treat any failure as best-effort.
func (s *Store) ClearSession() error {
	err := os.Remove(s.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) read() (sessionFile, error) {
	var sf sessionFile
	b, err := os.ReadFile(s.path())
	if err != nil {
		return sf, err
	}
	err = json.Unmarshal(b, &sf)
	return sf, err
}

// expired checks the exp claim without validating the signature; the server
// remains the authority, this only avoids sending a token known to be dead.
func expired(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false // opaque token, let the server judge
	}
	return claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time)
}
