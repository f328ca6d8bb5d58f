// Package session persists the authenticated session between console runs.
//
// The token is the single source of truth for "is authenticated": a stored
// non-empty token counts until the server rejects it or the user logs out.
// No expiry is checked locally.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robertroman/store-admin-console/internal/errs"
	"github.com/robertroman/store-admin-console/internal/model"
)

// Session is the persisted token plus user identity.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Store reads and writes the session under the user config dir.
type Store struct {
	dir string
}

// NewStore resolves the config dir ($XDG_CONFIG_HOME/store-admin or the
// platform equivalent under the home dir).
func NewStore() *Store {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return &Store{dir: filepath.Join(v, "store-admin")}
	}
	home, _ := os.UserHomeDir()
	return &Store{dir: filepath.Join(home, ".config", "store-admin")}
}

func (s *Store) tokenPath() string { return filepath.Join(s.dir, "token.json") }
func (s *Store) userPath() string  { return filepath.Join(s.dir, "user.json") }

type tokenFile struct {
	Token string `json:"token"`
}

// Save persists the token and user identity.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	tok, err := json.Marshal(tokenFile{Token: sess.Token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.tokenPath(), tok, 0o600); err != nil {
		return err
	}
	usr, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	return os.WriteFile(s.userPath(), usr, 0o600)
}

// Load returns the stored session or errs.ErrNoSession when none exists.
func (s *Store) Load() (Session, error) {
	b, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return Session{}, errs.ErrNoSession
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil || tf.Token == "" {
		return Session{}, errs.ErrNoSession
	}
	sess := Session{Token: tf.Token}
	if ub, err := os.ReadFile(s.userPath()); err == nil {
		_ = json.Unmarshal(ub, &sess.User)
	}
	return sess, nil
}

// Clear removes the persisted token and user identity. Logout takes effect
// locally without server confirmation; missing files are fine.
func (s *Store) Clear() error {
	errTok := os.Remove(s.tokenPath())
	errUsr := os.Remove(s.userPath())
	for _, err := range []error{errTok, errUsr} {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Token implements the api token source; "" means anonymous.
func (s *Store) Token() string {
	sess, err := s.Load()
	if err != nil {
		return ""
	}
	return sess.Token
}

// Claims is informational token metadata for display (whoami). The token
// is never validated locally.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Claims parses the registered JWT claims out of the stored token without
// verifying the signature.
func (s *Store) Claims() (Claims, error) {
	sess, err := s.Load()
	if err != nil {
		return Claims{}, err
	}
	var rc jwt.RegisteredClaims
	_, _, err = jwt.NewParser(jwt.WithoutClaimsValidation()).ParseUnverified(sess.Token, &rc)
	if err != nil {
		return Claims{}, err
	}
	c := Claims{Subject: strings.TrimSpace(rc.Subject)}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
