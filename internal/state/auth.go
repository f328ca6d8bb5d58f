package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
	"github.com/robertroman/store-admin-console/internal/service"
	"github.com/robertroman/store-admin-console/internal/session"
)

// AuthState tracks the session lifecycle: anonymous, authenticating, or
// authenticated. A non-empty token is the sole authentication criterion;
// staleness only surfaces when the server rejects a later call.
type AuthState struct {
	Usuario     *model.User
	Token       string
	Autenticado bool
	Loading     bool
	Error       string
}

func authPending(s AuthState) AuthState {
	s.Loading = true
	s.Error = ""
	return s
}

func authRejected(s AuthState, msg string) AuthState {
	s.Loading = false
	s.Error = msg
	return s
}

// authLoggedIn installs the token and identity from a successful login.
func authLoggedIn(s AuthState, resp model.AuthResponse) AuthState {
	s.Loading = false
	s.Token = resp.Token
	s.Usuario = &model.User{Username: resp.Username, Email: resp.Email}
	s.Autenticado = resp.Token != ""
	return s
}

// authLoggedOut resets to anonymous.
func authLoggedOut(AuthState) AuthState {
	return AuthState{}
}

// AuthSlice holds the session state and runs login/logout.
type AuthSlice struct {
	mu    sync.Mutex
	st    AuthState
	svc   service.AuthService
	store *session.Store
	log   *zap.Logger
}

// NewAuthSlice constructs the slice and hydrates it from the persisted
// session, if any.
func NewAuthSlice(svc service.AuthService, store *session.Store, log *zap.Logger) *AuthSlice {
	s := &AuthSlice{svc: svc, store: store, log: log}
	if sess, err := store.Load(); err == nil {
		u := sess.User
		s.st = AuthState{Token: sess.Token, Usuario: &u, Autenticado: true}
	}
	return s
}

// State returns a snapshot of the session state.
func (s *AuthSlice) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.st
	if st.Usuario != nil {
		u := *st.Usuario
		st.Usuario = &u
	}
	return st
}

func (s *AuthSlice) apply(f func(AuthState) AuthState) {
	s.mu.Lock()
	s.st = f(s.st)
	s.mu.Unlock()
}

// Login authenticates and persists the session on success.
func (s *AuthSlice) Login(ctx context.Context, req model.LoginRequest) error {
	s.apply(authPending)
	resp, err := s.svc.Login(ctx, req)
	if err != nil {
		msg := api.ErrorMessage(err, "Error al iniciar sesión")
		s.log.Warn("login", zap.String("error", msg))
		s.apply(func(st AuthState) AuthState { return authRejected(st, msg) })
		return err
	}
	sess := session.Session{
		Token: resp.Token,
		User:  model.User{Username: resp.Username, Email: resp.Email},
	}
	if err := s.store.Save(sess); err != nil {
		s.apply(func(st AuthState) AuthState { return authRejected(st, "No se pudo guardar la sesión") })
		return err
	}
	s.apply(func(st AuthState) AuthState { return authLoggedIn(st, resp) })
	return nil
}

// Logout clears the persisted session and resets to anonymous. It is
// synchronous and needs no server confirmation.
func (s *AuthSlice) Logout() error {
	err := s.store.Clear()
	s.apply(authLoggedOut)
	return err
}

// LimpiarError clears the error field.
func (s *AuthSlice) LimpiarError() {
	s.apply(func(st AuthState) AuthState {
		st.Error = ""
		return st
	})
}
