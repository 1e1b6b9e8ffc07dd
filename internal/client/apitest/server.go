// Package apitest provides an in-process stand-in for the authentication API,
// for tests of the client, the auth service and the CLI.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// BasePath is where the fake mounts /register and /login.
const BasePath = "/api/auth"

// Claims are carried by issued access tokens; Subject is the user's email.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// Request is what the fake recorded about one incoming call.
type Request struct {
	Path          string
	RequestID     string
	Authorization string
}

type account struct {
	user     models.User
	password string
}

// Server mimics the backend: register answers 201, duplicates 400, bad
// credentials 401, inactive accounts 403, missing fields 422.
type Server struct {
	*httptest.Server

	Secret []byte
	TTL    time.Duration

	mu        sync.Mutex
	accounts  map[string]*account
	nextID    int64
	requests  []Request
	overrides map[string]http.HandlerFunc
}

// NewServer starts the fake. Callers stop it with Close.
func NewServer() *Server {
	s := &Server{
		Secret:    []byte("test-secret"),
		TTL:       30 * time.Minute,
		accounts:  make(map[string]*account),
		overrides: make(map[string]http.HandlerFunc),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+BasePath+"/register", s.wrap("/register", s.handleRegister))
	mux.HandleFunc("POST "+BasePath+"/login", s.wrap("/login", s.handleLogin))
	s.Server = httptest.NewServer(mux)
	return s
}

// BaseURL is the API root to configure clients with.
func (s *Server) BaseURL() string {
	return s.URL + BasePath
}

// Override replaces the handler for path ("/register" or "/login").
func (s *Server) Override(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = h
}

// Respond makes path answer with a fixed status and raw body.
func (s *Server) Respond(path string, status int, body string) {
	s.Override(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Requests returns a copy of the recorded calls.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// AddUser seeds an account and returns it.
func (s *Server) AddUser(username, email, password string, active bool) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(username, email, password, active)
}

func (s *Server) addLocked(username, email, password string, active bool) models.User {
	s.nextID++
	a := &account{
		user: models.User{
			ID:        s.nextID,
			Email:     email,
			Username:  username,
			IsActive:  active,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		},
		password: password,
	}
	s.accounts[email] = a
	return a.user
}

// GenerateToken signs an access token for user.
func (s *Server) GenerateToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TTL)),
		},
		UserID: user.ID,
	})
	return token.SignedString(s.Secret)
}

// ParseToken verifies a token issued by this server and returns its claims.
func (s *Server) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *Server) wrap(path string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Path:          path,
			RequestID:     r.Header.Get(common.RequestIDHeaderName),
			Authorization: r.Header.Get(common.AuthorizationHeaderName),
		})
		override := s.overrides[path]
		s.mu.Unlock()

		if override != nil {
			override(w, r)
			return
		}
		h(w, r)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCredentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if missing := firstMissing(map[string]string{"username": req.Username, "email": req.Email, "password": req.Password},
		"username", "email", "password"); missing != "" {
		writeMissing(w, missing)
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Email]; exists {
		s.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, "User already exists")
		return
	}
	user := s.addLocked(req.Username, req.Email, req.Password, true)
	s.mu.Unlock()

	s.writeAuth(w, http.StatusCreated, user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginCredentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if missing := firstMissing(map[string]string{"email": req.Email, "password": req.Password},
		"email", "password"); missing != "" {
		writeMissing(w, missing)
		return
	}

	s.mu.Lock()
	a, ok := s.accounts[req.Email]
	s.mu.Unlock()

	if !ok || a.password != req.Password {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	if !a.user.IsActive {
		writeDetail(w, http.StatusForbidden, "Account is inactive")
		return
	}
	s.writeAuth(w, http.StatusOK, a.user)
}

func (s *Server) writeAuth(w http.ResponseWriter, status int, user models.User) {
	token, err := s.GenerateToken(user)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "token error")
		return
	}
	writeJSON(w, status, models.AuthResult{
		User:  &user,
		Token: &models.Token{AccessToken: token, TokenType: "bearer"},
	})
}

func firstMissing(values map[string]string, order ...string) string {
	for _, k := range order {
		if values[k] == "" {
			return k
		}
	}
	return ""
}

func writeMissing(w http.ResponseWriter, field string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"detail": []map[string]any{
			{"loc": []string{"body", field}, "msg": "Field required", "type": "missing"},
		},
	})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
