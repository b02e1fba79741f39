package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Username != "alice" || in.Role != "reviewer" || len(in.Expertise) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u1", Username: in.Username, Email: in.Email, PasswordHash: "hash", Role: in.Role}, nil
		},
	}
	sessions := &stubSessions{}
	h := NewAuthHandler(stub, sessions, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@example.com","password":"secret","role":"reviewer","expertise":["Noir"]}`, nil)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["success"] != true || resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected envelope: %v", resp)
	}
	user := resp["user"].(map[string]any)
	if user["_id"] != "u1" || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must never be serialized")
	}
	if _, leaked := user["PasswordHash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
	if sessions.established != nil {
		t.Fatalf("register must not log the user in")
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.Validation("Username, email, and password are required")
		},
	}
	h := NewAuthHandler(stub, &stubSessions{}, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/register", `{"username":"bob"}`, nil)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusBadRequest, "Username, email, and password are required")
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, &stubSessions{}, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/register", `{"username":"bob","email":"b@example.com","password":"x"}`, nil)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusBadRequest, "Username or email already exists")
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called for an invalid role")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubSessions{}, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/register", `{"username":"bob","email":"b@example.com","password":"x","role":"admin"}`, nil)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusBadRequest, "role must be one of: reviewer, casual")
}

func TestAuthHandler_Register_InternalError(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	h := NewAuthHandler(stub, &stubSessions{}, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/register", `{"username":"bob","email":"b@example.com","password":"x"}`, nil)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusInternalServerError, "Failed to register user")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*domain.User, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected credentials %s/%s", username, password)
			}
			return &domain.User{ID: "u1", Username: "alice", Role: domain.RoleCasual}, nil
		},
	}
	sessions := &stubSessions{}
	h := NewAuthHandler(stub, sessions, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret"}`, nil)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["message"] != "Login successful" {
		t.Fatalf("unexpected body: %v", resp)
	}
	if sessions.established == nil || sessions.established.UserID != "u1" || sessions.established.Role != domain.RoleCasual {
		t.Fatalf("session not established with the user's identity: %+v", sessions.established)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	sessions := &stubSessions{}
	h := NewAuthHandler(stub, sessions, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`, nil)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusUnauthorized, "Invalid username or password")
	if sessions.established != nil {
		t.Fatalf("no session may be established on failure")
	}
}

func TestAuthHandler_Login_SessionStoreFailure(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: "alice"}, nil
		},
	}
	h := NewAuthHandler(stub, &stubSessions{err: errors.New("redis down")}, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret"}`, nil)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusInternalServerError, "Failed to login")
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessions{}, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"username":`, nil)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusBadRequest, msgInvalidBody)
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := &stubSessions{}
	h := NewAuthHandler(&stubAuthService{}, sessions, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/logout", "", aliceID)
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || decode(t, rec)["message"] != "Logout successful" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if !sessions.destroyed {
		t.Fatalf("session not destroyed")
	}
}

func TestAuthHandler_Logout_StoreFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessions{err: errors.New("boom")}, nopLog)

	c, rec := newContext(http.MethodPost, "/api/auth/logout", "", aliceID)
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusInternalServerError, "Failed to logout")
}

func TestAuthHandler_Current_Anonymous(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(_ context.Context, viewer *domain.Identity) (*domain.User, error) {
			if viewer != nil {
				t.Fatalf("expected no viewer")
			}
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubSessions{}, nopLog)

	c, rec := newContext(http.MethodGet, "/api/auth/current", "", nil)
	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if rec.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("unexpected response: %d %v", rec.Code, resp)
	}
	if user, present := resp["user"]; !present || user != nil {
		t.Fatalf("expected user: null, got %v", resp)
	}
}

func TestAuthHandler_Current_LoggedIn(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(_ context.Context, viewer *domain.Identity) (*domain.User, error) {
			return &domain.User{ID: viewer.UserID, Username: viewer.Username}, nil
		},
	}
	h := NewAuthHandler(stub, &stubSessions{}, nopLog)

	c, rec := newContext(http.MethodGet, "/api/auth/current", "", aliceID)
	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	user, _ := decode(t, rec)["user"].(map[string]any)
	if user["username"] != "alice" {
		t.Fatalf("unexpected user %v", user)
	}
}
