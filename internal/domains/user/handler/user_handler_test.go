package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/user"
)

// fakeService implements user.Service with canned behavior per username.
type fakeService struct {
	existing map[string]string // username -> password
}

func newFakeService() *fakeService {
	return &fakeService{existing: make(map[string]string)}
}

func (s *fakeService) Signup(_ context.Context, req user.SignupRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.existing[req.Username]; ok {
		return nil, user.ErrUserAlreadyExists
	}
	s.existing[req.Username] = req.Password
	return &user.UserDTO{ID: uuid.New(), Username: req.Username, Email: req.Email}, nil
}

func (s *fakeService) Login(_ context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	password, ok := s.existing[req.Username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	if password != req.Password {
		return nil, user.ErrInvalidPassword
	}
	return &user.LoginResponse{Token: "token-" + req.Username, Username: req.Username}, nil
}

func setupRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)

	r := gin.New()
	users := r.Group("/user")
	{
		users.POST("/signup", h.Signup)
		users.POST("/login", h.Login)
	}
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSignup(t *testing.T) {
	r := setupRouter(newFakeService())

	rec := postJSON(t, r, "/user/signup", user.SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var dto map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "alice", dto["username"])
	assert.Equal(t, "alice@example.com", dto["email"])

	// The password never appears in the response, hashed or plain
	_, hasPassword := dto["password"]
	assert.False(t, hasPassword)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestSignup_MissingFields(t *testing.T) {
	r := setupRouter(newFakeService())

	rec := postJSON(t, r, "/user/signup", user.SignupRequest{Username: "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_Duplicate(t *testing.T) {
	r := setupRouter(newFakeService())

	req := user.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "hunter2"}
	rec := postJSON(t, r, "/user/signup", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, r, "/user/signup", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var msg map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Username or email already exists", msg["message"])
}

func TestSignup_MalformedJSON(t *testing.T) {
	r := setupRouter(newFakeService())

	req := httptest.NewRequest(http.MethodPost, "/user/signup", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	r := setupRouter(newFakeService())

	postJSON(t, r, "/user/signup", user.SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter2",
	})

	rec := postJSON(t, r, "/user/login", user.LoginRequest{Username: "alice", Password: "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp user.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_UnknownUser(t *testing.T) {
	r := setupRouter(newFakeService())

	rec := postJSON(t, r, "/user/login", user.LoginRequest{Username: "nobody", Password: "hunter2"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var msg map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "User not found", msg["message"])
}

func TestLogin_WrongPassword(t *testing.T) {
	r := setupRouter(newFakeService())

	postJSON(t, r, "/user/signup", user.SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter2",
	})

	rec := postJSON(t, r, "/user/login", user.LoginRequest{Username: "alice", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var msg map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Invalid password", msg["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	r := setupRouter(newFakeService())

	rec := postJSON(t, r, "/user/login", user.LoginRequest{Username: "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
