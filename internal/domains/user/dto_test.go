package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     SignupRequest{Username: "alice", Email: "alice@example.com", Password: "hunter2"},
			wantErr: false,
		},
		{
			name:    "missing username",
			req:     SignupRequest{Email: "alice@example.com", Password: "hunter2"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     SignupRequest{Username: "alice", Password: "hunter2"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     SignupRequest{Username: "alice", Email: "alice@example.com"},
			wantErr: true,
		},
		{
			name:    "email format not checked",
			req:     SignupRequest{Username: "alice", Email: "not-an-email", Password: "hunter2"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{name: "valid", req: LoginRequest{Username: "alice", Password: "hunter2"}, wantErr: false},
		{name: "missing username", req: LoginRequest{Password: "hunter2"}, wantErr: true},
		{name: "missing password", req: LoginRequest{Username: "alice"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserToDTO(t *testing.T) {
	u := User{Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$10$abc"}
	dto := u.ToDTO()

	assert.Equal(t, "alice", dto.Username)
	assert.Equal(t, "alice@example.com", dto.Email)
}
