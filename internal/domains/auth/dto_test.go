package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AuthenticateRequest
		wantErr bool
	}{
		{"valid", AuthenticateRequest{Email: "alice@example.com", Password: "pw"}, false},
		{"mixed case email", AuthenticateRequest{Email: "ALICE@Example.COM", Password: "pw"}, false},
		{"missing email", AuthenticateRequest{Password: "pw"}, true},
		{"not an email", AuthenticateRequest{Email: "alice", Password: "pw"}, true},
		{"missing password", AuthenticateRequest{Email: "alice@example.com"}, true},
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

func TestRefreshRequest_Validate(t *testing.T) {
	assert.NoError(t, RefreshRequest{RefreshToken: "abc123"}.Validate())
	assert.Error(t, RefreshRequest{}.Validate())
}
