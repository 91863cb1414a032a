package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wiki-backend/internal/domains/user"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name   string
		roles  []string
		policy Policy
		want   bool
	}{
		{"admin passes admin", []string{user.RoleAdmin}, PolicyAdmin, true},
		{"editor fails admin", []string{user.RoleEditor}, PolicyAdmin, false},
		{"editor passes editor", []string{user.RoleEditor}, PolicyEditor, true},
		{"admin implies editor", []string{user.RoleAdmin}, PolicyEditor, true},
		{"no roles fails editor", nil, PolicyEditor, false},
		{"no roles fails admin", nil, PolicyAdmin, false},
		{"unknown role fails", []string{"Viewer"}, PolicyEditor, false},
		{"unknown policy denies", []string{user.RoleAdmin}, Policy("Owner"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.roles, tt.policy))
		})
	}
}
