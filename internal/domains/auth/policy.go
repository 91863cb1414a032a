package auth

import "wiki-backend/internal/domains/user"

// Policy names an authorization tier. Anonymous endpoints never consult
// a policy at all; they simply skip the middleware.
type Policy string

const (
	// PolicyAdmin requires the Admin role claim.
	PolicyAdmin Policy = "Admin"

	// PolicyEditor requires the Editor role claim. Admin implies Editor:
	// an admin can do everything an editor can.
	PolicyEditor Policy = "Editor"
)

// Allowed is the pure authorization decision: claim set in, verdict out.
func Allowed(roles []string, policy Policy) bool {
	has := func(role string) bool {
		for _, r := range roles {
			if r == role {
				return true
			}
		}
		return false
	}

	switch policy {
	case PolicyAdmin:
		return has(user.RoleAdmin)
	case PolicyEditor:
		return has(user.RoleEditor) || has(user.RoleAdmin)
	default:
		return false
	}
}
