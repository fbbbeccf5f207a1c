package auth

import (
	"strings"

	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// knownRoles in precedence order: an account carrying several authorities
// gets the most privileged one.
var knownRoles = []string{constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleReceptionist}

// ExtractRole folds the remote token's authority claims into one of the
// three known roles. The records API is not consistent about the claim
// name or shape, so authorities, roles and role are all read, as strings
// or string lists, and matched by substring ("ROLE_ADMIN" counts as
// ADMIN).
func ExtractRole(claims jwt.MapClaims) (string, error) {
	var authorities []string
	for _, claimName := range []string{"authorities", "roles", "role"} {
		switch raw := claims[claimName].(type) {
		case string:
			authorities = append(authorities, raw)
		case []interface{}:
			for _, item := range raw {
				if s, ok := item.(string); ok {
					authorities = append(authorities, s)
				}
			}
		case []string:
			authorities = append(authorities, raw...)
		}
	}

	for _, role := range knownRoles {
		for _, authority := range authorities {
			if strings.Contains(strings.ToUpper(authority), role) {
				return role, nil
			}
		}
	}
	return "", exceptions.ErrRoleNotRecognized(nil)
}
