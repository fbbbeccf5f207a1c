package auth

import (
	"testing"

	"cpn-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestExtractRole(t *testing.T) {
	t.Run("authorities list with prefix", func(t *testing.T) {
		role, err := ExtractRole(jwt.MapClaims{
			"authorities": []interface{}{"ROLE_RECEPTIONIST"},
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleReceptionist, role)
	})

	t.Run("bare role claim any casing", func(t *testing.T) {
		role, err := ExtractRole(jwt.MapClaims{"role": "doctor"})
		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleDoctor, role)
	})

	t.Run("multiple authorities prefer admin", func(t *testing.T) {
		role, err := ExtractRole(jwt.MapClaims{
			"roles": []interface{}{"ROLE_DOCTOR", "ROLE_ADMIN"},
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, role)
	})

	t.Run("unknown authority is rejected", func(t *testing.T) {
		_, err := ExtractRole(jwt.MapClaims{"authorities": []interface{}{"ROLE_NURSE"}})
		assert.Error(t, err)
	})

	t.Run("no authority claim at all", func(t *testing.T) {
		_, err := ExtractRole(jwt.MapClaims{"sub": "fatou"})
		assert.Error(t, err)
	})
}
