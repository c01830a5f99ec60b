package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"vehicle-rental-api/internal/domain"
)

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager("test-secret-that-is-long-enough-123456", 60)

	user := &domain.User{
		ID:       uuid.New(),
		Username: "admin1",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}

	t.Run("Generate and validate round trip", func(t *testing.T) {
		token, err := manager.Generate(user)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := manager.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "admin1", claims.Username)
		assert.Equal(t, string(domain.RoleAdmin), claims.Role)
	})

	t.Run("Garbage token is invalid", func(t *testing.T) {
		_, err := manager.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token signed with another secret is invalid", func(t *testing.T) {
		other := NewTokenManager("a-completely-different-secret-7654321", 60)
		token, err := other.Generate(user)
		assert.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired token is reported as expired", func(t *testing.T) {
		expired := &tokenManager{secret: []byte("test-secret-that-is-long-enough-123456"), expiry: -time.Hour}
		token, err := expired.Generate(user)
		assert.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
