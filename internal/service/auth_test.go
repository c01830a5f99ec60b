package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"vehicle-rental-api/internal/domain"
	"vehicle-rental-api/internal/security"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret-for-auth-tests-0123456789", 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "staff1",
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
		IsActive:     true,
	}

	t.Run("Success", func(t *testing.T) {
		users := &mockUserRepo{}
		users.On("GetByUsername", ctx, "staff1").Return(user, nil)

		svc := NewAuthService(users, tokens)
		result, err := svc.Login(ctx, "staff1", "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, "staff1", result.Username)
		assert.Equal(t, domain.RoleStaff, result.Role)

		claims, err := tokens.Validate(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, string(domain.RoleStaff), claims.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		users := &mockUserRepo{}
		users.On("GetByUsername", ctx, "staff1").Return(user, nil)

		svc := NewAuthService(users, tokens)
		_, err := svc.Login(ctx, "staff1", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown user looks like bad credentials", func(t *testing.T) {
		users := &mockUserRepo{}
		users.On("GetByUsername", ctx, "ghost").Return(nil, domain.NotFound("user", "ghost"))

		svc := NewAuthService(users, tokens)
		_, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Blocked user looks like bad credentials", func(t *testing.T) {
		blocked := *user
		blocked.IsActive = false

		users := &mockUserRepo{}
		users.On("GetByUsername", ctx, "staff1").Return(&blocked, nil)

		svc := NewAuthService(users, tokens)
		_, err := svc.Login(ctx, "staff1", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
