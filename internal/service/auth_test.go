package service

import (
	"context"
	"database/sql"
	"testing"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest() (AuthService, *MockUserRepo) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager("test-secret-which-is-long-enough-0123", 60, 10080)
	return NewAuthService(userRepo, tokens), userRepo
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Defaults To Customer Role", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		userRepo.On("GetByEmail", ctx, "new@test.com").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		}).Return(nil)

		user, access, refresh, err := svc.Register(ctx, "New User", "New@Test.com", "555", "password123", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.UserRoleCustomer, user.Role)
		assert.Equal(t, "new@test.com", user.Email)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		userRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.User{ID: 1}, nil)

		_, _, _, err := svc.Register(ctx, "X", "taken@test.com", "", "password123", "")
		assert.ErrorIs(t, err, ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Role", func(t *testing.T) {
		svc, _ := newAuthServiceForTest()

		_, _, _, err := svc.Register(ctx, "X", "x@test.com", "", "password123", "superuser")
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 1, Email: "user@test.com", PasswordHash: string(hash), Role: domain.UserRoleCustomer}

	t.Run("Success", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()
		userRepo.On("GetByEmail", ctx, "user@test.com").Return(stored, nil)

		user, access, refresh, err := svc.Login(ctx, "user@test.com", "password123")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()
		userRepo.On("GetByEmail", ctx, "user@test.com").Return(stored, nil)

		_, _, _, err := svc.Login(ctx, "user@test.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()
		userRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, sql.ErrNoRows)

		_, _, _, err := svc.Login(ctx, "ghost@test.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Refresh Issues New Pair", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		stored := &domain.User{ID: 1, Email: "user@test.com", PasswordHash: string(hash)}
		userRepo.On("GetByEmail", ctx, "user@test.com").Return(stored, nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(stored, nil)

		_, _, refresh, err := svc.Login(ctx, "user@test.com", "password123")
		assert.NoError(t, err)

		access2, refresh2, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access2)
		assert.NotEmpty(t, refresh2)
	})

	t.Run("Access Token Rejected As Refresh", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		stored := &domain.User{ID: 1, Email: "user@test.com", PasswordHash: string(hash)}
		userRepo.On("GetByEmail", ctx, "user@test.com").Return(stored, nil)

		_, access, _, err := svc.Login(ctx, "user@test.com", "password123")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.Error(t, err)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		svc, _ := newAuthServiceForTest()

		_, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
