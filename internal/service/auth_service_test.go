package service

import (
	"context"
	"testing"
	"time"

	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/internal/core/ports/mocks"
	"sports-association-admin/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	svc := NewAuthService(userRepo, hashSvc, tokenSvc)

	userRepo.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
	hashSvc.EXPECT().Hash("s3cret!").Return("$argon2id$hash", nil)
	userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) error {
			assert.Equal(t, "new@example.com", user.Email)
			assert.Equal(t, "$argon2id$hash", user.PasswordHash)
			assert.Equal(t, domain.RoleStaff, user.Role)
			assert.NotEqual(t, uuid.Nil, user.ID)
			return nil
		})

	user, err := svc.Register(context.Background(), ports.RegisterRequest{
		Name:     "New Staff",
		Email:    "  NEW@example.COM ",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, mocks.NewMockHashService(ctrl), mocks.NewMockTokenService(ctrl))

	userRepo.EXPECT().
		GetByEmail(gomock.Any(), "taken@example.com").
		Return(&domain.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	_, err := svc.Register(context.Background(), ports.RegisterRequest{
		Email:    "taken@example.com",
		Password: "pw",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	svc := NewAuthService(userRepo, hashSvc, tokenSvc)

	user := &domain.User{ID: uuid.New(), Email: "jo@example.com", PasswordHash: "$hash", Role: domain.RoleAdmin}
	expiry := time.Now().Add(time.Hour)

	userRepo.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(user, nil)
	hashSvc.EXPECT().Verify("pw", "$hash").Return(true, nil)
	tokenSvc.EXPECT().Generate(user).Return("jwt-token", expiry, nil)

	token, exp, err := svc.Login(context.Background(), "Jo@Example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_BadPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	svc := NewAuthService(userRepo, hashSvc, mocks.NewMockTokenService(ctrl))

	user := &domain.User{ID: uuid.New(), Email: "jo@example.com", PasswordHash: "$hash"}
	userRepo.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(user, nil)
	hashSvc.EXPECT().Verify("wrong", "$hash").Return(false, nil)

	_, _, err := svc.Login(context.Background(), "jo@example.com", "wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, mocks.NewMockHashService(ctrl), mocks.NewMockTokenService(ctrl))

	userRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}
