package impl

import (
	"context"
	"testing"

	"github.com/Bilal-EZ-ZAIM/devopes/config"
	domainerrors "github.com/Bilal-EZ-ZAIM/devopes/internal/domain/errors"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/infra/auth"
	mockSvc "github.com/Bilal-EZ-ZAIM/devopes/internal/mocks/service"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newInMemoryAuthService(t *testing.T) usecase.AuthUsecase {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "scenario-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthService(AuthServiceParams{
		UserRepo:     newMemoryUserRepository(),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
}

func newInMemoryPharmacyService(t *testing.T) usecase.PharmacyUsecase {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishPharmacyDutyEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	service, err := NewPharmacyService(PharmacyServiceParams{
		PharmacyRepo: newMemoryPharmacyRepository(),
		Publisher:    publisher,
		QRService:    mockSvc.NewMockQRCodeService(t),
		Config:       newTestConfig(nil, 0),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return service
}

func TestAuthFlow_ResetPasswordReplacesCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryAuthService(t)

	_, err := svc.Register(ctx, &usecase.RegisterInput{Username: "amina", Email: "amina@example.com", Password: "old-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &usecase.RegisterInput{Username: "other", Email: "amina@example.com", Password: "x"})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	out, err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{Email: "amina@example.com", NewPassword: "new-pass"})
	require.NoError(t, err)
	assert.Equal(t, usecase.PasswordResetMessage, out.Message)

	token, err := svc.Login(ctx, &usecase.LoginInput{Email: "amina@example.com", Password: "new-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	token, err = svc.Login(ctx, &usecase.LoginInput{Email: "amina@example.com", Password: "old-pass"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, token)

	_, err = svc.ResetPassword(ctx, &usecase.ResetPasswordInput{Email: "ghost@example.com", NewPassword: "new-pass"})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthFlow_TokenIdentifiesRegisteredUser(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryAuthService(t)

	_, err := svc.Register(ctx, &usecase.RegisterInput{Username: "amina", Email: "amina@example.com", Password: "s3cret"})
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "amina@example.com", user.Email)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
}

func TestPharmacyFlow_DeletedPharmacyIsGone(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryPharmacyService(t)

	kept, err := svc.Create(ctx, &usecase.CreatePharmacyInput{Name: "Atlas", Email: "atlas@example.com", Latitude: 33.57, Longitude: -7.59})
	require.NoError(t, err)
	removed, err := svc.Create(ctx, &usecase.CreatePharmacyInput{Name: "Nour", Email: "nour@example.com", Latitude: 34.02, Longitude: -6.84})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, removed.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := svc.GetByID(ctx, removed.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].ID)

	deleted, err = svc.Delete(ctx, removed.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPharmacyFlow_DutyIsNotGuard(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryPharmacyService(t)

	created, err := svc.Create(ctx, &usecase.CreatePharmacyInput{
		Name:      "Test Pharmacy",
		Email:     "test@example.com",
		Latitude:  40.7128,
		Longitude: -74.006,
	})
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", created.Email)
	assert.False(t, created.IsOnGard)

	_, err = svc.Create(ctx, &usecase.CreatePharmacyInput{
		Name:      "Copy",
		Email:     "test@example.com",
		Latitude:  40.7128,
		Longitude: -74.006,
	})
	require.ErrorIs(t, err, domainerrors.ErrPharmacyAlreadyExists)

	onDuty, err := svc.SetOnDuty(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, onDuty)
	assert.True(t, onDuty.IsOnDuty)

	guards, err := svc.FindGuardPharmacies(ctx, &usecase.GuardSearchInput{Latitude: 40.7128, Longitude: -74.006})
	require.NoError(t, err)
	assert.Empty(t, guards)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPharmacyFlow_UpdateAndSearch(t *testing.T) {
	ctx := context.Background()
	svc := newInMemoryPharmacyService(t)

	atlas, err := svc.Create(ctx, &usecase.CreatePharmacyInput{Name: "Atlas", Email: "atlas@example.com", City: "Casablanca", Latitude: 33.57, Longitude: -7.59})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &usecase.CreatePharmacyInput{Name: "Nour", Email: "nour@example.com", City: "Rabat", Latitude: 34.02, Longitude: -6.84})
	require.NoError(t, err)

	_, err = svc.Update(ctx, atlas.ID, &usecase.UpdatePharmacyInput{Email: ptr("nour@example.com")})
	require.ErrorIs(t, err, domainerrors.ErrPharmacyAlreadyExists)

	updated, err := svc.Update(ctx, atlas.ID, &usecase.UpdatePharmacyInput{Phone: ptr("0522000000")})
	require.NoError(t, err)
	assert.Equal(t, "0522000000", updated.Phone)
	assert.Equal(t, "atlas@example.com", updated.Email)

	everything, err := svc.Search(ctx, &usecase.SearchInput{})
	require.NoError(t, err)
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, everything, len(all))

	byText, err := svc.Search(ctx, &usecase.SearchInput{Query: "rabat"})
	require.NoError(t, err)
	require.Len(t, byText, 1)
	assert.Equal(t, "Nour", byText[0].Name)

	near, err := svc.Search(ctx, &usecase.SearchInput{Latitude: ptr(34.0), Longitude: ptr(-6.8)})
	require.NoError(t, err)
	require.Len(t, near, 2)
	assert.Equal(t, "Nour", near[0].Name)
	for _, match := range near {
		require.NotNil(t, match.Distance)
		assert.GreaterOrEqual(t, *match.Distance, 0.0)
	}
}
