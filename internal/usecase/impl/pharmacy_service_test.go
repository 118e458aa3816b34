package impl

import (
	"context"
	"testing"

	deliverycontext "github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/context"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
	domainerrors "github.com/Bilal-EZ-ZAIM/devopes/internal/domain/errors"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/repository"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/service"
	mockRepo "github.com/Bilal-EZ-ZAIM/devopes/internal/mocks/repository"
	mockSvc "github.com/Bilal-EZ-ZAIM/devopes/internal/mocks/service"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pharmacyServiceFixtures struct {
	service      usecase.PharmacyUsecase
	pharmacyRepo *mockRepo.MockPharmacyRepository
	publisher    *mockSvc.MockEventPublisher
	qrService    *mockSvc.MockQRCodeService
}

func createTestPharmacyService(t *testing.T, fields []string, guardMaxDistance float64) pharmacyServiceFixtures {
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service, err := NewPharmacyService(PharmacyServiceParams{
		PharmacyRepo: pharmacyRepo,
		Publisher:    publisher,
		QRService:    qrService,
		Config:       newTestConfig(fields, guardMaxDistance),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return pharmacyServiceFixtures{
		service:      service,
		pharmacyRepo: pharmacyRepo,
		publisher:    publisher,
		qrService:    qrService,
	}
}

func samplePharmacy() *entity.Pharmacy {
	return &entity.Pharmacy{
		ID:              "ph-1",
		Name:            "Pharmacie Atlas",
		Email:           "atlas@example.com",
		Phone:           "+212500000000",
		City:            "Rabat",
		DetailedAddress: "12 Avenue Mohammed V",
		Latitude:        34.0209,
		Longitude:       -6.8416,
		IsOnGard:        true,
	}
}

func TestNewPharmacyService_RejectsUnknownSearchField(t *testing.T) {
	_, err := NewPharmacyService(PharmacyServiceParams{
		Config: newTestConfig([]string{"name", "zipcode"}, 0),
		Logger: newDiscardLogger(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "zipcode")
}

func TestNewPharmacyService_RejectsNegativeGuardDistance(t *testing.T) {
	_, err := NewPharmacyService(PharmacyServiceParams{
		Config: newTestConfig(nil, -1),
		Logger: newDiscardLogger(),
	})

	require.Error(t, err)
}

func TestPharmacyService_Create_Success(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	ctx := context.Background()
	input := &usecase.CreatePharmacyInput{
		Name:      "Pharmacie Atlas",
		Email:     "atlas@example.com",
		City:      "Rabat",
		Latitude:  34.0209,
		Longitude: -6.8416,
		IsOnGard:  true,
	}

	fx.pharmacyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Pharmacy")).
		Run(func(ctx context.Context, pharmacy *entity.Pharmacy) {
			assert.Equal(t, input.Email, pharmacy.Email)
			assert.True(t, pharmacy.IsOnGard)
			pharmacy.ID = "ph-1"
		}).
		Return(nil)

	pharmacy, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ph-1", pharmacy.ID)
	assert.Equal(t, "Rabat", pharmacy.City)
}

func TestPharmacyService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	fx.pharmacyRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pharmacy")).
		Return(errors.WithStack(repository.ErrPharmacyEmailTaken))

	pharmacy, err := fx.service.Create(context.Background(), &usecase.CreatePharmacyInput{Email: "atlas@example.com"})

	assert.Nil(t, pharmacy)
	require.ErrorIs(t, err, domainerrors.ErrPharmacyAlreadyExists)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "Pharmacy with this email already exists.", appErr.Message())
}

func TestPharmacyService_Create_InvalidCoordinates(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	_, err := fx.service.Create(context.Background(), &usecase.CreatePharmacyInput{Latitude: 120})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.pharmacyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPharmacyService_List(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	want := []*entity.Pharmacy{samplePharmacy()}
	fx.pharmacyRepo.EXPECT().FindAll(mock.Anything).Return(want, nil)

	got, err := fx.service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPharmacyService_List_StoreErrorPropagates(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	storeErr := errors.New("server selection timeout")
	fx.pharmacyRepo.EXPECT().FindAll(mock.Anything).Return(nil, storeErr)

	_, err := fx.service.List(context.Background())

	require.ErrorIs(t, err, storeErr)
	assert.Equal(t, storeErr.Error(), err.Error())
}

func TestPharmacyService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		want := samplePharmacy()
		fx.pharmacyRepo.EXPECT().FindByID(mock.Anything, "ph-1").Return(want, nil)

		got, err := fx.service.GetByID(context.Background(), "ph-1")

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("absent", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		fx.pharmacyRepo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, repository.ErrPharmacyNotFound)

		got, err := fx.service.GetByID(context.Background(), "missing")

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPharmacyService_Update(t *testing.T) {
	t.Run("applies patch", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		updated := samplePharmacy()
		updated.Phone = "+212611111111"

		fx.pharmacyRepo.EXPECT().
			Update(mock.Anything, "ph-1", mock.AnythingOfType("*entity.PharmacyPatch")).
			Run(func(_ context.Context, _ string, patch *entity.PharmacyPatch) {
				require.NotNil(t, patch.Phone)
				assert.Equal(t, "+212611111111", *patch.Phone)
				assert.Nil(t, patch.Name)
			}).
			Return(updated, nil)

		got, err := fx.service.Update(context.Background(), "ph-1", &usecase.UpdatePharmacyInput{Phone: ptr("+212611111111")})

		require.NoError(t, err)
		assert.Equal(t, "+212611111111", got.Phone)
	})

	t.Run("empty patch returns current record", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		current := samplePharmacy()
		fx.pharmacyRepo.EXPECT().FindByID(mock.Anything, "ph-1").Return(current, nil)

		got, err := fx.service.Update(context.Background(), "ph-1", &usecase.UpdatePharmacyInput{})

		require.NoError(t, err)
		assert.Same(t, current, got)
		fx.pharmacyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("absent", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		fx.pharmacyRepo.EXPECT().
			Update(mock.Anything, "missing", mock.Anything).
			Return(nil, errors.WithStack(repository.ErrPharmacyNotFound))

		got, err := fx.service.Update(context.Background(), "missing", &usecase.UpdatePharmacyInput{Name: ptr("x")})

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("email taken by another pharmacy", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		fx.pharmacyRepo.EXPECT().
			Update(mock.Anything, "ph-1", mock.Anything).
			Return(nil, repository.ErrPharmacyEmailTaken)

		_, err := fx.service.Update(context.Background(), "ph-1", &usecase.UpdatePharmacyInput{Email: ptr("taken@example.com")})

		require.ErrorIs(t, err, domainerrors.ErrPharmacyAlreadyExists)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)

		_, err := fx.service.Update(context.Background(), "ph-1", &usecase.UpdatePharmacyInput{Latitude: ptr(91.0)})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPharmacyService_Delete(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		fx.pharmacyRepo.EXPECT().Delete(mock.Anything, "ph-1").Return(nil)

		deleted, err := fx.service.Delete(context.Background(), "ph-1")

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("absent", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		fx.pharmacyRepo.EXPECT().Delete(mock.Anything, "missing").Return(repository.ErrPharmacyNotFound)

		deleted, err := fx.service.Delete(context.Background(), "missing")

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestPharmacyService_SetOnDuty_PublishesEvent(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	ctx = deliverycontext.WithUserID(ctx, "user-1")
	onDuty := samplePharmacy()
	onDuty.IsOnDuty = true

	fx.pharmacyRepo.EXPECT().
		Update(ctx, "ph-1", mock.AnythingOfType("*entity.PharmacyPatch")).
		Run(func(_ context.Context, _ string, patch *entity.PharmacyPatch) {
			require.NotNil(t, patch.IsOnDuty)
			assert.True(t, *patch.IsOnDuty)
		}).
		Return(onDuty, nil)
	fx.publisher.EXPECT().
		PublishPharmacyDutyEvent(ctx, mock.AnythingOfType("*service.PharmacyDutyEvent")).
		Run(func(_ context.Context, event *service.PharmacyDutyEvent) {
			assert.Equal(t, "req-42", event.RequestID)
			assert.Equal(t, "user-1", event.ActorID)
			assert.Equal(t, "ph-1", event.PharmacyID)
			assert.Equal(t, "Rabat", event.City)
			assert.True(t, event.IsOnGard)
			assert.NotEmpty(t, event.EventID)
			assert.False(t, event.OccurredAt.IsZero())
		}).
		Return(nil)

	got, err := fx.service.SetOnDuty(ctx, "ph-1")

	require.NoError(t, err)
	assert.True(t, got.IsOnDuty)
}

func TestPharmacyService_SetOnDuty_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	onDuty := samplePharmacy()
	onDuty.IsOnDuty = true
	fx.pharmacyRepo.EXPECT().Update(mock.Anything, "ph-1", mock.Anything).Return(onDuty, nil)
	fx.publisher.EXPECT().PublishPharmacyDutyEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	got, err := fx.service.SetOnDuty(context.Background(), "ph-1")

	require.NoError(t, err)
	assert.Same(t, onDuty, got)
}

func TestPharmacyService_SetOnDuty_Absent(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	fx.pharmacyRepo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, repository.ErrPharmacyNotFound)

	got, err := fx.service.SetOnDuty(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, got)
	fx.publisher.AssertNotCalled(t, "PublishPharmacyDutyEvent", mock.Anything, mock.Anything)
}

func TestPharmacyService_FindGuardPharmacies(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 5000)

	distance := 120.5
	want := []*entity.PharmacyMatch{{Pharmacy: samplePharmacy(), Distance: &distance}}

	fx.pharmacyRepo.EXPECT().
		Aggregate(mock.Anything, mock.AnythingOfType("*repository.PharmacyQuery")).
		Run(func(_ context.Context, query *repository.PharmacyQuery) {
			require.NotNil(t, query.Near)
			assert.Equal(t, 34.02, query.Near.Latitude)
			assert.Equal(t, -6.84, query.Near.Longitude)
			assert.True(t, query.OnGuardOnly)
			assert.Equal(t, 5000.0, query.MaxDistance)
			assert.Empty(t, query.Text)
		}).
		Return(want, nil)

	got, err := fx.service.FindGuardPharmacies(context.Background(), &usecase.GuardSearchInput{Latitude: 34.02, Longitude: -6.84})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPharmacyService_FindGuardPharmacies_InvalidCoordinates(t *testing.T) {
	fx := createTestPharmacyService(t, nil, 0)

	_, err := fx.service.FindGuardPharmacies(context.Background(), &usecase.GuardSearchInput{Latitude: 10, Longitude: 200})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPharmacyService_Search(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		input  *usecase.SearchInput
		check  func(t *testing.T, query *repository.PharmacyQuery)
	}{
		{
			name:  "no criteria",
			input: &usecase.SearchInput{},
			check: func(t *testing.T, query *repository.PharmacyQuery) {
				assert.Nil(t, query.Near)
				assert.Empty(t, query.Text)
				assert.False(t, query.OnGuardOnly)
			},
		},
		{
			name:  "query only uses default fields",
			input: &usecase.SearchInput{Query: "  atlas "},
			check: func(t *testing.T, query *repository.PharmacyQuery) {
				assert.Nil(t, query.Near)
				assert.Equal(t, "atlas", query.Text)
				assert.Equal(t, []entity.PharmacyField{
					entity.PharmacyFieldName,
					entity.PharmacyFieldCity,
					entity.PharmacyFieldDetailedAddress,
				}, query.TextFields)
			},
		},
		{
			name:   "query uses configured fields",
			fields: []string{"name", "phone"},
			input:  &usecase.SearchInput{Query: "0522"},
			check: func(t *testing.T, query *repository.PharmacyQuery) {
				assert.Equal(t, []entity.PharmacyField{entity.PharmacyFieldName, entity.PharmacyFieldPhone}, query.TextFields)
			},
		},
		{
			name:  "coordinates only",
			input: &usecase.SearchInput{Latitude: ptr(33.57), Longitude: ptr(-7.59)},
			check: func(t *testing.T, query *repository.PharmacyQuery) {
				require.NotNil(t, query.Near)
				assert.Equal(t, entity.Coordinate{Latitude: 33.57, Longitude: -7.59}, *query.Near)
				assert.Empty(t, query.Text)
				assert.Zero(t, query.MaxDistance)
			},
		},
		{
			name:  "query and coordinates",
			input: &usecase.SearchInput{Query: "casa", Latitude: ptr(33.57), Longitude: ptr(-7.59)},
			check: func(t *testing.T, query *repository.PharmacyQuery) {
				require.NotNil(t, query.Near)
				assert.Equal(t, "casa", query.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPharmacyService(t, tt.fields, 0)
			fx.pharmacyRepo.EXPECT().
				Aggregate(mock.Anything, mock.AnythingOfType("*repository.PharmacyQuery")).
				Run(func(_ context.Context, query *repository.PharmacyQuery) {
					tt.check(t, query)
				}).
				Return([]*entity.PharmacyMatch{}, nil)

			got, err := fx.service.Search(context.Background(), tt.input)

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestPharmacyService_Search_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SearchInput
	}{
		{name: "latitude without longitude", input: &usecase.SearchInput{Latitude: ptr(33.0)}},
		{name: "longitude without latitude", input: &usecase.SearchInput{Longitude: ptr(-7.0)}},
		{name: "latitude out of range", input: &usecase.SearchInput{Latitude: ptr(-91.0), Longitude: ptr(0.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPharmacyService(t, nil, 0)

			_, err := fx.service.Search(context.Background(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			fx.pharmacyRepo.AssertNotCalled(t, "Aggregate", mock.Anything, mock.Anything)
		})
	}
}

func TestPharmacyService_GenerateQRCode(t *testing.T) {
	t.Run("existing pharmacy", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		fx.pharmacyRepo.EXPECT().FindByID(mock.Anything, "ph-1").Return(samplePharmacy(), nil)
		fx.qrService.EXPECT().GeneratePharmacyQR("ph-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.GenerateQRCode(context.Background(), "ph-1")

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("absent pharmacy", func(t *testing.T) {
		fx := createTestPharmacyService(t, nil, 0)
		fx.pharmacyRepo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, repository.ErrPharmacyNotFound)

		png, err := fx.service.GenerateQRCode(context.Background(), "missing")

		require.NoError(t, err)
		assert.Nil(t, png)
		fx.qrService.AssertNotCalled(t, "GeneratePharmacyQR", mock.Anything)
	})
}
