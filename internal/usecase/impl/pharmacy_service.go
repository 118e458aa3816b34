package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Bilal-EZ-ZAIM/devopes/config"
	deliverycontext "github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/context"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
	domainerrors "github.com/Bilal-EZ-ZAIM/devopes/internal/domain/errors"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/repository"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/service"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var defaultTextFields = []entity.PharmacyField{
	entity.PharmacyFieldName,
	entity.PharmacyFieldCity,
	entity.PharmacyFieldDetailedAddress,
}

// pharmacyService implements the PharmacyUsecase interface.
type pharmacyService struct {
	pharmacyRepo     repository.PharmacyRepository
	publisher        service.EventPublisher
	qrService        service.QRCodeService
	textFields       []entity.PharmacyField
	guardMaxDistance float64
	logger           *slog.Logger
}

// PharmacyServiceParams holds dependencies for PharmacyService, injected by Fx.
type PharmacyServiceParams struct {
	fx.In

	PharmacyRepo repository.PharmacyRepository
	Publisher    service.EventPublisher
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPharmacyService creates the pharmacy use case. It fails when a configured
// search field does not name a searchable pharmacy attribute.
func NewPharmacyService(params PharmacyServiceParams) (usecase.PharmacyUsecase, error) {
	srv := &pharmacyService{
		pharmacyRepo: params.PharmacyRepo,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		textFields:   defaultTextFields,
		logger:       params.Logger,
	}

	if params.Config == nil || params.Config.Search == nil {
		return srv, nil
	}

	if len(params.Config.Search.Fields) > 0 {
		fields := make([]entity.PharmacyField, 0, len(params.Config.Search.Fields))
		for _, name := range params.Config.Search.Fields {
			field, ok := entity.ParsePharmacyField(name)
			if !ok {
				return nil, errors.Errorf("unsupported search field %q", name)
			}
			fields = append(fields, field)
		}
		srv.textFields = fields
	}

	if params.Config.Search.GuardMaxDistance < 0 {
		return nil, errors.Errorf("search.guardMaxDistance must not be negative, got %v", params.Config.Search.GuardMaxDistance)
	}
	srv.guardMaxDistance = params.Config.Search.GuardMaxDistance

	return srv, nil
}

func (srv *pharmacyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new pharmacy. A taken email is reported as a conflict and nothing is stored.
func (srv *pharmacyService) Create(ctx context.Context, input *usecase.CreatePharmacyInput) (*entity.Pharmacy, error) {
	if err := validateCoordinate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	pharmacy := &entity.Pharmacy{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		City:            input.City,
		DetailedAddress: input.DetailedAddress,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		IsOnDuty:        input.IsOnDuty,
		IsOnGard:        input.IsOnGard,
		Description:     input.Description,
		Image:           input.Image,
		ImageMobile:     input.ImageMobile,
	}

	if err := srv.pharmacyRepo.Create(ctx, pharmacy); err != nil {
		if errors.Is(err, repository.ErrPharmacyEmailTaken) {
			return nil, domainerrors.ErrPharmacyAlreadyExists
		}

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Pharmacy created", slog.String("pharmacyID", pharmacy.ID))

	return pharmacy, nil
}

// List returns every pharmacy in store order.
func (srv *pharmacyService) List(ctx context.Context) ([]*entity.Pharmacy, error) {
	pharmacies, err := srv.pharmacyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return pharmacies, nil
}

// GetByID returns the pharmacy, or nil when none has this ID.
func (srv *pharmacyService) GetByID(ctx context.Context, id string) (*entity.Pharmacy, error) {
	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPharmacyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return pharmacy, nil
}

// Update merges the provided fields into the pharmacy and returns the stored result.
func (srv *pharmacyService) Update(ctx context.Context, id string, input *usecase.UpdatePharmacyInput) (*entity.Pharmacy, error) {
	patch := toPharmacyPatch(input)
	if patch.IsEmpty() {
		return srv.GetByID(ctx, id)
	}

	if patch.Latitude != nil && (*patch.Latitude < -90 || *patch.Latitude > 90) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude must be within [-90, 90]")
	}
	if patch.Longitude != nil && (*patch.Longitude < -180 || *patch.Longitude > 180) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("longitude must be within [-180, 180]")
	}

	return srv.applyPatch(ctx, id, patch)
}

// Delete removes the pharmacy and reports whether it existed.
func (srv *pharmacyService) Delete(ctx context.Context, id string) (bool, error) {
	err := srv.pharmacyRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPharmacyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.WithStack(err)
	}

	srv.log(ctx).Info("Pharmacy deleted", slog.String("pharmacyID", id))

	return true, nil
}

// SetOnDuty marks the pharmacy as on duty and announces the change.
func (srv *pharmacyService) SetOnDuty(ctx context.Context, id string) (*entity.Pharmacy, error) {
	onDuty := true

	pharmacy, err := srv.applyPatch(ctx, id, &entity.PharmacyPatch{IsOnDuty: &onDuty})
	if err != nil || pharmacy == nil {
		return pharmacy, err
	}

	srv.publishDutyEvent(ctx, pharmacy)

	return pharmacy, nil
}

// FindGuardPharmacies returns guard pharmacies ordered by distance from the given point.
func (srv *pharmacyService) FindGuardPharmacies(ctx context.Context, input *usecase.GuardSearchInput) ([]*entity.PharmacyMatch, error) {
	if err := validateCoordinate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	matches, err := srv.pharmacyRepo.Aggregate(ctx, &repository.PharmacyQuery{
		Near:        &entity.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude},
		MaxDistance: srv.guardMaxDistance,
		OnGuardOnly: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return matches, nil
}

// Search filters pharmacies by free text and ranks them by distance when a point is given.
func (srv *pharmacyService) Search(ctx context.Context, input *usecase.SearchInput) ([]*entity.PharmacyMatch, error) {
	query := &repository.PharmacyQuery{}

	if text := strings.TrimSpace(input.Query); text != "" {
		query.Text = text
		query.TextFields = srv.textFields
	}

	switch {
	case input.Latitude == nil && input.Longitude == nil:
	case input.Latitude == nil || input.Longitude == nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be provided together")
	default:
		if err := validateCoordinate(*input.Latitude, *input.Longitude); err != nil {
			return nil, err
		}
		query.Near = &entity.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}

	matches, err := srv.pharmacyRepo.Aggregate(ctx, query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return matches, nil
}

// GenerateQRCode renders a PNG QR code for the pharmacy, or nil when it does not exist.
func (srv *pharmacyService) GenerateQRCode(ctx context.Context, id string) ([]byte, error) {
	pharmacy, err := srv.GetByID(ctx, id)
	if err != nil || pharmacy == nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePharmacyQR(pharmacy.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate qr code")
	}

	return png, nil
}

func (srv *pharmacyService) applyPatch(ctx context.Context, id string, patch *entity.PharmacyPatch) (*entity.Pharmacy, error) {
	pharmacy, err := srv.pharmacyRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPharmacyNotFound):
			return nil, nil
		case errors.Is(err, repository.ErrPharmacyEmailTaken):
			return nil, domainerrors.ErrPharmacyAlreadyExists
		default:
			return nil, errors.WithStack(err)
		}
	}

	return pharmacy, nil
}

func (srv *pharmacyService) publishDutyEvent(ctx context.Context, pharmacy *entity.Pharmacy) {
	event := &service.PharmacyDutyEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ActorID:    deliverycontext.GetUserIDFromContext(ctx),
		EventID:    uuid.New().String(),
		PharmacyID: pharmacy.ID,
		Name:       pharmacy.Name,
		City:       pharmacy.City,
		Latitude:   pharmacy.Latitude,
		Longitude:  pharmacy.Longitude,
		IsOnGard:   pharmacy.IsOnGard,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishPharmacyDutyEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish duty event",
			slog.String("pharmacyID", pharmacy.ID),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

func validateCoordinate(latitude, longitude float64) error {
	if !(entity.Coordinate{Latitude: latitude, Longitude: longitude}).Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	return nil
}

func toPharmacyPatch(input *usecase.UpdatePharmacyInput) *entity.PharmacyPatch {
	if input == nil {
		return nil
	}

	return &entity.PharmacyPatch{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		City:            input.City,
		DetailedAddress: input.DetailedAddress,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		IsOnDuty:        input.IsOnDuty,
		IsOnGard:        input.IsOnGard,
		Description:     input.Description,
		Image:           input.Image,
		ImageMobile:     input.ImageMobile,
	}
}
