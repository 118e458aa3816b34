package handler

import (
	"log/slog"
	"net/http"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/response"
	domainerrors "github.com/Bilal-EZ-ZAIM/devopes/internal/domain/errors"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const contentTypePNG = "image/png"

// PharmacyHandlerParams holds dependencies for PharmacyHandler, injected by Fx.
type PharmacyHandlerParams struct {
	fx.In

	PharmacyUC usecase.PharmacyUsecase
	Logger     *slog.Logger
}

// PharmacyHandler holds dependencies for pharmacy directory handlers
type PharmacyHandler struct {
	pharmacyUC usecase.PharmacyUsecase
	logger     *slog.Logger
}

// NewPharmacyHandler is the constructor for PharmacyHandler
func NewPharmacyHandler(params PharmacyHandlerParams) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUC: params.PharmacyUC,
		logger:     params.Logger,
	}
}

// CreatePharmacyRequest represents the request body for creating a pharmacy
type CreatePharmacyRequest struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required"`
	City            string   `json:"city" validate:"required"`
	DetailedAddress string   `json:"detailedAddress" validate:"required"`
	Latitude        *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	IsOnDuty        bool     `json:"isOnDuty"`
	IsOnGard        bool     `json:"isOnGard"`
	Description     string   `json:"description,omitempty"`
	Image           string   `json:"image,omitempty"`
	ImageMobile     string   `json:"imageMobile,omitempty"`
}

// UpdatePharmacyRequest represents the request body for a partial pharmacy update
type UpdatePharmacyRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Email           *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string  `json:"phone,omitempty"`
	City            *string  `json:"city,omitempty"`
	DetailedAddress *string  `json:"detailedAddress,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	IsOnDuty        *bool    `json:"isOnDuty,omitempty"`
	IsOnGard        *bool    `json:"isOnGard,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Image           *string  `json:"image,omitempty"`
	ImageMobile     *string  `json:"imageMobile,omitempty"`
}

// Create handles registering a new pharmacy
func (h *PharmacyHandler) Create(c echo.Context) error {
	var req CreatePharmacyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pharmacy input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pharmacy, err := h.pharmacyUC.Create(c.Request().Context(), &usecase.CreatePharmacyInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		City:            req.City,
		DetailedAddress: req.DetailedAddress,
		Latitude:        *req.Latitude,
		Longitude:       *req.Longitude,
		IsOnDuty:        req.IsOnDuty,
		IsOnGard:        req.IsOnGard,
		Description:     req.Description,
		Image:           req.Image,
		ImageMobile:     req.ImageMobile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pharmacy)
}

// List handles listing every pharmacy
func (h *PharmacyHandler) List(c echo.Context) error {
	pharmacies, err := h.pharmacyUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pharmacies)
}

// Get handles fetching a single pharmacy
func (h *PharmacyHandler) Get(c echo.Context) error {
	pharmacy, err := h.pharmacyUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if pharmacy == nil {
		return errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	return response.Success(c, http.StatusOK, pharmacy)
}

// Update handles a partial pharmacy update
func (h *PharmacyHandler) Update(c echo.Context) error {
	var req UpdatePharmacyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pharmacy input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pharmacy, err := h.pharmacyUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdatePharmacyInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		City:            req.City,
		DetailedAddress: req.DetailedAddress,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		IsOnDuty:        req.IsOnDuty,
		IsOnGard:        req.IsOnGard,
		Description:     req.Description,
		Image:           req.Image,
		ImageMobile:     req.ImageMobile,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if pharmacy == nil {
		return errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	return response.Success(c, http.StatusOK, pharmacy)
}

// Delete handles removing a pharmacy
func (h *PharmacyHandler) Delete(c echo.Context) error {
	deleted, err := h.pharmacyUC.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deleted": true})
}

// SetOnDuty handles putting a pharmacy on duty
func (h *PharmacyHandler) SetOnDuty(c echo.Context) error {
	pharmacy, err := h.pharmacyUC.SetOnDuty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if pharmacy == nil {
		return errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	return response.Success(c, http.StatusOK, pharmacy)
}

// FindGuard handles listing guard pharmacies nearest to a point
func (h *PharmacyHandler) FindGuard(c echo.Context) error {
	var input usecase.GuardSearchInput
	err := echo.QueryParamsBinder(c).
		MustFloat64("latitude", &input.Latitude).
		MustFloat64("longitude", &input.Longitude).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "latitude and longitude query parameters are required numbers")
	}

	matches, err := h.pharmacyUC.FindGuardPharmacies(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, matches)
}

// Search handles free-text and proximity search
func (h *PharmacyHandler) Search(c echo.Context) error {
	var (
		input     usecase.SearchInput
		latitude  float64
		longitude float64
	)

	err := echo.QueryParamsBinder(c).
		String("query", &input.Query).
		Float64("latitude", &latitude).
		Float64("longitude", &longitude).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "latitude and longitude must be numbers")
	}

	// An empty value counts as absent.
	if c.QueryParam("latitude") != "" {
		input.Latitude = &latitude
	}
	if c.QueryParam("longitude") != "" {
		input.Longitude = &longitude
	}

	matches, err := h.pharmacyUC.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, matches)
}

// QRCode handles rendering the PNG QR code of a pharmacy
func (h *PharmacyHandler) QRCode(c echo.Context) error {
	png, err := h.pharmacyUC.GenerateQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if png == nil {
		return errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	return c.Blob(http.StatusOK, contentTypePNG, png)
}
