package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "github.com/Bilal-EZ-ZAIM/devopes/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "wrapped app error",
			err:          errors.WithStack(domainerrors.ErrPharmacyAlreadyExists),
			wantStatus:   http.StatusConflict,
			wantContains: []string{`"code":"PHARMACY_ALREADY_EXISTS"`, "Pharmacy with this email already exists."},
		},
		{
			name:         "validation details are exposed",
			err:          domainerrors.ErrValidationFailed.WithDetails("email is required"),
			wantStatus:   http.StatusBadRequest,
			wantContains: []string{`"details":"email is required"`},
		},
		{
			name:         "echo http error",
			err:          echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus:   http.StatusMethodNotAllowed,
			wantContains: []string{`"code":"HTTP_ERROR"`},
		},
		{
			name:         "unknown error",
			err:          errors.New("pq: password authentication failed"),
			wantStatus:   http.StatusInternalServerError,
			wantContains: []string{`"code":"INTERNAL_ERROR"`},
			wantMissing:  []string{"password authentication"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(newDiscardLogger())
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/pharmacies", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, s := range tt.wantContains {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tt.wantMissing {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}
