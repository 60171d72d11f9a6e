package refresh_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/sport-complex/internal/lib/cookie"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	pair, _ := args.Get(0).(*models.TokenPair)
	return pair, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		cookieValue    string
		mockPair       *models.TokenPair
		mockErr        error
		mockCalled     bool
		wantStatusCode int
	}{
		{
			name:        "successful rotation",
			cookieValue: "old-refresh-token",
			mockPair: &models.TokenPair{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing cookie",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "unverifiable token",
			cookieValue:    "garbage",
			mockErr:        errs.ErrInvalidCredentials,
			mockCalled:     true,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "revoked token",
			cookieValue:    "revoked-token",
			mockErr:        errs.ErrAccessDenied,
			mockCalled:     true,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "replayed token",
			cookieValue:    "replayed-token",
			mockErr:        errs.ErrInvalidRefreshToken,
			mockCalled:     true,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "internal error",
			cookieValue:    "some-token",
			mockErr:        assert.AnError,
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockCalled {
				serviceMock.On("Refresh", mock.Anything, tt.cookieValue).
					Return(tt.mockPair, tt.mockErr).Once()
			}

			handler := refresh.New(newNoopLogger(), serviceMock, 168*time.Hour)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
			if tt.cookieValue != "" {
				req.AddCookie(&http.Cookie{Name: cookie.RefreshTokenName, Value: tt.cookieValue})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			serviceMock.AssertExpectations(t)

			if tt.wantStatusCode == http.StatusOK {
				cookies := rec.Result().Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, "new-refresh-token", cookies[0].Value)
				assert.Contains(t, rec.Body.String(), "new-access-token")
				assert.NotContains(t, rec.Body.String(), "new-refresh-token")
			}
		})
	}
}
