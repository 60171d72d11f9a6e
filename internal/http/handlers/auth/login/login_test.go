package login_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/sport-complex/internal/lib/cookie"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, password string) (*models.TokenPair, *models.SanitizedUser, error) {
	args := m.Called(ctx, email, password)
	pair, _ := args.Get(0).(*models.TokenPair)
	user, _ := args.Get(1).(*models.SanitizedUser)
	return pair, user, args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockPair       *models.TokenPair
		mockUser       *models.SanitizedUser
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantCookie     bool
	}{
		{
			name: "successful login",
			body: `{"email":"user@example.com","password":"password123"}`,
			mockPair: &models.TokenPair{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			},
			mockUser: &models.SanitizedUser{
				ID:    1,
				Email: "user@example.com",
				Role:  models.RoleUser,
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantCookie:     true,
		},
		{
			name:           "invalid json",
			body:           `{"email":`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			body:           `{"email":"user@example.com"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid email format",
			body:           `{"email":"not-an-email","password":"password123"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "wrong credentials",
			body:           `{"email":"user@example.com","password":"wrongpass"}`,
			mockErr:        errs.ErrInvalidCredentials,
			mockCalled:     true,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "internal error",
			body:           `{"email":"user@example.com","password":"password123"}`,
			mockErr:        assert.AnError,
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockCalled {
				serviceMock.On("Login", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockPair, tt.mockUser, tt.mockErr).Once()
			}

			handler := login.New(newNoopLogger(), serviceMock, 168*time.Hour)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			serviceMock.AssertExpectations(t)

			if tt.wantCookie {
				cookies := rec.Result().Cookies()
				require.Len(t, cookies, 1)
				c := cookies[0]
				assert.Equal(t, cookie.RefreshTokenName, c.Name)
				assert.Equal(t, "refresh-token", c.Value)
				assert.True(t, c.HttpOnly)
				assert.True(t, c.Secure)
				assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
				assert.Equal(t, cookie.RefreshTokenPath, c.Path)

				var resp struct {
					Status string `json:"status"`
					Data   struct {
						AccessToken string `json:"access_token"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "access-token", resp.Data.AccessToken)
				// Refresh-токен не попадает в тело ответа.
				assert.NotContains(t, rec.Body.String(), "refresh-token")
			}
		})
	}
}
