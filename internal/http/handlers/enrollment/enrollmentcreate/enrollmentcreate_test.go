package enrollmentcreate_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/sport-complex/internal/http/handlers/enrollment/enrollmentcreate"
	"github.com/magabrotheeeer/sport-complex/internal/http/middlewarectx"
	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Create(ctx context.Context, userID, classID int) (*models.Enrollment, error) {
	args := m.Called(ctx, userID, classID)
	enrollment, _ := args.Get(0).(*models.Enrollment)
	return enrollment, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		ctxUserID      any
		mockEnrollment *models.Enrollment
		mockErr        error
		mockCalled     bool
		wantStatusCode int
	}{
		{
			name:      "successful enrollment",
			body:      `{"class_id":5}`,
			ctxUserID: 1,
			mockEnrollment: &models.Enrollment{
				ID:         10,
				UserID:     1,
				ClassID:    5,
				EnrolledAt: time.Now(),
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid json",
			body:           `{"class_id":`,
			ctxUserID:      1,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing class id",
			body:           `{}`,
			ctxUserID:      1,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "no user in context",
			body:           `{"class_id":5}`,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "class not found",
			body:           `{"class_id":999}`,
			ctxUserID:      1,
			mockErr:        errs.ErrNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "already enrolled",
			body:           `{"class_id":5}`,
			ctxUserID:      1,
			mockErr:        errs.ErrAlreadyEnrolled,
			mockCalled:     true,
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "internal error",
			body:           `{"class_id":5}`,
			ctxUserID:      1,
			mockErr:        assert.AnError,
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockCalled {
				serviceMock.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockEnrollment, tt.mockErr).Once()
			}

			handler := enrollmentcreate.New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollments", bytes.NewBufferString(tt.body))
			if tt.ctxUserID != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.UserID, tt.ctxUserID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			serviceMock.AssertExpectations(t)
		})
	}
}
