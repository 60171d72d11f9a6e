package notifier

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sport-complex/internal/models"
)

type SenderMock struct {
	mock.Mock
}

func (m *SenderMock) SendToAdmin(adminID int, message any) error {
	args := m.Called(adminID, message)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Handle_DeliversFormattedNotification(t *testing.T) {
	sender := new(SenderMock)
	service := New(newNoopLogger(), nil, sender)

	sender.On("SendToAdmin", 7, &models.EnrollmentNotification{
		Event:   "user.enrolled",
		Message: `User member@example.com enrolled in your class "morning yoga".`,
	}).Return(nil).Once()

	body, err := json.Marshal(models.UserEnrolledEvent{
		EventID:   "event-1",
		UserEmail: "member@example.com",
		ClassDesc: "morning yoga",
		AdminID:   7,
	})
	require.NoError(t, err)

	require.NoError(t, service.handle(body))
	sender.AssertExpectations(t)
}

func TestService_Handle_SkipsEventWithoutAdminID(t *testing.T) {
	sender := new(SenderMock)
	service := New(newNoopLogger(), nil, sender)

	body, err := json.Marshal(models.UserEnrolledEvent{
		EventID:   "event-2",
		UserEmail: "member@example.com",
		ClassDesc: "morning yoga",
	})
	require.NoError(t, err)

	require.NoError(t, service.handle(body))
	sender.AssertNotCalled(t, "SendToAdmin", mock.Anything, mock.Anything)
}

func TestService_Handle_MalformedBody(t *testing.T) {
	sender := new(SenderMock)
	service := New(newNoopLogger(), nil, sender)

	err := service.handle([]byte("not json"))
	assert.Error(t, err)
	sender.AssertNotCalled(t, "SendToAdmin", mock.Anything, mock.Anything)
}

func TestService_Handle_SenderError(t *testing.T) {
	sender := new(SenderMock)
	service := New(newNoopLogger(), nil, sender)

	sender.On("SendToAdmin", 7, mock.Anything).Return(errors.New("no route to client")).Once()

	body, err := json.Marshal(models.UserEnrolledEvent{
		EventID:   "event-3",
		UserEmail: "member@example.com",
		ClassDesc: "morning yoga",
		AdminID:   7,
	})
	require.NoError(t, err)

	assert.Error(t, service.handle(body))
}
