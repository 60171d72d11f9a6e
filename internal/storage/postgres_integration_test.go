package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

func TestStorage_Users_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	user, err := storage.CreateUser(ctx, "user@example.com", "hash", "user")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, "user@example.com", "hash2", "user")
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})

	t.Run("get by email and id", func(t *testing.T) {
		byEmail, err := storage.GetUserByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.Nil(t, byEmail.HashedRefreshToken)

		byID, err := storage.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", byID.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := storage.GetUserByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, errs.ErrNotFound)

		_, err = storage.GetUserByID(ctx, 99999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("update user", func(t *testing.T) {
		updated := &models.User{
			ID:           user.ID,
			Email:        "renamed@example.com",
			PasswordHash: "newhash",
			Role:         "admin",
		}
		require.NoError(t, storage.UpdateUser(ctx, updated))

		got, err := storage.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed@example.com", got.Email)
		assert.Equal(t, "admin", got.Role)

		missing := &models.User{ID: 99999, Email: "x@example.com", PasswordHash: "h", Role: "user"}
		assert.ErrorIs(t, storage.UpdateUser(ctx, missing), errs.ErrNotFound)
	})
}

func TestStorage_RefreshTokenRotation_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	verify := NewTestVerification(storage)

	user, err := storage.CreateUser(ctx, "rotate@example.com", "hash", "user")
	require.NoError(t, err)

	firstHash := "hash-of-first-token"
	require.NoError(t, storage.UpdateRefreshTokenHash(ctx, user.ID, &firstHash))
	verify.VerifyRefreshTokenHash(t, user.ID, &firstHash)

	t.Run("rotation with matching hash", func(t *testing.T) {
		err := storage.RotateRefreshTokenHash(ctx, user.ID, firstHash, "hash-of-second-token")
		require.NoError(t, err)
		second := "hash-of-second-token"
		verify.VerifyRefreshTokenHash(t, user.ID, &second)
	})

	t.Run("rotation with stale hash", func(t *testing.T) {
		// Повторная ротация по уже замененному хэшу не проходит.
		err := storage.RotateRefreshTokenHash(ctx, user.ID, firstHash, "hash-of-third-token")
		assert.ErrorIs(t, err, errs.ErrInvalidRefreshToken)
	})

	t.Run("logout clears hash", func(t *testing.T) {
		require.NoError(t, storage.UpdateRefreshTokenHash(ctx, user.ID, nil))
		verify.VerifyRefreshTokenHash(t, user.ID, nil)
	})
}

func TestStorage_Catalog_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	adminID := factory.CreateUser(t, "admin@example.com", "hash", "admin")

	sportID, err := storage.CreateSport(ctx, "yoga")
	require.NoError(t, err)

	t.Run("duplicate sport", func(t *testing.T) {
		_, err := storage.CreateSport(ctx, "yoga")
		assert.ErrorIs(t, err, errs.ErrSportExists)
	})

	t.Run("sports list is sorted", func(t *testing.T) {
		_, err := storage.CreateSport(ctx, "boxing")
		require.NoError(t, err)

		sports, err := storage.ListSports(ctx)
		require.NoError(t, err)
		require.Len(t, sports, 2)
		assert.Equal(t, "boxing", sports[0].Name)
		assert.Equal(t, "yoga", sports[1].Name)
	})

	classID, err := storage.CreateClass(ctx, &models.Class{
		SportID:     sportID,
		Description: "morning yoga",
		Duration:    60,
		CreatedBy:   adminID,
	})
	require.NoError(t, err)

	t.Run("class with unknown sport", func(t *testing.T) {
		_, err := storage.CreateClass(ctx, &models.Class{
			SportID:     99999,
			Description: "ghost class",
			Duration:    60,
			CreatedBy:   adminID,
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("get class includes sport name", func(t *testing.T) {
		class, err := storage.GetClass(ctx, classID)
		require.NoError(t, err)
		assert.Equal(t, "yoga", class.SportName)
		assert.Equal(t, adminID, class.CreatedBy)
	})

	t.Run("list classes filtered by sport names", func(t *testing.T) {
		all, err := storage.ListClasses(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		filtered, err := storage.ListClasses(ctx, []string{"yoga", "boxing"})
		require.NoError(t, err)
		assert.Len(t, filtered, 1)

		empty, err := storage.ListClasses(ctx, []string{"boxing"})
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("schedules by class", func(t *testing.T) {
		date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		factory.CreateSchedule(t, classID, date, 60)
		factory.CreateSchedule(t, classID, date.Add(24*time.Hour), 60)

		schedules, err := storage.ListSchedulesByClass(ctx, classID)
		require.NoError(t, err)
		require.Len(t, schedules, 2)
		assert.True(t, schedules[0].Date.Before(schedules[1].Date))
	})
}

func TestStorage_Enrollments_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)

	adminID := factory.CreateUser(t, "admin@example.com", "hash", "admin")
	userID := factory.CreateUser(t, "member@example.com", "hash", "user")
	sportID := factory.CreateSport(t, "swimming")
	classID := factory.CreateClass(t, sportID, "evening swim", 45, adminID)

	enrollment, err := storage.CreateEnrollment(ctx, userID, classID)
	require.NoError(t, err)
	assert.NotZero(t, enrollment.ID)
	assert.WithinDuration(t, time.Now(), enrollment.EnrolledAt, time.Minute)

	t.Run("duplicate enrollment", func(t *testing.T) {
		_, err := storage.CreateEnrollment(ctx, userID, classID)
		assert.ErrorIs(t, err, errs.ErrAlreadyEnrolled)
	})

	t.Run("enrollment into unknown class", func(t *testing.T) {
		_, err := storage.CreateEnrollment(ctx, userID, 99999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("lists join user email and class description", func(t *testing.T) {
		byUser, err := storage.ListEnrollmentsByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, byUser, 1)
		assert.Equal(t, "member@example.com", byUser[0].UserEmail)
		assert.Equal(t, "evening swim", byUser[0].ClassDesc)

		byClass, err := storage.ListEnrollmentsByClass(ctx, classID)
		require.NoError(t, err)
		require.Len(t, byClass, 1)

		all, err := storage.ListEnrollments(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("deleting user cascades to enrollments", func(t *testing.T) {
		require.NoError(t, storage.DeleteUser(ctx, userID))
		verify.VerifyUserDeleted(t, userID)
		verify.VerifyEnrollmentCount(t, userID, 0)
	})
}
