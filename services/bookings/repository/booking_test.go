package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

func setupBookingRepo(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewBookingRepo(&models.Config{}, db), mock
}

func bookingRows(booking *models.Booking) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "booking_date", "booking_type", "status",
		"payment_status", "total_price", "discount_applied",
		"route_id", "seats_booked",
		"car_id", "pickup_location", "dropoff_location", "start_date", "end_date",
		"actual_distance_km", "created_at", "updated_at",
	}).AddRow(
		booking.ID, booking.UserID, booking.BookingDate, booking.BookingType, booking.Status,
		booking.PaymentStatus, booking.TotalPrice, booking.DiscountApplied,
		booking.RouteID, booking.SeatsBooked,
		booking.CarID, booking.PickupLocation, booking.DropoffLocation, booking.StartDate, booking.EndDate,
		booking.ActualDistanceKm, booking.CreatedAt, booking.UpdatedAt,
	)
}

func TestInsertRouteBooking(t *testing.T) {
	routeID := uuid.New()
	seats := 2

	newBooking := func() *models.Booking {
		return &models.Booking{
			UserID:        uuid.New(),
			BookingType:   models.BookingTypeRoute,
			Status:        models.BookingStatusConfirmed,
			PaymentStatus: models.PaymentStatusPending,
			TotalPrice:    200,
			RouteID:       &routeID,
			SeatsBooked:   &seats,
		}
	}

	t.Run("inserts when the capacity guard matches", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)
		booking := newBooking()

		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.InsertRouteBooking(context.Background(), booking, 4)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, booking.ID)
		assert.False(t, booking.BookingDate.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a conflict when the guard filters the row out", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)

		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.InsertRouteBooking(context.Background(), newBooking(), 4)

		assert.True(t, apperr.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetBookingByID(t *testing.T) {
	t.Run("maps the row", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)

		routeID := uuid.New()
		seats := 2
		booking := &models.Booking{
			ID:            uuid.New(),
			UserID:        uuid.New(),
			BookingDate:   time.Now(),
			BookingType:   models.BookingTypeRoute,
			Status:        models.BookingStatusConfirmed,
			PaymentStatus: models.PaymentStatusPending,
			TotalPrice:    180,
			RouteID:       &routeID,
			SeatsBooked:   &seats,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
			WithArgs(booking.ID).
			WillReturnRows(bookingRows(booking))

		got, err := repo.GetBookingByID(context.Background(), booking.ID)

		require.NoError(t, err)
		assert.Equal(t, booking.ID, got.ID)
		assert.Equal(t, 180.0, got.TotalPrice)
		require.NotNil(t, got.SeatsBooked)
		assert.Equal(t, 2, *got.SeatsBooked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a missing row to not found", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)
		id := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetBookingByID(context.Background(), id)

		assert.True(t, apperr.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransitionStatus(t *testing.T) {
	id := uuid.New()

	t.Run("applies when the booking is in the expected state", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)

		mock.ExpectExec(`UPDATE bookings\s+SET status = \$3`).
			WithArgs(id, models.BookingStatusConfirmed, models.BookingStatusCancelled).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.TransitionStatus(context.Background(), id,
			models.BookingStatusConfirmed, models.BookingStatusCancelled)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports false when the state moved underneath", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)

		mock.ExpectExec(`UPDATE bookings\s+SET status = \$3`).
			WithArgs(id, models.BookingStatusConfirmed, models.BookingStatusCompleted).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.TransitionStatus(context.Background(), id,
			models.BookingStatusConfirmed, models.BookingStatusCompleted)

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateSeatsGuard(t *testing.T) {
	id := uuid.New()

	t.Run("updates within capacity", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)

		mock.ExpectExec(`UPDATE bookings b\s+SET seats_booked = \$2`).
			WithArgs(id, 3, 280.0, 4).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.UpdateSeats(context.Background(), id, 3, 280.0, 4)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects when other bookings already hold the seats", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)

		mock.ExpectExec(`UPDATE bookings b\s+SET seats_booked = \$2`).
			WithArgs(id, 4, 400.0, 4).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.UpdateSeats(context.Background(), id, 4, 400.0, 4)

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdatePaymentStatusRepo(t *testing.T) {
	t.Run("missing booking maps to not found", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)
		id := uuid.New()

		mock.ExpectExec(`UPDATE bookings SET payment_status = \$2`).
			WithArgs(id, models.PaymentStatusPaid).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePaymentStatus(context.Background(), id, models.PaymentStatusPaid)

		assert.True(t, apperr.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFinalizeBookingRepo(t *testing.T) {
	id := uuid.New()
	actual := 250.0

	t.Run("settles a confirmed private booking", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)

		mock.ExpectExec(`UPDATE bookings\s+SET status = 'Completed'`).
			WithArgs(id, 3600.0, &actual).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.FinalizeBooking(context.Background(), id, 3600.0, &actual)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports false outside the Confirmed state", func(t *testing.T) {
		repo, mock := setupBookingRepo(t)

		mock.ExpectExec(`UPDATE bookings\s+SET status = 'Completed'`).
			WithArgs(id, 3600.0, nil).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.FinalizeBooking(context.Background(), id, 3600.0, nil)

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountCompletedBookings(t *testing.T) {
	repo, mock := setupBookingRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE user_id = \$1 AND status = 'Completed'`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountCompletedBookings(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
