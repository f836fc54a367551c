package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

func confirmedRouteBooking(userID uuid.UUID, routeID uuid.UUID, seats int, total, discount float64) *models.Booking {
	return &models.Booking{
		ID:              uuid.New(),
		UserID:          userID,
		BookingType:     models.BookingTypeRoute,
		Status:          models.BookingStatusConfirmed,
		PaymentStatus:   models.PaymentStatusPending,
		TotalPrice:      total,
		DiscountApplied: discount,
		RouteID:         &routeID,
		SeatsBooked:     &seats,
	}
}

func confirmedPrivateBooking(userID, carID uuid.UUID, start, end time.Time, total, discount float64) *models.Booking {
	return &models.Booking{
		ID:              uuid.New(),
		UserID:          userID,
		BookingType:     models.BookingTypePrivate,
		Status:          models.BookingStatusConfirmed,
		PaymentStatus:   models.PaymentStatusPending,
		TotalPrice:      total,
		DiscountApplied: discount,
		CarID:           &carID,
		StartDate:       &start,
		EndDate:         &end,
	}
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels and restores the referral reward", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		userID := uuid.New()
		booking := confirmedRouteBooking(userID, uuid.New(), 2, 180, 20)

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.bookingRepo.EXPECT().TransitionStatus(ctx, booking.ID,
			models.BookingStatusConfirmed, models.BookingStatusCancelled).Return(true, nil)
		m.userRepo.EXPECT().RestoreReferralReward(ctx, userID).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, event *models.NotificationEvent) error {
				assert.Equal(t, models.NotificationBookingCancellation, event.Type)
				return nil
			})

		result, err := uc.CancelBooking(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, result.Status)
	})

	t.Run("leaves the reward alone when no discount was applied", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedRouteBooking(uuid.New(), uuid.New(), 2, 200, 0)

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.bookingRepo.EXPECT().TransitionStatus(ctx, booking.ID,
			models.BookingStatusConfirmed, models.BookingStatusCancelled).Return(true, nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		_, err := uc.CancelBooking(ctx, booking.ID)
		require.NoError(t, err)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedRouteBooking(uuid.New(), uuid.New(), 2, 180, 20)
		booking.Status = models.BookingStatusCancelled

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		result, err := uc.CancelBooking(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, result.Status)
	})

	t.Run("rejects cancelling a completed booking", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedRouteBooking(uuid.New(), uuid.New(), 2, 180, 20)
		booking.Status = models.BookingStatusCompleted

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		_, err := uc.CancelBooking(ctx, booking.ID)
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("a lost race against another cancel stays idempotent", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedRouteBooking(uuid.New(), uuid.New(), 2, 180, 20)
		cancelled := *booking
		cancelled.Status = models.BookingStatusCancelled

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.bookingRepo.EXPECT().TransitionStatus(ctx, booking.ID,
			models.BookingStatusConfirmed, models.BookingStatusCancelled).Return(false, nil)
		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(&cancelled, nil)

		result, err := uc.CancelBooking(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, result.Status)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an unknown state before any repository call", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		_, err := uc.UpdatePaymentStatus(ctx, uuid.New(), "Foo")
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("sets the payment state independently of the lifecycle", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedRouteBooking(uuid.New(), uuid.New(), 2, 200, 0)
		booking.PaymentStatus = models.PaymentStatusPaid

		m.bookingRepo.EXPECT().UpdatePaymentStatus(ctx, booking.ID, models.PaymentStatusPaid).Return(nil)
		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		result, err := uc.UpdatePaymentStatus(ctx, booking.ID, models.PaymentStatusPaid)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, result.PaymentStatus)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects transitioning back to Confirmed", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		_, err := uc.UpdateStatus(ctx, uuid.New(), models.BookingStatusConfirmed)
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		_, err := uc.UpdateStatus(ctx, uuid.New(), "Teleported")
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("grants the referrer's reward on the user's first completion", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		referrerID := uuid.New()
		userID := uuid.New()
		booking := confirmedRouteBooking(userID, uuid.New(), 2, 200, 0)

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.bookingRepo.EXPECT().TransitionStatus(ctx, booking.ID,
			models.BookingStatusConfirmed, models.BookingStatusCompleted).Return(true, nil)
		m.bookingRepo.EXPECT().CountCompletedBookings(ctx, userID).Return(1, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{
			ID:         userID,
			ReferredBy: &referrerID,
		}, nil)
		m.userRepo.EXPECT().GrantReferralReward(ctx, referrerID).Return(nil)

		result, err := uc.UpdateStatus(ctx, booking.ID, models.BookingStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCompleted, result.Status)
	})

	t.Run("does not grant again on later completions", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		userID := uuid.New()
		booking := confirmedRouteBooking(userID, uuid.New(), 2, 200, 0)

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.bookingRepo.EXPECT().TransitionStatus(ctx, booking.ID,
			models.BookingStatusConfirmed, models.BookingStatusCompleted).Return(true, nil)
		m.bookingRepo.EXPECT().CountCompletedBookings(ctx, userID).Return(2, nil)

		_, err := uc.UpdateStatus(ctx, booking.ID, models.BookingStatusCompleted)
		require.NoError(t, err)
	})

	t.Run("does not grant when the user was not referred", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		userID := uuid.New()
		booking := confirmedRouteBooking(userID, uuid.New(), 2, 200, 0)

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.bookingRepo.EXPECT().TransitionStatus(ctx, booking.ID,
			models.BookingStatusConfirmed, models.BookingStatusCompleted).Return(true, nil)
		m.bookingRepo.EXPECT().CountCompletedBookings(ctx, userID).Return(1, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)

		_, err := uc.UpdateStatus(ctx, booking.ID, models.BookingStatusCompleted)
		require.NoError(t, err)
	})

	t.Run("completing twice is a no-op", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedRouteBooking(uuid.New(), uuid.New(), 2, 200, 0)
		booking.Status = models.BookingStatusCompleted

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		result, err := uc.UpdateStatus(ctx, booking.ID, models.BookingStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCompleted, result.Status)
	})
}

func TestUpdateSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("reprices keeping the original referral discount", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 10)
		route := testRoute(car.ID, 100)
		booking := confirmedRouteBooking(uuid.New(), route.ID, 2, 180, 20)

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.bookingRepo.EXPECT().UpdateSeats(ctx, booking.ID, 3, 280.0, 4).Return(true, nil)

		result, err := uc.UpdateSeats(ctx, booking.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 280.0, result.TotalPrice)
		require.NotNil(t, result.SeatsBooked)
		assert.Equal(t, 3, *result.SeatsBooked)
	})

	t.Run("rejects seat updates on private bookings", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		start := time.Now()
		booking := confirmedPrivateBooking(uuid.New(), uuid.New(), start, start.Add(48*time.Hour), 3600, 0)

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		_, err := uc.UpdateSeats(ctx, booking.ID, 3)
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("rejects seat updates once the booking left Confirmed", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedRouteBooking(uuid.New(), uuid.New(), 2, 180, 20)
		booking.Status = models.BookingStatusCancelled

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		_, err := uc.UpdateSeats(ctx, booking.ID, 3)
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("surfaces a conflict when capacity rejects the new count", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 10)
		route := testRoute(car.ID, 100)
		booking := confirmedRouteBooking(uuid.New(), route.ID, 2, 200, 0)

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.bookingRepo.EXPECT().UpdateSeats(ctx, booking.ID, 4, 400.0, 4).Return(false, nil)

		_, err := uc.UpdateSeats(ctx, booking.ID, 4)
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("rejects a non-positive seat count", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		_, err := uc.UpdateSeats(ctx, uuid.New(), 0)
		assert.True(t, apperr.IsInvalidInput(err))
	})
}

func TestFinalizeBooking(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	t.Run("bills the per-day minimum when the trip ran short", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		minKm := 100.0
		car := testCar(4, 12)
		car.MinKmPerDay = &minKm
		userID := uuid.New()
		booking := confirmedPrivateBooking(userID, car.ID, start, end, 5400, 0)

		actual := 250.0
		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.bookingRepo.EXPECT().FinalizeBooking(ctx, booking.ID, 3600.0, &actual).Return(true, nil)
		m.bookingRepo.EXPECT().CountCompletedBookings(ctx, userID).Return(2, nil)

		result, err := uc.FinalizeBooking(ctx, booking.ID, &models.FinalizeRequest{
			ActualDistanceKm: &actual,
		})

		// 250 km over 3 days floors to 300 km at 12/km
		require.NoError(t, err)
		assert.Equal(t, 3600.0, result.TotalPrice)
		assert.Equal(t, models.BookingStatusCompleted, result.Status)
		require.NotNil(t, result.ActualDistanceKm)
		assert.Equal(t, 250.0, *result.ActualDistanceKm)
	})

	t.Run("bills the measured distance when it beats the floor", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		minKm := 100.0
		car := testCar(4, 12)
		car.MinKmPerDay = &minKm
		userID := uuid.New()
		booking := confirmedPrivateBooking(userID, car.ID, start, end, 5400, 0)

		actual := 500.0
		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.bookingRepo.EXPECT().FinalizeBooking(ctx, booking.ID, 6000.0, &actual).Return(true, nil)
		m.bookingRepo.EXPECT().CountCompletedBookings(ctx, userID).Return(2, nil)

		result, err := uc.FinalizeBooking(ctx, booking.ID, &models.FinalizeRequest{
			ActualDistanceKm: &actual,
		})
		require.NoError(t, err)
		assert.Equal(t, 6000.0, result.TotalPrice)
	})

	t.Run("keeps the referral discount subtracted from the settled price", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		minKm := 100.0
		car := testCar(4, 12)
		car.MinKmPerDay = &minKm
		userID := uuid.New()
		booking := confirmedPrivateBooking(userID, car.ID, start, end, 5380, 20)

		actual := 250.0
		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.bookingRepo.EXPECT().FinalizeBooking(ctx, booking.ID, 3580.0, &actual).Return(true, nil)
		m.bookingRepo.EXPECT().CountCompletedBookings(ctx, userID).Return(2, nil)

		result, err := uc.FinalizeBooking(ctx, booking.ID, &models.FinalizeRequest{
			ActualDistanceKm: &actual,
		})
		require.NoError(t, err)
		assert.Equal(t, 3580.0, result.TotalPrice)
	})

	t.Run("an explicit final price overrides the distance computation", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		userID := uuid.New()
		booking := confirmedPrivateBooking(userID, uuid.New(), start, end, 5400, 0)

		price := 4200.0
		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)
		m.bookingRepo.EXPECT().FinalizeBooking(ctx, booking.ID, 4200.0, nil).Return(true, nil)
		m.bookingRepo.EXPECT().CountCompletedBookings(ctx, userID).Return(2, nil)

		result, err := uc.FinalizeBooking(ctx, booking.ID, &models.FinalizeRequest{
			FinalPrice: &price,
		})
		require.NoError(t, err)
		assert.Equal(t, 4200.0, result.TotalPrice)
	})

	t.Run("requires a distance or a price", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		_, err := uc.FinalizeBooking(ctx, uuid.New(), &models.FinalizeRequest{})
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("route bookings cannot be finalized", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedRouteBooking(uuid.New(), uuid.New(), 2, 200, 0)
		actual := 250.0

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		_, err := uc.FinalizeBooking(ctx, booking.ID, &models.FinalizeRequest{
			ActualDistanceKm: &actual,
		})
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("finalizing twice is a no-op", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedPrivateBooking(uuid.New(), uuid.New(), start, end, 3600, 0)
		booking.Status = models.BookingStatusCompleted
		actual := 250.0

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		result, err := uc.FinalizeBooking(ctx, booking.ID, &models.FinalizeRequest{
			ActualDistanceKm: &actual,
		})
		require.NoError(t, err)
		assert.Equal(t, 3600.0, result.TotalPrice)
	})

	t.Run("cancelled bookings cannot be finalized", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		booking := confirmedPrivateBooking(uuid.New(), uuid.New(), start, end, 3600, 0)
		booking.Status = models.BookingStatusCancelled
		actual := 250.0

		m.bookingRepo.EXPECT().GetBookingByID(ctx, booking.ID).Return(booking, nil)

		_, err := uc.FinalizeBooking(ctx, booking.ID, &models.FinalizeRequest{
			ActualDistanceKm: &actual,
		})
		assert.True(t, apperr.IsConflict(err))
	})
}
