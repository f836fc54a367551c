package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// GetBooking retrieves a booking by ID
func (uc *BookingUC) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetBookingByID(ctx, id)
}

// ListBookings returns a page of bookings matching the filter
func (uc *BookingUC) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	return uc.bookingRepo.ListBookings(ctx, filter)
}

// UpdateSeats reprices a Confirmed route booking for a new seat count. The
// current subscription percentage is re-resolved, the previously granted
// referral amount stays subtracted, and the capacity guard runs again.
func (uc *BookingUC) UpdateSeats(ctx context.Context, bookingID uuid.UUID, newSeatCount int) (*models.Booking, error) {
	if newSeatCount <= 0 {
		return nil, apperr.InvalidInputf("newSeatCount must be positive")
	}

	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookingType != models.BookingTypeRoute || booking.RouteID == nil {
		return nil, apperr.InvalidInputf("seats can only be updated on route bookings")
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, apperr.Conflictf("booking %s is %s", bookingID, booking.Status)
	}

	route, err := uc.fleetRepo.GetRouteByID(ctx, *booking.RouteID)
	if err != nil {
		return nil, err
	}
	car, err := uc.fleetRepo.GetCarByID(ctx, route.CarID)
	if err != nil {
		return nil, err
	}

	subPercent, err := uc.resolveSubscriptionDiscount(ctx, car)
	if err != nil {
		return nil, err
	}

	discounted := route.Price * float64(newSeatCount) * (1 - subPercent/100)
	newTotal := round2(clampPrice(discounted - booking.DiscountApplied))

	capacity := route.SeatCapacity(car.Capacity)
	changed, err := uc.bookingRepo.UpdateSeats(ctx, bookingID, newSeatCount, newTotal, capacity)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, apperr.Conflictf("seat update rejected: capacity exceeded or booking no longer Confirmed")
	}

	booking.SeatsBooked = &newSeatCount
	booking.TotalPrice = newTotal
	return booking, nil
}

// CancelBooking moves a Confirmed booking to Cancelled, restores a consumed
// referral reward and emits a cancellation notice. Cancelling an already
// cancelled booking is a no-op.
func (uc *BookingUC) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingStatusCancelled:
		return booking, nil
	case models.BookingStatusCompleted:
		return nil, apperr.Conflictf("booking %s is already completed", bookingID)
	}

	transitioned, err := uc.bookingRepo.TransitionStatus(ctx, bookingID,
		models.BookingStatusConfirmed, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		// lost a race: surface whatever state won
		current, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if current.Status == models.BookingStatusCancelled {
			return current, nil
		}
		return nil, apperr.Conflictf("booking %s is %s", bookingID, current.Status)
	}

	// the transitioning call owns the side effects exactly once
	if booking.DiscountApplied > 0 {
		if err := uc.userRepo.RestoreReferralReward(ctx, booking.UserID); err != nil {
			logger.Error("Failed to restore referral reward on cancellation",
				logger.ErrorField(err),
				logger.String("booking_id", bookingID.String()),
				logger.String("user_id", booking.UserID.String()),
			)
		}
	}

	booking.Status = models.BookingStatusCancelled
	uc.notifyBooking(ctx, booking, models.NotificationBookingCancellation)

	logger.Info("Booking cancelled",
		logger.String("booking_id", bookingID.String()),
		logger.Float64("discount_restored", booking.DiscountApplied),
	)
	return booking, nil
}

// UpdatePaymentStatus sets the payment state, which is orthogonal to the
// booking lifecycle
func (uc *BookingUC) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status models.PaymentStatus) (*models.Booking, error) {
	if !models.ValidPaymentStatus(status) {
		return nil, apperr.InvalidInputf("unknown payment status %q", status)
	}

	if err := uc.bookingRepo.UpdatePaymentStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	return uc.bookingRepo.GetBookingByID(ctx, bookingID)
}

// UpdateStatus applies a generic lifecycle transition. Completion runs the
// referral grant check; cancellation delegates to CancelBooking so the
// reward restoration stays in one place.
func (uc *BookingUC) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, apperr.InvalidInputf("unknown booking status %q", status)
	}

	switch status {
	case models.BookingStatusCancelled:
		return uc.CancelBooking(ctx, bookingID)
	case models.BookingStatusCompleted:
		return uc.completeBooking(ctx, bookingID)
	default:
		return nil, apperr.InvalidInputf("bookings cannot transition back to %s", status)
	}
}

func (uc *BookingUC) completeBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingStatusCompleted:
		return booking, nil
	case models.BookingStatusCancelled:
		return nil, apperr.Conflictf("booking %s is already cancelled", bookingID)
	}

	transitioned, err := uc.bookingRepo.TransitionStatus(ctx, bookingID,
		models.BookingStatusConfirmed, models.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		current, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if current.Status == models.BookingStatusCompleted {
			return current, nil
		}
		return nil, apperr.Conflictf("booking %s is %s", bookingID, current.Status)
	}

	booking.Status = models.BookingStatusCompleted
	uc.maybeGrantReferralReward(ctx, booking.UserID)
	return booking, nil
}

// maybeGrantReferralReward arms the referrer's reward flag when the user just
// completed their first-ever booking. The count==1 guard keeps the grant to
// once per user lifetime without a separate processed flag.
func (uc *BookingUC) maybeGrantReferralReward(ctx context.Context, userID uuid.UUID) {
	count, err := uc.bookingRepo.CountCompletedBookings(ctx, userID)
	if err != nil {
		logger.Error("Failed to count completed bookings for referral grant",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return
	}
	if count != 1 {
		return
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user for referral grant",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return
	}
	if user.ReferredBy == nil {
		return
	}

	if err := uc.userRepo.GrantReferralReward(ctx, *user.ReferredBy); err != nil {
		logger.Error("Failed to grant referral reward",
			logger.ErrorField(err),
			logger.String("referrer_id", user.ReferredBy.String()),
		)
		return
	}

	logger.Info("Referral reward granted",
		logger.String("referrer_id", user.ReferredBy.String()),
		logger.String("referee_id", userID.String()),
	)
}

// FinalizeBooking settles a private booking: the measured distance (floored
// by the car's per-day minimum) or an explicit price becomes the total, the
// recorded referral discount stays subtracted, and the booking completes.
func (uc *BookingUC) FinalizeBooking(ctx context.Context, bookingID uuid.UUID, req *models.FinalizeRequest) (*models.Booking, error) {
	if req.ActualDistanceKm == nil && req.FinalPrice == nil {
		return nil, apperr.InvalidInputf("either actualDistanceKm or finalPrice is required")
	}

	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookingType != models.BookingTypePrivate {
		return nil, apperr.NotFoundf("private booking %s", bookingID)
	}

	switch booking.Status {
	case models.BookingStatusCompleted:
		return booking, nil
	case models.BookingStatusCancelled:
		return nil, apperr.Conflictf("booking %s is already cancelled", bookingID)
	}

	var newTotal float64
	if req.FinalPrice != nil {
		newTotal = *req.FinalPrice
	} else {
		if booking.CarID == nil {
			return nil, apperr.InvalidInputf("booking %s has no car", bookingID)
		}
		car, err := uc.fleetRepo.GetCarByID(ctx, *booking.CarID)
		if err != nil {
			return nil, err
		}

		days := 1
		if booking.StartDate != nil && booking.EndDate != nil {
			days = estimateDays(*booking.StartDate, *booking.EndDate)
		}

		billable := *req.ActualDistanceKm
		if floor := car.MinDistanceFloor(days); billable < floor {
			billable = floor
		}
		newTotal = billable * car.PricePerKm
	}

	newTotal = round2(clampPrice(newTotal - booking.DiscountApplied))

	finalized, err := uc.bookingRepo.FinalizeBooking(ctx, bookingID, newTotal, req.ActualDistanceKm)
	if err != nil {
		return nil, err
	}
	if !finalized {
		current, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if current.Status == models.BookingStatusCompleted {
			return current, nil
		}
		return nil, apperr.Conflictf("booking %s is %s", bookingID, current.Status)
	}

	booking.Status = models.BookingStatusCompleted
	booking.TotalPrice = newTotal
	if req.ActualDistanceKm != nil {
		booking.ActualDistanceKm = req.ActualDistanceKm
	}

	logger.Info("Private booking finalized",
		logger.String("booking_id", bookingID.String()),
		logger.Float64("total_price", newTotal),
	)

	uc.maybeGrantReferralReward(ctx, booking.UserID)
	return booking, nil
}
