package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

const defaultEstimateKmPerDay = 150

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampPrice(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// resolveSubscriptionDiscount returns the percentage discount granted by the
// car driver's subscription plan, 0 when there is no driver or no active plan
func (uc *BookingUC) resolveSubscriptionDiscount(ctx context.Context, car *models.Car) (float64, error) {
	if car.DriverID == nil {
		return 0, nil
	}

	subscription, err := uc.userRepo.GetDriverSubscription(ctx, *car.DriverID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	if !subscription.Active(time.Now()) {
		return 0, nil
	}
	return subscription.DiscountPercent, nil
}

// applyReferralDiscount consumes the user's referral reward against the given
// base price. Consumption is a compare-and-clear at the storage layer, so a
// reward funds at most one booking even under concurrent requests. The caller
// must restore the reward if the booking itself fails to persist afterwards.
func (uc *BookingUC) applyReferralDiscount(ctx context.Context, userID uuid.UUID, basePrice float64) (float64, bool, error) {
	percent, err := uc.settings.GetPercentSetting(ctx, models.SettingReferralDiscountPercent)
	if err != nil {
		return 0, false, err
	}
	if percent <= 0 {
		return 0, false, nil
	}

	consumed, err := uc.userRepo.ConsumeReferralReward(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	if !consumed {
		return 0, false, nil
	}

	return round2(basePrice * percent / 100), true, nil
}

// restoreRewardAfterFailure is the compensation for a consumed reward whose
// booking never persisted
func (uc *BookingUC) restoreRewardAfterFailure(ctx context.Context, userID uuid.UUID) {
	if err := uc.userRepo.RestoreReferralReward(ctx, userID); err != nil {
		logger.Error("Failed to restore referral reward after booking failure",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
	}
}

// CreateRouteBooking prices and persists a seat-based booking:
// route price × seats, minus the driver plan's percentage, minus the user's
// one-time referral discount, clamped at zero.
func (uc *BookingUC) CreateRouteBooking(ctx context.Context, req *models.RouteBookingRequest) (*models.Booking, error) {
	if req.SeatsToBook <= 0 {
		return nil, apperr.InvalidInputf("seatsToBook must be positive")
	}
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}
	if !models.ValidPaymentStatus(paymentStatus) {
		return nil, apperr.InvalidInputf("unknown payment status %q", paymentStatus)
	}

	route, err := uc.fleetRepo.GetRouteByID(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}
	car, err := uc.fleetRepo.GetCarByID(ctx, route.CarID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	subPercent, err := uc.resolveSubscriptionDiscount(ctx, car)
	if err != nil {
		return nil, err
	}

	basePrice := route.Price * float64(req.SeatsToBook)
	discounted := basePrice * (1 - subPercent/100)

	referralAmount, rewardConsumed, err := uc.applyReferralDiscount(ctx, req.UserID, discounted)
	if err != nil {
		return nil, err
	}

	seats := req.SeatsToBook
	booking := &models.Booking{
		UserID:          req.UserID,
		BookingType:     models.BookingTypeRoute,
		Status:          models.BookingStatusConfirmed,
		PaymentStatus:   paymentStatus,
		TotalPrice:      round2(clampPrice(discounted - referralAmount)),
		DiscountApplied: referralAmount,
		RouteID:         &route.ID,
		SeatsBooked:     &seats,
	}

	capacity := route.SeatCapacity(car.Capacity)
	if err := uc.bookingRepo.InsertRouteBooking(ctx, booking, capacity); err != nil {
		if rewardConsumed {
			uc.restoreRewardAfterFailure(ctx, req.UserID)
		}
		return nil, err
	}

	logger.Info("Route booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("route_id", route.ID.String()),
		logger.Int("seats", seats),
		logger.Float64("total_price", booking.TotalPrice),
		logger.Float64("discount_applied", booking.DiscountApplied),
	)

	uc.notifyBooking(ctx, booking, models.NotificationBookingConfirmation)
	return booking, nil
}

// estimateDays converts a hire window into whole billing days, minimum one
func estimateDays(start, end time.Time) int {
	if !end.After(start) {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// CreatePrivateBooking prices and persists an exclusive hire. The estimate is
// pricePerKm × assumed daily distance × whole days, discounted like a route
// booking. The price is always recomputed server-side; a client-supplied
// total is advisory and only logged when it diverges.
func (uc *BookingUC) CreatePrivateBooking(ctx context.Context, req *models.PrivateBookingRequest) (*models.Booking, error) {
	if req.PickupLocation == "" || req.DropoffLocation == "" {
		return nil, apperr.InvalidInputf("pickupLocation and dropoffLocation are required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, apperr.InvalidInputf("startDate and endDate are required")
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperr.InvalidInputf("endDate must be after startDate")
	}
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}
	if !models.ValidPaymentStatus(paymentStatus) {
		return nil, apperr.InvalidInputf("unknown payment status %q", paymentStatus)
	}

	car, err := uc.fleetRepo.GetCarByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	kmPerDay := uc.cfg.Pricing.EstimateKmPerDay
	if kmPerDay <= 0 {
		kmPerDay = defaultEstimateKmPerDay
	}

	days := estimateDays(req.StartDate, req.EndDate)
	basePrice := car.PricePerKm * kmPerDay * float64(days)

	subPercent, err := uc.resolveSubscriptionDiscount(ctx, car)
	if err != nil {
		return nil, err
	}
	discounted := basePrice * (1 - subPercent/100)

	referralAmount, rewardConsumed, err := uc.applyReferralDiscount(ctx, req.UserID, discounted)
	if err != nil {
		return nil, err
	}

	total := round2(clampPrice(discounted - referralAmount))
	if req.TotalPrice > 0 && math.Abs(req.TotalPrice-total) >= 0.01 {
		logger.Info("Client estimate diverges from computed private-hire price",
			logger.Float64("client_price", req.TotalPrice),
			logger.Float64("computed_price", total),
			logger.String("car_id", car.ID.String()),
		)
	}

	startDate := req.StartDate
	endDate := req.EndDate
	booking := &models.Booking{
		UserID:          req.UserID,
		BookingType:     models.BookingTypePrivate,
		Status:          models.BookingStatusConfirmed,
		PaymentStatus:   paymentStatus,
		TotalPrice:      total,
		DiscountApplied: referralAmount,
		CarID:           &car.ID,
		PickupLocation:  &req.PickupLocation,
		DropoffLocation: &req.DropoffLocation,
		StartDate:       &startDate,
		EndDate:         &endDate,
	}

	if err := uc.bookingRepo.InsertPrivateBooking(ctx, booking); err != nil {
		if rewardConsumed {
			uc.restoreRewardAfterFailure(ctx, req.UserID)
		}
		return nil, err
	}

	logger.Info("Private booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("car_id", car.ID.String()),
		logger.Int("days", days),
		logger.Float64("total_price", booking.TotalPrice),
	)

	uc.notifyBooking(ctx, booking, models.NotificationBookingConfirmation)
	return booking, nil
}
