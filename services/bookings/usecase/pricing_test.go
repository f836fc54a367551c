package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/services/bookings/mocks"
)

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	fleetRepo   *mocks.MockFleetReader
	userRepo    *mocks.MockUserReader
	settings    *mocks.MockSettingsReader
	notifier    *mocks.MockNotificationGW
}

func newBookingUC(t *testing.T) (*BookingUC, *bookingMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := &bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(ctrl),
		fleetRepo:   mocks.NewMockFleetReader(ctrl),
		userRepo:    mocks.NewMockUserReader(ctrl),
		settings:    mocks.NewMockSettingsReader(ctrl),
		notifier:    mocks.NewMockNotificationGW(ctrl),
	}
	cfg := &models.Config{
		Pricing: models.PricingConfig{EstimateKmPerDay: 150},
	}
	uc := NewBookingUC(m.bookingRepo, m.fleetRepo, m.userRepo, m.settings, m.notifier, cfg)
	return uc, m, ctrl
}

func testRoute(carID uuid.UUID, price float64) *models.Route {
	return &models.Route{
		ID:          uuid.New(),
		CarID:       carID,
		Origin:      "Mumbai",
		Destination: "Pune",
		Date:        time.Now().Add(48 * time.Hour),
		Time:        "08:00",
		Price:       price,
		Status:      "Active",
	}
}

func testCar(capacity int, pricePerKm float64) *models.Car {
	return &models.Car{
		ID:         uuid.New(),
		CarNumber:  "MH12AB1234",
		Model:      "Innova",
		Capacity:   capacity,
		PricePerKm: pricePerKm,
		Status:     models.CarStatusActive,
	}
}

func TestCreateRouteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("prices seats without any discount", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 10)
		route := testRoute(car.ID, 100)
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(0.0, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 4).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		booking, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, 200.0, booking.TotalPrice)
		assert.Equal(t, 0.0, booking.DiscountApplied)
		assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
		assert.Equal(t, models.PaymentStatusPending, booking.PaymentStatus)
		assert.Equal(t, models.BookingTypeRoute, booking.BookingType)
		require.NotNil(t, booking.SeatsBooked)
		assert.Equal(t, 2, *booking.SeatsBooked)
	})

	t.Run("consumes referral reward and records the discount", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 10)
		route := testRoute(car.ID, 100)
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(10.0, nil)
		m.userRepo.EXPECT().ConsumeReferralReward(ctx, userID).Return(true, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 4).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		booking, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, 20.0, booking.DiscountApplied)
		assert.Equal(t, 180.0, booking.TotalPrice)
	})

	t.Run("skips the referral discount when the reward is not available", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 10)
		route := testRoute(car.ID, 100)
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(10.0, nil)
		m.userRepo.EXPECT().ConsumeReferralReward(ctx, userID).Return(false, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 4).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		booking, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, 0.0, booking.DiscountApplied)
		assert.Equal(t, 200.0, booking.TotalPrice)
	})

	t.Run("applies the driver subscription discount before the referral", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		driverID := uuid.New()
		car := testCar(4, 10)
		car.DriverID = &driverID
		route := testRoute(car.ID, 100)
		userID := uuid.New()

		planID := uuid.New()
		expiry := time.Now().Add(30 * 24 * time.Hour)

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.userRepo.EXPECT().GetDriverSubscription(ctx, driverID).Return(&models.DriverSubscription{
			PlanID:          &planID,
			ExpiryDate:      &expiry,
			DiscountPercent: 20,
		}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(10.0, nil)
		m.userRepo.EXPECT().ConsumeReferralReward(ctx, userID).Return(true, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 4).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		booking, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 2,
		})

		// 100 x 2 = 200, -20% plan = 160, referral 10% of 160 = 16
		require.NoError(t, err)
		assert.Equal(t, 16.0, booking.DiscountApplied)
		assert.Equal(t, 144.0, booking.TotalPrice)
	})

	t.Run("ignores an expired driver subscription", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		driverID := uuid.New()
		car := testCar(4, 10)
		car.DriverID = &driverID
		route := testRoute(car.ID, 100)
		userID := uuid.New()

		planID := uuid.New()
		expiry := time.Now().Add(-time.Hour)

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.userRepo.EXPECT().GetDriverSubscription(ctx, driverID).Return(&models.DriverSubscription{
			PlanID:          &planID,
			ExpiryDate:      &expiry,
			DiscountPercent: 20,
		}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(0.0, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 4).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		booking, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, 200.0, booking.TotalPrice)
	})

	t.Run("uses the route seat override as the capacity guard", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(7, 10)
		route := testRoute(car.ID, 100)
		offered := 3
		route.SeatsOffered = &offered
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(0.0, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 3).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		_, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 2,
		})
		require.NoError(t, err)
	})

	t.Run("restores a consumed reward when the insert fails", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 10)
		route := testRoute(car.ID, 100)
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(10.0, nil)
		m.userRepo.EXPECT().ConsumeReferralReward(ctx, userID).Return(true, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 4).
			Return(apperr.Conflictf("not enough seats available on route %s", route.ID))
		m.userRepo.EXPECT().RestoreReferralReward(ctx, userID).Return(nil)

		_, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 2,
		})
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("surfaces a capacity conflict without touching the reward", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 10)
		route := testRoute(car.ID, 100)
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(0.0, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 4).
			Return(apperr.Conflictf("not enough seats available on route %s", route.ID))

		_, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 4,
		})
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("rejects a non-positive seat count before any lookup", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		_, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     uuid.New(),
			UserID:      uuid.New(),
			SeatsToBook: 0,
		})
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("rejects an unknown payment status before any lookup", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		_, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:       uuid.New(),
			UserID:        uuid.New(),
			SeatsToBook:   1,
			PaymentStatus: "Foo",
		})
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("booking succeeds even when the event publish fails", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 10)
		route := testRoute(car.ID, 100)
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetRouteByID(ctx, route.ID).Return(route, nil)
		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(0.0, nil)
		m.bookingRepo.EXPECT().InsertRouteBooking(ctx, gomock.Any(), 4).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(errors.New("nsqd unreachable"))

		booking, err := uc.CreateRouteBooking(ctx, &models.RouteBookingRequest{
			RouteID:     route.ID,
			UserID:      userID,
			SeatsToBook: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, 100.0, booking.TotalPrice)
	})
}

func TestCreatePrivateBooking(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	validReq := func(userID, carID uuid.UUID) *models.PrivateBookingRequest {
		return &models.PrivateBookingRequest{
			UserID:          userID,
			CarID:           carID,
			PickupLocation:  "Mumbai Airport",
			DropoffLocation: "Pune Station",
			StartDate:       start,
			EndDate:         end,
		}
	}

	t.Run("estimates from daily distance and whole days", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 12)
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(0.0, nil)
		m.bookingRepo.EXPECT().InsertPrivateBooking(ctx, gomock.Any()).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		booking, err := uc.CreatePrivateBooking(ctx, validReq(userID, car.ID))

		// 12/km x 150 km/day x 3 days
		require.NoError(t, err)
		assert.Equal(t, 5400.0, booking.TotalPrice)
		assert.Equal(t, models.BookingTypePrivate, booking.BookingType)
		require.NotNil(t, booking.StartDate)
		assert.True(t, booking.StartDate.Equal(start))
	})

	t.Run("rounds a partial day up", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 12)
		userID := uuid.New()
		req := validReq(userID, car.ID)
		req.EndDate = start.Add(25 * time.Hour)

		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(0.0, nil)
		m.bookingRepo.EXPECT().InsertPrivateBooking(ctx, gomock.Any()).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		booking, err := uc.CreatePrivateBooking(ctx, req)

		// 25h bills as 2 days
		require.NoError(t, err)
		assert.Equal(t, 3600.0, booking.TotalPrice)
	})

	t.Run("recomputes server-side and ignores the client total", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 12)
		userID := uuid.New()
		req := validReq(userID, car.ID)
		req.TotalPrice = 1.0

		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(0.0, nil)
		m.bookingRepo.EXPECT().InsertPrivateBooking(ctx, gomock.Any()).Return(nil)
		m.notifier.EXPECT().PublishBookingEvent(ctx, gomock.Any()).Return(nil)

		booking, err := uc.CreatePrivateBooking(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 5400.0, booking.TotalPrice)
	})

	t.Run("restores a consumed reward when the insert fails", func(t *testing.T) {
		uc, m, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		car := testCar(4, 12)
		userID := uuid.New()

		m.fleetRepo.EXPECT().GetCarByID(ctx, car.ID).Return(car, nil)
		m.userRepo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		m.settings.EXPECT().GetPercentSetting(ctx, models.SettingReferralDiscountPercent).Return(10.0, nil)
		m.userRepo.EXPECT().ConsumeReferralReward(ctx, userID).Return(true, nil)
		m.bookingRepo.EXPECT().InsertPrivateBooking(ctx, gomock.Any()).Return(errors.New("connection reset"))
		m.userRepo.EXPECT().RestoreReferralReward(ctx, userID).Return(nil)

		_, err := uc.CreatePrivateBooking(ctx, validReq(userID, car.ID))
		assert.Error(t, err)
	})

	t.Run("rejects an inverted hire window", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		req := validReq(uuid.New(), uuid.New())
		req.StartDate = end
		req.EndDate = start

		_, err := uc.CreatePrivateBooking(ctx, req)
		assert.True(t, apperr.IsInvalidInput(err))
	})

	t.Run("rejects missing locations", func(t *testing.T) {
		uc, _, ctrl := newBookingUC(t)
		defer ctrl.Finish()

		req := validReq(uuid.New(), uuid.New())
		req.DropoffLocation = ""

		_, err := uc.CreatePrivateBooking(ctx, req)
		assert.True(t, apperr.IsInvalidInput(err))
	})
}

func TestEstimateDays(t *testing.T) {
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same instant", start, 1},
		{"a few hours", start.Add(5 * time.Hour), 1},
		{"exactly one day", start.Add(24 * time.Hour), 1},
		{"just over one day", start.Add(24*time.Hour + time.Minute), 2},
		{"three days", start.Add(72 * time.Hour), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimateDays(start, tt.end))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 180.0, round2(180.000000001))
	assert.Equal(t, 33.33, round2(33.333))
	assert.Equal(t, 33.34, round2(33.336))
	assert.Equal(t, 0.0, clampPrice(-12.5))
}
