package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/services/bookings/mocks"
)

func performSeatsUpdate(t *testing.T, uc *mocks.MockBookingUC, bookingID uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	NewBookingHandler(uc).RegisterRoutes(e.Group("/bookings"))

	req := httptest.NewRequest(http.MethodPut, "/bookings/"+bookingID.String()+"/seats", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUpdateSeatsPayload(t *testing.T) {
	bookingID := uuid.New()
	routeID := uuid.New()

	routeBooking := func() *models.Booking {
		return &models.Booking{
			ID:          bookingID,
			BookingType: models.BookingTypeRoute,
			RouteID:     &routeID,
		}
	}

	t.Run("accepts newSeatCount with matching routeId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockBookingUC(ctrl)

		uc.EXPECT().GetBooking(gomock.Any(), bookingID).Return(routeBooking(), nil)
		uc.EXPECT().UpdateSeats(gomock.Any(), bookingID, 3).Return(routeBooking(), nil)

		rec := performSeatsUpdate(t, uc, bookingID,
			`{"newSeatCount": 3, "routeId": "`+routeID.String()+`"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("accepts newSeatCount without routeId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockBookingUC(ctrl)

		uc.EXPECT().UpdateSeats(gomock.Any(), bookingID, 2).Return(routeBooking(), nil)

		rec := performSeatsUpdate(t, uc, bookingID, `{"newSeatCount": 2}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a routeId that belongs to another route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockBookingUC(ctrl)

		uc.EXPECT().GetBooking(gomock.Any(), bookingID).Return(routeBooking(), nil)

		rec := performSeatsUpdate(t, uc, bookingID,
			`{"newSeatCount": 3, "routeId": "`+uuid.NewString()+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
