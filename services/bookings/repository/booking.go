package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

const bookingColumns = `id, user_id, booking_date, booking_type, status,
	payment_status, total_price, discount_applied,
	route_id, seats_booked,
	car_id, pickup_location, dropoff_location, start_date, end_date,
	actual_distance_km, created_at, updated_at`

// InsertRouteBooking persists a route booking guarded by seat capacity: the
// INSERT..SELECT matches zero rows when the route's non-cancelled seat total
// would exceed the capacity, so overlapping bookings cannot oversell.
func (r *BookingRepo) InsertRouteBooking(ctx context.Context, booking *models.Booking, seatCapacity int) error {
	prepareBookingRow(booking)

	query := `
		INSERT INTO bookings (id, user_id, booking_date, booking_type, status,
			payment_status, total_price, discount_applied,
			route_id, seats_booked, created_at, updated_at)
		SELECT :id, :user_id, :booking_date, :booking_type, :status,
			:payment_status, :total_price, :discount_applied,
			:route_id, :seats_booked, :created_at, :updated_at
		WHERE (
			SELECT COALESCE(SUM(seats_booked), 0)
			FROM bookings
			WHERE route_id = :route_id AND status <> 'Cancelled'
		) + :seats_booked <= :seat_capacity
	`

	args := map[string]interface{}{
		"id":               booking.ID,
		"user_id":          booking.UserID,
		"booking_date":     booking.BookingDate,
		"booking_type":     booking.BookingType,
		"status":           booking.Status,
		"payment_status":   booking.PaymentStatus,
		"total_price":      booking.TotalPrice,
		"discount_applied": booking.DiscountApplied,
		"route_id":         booking.RouteID,
		"seats_booked":     booking.SeatsBooked,
		"created_at":       booking.CreatedAt,
		"updated_at":       booking.UpdatedAt,
		"seat_capacity":    seatCapacity,
	}

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to insert route booking: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.Conflictf("not enough seats available on route %s", booking.RouteID)
	}
	return nil
}

// InsertPrivateBooking persists a private-hire booking
func (r *BookingRepo) InsertPrivateBooking(ctx context.Context, booking *models.Booking) error {
	prepareBookingRow(booking)

	query := `
		INSERT INTO bookings (id, user_id, booking_date, booking_type, status,
			payment_status, total_price, discount_applied,
			car_id, pickup_location, dropoff_location, start_date, end_date,
			created_at, updated_at
		) VALUES (:id, :user_id, :booking_date, :booking_type, :status,
			:payment_status, :total_price, :discount_applied,
			:car_id, :pickup_location, :dropoff_location, :start_date, :end_date,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to insert private booking: %w", err)
	}
	return nil
}

func prepareBookingRow(booking *models.Booking) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now()
	if booking.BookingDate.IsZero() {
		booking.BookingDate = now
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now
}

// GetBookingByID retrieves a booking by ID
func (r *BookingRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("booking %s", id)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// ListBookings returns a page of bookings matching the filter
func (r *BookingRepo) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	argn := 1

	if filter.CarID != nil {
		where += fmt.Sprintf(` AND car_id = $%d`, argn)
		args = append(args, *filter.CarID)
		argn++
	}
	if filter.RouteID != nil {
		where += fmt.Sprintf(` AND route_id = $%d`, argn)
		args = append(args, *filter.RouteID)
		argn++
	}
	if filter.BookingType != "" {
		where += fmt.Sprintf(` AND booking_type = $%d`, argn)
		args = append(args, filter.BookingType)
		argn++
	}
	if filter.Date != nil {
		where += fmt.Sprintf(` AND booking_date::date = $%d::date`, argn)
		args = append(args, *filter.Date)
		argn++
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bookings %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s FROM bookings %s
		ORDER BY booking_date DESC
		LIMIT %d OFFSET %d`, bookingColumns, where, filter.Limit, offset)

	var bookingList []models.Booking
	if err := r.db.SelectContext(ctx, &bookingList, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookingList, total, nil
}

// UpdateSeats rewrites a Confirmed route booking's seat count and price,
// guarded by the route's seat capacity excluding this booking's own seats
func (r *BookingRepo) UpdateSeats(ctx context.Context, bookingID uuid.UUID, seats int, totalPrice float64, seatCapacity int) (bool, error) {
	query := `
		UPDATE bookings b
		SET seats_booked = $2, total_price = $3, updated_at = NOW()
		WHERE b.id = $1 AND b.status = 'Confirmed'
		AND (
			SELECT COALESCE(SUM(o.seats_booked), 0)
			FROM bookings o
			WHERE o.route_id = b.route_id AND o.status <> 'Cancelled' AND o.id <> b.id
		) + $2 <= $4
	`
	result, err := r.db.ExecContext(ctx, query, bookingID, seats, totalPrice, seatCapacity)
	if err != nil {
		return false, fmt.Errorf("failed to update seats: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// TransitionStatus moves a booking between lifecycle states in one
// conditional write so repeated or racing transitions apply at most once
func (r *BookingRepo) TransitionStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`
	result, err := r.db.ExecContext(ctx, query, bookingID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to transition booking status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// UpdatePaymentStatus persists the payment state independently of the
// booking lifecycle
func (r *BookingRepo) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status models.PaymentStatus) error {
	query := `UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, bookingID, status)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFoundf("booking %s", bookingID)
	}
	return nil
}

// FinalizeBooking completes a Confirmed private booking with its settled
// price and measured distance
func (r *BookingRepo) FinalizeBooking(ctx context.Context, bookingID uuid.UUID, totalPrice float64, actualDistanceKm *float64) (bool, error) {
	query := `
		UPDATE bookings
		SET status = 'Completed', total_price = $2,
			actual_distance_km = COALESCE($3, actual_distance_km),
			updated_at = NOW()
		WHERE id = $1 AND status = 'Confirmed' AND booking_type = 'Private'
	`
	result, err := r.db.ExecContext(ctx, query, bookingID, totalPrice, actualDistanceKm)
	if err != nil {
		return false, fmt.Errorf("failed to finalize booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// CountCompletedBookings counts a user's lifetime Completed bookings
func (r *BookingRepo) CountCompletedBookings(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status = 'Completed'`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count completed bookings: %w", err)
	}
	return count, nil
}
