package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

func setupFleetRepo(t *testing.T) (*FleetRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewFleetRepo(&models.Config{}, db), mock
}

func TestSeatsBooked(t *testing.T) {
	repo, mock := setupFleetRepo(t)
	routeID := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(seats_booked\), 0\)`).
		WithArgs(routeID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

	taken, err := repo.SeatsBooked(context.Background(), routeID)

	assert.NoError(t, err)
	assert.Equal(t, 3, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRouteByID_NotFound(t *testing.T) {
	repo, mock := setupFleetRepo(t)
	routeID := uuid.New()

	mock.ExpectQuery(`SELECT id, car_id, origin, destination`).
		WithArgs(routeID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRouteByID(context.Background(), routeID)

	assert.True(t, apperr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkCarDeleted_NotFound(t *testing.T) {
	repo, mock := setupFleetRepo(t)
	carID := uuid.New()

	mock.ExpectExec(`UPDATE cars SET status = 'Deleted'`).
		WithArgs(carID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkCarDeleted(context.Background(), carID)

	assert.True(t, apperr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
