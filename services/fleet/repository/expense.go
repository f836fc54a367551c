package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// CreateExpense records a cost entry against a car
func (r *FleetRepo) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	expense.CreatedAt = time.Now()
	if expense.IncurredAt.IsZero() {
		expense.IncurredAt = expense.CreatedAt
	}

	query := `
		INSERT INTO expenses (id, car_id, category, amount, note,
			incurred_at, created_at
		) VALUES (:id, :car_id, :category, :amount, :note,
			:incurred_at, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, expense); err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// ListExpensesByCar returns a car's expenses, newest first
func (r *FleetRepo) ListExpensesByCar(ctx context.Context, carID uuid.UUID) ([]models.Expense, error) {
	query := `
		SELECT id, car_id, category, amount, note, incurred_at, created_at
		FROM expenses
		WHERE car_id = $1
		ORDER BY incurred_at DESC
	`

	var expenses []models.Expense
	if err := r.db.SelectContext(ctx, &expenses, query, carID); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}
