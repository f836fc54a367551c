package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// AddExpense records a cost entry against a car
func (uc *FleetUC) AddExpense(ctx context.Context, expense *models.Expense) error {
	if expense.Amount <= 0 {
		return apperr.InvalidInputf("amount must be positive")
	}
	if _, err := uc.fleetRepo.GetCarByID(ctx, expense.CarID); err != nil {
		return err
	}
	return uc.fleetRepo.CreateExpense(ctx, expense)
}

// ListExpenses returns a car's expenses
func (uc *FleetUC) ListExpenses(ctx context.Context, carID uuid.UUID) ([]models.Expense, error) {
	return uc.fleetRepo.ListExpensesByCar(ctx, carID)
}
