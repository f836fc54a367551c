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

const userColumns = `id, name, email, phone, role, password_hash,
	subscription_plan_id, subscription_expiry_date,
	referral_code, referred_by, referral_reward_available,
	created_at, updated_at`

// CreateUser inserts a new user
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, email, phone, role, password_hash,
			referral_code, referred_by, referral_reward_available,
			created_at, updated_at
		) VALUES (:id, :name, :email, :phone, :role, :password_hash,
			:referral_code, :referred_by, :referral_reward_available,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// GetUserByReferralCode retrieves the user owning a referral code
func (r *UserRepo) GetUserByReferralCode(ctx context.Context, code string) (*models.User, error) {
	return r.getUserByField(ctx, "referral_code", code)
}

func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListUsers returns a page of users, optionally filtered by role
func (r *UserRepo) ListUsers(ctx context.Context, role string, page, limit int) ([]models.User, int, error) {
	where := ""
	args := []interface{}{}
	if role != "" {
		where = "WHERE role = $1"
		args = append(args, role)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	offset := (page - 1) * limit
	listQuery := fmt.Sprintf(`
		SELECT %s FROM users %s
		ORDER BY created_at DESC
		LIMIT %d OFFSET %d`, userColumns, where, limit, offset)

	var userList []models.User
	if err := r.db.SelectContext(ctx, &userList, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return userList, total, nil
}

// UpdateUser updates a user's mutable profile fields
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET name = :name, email = :email, phone = :phone, role = :role,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperr.NotFoundf("user %s", user.ID)
	}
	return nil
}
