package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DipakAnap/cablink-backend/internal/pkg/apperr"
	"github.com/DipakAnap/cablink-backend/internal/pkg/jwt"
	"github.com/DipakAnap/cablink-backend/internal/pkg/logger"
	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
)

// Register creates a new account, hashing the password and linking the
// referrer when a referral code was supplied.
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperr.InvalidInputf("name, email and password are required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	switch role {
	case models.RoleCustomer, models.RoleDriver, models.RoleCarOwner, models.RoleAdmin:
	default:
		return nil, apperr.InvalidInputf("unknown role %q", role)
	}

	if _, err := uc.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflictf("email %s already registered", req.Email)
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: string(hash),
		ReferralCode: generateReferralCode(),
	}

	if req.ReferralCode != "" {
		referrer, err := uc.userRepo.GetUserByReferralCode(ctx, req.ReferralCode)
		if err != nil {
			if apperr.IsNotFound(err) {
				return nil, apperr.InvalidInputf("unknown referral code %q", req.ReferralCode)
			}
			return nil, err
		}
		user.ReferredBy = &referrer.ID
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role),
		logger.Bool("referred", user.ReferredBy != nil),
	)

	return user, nil
}

// Login verifies credentials and issues a signed token
func (uc *UserUC) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.InvalidInputf("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.InvalidInputf("invalid email or password")
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID.String(), user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// generateReferralCode derives a short shareable code. Uniqueness is enforced
// by the column's unique constraint; a collision surfaces as an insert error.
func generateReferralCode() string {
	return "CAB" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}
