package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleCustomer = "Customer"
	RoleDriver   = "Driver"
	RoleCarOwner = "CarOwner"
	RoleAdmin    = "Admin"
)

// User represents any account in the system: customers, drivers, car owners and admins
type User struct {
	ID                      uuid.UUID  `json:"id" db:"id"`
	Name                    string     `json:"name" db:"name"`
	Email                   string     `json:"email" db:"email"`
	Phone                   string     `json:"phone" db:"phone"`
	Role                    string     `json:"role" db:"role"`
	PasswordHash            string     `json:"-" db:"password_hash"`
	SubscriptionPlanID      *uuid.UUID `json:"subscriptionPlanId,omitempty" db:"subscription_plan_id"`
	SubscriptionExpiryDate  *time.Time `json:"subscriptionExpiryDate,omitempty" db:"subscription_expiry_date"`
	ReferralCode            string     `json:"referralCode" db:"referral_code"`
	ReferredBy              *uuid.UUID `json:"referredBy,omitempty" db:"referred_by"`
	ReferralRewardAvailable bool       `json:"referralRewardAvailable" db:"referral_reward_available"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at" db:"updated_at"`
}

// DriverSubscription is the subscription state of a car's driver as seen by pricing
type DriverSubscription struct {
	PlanID          *uuid.UUID `db:"subscription_plan_id"`
	ExpiryDate      *time.Time `db:"subscription_expiry_date"`
	DiscountPercent float64    `db:"customer_discount_percent"`
}

// Active reports whether the subscription grants a discount at the given
// moment. Expiry must be strictly later than now.
func (s *DriverSubscription) Active(now time.Time) bool {
	return s != nil && s.PlanID != nil && s.ExpiryDate != nil && s.ExpiryDate.After(now)
}

// RegisterRequest is the signup payload; ReferralCode optionally links the
// new account to the referrer owning that code
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ReferralCode string `json:"referralCode,omitempty"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}
