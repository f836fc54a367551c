package models

import "time"

// Well-known setting keys
const (
	SettingReferralDiscountPercent = "referral_discount_percent"
	SettingEmailEnabled            = "email_enabled"
)

// SystemSetting is a global key-value configuration row editable at runtime
type SystemSetting struct {
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
