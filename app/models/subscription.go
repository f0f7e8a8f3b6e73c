package models

import "time"

const (
	SUBSCRIPTION_STATUS_ACTIVE     = "active"
	SUBSCRIPTION_STATUS_TRIALING   = "trialing"
	SUBSCRIPTION_STATUS_PAST_DUE   = "past_due"
	SUBSCRIPTION_STATUS_CANCELED   = "canceled"
	SUBSCRIPTION_STATUS_INCOMPLETE = "incomplete"
	SUBSCRIPTION_STATUS_EXPIRED    = "expired"
)

// Subscription mirrors the billing provider's subscription state for a
// user. It is written by the external billing sync, never by this app's
// request handlers; the core only reads the resolved tier from it.
type Subscription struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"not null;index" json:"user_id"`
	Provider          string     `gorm:"type:varchar(20);not null;index:ux_subscriptions_provider_subid,unique,priority:1" json:"provider"`
	ProviderSubID     string     `gorm:"type:varchar(191);not null;index:ux_subscriptions_provider_subid,unique,priority:2" json:"provider_sub_id"`
	ProductID         string     `gorm:"type:varchar(191);not null;index" json:"product_id"`
	Status            string     `gorm:"type:varchar(32);not null;default:'active';index" json:"status"`
	CurrentPeriodEnd  *time.Time `gorm:"type:timestamp;default:null" json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool       `gorm:"default:false" json:"cancel_at_period_end"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TierProductMapping maps a billing provider product id to an internal
// subscription tier consumed by entitlements.
type TierProductMapping struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Provider  string    `gorm:"type:varchar(20);not null;index:ux_tier_product_mappings_ref,unique,priority:1" json:"provider"`
	ProductID string    `gorm:"type:varchar(191);not null;index:ux_tier_product_mappings_ref,unique,priority:2" json:"product_id"`
	Tier      string    `gorm:"type:varchar(20);not null;default:'basic'" json:"tier"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
