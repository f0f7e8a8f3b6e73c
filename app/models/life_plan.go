package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	PLAN_TYPE_INDIVIDUAL = "individual"
	PLAN_TYPE_FAMILIAR   = "familiar"
	PLAN_TYPE_FILHO      = "filho"
)

// LifePlan is a user's (or family member's) life-goal container. Title is
// unique per owner, case-insensitive; the check runs before insert and
// before rename (excluding the plan's own id on rename).
type LifePlan struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	User       User           `gorm:"foreignKey:UserID" json:"-"`
	Title      string         `gorm:"type:varchar(150);not null" json:"title" validate:"required,min=1,max=150"`
	Motto      string         `gorm:"type:varchar(255);default:null" json:"motto" validate:"max=255"`
	PlanType   string         `gorm:"type:varchar(20);not null;default:'individual'" json:"plan_type" validate:"oneof=individual familiar filho"`
	MemberName string         `gorm:"type:varchar(150);default:null" json:"member_name" validate:"required_unless=PlanType individual,max=150"`
	PhotoRef   string         `gorm:"type:varchar(255);default:null" json:"photo_ref" validate:"max=255"`
	ViewCount  uint           `gorm:"default:0" json:"view_count"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *LifePlan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// NormalizedTitle is the case-insensitive comparison key used by the
// uniqueness check.
func (p *LifePlan) NormalizedTitle() string {
	return NormalizeTitle(p.Title)
}

// NormalizeTitle lowercases and trims a plan title for comparison.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// IsIndividual reports whether the plan belongs to the owner themselves
// rather than a family member or child.
func (p *LifePlan) IsIndividual() bool {
	return p.PlanType == PLAN_TYPE_INDIVIDUAL
}
