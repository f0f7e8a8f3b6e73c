package models

import (
	"strings"
	"time"

	"github.com/planovida/planovida/internal/pkg/areas"
)

// Goal is one year×area objective slot inside a plan. A blank GoalText is a
// placeholder slot, not a real objective; multiple goals may share the same
// (plan, year, area); there is no uniqueness constraint on that triple.
type Goal struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PlanID      uint       `gorm:"not null;index" json:"plan_id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	PeriodYear  int        `gorm:"not null;index" json:"period_year"`
	Age         int        `gorm:"not null" json:"age"`
	Area        areas.Area `gorm:"type:varchar(20);not null;index" json:"area"`
	GoalText    string     `gorm:"type:text" json:"goal_text"`
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsFilled reports whether the goal carries a real objective text.
func (g *Goal) IsFilled() bool {
	return strings.TrimSpace(g.GoalText) != ""
}
