package models

import (
	"time"

	"github.com/planovida/planovida/internal/pkg/areas"
)

// Note is a free-form reflection attached to a plan, optionally scoped to a
// single area. Balance notes are plain notes whose title carries the
// "[Balanço <period>]" prefix produced by the balance package.
type Note struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	PlanID    uint        `gorm:"not null;index" json:"plan_id"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	Title     string      `gorm:"type:varchar(255);not null" json:"title"`
	Content   string      `gorm:"type:text" json:"content"`
	Area      *areas.Area `gorm:"type:varchar(20);default:null" json:"area,omitempty"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
