package models

import (
	"time"

	"github.com/planovida/planovida/internal/pkg/areas"
)

// AreaCustomization overrides the registry label/color of one area for one
// plan. At most one row per (plan, area); absence means the registry
// default applies. Rows are written only through the batch "save all
// customizations" call on plan create/edit, never auto-created.
type AreaCustomization struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PlanID      uint       `gorm:"not null;index:ux_area_customizations_plan_area,unique,priority:1" json:"plan_id"`
	AreaID      areas.Area `gorm:"type:varchar(20);not null;index:ux_area_customizations_plan_area,unique,priority:2" json:"area_id"`
	CustomLabel string     `gorm:"type:varchar(100);default:null" json:"custom_label"`
	CustomColor string     `gorm:"type:varchar(7);default:null" json:"custom_color"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// CustomizationMap converts persisted rows into the lookup shape consumed
// by the area registry resolvers.
func CustomizationMap(rows []AreaCustomization) map[areas.Area]areas.Customization {
	out := make(map[areas.Area]areas.Customization, len(rows))
	for _, row := range rows {
		out[row.AreaID] = areas.Customization{Label: row.CustomLabel, Color: row.CustomColor}
	}
	return out
}
