package repository

import (
	"github.com/planovida/planovida/app/models"
	"gorm.io/gorm"
)

// customizationRepository implements the CustomizationRepository interface
type customizationRepository struct {
	db *gorm.DB
}

// NewCustomizationRepository creates a new area customization repository instance
func NewCustomizationRepository(db *gorm.DB) CustomizationRepository {
	return &customizationRepository{db: db}
}

// GetByPlanID retrieves all customization rows of a plan
func (r *customizationRepository) GetByPlanID(planID uint) ([]models.AreaCustomization, error) {
	var rows []models.AreaCustomization
	err := r.db.Where("plan_id = ?", planID).Find(&rows).Error
	return rows, err
}

// SaveAll replaces the plan's customization set atomically. The batch call
// is the only writer of these rows; either all rows land or none do.
func (r *customizationRepository) SaveAll(planID uint, rows []models.AreaCustomization) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", planID).Delete(&models.AreaCustomization{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].PlanID = planID
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// DeleteByPlanID removes all customization rows of a plan
func (r *customizationRepository) DeleteByPlanID(planID uint) error {
	return r.db.Where("plan_id = ?", planID).Delete(&models.AreaCustomization{}).Error
}
