package repository

import (
	"github.com/planovida/planovida/app/models"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Create creates a new plan in the database
func (r *planRepository) Create(plan *models.LifePlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a plan by its ID
func (r *planRepository) GetByID(id uint) (*models.LifePlan, error) {
	var plan models.LifePlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByUserID retrieves all plans owned by a user, newest first
func (r *planRepository) GetByUserID(userID uint) ([]models.LifePlan, error) {
	var plans []models.LifePlan
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}

// Update updates an existing plan in the database
func (r *planRepository) Update(plan *models.LifePlan) error {
	return r.db.Save(plan).Error
}

// Delete soft deletes a plan by its ID
func (r *planRepository) Delete(id uint) error {
	return r.db.Delete(&models.LifePlan{}, id).Error
}

// CountByUserIDAndType counts a user's plans of one type, for quota checks
func (r *planRepository) CountByUserIDAndType(userID uint, planType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.LifePlan{}).
		Where("user_id = ? AND plan_type = ?", userID, planType).
		Count(&count).Error
	return count, err
}

// TitleExists reports whether the user already has a plan with this title,
// compared case-insensitively.
func (r *planRepository) TitleExists(userID uint, title string) (bool, error) {
	var count int64
	err := r.db.Model(&models.LifePlan{}).
		Where("user_id = ? AND LOWER(title) = ?", userID, models.NormalizeTitle(title)).
		Count(&count).Error
	return count > 0, err
}

// TitleExistsExceptID is the rename variant of TitleExists: the plan being
// renamed is excluded from the check.
func (r *planRepository) TitleExistsExceptID(userID uint, title string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.LifePlan{}).
		Where("user_id = ? AND LOWER(title) = ? AND id <> ?", userID, models.NormalizeTitle(title), id).
		Count(&count).Error
	return count > 0, err
}
