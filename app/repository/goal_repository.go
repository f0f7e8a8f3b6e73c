package repository

import (
	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/internal/pkg/areas"
	"gorm.io/gorm"
)

// goalRepository implements the GoalRepository interface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Create creates a single goal in the database
func (r *goalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// CreateBatch inserts a whole goal set (skeleton or import result) in one
// transaction so a plan never ends up with a partial grid.
func (r *goalRepository) CreateBatch(goals []models.Goal) error {
	if len(goals) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(goals, 100).Error
	})
}

// GetByID retrieves a goal by its ID
func (r *goalRepository) GetByID(id uint) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByPlanID retrieves the full goal snapshot of one plan, in the stable
// grid order (year, then creation order).
func (r *goalRepository) GetByPlanID(planID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("plan_id = ?", planID).
		Order("period_year ASC, id ASC").
		Find(&goals).Error
	return goals, err
}

// GetByPlanIDInYearRange retrieves a plan's goals bounded by an inclusive
// year window; nil bounds are open.
func (r *goalRepository) GetByPlanIDInYearRange(planID uint, minYear, maxYear *int) ([]models.Goal, error) {
	q := r.db.Where("plan_id = ?", planID)
	if minYear != nil {
		q = q.Where("period_year >= ?", *minYear)
	}
	if maxYear != nil {
		q = q.Where("period_year <= ?", *maxYear)
	}
	var goals []models.Goal
	err := q.Order("period_year ASC, id ASC").Find(&goals).Error
	return goals, err
}

// GetByPlanIDAndArea retrieves a plan's goals for one area
func (r *goalRepository) GetByPlanIDAndArea(planID uint, area areas.Area) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("plan_id = ? AND area = ?", planID, area).
		Order("period_year ASC, id ASC").
		Find(&goals).Error
	return goals, err
}

// Update updates an existing goal in the database
func (r *goalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

// SetCompleted flips the completion flag of a goal
func (r *goalRepository) SetCompleted(id uint, completed bool) error {
	return r.db.Model(&models.Goal{}).Where("id = ?", id).
		Update("is_completed", completed).Error
}

// Delete removes a goal by its ID
func (r *goalRepository) Delete(id uint) error {
	return r.db.Delete(&models.Goal{}, id).Error
}

// CountByPlanID returns the number of goals in a plan
func (r *goalRepository) CountByPlanID(planID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Goal{}).Where("plan_id = ?", planID).Count(&count).Error
	return count, err
}

// DeleteByPlanID removes all goals of a plan (plan deletion cleanup)
func (r *goalRepository) DeleteByPlanID(planID uint) error {
	return r.db.Where("plan_id = ?", planID).Delete(&models.Goal{}).Error
}
