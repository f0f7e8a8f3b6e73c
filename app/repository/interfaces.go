package repository

import (
	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/internal/pkg/areas"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)
}

// PlanRepository defines the interface for life-plan database operations.
// Title lookups are case-insensitive per owner.
type PlanRepository interface {
	Create(plan *models.LifePlan) error
	GetByID(id uint) (*models.LifePlan, error)
	GetByUserID(userID uint) ([]models.LifePlan, error)
	Update(plan *models.LifePlan) error
	Delete(id uint) error
	CountByUserIDAndType(userID uint, planType string) (int64, error)
	TitleExists(userID uint, title string) (bool, error)
	TitleExistsExceptID(userID uint, title string, id uint) (bool, error)
}

// GoalRepository defines the interface for goal-related database operations.
// Year filters are inclusive on both bounds; a nil bound is open.
type GoalRepository interface {
	Create(goal *models.Goal) error
	CreateBatch(goals []models.Goal) error
	GetByID(id uint) (*models.Goal, error)
	GetByPlanID(planID uint) ([]models.Goal, error)
	GetByPlanIDInYearRange(planID uint, minYear, maxYear *int) ([]models.Goal, error)
	GetByPlanIDAndArea(planID uint, area areas.Area) ([]models.Goal, error)
	Update(goal *models.Goal) error
	SetCompleted(id uint, completed bool) error
	Delete(id uint) error
	CountByPlanID(planID uint) (int64, error)
	DeleteByPlanID(planID uint) error
}

// NoteRepository defines the interface for note operations, including the
// title-prefix queries the balance period filter relies on.
type NoteRepository interface {
	Create(note *models.Note) error
	GetByID(id uint) (*models.Note, error)
	GetByPlanID(planID uint) ([]models.Note, error)
	GetByPlanIDAndTitlePrefix(planID uint, prefix string) ([]models.Note, error)
	Update(note *models.Note) error
	Delete(id uint) error
	DeleteByPlanID(planID uint) error
}

// CustomizationRepository defines the interface for per-plan area
// customizations. SaveAll replaces the plan's whole customization set in
// one transaction; partial application is never visible.
type CustomizationRepository interface {
	GetByPlanID(planID uint) ([]models.AreaCustomization, error)
	SaveAll(planID uint, rows []models.AreaCustomization) error
	DeleteByPlanID(planID uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User          UserRepository
	Plan          PlanRepository
	Goal          GoalRepository
	Note          NoteRepository
	Customization CustomizationRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Plan:          NewPlanRepository(db),
		Goal:          NewGoalRepository(db),
		Note:          NewNoteRepository(db),
		Customization: NewCustomizationRepository(db),
	}
}
