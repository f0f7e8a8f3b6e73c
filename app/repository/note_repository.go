package repository

import (
	"strings"

	"github.com/planovida/planovida/app/models"
	"gorm.io/gorm"
)

// noteRepository implements the NoteRepository interface
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create creates a new note in the database
func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByID retrieves a note by its ID
func (r *noteRepository) GetByID(id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetByPlanID retrieves all notes of a plan, newest first
func (r *noteRepository) GetByPlanID(planID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("plan_id = ?", planID).Order("created_at DESC").Find(&notes).Error
	return notes, err
}

// GetByPlanIDAndTitlePrefix retrieves a plan's notes whose title starts
// with the given prefix. This is how balance notes are filtered back out
// by period tag.
func (r *noteRepository) GetByPlanIDAndTitlePrefix(planID uint, prefix string) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("plan_id = ? AND title LIKE ?", planID, escapeLike(prefix)+"%").
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// Update updates an existing note in the database
func (r *noteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// Delete removes a note by its ID
func (r *noteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Note{}, id).Error
}

// DeleteByPlanID removes all notes of a plan (plan deletion cleanup)
func (r *noteRepository) DeleteByPlanID(planID uint) error {
	return r.db.Where("plan_id = ?", planID).Delete(&models.Note{}).Error
}

// escapeLike neutralizes LIKE wildcards in a literal prefix. Balance tags
// contain "[" but never "%" or "_"; still, the prefix comes from request
// input on the generic listing path.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
