package billing

import (
	"github.com/planovida/planovida/app/models"
	"gorm.io/gorm"
)

// Repository provides the DB operations used by the tier resolver.
type Repository interface {
	ListSubscriptionsByUser(userID uint) ([]models.Subscription, error)
	FindActiveTierMapping(provider, productID string) (*models.TierProductMapping, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListSubscriptionsByUser(userID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&subs).Error
	return subs, err
}

func (r *gormRepository) FindActiveTierMapping(provider, productID string) (*models.TierProductMapping, error) {
	var m models.TierProductMapping
	err := r.db.
		Where("provider = ? AND product_id = ? AND is_active = ?", provider, productID, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}
