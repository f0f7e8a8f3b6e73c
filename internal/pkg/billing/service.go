package billing

import (
	"context"
	"errors"

	"github.com/planovida/planovida/internal/pkg/entitlements"
	"gorm.io/gorm"
)

// Service resolves the subscription tier a user is entitled to. The provider
// sync itself (webhooks, checkout) is an external collaborator; this service
// only reads the locally mirrored subscription rows.
type Service struct {
	repo Repository
}

// NewService creates a billing service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a billing service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// ResolveTierForUser maps the user's entitling subscriptions through the
// product-to-tier mapping table and returns the highest-ranked tier. A user
// with no entitling subscription resolves to TierNone.
func (s *Service) ResolveTierForUser(ctx context.Context, userID uint) (entitlements.Tier, error) {
	_ = ctx
	subs, err := s.repo.ListSubscriptionsByUser(userID)
	if err != nil {
		return entitlements.TierNone, err
	}

	best := entitlements.TierNone
	for _, sub := range subs {
		if !IsEntitlingStatus(sub.Status) {
			continue
		}
		tier, err := s.resolveProductTier(sub.Provider, sub.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unmapped product: skip instead of failing the whole resolve.
				continue
			}
			return entitlements.TierNone, err
		}
		if entitlements.TierRank(tier) > entitlements.TierRank(best) {
			best = tier
		}
	}

	return best, nil
}

func (s *Service) resolveProductTier(provider, productID string) (entitlements.Tier, error) {
	m, err := s.repo.FindActiveTierMapping(provider, productID)
	if err != nil {
		return entitlements.TierNone, err
	}
	return entitlements.NormalizeTier(m.Tier), nil
}
