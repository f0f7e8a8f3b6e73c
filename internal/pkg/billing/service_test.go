package billing

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/internal/pkg/entitlements"
)

func TestIsEntitlingStatus(t *testing.T) {
	for _, status := range []string{"active", "trialing", "past_due", "ACTIVE"} {
		if !IsEntitlingStatus(status) {
			t.Fatalf("expected status %q to be entitling", status)
		}
	}
	for _, status := range []string{"canceled", "incomplete", "expired", ""} {
		if IsEntitlingStatus(status) {
			t.Fatalf("expected status %q to be non-entitling", status)
		}
	}
}

type fakeRepo struct {
	subs     []models.Subscription
	mappings map[string]string
}

func (f *fakeRepo) ListSubscriptionsByUser(userID uint) ([]models.Subscription, error) {
	return f.subs, nil
}

func (f *fakeRepo) FindActiveTierMapping(provider, productID string) (*models.TierProductMapping, error) {
	tier, ok := f.mappings[provider+"/"+productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.TierProductMapping{Provider: provider, ProductID: productID, Tier: tier, IsActive: true}, nil
}

func TestResolveTierForUserPicksHighestEntitling(t *testing.T) {
	repo := &fakeRepo{
		subs: []models.Subscription{
			{UserID: 1, Provider: "stripe", ProductID: "prod_basic", Status: "active"},
			{UserID: 1, Provider: "stripe", ProductID: "prod_premium", Status: "canceled"},
			{UserID: 1, Provider: "stripe", ProductID: "prod_familiar", Status: "trialing"},
		},
		mappings: map[string]string{
			"stripe/prod_basic":    "basic",
			"stripe/prod_familiar": "familiar",
			"stripe/prod_premium":  "premium",
		},
	}

	tier, err := NewService(repo).ResolveTierForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ResolveTierForUser: %v", err)
	}
	if tier != entitlements.TierFamiliar {
		t.Fatalf("ResolveTierForUser = %q, want %q", tier, entitlements.TierFamiliar)
	}
}

func TestResolveTierForUserSkipsUnmappedProducts(t *testing.T) {
	repo := &fakeRepo{
		subs: []models.Subscription{
			{UserID: 1, Provider: "stripe", ProductID: "prod_unknown", Status: "active"},
		},
		mappings: map[string]string{},
	}

	tier, err := NewService(repo).ResolveTierForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ResolveTierForUser: %v", err)
	}
	if tier != entitlements.TierNone {
		t.Fatalf("ResolveTierForUser = %q, want no tier", tier)
	}
}
