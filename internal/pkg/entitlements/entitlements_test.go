package entitlements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planovida/planovida/app/models"
)

func TestHasAIAccess(t *testing.T) {
	tests := []struct {
		tier    Tier
		isAdmin bool
		want    bool
	}{
		{tier: TierNone, isAdmin: false, want: false},
		{tier: TierBasic, isAdmin: false, want: false},
		{tier: TierFamiliar, isAdmin: false, want: true},
		{tier: TierPremium, isAdmin: false, want: true},
		{tier: TierNone, isAdmin: true, want: true},
		{tier: TierBasic, isAdmin: true, want: true},
		{tier: TierPremium, isAdmin: true, want: true},
	}

	for _, tt := range tests {
		caps := CapabilitiesFor(tt.tier, tt.isAdmin)
		assert.Equal(t, tt.want, caps.HasAIAccess, "tier=%q admin=%v", tt.tier, tt.isAdmin)
	}
}

func TestMaxPlansPerTier(t *testing.T) {
	basic := CapabilitiesFor(TierBasic, false)
	assert.Equal(t, 1, basic.MaxPlans(models.PLAN_TYPE_INDIVIDUAL))
	assert.Equal(t, 0, basic.MaxPlans(models.PLAN_TYPE_FAMILIAR))
	assert.Equal(t, 0, basic.MaxPlans(models.PLAN_TYPE_FILHO))

	familiar := CapabilitiesFor(TierFamiliar, false)
	assert.Equal(t, 0, familiar.MaxPlans(models.PLAN_TYPE_INDIVIDUAL))
	assert.Equal(t, 1, familiar.MaxPlans(models.PLAN_TYPE_FAMILIAR))
	assert.Equal(t, 1, familiar.MaxPlans(models.PLAN_TYPE_FILHO))

	premium := CapabilitiesFor(TierPremium, false)
	assert.Equal(t, 1, premium.MaxPlans(models.PLAN_TYPE_INDIVIDUAL))
	assert.Equal(t, 1, premium.MaxPlans(models.PLAN_TYPE_FAMILIAR))
	assert.Equal(t, 3, premium.MaxPlans(models.PLAN_TYPE_FILHO))

	none := CapabilitiesFor(TierNone, false)
	for _, pt := range []string{models.PLAN_TYPE_INDIVIDUAL, models.PLAN_TYPE_FAMILIAR, models.PLAN_TYPE_FILHO} {
		assert.Equal(t, 0, none.MaxPlans(pt))
	}
}

func TestCheckPlanQuota(t *testing.T) {
	caps := CapabilitiesFor(TierPremium, false)

	assert.NoError(t, caps.CheckPlanQuota(models.PLAN_TYPE_FILHO, 2))
	assert.ErrorIs(t, caps.CheckPlanQuota(models.PLAN_TYPE_FILHO, 3), ErrUpgradeRequired)
	assert.ErrorIs(t, caps.CheckPlanQuota(models.PLAN_TYPE_INDIVIDUAL, 1), ErrUpgradeRequired)
}

func TestCheckAIAccess(t *testing.T) {
	assert.ErrorIs(t, CapabilitiesFor(TierBasic, false).CheckAIAccess(), ErrUpgradeRequired)
	assert.NoError(t, CapabilitiesFor(TierFamiliar, false).CheckAIAccess())
	assert.NoError(t, CapabilitiesFor(TierNone, true).CheckAIAccess())
}

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{in: "basic", want: TierBasic},
		{in: "FAMILIAR", want: TierFamiliar},
		{in: " premium ", want: TierPremium},
		{in: "gold", want: TierNone},
		{in: "", want: TierNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTier(tt.in), "NormalizeTier(%q)", tt.in)
	}
}

func TestTierRank(t *testing.T) {
	if TierRank(TierNone) >= TierRank(TierBasic) {
		t.Fatalf("expected basic to outrank no subscription")
	}
	if TierRank(TierBasic) >= TierRank(TierFamiliar) {
		t.Fatalf("expected familiar to outrank basic")
	}
	if TierRank(TierFamiliar) >= TierRank(TierPremium) {
		t.Fatalf("expected premium to outrank familiar")
	}
}
