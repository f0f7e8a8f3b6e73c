package entitlements

import (
	"errors"
	"strings"

	"github.com/planovida/planovida/app/models"
)

// Tier is the ordered subscription level: basic < familiar < premium. The
// empty tier means "no active subscription".
type Tier string

const (
	TierNone     Tier = ""
	TierBasic    Tier = "basic"
	TierFamiliar Tier = "familiar"
	TierPremium  Tier = "premium"
)

// Report depth per tier, consumed by the AI summary gate.
const (
	ReportDepthNone     = 0
	ReportDepthBasic    = 1
	ReportDepthStandard = 2
	ReportDepthFull     = 3
)

// ErrUpgradeRequired is the policy-denial signal. Callers route it to an
// upsell flow instead of a generic error/retry path.
var ErrUpgradeRequired = errors.New("entitlements: upgrade required")

// Capabilities is the resolved permission set for one tier+role. Every call
// site consumes this one object instead of re-deriving tier booleans ad hoc.
type Capabilities struct {
	Tier        Tier
	IsAdmin     bool
	HasAIAccess bool
	ReportDepth int

	maxPlans map[string]int
}

// CapabilitiesFor maps a subscription tier and admin role to a capability
// set. These checks are advisory gates; storage-level quota enforcement
// belongs to the persistence layer.
func CapabilitiesFor(tier Tier, isAdmin bool) Capabilities {
	caps := Capabilities{
		Tier:    tier,
		IsAdmin: isAdmin,
	}

	switch tier {
	case TierBasic:
		caps.maxPlans = map[string]int{models.PLAN_TYPE_INDIVIDUAL: 1}
		caps.ReportDepth = ReportDepthBasic
	case TierFamiliar:
		caps.maxPlans = map[string]int{models.PLAN_TYPE_FAMILIAR: 1, models.PLAN_TYPE_FILHO: 1}
		caps.ReportDepth = ReportDepthStandard
		caps.HasAIAccess = true
	case TierPremium:
		caps.maxPlans = map[string]int{
			models.PLAN_TYPE_INDIVIDUAL: 1,
			models.PLAN_TYPE_FAMILIAR:   1,
			models.PLAN_TYPE_FILHO:      3,
		}
		caps.ReportDepth = ReportDepthFull
		caps.HasAIAccess = true
	default:
		// No active subscription: no plan creation, no reports.
		caps.maxPlans = map[string]int{}
		caps.ReportDepth = ReportDepthNone
	}

	if isAdmin {
		caps.HasAIAccess = true
	}

	return caps
}

// MaxPlans returns how many plans of the given type the tier allows.
func (c Capabilities) MaxPlans(planType string) int {
	return c.maxPlans[planType]
}

// CheckPlanQuota returns ErrUpgradeRequired when creating one more plan of
// the given type would exceed the tier quota.
func (c Capabilities) CheckPlanQuota(planType string, existing int) error {
	if existing >= c.MaxPlans(planType) {
		return ErrUpgradeRequired
	}
	return nil
}

// CheckAIAccess returns ErrUpgradeRequired when the capability set does not
// include AI-generated summaries.
func (c Capabilities) CheckAIAccess() error {
	if !c.HasAIAccess {
		return ErrUpgradeRequired
	}
	return nil
}

// NormalizeTier maps free-form tier strings to a canonical Tier; anything
// unrecognized is treated as no subscription.
func NormalizeTier(tier string) Tier {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case string(TierBasic):
		return TierBasic
	case string(TierFamiliar):
		return TierFamiliar
	case string(TierPremium):
		return TierPremium
	default:
		return TierNone
	}
}

// TierRank gives the total order basic(1) < familiar(2) < premium(3) used
// by upgrade/manage UI routing. A user on a higher tier is never offered an
// "upgrade" to a lower one.
func TierRank(tier Tier) int {
	switch tier {
	case TierPremium:
		return 3
	case TierFamiliar:
		return 2
	case TierBasic:
		return 1
	default:
		return 0
	}
}
