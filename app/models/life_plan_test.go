package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifePlanValidateIndividual(t *testing.T) {
	plan := &LifePlan{
		UserID:   1,
		Title:    "Meu Plano de Vida",
		PlanType: PLAN_TYPE_INDIVIDUAL,
	}

	require.NoError(t, plan.Validate())
	assert.True(t, plan.IsIndividual())
}

func TestLifePlanValidateRequiresMemberName(t *testing.T) {
	plan := &LifePlan{
		UserID:   1,
		Title:    "Plano da Ana",
		PlanType: PLAN_TYPE_FILHO,
	}

	assert.Error(t, plan.Validate())

	plan.MemberName = "Ana"
	assert.NoError(t, plan.Validate())
}

func TestLifePlanValidateRejectsUnknownType(t *testing.T) {
	plan := &LifePlan{
		UserID:   1,
		Title:    "Plano",
		PlanType: "empresa",
	}

	assert.Error(t, plan.Validate())
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "meu plano", NormalizeTitle("  Meu Plano "))
	assert.Equal(t, NormalizeTitle("MINHA VIDA"), NormalizeTitle("minha vida"))
}

func TestGoalIsFilled(t *testing.T) {
	g := &Goal{GoalText: "  "}
	assert.False(t, g.IsFilled())

	g.GoalText = "Ler 12 livros"
	assert.True(t, g.IsFilled())
}
