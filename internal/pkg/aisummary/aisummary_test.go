package aisummary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planovida/planovida/internal/pkg/areas"
	"github.com/planovida/planovida/internal/pkg/entitlements"
	"github.com/planovida/planovida/internal/pkg/progress"
)

func sampleInput() Input {
	return Input{
		PlanTitle: "Meu Plano",
		Overall:   36,
		Style:     StyleObjetivo,
		Stats: []progress.AreaStat{
			{Area: areas.AreaEspiritual, Total: 2, Completed: 2, Percentage: 100},
			{Area: areas.AreaSocial, Total: 2, Completed: 0, Percentage: 0},
		},
	}
}

func TestGateDeniesWithoutAIAccess(t *testing.T) {
	gate := NewGate(nil)

	_, err := gate.Summarize(context.Background(), entitlements.CapabilitiesFor(entitlements.TierBasic, false), sampleInput())
	assert.ErrorIs(t, err, entitlements.ErrUpgradeRequired)

	_, err = gate.Summarize(context.Background(), entitlements.CapabilitiesFor(entitlements.TierNone, false), sampleInput())
	assert.ErrorIs(t, err, entitlements.ErrUpgradeRequired)
}

func TestGateAllowsAdminRegardlessOfTier(t *testing.T) {
	gate := NewGate(nil)

	out, err := gate.Summarize(context.Background(), entitlements.CapabilitiesFor(entitlements.TierNone, true), sampleInput())
	require.NoError(t, err)
	assert.Contains(t, out, "36%")
}

type stubGenerator struct{ out string }

func (s stubGenerator) Summarize(ctx context.Context, in Input) (string, error) {
	return s.out, nil
}

func TestGateDelegatesToGenerator(t *testing.T) {
	gate := NewGate(stubGenerator{out: "resumo gerado"})

	out, err := gate.Summarize(context.Background(), entitlements.CapabilitiesFor(entitlements.TierPremium, false), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "resumo gerado", out)
}

func TestFallbackTextDepth(t *testing.T) {
	in := sampleInput()

	basic := FallbackText(in, entitlements.ReportDepthBasic)
	assert.Contains(t, basic, "36%")
	assert.NotContains(t, basic, "Melhor área")

	standard := FallbackText(in, entitlements.ReportDepthStandard)
	assert.Contains(t, standard, "Melhor área: Espiritual")
	assert.NotContains(t, standard, "Precisam de atenção")

	full := FallbackText(in, entitlements.ReportDepthFull)
	assert.Contains(t, full, "Precisam de atenção: Social")
}
