package areas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsSevenAreasInRegistryOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 7)
	assert.Equal(t, AreaEspiritual, all[0])
	assert.Equal(t, AreaSaude, all[6])
}

func TestLabelFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Saúde", Label(AreaSaude, nil))
	assert.Equal(t, "Financeiro", Label(AreaFinanceiro, map[Area]Customization{}))
}

func TestLabelUsesCustomization(t *testing.T) {
	custom := map[Area]Customization{
		AreaFinanceiro: {Label: "Dinheiro", Color: "#000000"},
	}
	assert.Equal(t, "Dinheiro", Label(AreaFinanceiro, custom))
	assert.Equal(t, "#000000", Color(AreaFinanceiro, custom))
	// Other areas still resolve to defaults.
	assert.Equal(t, "Social", Label(AreaSocial, custom))
}

func TestBlankCustomizationFallsBack(t *testing.T) {
	custom := map[Area]Customization{
		AreaSocial: {Label: "  ", Color: ""},
	}
	assert.Equal(t, "Social", Label(AreaSocial, custom))
	assert.Equal(t, DefaultColor(AreaSocial), Color(AreaSocial, custom))
}

func TestUnknownAreaPanics(t *testing.T) {
	assert.Panics(t, func() { Label("astral", nil) })
	assert.Panics(t, func() { DefaultColor("astral") })
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Area
		ok   bool
	}{
		{in: "saude", want: AreaSaude, ok: true},
		{in: "Saúde", want: AreaSaude, ok: true},
		{in: "SAÚDE", want: AreaSaude, ok: true},
		{in: " profissional ", want: AreaProfissional, ok: true},
		{in: "Espiritual", want: AreaEspiritual, ok: true},
		{in: "Inexistente", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.ok, ok, "Parse(%q)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
		}
	}
}
