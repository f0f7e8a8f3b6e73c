package areas

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Area identifies one of the seven fixed life areas. The set is immutable
// and shared across all plans; every aggregation downstream is keyed on it.
type Area string

const (
	AreaEspiritual   Area = "espiritual"
	AreaIntelectual  Area = "intelectual"
	AreaFamiliar     Area = "familiar"
	AreaSocial       Area = "social"
	AreaFinanceiro   Area = "financeiro"
	AreaProfissional Area = "profissional"
	AreaSaude        Area = "saude"
)

type defaults struct {
	Label string
	Color string
}

// registryOrder is the canonical order used by stats output and by the
// skeleton generator. Do not reorder.
var registryOrder = []Area{
	AreaEspiritual,
	AreaIntelectual,
	AreaFamiliar,
	AreaSocial,
	AreaFinanceiro,
	AreaProfissional,
	AreaSaude,
}

var registry = map[Area]defaults{
	AreaEspiritual:   {Label: "Espiritual", Color: "#8B5CF6"},
	AreaIntelectual:  {Label: "Intelectual", Color: "#3B82F6"},
	AreaFamiliar:     {Label: "Familiar", Color: "#EC4899"},
	AreaSocial:       {Label: "Social", Color: "#F59E0B"},
	AreaFinanceiro:   {Label: "Financeiro", Color: "#10B981"},
	AreaProfissional: {Label: "Profissional", Color: "#6366F1"},
	AreaSaude:        {Label: "Saúde", Color: "#EF4444"},
}

// All returns the seven areas in registry order.
func All() []Area {
	out := make([]Area, len(registryOrder))
	copy(out, registryOrder)
	return out
}

// IsValid reports whether id is one of the seven canonical areas.
func IsValid(id Area) bool {
	_, ok := registry[id]
	return ok
}

// Customization is the per-plan override shape consumed by the resolvers.
// A nil entry for an area means "use the registry default".
type Customization struct {
	Label string
	Color string
}

// DefaultLabel returns the registry label for an area. An unknown area id is
// a programming error and panics.
func DefaultLabel(area Area) string {
	return mustLookup(area).Label
}

// DefaultColor returns the registry hex color for an area. An unknown area
// id is a programming error and panics.
func DefaultColor(area Area) string {
	return mustLookup(area).Color
}

// Label resolves the display label for an area against a plan's
// customizations, falling back to the registry default.
func Label(area Area, customizations map[Area]Customization) string {
	def := mustLookup(area)
	if c, ok := customizations[area]; ok && strings.TrimSpace(c.Label) != "" {
		return c.Label
	}
	return def.Label
}

// Color resolves the hex color for an area against a plan's customizations,
// falling back to the registry default.
func Color(area Area, customizations map[Area]Customization) string {
	def := mustLookup(area)
	if c, ok := customizations[area]; ok && strings.TrimSpace(c.Color) != "" {
		return c.Color
	}
	return def.Color
}

func mustLookup(area Area) defaults {
	def, ok := registry[area]
	if !ok {
		panic(fmt.Sprintf("areas: unknown area id %q", area))
	}
	return def
}

// Parse maps a free-form area name (as found in imported spreadsheets) to a
// canonical area. Matching is case-insensitive and accent-insensitive, so
// "Saúde", "SAUDE" and "saúde" all resolve to AreaSaude.
func Parse(name string) (Area, bool) {
	key := normalizeName(name)
	for _, a := range registryOrder {
		if normalizeName(string(a)) == key || normalizeName(registry[a].Label) == key {
			return a, true
		}
	}
	return "", false
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeName(s string) string {
	out, _, err := transform.String(stripAccents, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
