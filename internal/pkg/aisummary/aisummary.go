package aisummary

import (
	"context"
	"fmt"
	"strings"

	"github.com/planovida/planovida/internal/pkg/areas"
	"github.com/planovida/planovida/internal/pkg/entitlements"
	"github.com/planovida/planovida/internal/pkg/progress"
)

// Style selects the tone of the generated summary.
type Style string

const (
	StyleMotivacional Style = "motivacional"
	StyleObjetivo     Style = "objetivo"
)

// Input is everything the generator needs; it never sees raw goals, only
// aggregated stats.
type Input struct {
	PlanTitle string
	Stats     []progress.AreaStat
	Overall   int
	Style     Style
}

// Generator is the external AI collaborator. Implementations call out to a
// model provider; the fallback below is used when none is wired.
type Generator interface {
	Summarize(ctx context.Context, in Input) (string, error)
}

// Gate wraps a Generator behind the tier policy: only capability sets with
// AI access may generate, everything else gets ErrUpgradeRequired.
type Gate struct {
	gen Generator
}

// NewGate creates a gate around the given generator. A nil generator falls
// back to the deterministic text builder.
func NewGate(gen Generator) *Gate {
	return &Gate{gen: gen}
}

// Summarize enforces the capability check before delegating. The report is
// truncated to the depth the tier allows.
func (g *Gate) Summarize(ctx context.Context, caps entitlements.Capabilities, in Input) (string, error) {
	if err := caps.CheckAIAccess(); err != nil {
		return "", err
	}
	if g.gen != nil {
		return g.gen.Summarize(ctx, in)
	}
	return FallbackText(in, caps.ReportDepth), nil
}

// FallbackText assembles a plain-language summary without any AI provider.
// Depth 1 gives the overall line only, deeper reports add best/worst area
// and the attention list.
func FallbackText(in Input, depth int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "O plano %q está %d%% concluído.", in.PlanTitle, in.Overall)

	if depth >= entitlements.ReportDepthStandard {
		if best, ok := progress.Best(in.Stats); ok && best.Total > 0 {
			fmt.Fprintf(&b, " Melhor área: %s (%d%%).", areas.DefaultLabel(best.Area), best.Percentage)
		}
		if worst, ok := progress.Worst(in.Stats); ok && worst.Total > 0 {
			fmt.Fprintf(&b, " Área mais fraca: %s (%d%%).", areas.DefaultLabel(worst.Area), worst.Percentage)
		}
	}

	if depth >= entitlements.ReportDepthFull {
		attention := progress.NeedsAttention(in.Stats)
		if len(attention) > 0 {
			labels := make([]string, 0, len(attention))
			for _, s := range attention {
				labels = append(labels, areas.DefaultLabel(s.Area))
			}
			fmt.Fprintf(&b, " Precisam de atenção: %s.", strings.Join(labels, ", "))
		}
	}

	return b.String()
}
