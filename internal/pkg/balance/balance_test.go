package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		name string
		p    Period
		want string
	}{
		{name: "no range", p: Period{}, want: "Todos os períodos"},
		{name: "from only", p: Period{From: date(2024, 3, 1)}, want: "2024"},
		{name: "to only", p: Period{To: date(2025, 6, 30)}, want: "2025"},
		{name: "same year", p: Period{From: date(2024, 1, 1), To: date(2024, 12, 31)}, want: "2024"},
		{name: "multi year", p: Period{From: date(2023, 6, 1), To: date(2025, 1, 1)}, want: "2023 - 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Label())
		})
	}
}

func TestStripTagInvertsTagTitle(t *testing.T) {
	periods := []Period{
		{},
		{From: date(2024, 1, 1)},
		{From: date(2024, 1, 1), To: date(2024, 12, 31)},
		{From: date(2023, 6, 1), To: date(2025, 1, 1)},
	}
	titles := []string{
		"Reflexão do semestre",
		"Balanço geral",
		"título com [colchetes] no meio",
	}

	for _, p := range periods {
		for _, raw := range titles {
			tagged := TagTitle(p, raw)
			assert.Equal(t, raw, StripTag(tagged), "period %q title %q", p.Label(), raw)
		}
	}
}

func TestStripTagLeavesUntaggedTitles(t *testing.T) {
	assert.Equal(t, "Nota comum", StripTag("Nota comum"))
	assert.Equal(t, "[Outra coisa] Nota", StripTag("[Outra coisa] Nota"))
}

func TestTagPrefix(t *testing.T) {
	assert.Equal(t, "[Balanço", TagPrefix(Period{}))
	assert.Equal(t, "[Balanço 2024]", TagPrefix(Period{From: date(2024, 1, 1)}))
	assert.Equal(t, "[Balanço 2025]", TagPrefix(Period{To: date(2025, 12, 31)}))
	assert.Equal(t, "[Balanço 2023 - 2025]", TagPrefix(Period{From: date(2023, 1, 1), To: date(2025, 1, 1)}))
}

func TestMatchesPeriod(t *testing.T) {
	in2024 := Period{From: date(2024, 1, 1), To: date(2024, 12, 31)}
	title := TagTitle(in2024, "Revisão anual")

	assert.True(t, MatchesPeriod(title, in2024))
	assert.True(t, MatchesPeriod(title, Period{})) // bare prefix matches any period
	assert.False(t, MatchesPeriod(title, Period{From: date(2023, 1, 1), To: date(2023, 12, 31)}))
	assert.False(t, MatchesPeriod("Nota comum", Period{}))
}

func TestIsTagged(t *testing.T) {
	assert.True(t, IsTagged(TagTitle(Period{}, "x")))
	assert.False(t, IsTagged("sem tag"))
}
