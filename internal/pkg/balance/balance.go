package balance

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Period is the reporting window a balance reflection covers. Both bounds
// optional; the zero value means "all periods".
type Period struct {
	From *time.Time
	To   *time.Time
}

const allPeriodsLabel = "Todos os períodos"

// tagRE matches the bracketed balance prefix, including the trailing space
// that TagTitle inserts. StripTag must be the exact inverse of TagTitle for
// every label Period.Label can produce.
var tagRE = regexp.MustCompile(`^\[Balanço [^\]]*\] `)

// Label renders the human-readable period label: "Todos os períodos" with
// no bounds, the year for single-year and single-bound windows,
// "fromYear - toYear" across years.
func (p Period) Label() string {
	switch {
	case p.From == nil && p.To == nil:
		return allPeriodsLabel
	case p.From == nil:
		return fmt.Sprintf("%d", p.To.Year())
	case p.To == nil:
		return fmt.Sprintf("%d", p.From.Year())
	case p.From.Year() == p.To.Year():
		return fmt.Sprintf("%d", p.From.Year())
	default:
		return fmt.Sprintf("%d - %d", p.From.Year(), p.To.Year())
	}
}

// IsSet reports whether the period carries any bound.
func (p Period) IsSet() bool {
	return p.From != nil || p.To != nil
}

// TagTitle prefixes a raw note title with the period tag. The tag is the
// only linkage between a note and its reporting period.
func TagTitle(p Period, rawTitle string) string {
	return fmt.Sprintf("[Balanço %s] %s", p.Label(), rawTitle)
}

// StripTag removes a leading balance tag, leaving the raw title untouched.
// Titles without a tag pass through unchanged.
func StripTag(title string) string {
	return tagRE.ReplaceAllString(title, "")
}

// IsTagged reports whether a title carries any balance tag.
func IsTagged(title string) bool {
	return strings.HasPrefix(title, "[Balanço")
}

// TagPrefix is the prefix notes are filtered on for display: the concrete
// tag when a period is set, the bare "[Balanço" marker otherwise (matches
// notes from any period).
func TagPrefix(p Period) string {
	if !p.IsSet() {
		return "[Balanço"
	}
	return fmt.Sprintf("[Balanço %s]", p.Label())
}

// MatchesPeriod reports whether a note title belongs to the given period's
// display filter.
func MatchesPeriod(title string, p Period) bool {
	return strings.HasPrefix(title, TagPrefix(p))
}
