package importer

import (
	"errors"
	"fmt"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/internal/pkg/areas"
)

// ErrNoValidRows means every imported row was dropped; the whole import is
// reported as failed and no plan is created from it.
var ErrNoValidRows = errors.New("importer: nenhuma linha válida encontrada no arquivo")

// Row is the shape delivered by the external file parser (xlsx/csv/pdf).
// This package never touches file bytes, only parsed rows.
type Row struct {
	Year     int    `json:"year"`
	Age      int    `json:"age"`
	AreaName string `json:"area_name"`
	GoalText string `json:"goal_text"`
}

// Result carries the merged goals plus the non-fatal warnings collected
// along the way, so callers can show both.
type Result struct {
	Goals    []models.Goal `json:"goals"`
	Warnings []string      `json:"warnings"`
}

// Summary holds display-only fields derived from a merged goal set. They
// are never stored.
type Summary struct {
	StartYear  int `json:"start_year"`
	StartAge   int `json:"start_age"`
	YearsToAdd int `json:"years_to_add"`
}

// Merge normalizes externally-parsed rows into canonical goals. Rows whose
// area name does not map to one of the seven canonical areas are dropped
// with one warning each; rows with blank goal text are kept as valid
// placeholder slots. Zero valid rows is fatal.
func Merge(rows []Row) (*Result, error) {
	res := &Result{
		Goals:    make([]models.Goal, 0, len(rows)),
		Warnings: make([]string, 0),
	}

	for i, row := range rows {
		area, ok := areas.Parse(row.AreaName)
		if !ok {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("linha %d: área %q não reconhecida, linha ignorada", i+1, row.AreaName))
			continue
		}
		res.Goals = append(res.Goals, models.Goal{
			PeriodYear:  row.Year,
			Age:         row.Age,
			Area:        area,
			GoalText:    row.GoalText,
			IsCompleted: false,
		})
	}

	if len(res.Goals) == 0 {
		return nil, ErrNoValidRows
	}
	return res, nil
}

// Summarize derives the display-only plan header fields from merged goals:
// earliest year, earliest age, number of distinct years.
func Summarize(goals []models.Goal) Summary {
	if len(goals) == 0 {
		return Summary{}
	}

	s := Summary{StartYear: goals[0].PeriodYear, StartAge: goals[0].Age}
	years := make(map[int]struct{}, len(goals))
	for _, g := range goals {
		years[g.PeriodYear] = struct{}{}
		if g.PeriodYear < s.StartYear {
			s.StartYear = g.PeriodYear
		}
		if g.Age < s.StartAge {
			s.StartAge = g.Age
		}
	}
	s.YearsToAdd = len(years)
	return s
}

// Blend overlays imported goals onto a generated skeleton: skeleton slots
// for a (year, area) pair covered by the import are replaced by the imported
// goals, untouched slots stay, and imported goals outside the skeleton's
// year span are appended. Used when a plan is created from both a grid and
// a file.
func Blend(skeleton, imported []models.Goal) []models.Goal {
	type slot struct {
		year int
		area areas.Area
	}
	covered := make(map[slot][]models.Goal, len(imported))
	for _, g := range imported {
		k := slot{year: g.PeriodYear, area: g.Area}
		covered[k] = append(covered[k], g)
	}

	out := make([]models.Goal, 0, len(skeleton)+len(imported))
	used := make(map[slot]bool, len(covered))
	for _, g := range skeleton {
		k := slot{year: g.PeriodYear, area: g.Area}
		if replacements, ok := covered[k]; ok {
			if !used[k] {
				out = append(out, replacements...)
				used[k] = true
			}
			continue
		}
		out = append(out, g)
	}
	for _, g := range imported {
		k := slot{year: g.PeriodYear, area: g.Area}
		if !used[k] {
			out = append(out, covered[k]...)
			used[k] = true
		}
	}
	return out
}
