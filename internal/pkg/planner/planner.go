package planner

import (
	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/internal/pkg/areas"
)

// BuildSkeleton generates the default year×area goal grid for a new plan:
// one empty slot per (year, area), yearsToAdd*7 goals total. Output order is
// year-major, registry-area-minor and stable for identical inputs.
func BuildSkeleton(startYear, startAge, yearsToAdd int) []models.Goal {
	if yearsToAdd <= 0 {
		return nil
	}

	all := areas.All()
	goals := make([]models.Goal, 0, yearsToAdd*len(all))
	for i := 0; i < yearsToAdd; i++ {
		for _, area := range all {
			goals = append(goals, models.Goal{
				PeriodYear:  startYear + i,
				Age:         startAge + i,
				Area:        area,
				GoalText:    "",
				IsCompleted: false,
			})
		}
	}
	return goals
}
