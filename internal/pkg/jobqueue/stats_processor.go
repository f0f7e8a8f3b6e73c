package jobqueue

import (
	"context"
	"fmt"

	"github.com/planovida/planovida/internal/pkg/statistics"
)

// processRefreshPlanStats recomputes and re-caches one plan's overall
// completion percentage after a goal mutation.
func (q *Queue) processRefreshPlanStats(_ context.Context, job *Job) error {
	payload, err := RefreshPlanStatsPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("failed to parse refresh stats payload: %w", err)
	}
	return statistics.RefreshPlanOverall(payload.PlanID)
}
