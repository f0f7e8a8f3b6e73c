package jobqueue

import (
	"context"

	"github.com/planovida/planovida/internal/pkg/metrics/counter"
)

// processFlushViewCounters drains the pending Redis view counters into the
// life_plans table.
func (q *Queue) processFlushViewCounters(_ context.Context, _ *Job) error {
	return counter.FlushAll()
}
