package jobqueue

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// JobType identifies the kind of background work a job carries
type JobType string

const (
	JobTypeRefreshPlanStats  JobType = "refresh_plan_stats"
	JobTypeFlushViewCounters JobType = "flush_view_counters"
)

// JobStatus represents the lifecycle state of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job is the unit of work moved through the Redis queue
type Job struct {
	ID          string            `json:"id"`
	Type        JobType           `json:"type"`
	Status      JobStatus         `json:"status"`
	Payload     map[string]string `json:"payload"`
	CreatedAt   time.Time         `json:"created_at"`
	StartedAt   *time.Time        `json:"started_at,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	LastError   string            `json:"last_error,omitempty"`
	RetryCount  int               `json:"retry_count"`
	MaxRetries  int               `json:"max_retries"`
}

// NewJob creates a pending job with a fresh UUID
func NewJob(jobType JobType, payload map[string]string) *Job {
	return &Job{
		ID:         uuid.New().String(),
		Type:       jobType,
		Status:     JobStatusPending,
		Payload:    payload,
		CreatedAt:  time.Now(),
		MaxRetries: defaultMaxRetries,
	}
}

// IsRetryable reports whether a failed job still has retries left
func (j *Job) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries
}

// RefreshPlanStatsPayload carries the plan whose cached progress should be recomputed
type RefreshPlanStatsPayload struct {
	PlanID uint
}

func (p RefreshPlanStatsPayload) ToMap() map[string]string {
	return map[string]string{
		"plan_id": strconv.FormatUint(uint64(p.PlanID), 10),
	}
}

func RefreshPlanStatsPayloadFromMap(m map[string]string) (RefreshPlanStatsPayload, error) {
	raw, ok := m["plan_id"]
	if !ok {
		return RefreshPlanStatsPayload{}, fmt.Errorf("payload is missing plan_id")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return RefreshPlanStatsPayload{}, fmt.Errorf("invalid plan_id %q: %w", raw, err)
	}
	return RefreshPlanStatsPayload{PlanID: uint(id)}, nil
}
