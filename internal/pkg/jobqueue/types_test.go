package jobqueue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJob(t *testing.T) {
	payload := RefreshPlanStatsPayload{PlanID: 42}.ToMap()
	job := NewJob(JobTypeRefreshPlanStats, payload)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, JobTypeRefreshPlanStats, job.Type)
	assert.Equal(t, JobStatusPending, job.Status)
	assert.Equal(t, payload, job.Payload)
	assert.Equal(t, defaultMaxRetries, job.MaxRetries)
	assert.Zero(t, job.RetryCount)
}

func TestJob_IsRetryable(t *testing.T) {
	job := &Job{RetryCount: 1, MaxRetries: 3}
	assert.True(t, job.IsRetryable())

	job.RetryCount = 3
	assert.False(t, job.IsRetryable())
}

func TestJob_JSONRoundTrip(t *testing.T) {
	job := NewJob(JobTypeFlushViewCounters, nil)

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded Job
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, job.ID, decoded.ID)
	assert.Equal(t, job.Type, decoded.Type)
	assert.Equal(t, job.Status, decoded.Status)
}

func TestRefreshPlanStatsPayload_RoundTrip(t *testing.T) {
	m := RefreshPlanStatsPayload{PlanID: 7}.ToMap()
	assert.Equal(t, "7", m["plan_id"])

	payload, err := RefreshPlanStatsPayloadFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, uint(7), payload.PlanID)
}

func TestRefreshPlanStatsPayload_Invalid(t *testing.T) {
	_, err := RefreshPlanStatsPayloadFromMap(map[string]string{})
	assert.Error(t, err)

	_, err = RefreshPlanStatsPayloadFromMap(map[string]string{"plan_id": "abc"})
	assert.Error(t, err)
}
