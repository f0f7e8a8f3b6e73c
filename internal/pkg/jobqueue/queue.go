package jobqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/planovida/planovida/internal/pkg/cache"
)

const (
	queueKey          = "jobs:queue"
	jobKeyPrefix      = "jobs:data:"
	jobTTL            = 24 * time.Hour
	defaultMaxRetries = 3
	popTimeout        = 5 * time.Second
)

// Queue is a Redis-list backed job queue with a fixed worker pool
type Queue struct {
	client  *redis.Client
	workers int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var (
	queueInstance *Queue
	queueOnce     sync.Once
)

// GetQueue returns the process-wide queue bound to the shared Redis client
func GetQueue() *Queue {
	queueOnce.Do(func() {
		queueInstance = NewQueue(cache.GetClient(), 2)
	})
	return queueInstance
}

func NewQueue(client *redis.Client, workers int) *Queue {
	ctx, cancel := context.WithCancel(context.Background())
	return &Queue{
		client:  client,
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// EnqueueJob stores the job payload and pushes its ID onto the queue
func (q *Queue) EnqueueJob(jobType JobType, payload map[string]string) (*Job, error) {
	job := NewJob(jobType, payload)
	if err := q.saveJob(q.ctx, job); err != nil {
		return nil, err
	}
	if err := q.client.LPush(q.ctx, queueKey, job.ID).Err(); err != nil {
		return nil, fmt.Errorf("failed to enqueue job %s: %w", job.ID, err)
	}
	return job, nil
}

// EnqueueRefreshPlanStats schedules a recompute of one plan's cached progress
func (q *Queue) EnqueueRefreshPlanStats(planID uint) (*Job, error) {
	payload := RefreshPlanStatsPayload{PlanID: planID}
	return q.EnqueueJob(JobTypeRefreshPlanStats, payload.ToMap())
}

// EnqueueFlushViewCounters schedules a drain of the pending view counters
func (q *Queue) EnqueueFlushViewCounters() (*Job, error) {
	return q.EnqueueJob(JobTypeFlushViewCounters, nil)
}

// Start launches the worker goroutines
func (q *Queue) Start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.workerLoop(i)
	}
}

// Stop cancels the workers and waits for in-flight jobs to finish
func (q *Queue) Stop() {
	q.cancel()
	q.wg.Wait()
}

func (q *Queue) workerLoop(worker int) {
	defer q.wg.Done()

	for {
		select {
		case <-q.ctx.Done():
			return
		default:
		}

		res, err := q.client.BRPop(q.ctx, popTimeout, queueKey).Result()
		if err != nil {
			if err == redis.Nil || q.ctx.Err() != nil {
				continue
			}
			log.Errorf("[JobQueue] worker %d: pop failed: %v", worker, err)
			time.Sleep(time.Second)
			continue
		}

		// BRPop returns [key, value]
		if len(res) != 2 {
			continue
		}
		q.handleJob(res[1])
	}
}

func (q *Queue) handleJob(jobID string) {
	job, err := q.loadJob(q.ctx, jobID)
	if err != nil {
		log.Errorf("[JobQueue] job %s: load failed: %v", jobID, err)
		return
	}

	now := time.Now()
	job.Status = JobStatusProcessing
	job.StartedAt = &now
	_ = q.saveJob(q.ctx, job)

	if err := q.process(q.ctx, job); err != nil {
		job.LastError = err.Error()
		job.RetryCount++
		if job.IsRetryable() {
			job.Status = JobStatusRetrying
			_ = q.saveJob(q.ctx, job)
			if rerr := q.client.LPush(q.ctx, queueKey, job.ID).Err(); rerr != nil {
				log.Errorf("[JobQueue] job %s: requeue failed: %v", job.ID, rerr)
			}
			return
		}
		job.Status = JobStatusFailed
		_ = q.saveJob(q.ctx, job)
		log.Errorf("[JobQueue] job %s (%s) failed permanently: %v", job.ID, job.Type, err)
		return
	}

	done := time.Now()
	job.Status = JobStatusCompleted
	job.CompletedAt = &done
	_ = q.saveJob(q.ctx, job)
}

func (q *Queue) process(ctx context.Context, job *Job) error {
	switch job.Type {
	case JobTypeRefreshPlanStats:
		return q.processRefreshPlanStats(ctx, job)
	case JobTypeFlushViewCounters:
		return q.processFlushViewCounters(ctx, job)
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}

func (q *Queue) saveJob(ctx context.Context, job *Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job %s: %w", job.ID, err)
	}
	return q.client.Set(ctx, jobKeyPrefix+job.ID, data, jobTTL).Err()
}

func (q *Queue) loadJob(ctx context.Context, jobID string) (*Job, error) {
	data, err := q.client.Get(ctx, jobKeyPrefix+jobID).Bytes()
	if err != nil {
		return nil, err
	}
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
