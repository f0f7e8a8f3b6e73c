package jobqueue

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const counterFlushInterval = 5 * time.Minute

// Manager owns the queue workers and the periodic counter flush
type Manager struct {
	queue *Queue

	stop chan struct{}
	wg   sync.WaitGroup
}

var (
	managerInstance *Manager
	managerOnce     sync.Once
)

// StartManager starts the background workers once and returns the manager
func StartManager() *Manager {
	managerOnce.Do(func() {
		managerInstance = &Manager{
			queue: GetQueue(),
			stop:  make(chan struct{}),
		}
		managerInstance.start()
	})
	return managerInstance
}

func (m *Manager) start() {
	m.queue.Start()

	m.wg.Add(1)
	go m.flushLoop()
	log.Info("[JobQueue] background workers started")
}

// Stop shuts down the periodic flush and the queue workers
func (m *Manager) Stop() {
	close(m.stop)
	m.wg.Wait()
	m.queue.Stop()
}

func (m *Manager) flushLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(counterFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			if _, err := m.queue.EnqueueFlushViewCounters(); err != nil {
				log.Errorf("[JobQueue] failed to enqueue counter flush: %v", err)
			}
		}
	}
}
