package client

import (
	"context"
	"sync"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
)

// DefaultPollInterval matches the refresh cadence of the task screen.
const DefaultPollInterval = 5 * time.Second

// TaskFetcher is the slice of Client the poller needs.
type TaskFetcher interface {
	ListTasks(ctx context.Context) ([]domain.StaffTask, error)
}

// TaskPoller refreshes a staff member's task list on an interval. Every
// Refresh bumps a generation counter; a response is only applied if no
// newer fetch has started since, so a slow response can never overwrite
// the result of a later one.
type TaskPoller struct {
	fetcher  TaskFetcher
	interval time.Duration
	onUpdate func([]domain.StaffTask)

	mu         sync.Mutex
	generation uint64
	tasks      []domain.StaffTask
}

func NewTaskPoller(fetcher TaskFetcher, interval time.Duration, onUpdate func([]domain.StaffTask)) *TaskPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &TaskPoller{
		fetcher:  fetcher,
		interval: interval,
		onUpdate: onUpdate,
	}
}

// Run fetches immediately, then on every tick until ctx is cancelled.
func (p *TaskPoller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh performs one fetch. Stale responses are discarded.
func (p *TaskPoller) Refresh(ctx context.Context) {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	tasks, err := p.fetcher.ListTasks(ctx)
	if err != nil {
		logger.Warn("Task fetch failed", "error", err)
		return
	}

	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		return
	}
	p.tasks = tasks
	p.mu.Unlock()

	if p.onUpdate != nil {
		p.onUpdate(tasks)
	}
}

// Tasks returns the last applied task list.
func (p *TaskPoller) Tasks() []domain.StaffTask {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks
}
