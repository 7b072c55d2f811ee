package jobs

import (
	"time"

	"cleaning-marketplace-server/utils"
)

// Sweeper drops state that has been idle for longer than maxIdle
type Sweeper interface {
	Cleanup(maxIdle time.Duration) int
}

// LimiterCleanupJob periodically evicts idle per-client rate limiters
type LimiterCleanupJob struct {
	sweeper  Sweeper
	interval time.Duration
	maxIdle  time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewLimiterCleanupJob creates a new cleanup job
func NewLimiterCleanupJob(sweeper Sweeper, interval, maxIdle time.Duration) *LimiterCleanupJob {
	return &LimiterCleanupJob{
		sweeper:  sweeper,
		interval: interval,
		maxIdle:  maxIdle,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start begins the cleanup job
func (j *LimiterCleanupJob) Start() {
	go j.run()
	utils.Logger.WithField("interval", j.interval.String()).Info("🚀 Limiter cleanup job started")
}

// Stop stops the job and waits for the loop to exit
func (j *LimiterCleanupJob) Stop() {
	close(j.stopChan)
	<-j.doneChan
	utils.Logger.Info("🛑 Limiter cleanup job stopped")
}

func (j *LimiterCleanupJob) run() {
	defer close(j.doneChan)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stopChan:
			return
		}
	}
}

func (j *LimiterCleanupJob) sweep() {
	if removed := j.sweeper.Cleanup(j.maxIdle); removed > 0 {
		utils.Logger.WithField("removed", removed).Debug("🧹 Evicted idle rate limiters")
	}
}
