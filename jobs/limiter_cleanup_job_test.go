package jobs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls   atomic.Int32
	maxIdle atomic.Int64
}

func (s *countingSweeper) Cleanup(maxIdle time.Duration) int {
	s.calls.Add(1)
	s.maxIdle.Store(int64(maxIdle))
	return 1
}

func TestLimiterCleanupJobSweepsUntilStopped(t *testing.T) {
	sweeper := &countingSweeper{}
	job := NewLimiterCleanupJob(sweeper, 5*time.Millisecond, time.Minute)

	job.Start()
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(time.Minute), sweeper.maxIdle.Load())

	calls := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, sweeper.calls.Load())
}
