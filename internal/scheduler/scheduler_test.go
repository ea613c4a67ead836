package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJob struct {
	name    string
	enabled bool
	err     error
	release chan struct{}
	mu      sync.Mutex
	runs    int
}

func (f *fakeJob) Name() string         { return f.name }
func (f *fakeJob) CronSchedule() string { return "*/5 * * * *" }
func (f *fakeJob) Enabled() bool        { return f.enabled }

func (f *fakeJob) RunOnce(ctx context.Context) error {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	f.runs++
	f.mu.Unlock()
	return f.err
}

func (f *fakeJob) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs
}

var clockNow = time.Date(2026, 5, 2, 3, 0, 0, 0, time.UTC)

func TestScheduler_RunNow(t *testing.T) {
	t.Run("Executa e registra o status", func(t *testing.T) {
		job := &fakeJob{name: "metrics", enabled: true}
		s := New(FixedClock(clockNow), job)

		require.NoError(t, s.RunNow(context.Background(), "metrics"))
		assert.Equal(t, 1, job.count())

		status := s.Status()
		require.Len(t, status, 1)
		assert.Equal(t, "metrics", status[0].Name)
		assert.False(t, status[0].Running)
		assert.Equal(t, clockNow, *status[0].LastStartedAt)
		assert.Equal(t, clockNow, *status[0].LastCompletedAt)
		assert.Empty(t, status[0].LastError)
	})

	t.Run("Guarda o erro da última execução", func(t *testing.T) {
		job := &fakeJob{name: "cleanup", enabled: true, err: errors.New("banco fora")}
		s := New(FixedClock(clockNow), job)

		err := s.RunNow(context.Background(), "cleanup")
		require.Error(t, err)
		assert.Equal(t, "banco fora", s.Status()[0].LastError)
	})

	t.Run("Job desconhecido", func(t *testing.T) {
		s := New(FixedClock(clockNow))

		err := s.RunNow(context.Background(), "nada")
		assert.ErrorIs(t, err, ErrUnknownJob)
	})
}

func TestScheduler_Trigger(t *testing.T) {
	t.Run("Rejeita segunda execução simultânea", func(t *testing.T) {
		job := &fakeJob{name: "metrics", enabled: true, release: make(chan struct{})}
		s := New(FixedClock(clockNow), job)

		triggered, err := s.Trigger("metrics")
		require.NoError(t, err)
		assert.Equal(t, []string{"metrics"}, triggered)
		assert.True(t, s.Status()[0].Running)

		_, err = s.Trigger("metrics")
		assert.ErrorIs(t, err, ErrJobRunning)

		close(job.release)
		s.Wait()

		assert.Equal(t, 1, job.count())
		assert.False(t, s.Status()[0].Running)
	})

	t.Run("Todos os jobs", func(t *testing.T) {
		metrics := &fakeJob{name: "metrics", enabled: true}
		cleanup := &fakeJob{name: "cleanup", enabled: false}
		s := New(FixedClock(clockNow), metrics, cleanup)

		triggered, err := s.Trigger(AllJobs)
		require.NoError(t, err)
		assert.Equal(t, []string{"metrics", "cleanup"}, triggered)

		s.Wait()
		assert.Equal(t, 1, metrics.count())
		assert.Equal(t, 1, cleanup.count())
	})

	t.Run("Job desconhecido", func(t *testing.T) {
		s := New(FixedClock(clockNow))

		_, err := s.Trigger("relatorio")
		assert.ErrorIs(t, err, ErrUnknownJob)
	})
}

func TestScheduler_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(FixedClock(clockNow), &fakeJob{name: "metrics", enabled: true}, &fakeJob{name: "cleanup"})

	require.NoError(t, s.Start(ctx))
	assert.Len(t, s.cron.Jobs(), 1)
}
