package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/pkg/metrics"
	"github.com/vfg2006/meta-ads-manager-api/pkg/tracking"
)

// AllJobs dispara todos os jobs registrados em Trigger
const AllJobs = "all"

var (
	ErrUnknownJob = errors.New("unknown job")
	ErrJobRunning = errors.New("job already running")
)

// Job é uma tarefa periódica. RunOnce executa uma rodada completa e é o que
// os testes chamam em vez de esperar o cron.
type Job interface {
	Name() string
	CronSchedule() string
	Enabled() bool
	RunOnce(ctx context.Context) error
}

type JobStatus struct {
	Name            string     `json:"name"`
	Cron            string     `json:"cron"`
	Enabled         bool       `json:"enabled"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
	LastError       string     `json:"lastError,omitempty"`
}

type jobState struct {
	job             Job
	running         bool
	lastStartedAt   *time.Time
	lastCompletedAt *time.Time
	lastError       string
}

// Scheduler mantém o registro dos jobs, agenda os habilitados no gocron e
// impede duas execuções simultâneas do mesmo job.
type Scheduler struct {
	cron  *gocron.Scheduler
	clock Clock
	order []string
	jobs  map[string]*jobState
	mu    sync.Mutex
	wg    sync.WaitGroup
}

func New(clock Clock, jobs ...Job) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}

	s := &Scheduler{
		cron:  gocron.NewScheduler(time.Local),
		clock: clock,
		jobs:  make(map[string]*jobState, len(jobs)),
	}

	for _, job := range jobs {
		s.order = append(s.order, job.Name())
		s.jobs[job.Name()] = &jobState{job: job}
	}

	return s
}

// Start agenda os jobs habilitados e para o cron quando o contexto termina
func (s *Scheduler) Start(ctx context.Context) error {
	for _, name := range s.order {
		job := s.jobs[name].job

		if !job.Enabled() {
			logrus.WithField("job", name).Info("scheduler: job desabilitado por configuração")
			continue
		}

		_, err := s.cron.Cron(job.CronSchedule()).Do(func() {
			if err := s.RunNow(ctx, name); err != nil && !errors.Is(err, ErrJobRunning) {
				logrus.WithField("job", name).WithError(err).Error("scheduler: execução agendada falhou")
			}
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar job %s: %w", name, err)
		}

		logrus.WithFields(logrus.Fields{
			"job":  name,
			"cron": job.CronSchedule(),
		}).Info("scheduler: job agendado")
	}

	s.cron.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando agendador")
		s.cron.Stop()
	}()

	return nil
}

// Wait aguarda as execuções disparadas por Trigger
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Trigger dispara o job em segundo plano e retorna imediatamente.
// "all" dispara todos os jobs que não estiverem em execução.
func (s *Scheduler) Trigger(name string) ([]string, error) {
	names := []string{name}
	if name == AllJobs {
		names = s.order
	} else if _, ok := s.jobs[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	triggered := make([]string, 0, len(names))
	for _, jobName := range names {
		if !s.acquire(jobName) {
			if name != AllJobs {
				return nil, fmt.Errorf("%w: %s", ErrJobRunning, jobName)
			}
			continue
		}

		triggered = append(triggered, jobName)
		s.wg.Add(1)

		go func(jobName string) {
			defer s.wg.Done()
			s.execute(context.Background(), jobName)
		}(jobName)
	}

	logrus.WithField("jobs", triggered).Info("scheduler: execução manual iniciada")

	return triggered, nil
}

// RunNow executa o job de forma síncrona
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	if _, ok := s.jobs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	if !s.acquire(name) {
		logrus.WithField("job", name).Info("scheduler: job já em andamento, ignorando")
		return fmt.Errorf("%w: %s", ErrJobRunning, name)
	}

	return s.execute(ctx, name)
}

func (s *Scheduler) Status() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := make([]JobStatus, 0, len(s.order))
	for _, name := range s.order {
		state := s.jobs[name]
		status = append(status, JobStatus{
			Name:            name,
			Cron:            state.job.CronSchedule(),
			Enabled:         state.job.Enabled(),
			Running:         state.running,
			LastStartedAt:   state.lastStartedAt,
			LastCompletedAt: state.lastCompletedAt,
			LastError:       state.lastError,
		})
	}

	return status
}

func (s *Scheduler) acquire(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.jobs[name]
	if state.running {
		return false
	}

	startedAt := s.clock.Now()
	state.running = true
	state.lastStartedAt = &startedAt

	return true
}

func (s *Scheduler) execute(ctx context.Context, name string) error {
	state := s.jobs[name]
	started := time.Now()

	logrus.WithField("job", name).Info("scheduler: iniciando job")

	err := state.job.RunOnce(ctx)
	elapsed := time.Since(started)

	metrics.ObserveJobRun(name, err, elapsed)

	s.mu.Lock()
	completedAt := s.clock.Now()
	state.running = false
	state.lastCompletedAt = &completedAt
	state.lastError = ""
	if err != nil {
		state.lastError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"job":      name,
			"duration": elapsed.String(),
			"error":    err.Error(),
		}).Error("scheduler: job terminou com erro")
		tracking.CaptureError(err, map[string]string{"job": name})
		return err
	}

	logrus.WithFields(logrus.Fields{
		"job":      name,
		"duration": elapsed.String(),
	}).Info("scheduler: job concluído")

	return nil
}
