package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/internal/scheduler"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
)

// JobRunner é a parte do agendador exposta pelas rotas administrativas
type JobRunner interface {
	Trigger(name string) ([]string, error)
	Status() []scheduler.JobStatus
}

// RunCronJob dispara em segundo plano um job (metrics, cleanup, token-expiry ou all)
func RunCronJob(runner JobRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := param(r, "type")

		triggered, err := runner.Trigger(jobType)
		switch {
		case errors.Is(err, scheduler.ErrUnknownJob):
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido", map[string]string{"type": jobType})
			return
		case errors.Is(err, scheduler.ErrJobRunning):
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Job já está em execução", map[string]string{"type": jobType})
			return
		case err != nil:
			handleError(w, r, err)
			return
		}

		logrus.WithField("jobs", triggered).Info("cron: execução manual solicitada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message":   "Execução iniciada",
			"triggered": triggered,
		})
	}
}

func CronStatus(runner JobRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"jobs": runner.Status(),
		})
	}
}
