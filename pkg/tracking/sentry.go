package tracking

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

var enabled bool

// Init configura o Sentry. Sem DSN o envio de eventos fica desabilitado.
func Init(dsn, environment string, tracesSampleRate float64) error {
	if dsn == "" {
		logrus.Info("Sentry desabilitado: SENTRY_DSN não configurado")
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		EnableTracing:    tracesSampleRate > 0,
		TracesSampleRate: tracesSampleRate,
	})
	if err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}

	enabled = true
	logrus.WithField("environment", environment).Info("Sentry inicializado")

	return nil
}

// CaptureError envia o erro com as tags informadas
func CaptureError(err error, tags map[string]string) {
	if !enabled || err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}

// CapturePanic envia o valor recuperado de um panic
func CapturePanic(recovered any, tags map[string]string) {
	if !enabled {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CurrentHub().Recover(recovered)
	})
}

func Flush() {
	if enabled {
		sentry.Flush(2 * time.Second)
	}
}
