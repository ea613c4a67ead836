package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/internal/api/handler"
	"github.com/vfg2006/meta-ads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/appregistering"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/publishing"
	"github.com/vfg2006/meta-ads-manager-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Registrar     appregistering.Registrar
	Connector     connecting.Connector
	Accounts      account.AccountService
	Pages         publishing.PageService
	Campaigns     campaigning.CampaignService
	Analytics     analyzing.AnalyticsService
	Jobs          handler.JobRunner
	Database      handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	limiters := middleware.NewRateLimiters(cfg.RateLimit)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, limiters)...),
		router.WithRoutes(handler.OAuth(services.Connector, cfg.Client.URL, limiters)...),
		router.WithRoutes(handler.Pages(services.Pages, services.Connector, limiters)...),
		router.WithRoutes(handler.Accounts(services.Accounts, services.Connector, limiters)...),
		router.WithRoutes(handler.MetaApps(services.Registrar, limiters)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns, limiters)...),
		router.WithRoutes(handler.Analytics(services.Analytics, limiters)...),
		router.WithRoutes(handler.CronJobs(services.Jobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
