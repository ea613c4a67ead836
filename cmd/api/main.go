package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/statestore"
	"github.com/vfg2006/meta-ads-manager-api/internal/api"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/scheduler"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/appregistering"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/publishing"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/log"
	"github.com/vfg2006/meta-ads-manager-api/pkg/tracking"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.Env, cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	apiErrors.ExposeInternalErrors(cfg.IsDevelopment())

	if err := tracking.Init(cfg.Sentry.DSN, cfg.App.Env, cfg.Sentry.TracesSampleRate); err != nil {
		logrus.WithError(err).Warn("Sentry não inicializado")
	}
	defer tracking.Flush()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	cipher := newCipher(cfg)

	if cfg.Meta.AppRecordID == "" {
		logrus.Warn("META_APP_RECORD_ID não configurado, rode o cmd/migrate com META_APP_ID/META_APP_SECRET para registrar o app da plataforma")
	}

	ledger, closeLedger, err := statestore.New(ctx, cfg.StateLedger)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o registro de state do OAuth")
	}
	defer closeLedger()

	userRepo := repository.NewUserRepository(pgConn)
	appRepo := repository.NewMetaAppRepository(pgConn)
	accountRepo := repository.NewMetaAccountRepository(pgConn)
	pageRepo := repository.NewFacebookPageRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)

	metaClient := metaclient.NewClient(cfg.Meta)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	registrar := appregistering.NewService(appRepo, metaClient, cipher)
	connector := connecting.NewService(cfg.Meta, appRepo, accountRepo, pageRepo, metaClient, cipher, ledger)
	accountService := account.NewService(accountRepo, metaClient, cipher)
	pageService := publishing.NewService(pageRepo, metaClient, cipher)
	campaignService := campaigning.NewService(cfg.Campaigns, campaignRepo, accountRepo, adSetRepo, metaClient, cipher)
	analyticsService := analyzing.NewService(cfg.MetricsSync, campaignRepo, accountRepo, metricRepo, metaClient, cipher)

	clock := scheduler.SystemClock()
	jobs := scheduler.New(
		clock,
		scheduler.NewMetricsSyncJob(cfg.MetricsSync, campaignRepo, analyticsService, clock),
		scheduler.NewCleanupJob(cfg.Cleanup, metricRepo, accountRepo, clock),
		scheduler.NewTokenExpiryJob(cfg.TokenExpiry, cfg.Meta, accountRepo, appRepo, metaClient, cipher, clock),
	)

	if err := jobs.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador")
	} else {
		logrus.Info("Agendador iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Registrar:     registrar,
		Connector:     connector,
		Accounts:      accountService,
		Pages:         pageService,
		Campaigns:     campaignService,
		Analytics:     analyticsService,
		Jobs:          jobs,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newCipher usa ENCRYPTION_KEY. Em desenvolvimento cai para AUTH_SECRET.
func newCipher(cfg *config.Config) *vault.Vault {
	key, fallback, err := cfg.CipherKey()
	if err != nil {
		logrus.Fatal(err)
	}
	if fallback {
		logrus.Warn("ENCRYPTION_KEY não configurada, usando AUTH_SECRET para criptografar tokens")
	}

	cipher, err := vault.New(key)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar criptografia")
	}
	return cipher
}
