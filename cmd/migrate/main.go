package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/migration"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/pkg/log"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.Env, cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	start := time.Now()
	applied, err := migration.Apply(ctx, conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
	logrus.Infof("Migrações concluídas em %v. Aplicadas nesta execução: %d", time.Since(start), len(applied))

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		logrus.Info("ADMIN_EMAIL/ADMIN_PASSWORD não informados, seed do administrador ignorado")
		return
	}

	admin, created, err := migration.SeedAdmin(ctx, repository.NewUserRepository(conn), migration.AdminSeed{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Name:     cfg.Seed.AdminName,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar administrador")
	}

	if created {
		logrus.Infof("Administrador %s criado", admin.Email)
	} else {
		logrus.Infof("Administrador %s já existe, nada alterado", admin.Email)
	}

	if cfg.Meta.AppID == "" || cfg.Meta.AppSecret == "" {
		logrus.Info("META_APP_ID/META_APP_SECRET não informados, app da plataforma não registrado")
		return
	}

	key, fallback, err := cfg.CipherKey()
	if err != nil {
		logrus.Fatal(err)
	}
	if fallback {
		logrus.Warn("ENCRYPTION_KEY não configurada, usando AUTH_SECRET para criptografar o secret do app")
	}

	cipher, err := vault.New(key)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar criptografia")
	}

	app, created, err := migration.SeedPlatformApp(ctx, repository.NewMetaAppRepository(conn), cipher, migration.PlatformAppSeed{
		OwnerID:   admin.ID,
		AppID:     cfg.Meta.AppID,
		AppSecret: cfg.Meta.AppSecret,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar app da plataforma")
	}

	entry := logrus.WithFields(logrus.Fields{"app_id": app.AppID, "meta_app_record_id": app.ID})
	if created {
		entry.Info("App da plataforma registrado")
	} else {
		entry.Info("App da plataforma já registrado")
	}
	if cfg.Meta.AppRecordID != app.ID {
		entry.Warnf("Defina META_APP_RECORD_ID=%s para o fluxo OAuth", app.ID)
	}
}
