package main

import (
	"os"

	"github.com/myseringan/texnokross-bolt-sub000/internal/app"
	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/provider"
	"github.com/myseringan/texnokross-bolt-sub000/internal/router"
	"github.com/myseringan/texnokross-bolt-sub000/internal/worker"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()

	checkSecrets(cfg)

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		logger.Errorw("db_open_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("db_migrate_failed", "error", err)
		os.Exit(1)
	}
	if err := models.InitDefaultAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Errorw("default_admin_init_failed", "error", err)
		os.Exit(1)
	}

	container, err := provider.New(cfg, models.DB)
	if err != nil {
		logger.Errorw("container_init_failed", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	runner := app.NewRunner()
	runner.Add(app.NewHTTPService(cfg.Server.Host, cfg.Server.Port, router.New(container)))
	if cfg.Queue.Enabled {
		runner.Add(worker.New(&cfg.Queue, &cfg.Telegram))
	}

	if err := runner.Run(); err != nil {
		logger.Errorw("runner_exited", "error", err)
		os.Exit(1)
	}
}

// checkSecrets refuses to run release mode on shipped default secrets.
func checkSecrets(cfg *config.Config) {
	if cfg.Server.Mode != "release" {
		return
	}
	defaults := map[string]string{
		"jwt.secret":      "change-me-in-production",
		"user_jwt.secret": "user-change-me-in-production",
	}
	if cfg.JWT.SecretKey == defaults["jwt.secret"] || cfg.UserJWT.SecretKey == defaults["user_jwt.secret"] {
		logger.Errorw("default_jwt_secret_in_release",
			"hint", "set jwt.secret and user_jwt.secret in config.yml",
		)
		os.Exit(1)
	}
}
