package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bab-library/catalog-service/config"
	"github.com/bab-library/catalog-service/internal/audit"
	"github.com/bab-library/catalog-service/internal/handler"
	"github.com/bab-library/catalog-service/internal/openlibrary"
	"github.com/bab-library/catalog-service/internal/repository"
	"github.com/bab-library/catalog-service/internal/server"
	"github.com/bab-library/catalog-service/internal/session"
	"github.com/bab-library/catalog-service/internal/store"
	"github.com/bab-library/catalog-service/migrations"
	"github.com/bab-library/catalog-service/pkg/kafka"
	"github.com/bab-library/catalog-service/pkg/logger"
	"github.com/bab-library/catalog-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")
	ctx := context.Background()

	// The remote store is optional: without it the catalog serves the
	// built-in seed data and admin login is rejected.
	var (
		db   *sqlx.DB
		repo repository.Repository
	)
	if cfg.Database.Configured() {
		pgdb, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			log.Warn("db init failed, serving local seed data", zap.Error(err))
		} else {
			db = pgdb
			if repo, err = repository.NewRepository(db, log); err != nil {
				log.Fatal("repo", zap.Error(err))
			}
		}
	} else {
		log.Warn("remote store not configured, serving local seed data")
	}

	if repo != nil && cfg.Admin.PasswordHash != "" {
		if err := repo.SetSetting(ctx, repository.AdminPasswordHashKey, cfg.Admin.PasswordHash); err != nil {
			log.Warn("provision admin credential", zap.Error(err))
		}
	}

	var auditor store.Auditor
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Warn("kafka.NewProducer", zap.Error(err))
		} else {
			publisher := audit.NewPublisher(producer, log)
			auditor = publisher
			defer func() {
				// drain in-flight audit publishes before the producer goes away
				publisher.Close()
				producer.Close() //nolint:errcheck
			}()
		}
	}

	st := store.New(repo, auditor, log)
	hydrateCtx, cancel := context.WithTimeout(ctx, time.Second*30)
	st.Hydrate(hydrateCtx)
	cancel()

	var verifier session.CredentialVerifier
	if repo != nil {
		verifier = repo
	}
	gate := session.NewGate(verifier, cfg.Admin.SessionTTL, log)
	lookup := openlibrary.NewClient(log, cfg.OpenLibrary)

	h := handler.New(st, gate, lookup, cfg.Links, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if db != nil {
		db.Close()
	}
	log.Info("Graceful shutdown finished")
}
