package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fidelite-backend/internal/config"
	"fidelite-backend/internal/db"
	"fidelite-backend/internal/httpserver"
	"fidelite-backend/internal/logging"
	"fidelite-backend/internal/migrate"
	clientrepo "fidelite-backend/internal/repository/client"
	colisrepo "fidelite-backend/internal/repository/colis"
	commanderepo "fidelite-backend/internal/repository/commande"
	communerepo "fidelite-backend/internal/repository/commune"
	departementrepo "fidelite-backend/internal/repository/departement"
	detailcolisrepo "fidelite-backend/internal/repository/detailcolis"
	detailcommanderepo "fidelite-backend/internal/repository/detailcommande"
	objetrepo "fidelite-backend/internal/repository/objet"
	"fidelite-backend/internal/repository/postgres"
	variationrepo "fidelite-backend/internal/repository/variationobjet"
	"fidelite-backend/internal/service/catalog"
	clientsvc "fidelite-backend/internal/service/client"
	"fidelite-backend/internal/service/geo"
	"fidelite-backend/internal/service/orders"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	var dbpool *pgxpool.Pool
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		dbpool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal("connect to db", zap.Error(err))
		}
		defer dbpool.Close()
		if cfg.MigrateOnStart {
			if err := migrate.Apply(ctx, dbpool); err != nil {
				logger.Fatal("apply migrations", zap.Error(err))
			}
			logger.Info("migrations applied")
		}
	case config.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
	default:
		logger.Fatal("unknown storage driver", zap.String("driver", cfg.StorageDriver))
	}

	deps, err := buildDeps(cfg.StorageDriver, dbpool, logger)
	if err != nil {
		logger.Fatal("wire services", zap.Error(err))
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps, httpserver.Options{
		AllowedOrigins: cfg.AllowedOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}

func buildDeps(driver string, pool *pgxpool.Pool, logger *zap.Logger) (httpserver.Deps, error) {
	switch driver {
	case config.StoragePostgres:
		if pool == nil {
			return httpserver.Deps{}, errors.New("postgres storage needs a pool")
		}
		return newDeps(pool, logger), nil
	case config.StorageMemory:
		return httpserver.Deps{
			Departements:    geo.NewDepartementService(departementrepo.NewMemory(), logger),
			Communes:        geo.NewCommuneService(communerepo.NewMemory(), logger),
			Clients:         clientsvc.New(clientrepo.NewMemory(), logger),
			Commandes:       orders.NewCommandeService(commanderepo.NewMemory(), logger),
			DetailCommandes: orders.NewDetailCommandeService(detailcommanderepo.NewMemory(), logger),
			Colis:           orders.NewColisService(colisrepo.NewMemory(), logger),
			DetailColis:     orders.NewDetailColisService(detailcolisrepo.NewMemory(), logger),
			Objets:          catalog.NewObjetService(objetrepo.NewMemory(), logger),
			Variations:      catalog.NewVariationService(variationrepo.NewMemory(), logger),
		}, nil
	}
	return httpserver.Deps{}, fmt.Errorf("unknown storage driver %q", driver)
}

func newDeps(db postgres.Querier, logger *zap.Logger) httpserver.Deps {
	return httpserver.Deps{
		Departements:    geo.NewDepartementService(departementrepo.NewPostgres(db, logger), logger),
		Communes:        geo.NewCommuneService(communerepo.NewPostgres(db, logger), logger),
		Clients:         clientsvc.New(clientrepo.NewPostgres(db, logger), logger),
		Commandes:       orders.NewCommandeService(commanderepo.NewPostgres(db, logger), logger),
		DetailCommandes: orders.NewDetailCommandeService(detailcommanderepo.NewPostgres(db, logger), logger),
		Colis:           orders.NewColisService(colisrepo.NewPostgres(db, logger), logger),
		DetailColis:     orders.NewDetailColisService(detailcolisrepo.NewPostgres(db, logger), logger),
		Objets:          catalog.NewObjetService(objetrepo.NewPostgres(db, logger), logger),
		Variations:      catalog.NewVariationService(variationrepo.NewPostgres(db, logger), logger),
	}
}
