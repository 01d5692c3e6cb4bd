package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fidelite-backend/internal/config"
	"fidelite-backend/internal/db"
	"fidelite-backend/internal/importer"
	"fidelite-backend/internal/logging"
	"go.uber.org/zap"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to the catalog CSV (objet_libelee, objet_points, variation_objet_taille, variation_objet_poids)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("open file", zap.Error(err))
	}
	defer f.Close()

	start := time.Now()
	res, err := importer.Import(ctx, pool, f, logger)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	fmt.Printf("Imported %d objets and %d variations in %s\n", res.Objets, res.Variations, time.Since(start).Truncate(time.Millisecond))
}
