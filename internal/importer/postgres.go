package importer

import (
	"context"
	"io"

	objetrepo "fidelite-backend/internal/repository/objet"
	variationrepo "fidelite-backend/internal/repository/variationobjet"
	"fidelite-backend/internal/service/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Import reads a catalog CSV from r into Postgres. Every objet and variation is written in
// one transaction, so a failing row leaves the catalog untouched.
func Import(ctx context.Context, pool *pgxpool.Pool, r io.Reader, logger *zap.Logger) (Result, error) {
	var res Result
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		imp := NewCSVImporter(r,
			catalog.NewObjetService(objetrepo.NewPostgres(tx, logger), logger),
			catalog.NewVariationService(variationrepo.NewPostgres(tx, logger), logger),
			logger,
		)
		var err error
		res, err = imp.Run(ctx)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
