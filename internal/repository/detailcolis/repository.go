package detailcolis

import (
	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository = repository.Repository[domain.DetailColis, domain.DetailColisPatch, int64]

func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.DetailColis, domain.DetailColisPatch, int64]{
		Entity: "detail_colis",
		Table:  "t_detail_colis",
		Key:    "detail_colis_id",
		Columns: []string{
			"fk_detail_commande_id",
			"fk_colis_id",
			"detail_colis_quantitee",
			"detail_colis_commentaire",
		},
		KeyOf: func(d domain.DetailColis) int64 { return d.ID },
		Values: func(d domain.DetailColis) []any {
			return []any{d.DetailCommandeID, d.ColisID, d.Quantite, d.Commentaire}
		},
		Scan: func(row pgx.Row) (domain.DetailColis, error) {
			var d domain.DetailColis
			err := row.Scan(&d.ID, &d.DetailCommandeID, &d.ColisID, &d.Quantite, &d.Commentaire)
			return d, err
		},
		Changes: func(p domain.DetailColisPatch) []postgres.Assignment {
			var out []postgres.Assignment
			out = postgres.Set(out, "fk_detail_commande_id", p.DetailCommandeID)
			out = postgres.Set(out, "fk_colis_id", p.ColisID)
			out = postgres.Set(out, "detail_colis_quantitee", p.Quantite)
			out = postgres.Set(out, "detail_colis_commentaire", p.Commentaire)
			return out
		},
	}, logger)
}

func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.DetailColis, domain.DetailColisPatch, int64]{
		KeyOf:     func(d domain.DetailColis) int64 { return d.ID },
		AssignKey: func(d *domain.DetailColis, seq int64) { d.ID = seq },
		Apply:     domain.DetailColisPatch.Apply,
	})
}
