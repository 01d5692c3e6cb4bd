package detailcommande

import (
	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository = repository.Repository[domain.DetailCommande, domain.DetailCommandePatch, int64]

func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.DetailCommande, domain.DetailCommandePatch, int64]{
		Entity: "detail_commande",
		Table:  "t_detail_commandes",
		Key:    "detail_commande_id",
		Columns: []string{
			"fk_commande_id",
			"fk_variation_objet_id",
			"detail_commande_quantitee",
			"detail_commande_commentaire",
		},
		KeyOf: func(d domain.DetailCommande) int64 { return d.ID },
		Values: func(d domain.DetailCommande) []any {
			return []any{d.CommandeID, d.VariationObjetID, d.Quantite, d.Commentaire}
		},
		Scan: func(row pgx.Row) (domain.DetailCommande, error) {
			var d domain.DetailCommande
			err := row.Scan(&d.ID, &d.CommandeID, &d.VariationObjetID, &d.Quantite, &d.Commentaire)
			return d, err
		},
		Changes: func(p domain.DetailCommandePatch) []postgres.Assignment {
			var out []postgres.Assignment
			out = postgres.Set(out, "fk_commande_id", p.CommandeID)
			out = postgres.Set(out, "fk_variation_objet_id", p.VariationObjetID)
			out = postgres.Set(out, "detail_commande_quantitee", p.Quantite)
			out = postgres.Set(out, "detail_commande_commentaire", p.Commentaire)
			return out
		},
	}, logger)
}

func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.DetailCommande, domain.DetailCommandePatch, int64]{
		KeyOf:     func(d domain.DetailCommande) int64 { return d.ID },
		AssignKey: func(d *domain.DetailCommande, seq int64) { d.ID = seq },
		Apply:     domain.DetailCommandePatch.Apply,
	})
}
