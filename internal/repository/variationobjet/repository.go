package variationobjet

import (
	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository = repository.Repository[domain.VariationObjet, domain.VariationObjetPatch, int64]

func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.VariationObjet, domain.VariationObjetPatch, int64]{
		Entity:  "variation_objet",
		Table:   "t_variations_objets",
		Key:     "variation_objet_id",
		Columns: []string{"variation_objet_taille", "variation_objet_poids", "fk_variation_objet_objet_id"},
		KeyOf:   func(v domain.VariationObjet) int64 { return v.ID },
		Values: func(v domain.VariationObjet) []any {
			return []any{v.Taille, v.Poids, v.ObjetID}
		},
		Scan: func(row pgx.Row) (domain.VariationObjet, error) {
			var v domain.VariationObjet
			err := row.Scan(&v.ID, &v.Taille, &v.Poids, &v.ObjetID)
			return v, err
		},
		Changes: func(p domain.VariationObjetPatch) []postgres.Assignment {
			var out []postgres.Assignment
			out = postgres.Set(out, "variation_objet_taille", p.Taille)
			out = postgres.Set(out, "variation_objet_poids", p.Poids)
			out = postgres.Set(out, "fk_variation_objet_objet_id", p.ObjetID)
			return out
		},
	}, logger)
}

func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.VariationObjet, domain.VariationObjetPatch, int64]{
		KeyOf:     func(v domain.VariationObjet) int64 { return v.ID },
		AssignKey: func(v *domain.VariationObjet, seq int64) { v.ID = seq },
		Apply:     domain.VariationObjetPatch.Apply,
	})
}
