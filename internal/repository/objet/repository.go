package objet

import (
	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository = repository.Repository[domain.Objet, domain.ObjetPatch, int64]

func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.Objet, domain.ObjetPatch, int64]{
		Entity:  "objet",
		Table:   "t_objets",
		Key:     "objet_id",
		Columns: []string{"objet_libelee", "objet_points"},
		KeyOf:   func(o domain.Objet) int64 { return o.ID },
		Values:  func(o domain.Objet) []any { return []any{o.Libelle, o.Points} },
		Scan: func(row pgx.Row) (domain.Objet, error) {
			var o domain.Objet
			err := row.Scan(&o.ID, &o.Libelle, &o.Points)
			return o, err
		},
		Changes: func(p domain.ObjetPatch) []postgres.Assignment {
			var out []postgres.Assignment
			out = postgres.Set(out, "objet_libelee", p.Libelle)
			out = postgres.Set(out, "objet_points", p.Points)
			return out
		},
	}, logger)
}

func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.Objet, domain.ObjetPatch, int64]{
		KeyOf:     func(o domain.Objet) int64 { return o.ID },
		AssignKey: func(o *domain.Objet, seq int64) { o.ID = seq },
		Apply:     domain.ObjetPatch.Apply,
	})
}
