package commune

import (
	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository = repository.Repository[domain.Commune, domain.CommunePatch, int64]

func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.Commune, domain.CommunePatch, int64]{
		Entity:  "commune",
		Table:   "t_communes",
		Key:     "commune_id",
		Columns: []string{"fk_commune_departement", "commune_codepostal", "commune_ville"},
		KeyOf:   func(c domain.Commune) int64 { return c.ID },
		Values: func(c domain.Commune) []any {
			return []any{c.DepartementID, c.CodePostal, c.Ville}
		},
		Scan: func(row pgx.Row) (domain.Commune, error) {
			var c domain.Commune
			err := row.Scan(&c.ID, &c.DepartementID, &c.CodePostal, &c.Ville)
			return c, err
		},
		Changes: func(p domain.CommunePatch) []postgres.Assignment {
			var out []postgres.Assignment
			out = postgres.Set(out, "fk_commune_departement", p.DepartementID)
			out = postgres.Set(out, "commune_codepostal", p.CodePostal)
			out = postgres.Set(out, "commune_ville", p.Ville)
			return out
		},
	}, logger)
}

func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.Commune, domain.CommunePatch, int64]{
		KeyOf:     func(c domain.Commune) int64 { return c.ID },
		AssignKey: func(c *domain.Commune, seq int64) { c.ID = seq },
		Apply:     domain.CommunePatch.Apply,
	})
}
