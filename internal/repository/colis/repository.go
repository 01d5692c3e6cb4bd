package colis

import (
	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository = repository.Repository[domain.Colis, domain.ColisPatch, int64]

func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.Colis, domain.ColisPatch, int64]{
		Entity:  "colis",
		Table:   "t_colis",
		Key:     "colis_id",
		Columns: []string{"colis_code_suivi", "colis_timbre", "colis_commentaire"},
		KeyOf:   func(c domain.Colis) int64 { return c.ID },
		Values: func(c domain.Colis) []any {
			return []any{c.CodeSuivi, c.Timbre, c.Commentaire}
		},
		Scan: func(row pgx.Row) (domain.Colis, error) {
			var c domain.Colis
			err := row.Scan(&c.ID, &c.CodeSuivi, &c.Timbre, &c.Commentaire)
			return c, err
		},
		Changes: func(p domain.ColisPatch) []postgres.Assignment {
			var out []postgres.Assignment
			out = postgres.Set(out, "colis_code_suivi", p.CodeSuivi)
			out = postgres.Set(out, "colis_timbre", p.Timbre)
			out = postgres.Set(out, "colis_commentaire", p.Commentaire)
			return out
		},
	}, logger)
}

func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.Colis, domain.ColisPatch, int64]{
		KeyOf:     func(c domain.Colis) int64 { return c.ID },
		AssignKey: func(c *domain.Colis, seq int64) { c.ID = seq },
		Apply:     domain.ColisPatch.Apply,
	})
}
