package departement

import (
	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository persists departements keyed by their code.
type Repository = repository.Repository[domain.Departement, domain.DepartementPatch, string]

func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.Departement, domain.DepartementPatch, string]{
		Entity:      "departement",
		Table:       "t_departements",
		Key:         "departement_code",
		Columns:     []string{"departement_nom"},
		AssignedKey: true,
		KeyOf:       func(d domain.Departement) string { return d.Code },
		Values:      func(d domain.Departement) []any { return []any{d.Nom} },
		Scan: func(row pgx.Row) (domain.Departement, error) {
			var d domain.Departement
			err := row.Scan(&d.Code, &d.Nom)
			return d, err
		},
		Changes: func(p domain.DepartementPatch) []postgres.Assignment {
			return postgres.Set(nil, "departement_nom", p.Nom)
		},
	}, logger)
}

func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.Departement, domain.DepartementPatch, string]{
		KeyOf: func(d domain.Departement) string { return d.Code },
		Apply: domain.DepartementPatch.Apply,
	})
}
