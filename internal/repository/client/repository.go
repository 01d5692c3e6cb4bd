package client

import (
	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository persists loyalty clients.
type Repository = repository.Repository[domain.Client, domain.ClientPatch, int64]

var columns = []string{
	"client_genre",
	"client_nom",
	"client_prenom",
	"client_adresse1",
	"client_adresse2",
	"client_adresse3",
	"fk_commune_id",
	"client_telephone_fix",
	"client_telephone_portable",
	"client_email",
	"client_newsletter",
}

// NewPostgres returns a Repository backed by the t_clients table.
func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.Client, domain.ClientPatch, int64]{
		Entity:  "client",
		Table:   "t_clients",
		Key:     "client_id",
		Columns: columns,
		KeyOf:   func(c domain.Client) int64 { return c.ID },
		Values: func(c domain.Client) []any {
			return []any{
				c.Genre, c.Nom, c.Prenom, c.Adresse1, c.Adresse2, c.Adresse3,
				c.CommuneID, c.TelephoneFix, c.TelephonePortable, c.Email, c.Newsletter,
			}
		},
		Scan:    scan,
		Changes: changes,
	}, logger)
}

// NewMemory returns a Repository kept in process memory.
func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.Client, domain.ClientPatch, int64]{
		KeyOf:     func(c domain.Client) int64 { return c.ID },
		AssignKey: func(c *domain.Client, seq int64) { c.ID = seq },
		Apply:     domain.ClientPatch.Apply,
	})
}

func scan(row pgx.Row) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID,
		&c.Genre,
		&c.Nom,
		&c.Prenom,
		&c.Adresse1,
		&c.Adresse2,
		&c.Adresse3,
		&c.CommuneID,
		&c.TelephoneFix,
		&c.TelephonePortable,
		&c.Email,
		&c.Newsletter,
	)
	return c, err
}

func changes(p domain.ClientPatch) []postgres.Assignment {
	var out []postgres.Assignment
	out = postgres.Set(out, "client_genre", p.Genre)
	out = postgres.Set(out, "client_nom", p.Nom)
	out = postgres.Set(out, "client_prenom", p.Prenom)
	out = postgres.Set(out, "client_adresse1", p.Adresse1)
	out = postgres.Set(out, "client_adresse2", p.Adresse2)
	out = postgres.Set(out, "client_adresse3", p.Adresse3)
	out = postgres.Set(out, "fk_commune_id", p.CommuneID)
	out = postgres.Set(out, "client_telephone_fix", p.TelephoneFix)
	out = postgres.Set(out, "client_telephone_portable", p.TelephonePortable)
	out = postgres.Set(out, "client_email", p.Email)
	out = postgres.Set(out, "client_newsletter", p.Newsletter)
	return out
}
