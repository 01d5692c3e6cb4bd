package commande

import (
	"time"

	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/repository"
	"fidelite-backend/internal/repository/memory"
	"fidelite-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository = repository.Repository[domain.Commande, domain.CommandePatch, int64]

var columns = []string{
	"commande_date",
	"fk_client_id",
	"client_timbre",
	"commande_timbre",
	"client_cheque",
	"commande_commentaire",
}

func NewPostgres(db postgres.Querier, logger *zap.Logger) Repository {
	return postgres.NewTable(db, postgres.Mapping[domain.Commande, domain.CommandePatch, int64]{
		Entity:  "commande",
		Table:   "t_commandes",
		Key:     "commande_id",
		Columns: columns,
		KeyOf:   func(c domain.Commande) int64 { return c.ID },
		Values: func(c domain.Commande) []any {
			return []any{dateArg(c.Date), c.ClientID, c.ClientTimbre, c.CommandeTimbre, c.ClientCheque, c.Commentaire}
		},
		Scan:    scan,
		Changes: changes,
	}, logger)
}

func NewMemory() Repository {
	return memory.NewStore(memory.Mapping[domain.Commande, domain.CommandePatch, int64]{
		KeyOf:     func(c domain.Commande) int64 { return c.ID },
		AssignKey: func(c *domain.Commande, seq int64) { c.ID = seq },
		Apply:     domain.CommandePatch.Apply,
	})
}

func scan(row pgx.Row) (domain.Commande, error) {
	var (
		c    domain.Commande
		date *time.Time
	)
	err := row.Scan(&c.ID, &date, &c.ClientID, &c.ClientTimbre, &c.CommandeTimbre, &c.ClientCheque, &c.Commentaire)
	if err != nil {
		return c, err
	}
	if date != nil {
		d := domain.NewDate(*date)
		c.Date = &d
	}
	return c, nil
}

func changes(p domain.CommandePatch) []postgres.Assignment {
	var out []postgres.Assignment
	if p.Date.Set {
		var v any
		if p.Date.Present() {
			v = p.Date.Value.Time
		}
		out = append(out, postgres.Assignment{Column: "commande_date", Value: v})
	}
	out = postgres.Set(out, "fk_client_id", p.ClientID)
	out = postgres.Set(out, "client_timbre", p.ClientTimbre)
	out = postgres.Set(out, "commande_timbre", p.CommandeTimbre)
	out = postgres.Set(out, "client_cheque", p.ClientCheque)
	out = postgres.Set(out, "commande_commentaire", p.Commentaire)
	return out
}

func dateArg(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}
