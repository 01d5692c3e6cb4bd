package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// row is one demo record written with a fixed key.
type row struct {
	table   string
	key     string
	columns []string
	values  []any
}

// rows are listed parents first so every reference resolves.
var rows = []row{
	{"t_departements", "departement_code", []string{"departement_code", "departement_nom"}, []any{"59", "Nord"}},
	{"t_departements", "departement_code", []string{"departement_code", "departement_nom"}, []any{"83", "Var"}},
	{"t_communes", "commune_id", []string{"commune_id", "fk_commune_departement", "commune_codepostal", "commune_ville"},
		[]any{1, "59", "59117", "Wervicq-Sud"}},
	{"t_clients", "client_id", []string{"client_id", "client_prenom", "client_nom", "client_adresse1", "fk_commune_id"},
		[]any{1, "Robin", "HOTTON", "1 rue de la Paix", 1}},
	{"t_clients", "client_id", []string{"client_id", "client_prenom", "client_nom", "client_adresse1", "fk_commune_id"},
		[]any{2, "Daniel", "HOTTON", "2 rue de la Paix", 1}},
	{"t_colis", "colis_id", []string{"colis_id", "colis_code_suivi", "colis_timbre", "colis_commentaire"},
		[]any{1, "1445", "14.5", "Bien envoyé"}},
	{"t_objets", "objet_id", []string{"objet_id", "objet_libelee", "objet_points"}, []any{1, "Épée magique", 50}},
	{"t_objets", "objet_id", []string{"objet_id", "objet_libelee", "objet_points"}, []any{2, "Baton magique", 30}},
	{"t_variations_objets", "variation_objet_id",
		[]string{"variation_objet_id", "variation_objet_taille", "variation_objet_poids", "fk_variation_objet_objet_id"},
		[]any{1, "Moyen", "1.2500", 2}},
	{"t_commandes", "commande_id",
		[]string{"commande_id", "commande_date", "fk_client_id", "client_timbre", "commande_timbre", "commande_commentaire"},
		[]any{1, "2024-01-15", 1, "80", "14.5", "Première commande"}},
	{"t_detail_commandes", "detail_commande_id",
		[]string{"detail_commande_id", "fk_commande_id", "fk_variation_objet_id", "detail_commande_quantitee"},
		[]any{1, 1, 1, 2}},
	{"t_detail_colis", "detail_colis_id",
		[]string{"detail_colis_id", "fk_detail_commande_id", "fk_colis_id", "detail_colis_quantitee"},
		[]any{1, 1, 1, 2}},
}

// serialTables have their sequence moved past the seeded keys.
var serialTables = map[string]string{
	"t_communes":          "commune_id",
	"t_clients":           "client_id",
	"t_colis":             "colis_id",
	"t_objets":            "objet_id",
	"t_variations_objets": "variation_objet_id",
	"t_commandes":         "commande_id",
	"t_detail_commandes":  "detail_commande_id",
	"t_detail_colis":      "detail_colis_id",
}

// Apply inserts demo data for manual testing. It is idempotent via ON CONFLICT and runs
// in one transaction.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, r := range rows {
			if _, err := tx.Exec(ctx, upsertSQL(r), r.values...); err != nil {
				return fmt.Errorf("upsert %s %v: %w", r.table, r.values[0], err)
			}
		}
		for table, key := range serialTables {
			q := fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%s', '%s'), GREATEST((SELECT MAX(%s) FROM %s), 1))",
				table, key, quote(key), quote(table))
			if _, err := tx.Exec(ctx, q); err != nil {
				return fmt.Errorf("reset sequence %s: %w", table, err)
			}
		}
		return nil
	})
}

func upsertSQL(r row) string {
	cols := make([]string, len(r.columns))
	params := make([]string, len(r.columns))
	var sets []string
	for i, c := range r.columns {
		cols[i] = quote(c)
		params[i] = fmt.Sprintf("$%d", i+1)
		if c != r.key {
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", quote(c), quote(c)))
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		quote(r.table), strings.Join(cols, ", "), strings.Join(params, ", "), quote(r.key), strings.Join(sets, ", "))
}

func quote(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}
