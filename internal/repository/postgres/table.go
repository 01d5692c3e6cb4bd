package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fidelite-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Querier is the subset of *pgxpool.Pool used by Table.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Assignment is one column written by a partial update.
type Assignment struct {
	Column string
	Value  any
}

// Set appends an assignment for column when the patch field was provided. An explicit
// null is written as SQL NULL.
func Set[T any](out []Assignment, column string, field domain.Optional[T]) []Assignment {
	if !field.Set {
		return out
	}
	return append(out, Assignment{Column: column, Value: field.Arg()})
}

// Mapping describes how an entity maps onto its table.
type Mapping[E, P any, K comparable] struct {
	// Entity names the entity in logs.
	Entity string
	Table  string
	Key    string
	// Columns lists the data columns, in the order of Values and of Scan after the key.
	Columns []string
	// AssignedKey marks keys supplied by the caller rather than generated by the table.
	AssignedKey bool
	KeyOf       func(E) K
	Values      func(E) []any
	// Scan reads the key followed by Columns.
	Scan    func(row pgx.Row) (E, error)
	Changes func(P) []Assignment
}

// Table implements repository.Repository on a single Postgres table.
type Table[E, P any, K comparable] struct {
	db      Querier
	m       Mapping[E, P, K]
	logger  *zap.Logger
	table   string
	key     string
	columns string
}

// NewTable returns a Table for m.
func NewTable[E, P any, K comparable](db Querier, m Mapping[E, P, K], logger *zap.Logger) *Table[E, P, K] {
	if logger == nil {
		logger = zap.NewNop()
	}
	cols := make([]string, 0, len(m.Columns)+1)
	cols = append(cols, quote(m.Key))
	for _, c := range m.Columns {
		cols = append(cols, quote(c))
	}
	return &Table[E, P, K]{
		db:      db,
		m:       m,
		logger:  logger.With(zap.String("entity", m.Entity)),
		table:   quote(m.Table),
		key:     quote(m.Key),
		columns: strings.Join(cols, ", "),
	}
}

func (t *Table[E, P, K]) Create(ctx context.Context, e E) (*E, error) {
	cols := make([]string, 0, len(t.m.Columns)+1)
	args := make([]any, 0, len(t.m.Columns)+1)
	if t.m.AssignedKey {
		cols = append(cols, t.key)
		args = append(args, t.m.KeyOf(e))
	}
	for _, c := range t.m.Columns {
		cols = append(cols, quote(c))
	}
	args = append(args, t.m.Values(e)...)

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.table, strings.Join(cols, ", "), placeholders(1, len(args)), t.columns)
	out, err := t.m.Scan(t.db.QueryRow(ctx, q, args...))
	if err != nil {
		t.logger.Warn("create failed", zap.Error(err))
		return nil, translate(err)
	}
	t.logger.Debug("created", zap.Any("id", t.m.KeyOf(out)))
	return &out, nil
}

func (t *Table[E, P, K]) Get(ctx context.Context, id K) (*E, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.columns, t.table, t.key)
	out, err := t.m.Scan(t.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			t.logger.Debug("get not found", zap.Any("id", id))
			return nil, domain.ErrNotFound
		}
		t.logger.Warn("get failed", zap.Any("id", id), zap.Error(err))
		return nil, translate(err)
	}
	return &out, nil
}

func (t *Table[E, P, K]) List(ctx context.Context, limit, offset int) ([]E, error) {
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT $1 OFFSET $2", t.columns, t.table, t.key)
	rows, err := t.db.Query(ctx, q, limit, offset)
	if err != nil {
		t.logger.Warn("list failed", zap.Error(err))
		return nil, translate(err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (E, error) {
		return t.m.Scan(row)
	})
	if err != nil {
		t.logger.Warn("list rows failed", zap.Error(err))
		return nil, translate(err)
	}
	t.logger.Debug("listed", zap.Int("limit", limit), zap.Int("offset", offset), zap.Int("count", len(result)))
	return result, nil
}

// Update writes the provided fields in a single statement, so there is no window
// between reading and writing the row.
func (t *Table[E, P, K]) Update(ctx context.Context, id K, patch P) (*E, error) {
	changes := t.m.Changes(patch)
	if len(changes) == 0 {
		return t.Get(ctx, id)
	}

	sets := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes)+1)
	for i, ch := range changes {
		sets = append(sets, quote(ch.Column)+" = $"+strconv.Itoa(i+1))
		args = append(args, ch.Value)
	}
	args = append(args, id)

	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		t.table, strings.Join(sets, ", "), t.key, len(args), t.columns)
	out, err := t.m.Scan(t.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		t.logger.Warn("update failed", zap.Any("id", id), zap.Error(err))
		return nil, translate(err)
	}
	t.logger.Debug("updated", zap.Any("id", id), zap.Int("fields", len(changes)))
	return &out, nil
}

func (t *Table[E, P, K]) Delete(ctx context.Context, id K) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.table, t.key)
	tag, err := t.db.Exec(ctx, q, id)
	if err != nil {
		t.logger.Warn("delete failed", zap.Any("id", id), zap.Error(err))
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	t.logger.Debug("deleted", zap.Any("id", id))
	return nil
}

// translate maps Postgres error codes onto domain errors.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pgErr.Detail)
	case "23503", "23502", "23514", "22001", "22003":
		msg := pgErr.Message
		if pgErr.Detail != "" {
			msg = pgErr.Detail
		}
		return fmt.Errorf("%w: %s", domain.ErrConstraint, msg)
	}
	return err
}

func quote(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "$" + strconv.Itoa(from+i)
	}
	return strings.Join(parts, ", ")
}
