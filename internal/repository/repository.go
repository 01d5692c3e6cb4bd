package repository

import "context"

// Repository is the CRUD gateway for one entity type E, patched with P and keyed by K.
//
// Get, Update and Delete return domain.ErrNotFound when no row matches the key. List
// returns rows in key order; callers bound limit themselves.
type Repository[E, P any, K comparable] interface {
	Create(ctx context.Context, e E) (*E, error)
	Get(ctx context.Context, id K) (*E, error)
	List(ctx context.Context, limit, offset int) ([]E, error)
	Update(ctx context.Context, id K, patch P) (*E, error)
	Delete(ctx context.Context, id K) error
}
