package crud

import (
	"context"
	"errors"
	"testing"

	"fidelite-backend/internal/domain"
	objetrepo "fidelite-backend/internal/repository/objet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectPatches struct {
	NoRules[domain.Objet, domain.ObjetPatch]
}

func (rejectPatches) PreparePatch(p domain.ObjetPatch) (domain.ObjetPatch, error) {
	return p, Invalid("rejected")
}

func strPtr(s string) *string { return &s }

func TestServiceCreateGetDelete(t *testing.T) {
	ctx := context.Background()
	svc := New[domain.Objet, domain.ObjetPatch, int64]("objet", objetrepo.NewMemory(), nil, nil)
	assert.Equal(t, "objet", svc.Entity())

	created, err := svc.Create(ctx, domain.Objet{Libelle: strPtr("Épée magique"), Points: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestServiceListClampsLimit(t *testing.T) {
	ctx := context.Background()
	svc := New[domain.Objet, domain.ObjetPatch, int64]("objet", objetrepo.NewMemory(), nil, nil)
	for i := 0; i < MaxLimit+5; i++ {
		_, err := svc.Create(ctx, domain.Objet{Points: i})
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, 500, 0)
	require.NoError(t, err)
	assert.Len(t, items, MaxLimit)

	items, err = svc.List(ctx, 2, 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(4), items[0].ID)
	assert.Equal(t, int64(5), items[1].ID)

	items, err = svc.List(ctx, 10, 1000)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestServicePatchMissingBeatsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := New[domain.Objet, domain.ObjetPatch, int64]("objet", objetrepo.NewMemory(), rejectPatches{}, nil)

	_, err := svc.Patch(ctx, 42, domain.ObjetPatch{Points: domain.Some(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, IsValidation(err))

	created, err := svc.Create(ctx, domain.Objet{Points: 3})
	require.NoError(t, err)
	_, err = svc.Patch(ctx, created.ID, domain.ObjetPatch{Points: domain.Some(1)})
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "rejected")
}

func TestServicePatchKeepsUntouchedFields(t *testing.T) {
	ctx := context.Background()
	svc := New[domain.Objet, domain.ObjetPatch, int64]("objet", objetrepo.NewMemory(), nil, nil)

	created, err := svc.Create(ctx, domain.Objet{Libelle: strPtr("Baton magique"), Points: 30})
	require.NoError(t, err)

	updated, err := svc.Patch(ctx, created.ID, domain.ObjetPatch{Points: domain.Some(35)})
	require.NoError(t, err)
	assert.Equal(t, 35, updated.Points)
	require.NotNil(t, updated.Libelle)
	assert.Equal(t, "Baton magique", *updated.Libelle)
}

func TestValidationErrorSurvivesWrapping(t *testing.T) {
	err := errors.Join(errors.New("context"), Invalid("bad"))
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(domain.ErrNotFound))
}
