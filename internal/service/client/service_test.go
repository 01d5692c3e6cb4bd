package client

import (
	"context"
	"testing"

	"fidelite-backend/internal/domain"
	clientrepo "fidelite-backend/internal/repository/client"
	"fidelite-backend/internal/service/crud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateNormalizesNames(t *testing.T) {
	svc := New(clientrepo.NewMemory(), nil)

	created, err := svc.Create(context.Background(), domain.Client{
		Nom:    ptr("hotton"),
		Prenom: ptr("rOBIN"),
		Email:  ptr("robin.hotton@example.fr"),
	})
	require.NoError(t, err)
	assert.Equal(t, "HOTTON", *created.Nom)
	assert.Equal(t, "Robin", *created.Prenom)
	assert.Equal(t, "robin.hotton@example.fr", *created.Email)
}

func TestCreateRequiresNames(t *testing.T) {
	svc := New(clientrepo.NewMemory(), nil)
	cases := []domain.Client{
		{Prenom: ptr("Robin")},
		{Nom: ptr("HOTTON")},
		{Nom: ptr(""), Prenom: ptr("Robin")},
		{},
	}
	for _, c := range cases {
		_, err := svc.Create(context.Background(), c)
		require.Error(t, err)
		assert.True(t, crud.IsValidation(err))
		assert.EqualError(t, err, "nom and prenom are required")
	}
}

func TestEmailValidation(t *testing.T) {
	svc := New(clientrepo.NewMemory(), nil)
	ctx := context.Background()

	for _, email := range []string{"error", "invalid-email", "a@b", "a@b.c"} {
		_, err := svc.Create(ctx, domain.Client{Nom: ptr("x"), Prenom: ptr("y"), Email: ptr(email)})
		assert.True(t, crud.IsValidation(err), email)
	}

	created, err := svc.Create(ctx, domain.Client{Nom: ptr("x"), Prenom: ptr("y"), Email: ptr("")})
	require.NoError(t, err)

	_, err = svc.Patch(ctx, created.ID, domain.ClientPatch{Email: domain.Some("error")})
	assert.EqualError(t, err, "invalid email format")

	updated, err := svc.Patch(ctx, created.ID, domain.ClientPatch{Email: domain.Some("daniel@hotton.fr")})
	require.NoError(t, err)
	assert.Equal(t, "daniel@hotton.fr", *updated.Email)

	updated, err = svc.Patch(ctx, created.ID, domain.ClientPatch{Email: domain.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.Email)
}

func TestPatchNormalizesPresentNamesOnly(t *testing.T) {
	svc := New(clientrepo.NewMemory(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Client{Nom: ptr("hotton"), Prenom: ptr("daniel"), Adresse1: ptr("1 rue")})
	require.NoError(t, err)

	updated, err := svc.Patch(ctx, created.ID, domain.ClientPatch{Prenom: domain.Some("éMILE")})
	require.NoError(t, err)
	assert.Equal(t, "Émile", *updated.Prenom)
	assert.Equal(t, "HOTTON", *updated.Nom)
	assert.Equal(t, "1 rue", *updated.Adresse1)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Jean-pierre", capitalize("JEAN-PIERRE"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "ÉLODIE", upper("élodie"))
}
