package importer

import (
	"context"
	"strings"
	"testing"

	"fidelite-backend/internal/domain"
	objetrepo "fidelite-backend/internal/repository/objet"
	variationrepo "fidelite-backend/internal/repository/variationobjet"
	"fidelite-backend/internal/service/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVImporter_Run(t *testing.T) {
	csvData := `objet_libelee,objet_points,variation_objet_taille,variation_objet_poids
Épée magique,50,,
Baton magique,30,Petit,"0,75"
,,Moyen,1.25
,,,
Bouclier,,Grand,3
`
	objets := catalog.NewObjetService(objetrepo.NewMemory(), nil)
	variations := catalog.NewVariationService(variationrepo.NewMemory(), nil)
	imp := NewCSVImporter(strings.NewReader(csvData), objets, variations, nil)

	res, err := imp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Objets: 3, Variations: 3}, res)

	items, err := objets.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Épée magique", *items[0].Libelle)
	assert.Equal(t, 50, items[0].Points)
	assert.Equal(t, 0, items[2].Points)

	vs, err := variations.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.Equal(t, int64(2), *vs[0].ObjetID)
	assert.True(t, vs[0].Poids.Equal(decimal.RequireFromString("0.75")))
	assert.Equal(t, "Moyen", *vs[1].Taille)
	assert.Equal(t, int64(2), *vs[1].ObjetID)
	assert.Equal(t, int64(3), *vs[2].ObjetID)
}

func TestCSVImporter_Errors(t *testing.T) {
	cases := map[string]string{
		"orphan variation": "objet_libelee,variation_objet_taille\n,Moyen\n",
		"bad points":       "objet_libelee,objet_points\nÉpée,beaucoup\n",
		"bad weight":       "objet_libelee,variation_objet_poids\nÉpée,lourd\n",
		"missing column":   "libelle\nÉpée\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			imp := NewCSVImporter(strings.NewReader(data), &stubObjets{}, &stubVariations{}, nil)
			_, err := imp.Run(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestCSVImporter_RejectedVariationStopsRun(t *testing.T) {
	data := "objet_libelee,variation_objet_poids\nÉpée,-1\nBaton,1\n"
	objets := &stubObjets{}
	imp := NewCSVImporter(strings.NewReader(data), objets,
		catalog.NewVariationService(variationrepo.NewMemory(), nil), nil)

	res, err := imp.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, Result{Objets: 1}, res)
	assert.Len(t, objets.items, 1)
}

type stubObjets struct {
	items []domain.Objet
}

func (s *stubObjets) Create(_ context.Context, o domain.Objet) (*domain.Objet, error) {
	o.ID = int64(len(s.items) + 1)
	s.items = append(s.items, o)
	return &o, nil
}

type stubVariations struct {
	items []domain.VariationObjet
}

func (s *stubVariations) Create(_ context.Context, v domain.VariationObjet) (*domain.VariationObjet, error) {
	v.ID = int64(len(s.items) + 1)
	s.items = append(s.items, v)
	return &v, nil
}
