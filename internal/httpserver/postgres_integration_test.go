package httpserver

import (
	"net/http"
	"testing"

	"fidelite-backend/internal/db/dbtest"
	clientrepo "fidelite-backend/internal/repository/client"
	colisrepo "fidelite-backend/internal/repository/colis"
	commanderepo "fidelite-backend/internal/repository/commande"
	communerepo "fidelite-backend/internal/repository/commune"
	departementrepo "fidelite-backend/internal/repository/departement"
	detailcolisrepo "fidelite-backend/internal/repository/detailcolis"
	detailcommanderepo "fidelite-backend/internal/repository/detailcommande"
	objetrepo "fidelite-backend/internal/repository/objet"
	variationrepo "fidelite-backend/internal/repository/variationobjet"
	"fidelite-backend/internal/service/catalog"
	clientsvc "fidelite-backend/internal/service/client"
	"fidelite-backend/internal/service/geo"
	"fidelite-backend/internal/service/orders"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPostgresRouter(t *testing.T) *gin.Engine {
	t.Helper()
	pool := dbtest.Pool(t)
	gin.SetMode(gin.TestMode)
	deps := Deps{
		Departements:    geo.NewDepartementService(departementrepo.NewPostgres(pool, nil), nil),
		Communes:        geo.NewCommuneService(communerepo.NewPostgres(pool, nil), nil),
		Clients:         clientsvc.New(clientrepo.NewPostgres(pool, nil), nil),
		Commandes:       orders.NewCommandeService(commanderepo.NewPostgres(pool, nil), nil),
		DetailCommandes: orders.NewDetailCommandeService(detailcommanderepo.NewPostgres(pool, nil), nil),
		Colis:           orders.NewColisService(colisrepo.NewPostgres(pool, nil), nil),
		DetailColis:     orders.NewDetailColisService(detailcolisrepo.NewPostgres(pool, nil), nil),
		Objets:          catalog.NewObjetService(objetrepo.NewPostgres(pool, nil), nil),
		Variations:      catalog.NewVariationService(variationrepo.NewPostgres(pool, nil), nil),
	}
	return buildRouter(zap.NewNop(), pool, deps, Options{})
}

func TestPostgresReferentialPolicy(t *testing.T) {
	router := newPostgresRouter(t)

	rec := do(t, router, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "postgres", decode[object](t, rec)["storage"])

	rec = do(t, router, http.MethodPost, "/departement/", `{"departement_code":"59","departement_nom":"Nord"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, router, http.MethodPost, "/departement/", `{"departement_code":"59","departement_nom":"Nord"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, "/commune/", `{"fk_commune_departement":"59","commune_codepostal":"59117","commune_ville":"Wervicq-Sud"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/commune/", `{"fk_commune_departement":"00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodDelete, "/departement/59", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/commune/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	commune := decode[object](t, rec)
	assert.Nil(t, commune["fk_commune_departement"])
	assert.Equal(t, "Wervicq-Sud", commune["commune_ville"])
}

func TestPostgresClientRoundTrip(t *testing.T) {
	router := newPostgresRouter(t)

	rec := do(t, router, http.MethodPost, "/client", `{"client_nom":"hotton","client_prenom":"robin","client_newsletter":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[object](t, rec)
	assert.Equal(t, "HOTTON", created["client_nom"])

	rec = do(t, router, http.MethodPatch, "/client/1", `{"client_telephone_fix":"0320000000"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[object](t, rec)
	assert.Equal(t, "0320000000", patched["client_telephone_fix"])
	assert.Equal(t, "Robin", patched["client_prenom"])

	rec = do(t, router, http.MethodPost, "/commande/", `{"fk_client_id":1,"commande_date":"2024-03-15","client_timbre":"80"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(80), decode[object](t, rec)["client_timbre"])

	rec = do(t, router, http.MethodDelete, "/client/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/commande/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[object](t, rec)["fk_client_id"])

	rec = do(t, router, http.MethodGet, "/client/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
