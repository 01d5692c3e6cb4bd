package httpserver

import (
	"net/http"
	"time"

	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/service/catalog"
	clientsvc "fidelite-backend/internal/service/client"
	"fidelite-backend/internal/service/geo"
	"fidelite-backend/internal/service/orders"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps carries the services exposed over HTTP.
type Deps struct {
	Departements    *geo.DepartementService
	Communes        *geo.CommuneService
	Clients         *clientsvc.Service
	Commandes       *orders.CommandeService
	DetailCommandes *orders.DetailCommandeService
	Colis           *orders.ColisService
	DetailColis     *orders.DetailColisService
	Objets          *catalog.ObjetService
	Variations      *catalog.VariationService
}

// Options tunes the router.
type Options struct {
	// AllowedOrigins lists CORS origins; empty or "*" allows any origin.
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db pinger, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	useJSONFieldNames()

	m := newMetrics()
	router := gin.New()
	router.Use(
		requestIDMiddleware(),
		loggingMiddleware(logger),
		gin.Recovery(),
		m.middleware(),
		cors.New(corsConfig(opts.AllowedOrigins)),
	)

	router.GET("/", rootHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(m.handler()))

	(&resource[domain.Departement, domain.DepartementPatch, string, departementRequest]{
		svc: deps.Departements, parseID: parseCode, logger: logger,
	}).register(router.Group("/departement"))
	(&resource[domain.Commune, domain.CommunePatch, int64, communeRequest]{
		svc: deps.Communes, parseID: parseInt64, logger: logger,
	}).register(router.Group("/commune"))
	(&resource[domain.Client, domain.ClientPatch, int64, clientRequest]{
		svc: deps.Clients, parseID: parseInt64, logger: logger,
	}).register(router.Group("/client"))
	(&resource[domain.Commande, domain.CommandePatch, int64, commandeRequest]{
		svc: deps.Commandes, parseID: parseInt64, logger: logger,
	}).register(router.Group("/commande"))
	(&resource[domain.DetailCommande, domain.DetailCommandePatch, int64, detailCommandeRequest]{
		svc: deps.DetailCommandes, parseID: parseInt64, logger: logger,
	}).register(router.Group("/detail_commande"))
	(&resource[domain.Colis, domain.ColisPatch, int64, colisRequest]{
		svc: deps.Colis, parseID: parseInt64, logger: logger,
	}).register(router.Group("/colis"))
	(&resource[domain.DetailColis, domain.DetailColisPatch, int64, detailColisRequest]{
		svc: deps.DetailColis, parseID: parseInt64, logger: logger,
	}).register(router.Group("/detail_colis"))
	(&resource[domain.Objet, domain.ObjetPatch, int64, objetRequest]{
		svc: deps.Objets, parseID: parseInt64, logger: logger,
	}).register(router.Group("/objet"))
	(&resource[domain.VariationObjet, domain.VariationObjetPatch, int64, variationObjetRequest]{
		svc: deps.Variations, parseID: parseInt64, logger: logger,
	}).register(router.Group("/variation_objet"))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "World"})
}
