// Package orders holds the services for commandes, colis and their lines.
package orders

import (
	"fidelite-backend/internal/domain"
	colisrepo "fidelite-backend/internal/repository/colis"
	commanderepo "fidelite-backend/internal/repository/commande"
	detailcolisrepo "fidelite-backend/internal/repository/detailcolis"
	detailcommanderepo "fidelite-backend/internal/repository/detailcommande"
	"fidelite-backend/internal/service/crud"
	"go.uber.org/zap"
)

type CommandeService = crud.Service[domain.Commande, domain.CommandePatch, int64]

type DetailCommandeService = crud.Service[domain.DetailCommande, domain.DetailCommandePatch, int64]

type ColisService = crud.Service[domain.Colis, domain.ColisPatch, int64]

type DetailColisService = crud.Service[domain.DetailColis, domain.DetailColisPatch, int64]

func NewCommandeService(repo commanderepo.Repository, logger *zap.Logger) *CommandeService {
	return crud.New[domain.Commande, domain.CommandePatch, int64]("commande", repo, nil, logger)
}

func NewColisService(repo colisrepo.Repository, logger *zap.Logger) *ColisService {
	return crud.New[domain.Colis, domain.ColisPatch, int64]("colis", repo, nil, logger)
}

func NewDetailCommandeService(repo detailcommanderepo.Repository, logger *zap.Logger) *DetailCommandeService {
	return crud.New[domain.DetailCommande, domain.DetailCommandePatch, int64]("detail_commande", repo, DetailCommandeRules{}, logger)
}

func NewDetailColisService(repo detailcolisrepo.Repository, logger *zap.Logger) *DetailColisService {
	return crud.New[domain.DetailColis, domain.DetailColisPatch, int64]("detail_colis", repo, DetailColisRules{}, logger)
}

type DetailCommandeRules struct{}

func (DetailCommandeRules) PrepareCreate(d domain.DetailCommande) (domain.DetailCommande, error) {
	return d, checkQuantity("detail_commande_quantitee", d.Quantite)
}

func (DetailCommandeRules) PreparePatch(p domain.DetailCommandePatch) (domain.DetailCommandePatch, error) {
	return p, checkQuantityPatch("detail_commande_quantitee", p.Quantite)
}

type DetailColisRules struct{}

func (DetailColisRules) PrepareCreate(d domain.DetailColis) (domain.DetailColis, error) {
	return d, checkQuantity("detail_colis_quantitee", d.Quantite)
}

func (DetailColisRules) PreparePatch(p domain.DetailColisPatch) (domain.DetailColisPatch, error) {
	return p, checkQuantityPatch("detail_colis_quantitee", p.Quantite)
}

func checkQuantity(field string, q int) error {
	if q < 1 {
		return crud.Invalid(field + " must be at least 1")
	}
	return nil
}

func checkQuantityPatch(field string, q domain.Optional[int]) error {
	if !q.Set {
		return nil
	}
	if q.Null {
		return crud.Invalid(field + " cannot be null")
	}
	return checkQuantity(field, q.Value)
}
