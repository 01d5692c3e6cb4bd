// Package geo holds the services for departements and communes.
package geo

import (
	"fidelite-backend/internal/domain"
	communerepo "fidelite-backend/internal/repository/commune"
	departementrepo "fidelite-backend/internal/repository/departement"
	"fidelite-backend/internal/service/crud"
	"go.uber.org/zap"
)

type DepartementService = crud.Service[domain.Departement, domain.DepartementPatch, string]

type CommuneService = crud.Service[domain.Commune, domain.CommunePatch, int64]

func NewDepartementService(repo departementrepo.Repository, logger *zap.Logger) *DepartementService {
	return crud.New[domain.Departement, domain.DepartementPatch, string]("departement", repo, nil, logger)
}

func NewCommuneService(repo communerepo.Repository, logger *zap.Logger) *CommuneService {
	return crud.New[domain.Commune, domain.CommunePatch, int64]("commune", repo, nil, logger)
}
