// Package catalog holds the services for redeemable objects and their variations.
package catalog

import (
	"fidelite-backend/internal/domain"
	objetrepo "fidelite-backend/internal/repository/objet"
	variationrepo "fidelite-backend/internal/repository/variationobjet"
	"fidelite-backend/internal/service/crud"
	"go.uber.org/zap"
)

type ObjetService = crud.Service[domain.Objet, domain.ObjetPatch, int64]

type VariationService = crud.Service[domain.VariationObjet, domain.VariationObjetPatch, int64]

func NewObjetService(repo objetrepo.Repository, logger *zap.Logger) *ObjetService {
	return crud.New[domain.Objet, domain.ObjetPatch, int64]("objet", repo, ObjetRules{}, logger)
}

func NewVariationService(repo variationrepo.Repository, logger *zap.Logger) *VariationService {
	return crud.New[domain.VariationObjet, domain.VariationObjetPatch, int64]("variation_objet", repo, VariationRules{}, logger)
}

// ObjetRules keeps objet_points non-null and non-negative.
type ObjetRules struct{}

func (ObjetRules) PrepareCreate(o domain.Objet) (domain.Objet, error) {
	if o.Points < 0 {
		return o, crud.Invalid("objet_points must not be negative")
	}
	return o, nil
}

func (ObjetRules) PreparePatch(p domain.ObjetPatch) (domain.ObjetPatch, error) {
	if p.Points.Set && p.Points.Null {
		return p, crud.Invalid("objet_points cannot be null")
	}
	if p.Points.Present() && p.Points.Value < 0 {
		return p, crud.Invalid("objet_points must not be negative")
	}
	return p, nil
}

// VariationRules keeps the weight and the parent objet set.
type VariationRules struct{}

func (VariationRules) PrepareCreate(v domain.VariationObjet) (domain.VariationObjet, error) {
	if v.ObjetID == nil {
		return v, crud.Invalid("fk_variation_objet_objet_id is required")
	}
	if v.Poids.IsNegative() {
		return v, crud.Invalid("variation_objet_poids must not be negative")
	}
	return v, nil
}

func (VariationRules) PreparePatch(p domain.VariationObjetPatch) (domain.VariationObjetPatch, error) {
	if p.Poids.Set && p.Poids.Null {
		return p, crud.Invalid("variation_objet_poids cannot be null")
	}
	if p.Poids.Present() && p.Poids.Value.IsNegative() {
		return p, crud.Invalid("variation_objet_poids must not be negative")
	}
	if p.ObjetID.Set && p.ObjetID.Null {
		return p, crud.Invalid("fk_variation_objet_objet_id cannot be null")
	}
	return p, nil
}
