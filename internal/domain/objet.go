package domain

import "github.com/shopspring/decimal"

// Objet is a catalog item redeemable for loyalty points.
type Objet struct {
	ID      int64   `json:"objet_id"`
	Libelle *string `json:"objet_libelee"`
	Points  int     `json:"objet_points"`
}

type ObjetPatch struct {
	Libelle Optional[string] `json:"objet_libelee"`
	Points  Optional[int]    `json:"objet_points"`
}

func (p ObjetPatch) Apply(o *Objet) {
	p.Libelle.ApplyTo(&o.Libelle)
	p.Points.ApplyValue(&o.Points)
}

// VariationObjet is a purchasable size/weight variant of an Objet.
type VariationObjet struct {
	ID      int64           `json:"variation_objet_id"`
	Taille  *string         `json:"variation_objet_taille"`
	Poids   decimal.Decimal `json:"variation_objet_poids"`
	ObjetID *int64          `json:"fk_variation_objet_objet_id"`
}

type VariationObjetPatch struct {
	Taille  Optional[string]          `json:"variation_objet_taille"`
	Poids   Optional[decimal.Decimal] `json:"variation_objet_poids"`
	ObjetID Optional[int64]           `json:"fk_variation_objet_objet_id"`
}

func (p VariationObjetPatch) Apply(v *VariationObjet) {
	p.Taille.ApplyTo(&v.Taille)
	p.Poids.ApplyValue(&v.Poids)
	p.ObjetID.ApplyTo(&v.ObjetID)
}
