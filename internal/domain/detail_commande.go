package domain

// DetailCommande is an order line pointing at one object variation.
type DetailCommande struct {
	ID               int64   `json:"detail_commande_id"`
	CommandeID       *int64  `json:"fk_commande_id"`
	VariationObjetID *int64  `json:"fk_variation_objet_id"`
	Quantite         int     `json:"detail_commande_quantitee"`
	Commentaire      *string `json:"detail_commande_commentaire"`
}

type DetailCommandePatch struct {
	CommandeID       Optional[int64]  `json:"fk_commande_id"`
	VariationObjetID Optional[int64]  `json:"fk_variation_objet_id"`
	Quantite         Optional[int]    `json:"detail_commande_quantitee"`
	Commentaire      Optional[string] `json:"detail_commande_commentaire"`
}

func (p DetailCommandePatch) Apply(d *DetailCommande) {
	p.CommandeID.ApplyTo(&d.CommandeID)
	p.VariationObjetID.ApplyTo(&d.VariationObjetID)
	p.Quantite.ApplyValue(&d.Quantite)
	p.Commentaire.ApplyTo(&d.Commentaire)
}
