package domain

// DetailColis records how many units of an order line went into a package.
type DetailColis struct {
	ID               int64   `json:"detail_colis_id"`
	DetailCommandeID *int64  `json:"fk_detail_commande_id"`
	ColisID          *int64  `json:"fk_colis_id"`
	Quantite         int     `json:"detail_colis_quantitee"`
	Commentaire      *string `json:"detail_colis_commentaire"`
}

type DetailColisPatch struct {
	DetailCommandeID Optional[int64]  `json:"fk_detail_commande_id"`
	ColisID          Optional[int64]  `json:"fk_colis_id"`
	Quantite         Optional[int]    `json:"detail_colis_quantitee"`
	Commentaire      Optional[string] `json:"detail_colis_commentaire"`
}

func (p DetailColisPatch) Apply(d *DetailColis) {
	p.DetailCommandeID.ApplyTo(&d.DetailCommandeID)
	p.ColisID.ApplyTo(&d.ColisID)
	p.Quantite.ApplyValue(&d.Quantite)
	p.Commentaire.ApplyTo(&d.Commentaire)
}
