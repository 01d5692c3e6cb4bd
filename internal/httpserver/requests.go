package httpserver

import (
	"fidelite-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// createRequest is a POST body that converts into the entity it creates.
type createRequest[E any] interface {
	toDomain() E
}

type departementRequest struct {
	Code string  `json:"departement_code" binding:"required,len=2"`
	Nom  *string `json:"departement_nom" binding:"omitempty,max=50"`
}

func (r departementRequest) toDomain() domain.Departement {
	return domain.Departement{Code: r.Code, Nom: r.Nom}
}

func (r departementRequest) key() string { return r.Code }

type communeRequest struct {
	DepartementID string  `json:"fk_commune_departement" binding:"required,len=2"`
	CodePostal    *string `json:"commune_codepostal" binding:"omitempty,max=5"`
	Ville         *string `json:"commune_ville" binding:"omitempty,max=50"`
}

func (r communeRequest) toDomain() domain.Commune {
	dep := r.DepartementID
	return domain.Commune{DepartementID: &dep, CodePostal: r.CodePostal, Ville: r.Ville}
}

type clientRequest struct {
	Genre             *string `json:"client_genre" binding:"omitempty,max=8"`
	Nom               *string `json:"client_nom" binding:"omitempty,max=40"`
	Prenom            *string `json:"client_prenom" binding:"omitempty,max=30"`
	Adresse1          *string `json:"client_adresse1" binding:"omitempty,max=50"`
	Adresse2          *string `json:"client_adresse2" binding:"omitempty,max=50"`
	Adresse3          *string `json:"client_adresse3" binding:"omitempty,max=50"`
	CommuneID         *int64  `json:"fk_commune_id"`
	TelephoneFix      *string `json:"client_telephone_fix" binding:"omitempty,max=10"`
	TelephonePortable *string `json:"client_telephone_portable" binding:"omitempty,max=10"`
	Email             *string `json:"client_email" binding:"omitempty,max=255"`
	Newsletter        *int    `json:"client_newsletter"`
}

func (r clientRequest) toDomain() domain.Client {
	return domain.Client{
		Genre:             r.Genre,
		Nom:               r.Nom,
		Prenom:            r.Prenom,
		Adresse1:          r.Adresse1,
		Adresse2:          r.Adresse2,
		Adresse3:          r.Adresse3,
		CommuneID:         r.CommuneID,
		TelephoneFix:      r.TelephoneFix,
		TelephonePortable: r.TelephonePortable,
		Email:             r.Email,
		Newsletter:        r.Newsletter,
	}
}

type commandeRequest struct {
	Date           *domain.Date     `json:"commande_date"`
	ClientID       *int64           `json:"fk_client_id"`
	ClientTimbre   *decimal.Decimal `json:"client_timbre"`
	CommandeTimbre *decimal.Decimal `json:"commande_timbre"`
	ClientCheque   *decimal.Decimal `json:"client_cheque"`
	Commentaire    *string          `json:"commande_commentaire" binding:"omitempty,max=255"`
}

func (r commandeRequest) toDomain() domain.Commande {
	return domain.Commande{
		Date:           r.Date,
		ClientID:       r.ClientID,
		ClientTimbre:   r.ClientTimbre,
		CommandeTimbre: r.CommandeTimbre,
		ClientCheque:   r.ClientCheque,
		Commentaire:    r.Commentaire,
	}
}

type detailCommandeRequest struct {
	CommandeID       *int64  `json:"fk_commande_id"`
	VariationObjetID *int64  `json:"fk_variation_objet_id"`
	Quantite         *int    `json:"detail_commande_quantitee"`
	Commentaire      *string `json:"detail_commande_commentaire" binding:"omitempty,max=100"`
}

func (r detailCommandeRequest) toDomain() domain.DetailCommande {
	return domain.DetailCommande{
		CommandeID:       r.CommandeID,
		VariationObjetID: r.VariationObjetID,
		Quantite:         valueOr(r.Quantite, 1),
		Commentaire:      r.Commentaire,
	}
}

type objetRequest struct {
	Libelle *string `json:"objet_libelee" binding:"omitempty,max=50"`
	Points  *int    `json:"objet_points"`
}

func (r objetRequest) toDomain() domain.Objet {
	return domain.Objet{Libelle: r.Libelle, Points: valueOr(r.Points, 0)}
}

type variationObjetRequest struct {
	Taille  *string          `json:"variation_objet_taille" binding:"omitempty,max=50"`
	Poids   *decimal.Decimal `json:"variation_objet_poids"`
	ObjetID *int64           `json:"fk_variation_objet_objet_id" binding:"required"`
}

func (r variationObjetRequest) toDomain() domain.VariationObjet {
	return domain.VariationObjet{
		Taille:  r.Taille,
		Poids:   valueOr(r.Poids, decimal.Zero),
		ObjetID: r.ObjetID,
	}
}

type colisRequest struct {
	CodeSuivi   *string          `json:"colis_code_suivi" binding:"omitempty,max=100"`
	Timbre      *decimal.Decimal `json:"colis_timbre"`
	Commentaire *string          `json:"colis_commentaire" binding:"omitempty,max=100"`
}

func (r colisRequest) toDomain() domain.Colis {
	return domain.Colis{CodeSuivi: r.CodeSuivi, Timbre: r.Timbre, Commentaire: r.Commentaire}
}

type detailColisRequest struct {
	DetailCommandeID *int64  `json:"fk_detail_commande_id"`
	ColisID          *int64  `json:"fk_colis_id"`
	Quantite         *int    `json:"detail_colis_quantitee"`
	Commentaire      *string `json:"detail_colis_commentaire" binding:"omitempty,max=100"`
}

func (r detailColisRequest) toDomain() domain.DetailColis {
	return domain.DetailColis{
		DetailCommandeID: r.DetailCommandeID,
		ColisID:          r.ColisID,
		Quantite:         valueOr(r.Quantite, 1),
		Commentaire:      r.Commentaire,
	}
}

// pageQuery binds the list pagination parameters.
type pageQuery struct {
	Offset *int `form:"offset" binding:"omitempty,min=0"`
	Limit  *int `form:"limit" binding:"omitempty,min=0"`
}

func (q pageQuery) values() (limit, offset int) {
	return valueOr(q.Limit, 100), valueOr(q.Offset, 0)
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
