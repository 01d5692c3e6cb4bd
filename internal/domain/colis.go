package domain

import "github.com/shopspring/decimal"

// Colis is a shipped package.
type Colis struct {
	ID          int64            `json:"colis_id"`
	CodeSuivi   *string          `json:"colis_code_suivi"`
	Timbre      *decimal.Decimal `json:"colis_timbre"`
	Commentaire *string          `json:"colis_commentaire"`
}

type ColisPatch struct {
	CodeSuivi   Optional[string]          `json:"colis_code_suivi"`
	Timbre      Optional[decimal.Decimal] `json:"colis_timbre"`
	Commentaire Optional[string]          `json:"colis_commentaire"`
}

func (p ColisPatch) Apply(c *Colis) {
	p.CodeSuivi.ApplyTo(&c.CodeSuivi)
	p.Timbre.ApplyTo(&c.Timbre)
	p.Commentaire.ApplyTo(&c.Commentaire)
}
