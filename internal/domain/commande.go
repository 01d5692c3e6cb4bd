package domain

import "github.com/shopspring/decimal"

// Commande is an order placed by a client. ClientTimbre and ClientCheque are the stamps
// and cheque sent by the client, CommandeTimbre the postage the order needs.
type Commande struct {
	ID             int64            `json:"commande_id"`
	Date           *Date            `json:"commande_date"`
	ClientID       *int64           `json:"fk_client_id"`
	ClientTimbre   *decimal.Decimal `json:"client_timbre"`
	CommandeTimbre *decimal.Decimal `json:"commande_timbre"`
	ClientCheque   *decimal.Decimal `json:"client_cheque"`
	Commentaire    *string          `json:"commande_commentaire"`
}

type CommandePatch struct {
	Date           Optional[Date]            `json:"commande_date"`
	ClientID       Optional[int64]           `json:"fk_client_id"`
	ClientTimbre   Optional[decimal.Decimal] `json:"client_timbre"`
	CommandeTimbre Optional[decimal.Decimal] `json:"commande_timbre"`
	ClientCheque   Optional[decimal.Decimal] `json:"client_cheque"`
	Commentaire    Optional[string]          `json:"commande_commentaire"`
}

func (p CommandePatch) Apply(c *Commande) {
	p.Date.ApplyTo(&c.Date)
	p.ClientID.ApplyTo(&c.ClientID)
	p.ClientTimbre.ApplyTo(&c.ClientTimbre)
	p.CommandeTimbre.ApplyTo(&c.CommandeTimbre)
	p.ClientCheque.ApplyTo(&c.ClientCheque)
	p.Commentaire.ApplyTo(&c.Commentaire)
}
