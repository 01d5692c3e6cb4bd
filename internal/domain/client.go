package domain

// Client is a member of the loyalty program.
type Client struct {
	ID                int64   `json:"client_id"`
	Genre             *string `json:"client_genre"`
	Nom               *string `json:"client_nom"`
	Prenom            *string `json:"client_prenom"`
	Adresse1          *string `json:"client_adresse1"`
	Adresse2          *string `json:"client_adresse2"`
	Adresse3          *string `json:"client_adresse3"`
	CommuneID         *int64  `json:"fk_commune_id"`
	TelephoneFix      *string `json:"client_telephone_fix"`
	TelephonePortable *string `json:"client_telephone_portable"`
	Email             *string `json:"client_email"`
	Newsletter        *int    `json:"client_newsletter"`
}

type ClientPatch struct {
	Genre             Optional[string] `json:"client_genre"`
	Nom               Optional[string] `json:"client_nom"`
	Prenom            Optional[string] `json:"client_prenom"`
	Adresse1          Optional[string] `json:"client_adresse1"`
	Adresse2          Optional[string] `json:"client_adresse2"`
	Adresse3          Optional[string] `json:"client_adresse3"`
	CommuneID         Optional[int64]  `json:"fk_commune_id"`
	TelephoneFix      Optional[string] `json:"client_telephone_fix"`
	TelephonePortable Optional[string] `json:"client_telephone_portable"`
	Email             Optional[string] `json:"client_email"`
	Newsletter        Optional[int]    `json:"client_newsletter"`
}

func (p ClientPatch) Apply(c *Client) {
	p.Genre.ApplyTo(&c.Genre)
	p.Nom.ApplyTo(&c.Nom)
	p.Prenom.ApplyTo(&c.Prenom)
	p.Adresse1.ApplyTo(&c.Adresse1)
	p.Adresse2.ApplyTo(&c.Adresse2)
	p.Adresse3.ApplyTo(&c.Adresse3)
	p.CommuneID.ApplyTo(&c.CommuneID)
	p.TelephoneFix.ApplyTo(&c.TelephoneFix)
	p.TelephonePortable.ApplyTo(&c.TelephonePortable)
	p.Email.ApplyTo(&c.Email)
	p.Newsletter.ApplyTo(&c.Newsletter)
}
