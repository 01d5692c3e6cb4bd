package domain

// Commune is a city attached to a department.
type Commune struct {
	ID            int64   `json:"commune_id"`
	DepartementID *string `json:"fk_commune_departement"`
	CodePostal    *string `json:"commune_codepostal"`
	Ville         *string `json:"commune_ville"`
}

type CommunePatch struct {
	DepartementID Optional[string] `json:"fk_commune_departement"`
	CodePostal    Optional[string] `json:"commune_codepostal"`
	Ville         Optional[string] `json:"commune_ville"`
}

func (p CommunePatch) Apply(c *Commune) {
	p.DepartementID.ApplyTo(&c.DepartementID)
	p.CodePostal.ApplyTo(&c.CodePostal)
	p.Ville.ApplyTo(&c.Ville)
}
