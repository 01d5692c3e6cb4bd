package domain

// Departement is a French administrative department keyed by its two-character code.
type Departement struct {
	Code string  `json:"departement_code"`
	Nom  *string `json:"departement_nom"`
}

// DepartementPatch carries the mutable fields; the code is immutable.
type DepartementPatch struct {
	Nom Optional[string] `json:"departement_nom"`
}

func (p DepartementPatch) Apply(d *Departement) {
	p.Nom.ApplyTo(&d.Nom)
}
