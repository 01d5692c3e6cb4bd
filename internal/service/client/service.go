package client

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"fidelite-backend/internal/domain"
	clientrepo "fidelite-backend/internal/repository/client"
	"fidelite-backend/internal/service/crud"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	errNamesRequired = "nom and prenom are required"
	errInvalidEmail  = "invalid email format"
)

// Service is the client CRUD service with its validation rules applied.
type Service = crud.Service[domain.Client, domain.ClientPatch, int64]

func New(repo clientrepo.Repository, logger *zap.Logger) *Service {
	return crud.New[domain.Client, domain.ClientPatch, int64]("client", repo, Rules{}, logger)
}

// Rules requires both names on create, checks the email shape and normalizes names:
// prenom is capitalized and nom upper-cased.
type Rules struct{}

func (Rules) PrepareCreate(c domain.Client) (domain.Client, error) {
	if blank(c.Nom) || blank(c.Prenom) {
		return c, crud.Invalid(errNamesRequired)
	}
	if c.Email != nil && !validEmail(*c.Email) {
		return c, crud.Invalid(errInvalidEmail)
	}
	nom, prenom := upper(*c.Nom), capitalize(*c.Prenom)
	c.Nom, c.Prenom = &nom, &prenom
	return c, nil
}

func (Rules) PreparePatch(p domain.ClientPatch) (domain.ClientPatch, error) {
	if p.Email.Present() && !validEmail(p.Email.Value) {
		return p, crud.Invalid(errInvalidEmail)
	}
	if p.Nom.Present() {
		p.Nom.Value = upper(p.Nom.Value)
	}
	if p.Prenom.Present() {
		p.Prenom.Value = capitalize(p.Prenom.Value)
	}
	return p, nil
}

// validEmail accepts the empty string, which stands for no email.
func validEmail(s string) bool {
	return s == "" || emailPattern.MatchString(s)
}

func blank(s *string) bool {
	return s == nil || *s == ""
}

func upper(s string) string {
	return cases.Upper(language.French).String(s)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	var b strings.Builder
	b.WriteString(cases.Upper(language.French).String(string(r)))
	b.WriteString(cases.Lower(language.French).String(s[size:]))
	return b.String()
}
