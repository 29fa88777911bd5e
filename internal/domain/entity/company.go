package entity

import "time"

// Regímenes tributarios (Ecuador).
const (
	RegimeRimpePopular     = "RIMPE_POPULAR"
	RegimeRimpeEmprendedor = "RIMPE_EMPRENDEDOR"
	RegimeGeneral          = "GENERAL"
)

// CompanyData son los datos de la empresa leídos por los documentos
// imprimibles (recibos, guías de entrega).
type CompanyData struct {
	ID          string
	FantasyName string
	RUC         string
	LegalRep    string
	Regime      string
	TaxAddress  string
	PhoneFixed  string
	PhoneMobile string
	Email       string
	LogoURL     string
	UpdatedAt   time.Time
}
