package dto

import "github.com/jhoicas/Alquiler-api/internal/domain/entity"

// CompanyDataRequest datos de la empresa para los documentos imprimibles.
type CompanyDataRequest struct {
	FantasyName string `json:"fantasy_name" validate:"required"`
	RUC         string `json:"ruc" validate:"required"`
	LegalRep    string `json:"legal_rep"`
	Regime      string `json:"regime"` // RIMPE_POPULAR, RIMPE_EMPRENDEDOR, GENERAL
	TaxAddress  string `json:"tax_address"`
	PhoneFixed  string `json:"phone_fixed"`
	PhoneMobile string `json:"phone_mobile"`
	Email       string `json:"email" validate:"omitempty,email"`
	LogoURL     string `json:"logo_url"`
}

// CompanyDataResponse salida de los datos de la empresa.
type CompanyDataResponse struct {
	ID          string `json:"id"`
	FantasyName string `json:"fantasy_name"`
	RUC         string `json:"ruc"`
	LegalRep    string `json:"legal_rep"`
	Regime      string `json:"regime"`
	TaxAddress  string `json:"tax_address"`
	PhoneFixed  string `json:"phone_fixed"`
	PhoneMobile string `json:"phone_mobile"`
	Email       string `json:"email"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// FromCompanyData mapea la entidad a su respuesta HTTP.
func FromCompanyData(c *entity.CompanyData) CompanyDataResponse {
	return CompanyDataResponse{
		ID: c.ID, FantasyName: c.FantasyName, RUC: c.RUC, LegalRep: c.LegalRep,
		Regime: c.Regime, TaxAddress: c.TaxAddress, PhoneFixed: c.PhoneFixed,
		PhoneMobile: c.PhoneMobile, Email: c.Email, LogoURL: c.LogoURL,
	}
}
