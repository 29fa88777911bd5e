package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// La tabla guarda un registro único.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia de la empresa.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, fantasy_name, ruc, legal_rep, regime, tax_address, phone_fixed, phone_mobile, email, logo_url, updated_at`

// Get devuelve los datos de la empresa; nil, nil si aún no existen.
func (r *CompanyRepo) Get() (*entity.CompanyData, error) {
	query := `SELECT ` + companyColumns + ` FROM company_data LIMIT 1`
	var c entity.CompanyData
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.ID, &c.FantasyName, &c.RUC, &c.LegalRep, &c.Regime, &c.TaxAddress,
		&c.PhoneFixed, &c.PhoneMobile, &c.Email, &c.LogoURL, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company data: %w", err)
	}
	return &c, nil
}

// Upsert crea o reemplaza el registro único de la empresa.
func (r *CompanyRepo) Upsert(c *entity.CompanyData) error {
	query := `
		INSERT INTO company_data (` + companyColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			fantasy_name = $2, ruc = $3, legal_rep = $4, regime = $5,
			tax_address = $6, phone_fixed = $7, phone_mobile = $8,
			email = $9, logo_url = $10, updated_at = $11`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.FantasyName, c.RUC, c.LegalRep, c.Regime, c.TaxAddress,
		c.PhoneFixed, c.PhoneMobile, c.Email, c.LogoURL, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company data: %w", err)
	}
	return nil
}
