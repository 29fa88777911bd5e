package repository

import "github.com/jhoicas/Alquiler-api/internal/domain/entity"

// CompanyRepository define el puerto para los datos de la empresa
// (registro único, leído por los documentos imprimibles).
type CompanyRepository interface {
	Get() (*entity.CompanyData, error)
	Upsert(data *entity.CompanyData) error
}
