package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
)

// CompanyUseCase gestiona el registro único de datos de la empresa.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get devuelve los datos de la empresa; nil si aún no se registran.
func (uc *CompanyUseCase) Get() (*dto.CompanyDataResponse, error) {
	data, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	out := dto.FromCompanyData(data)
	return &out, nil
}

// Save crea o reemplaza los datos de la empresa.
func (uc *CompanyUseCase) Save(in dto.CompanyDataRequest) (*dto.CompanyDataResponse, error) {
	if in.FantasyName == "" || in.RUC == "" {
		return nil, domain.NewValidation("nombre de fantasía y RUC son obligatorios")
	}
	switch in.Regime {
	case "", entity.RegimeRimpePopular, entity.RegimeRimpeEmprendedor, entity.RegimeGeneral:
	default:
		return nil, domain.NewValidation("régimen tributario desconocido: %s", in.Regime)
	}
	current, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	if current != nil {
		id = current.ID
	}
	data := &entity.CompanyData{
		ID:          id,
		FantasyName: in.FantasyName,
		RUC:         in.RUC,
		LegalRep:    in.LegalRep,
		Regime:      in.Regime,
		TaxAddress:  in.TaxAddress,
		PhoneFixed:  in.PhoneFixed,
		PhoneMobile: in.PhoneMobile,
		Email:       in.Email,
		LogoURL:     in.LogoURL,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Upsert(data); err != nil {
		return nil, err
	}
	out := dto.FromCompanyData(data)
	return &out, nil
}
