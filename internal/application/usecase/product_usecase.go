package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
	"github.com/jhoicas/Alquiler-api/internal/domain/sequence"
)

// CodeIssuer emite códigos secuenciales de documento.
type CodeIssuer interface {
	NextCode(ctx context.Context, prefix string) (string, error)
}

// ProductUseCase casos de uso CRUD para el catálogo de artículos.
// El stock se ajusta vía el caso de uso de stock, nunca por edición directa.
type ProductUseCase struct {
	repo  repository.ProductRepository
	codes CodeIssuer
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, codes CodeIssuer) *ProductUseCase {
	return &ProductUseCase{repo: repo, codes: codes}
}

// Create da de alta un artículo con código IN y su primera entrada de
// historial (el stock inicial también queda explicado).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, user string) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidation("el nombre del artículo es obligatorio")
	}
	if in.Stock < 0 {
		return nil, domain.NewValidation("el stock inicial no puede ser negativo")
	}
	if in.RentalPrice.IsNegative() || in.ReplacementPrice.IsNegative() {
		return nil, domain.NewValidation("los precios no pueden ser negativos")
	}
	id, err := uc.codes.NextCode(ctx, sequence.PrefixProduct)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:               id,
		Name:             in.Name,
		Brand:            in.Brand,
		Stock:            in.Stock,
		RentalPrice:      in.RentalPrice,
		ReplacementPrice: in.ReplacementPrice,
		ImageURL:         in.ImageURL,
		History: []entity.StockHistoryEntry{{
			Date:     now,
			Action:   "CREACIÓN DE ARTÍCULO",
			User:     user,
			Quantity: in.Stock,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID obtiene un artículo por su código.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista el catálogo paginado.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search busca artículos por código o nombre.
func (uc *ProductUseCase) Search(query string, limit int) ([]dto.ProductResponse, error) {
	products, err := uc.repo.Search(query, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.FromProduct(p))
	}
	return items, nil
}

// Update edita datos del artículo (sin tocar stock) y anexa la entrada de
// historial de edición.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest, user string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.RentalPrice != nil {
		if in.RentalPrice.IsNegative() {
			return nil, domain.NewValidation("los precios no pueden ser negativos")
		}
		product.RentalPrice = *in.RentalPrice
	}
	if in.ReplacementPrice != nil {
		if in.ReplacementPrice.IsNegative() {
			return nil, domain.NewValidation("los precios no pueden ser negativos")
		}
		product.ReplacementPrice = *in.ReplacementPrice
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	now := time.Now()
	product.History = append(product.History, entity.StockHistoryEntry{
		Date:   now,
		Action: "EDICIÓN DE ARTÍCULO",
		User:   user,
	})
	product.UpdatedAt = now
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Delete elimina un artículo del catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
