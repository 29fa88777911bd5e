package repository

import "github.com/jhoicas/Alquiler-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de
	// transacciones que ajustan stock.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Search(query string, limit int) ([]*entity.Product, error)
	Delete(id string) error
}
