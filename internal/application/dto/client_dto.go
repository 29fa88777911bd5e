package dto

import (
	"time"

	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
)

// CreateClientRequest entrada para registrar un cliente (registro exprés).
type CreateClientRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Identification string `json:"identification" validate:"required"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
}

// UpdateClientRequest entrada para editar un cliente.
type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Identification string    `json:"identification"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromClient mapea la entidad a su respuesta HTTP.
func FromClient(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID: c.ID, Name: c.Name, Identification: c.Identification,
		Address: c.Address, Phone: c.Phone, Email: c.Email, CreatedAt: c.CreatedAt,
	}
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
