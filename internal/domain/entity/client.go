package entity

import "time"

// Client representa un cliente del negocio de alquiler.
type Client struct {
	ID             string
	Name           string
	Identification string // cédula o RUC
	Address        string
	Phone          string
	Email          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
