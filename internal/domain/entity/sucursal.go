package entity

import "time"

// Sucursal representa una sede física del comercio.
type Sucursal struct {
	ID        string
	Nombre    string
	Direccion string
	Ciudad    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
