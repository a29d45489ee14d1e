package dto

import "time"

// CreateClienteRequest alta de cliente.
type CreateClienteRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// UpdateClienteRequest actualización parcial de cliente. Puntos no se acepta
// aquí: el saldo solo lo mueven las confirmaciones de reserva.
type UpdateClienteRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
}

// ClienteResponse representación de salida de un cliente.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono,omitempty"`
	Puntos    int64     `json:"puntos"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
