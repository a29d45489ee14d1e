package dto

import "time"

// CreateSucursalRequest alta de sucursal.
type CreateSucursalRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
}

// UpdateSucursalRequest actualización parcial de sucursal.
type UpdateSucursalRequest struct {
	Nombre    *string `json:"nombre"`
	Direccion *string `json:"direccion"`
	Ciudad    *string `json:"ciudad"`
}

// SucursalResponse representación de salida de una sucursal.
type SucursalResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion,omitempty"`
	Ciudad    string    `json:"ciudad,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
