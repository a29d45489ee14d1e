package dto

import "time"

// UpsertInventarioRequest crea o actualiza la fila de inventario de un
// producto en una sucursal.
type UpsertInventarioRequest struct {
	ProductoID string `json:"producto_id"`
	SucursalID string `json:"sucursal_id"`
	Cantidad   *int64 `json:"cantidad"`
	Umbral     *int64 `json:"umbral"`
}

// InventarioResponse representación de salida de una fila de inventario.
type InventarioResponse struct {
	ProductoID string    `json:"producto_id"`
	SucursalID string    `json:"sucursal_id"`
	Cantidad   *int64    `json:"cantidad"`
	Umbral     *int64    `json:"umbral"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AlertaReposicionDTO alerta de reposición para una fila bajo umbral.
type AlertaReposicionDTO struct {
	ProductoID string `json:"producto_id"`
	Producto   string `json:"producto"`
	SucursalID string `json:"sucursal_id"`
	Sucursal   string `json:"sucursal"`
	Cantidad   *int64 `json:"cantidad"`
	Umbral     *int64 `json:"umbral"`
	Mensaje    string `json:"mensaje"`
}
