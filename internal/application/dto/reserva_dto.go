package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearReservaRequest creación de reserva. Cantidad 0 toma el default 1;
// sucursal_id vacío deja que el motor asigne sucursal; fecha_reserva nula
// toma la hora actual.
type CrearReservaRequest struct {
	ClienteID    string     `json:"cliente_id"`
	ProductoID   string     `json:"producto_id"`
	SucursalID   string     `json:"sucursal_id"`
	Cantidad     int64      `json:"cantidad"`
	FechaReserva *time.Time `json:"fecha_reserva"`
}

// ReservaClienteView subconjunto del cliente en respuestas de reserva (tras
// confirmar, Puntos trae el saldo releído).
type ReservaClienteView struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Puntos int64  `json:"puntos"`
}

// ReservaProductoView subconjunto del producto en respuestas de reserva.
type ReservaProductoView struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

// ReservaResponse representación de salida de una reserva.
type ReservaResponse struct {
	ID           string               `json:"id"`
	Estado       string               `json:"estado"`
	Cantidad     int64                `json:"cantidad"`
	SucursalID   *string              `json:"sucursal_id,omitempty"`
	FechaReserva time.Time            `json:"fecha_reserva"`
	Cliente      *ReservaClienteView  `json:"cliente,omitempty"`
	Producto     *ReservaProductoView `json:"producto,omitempty"`
	ClienteID    string               `json:"cliente_id"`
	ProductoID   string               `json:"producto_id"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
