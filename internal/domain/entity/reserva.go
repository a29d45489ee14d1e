package entity

import (
	"time"

	"github.com/jhoicas/reservas-api/internal/domain"
)

// EstadoReserva es el estado del ciclo de vida de una reserva.
type EstadoReserva string

const (
	EstadoPendiente  EstadoReserva = "PENDIENTE"
	EstadoConfirmada EstadoReserva = "CONFIRMADA"
	EstadoCancelada  EstadoReserva = "CANCELADA"
)

// Reserva representa el compromiso de un cliente sobre una cantidad de un
// producto. Transiciones válidas: PENDIENTE -> CONFIRMADA y PENDIENTE ->
// CANCELADA; los estados terminales no tienen salida. La cantidad no cambia
// con las transiciones.
//
// SucursalID registra de qué sucursal se descontó inventario al crear la
// reserva (nulo si el producto no tenía inventario por sucursal); la
// cancelación repone exactamente en esa sucursal.
type Reserva struct {
	ID           string
	ClienteID    string
	ProductoID   string
	SucursalID   *string
	Cantidad     int64
	Estado       EstadoReserva
	FechaReserva time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Asociaciones opcionales (cargadas con GetByIDConAsociaciones).
	Cliente  *Cliente
	Producto *Producto
}

// Confirmar aplica la transición PENDIENTE -> CONFIRMADA. Las reservas ya
// confirmadas o canceladas se rechazan: confirmar no es idempotente.
func (r *Reserva) Confirmar() error {
	if r.Estado != EstadoPendiente {
		return &domain.TransicionError{ReservaID: r.ID, Estado: string(r.Estado), Operacion: "confirmar"}
	}
	r.Estado = EstadoConfirmada
	r.UpdatedAt = time.Now()
	return nil
}

// Cancelar aplica la transición PENDIENTE -> CANCELADA.
func (r *Reserva) Cancelar() error {
	if r.Estado != EstadoPendiente {
		return &domain.TransicionError{ReservaID: r.ID, Estado: string(r.Estado), Operacion: "cancelar"}
	}
	r.Estado = EstadoCancelada
	r.UpdatedAt = time.Now()
	return nil
}
