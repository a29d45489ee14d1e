package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// ReservaRepository define el puerto de persistencia para Reserva. Las
// reservas nunca se borran como parte del ciclo de vida; Delete existe solo
// como operación administrativa.
type ReservaRepository interface {
	Create(reserva *entity.Reserva) error
	GetByID(id string) (*entity.Reserva, error)
	// GetByIDConAsociaciones carga la reserva junto con su cliente y producto
	// (vista puntual para la confirmación).
	GetByIDConAsociaciones(id string) (*entity.Reserva, error)
	Update(reserva *entity.Reserva) error
	List(limit, offset int) ([]*entity.Reserva, error)
	ListByCliente(clienteID string, limit, offset int) ([]*entity.Reserva, error)
	Delete(id string) error
}
