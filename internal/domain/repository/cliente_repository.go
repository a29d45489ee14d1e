package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
// El saldo de puntos se muta solo con IncrementarPuntos (UPDATE ... SET
// puntos = puntos + $n), nunca sobreescribiendo el registro completo, para no
// pisar incrementos concurrentes de otras confirmaciones.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
	IncrementarPuntos(clienteID string, delta int64) error
	GetPuntos(clienteID string) (*int64, error)
}
