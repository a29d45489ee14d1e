package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// SucursalRepository define el puerto de persistencia para Sucursal.
type SucursalRepository interface {
	Create(sucursal *entity.Sucursal) error
	GetByID(id string) (*entity.Sucursal, error)
	List(limit, offset int) ([]*entity.Sucursal, error)
	Update(sucursal *entity.Sucursal) error
	Delete(id string) error
}
