package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetBySKU(sku string) (*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar el read-modify-write de stock dentro de una transacción.
	GetForUpdate(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	List(limit, offset int) ([]*entity.Producto, error)
	Delete(id string) error
}
