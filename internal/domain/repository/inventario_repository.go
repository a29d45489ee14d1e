package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// InventarioRepository define el puerto para las filas de inventario por
// producto y sucursal. Usado dentro de transacciones para que el ajuste de
// inventario y el de stock global no puedan divergir.
type InventarioRepository interface {
	ListByProducto(productoID string) ([]*entity.Inventario, error)
	Get(productoID, sucursalID string) (*entity.Inventario, error)
	// GetForUpdate bloquea la fila de inventario (SELECT FOR UPDATE).
	// Devuelve nil si la sucursal no tiene fila para el producto.
	GetForUpdate(productoID, sucursalID string) (*entity.Inventario, error)
	Upsert(inv *entity.Inventario) error
	// ListBajoUmbral devuelve las filas con cantidad < umbral (ambos no nulos),
	// con las asociaciones Producto y Sucursal cargadas para las alertas.
	ListBajoUmbral() ([]*entity.Inventario, error)
}
