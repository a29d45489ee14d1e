package reserva

import (
	"context"

	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es lo que garantiza que el stock global del
// producto, la fila de inventario de la sucursal y el registro de la reserva
// se muevan juntos o no se muevan: un fallo en cualquier paso revierte todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		reservaRepo repository.ReservaRepository,
		productoRepo repository.ProductoRepository,
		inventarioRepo repository.InventarioRepository,
		clienteRepo repository.ClienteRepository,
	) error) error
}
