package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/reservas-api/internal/application/reserva"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// Ensure TxRunner implements reserva.TxRunner.
var _ reserva.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es el
// sobre transaccional del motor de reservas: el stock del producto, el
// inventario de la sucursal y la reserva se escriben juntos o se revierten
// juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	reservaRepo repository.ReservaRepository,
	productoRepo repository.ProductoRepository,
	inventarioRepo repository.InventarioRepository,
	clienteRepo repository.ClienteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reservaRepo := NewReservaRepository(tx)
	productoRepo := NewProductoRepository(tx)
	inventarioRepo := NewInventarioRepository(tx)
	clienteRepo := NewClienteRepository(tx)

	if err := fn(reservaRepo, productoRepo, inventarioRepo, clienteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
