package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

var _ repository.ReservaRepository = (*ReservaRepo)(nil)

// ReservaRepo implementación de ReservaRepository sobre PostgreSQL (usable con pool o tx).
type ReservaRepo struct {
	q Querier
}

// NewReservaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservaRepository(q Querier) *ReservaRepo {
	return &ReservaRepo{q: q}
}

const reservaColumns = `id, cliente_id, producto_id, sucursal_id, cantidad, estado, fecha_reserva, created_at, updated_at`

// Create persiste una nueva reserva.
func (r *ReservaRepo) Create(res *entity.Reserva) error {
	query := `
		INSERT INTO reservas (id, cliente_id, producto_id, sucursal_id, cantidad, estado, fecha_reserva, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, res.ClienteID, res.ProductoID, res.SucursalID, res.Cantidad,
		string(res.Estado), res.FechaReserva, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reserva: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID (sin asociaciones).
func (r *ReservaRepo) GetByID(id string) (*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + ` FROM reservas WHERE id = $1`
	var res entity.Reserva
	var estado string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.ClienteID, &res.ProductoID, &res.SucursalID, &res.Cantidad,
		&estado, &res.FechaReserva, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reserva: %w", err)
	}
	res.Estado = entity.EstadoReserva(estado)
	return &res, nil
}

// GetByIDConAsociaciones carga la reserva junto con su cliente y producto
// (la vista puntual que necesita la confirmación).
func (r *ReservaRepo) GetByIDConAsociaciones(id string) (*entity.Reserva, error) {
	query := `
		SELECT r.id, r.cliente_id, r.producto_id, r.sucursal_id, r.cantidad, r.estado, r.fecha_reserva, r.created_at, r.updated_at,
		       c.id, c.nombre, c.email, c.telefono, c.puntos, c.created_at, c.updated_at,
		       p.id, p.sku, p.nombre, p.descripcion, p.precio, p.stock, p.created_at, p.updated_at
		FROM reservas r
		JOIN clientes c ON c.id = r.cliente_id
		JOIN productos p ON p.id = r.producto_id
		WHERE r.id = $1`
	var res entity.Reserva
	var c entity.Cliente
	var p entity.Producto
	var estado string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.ClienteID, &res.ProductoID, &res.SucursalID, &res.Cantidad,
		&estado, &res.FechaReserva, &res.CreatedAt, &res.UpdatedAt,
		&c.ID, &c.Nombre, &c.Email, &c.Telefono, &c.Puntos, &c.CreatedAt, &c.UpdatedAt,
		&p.ID, &p.SKU, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reserva con asociaciones: %w", err)
	}
	res.Estado = entity.EstadoReserva(estado)
	res.Cliente = &c
	res.Producto = &p
	return &res, nil
}

// Update persiste el estado de la reserva (las transiciones no tocan cantidad
// ni referencias).
func (r *ReservaRepo) Update(res *entity.Reserva) error {
	query := `UPDATE reservas SET estado = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, res.ID, string(res.Estado))
	if err != nil {
		return fmt.Errorf("update reserva: %w", err)
	}
	return nil
}

// List lista reservas con paginación, más recientes primero.
func (r *ReservaRepo) List(limit, offset int) ([]*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + ` FROM reservas ORDER BY fecha_reserva DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset)
}

// ListByCliente lista las reservas de un cliente.
func (r *ReservaRepo) ListByCliente(clienteID string, limit, offset int) ([]*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + ` FROM reservas WHERE cliente_id = $3 ORDER BY fecha_reserva DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset, clienteID)
}

// Delete elimina una reserva (operación administrativa, no parte del ciclo de vida).
func (r *ReservaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reservas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reserva: %w", err)
	}
	return nil
}

func (r *ReservaRepo) scanList(query string, limit, offset int, extra ...any) ([]*entity.Reserva, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reserva
	for rows.Next() {
		var res entity.Reserva
		var estado string
		if err := rows.Scan(
			&res.ID, &res.ClienteID, &res.ProductoID, &res.SucursalID, &res.Cantidad,
			&estado, &res.FechaReserva, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reserva: %w", err)
		}
		res.Estado = entity.EstadoReserva(estado)
		list = append(list, &res)
	}
	return list, rows.Err()
}
