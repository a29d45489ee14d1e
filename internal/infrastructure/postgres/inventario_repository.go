package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL
// (usable con pool o tx). La clave natural es (producto_id, sucursal_id).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// ListByProducto devuelve las filas de inventario de un producto, ordenadas
// por cantidad descendente (las más surtidas primero, el orden que usa la
// política de asignación del motor).
func (r *InventarioRepo) ListByProducto(productoID string) ([]*entity.Inventario, error) {
	query := `
		SELECT id, producto_id, sucursal_id, cantidad, umbral, updated_at
		FROM inventarios WHERE producto_id = $1
		ORDER BY cantidad DESC NULLS LAST`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list inventarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventario
	for rows.Next() {
		var inv entity.Inventario
		if err := rows.Scan(&inv.ID, &inv.ProductoID, &inv.SucursalID, &inv.Cantidad, &inv.Umbral, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Get obtiene la fila de inventario de un producto en una sucursal.
func (r *InventarioRepo) Get(productoID, sucursalID string) (*entity.Inventario, error) {
	query := `
		SELECT id, producto_id, sucursal_id, cantidad, umbral, updated_at
		FROM inventarios WHERE producto_id = $1 AND sucursal_id = $2`
	return r.scanOne(query, productoID, sucursalID, "get inventario")
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE). Devuelve nil
// si la sucursal no tiene fila para el producto.
func (r *InventarioRepo) GetForUpdate(productoID, sucursalID string) (*entity.Inventario, error) {
	query := `
		SELECT id, producto_id, sucursal_id, cantidad, umbral, updated_at
		FROM inventarios WHERE producto_id = $1 AND sucursal_id = $2
		FOR UPDATE`
	return r.scanOne(query, productoID, sucursalID, "get inventario for update")
}

// Upsert inserta o actualiza la fila de inventario (por producto y sucursal).
func (r *InventarioRepo) Upsert(inv *entity.Inventario) error {
	query := `
		INSERT INTO inventarios (id, producto_id, sucursal_id, cantidad, umbral, updated_at)
		VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, now())
		ON CONFLICT (producto_id, sucursal_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, umbral = COALESCE(EXCLUDED.umbral, inventarios.umbral), updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductoID, inv.SucursalID, inv.Cantidad, inv.Umbral,
	)
	if err != nil {
		return fmt.Errorf("upsert inventario: %w", err)
	}
	return nil
}

// ListBajoUmbral devuelve las filas con cantidad < umbral (ambos no nulos),
// con producto y sucursal cargados para armar las alertas de reposición.
func (r *InventarioRepo) ListBajoUmbral() ([]*entity.Inventario, error) {
	query := `
		SELECT i.id, i.producto_id, i.sucursal_id, i.cantidad, i.umbral, i.updated_at,
		       p.id, p.sku, p.nombre, p.descripcion, p.precio, p.stock, p.created_at, p.updated_at,
		       s.id, s.nombre, s.direccion, s.ciudad, s.created_at, s.updated_at
		FROM inventarios i
		JOIN productos p ON p.id = i.producto_id
		JOIN sucursales s ON s.id = i.sucursal_id
		WHERE i.cantidad IS NOT NULL AND i.umbral IS NOT NULL AND i.cantidad < i.umbral
		ORDER BY i.cantidad ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventarios bajo umbral: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventario
	for rows.Next() {
		var inv entity.Inventario
		var p entity.Producto
		var s entity.Sucursal
		err := rows.Scan(
			&inv.ID, &inv.ProductoID, &inv.SucursalID, &inv.Cantidad, &inv.Umbral, &inv.UpdatedAt,
			&p.ID, &p.SKU, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
			&s.ID, &s.Nombre, &s.Direccion, &s.Ciudad, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inventario bajo umbral: %w", err)
		}
		inv.Producto = &p
		inv.Sucursal = &s
		list = append(list, &inv)
	}
	return list, rows.Err()
}

func (r *InventarioRepo) scanOne(query, productoID, sucursalID, op string) (*entity.Inventario, error) {
	var inv entity.Inventario
	err := r.q.QueryRow(context.Background(), query, productoID, sucursalID).Scan(
		&inv.ID, &inv.ProductoID, &inv.SucursalID, &inv.Cantidad, &inv.Umbral, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}
