package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

var _ repository.SucursalRepository = (*SucursalRepo)(nil)

// SucursalRepo implementación de SucursalRepository (usable con pool o tx).
type SucursalRepo struct {
	q Querier
}

// NewSucursalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSucursalRepository(q Querier) *SucursalRepo {
	return &SucursalRepo{q: q}
}

// Create persiste una nueva sucursal.
func (r *SucursalRepo) Create(s *entity.Sucursal) error {
	query := `
		INSERT INTO sucursales (id, nombre, direccion, ciudad, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Nombre, s.Direccion, s.Ciudad, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sucursal: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *SucursalRepo) GetByID(id string) (*entity.Sucursal, error) {
	query := `
		SELECT id, nombre, direccion, ciudad, created_at, updated_at
		FROM sucursales WHERE id = $1`
	var s entity.Sucursal
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nombre, &s.Direccion, &s.Ciudad, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sucursal: %w", err)
	}
	return &s, nil
}

// List lista sucursales con paginación.
func (r *SucursalRepo) List(limit, offset int) ([]*entity.Sucursal, error) {
	query := `
		SELECT id, nombre, direccion, ciudad, created_at, updated_at
		FROM sucursales ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sucursales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sucursal
	for rows.Next() {
		var s entity.Sucursal
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Direccion, &s.Ciudad, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sucursal: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una sucursal.
func (r *SucursalRepo) Update(s *entity.Sucursal) error {
	query := `
		UPDATE sucursales SET nombre = $2, direccion = $3, ciudad = $4, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Nombre, s.Direccion, s.Ciudad)
	if err != nil {
		return fmt.Errorf("update sucursal: %w", err)
	}
	return nil
}

// Delete elimina una sucursal.
func (r *SucursalRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sucursales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sucursal: %w", err)
	}
	return nil
}
