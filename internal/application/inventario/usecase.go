// Package inventario expone la gestión del inventario por sucursal y las
// alertas de reposición derivadas del umbral de cada fila.
package inventario

import (
	"context"
	"time"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	"github.com/jhoicas/reservas-api/internal/domain/stock"
)

// UseCase casos de uso de inventario por sucursal.
type UseCase struct {
	inventarioRepo repository.InventarioRepository
	productoRepo   repository.ProductoRepository
	sucursalRepo   repository.SucursalRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	inventarioRepo repository.InventarioRepository,
	productoRepo repository.ProductoRepository,
	sucursalRepo repository.SucursalRepository,
) *UseCase {
	return &UseCase{inventarioRepo: inventarioRepo, productoRepo: productoRepo, sucursalRepo: sucursalRepo}
}

// Upsert crea o actualiza la fila de inventario de un producto en una sucursal.
// Valida que producto y sucursal existan.
func (uc *UseCase) Upsert(ctx context.Context, in dto.UpsertInventarioRequest) (*dto.InventarioResponse, error) {
	if in.ProductoID == "" || in.SucursalID == "" {
		return nil, &domain.ValidacionError{Campo: "inventario", Motivo: "producto_id y sucursal_id son obligatorios"}
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, &domain.NotFoundError{Entidad: "producto", ID: in.ProductoID}
	}
	sucursal, err := uc.sucursalRepo.GetByID(in.SucursalID)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, &domain.NotFoundError{Entidad: "sucursal", ID: in.SucursalID}
	}

	inv := &entity.Inventario{
		ProductoID: in.ProductoID,
		SucursalID: in.SucursalID,
		Cantidad:   in.Cantidad,
		Umbral:     in.Umbral,
		UpdatedAt:  time.Now(),
	}
	if err := uc.inventarioRepo.Upsert(inv); err != nil {
		return nil, err
	}
	return toInventarioResponse(inv), nil
}

// Get devuelve la fila de inventario de un producto en una sucursal.
func (uc *UseCase) Get(ctx context.Context, productoID, sucursalID string) (*dto.InventarioResponse, error) {
	inv, err := uc.inventarioRepo.Get(productoID, sucursalID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, &domain.NotFoundError{Entidad: "inventario", ID: productoID + "/" + sucursalID}
	}
	return toInventarioResponse(inv), nil
}

// ListByProducto devuelve las filas de inventario de un producto.
func (uc *UseCase) ListByProducto(ctx context.Context, productoID string) ([]dto.InventarioResponse, error) {
	lista, err := uc.inventarioRepo.ListByProducto(productoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventarioResponse, 0, len(lista))
	for _, inv := range lista {
		out = append(out, *toInventarioResponse(inv))
	}
	return out, nil
}

// Alertas devuelve una alerta de reposición por cada fila de inventario bajo
// su umbral, con el texto legible del libro de existencias.
func (uc *UseCase) Alertas(ctx context.Context) ([]dto.AlertaReposicionDTO, error) {
	filas, err := uc.inventarioRepo.ListBajoUmbral()
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.AlertaReposicionDTO, 0, len(filas))
	for _, inv := range filas {
		if !stock.BajoUmbral(inv) {
			continue
		}
		a := dto.AlertaReposicionDTO{
			ProductoID: inv.ProductoID,
			Producto:   "Desconocido",
			SucursalID: inv.SucursalID,
			Sucursal:   "Desconocida",
			Cantidad:   inv.Cantidad,
			Umbral:     inv.Umbral,
			Mensaje:    stock.AlertaReposicion(inv),
		}
		if inv.Producto != nil && inv.Producto.Nombre != "" {
			a.Producto = inv.Producto.Nombre
		}
		if inv.Sucursal != nil && inv.Sucursal.Nombre != "" {
			a.Sucursal = inv.Sucursal.Nombre
		}
		alertas = append(alertas, a)
	}
	return alertas, nil
}

func toInventarioResponse(inv *entity.Inventario) *dto.InventarioResponse {
	return &dto.InventarioResponse{
		ProductoID: inv.ProductoID,
		SucursalID: inv.SucursalID,
		Cantidad:   inv.Cantidad,
		Umbral:     inv.Umbral,
		UpdatedAt:  inv.UpdatedAt,
	}
}
