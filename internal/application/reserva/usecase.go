// Package reserva implementa el motor de reservas: creación, confirmación y
// cancelación, con la máquina de estados PENDIENTE -> CONFIRMADA | CANCELADA
// y la acumulación de puntos de fidelidad.
//
// Cada workflow corre dentro de una transacción (TxRunner) con la fila del
// producto bloqueada FOR UPDATE, de modo que dos creaciones concurrentes sobre
// el mismo producto no puedan pasar ambas la verificación de stock, y que el
// contador global y el de sucursal nunca queden a medias.
package reserva

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	"github.com/jhoicas/reservas-api/internal/domain/stock"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// diezPuntos: cada 10 unidades monetarias de compra confirmada valen 1 punto.
var diezPuntos = decimal.NewFromInt(10)

// UseCase es el motor de reservas. Las lecturas usan el repositorio atado al
// pool; cada mutación corre completa dentro del TxRunner.
type UseCase struct {
	txRunner    TxRunner
	reservaRepo repository.ReservaRepository
	log         *logger.Logger
}

// NewUseCase construye el motor.
func NewUseCase(txRunner TxRunner, reservaRepo repository.ReservaRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, reservaRepo: reservaRepo, log: log}
}

// CrearInput entrada para crear una reserva. Cantidad 0 toma el default 1;
// FechaReserva nula toma "ahora". SucursalID vacío activa la política de
// asignación: se descuenta de la sucursal con más existencias.
type CrearInput struct {
	ClienteID    string
	ProductoID   string
	SucursalID   string
	Cantidad     int64
	FechaReserva *time.Time
}

// Crear resuelve cliente y producto, descuenta stock global e inventario de
// sucursal y persiste la reserva en estado PENDIENTE. Todo dentro de una
// transacción con la fila del producto bloqueada.
func (uc *UseCase) Crear(ctx context.Context, in CrearInput) (*entity.Reserva, error) {
	cantidad := in.Cantidad
	if cantidad == 0 {
		cantidad = 1
	}
	if cantidad < 0 {
		return nil, &domain.ValidacionError{Campo: "cantidad", Motivo: "debe ser un entero positivo"}
	}

	var reserva *entity.Reserva
	err := uc.txRunner.Run(ctx, func(
		reservas repository.ReservaRepository,
		productos repository.ProductoRepository,
		inventarios repository.InventarioRepository,
		clientes repository.ClienteRepository,
	) error {
		cliente, err := clientes.GetByID(in.ClienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return &domain.NotFoundError{Entidad: "cliente", ID: in.ClienteID}
		}

		// Bloquea la fila del producto: serializa el check-then-act de stock.
		producto, err := productos.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return &domain.NotFoundError{Entidad: "producto", ID: in.ProductoID}
		}

		if err := stock.Debitar(producto, cantidad); err != nil {
			return err
		}
		if err := productos.Update(producto); err != nil {
			return err
		}

		sucursalID, err := uc.debitarInventario(productos, inventarios, in, producto, cantidad)
		if err != nil {
			return err
		}

		fecha := time.Now()
		if in.FechaReserva != nil {
			fecha = *in.FechaReserva
		}
		now := time.Now()
		reserva = &entity.Reserva{
			ID:           uuid.New().String(),
			ClienteID:    cliente.ID,
			ProductoID:   producto.ID,
			SucursalID:   sucursalID,
			Cantidad:     cantidad,
			Estado:       entity.EstadoPendiente,
			FechaReserva: fecha,
			CreatedAt:    now,
			UpdatedAt:    now,
			Cliente:      cliente,
			Producto:     producto,
		}
		return reservas.Create(reserva)
	})
	if err != nil {
		return nil, err
	}
	return reserva, nil
}

// debitarInventario aplica el descuento por sucursal y devuelve la sucursal
// elegida (nula si no se ajustó inventario).
//
// Con sucursal explícita el descuento es obligatorio: fila inexistente es
// NotFound y cantidad insuficiente es StockError. Sin sucursal se asigna la
// fila con mayor cantidad disponible que cubra el pedido; si ninguna alcanza,
// el ajuste se omite y se deja registro en el log (el stock global ya quedó
// descontado, la conciliación es tarea administrativa).
func (uc *UseCase) debitarInventario(
	productos repository.ProductoRepository,
	inventarios repository.InventarioRepository,
	in CrearInput,
	producto *entity.Producto,
	cantidad int64,
) (*string, error) {
	if in.SucursalID != "" {
		inv, err := inventarios.GetForUpdate(producto.ID, in.SucursalID)
		if err != nil {
			return nil, err
		}
		if inv == nil {
			return nil, &domain.NotFoundError{Entidad: "inventario", ID: producto.ID + "/" + in.SucursalID}
		}
		if !stock.DebitarInventario(inv, cantidad) {
			var disponible int64
			if inv.Cantidad != nil {
				disponible = *inv.Cantidad
			}
			return nil, &domain.StockError{ProductoID: producto.ID, Disponible: disponible, Solicitado: cantidad}
		}
		if err := inventarios.Upsert(inv); err != nil {
			return nil, err
		}
		return &inv.SucursalID, nil
	}

	lista, err := inventarios.ListByProducto(producto.ID)
	if err != nil {
		return nil, err
	}
	if len(lista) == 0 {
		return nil, nil
	}

	var elegido *entity.Inventario
	for _, inv := range lista {
		if inv.Cantidad == nil || *inv.Cantidad < cantidad {
			continue
		}
		if elegido == nil || *inv.Cantidad > *elegido.Cantidad {
			elegido = inv
		}
	}
	if elegido == nil {
		uc.log.Warn().
			Str("producto_id", producto.ID).
			Int64("cantidad", cantidad).
			Msg("ninguna sucursal cubre la cantidad reservada; inventario sin ajustar")
		return nil, nil
	}

	// Re-leer con bloqueo: la lista se consultó sin lock.
	inv, err := inventarios.GetForUpdate(producto.ID, elegido.SucursalID)
	if err != nil {
		return nil, err
	}
	if inv == nil || !stock.DebitarInventario(inv, cantidad) {
		uc.log.Warn().
			Str("producto_id", producto.ID).
			Str("sucursal_id", elegido.SucursalID).
			Msg("la sucursal elegida ya no cubre la cantidad; inventario sin ajustar")
		return nil, nil
	}
	if err := inventarios.Upsert(inv); err != nil {
		return nil, err
	}
	return &inv.SucursalID, nil
}

// Confirmar aplica PENDIENTE -> CONFIRMADA, calcula los puntos ganados como
// floor(cantidad × precio / 10) y los acredita con un incremento atómico en
// la capa de persistencia. Devuelve la reserva con el saldo de puntos del
// cliente releído.
func (uc *UseCase) Confirmar(ctx context.Context, reservaID string) (*entity.Reserva, error) {
	var reserva *entity.Reserva
	err := uc.txRunner.Run(ctx, func(
		reservas repository.ReservaRepository,
		_ repository.ProductoRepository,
		_ repository.InventarioRepository,
		clientes repository.ClienteRepository,
	) error {
		r, err := reservas.GetByIDConAsociaciones(reservaID)
		if err != nil {
			return err
		}
		if r == nil {
			return &domain.NotFoundError{Entidad: "reserva", ID: reservaID}
		}
		if err := r.Confirmar(); err != nil {
			return err
		}
		if r.Cantidad < 1 {
			return &domain.ValidacionError{Campo: "cantidad", Motivo: "la reserva no tiene cantidad válida"}
		}
		if r.Producto == nil {
			return &domain.ValidacionError{Campo: "producto", Motivo: "la reserva no tiene producto asociado"}
		}
		if r.Producto.Precio.IsNegative() {
			return &domain.ValidacionError{Campo: "precio", Motivo: "el producto no tiene precio válido"}
		}
		if err := reservas.Update(r); err != nil {
			return err
		}

		totalCompra := decimal.NewFromInt(r.Cantidad).Mul(r.Producto.Precio)
		puntos := totalCompra.Div(diezPuntos).Floor().IntPart()
		if puntos > 0 {
			// UPDATE ... SET puntos = puntos + $n: no pisa confirmaciones
			// concurrentes del mismo cliente.
			if err := clientes.IncrementarPuntos(r.ClienteID, puntos); err != nil {
				return err
			}
		}
		saldo, err := clientes.GetPuntos(r.ClienteID)
		if err != nil {
			return err
		}
		if r.Cliente != nil && saldo != nil {
			r.Cliente.Puntos = *saldo
		}
		reserva = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reserva, nil
}

// Cancelar aplica PENDIENTE -> CANCELADA y repone exactamente lo que la
// creación descontó: el stock global del producto y, si la reserva registró
// sucursal, la fila de inventario de esa sucursal.
func (uc *UseCase) Cancelar(ctx context.Context, reservaID string) (*entity.Reserva, error) {
	var reserva *entity.Reserva
	err := uc.txRunner.Run(ctx, func(
		reservas repository.ReservaRepository,
		productos repository.ProductoRepository,
		inventarios repository.InventarioRepository,
		_ repository.ClienteRepository,
	) error {
		r, err := reservas.GetByID(reservaID)
		if err != nil {
			return err
		}
		if r == nil {
			return &domain.NotFoundError{Entidad: "reserva", ID: reservaID}
		}
		if err := r.Cancelar(); err != nil {
			return err
		}

		if r.ProductoID != "" && r.Cantidad > 0 {
			producto, err := productos.GetForUpdate(r.ProductoID)
			if err != nil {
				return err
			}
			if producto != nil {
				stock.Reponer(producto, r.Cantidad)
				if err := productos.Update(producto); err != nil {
					return err
				}
			}
			if r.SucursalID != nil {
				inv, err := inventarios.GetForUpdate(r.ProductoID, *r.SucursalID)
				if err != nil {
					return err
				}
				if stock.ReponerInventario(inv, r.Cantidad) {
					if err := inventarios.Upsert(inv); err != nil {
						return err
					}
				}
			}
		}

		if err := reservas.Update(r); err != nil {
			return err
		}
		reserva = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reserva, nil
}

// GetByID devuelve una reserva con sus asociaciones.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Reserva, error) {
	r, err := uc.reservaRepo.GetByIDConAsociaciones(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &domain.NotFoundError{Entidad: "reserva", ID: id}
	}
	return r, nil
}

// List devuelve reservas paginadas.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.Reserva, error) {
	return uc.reservaRepo.List(limit, offset)
}

// ListByCliente devuelve las reservas de un cliente, paginadas.
func (uc *UseCase) ListByCliente(ctx context.Context, clienteID string, limit, offset int) ([]*entity.Reserva, error) {
	return uc.reservaRepo.ListByCliente(clienteID, limit, offset)
}
