package reserva_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/application/reserva"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
	"github.com/jhoicas/reservas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un almacén compartido y repositorios sobre él. El TxRunner
// de test no simula rollback; los tests verifican el comportamiento del motor,
// la atomicidad real la aporta el TxRunner de postgres.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	productos   map[string]*entity.Producto
	clientes    map[string]*entity.Cliente
	inventarios []*entity.Inventario
	reservas    map[string]*entity.Reserva
}

func newMemStore() *memStore {
	return &memStore{
		productos: make(map[string]*entity.Producto),
		clientes:  make(map[string]*entity.Cliente),
		reservas:  make(map[string]*entity.Reserva),
	}
}

type memProductoRepo struct{ s *memStore }

func (r *memProductoRepo) Create(p *entity.Producto) error { r.s.productos[p.ID] = p; return nil }
func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.s.productos[id], nil
}
func (r *memProductoRepo) GetBySKU(string) (*entity.Producto, error) { return nil, nil }
func (r *memProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.s.productos[id], nil
}
func (r *memProductoRepo) Update(p *entity.Producto) error { r.s.productos[p.ID] = p; return nil }
func (r *memProductoRepo) List(int, int) ([]*entity.Producto, error) { return nil, nil }
func (r *memProductoRepo) Delete(id string) error { delete(r.s.productos, id); return nil }

type memClienteRepo struct{ s *memStore }

func (r *memClienteRepo) Create(c *entity.Cliente) error { r.s.clientes[c.ID] = c; return nil }
func (r *memClienteRepo) GetByID(id string) (*entity.Cliente, error) { return r.s.clientes[id], nil }
func (r *memClienteRepo) List(int, int) ([]*entity.Cliente, error)   { return nil, nil }
func (r *memClienteRepo) Update(c *entity.Cliente) error { r.s.clientes[c.ID] = c; return nil }
func (r *memClienteRepo) Delete(id string) error         { delete(r.s.clientes, id); return nil }
func (r *memClienteRepo) IncrementarPuntos(id string, delta int64) error {
	if c, ok := r.s.clientes[id]; ok {
		c.Puntos += delta
	}
	return nil
}
func (r *memClienteRepo) GetPuntos(id string) (*int64, error) {
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, nil
	}
	puntos := c.Puntos
	return &puntos, nil
}

type memInventarioRepo struct{ s *memStore }

func (r *memInventarioRepo) ListByProducto(productoID string) ([]*entity.Inventario, error) {
	var out []*entity.Inventario
	for _, inv := range r.s.inventarios {
		if inv.ProductoID == productoID {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (r *memInventarioRepo) Get(productoID, sucursalID string) (*entity.Inventario, error) {
	return r.GetForUpdate(productoID, sucursalID)
}
func (r *memInventarioRepo) GetForUpdate(productoID, sucursalID string) (*entity.Inventario, error) {
	for _, inv := range r.s.inventarios {
		if inv.ProductoID == productoID && inv.SucursalID == sucursalID {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *memInventarioRepo) Upsert(inv *entity.Inventario) error {
	for i, existing := range r.s.inventarios {
		if existing.ProductoID == inv.ProductoID && existing.SucursalID == inv.SucursalID {
			r.s.inventarios[i] = inv
			return nil
		}
	}
	r.s.inventarios = append(r.s.inventarios, inv)
	return nil
}
func (r *memInventarioRepo) ListBajoUmbral() ([]*entity.Inventario, error) { return nil, nil }

type memReservaRepo struct{ s *memStore }

func (r *memReservaRepo) Create(res *entity.Reserva) error { r.s.reservas[res.ID] = res; return nil }
func (r *memReservaRepo) GetByID(id string) (*entity.Reserva, error) { return r.s.reservas[id], nil }
func (r *memReservaRepo) GetByIDConAsociaciones(id string) (*entity.Reserva, error) {
	res, ok := r.s.reservas[id]
	if !ok {
		return nil, nil
	}
	res.Cliente = r.s.clientes[res.ClienteID]
	res.Producto = r.s.productos[res.ProductoID]
	return res, nil
}
func (r *memReservaRepo) Update(res *entity.Reserva) error { r.s.reservas[res.ID] = res; return nil }
func (r *memReservaRepo) List(int, int) ([]*entity.Reserva, error) { return nil, nil }
func (r *memReservaRepo) ListByCliente(string, int, int) ([]*entity.Reserva, error) {
	return nil, nil
}
func (r *memReservaRepo) Delete(id string) error { delete(r.s.reservas, id); return nil }

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	repository.ReservaRepository,
	repository.ProductoRepository,
	repository.InventarioRepository,
	repository.ClienteRepository,
) error) error {
	return fn(&memReservaRepo{t.s}, &memProductoRepo{t.s}, &memInventarioRepo{t.s}, &memClienteRepo{t.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func ptr(n int64) *int64 { return &n }

func newEngine(s *memStore) *reserva.UseCase {
	return reserva.NewUseCase(&memTxRunner{s}, &memReservaRepo{s}, logger.Nop())
}

func seedCliente(s *memStore, id string) *entity.Cliente {
	c := &entity.Cliente{ID: id, Nombre: "Cliente " + id, Email: id + "@test.local"}
	s.clientes[id] = c
	return c
}

func seedProducto(s *memStore, id string, stock int64, precio string) *entity.Producto {
	p := &entity.Producto{
		ID:     id,
		Nombre: "Producto " + id,
		Precio: decimal.RequireFromString(precio),
		Stock:  ptr(stock),
	}
	s.productos[id] = p
	return p
}

func seedInventario(s *memStore, productoID, sucursalID string, cantidad, umbral int64) *entity.Inventario {
	inv := &entity.Inventario{
		ProductoID: productoID,
		SucursalID: sucursalID,
		Cantidad:   ptr(cantidad),
		Umbral:     ptr(umbral),
	}
	s.inventarios = append(s.inventarios, inv)
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_DescuentaStockYQuedaPendiente(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 50, "15.99")
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{
		ClienteID: "c1", ProductoID: "p1", Cantidad: 30,
	})
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, entity.EstadoPendiente, r.Estado)
	assert.Equal(t, int64(30), r.Cantidad)
	assert.Equal(t, int64(20), *s.productos["p1"].Stock, "stock debe quedar en S - q")
	assert.False(t, r.FechaReserva.IsZero())
}

func TestCrear_CantidadPorDefectoEsUno(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 5, "10.00")
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Cantidad)
	assert.Equal(t, int64(4), *s.productos["p1"].Stock)
}

func TestCrear_FechaExplicitaSeConserva(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 5, "10.00")
	uc := newEngine(s)

	fecha := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	r, err := uc.Crear(context.Background(), reserva.CrearInput{
		ClienteID: "c1", ProductoID: "p1", FechaReserva: &fecha,
	})
	require.NoError(t, err)
	assert.True(t, r.FechaReserva.Equal(fecha))
}

func TestCrear_StockInsuficienteNoModificaNada(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 10, "10.00")
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{
		ClienteID: "c1", ProductoID: "p1", Cantidad: 11,
	})
	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(10), stockErr.Disponible)
	assert.Equal(t, int64(11), stockErr.Solicitado)

	assert.Equal(t, int64(10), *s.productos["p1"].Stock, "en fallo el stock no cambia")
	assert.Empty(t, s.reservas)
}

func TestCrear_StockNuloEsInsuficiente(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	p := seedProducto(s, "p1", 0, "10.00")
	p.Stock = nil
	uc := newEngine(s)

	_, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCrear_ClienteOProductoInexistente(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 10, "10.00")
	uc := newEngine(s)

	_, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "nope", ProductoID: "p1", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "nope", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrear_AsignaSucursalConMayorExistencia(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 100, "10.00")
	seedInventario(s, "p1", "norte", 20, 5)
	seedInventario(s, "p1", "centro", 60, 5)
	seedInventario(s, "p1", "sur", 20, 5)
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1", Cantidad: 15})
	require.NoError(t, err)

	require.NotNil(t, r.SucursalID)
	assert.Equal(t, "centro", *r.SucursalID, "se descuenta de la sucursal con más existencias")
	inv, _ := (&memInventarioRepo{s}).Get("p1", "centro")
	assert.Equal(t, int64(45), *inv.Cantidad)
}

func TestCrear_SucursalExplicitaInsuficiente(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 100, "10.00")
	seedInventario(s, "p1", "norte", 3, 5)
	uc := newEngine(s)

	_, err := uc.Crear(context.Background(), reserva.CrearInput{
		ClienteID: "c1", ProductoID: "p1", SucursalID: "norte", Cantidad: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCrear_SinInventarioOmiteAjustePorSucursal(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 10, "10.00")
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1", Cantidad: 4})
	require.NoError(t, err)
	assert.Nil(t, r.SucursalID)
	assert.Equal(t, int64(6), *s.productos["p1"].Stock)
}

func TestCrear_NingunaSucursalCubre_SoloStockGlobal(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 50, "10.00")
	seedInventario(s, "p1", "norte", 3, 5)
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1", Cantidad: 10})
	require.NoError(t, err)
	assert.Nil(t, r.SucursalID)
	inv, _ := (&memInventarioRepo{s}).Get("p1", "norte")
	assert.Equal(t, int64(3), *inv.Cantidad, "inventario de sucursal intacto")
	assert.Equal(t, int64(40), *s.productos["p1"].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirmar
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmar_AcumulaPuntosConFormula(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 50, "15.99")
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1", Cantidad: 5})
	require.NoError(t, err)

	confirmada, err := uc.Confirmar(context.Background(), r.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoConfirmada, confirmada.Estado)
	// floor(5 × 15.99 / 10) = floor(7.995) = 7
	assert.Equal(t, int64(7), s.clientes["c1"].Puntos)
	require.NotNil(t, confirmada.Cliente)
	assert.Equal(t, int64(7), confirmada.Cliente.Puntos, "la respuesta trae el saldo releído")
}

func TestConfirmar_EsTransicionDeUnaSolaVia(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 50, "10.00")
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1", Cantidad: 2})
	require.NoError(t, err)

	_, err = uc.Confirmar(context.Background(), r.ID)
	require.NoError(t, err)

	// Segunda confirmación: rechazada, sin puntos duplicados.
	_, err = uc.Confirmar(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, int64(2), s.clientes["c1"].Puntos)

	// Cancelar una confirmada también se rechaza.
	_, err = uc.Cancelar(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestConfirmar_ReservaInexistente(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	_, err := uc.Confirmar(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfirmar_DatosInvalidosSonValidacion(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 50, "10.00")
	uc := newEngine(s)

	// Reserva corrupta persistida por fuera del motor (defecto aguas arriba).
	s.reservas["rx"] = &entity.Reserva{
		ID: "rx", ClienteID: "c1", ProductoID: "p1",
		Cantidad: 0, Estado: entity.EstadoPendiente,
	}
	_, err := uc.Confirmar(context.Background(), "rx")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelar
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelar_ReponeExactamenteLoDescontado(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 50, "10.00")
	seedInventario(s, "p1", "norte", 30, 5)
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{
		ClienteID: "c1", ProductoID: "p1", SucursalID: "norte", Cantidad: 12,
	})
	require.NoError(t, err)
	require.Equal(t, int64(38), *s.productos["p1"].Stock)

	cancelada, err := uc.Cancelar(context.Background(), r.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoCancelada, cancelada.Estado)
	assert.Equal(t, int64(50), *s.productos["p1"].Stock, "el stock vuelve al valor pre-creación")
	inv, _ := (&memInventarioRepo{s}).Get("p1", "norte")
	assert.Equal(t, int64(30), *inv.Cantidad, "el inventario de la sucursal vuelve al valor pre-creación")
}

func TestCancelar_EsDeUnSoloUso(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedProducto(s, "p1", 10, "10.00")
	uc := newEngine(s)

	r, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1", Cantidad: 3})
	require.NoError(t, err)

	_, err = uc.Cancelar(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), *s.productos["p1"].Stock)

	// Segunda cancelación: rechazada y sin doble reposición.
	_, err = uc.Cancelar(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, int64(10), *s.productos["p1"].Stock)
}

func TestCancelar_ReservaInexistente(t *testing.T) {
	s := newMemStore()
	uc := newEngine(s)

	_, err := uc.Cancelar(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario end-to-end del ciclo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenarioCompleto(t *testing.T) {
	s := newMemStore()
	seedCliente(s, "c1")
	seedCliente(s, "c2")
	seedProducto(s, "p1", 50, "20.00")
	uc := newEngine(s)

	// Cliente 1 reserva 30: stock 50 -> 20.
	a, err := uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c1", ProductoID: "p1", Cantidad: 30})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, a.Estado)
	assert.Equal(t, int64(20), *s.productos["p1"].Stock)

	// Cliente 2 pide otras 30: rechazado, stock sigue en 20.
	_, err = uc.Crear(context.Background(), reserva.CrearInput{ClienteID: "c2", ProductoID: "p1", Cantidad: 30})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(20), *s.productos["p1"].Stock)

	// Confirmar A: floor(30 × 20 / 10) = 60 puntos para el cliente 1.
	confirmada, err := uc.Confirmar(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoConfirmada, confirmada.Estado)
	assert.Equal(t, int64(60), s.clientes["c1"].Puntos)
	assert.Equal(t, int64(0), s.clientes["c2"].Puntos)

	// Cancelar A después de confirmar: rechazado.
	_, err = uc.Cancelar(context.Background(), a.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, int64(20), *s.productos["p1"].Stock)
}
