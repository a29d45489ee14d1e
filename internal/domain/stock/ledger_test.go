package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/stock"
)

func ptr(n int64) *int64 { return &n }

func TestDebitar(t *testing.T) {
	p := &entity.Producto{ID: "p1", Stock: ptr(10)}

	require.NoError(t, stock.Debitar(p, 4))
	assert.Equal(t, int64(6), *p.Stock)

	err := stock.Debitar(p, 7)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(6), *p.Stock, "en fallo no se modifica el contador")
}

func TestDebitar_StockNulo(t *testing.T) {
	p := &entity.Producto{ID: "p1"}
	err := stock.Debitar(p, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, p.Stock)
}

func TestReponer(t *testing.T) {
	p := &entity.Producto{ID: "p1", Stock: ptr(6)}
	stock.Reponer(p, 4)
	assert.Equal(t, int64(10), *p.Stock)

	// Con stock nulo la reposición inicializa el contador.
	p2 := &entity.Producto{ID: "p2"}
	stock.Reponer(p2, 3)
	require.NotNil(t, p2.Stock)
	assert.Equal(t, int64(3), *p2.Stock)
}

func TestDebitarInventario(t *testing.T) {
	inv := &entity.Inventario{ProductoID: "p1", SucursalID: "s1", Cantidad: ptr(5)}

	assert.True(t, stock.DebitarInventario(inv, 3))
	assert.Equal(t, int64(2), *inv.Cantidad)

	assert.False(t, stock.DebitarInventario(inv, 3), "cantidad insuficiente no ajusta")
	assert.Equal(t, int64(2), *inv.Cantidad)

	assert.False(t, stock.DebitarInventario(&entity.Inventario{}, 1), "cantidad nula no ajusta")
	assert.False(t, stock.DebitarInventario(nil, 1))
}

func TestReponerInventario(t *testing.T) {
	inv := &entity.Inventario{ProductoID: "p1", SucursalID: "s1", Cantidad: ptr(2)}

	assert.True(t, stock.ReponerInventario(inv, 3))
	assert.Equal(t, int64(5), *inv.Cantidad)

	assert.False(t, stock.ReponerInventario(&entity.Inventario{}, 1), "cantidad nula no se repone")
	assert.False(t, stock.ReponerInventario(nil, 1))
}

func TestBajoUmbral(t *testing.T) {
	casos := []struct {
		nombre   string
		cantidad *int64
		umbral   *int64
		esperado bool
	}{
		{"por debajo", ptr(3), ptr(10), true},
		{"igual al umbral", ptr(10), ptr(10), false},
		{"por encima", ptr(15), ptr(10), false},
		{"cantidad nula", nil, ptr(10), false},
		{"umbral nulo", ptr(3), nil, false},
		{"ambos nulos", nil, nil, false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			inv := &entity.Inventario{Cantidad: c.cantidad, Umbral: c.umbral}
			assert.Equal(t, c.esperado, stock.BajoUmbral(inv))
		})
	}
	assert.False(t, stock.BajoUmbral(nil))
}

func TestAlertaReposicion(t *testing.T) {
	inv := &entity.Inventario{
		Cantidad: ptr(3),
		Umbral:   ptr(10),
		Producto: &entity.Producto{Nombre: "Cafetera", Precio: decimal.NewFromInt(90)},
		Sucursal: &entity.Sucursal{Nombre: "Centro"},
	}
	msg := stock.AlertaReposicion(inv)
	assert.Equal(t, "Reponer producto 'Cafetera' en sucursal 'Centro': quedan 3 unidades (umbral 10)", msg)
}

func TestAlertaReposicion_SinAsociaciones(t *testing.T) {
	inv := &entity.Inventario{Cantidad: ptr(1), Umbral: ptr(5)}
	msg := stock.AlertaReposicion(inv)
	assert.Contains(t, msg, "'Desconocido'")
	assert.Contains(t, msg, "'Desconocida'")
}
