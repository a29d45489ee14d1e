// Package stock implementa la aritmética del libro de existencias: los dos
// contadores por producto (stock global y cantidad por sucursal) y las
// consultas de umbral. Solo sabe CÓMO ajustar; cuándo ajustar lo decide el
// motor de reservas, que envuelve ambos contadores en una misma transacción.
package stock

import (
	"fmt"

	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// Debitar descuenta cantidad del stock global del producto. Falla con
// StockError si el stock es nulo (desconocido) o menor a la cantidad.
func Debitar(p *entity.Producto, cantidad int64) error {
	if p.Stock == nil {
		return &domain.StockError{ProductoID: p.ID, Disponible: 0, Solicitado: cantidad}
	}
	if *p.Stock < cantidad {
		return &domain.StockError{ProductoID: p.ID, Disponible: *p.Stock, Solicitado: cantidad}
	}
	nuevo := *p.Stock - cantidad
	p.Stock = &nuevo
	return nil
}

// Reponer suma cantidad al stock global del producto. Con stock nulo la
// reposición inicializa el contador en la cantidad repuesta.
func Reponer(p *entity.Producto, cantidad int64) {
	nuevo := cantidad
	if p.Stock != nil {
		nuevo = *p.Stock + cantidad
	}
	p.Stock = &nuevo
}

// DebitarInventario descuenta cantidad de la fila de inventario si su cantidad
// es no nula y alcanza; devuelve false si el ajuste no aplica.
func DebitarInventario(inv *entity.Inventario, cantidad int64) bool {
	if inv == nil || inv.Cantidad == nil || *inv.Cantidad < cantidad {
		return false
	}
	nuevo := *inv.Cantidad - cantidad
	inv.Cantidad = &nuevo
	return true
}

// ReponerInventario suma cantidad a la fila de inventario si su cantidad es
// no nula; devuelve false si el ajuste no aplica.
func ReponerInventario(inv *entity.Inventario, cantidad int64) bool {
	if inv == nil || inv.Cantidad == nil {
		return false
	}
	nuevo := *inv.Cantidad + cantidad
	inv.Cantidad = &nuevo
	return true
}

// BajoUmbral reporta si la fila está por debajo de su umbral de reposición.
// Cantidad o umbral nulos reportan false (default conservador).
func BajoUmbral(inv *entity.Inventario) bool {
	if inv == nil || inv.Cantidad == nil || inv.Umbral == nil {
		return false
	}
	return *inv.Cantidad < *inv.Umbral
}

// AlertaReposicion genera el texto de alerta para una fila bajo umbral,
// nombrando producto y sucursal. Asociaciones ausentes caen en
// "Desconocido"/"Desconocida".
func AlertaReposicion(inv *entity.Inventario) string {
	producto := "Desconocido"
	if inv.Producto != nil && inv.Producto.Nombre != "" {
		producto = inv.Producto.Nombre
	}
	sucursal := "Desconocida"
	if inv.Sucursal != nil && inv.Sucursal.Nombre != "" {
		sucursal = inv.Sucursal.Nombre
	}
	var cantidad, umbral int64
	if inv.Cantidad != nil {
		cantidad = *inv.Cantidad
	}
	if inv.Umbral != nil {
		umbral = *inv.Umbral
	}
	return fmt.Sprintf("Reponer producto '%s' en sucursal '%s': quedan %d unidades (umbral %d)",
		producto, sucursal, cantidad, umbral)
}
