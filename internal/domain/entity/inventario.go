package entity

import "time"

// Inventario representa la existencia de un producto en una sucursal, con su
// umbral de reposición. Cantidad y Umbral son nulos cuando no se han cargado.
// Un producto puede tener cero, una o varias filas de inventario (una por sucursal).
type Inventario struct {
	ID         string
	ProductoID string
	SucursalID string
	Cantidad   *int64
	Umbral     *int64
	UpdatedAt  time.Time

	// Asociaciones opcionales (cargadas solo en consultas que las piden).
	Producto *Producto
	Sucursal *Sucursal
}
