package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo. Stock es la cantidad global
// disponible para reservar (todas las sucursales); puede ser nulo cuando aún
// no se ha cargado inventario. El desglose por sucursal vive en Inventario.
type Producto struct {
	ID          string
	SKU         string // código único
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Stock       *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
