package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reservas-api/internal/application/auth"
	"github.com/jhoicas/reservas-api/internal/application/inventario"
	"github.com/jhoicas/reservas-api/internal/application/reserva"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC     *usecase.ProductoUseCase
	ClienteUC      *usecase.ClienteUseCase
	SucursalUC     *usecase.SucursalUseCase
	InventarioUC   *inventario.UseCase
	ReservaUC      *reserva.UseCase
	AuthUC         *auth.UseCase
	ComprobanteGen ComprobanteGenerator
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", RequireRole(entity.RoleAdmin), productoHandler.Update)
	productos.Delete("/:id", RequireRole(entity.RoleAdmin), productoHandler.Delete)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", RequireRole(entity.RoleAdmin), clienteHandler.Delete)

	// Sucursales (protegido; el alta solo la hace un admin)
	sucursales := protected.Group("/sucursales")
	sucursalHandler := NewSucursalHandler(deps.SucursalUC)
	sucursales.Post("/", RequireRole(entity.RoleAdmin), sucursalHandler.Create)
	sucursales.Get("/", sucursalHandler.List)
	sucursales.Get("/:id", sucursalHandler.GetByID)
	sucursales.Put("/:id", RequireRole(entity.RoleAdmin), sucursalHandler.Update)
	sucursales.Delete("/:id", RequireRole(entity.RoleAdmin), sucursalHandler.Delete)

	// Inventario por sucursal (protegido)
	inv := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inv.Put("/", RequireRole(entity.RoleAdmin), inventarioHandler.Upsert)
	inv.Get("/alertas", inventarioHandler.Alertas)
	inv.Get("/producto/:producto_id", inventarioHandler.ListByProducto)
	inv.Get("/producto/:producto_id/sucursal/:sucursal_id", inventarioHandler.Get)

	// Reservas (protegido): ciclo de vida completo
	reservas := protected.Group("/reservas")
	reservaHandler := NewReservaHandler(deps.ReservaUC, deps.ComprobanteGen)
	reservas.Post("/", reservaHandler.Crear)
	reservas.Get("/", reservaHandler.List)
	reservas.Get("/:id", reservaHandler.GetByID)
	reservas.Get("/:id/comprobante", reservaHandler.Comprobante)
	reservas.Post("/:id/confirmar", reservaHandler.Confirmar)
	reservas.Post("/:id/cancelar", reservaHandler.Cancelar)

	// Historial de reservas por cliente
	clientes.Get("/:id/reservas", reservaHandler.ListByCliente)
}
