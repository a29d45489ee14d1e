package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/inventario"
)

// InventarioHandler maneja las peticiones HTTP de inventario por sucursal
// (protegido).
type InventarioHandler struct {
	uc *inventario.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Upsert godoc
// @Summary      Crear o actualizar inventario
// @Description  Fija cantidad y umbral de un producto en una sucursal.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertInventarioRequest  true  "producto_id, sucursal_id, cantidad, umbral"
// @Success      200   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario [put]
func (h *InventarioHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" || in.SucursalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id y sucursal_id son obligatorios"})
	}
	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Inventario de un producto en una sucursal
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id  path  string  true  "ID del producto"
// @Param        sucursal_id  path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/producto/{producto_id}/sucursal/{sucursal_id} [get]
func (h *InventarioHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("producto_id"), c.Params("sucursal_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProducto godoc
// @Summary      Inventario de un producto en todas las sucursales
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/producto/{producto_id} [get]
func (h *InventarioHandler) ListByProducto(c *fiber.Ctx) error {
	out, err := h.uc.ListByProducto(c.Context(), c.Params("producto_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "inventario": out})
}

// Alertas godoc
// @Summary      Alertas de reposición
// @Description  Filas de inventario cuya cantidad quedó en o por debajo del umbral.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertaReposicionDTO
// @Router       /api/inventario/alertas [get]
func (h *InventarioHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.uc.Alertas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "alertas": out})
}
