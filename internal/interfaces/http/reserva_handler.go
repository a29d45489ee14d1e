package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/reserva"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

// ComprobanteGenerator renderiza el comprobante PDF de una reserva.
type ComprobanteGenerator interface {
	GenerarComprobante(ctx context.Context, r *entity.Reserva) ([]byte, error)
}

// ReservaHandler maneja las peticiones HTTP del ciclo de vida de reservas.
type ReservaHandler struct {
	uc  *reserva.UseCase
	pdf ComprobanteGenerator
}

// NewReservaHandler construye el handler.
func NewReservaHandler(uc *reserva.UseCase, pdf ComprobanteGenerator) *ReservaHandler {
	return &ReservaHandler{uc: uc, pdf: pdf}
}

// Crear godoc
// @Summary      Crear reserva
// @Description  Descuenta stock global e inventario de sucursal y deja la reserva en PENDIENTE.
// @Tags         reservas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearReservaRequest  true  "cliente_id, producto_id, cantidad (default 1), sucursal_id y fecha_reserva opcionales"
// @Success      201   {object}  dto.ReservaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reservas [post]
func (h *ReservaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearReservaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClienteID == "" || in.ProductoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id y producto_id son obligatorios"})
	}
	r, err := h.uc.Crear(c.Context(), reserva.CrearInput{
		ClienteID:    in.ClienteID,
		ProductoID:   in.ProductoID,
		SucursalID:   in.SucursalID,
		Cantidad:     in.Cantidad,
		FechaReserva: in.FechaReserva,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toReservaResponse(r))
}

// Confirmar godoc
// @Summary      Confirmar reserva
// @Description  PENDIENTE -> CONFIRMADA; acredita puntos de fidelidad al cliente.
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id}/confirmar [post]
func (h *ReservaHandler) Confirmar(c *fiber.Ctx) error {
	r, err := h.uc.Confirmar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toReservaResponse(r))
}

// Cancelar godoc
// @Summary      Cancelar reserva
// @Description  PENDIENTE -> CANCELADA; repone el stock y el inventario descontados.
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id}/cancelar [post]
func (h *ReservaHandler) Cancelar(c *fiber.Ctx) error {
	r, err := h.uc.Cancelar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toReservaResponse(r))
}

// GetByID godoc
// @Summary      Consultar reserva
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id} [get]
func (h *ReservaHandler) GetByID(c *fiber.Ctx) error {
	r, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toReservaResponse(r))
}

// List godoc
// @Summary      Listar reservas
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.ReservaResponse
// @Router       /api/reservas [get]
func (h *ReservaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ReservaResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReservaResponse(r))
	}
	return c.JSON(fiber.Map{"total": len(out), "reservas": out})
}

// ListByCliente godoc
// @Summary      Reservas de un cliente
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del cliente"
// @Param        limit   query  int     false  "Tamaño de página (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.ReservaResponse
// @Router       /api/clientes/{id}/reservas [get]
func (h *ReservaHandler) ListByCliente(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListByCliente(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ReservaResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReservaResponse(r))
	}
	return c.JSON(fiber.Map{"total": len(out), "reservas": out})
}

// Comprobante godoc
// @Summary      Comprobante PDF de la reserva
// @Tags         reservas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id}/comprobante [get]
func (h *ReservaHandler) Comprobante(c *fiber.Ctx) error {
	r, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	bytes, err := h.pdf.GenerarComprobante(c.Context(), r)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="reserva-`+r.ID+`.pdf"`)
	return c.Send(bytes)
}

func toReservaResponse(r *entity.Reserva) *dto.ReservaResponse {
	out := &dto.ReservaResponse{
		ID:           r.ID,
		Estado:       string(r.Estado),
		Cantidad:     r.Cantidad,
		SucursalID:   r.SucursalID,
		FechaReserva: r.FechaReserva,
		ClienteID:    r.ClienteID,
		ProductoID:   r.ProductoID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Cliente != nil {
		out.Cliente = &dto.ReservaClienteView{ID: r.Cliente.ID, Nombre: r.Cliente.Nombre, Puntos: r.Cliente.Puntos}
	}
	if r.Producto != nil {
		out.Producto = &dto.ReservaProductoView{ID: r.Producto.ID, Nombre: r.Producto.Nombre, Precio: r.Producto.Precio}
	}
	return out
}
