package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/WallaceSt/bzutils/internal/application/dto"
	"github.com/WallaceSt/bzutils/internal/application/usecase"
	"github.com/WallaceSt/bzutils/internal/domain"
)

// PriceHandler maneja las peticiones HTTP para Price (protegido).
type PriceHandler struct {
	uc *usecase.PriceUseCase
}

// NewPriceHandler construye el handler.
func NewPriceHandler(uc *usecase.PriceUseCase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear precio para (producto, período)
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePriceRequest  true  "currency, product, period"
// @Success      201   {object}  dto.PriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/prices [post]
func (h *PriceHandler) Create(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	var in dto.CreatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "currency debe ser positivo con máximo dos decimales"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto o período no pertenece al usuario"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un precio para ese producto en ese período"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar precios del dueño
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PriceViewResponse
// @Router       /api/prices [get]
func (h *PriceHandler) List(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	out, err := h.uc.List(p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener precio por ID
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del precio"
// @Success      200  {object}  dto.PriceViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prices/{id} [get]
func (h *PriceHandler) GetByID(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(p, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "precio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar monto del precio
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del precio"
// @Param        body  body  dto.UpdatePriceRequest  true  "currency"
// @Success      200   {object}  dto.PriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prices/{id} [put]
func (h *PriceHandler) Update(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(p, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "currency debe ser positivo con máximo dos decimales"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "precio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar precio (solo admin)
// @Tags         prices
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del precio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prices/{id} [delete]
func (h *PriceHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "precio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "precio eliminado"})
}
