package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/WallaceSt/bzutils/internal/application/dto"
	"github.com/WallaceSt/bzutils/internal/application/report"
	"github.com/WallaceSt/bzutils/internal/application/usecase"
	"github.com/WallaceSt/bzutils/internal/domain"
)

// PeriodHandler maneja las peticiones HTTP para Period (protegido).
type PeriodHandler struct {
	uc        *usecase.PeriodUseCase
	priceList *report.PriceListUseCase
}

// NewPeriodHandler construye el handler.
func NewPeriodHandler(uc *usecase.PeriodUseCase, priceList *report.PriceListUseCase) *PeriodHandler {
	return &PeriodHandler{uc: uc, priceList: priceList}
}

// Create godoc
// @Summary      Crear período de vigencia
// @Tags         periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePeriodRequest  true  "validFrom, validTo (YYYY-MM-DD)"
// @Success      201   {object}  dto.PeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/periods [post]
func (h *PeriodHandler) Create(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	var in dto.CreatePeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas; formato YYYY-MM-DD"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVERLAP", Message: "el período se solapa con uno existente o está invertido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar períodos del dueño
// @Tags         periods
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PeriodResponse
// @Router       /api/periods [get]
func (h *PeriodHandler) List(c *fiber.Ctx) error {
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

// GetDetail godoc
// @Summary      Detalle del período con su lista de precios
// @Tags         periods
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del período"
// @Success      200  {object}  dto.PeriodDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periods/{id} [get]
func (h *PeriodHandler) GetDetail(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetDetail(p, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "período no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar período de vigencia
// @Tags         periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del período"
// @Param        body  body  dto.UpdatePeriodRequest  true  "Fechas a actualizar"
// @Success      200   {object}  dto.PeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/periods/{id} [put]
func (h *PeriodHandler) Update(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdatePeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(p, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas; formato YYYY-MM-DD"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "período no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVERLAP", Message: "el período se solapa con uno existente o está invertido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar período (solo admin)
// @Tags         periods
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del período"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periods/{id} [delete]
func (h *PeriodHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "período no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "período eliminado"})
}

// ExportPDF godoc
// @Summary      Lista de precios del período en PDF
// @Tags         periods
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del período"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periods/{id}/pdf [get]
func (h *PeriodHandler) ExportPDF(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	pdfBytes, err := h.priceList.Generate(p, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "período no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="lista-precios-%d.pdf"`, id))
	return c.Send(pdfBytes)
}
