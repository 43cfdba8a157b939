package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/application/einvoice"
	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
)

// EInvoiceHandler maneja la captura de solicitudes de factura electrónica (protegido).
type EInvoiceHandler struct {
	uc *einvoice.CaptureUseCase
}

// NewEInvoiceHandler construye el handler.
func NewEInvoiceHandler(uc *einvoice.CaptureUseCase) *EInvoiceHandler {
	return &EInvoiceHandler{uc: uc}
}

// Capture godoc
// @Summary      Capturar solicitud de factura electrónica
// @Description  Guarda la solicitud y su XML UBL; no firma ni envía.
// @Tags         einvoice
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CaptureEInvoiceRequest  true  "order_id, agent_id, customer_name, total_amount"
// @Success      201   {object}  dto.EInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/einvoice-requests [post]
func (h *EInvoiceHandler) Capture(c *fiber.Ctx) error {
	var in dto.CaptureEInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx := stock.WithActor(c.UserContext(), GetUserID(c))
	out, err := h.uc.Capture(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id, agent_id y customer_name son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar solicitud capturada
// @Tags         einvoice
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.EInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/einvoice-requests/{id} [get]
func (h *EInvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
