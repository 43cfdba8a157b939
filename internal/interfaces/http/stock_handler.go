package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// StockHandler maneja las consultas y movimientos del libro de stock (protegido).
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// agentIDForQuery resuelve el agente a consultar: un vendedor atado a un
// agente solo puede ver el suyo; los demás roles consultan cualquiera.
func agentIDForQuery(c *fiber.Ctx, requested string) (string, bool) {
	own := GetAgentID(c)
	if GetRole(c) == entity.RoleVendedor && own != "" {
		return own, requested == "" || requested == own
	}
	return requested, true
}

func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "agent_id e item_code son requeridos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// GetTotals godoc
// @Summary      Totales de stock de un (agente, ítem)
// @Description  Pliega líneas de pedido y asientos manuales en entradas,
//
//	salidas, devoluciones y disponible.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        agent_id   query  string  true  "Agente"
// @Param        item_code  query  string  true  "Código de ítem"
// @Success      200  {object}  dto.StockTotalsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/totals [get]
func (h *StockHandler) GetTotals(c *fiber.Ctx) error {
	agentID, ok := agentIDForQuery(c, c.Query("agent_id"))
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su propio agente"})
	}
	itemCode := c.Query("item_code")
	totals, err := h.uc.ComputeTotals(c.UserContext(), agentID, itemCode)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.StockTotalsResponse{
		AgentID:    agentID,
		ItemCode:   itemCode,
		StockIn:    totals.StockIn,
		StockOut:   totals.StockOut,
		ReturnGood: totals.ReturnGood,
		ReturnBad:  totals.ReturnBad,
		Available:  totals.Available(),
	})
}

// GetAvailable godoc
// @Summary      Disponible de un (agente, ítem)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        agent_id   query  string  true  "Agente"
// @Param        item_code  query  string  true  "Código de ítem"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/available [get]
func (h *StockHandler) GetAvailable(c *fiber.Ctx) error {
	agentID, ok := agentIDForQuery(c, c.Query("agent_id"))
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su propio agente"})
	}
	itemCode := c.Query("item_code")
	available, err := h.uc.GetAvailable(c.UserContext(), agentID, itemCode)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{
		"agent_id":  agentID,
		"item_code": itemCode,
		"available": available,
	})
}

// Validate godoc
// @Summary      Validar stock para las líneas de un pedido
// @Description  Devuelve el resultado estructurado de validación; nunca 4xx
//
//	por stock insuficiente, el caller decide cómo presentarlo.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateStockRequest  true  "agent_id y líneas del pedido"
// @Success      200   {object}  stock.ValidationResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/validate [post]
func (h *StockHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines := make([]entity.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, l.ToEntity())
	}
	result, err := h.uc.ValidateOrderStock(c.UserContext(), in.AgentID, lines)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(result)
}

// RecordMovement godoc
// @Summary      Registrar asiento manual de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "agent_id, item_code, quantity, type"
// @Success      201   {object}  dto.StockTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx := stock.WithActor(c.UserContext(), GetUserID(c))
	tx, err := h.uc.RecordMovement(ctx, stock.MovementInput{
		AgentID:         in.AgentID,
		ItemCode:        in.ItemCode,
		Quantity:        in.Quantity,
		TransactionType: in.Type,
		ReferenceType:   in.ReferenceType,
		ReferenceID:     in.ReferenceID,
		Notes:           in.Notes,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromTransaction(tx))
}

// RecordOrder godoc
// @Summary      Registrar los movimientos de stock de un pedido
// @Description  Deja en el log un asiento espejo por cada línea con efecto de
//
//	stock. Un pedido sin agente se omite sin error.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordOrderRequest  true  "pedido con sus líneas"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/orders/movements [post]
func (h *StockHandler) RecordOrder(c *fiber.Ctx) error {
	var in dto.RecordOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx := stock.WithActor(c.UserContext(), GetUserID(c))
	if err := h.uc.RecordOrderMovements(ctx, in.ToEntity()); err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimientos registrados"})
}

// ReverseOrder godoc
// @Summary      Reversar los movimientos de stock de un pedido
// @Description  Registra asientos compensatorios por cada asiento que el
//
//	pedido dejó en el log. No borra nada.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/orders/{id}/reverse [post]
func (h *StockHandler) ReverseOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	ctx := stock.WithActor(c.UserContext(), GetUserID(c))
	if err := h.uc.ReverseOrderMovements(ctx, &entity.Order{ID: orderID}); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimientos reversados"})
}

// Summary godoc
// @Summary      Resumen de stock por agente
// @Description  Totales y disponible de todos los ítems del agente, ordenados
//
//	por código de ítem.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        agent_id  query  string  true  "Agente"
// @Success      200  {array}   dto.StockTotalsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	agentID, ok := agentIDForQuery(c, c.Query("agent_id"))
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su propio agente"})
	}
	items, err := h.uc.SummarizeAgent(c.UserContext(), agentID)
	if err != nil {
		return stockError(c, err)
	}
	out := make([]dto.StockTotalsResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockTotalsResponse{
			AgentID:    agentID,
			ItemCode:   it.ItemCode,
			StockIn:    it.Totals.StockIn,
			StockOut:   it.Totals.StockOut,
			ReturnGood: it.Totals.ReturnGood,
			ReturnBad:  it.Totals.ReturnBad,
			Available:  it.Totals.Available(),
		})
	}
	return c.JSON(out)
}
