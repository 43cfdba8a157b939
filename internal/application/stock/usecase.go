// Package stock implementa el motor contable del libro de stock: deriva
// totales y disponible por (agente, ítem) desde dos fuentes de eventos
// (líneas de pedido y asientos manuales) y registra movimientos nuevos en un
// log append-only, con reversa compensatoria.
package stock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/ledger"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/Distribuidora-api/pkg/logger"
)

// ActorFunc resuelve la identidad del actor actual desde el contexto.
// Si devuelve vacío, los asientos quedan con CreatedBy = "system".
type ActorFunc func(ctx context.Context) string

type actorKeyType struct{}

var actorKey actorKeyType

// WithActor anota el contexto con la identidad del actor (la pone el
// middleware HTTP tras validar el token).
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey, userID)
}

// ActorFromContext es el ActorFunc por defecto.
func ActorFromContext(ctx context.Context) string {
	s, _ := ctx.Value(actorKey).(string)
	return s
}

// MovementInput entrada para RecordMovement. La cantidad se toma en valor
// absoluto: la dirección la decide TransactionType, nunca el signo.
type MovementInput struct {
	AgentID         string
	ItemCode        string
	Quantity        decimal.Decimal
	TransactionType string
	ReferenceType   string
	ReferenceID     string
	Notes           string
}

// ValidationResult resultado estructurado de ValidateOrderStock. Nunca se
// reporta como error: el caller decide cómo presentarlo.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ItemTotals totales de un ítem dentro del resumen por agente.
type ItemTotals struct {
	ItemCode string
	Totals   ledger.StockTotals
}

// LedgerUseCase motor del libro de stock. Las lecturas son escaneos puros sin
// caché; las escrituras se serializan por clave (agente, ítem) para que los
// snapshots StockBefore/StockAfter no sufran lost updates entre llamadas
// concurrentes del mismo proceso.
type LedgerUseCase struct {
	lineRepo repository.OrderLineRepository
	txRepo   repository.StockTransactionRepository
	actor    ActorFunc
	log      *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLedgerUseCase construye el motor. actor nil usa ActorFromContext;
// log nil descarta los eventos.
func NewLedgerUseCase(
	lineRepo repository.OrderLineRepository,
	txRepo repository.StockTransactionRepository,
	actor ActorFunc,
	log *logger.Logger,
) *LedgerUseCase {
	if actor == nil {
		actor = ActorFromContext
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LedgerUseCase{
		lineRepo: lineRepo,
		txRepo:   txRepo,
		actor:    actor,
		log:      log,
		locks:    make(map[string]*sync.Mutex),
	}
}

// keyLock devuelve el mutex de la clave (agente, ítem), creándolo si no existe.
func (uc *LedgerUseCase) keyLock(agentID, itemCode string) *sync.Mutex {
	key := agentID + "\x00" + itemCode
	uc.mu.Lock()
	defer uc.mu.Unlock()
	m, ok := uc.locks[key]
	if !ok {
		m = &sync.Mutex{}
		uc.locks[key] = m
	}
	return m
}

// ComputeTotals deriva los totales de un (agente, ítem) plegando las líneas
// de pedido y los asientos del log. Lectura pura, sin efectos. Si el log de
// transacciones no está disponible degrada a totales solo de pedidos
// (fuente opcional; se loguea en debug, no se propaga).
func (uc *LedgerUseCase) ComputeTotals(ctx context.Context, agentID, itemCode string) (ledger.StockTotals, error) {
	var totals ledger.StockTotals
	if agentID == "" || itemCode == "" {
		return totals, domain.ErrInvalidInput
	}

	lines, err := uc.lineRepo.FetchByAgent(ctx, agentID, itemCode)
	if err != nil {
		return totals, fmt.Errorf("leer líneas de pedido: %w", err)
	}
	for _, line := range lines {
		totals = totals.ApplyLine(line)
	}

	txs, err := uc.txRepo.FetchByAgent(ctx, agentID, itemCode)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionLogUnavailable) {
			uc.log.Debug().Str("agent_id", agentID).Str("item_code", itemCode).
				Msg("log de transacciones no disponible, totales solo de pedidos")
			return totals, nil
		}
		return totals, fmt.Errorf("leer asientos de stock: %w", err)
	}
	for _, tx := range txs {
		totals = totals.ApplyTransaction(tx)
	}
	return totals, nil
}

// GetAvailable disponible recortado a cero de un (agente, ítem).
func (uc *LedgerUseCase) GetAvailable(ctx context.Context, agentID, itemCode string) (decimal.Decimal, error) {
	totals, err := uc.ComputeTotals(ctx, agentID, itemCode)
	if err != nil {
		return decimal.Zero, err
	}
	return totals.Available(), nil
}

// HasSufficientStock reporta si el disponible cubre la cantidad requerida.
// La comparación usa siempre el valor recortado a cero.
func (uc *LedgerUseCase) HasSufficientStock(ctx context.Context, agentID, itemCode string, required decimal.Decimal) (bool, error) {
	available, err := uc.GetAvailable(ctx, agentID, itemCode)
	if err != nil {
		return false, err
	}
	return available.GreaterThanOrEqual(required), nil
}

// ValidateOrderStock valida que el stock del agente alcance para las líneas
// de un pedido. Las trade returns se saltan (agregan stock, no lo consumen),
// las líneas con cantidad no positiva se saltan en silencio, y una línea sin
// código de ítem produce error de validación. Recalcula totales línea por
// línea; con volúmenes mayores el paso obvio es agrupar por ítem.
func (uc *LedgerUseCase) ValidateOrderStock(ctx context.Context, agentID string, lines []entity.OrderLine) (ValidationResult, error) {
	if agentID == "" {
		return ValidationResult{}, domain.ErrInvalidInput
	}
	result := ValidationResult{Valid: true, Errors: []string{}}
	for _, line := range lines {
		if line.IsTradeReturn {
			continue
		}
		if line.ItemCode == "" {
			result.Errors = append(result.Errors, "Item missing product_no")
			continue
		}
		if !line.Quantity.IsPositive() {
			continue
		}
		available, err := uc.GetAvailable(ctx, agentID, line.ItemCode)
		if err != nil {
			return ValidationResult{}, err
		}
		if available.LessThan(line.Quantity) {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"Insufficient stock for item %s. Available: %s, Required: %s",
				line.ItemCode, available, line.Quantity))
		}
	}
	result.Valid = len(result.Errors) == 0
	return result, nil
}

// RecordMovement registra un asiento nuevo en el log. Lee el disponible
// actual para los snapshots StockBefore/StockAfter y escribe una fila
// inmutable; no reescribe asientos previos. Serializado por (agente, ítem).
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in MovementInput) (*entity.StockTransaction, error) {
	if in.AgentID == "" || in.ItemCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidTransactionType(in.TransactionType) {
		return nil, domain.ErrInvalidInput
	}
	qty := in.Quantity.Abs()

	lock := uc.keyLock(in.AgentID, in.ItemCode)
	lock.Lock()
	defer lock.Unlock()

	before, err := uc.GetAvailable(ctx, in.AgentID, in.ItemCode)
	if err != nil {
		return nil, err
	}
	after := before
	if entity.TransactionDirection(in.TransactionType) > 0 {
		after = after.Add(qty)
	} else {
		after = after.Sub(qty)
	}

	createdBy := uc.actor(ctx)
	if createdBy == "" {
		createdBy = "system"
	}
	tx := &entity.StockTransaction{
		ID:              uuid.New().String(),
		AgentID:         in.AgentID,
		ItemCode:        in.ItemCode,
		TransactionType: in.TransactionType,
		Quantity:        qty,
		ReferenceType:   in.ReferenceType,
		ReferenceID:     in.ReferenceID,
		StockBefore:     before,
		StockAfter:      after,
		Notes:           in.Notes,
		CreatedBy:       createdBy,
		CreatedAt:       time.Now(),
	}
	if err := uc.txRepo.Append(ctx, tx); err != nil {
		return nil, fmt.Errorf("persistir asiento de stock: %w", err)
	}
	uc.log.Info().Str("agent_id", tx.AgentID).Str("item_code", tx.ItemCode).
		Str("type", tx.TransactionType).Str("quantity", tx.Quantity.String()).
		Msg("asiento de stock registrado")
	return tx, nil
}

// RecordOrderMovements registra en el log los espejos de auditoría de las
// líneas con efecto de stock de un pedido (referencia "order"). Las trade
// returns malas de INV y CN se saltan por completo, consistente con su
// exclusión de los totales. Un pedido sin agente es falla de configuración:
// se loguea warning y se salta el pedido entero.
func (uc *LedgerUseCase) RecordOrderMovements(ctx context.Context, order *entity.Order) error {
	if order == nil || order.ID == "" {
		return domain.ErrInvalidInput
	}
	if order.AgentID == "" {
		uc.log.Warn().Str("order_id", order.ID).Msg("pedido sin agente, movimientos de stock omitidos")
		return nil
	}
	for _, line := range order.Lines {
		txType, ok := orderLineTransactionType(line)
		if !ok || line.ItemCode == "" || !line.Quantity.IsPositive() {
			continue
		}
		_, err := uc.RecordMovement(ctx, MovementInput{
			AgentID:         order.AgentID,
			ItemCode:        line.ItemCode,
			Quantity:        line.Quantity,
			TransactionType: txType,
			ReferenceType:   entity.ReferenceTypeOrder,
			ReferenceID:     order.ID,
			Notes:           fmt.Sprintf("Order %s", orderRef(order)),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// orderLineTransactionType mapea una línea a su tipo de asiento espejo.
// ok=false cuando la línea no tiene efecto de stock.
func orderLineTransactionType(line entity.OrderLine) (string, bool) {
	switch line.OrderType {
	case entity.OrderTypeDO:
		return entity.TransactionTypeIn, true
	case entity.OrderTypeINV:
		if !line.IsTradeReturn {
			return entity.TransactionTypeInvoiceSale, true
		}
		if line.TradeReturnIsGood {
			return entity.TransactionTypeInvoiceReturn, true
		}
		return "", false
	case entity.OrderTypeCN:
		if line.TradeReturnIsGood {
			return entity.TransactionTypeInvoiceReturn, true
		}
		return "", false
	}
	return "", false
}

func orderRef(order *entity.Order) string {
	if order.OrderNo != "" {
		return order.OrderNo
	}
	return order.ID
}

// ReverseOrderMovements registra asientos compensatorios (tipo opuesto,
// referencia "order_reversal") para cada asiento que el pedido dejó en el
// log. Reversa por compensación, nunca por borrado: el libro sigue siendo
// auditable. No hay guarda de idempotencia: reversar dos veces compensa dos
// veces, fiel al diseño original.
func (uc *LedgerUseCase) ReverseOrderMovements(ctx context.Context, order *entity.Order) error {
	if order == nil || order.ID == "" {
		return domain.ErrInvalidInput
	}
	txs, err := uc.txRepo.FetchByReference(ctx, entity.ReferenceTypeOrder, order.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionLogUnavailable) {
			uc.log.Debug().Str("order_id", order.ID).Msg("log de transacciones no disponible, nada que reversar")
			return nil
		}
		return fmt.Errorf("leer asientos del pedido: %w", err)
	}
	for _, tx := range txs {
		_, err := uc.RecordMovement(ctx, MovementInput{
			AgentID:         tx.AgentID,
			ItemCode:        tx.ItemCode,
			Quantity:        tx.Quantity,
			TransactionType: entity.ReversalType(tx.TransactionType),
			ReferenceType:   entity.ReferenceTypeOrderReversal,
			ReferenceID:     order.ID,
			Notes:           fmt.Sprintf("Reversal of order %s (%s)", orderRef(order), tx.TransactionType),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// SummarizeAgent forma batch de ComputeTotals: aplica la misma clasificación
// a todos los ítems del agente en una sola pasada sobre las dos fuentes.
// Debe coincidir ítem a ítem con llamar ComputeTotals por separado.
func (uc *LedgerUseCase) SummarizeAgent(ctx context.Context, agentID string) ([]ItemTotals, error) {
	if agentID == "" {
		return nil, domain.ErrInvalidInput
	}
	byItem := make(map[string]ledger.StockTotals)

	lines, err := uc.lineRepo.FetchByAgent(ctx, agentID, "")
	if err != nil {
		return nil, fmt.Errorf("leer líneas de pedido: %w", err)
	}
	for _, line := range lines {
		if line.ItemCode == "" {
			continue
		}
		byItem[line.ItemCode] = byItem[line.ItemCode].ApplyLine(line)
	}

	txs, err := uc.txRepo.FetchByAgent(ctx, agentID, "")
	if err != nil {
		if !errors.Is(err, domain.ErrTransactionLogUnavailable) {
			return nil, fmt.Errorf("leer asientos de stock: %w", err)
		}
		uc.log.Debug().Str("agent_id", agentID).
			Msg("log de transacciones no disponible, resumen solo de pedidos")
	} else {
		for _, tx := range txs {
			byItem[tx.ItemCode] = byItem[tx.ItemCode].ApplyTransaction(tx)
		}
	}

	items := make([]ItemTotals, 0, len(byItem))
	for code, totals := range byItem {
		items = append(items, ItemTotals{ItemCode: code, Totals: totals})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemCode < items[j].ItemCode })
	return items, nil
}
