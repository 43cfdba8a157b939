package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/infrastructure/memory"
)

const (
	testAgent = "AG-001"
	testItem  = "PRD-100"
)

func qty(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// buildLedger arma el motor con almacenes en memoria vacíos.
func buildLedger(t *testing.T) (*stock.LedgerUseCase, *memory.OrderLineStore, *memory.StockTransactionStore) {
	t.Helper()
	lines := memory.NewOrderLineStore()
	txs := memory.NewStockTransactionStore()
	uc := stock.NewLedgerUseCase(lines, txs, nil, nil)
	return uc, lines, txs
}

func seedDOInv(lines *memory.OrderLineStore, do, inv int64) {
	lines.AddLines(testAgent,
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: testItem, Quantity: qty(do)},
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(inv)},
	)
}

// ── ComputeTotals / GetAvailable ──────────────────────────────────────────────

func TestComputeTotals_EscenarioBase(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	seedDOInv(lines, 100, 30)

	totals, err := uc.ComputeTotals(context.Background(), testAgent, testItem)
	require.NoError(t, err)

	assert.True(t, totals.StockIn.Equal(qty(100)))
	assert.True(t, totals.StockOut.Equal(qty(30)))
	assert.True(t, totals.ReturnGood.IsZero())
	assert.True(t, totals.ReturnBad.IsZero())
	assert.True(t, totals.Available().Equal(qty(70)))
}

func TestComputeTotals_IdentificadoresVacios(t *testing.T) {
	uc, _, _ := buildLedger(t)

	_, err := uc.ComputeTotals(context.Background(), "", testItem)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ComputeTotals(context.Background(), testAgent, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Fuente opcional caída: degrada a totales solo de pedidos, sin error.
func TestComputeTotals_LogNoDisponibleDegrada(t *testing.T) {
	uc, lines, txs := buildLedger(t)
	seedDOInv(lines, 100, 30)
	txs.SetUnavailable(true)

	totals, err := uc.ComputeTotals(context.Background(), testAgent, testItem)
	require.NoError(t, err, "la ausencia del log nunca se propaga al caller")
	assert.True(t, totals.Available().Equal(qty(70)))
}

// Lecturas idempotentes: dos llamadas sin escrituras intermedias coinciden.
func TestComputeTotals_LecturaIdempotente(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	seedDOInv(lines, 100, 30)

	a, err := uc.ComputeTotals(context.Background(), testAgent, testItem)
	require.NoError(t, err)
	b, err := uc.ComputeTotals(context.Background(), testAgent, testItem)
	require.NoError(t, err)
	assert.True(t, a.Available().Equal(b.Available()))
	assert.True(t, a.StockIn.Equal(b.StockIn))
	assert.True(t, a.StockOut.Equal(b.StockOut))
}

func TestGetAvailable_NuncaNegativo(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	seedDOInv(lines, 10, 45)

	available, err := uc.GetAvailable(context.Background(), testAgent, testItem)
	require.NoError(t, err)
	assert.True(t, available.IsZero(), "el disponible se recorta a cero")
}

// ── HasSufficientStock / ValidateOrderStock ──────────────────────────────────

func TestHasSufficientStock(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	seedDOInv(lines, 100, 30) // disponible 70

	ok, err := uc.HasSufficientStock(context.Background(), testAgent, testItem, qty(70))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.HasSufficientStock(context.Background(), testAgent, testItem, qty(71))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateOrderStock_InsuficienteUnSoloError(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	seedDOInv(lines, 100, 30) // disponible 70

	result, err := uc.ValidateOrderStock(context.Background(), testAgent, []entity.OrderLine{
		{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(80)},
	})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Insufficient stock for item PRD-100. Available: 70, Required: 80", result.Errors[0])
}

func TestValidateOrderStock_SaltaTradeReturnsYCantidadesNoPositivas(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	seedDOInv(lines, 10, 0) // disponible 10

	result, err := uc.ValidateOrderStock(context.Background(), testAgent, []entity.OrderLine{
		// Trade return: agrega stock, nunca lo consume -> se salta aunque pida 999.
		{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(999), IsTradeReturn: true},
		// Cantidad cero: se salta en silencio, sin error.
		{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(0)},
		// Dentro del disponible.
		{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(5)},
	})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateOrderStock_ItemSinCodigo(t *testing.T) {
	uc, _, _ := buildLedger(t)

	result, err := uc.ValidateOrderStock(context.Background(), testAgent, []entity.OrderLine{
		{OrderType: entity.OrderTypeINV, ItemCode: "", Quantity: qty(5)},
	})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Item missing product_no", result.Errors[0])
}

// ── RecordMovement ────────────────────────────────────────────────────────────

// Un asiento manual recién escrito se refleja de inmediato en el disponible
// y StockAfter coincide con el nuevo GetAvailable (sin escritores concurrentes).
func TestRecordMovement_ReflejaDeltaInmediato(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	seedDOInv(lines, 100, 30) // disponible 70

	tx, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		AgentID:         testAgent,
		ItemCode:        testItem,
		Quantity:        qty(15),
		TransactionType: entity.TransactionTypeOut,
		ReferenceType:   entity.ReferenceTypeManual,
		Notes:           "salida manual bodega",
	})
	require.NoError(t, err)

	assert.True(t, tx.StockBefore.Equal(qty(70)))
	assert.True(t, tx.StockAfter.Equal(qty(55)))

	available, err := uc.GetAvailable(context.Background(), testAgent, testItem)
	require.NoError(t, err)
	assert.True(t, available.Equal(tx.StockAfter), "StockAfter debe coincidir con el nuevo disponible")
}

// La dirección vive en el tipo: una cantidad negativa entra como magnitud.
func TestRecordMovement_CantidadEnValorAbsoluto(t *testing.T) {
	uc, _, _ := buildLedger(t)

	tx, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		AgentID:         testAgent,
		ItemCode:        testItem,
		Quantity:        qty(-25),
		TransactionType: entity.TransactionTypeIn,
		ReferenceType:   entity.ReferenceTypeManual,
	})
	require.NoError(t, err)
	assert.True(t, tx.Quantity.Equal(qty(25)))
	assert.True(t, tx.StockAfter.Equal(qty(25)), "entrada de 25 sobre disponible 0")
}

func TestRecordMovement_Validaciones(t *testing.T) {
	uc, _, _ := buildLedger(t)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, stock.MovementInput{ItemCode: testItem, Quantity: qty(1), TransactionType: entity.TransactionTypeIn})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "agente vacío debe frenar la operación")

	_, err = uc.RecordMovement(ctx, stock.MovementInput{AgentID: testAgent, Quantity: qty(1), TransactionType: entity.TransactionTypeIn})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ítem vacío debe frenar la operación")

	_, err = uc.RecordMovement(ctx, stock.MovementInput{AgentID: testAgent, ItemCode: testItem, Quantity: qty(1), TransactionType: "destroy"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido debe frenar la operación")
}

func TestRecordMovement_CreatedByActorOSystem(t *testing.T) {
	uc, _, _ := buildLedger(t)

	// Sin actor en contexto -> "system".
	tx, err := uc.RecordMovement(context.Background(), stock.MovementInput{
		AgentID: testAgent, ItemCode: testItem, Quantity: qty(1),
		TransactionType: entity.TransactionTypeIn, ReferenceType: entity.ReferenceTypeManual,
	})
	require.NoError(t, err)
	assert.Equal(t, "system", tx.CreatedBy)

	// Con actor en contexto -> identidad del usuario.
	ctx := stock.WithActor(context.Background(), "user-77")
	tx, err = uc.RecordMovement(ctx, stock.MovementInput{
		AgentID: testAgent, ItemCode: testItem, Quantity: qty(1),
		TransactionType: entity.TransactionTypeIn, ReferenceType: entity.ReferenceTypeManual,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-77", tx.CreatedBy)
}

// ── RecordOrderMovements / ReverseOrderMovements ─────────────────────────────

func order(id string, lines ...entity.OrderLine) *entity.Order {
	return &entity.Order{ID: id, OrderNo: "ORD-" + id, AgentID: testAgent, Lines: lines}
}

func TestRecordOrderMovements_EspejosYSaltos(t *testing.T) {
	uc, _, txs := buildLedger(t)

	err := uc.RecordOrderMovements(context.Background(), order("o1",
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: testItem, Quantity: qty(100)},
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(30)},
		// Devoluciones malas: sin asiento, consistente con su exclusión de totales.
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(7), IsTradeReturn: true, TradeReturnIsGood: false},
		entity.OrderLine{OrderType: entity.OrderTypeCN, ItemCode: testItem, Quantity: qty(5), TradeReturnIsGood: false},
		// Devolución buena de CN: sí deja asiento.
		entity.OrderLine{OrderType: entity.OrderTypeCN, ItemCode: testItem, Quantity: qty(10), TradeReturnIsGood: true},
	))
	require.NoError(t, err)

	recorded, err := txs.FetchByReference(context.Background(), entity.ReferenceTypeOrder, "o1")
	require.NoError(t, err)
	require.Len(t, recorded, 3, "solo las líneas con efecto de stock dejan asiento")
	assert.Equal(t, entity.TransactionTypeIn, recorded[0].TransactionType)
	assert.Equal(t, entity.TransactionTypeInvoiceSale, recorded[1].TransactionType)
	assert.Equal(t, entity.TransactionTypeInvoiceReturn, recorded[2].TransactionType)
}

// Pedido sin agente: falla de configuración, se loguea y se salta entero.
func TestRecordOrderMovements_PedidoSinAgente(t *testing.T) {
	uc, _, txs := buildLedger(t)

	err := uc.RecordOrderMovements(context.Background(), &entity.Order{
		ID:    "o2",
		Lines: []entity.OrderLine{{OrderType: entity.OrderTypeDO, ItemCode: testItem, Quantity: qty(10)}},
	})
	require.NoError(t, err, "no se propaga como excepción al caller")
	assert.Zero(t, txs.Len(), "ningún asiento registrado")
}

// Reversar un pedido con líneas DO/INV planas restaura el disponible previo.
func TestReverseOrderMovements_RestauraDisponible(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	ctx := context.Background()

	before, err := uc.GetAvailable(ctx, testAgent, testItem)
	require.NoError(t, err)

	// Se coloca el pedido: las líneas entran a la fuente y se registran espejos.
	o := order("o3",
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: testItem, Quantity: qty(100)},
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(30)},
	)
	lines.AddOrder(o)
	require.NoError(t, uc.RecordOrderMovements(ctx, o))

	mid, err := uc.GetAvailable(ctx, testAgent, testItem)
	require.NoError(t, err)
	assert.True(t, mid.Equal(qty(70)), "pedido colocado: 100 - 30")

	require.NoError(t, uc.ReverseOrderMovements(ctx, o))

	after, err := uc.GetAvailable(ctx, testAgent, testItem)
	require.NoError(t, err)
	assert.True(t, after.Equal(before), "la reversa compensa el efecto completo del pedido")
}

// Sin guarda de idempotencia: reversar dos veces compensa dos veces.
func TestReverseOrderMovements_DobleReversaCompensaDoble(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	ctx := context.Background()

	o := order("o4",
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: testItem, Quantity: qty(30)},
	)
	lines.AddOrder(o)
	lines.AddLines(testAgent, entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: testItem, Quantity: qty(100)})
	require.NoError(t, uc.RecordOrderMovements(ctx, o))

	require.NoError(t, uc.ReverseOrderMovements(ctx, o))
	first, err := uc.GetAvailable(ctx, testAgent, testItem)
	require.NoError(t, err)
	assert.True(t, first.Equal(qty(100)), "70 + 30 de la reversa")

	require.NoError(t, uc.ReverseOrderMovements(ctx, o))
	second, err := uc.GetAvailable(ctx, testAgent, testItem)
	require.NoError(t, err)
	assert.True(t, second.Equal(qty(130)), "la segunda reversa vuelve a compensar")
}

// ── SummarizeAgent ────────────────────────────────────────────────────────────

// El resumen batch debe coincidir ítem a ítem con ComputeTotals individual.
func TestSummarizeAgent_CoincideConComputeTotals(t *testing.T) {
	uc, lines, _ := buildLedger(t)
	ctx := context.Background()

	lines.AddLines(testAgent,
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: "PRD-100", Quantity: qty(100)},
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: "PRD-100", Quantity: qty(30)},
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: "PRD-200", Quantity: qty(50)},
		entity.OrderLine{OrderType: entity.OrderTypeCN, ItemCode: "PRD-200", Quantity: qty(5), TradeReturnIsGood: false},
	)
	_, err := uc.RecordMovement(ctx, stock.MovementInput{
		AgentID: testAgent, ItemCode: "PRD-200", Quantity: qty(10),
		TransactionType: entity.TransactionTypeOut, ReferenceType: entity.ReferenceTypeManual,
	})
	require.NoError(t, err)

	summary, err := uc.SummarizeAgent(ctx, testAgent)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "PRD-100", summary[0].ItemCode, "orden determinista por código de ítem")
	assert.Equal(t, "PRD-200", summary[1].ItemCode)

	for _, item := range summary {
		individual, err := uc.ComputeTotals(ctx, testAgent, item.ItemCode)
		require.NoError(t, err)
		assert.True(t, item.Totals.StockIn.Equal(individual.StockIn), item.ItemCode)
		assert.True(t, item.Totals.StockOut.Equal(individual.StockOut), item.ItemCode)
		assert.True(t, item.Totals.ReturnGood.Equal(individual.ReturnGood), item.ItemCode)
		assert.True(t, item.Totals.ReturnBad.Equal(individual.ReturnBad), item.ItemCode)
		assert.True(t, item.Totals.Available().Equal(individual.Available()), item.ItemCode)
	}
}

func TestSummarizeAgent_AgenteVacio(t *testing.T) {
	uc, _, _ := buildLedger(t)
	_, err := uc.SummarizeAgent(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
