package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/ledger"
)

func qty(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func fold(lines ...entity.OrderLine) ledger.StockTotals {
	var t ledger.StockTotals
	for _, l := range lines {
		t = t.ApplyLine(l)
	}
	return t
}

// Solo líneas DO: todo va a StockIn y el disponible es igual a la entrada.
func TestApplyLine_SoloDO(t *testing.T) {
	totals := fold(
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: "A-1", Quantity: qty(40)},
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: "A-1", Quantity: qty(60)},
	)

	assert.True(t, totals.StockIn.Equal(qty(100)), "StockIn debe ser la suma de las DO")
	assert.True(t, totals.StockOut.IsZero())
	assert.True(t, totals.Available().Equal(qty(100)), "disponible = entradas")
}

// INV sin trade return contribuye íntegra a StockOut, nunca a devoluciones.
func TestApplyLine_INVVentaNormal(t *testing.T) {
	totals := fold(
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: "A-1", Quantity: qty(30)},
	)

	assert.True(t, totals.StockOut.Equal(qty(30)))
	assert.True(t, totals.ReturnGood.IsZero())
	assert.True(t, totals.ReturnBad.IsZero())
}

// Asimetría deliberada: trade return mala en INV no afecta ningún total
// (ni siquiera ReturnBad); en CN sí cuenta como ReturnBad.
func TestApplyLine_DevolucionMala_AsimetriaINVvsCN(t *testing.T) {
	inv := fold(entity.OrderLine{
		OrderType: entity.OrderTypeINV, ItemCode: "A-1", Quantity: qty(5),
		IsTradeReturn: true, TradeReturnIsGood: false,
	})
	assert.True(t, inv.StockIn.IsZero())
	assert.True(t, inv.StockOut.IsZero())
	assert.True(t, inv.ReturnGood.IsZero())
	assert.True(t, inv.ReturnBad.IsZero(), "en INV la devolución mala no suma ni a ReturnBad")

	cn := fold(entity.OrderLine{
		OrderType: entity.OrderTypeCN, ItemCode: "A-1", Quantity: qty(5),
		TradeReturnIsGood: false,
	})
	assert.True(t, cn.ReturnBad.Equal(qty(5)), "en CN la devolución mala cuenta como ReturnBad")
	assert.True(t, cn.Available().IsZero(), "ReturnBad no entra al disponible")
}

// El disponible nunca es negativo aunque las salidas superen a las entradas.
func TestAvailable_RecortadoACero(t *testing.T) {
	totals := fold(
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: "A-1", Quantity: qty(10)},
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: "A-1", Quantity: qty(25)},
	)
	assert.True(t, totals.Available().IsZero(), "disponible se recorta a cero")
	assert.True(t, totals.StockOut.Equal(qty(25)), "StockOut conserva el valor real")
}

// Escenario del flujo completo: DO 100, INV 30, CN buena 10, CN mala 5.
func TestEscenario_DO100_INV30_CN10Buena_CN5Mala(t *testing.T) {
	totals := fold(
		entity.OrderLine{OrderType: entity.OrderTypeDO, ItemCode: "A-1", Quantity: qty(100)},
		entity.OrderLine{OrderType: entity.OrderTypeINV, ItemCode: "A-1", Quantity: qty(30)},
	)
	assert.True(t, totals.StockIn.Equal(qty(100)))
	assert.True(t, totals.StockOut.Equal(qty(30)))
	assert.True(t, totals.Available().Equal(qty(70)), "100 - 30 = 70")

	totals = totals.ApplyLine(entity.OrderLine{
		OrderType: entity.OrderTypeCN, ItemCode: "A-1", Quantity: qty(10), TradeReturnIsGood: true,
	})
	assert.True(t, totals.Available().Equal(qty(80)), "la devolución buena reingresa al disponible")

	totals = totals.ApplyLine(entity.OrderLine{
		OrderType: entity.OrderTypeCN, ItemCode: "A-1", Quantity: qty(5), TradeReturnIsGood: false,
	})
	assert.True(t, totals.ReturnBad.Equal(qty(5)))
	assert.True(t, totals.Available().Equal(qty(80)), "la devolución mala no cambia el disponible")
}

// Asientos manuales in/out cuentan; espejos de pedidos (reference=order) no.
func TestApplyTransaction_EspejosDePedidoExcluidos(t *testing.T) {
	var totals ledger.StockTotals

	totals = totals.ApplyTransaction(entity.StockTransaction{
		TransactionType: entity.TransactionTypeIn,
		Quantity:        qty(50),
		ReferenceType:   entity.ReferenceTypeManual,
	})
	totals = totals.ApplyTransaction(entity.StockTransaction{
		TransactionType: entity.TransactionTypeOut,
		Quantity:        qty(20),
		ReferenceType:   entity.ReferenceTypeManual,
	})
	// Espejo de pedido: ya contado por el escaneo de líneas.
	totals = totals.ApplyTransaction(entity.StockTransaction{
		TransactionType: entity.TransactionTypeInvoiceSale,
		Quantity:        qty(999),
		ReferenceType:   entity.ReferenceTypeOrder,
	})

	assert.True(t, totals.StockIn.Equal(qty(50)))
	assert.True(t, totals.StockOut.Equal(qty(20)))
	assert.True(t, totals.Available().Equal(qty(30)))
}

// Las reversas (reference=order_reversal) sí cuentan, por dirección del tipo.
func TestApplyTransaction_ReversasCuentan(t *testing.T) {
	var totals ledger.StockTotals
	totals = totals.ApplyTransaction(entity.StockTransaction{
		TransactionType: entity.TransactionTypeIn,
		Quantity:        qty(30),
		ReferenceType:   entity.ReferenceTypeOrderReversal,
	})
	assert.True(t, totals.StockIn.Equal(qty(30)))
}

func TestTransactionDirection_YReversalType(t *testing.T) {
	assert.Equal(t, 1, entity.TransactionDirection(entity.TransactionTypeIn))
	assert.Equal(t, 1, entity.TransactionDirection(entity.TransactionTypeAdjustment))
	assert.Equal(t, 1, entity.TransactionDirection(entity.TransactionTypeInvoiceReturn))
	assert.Equal(t, -1, entity.TransactionDirection(entity.TransactionTypeOut))
	assert.Equal(t, -1, entity.TransactionDirection(entity.TransactionTypeInvoiceSale))

	assert.Equal(t, entity.TransactionTypeOut, entity.ReversalType(entity.TransactionTypeIn))
	assert.Equal(t, entity.TransactionTypeIn, entity.ReversalType(entity.TransactionTypeInvoiceSale))
	assert.Equal(t, entity.TransactionTypeOut, entity.ReversalType(entity.TransactionTypeInvoiceReturn))
}

// Idempotencia de lectura: plegar dos veces el mismo conjunto da lo mismo.
func TestFold_Determinista(t *testing.T) {
	lines := []entity.OrderLine{
		{OrderType: entity.OrderTypeDO, ItemCode: "A-1", Quantity: qty(100)},
		{OrderType: entity.OrderTypeINV, ItemCode: "A-1", Quantity: qty(30)},
		{OrderType: entity.OrderTypeCN, ItemCode: "A-1", Quantity: qty(10), TradeReturnIsGood: true},
	}
	a := fold(lines...)
	b := fold(lines...)
	assert.True(t, a.Available().Equal(b.Available()))
	assert.True(t, a.StockIn.Equal(b.StockIn))
	assert.True(t, a.StockOut.Equal(b.StockOut))
	assert.True(t, a.ReturnGood.Equal(b.ReturnGood))
	assert.True(t, a.ReturnBad.Equal(b.ReturnBad))
}
