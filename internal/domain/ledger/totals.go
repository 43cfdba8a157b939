// Package ledger implementa el pliegue de clasificación del libro de stock:
// a partir de líneas de pedido y asientos manuales deriva los totales por
// (agente, ítem). Es un servicio de dominio puro, sin efectos.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// StockTotals agregados derivados por (agente, ítem). No se materializan:
// se recalculan bajo demanda a partir de las dos fuentes.
//
// Invariante: Available = max(0, StockIn + ReturnGood - StockOut).
// ReturnBad no participa en ningún total: una devolución "mala" es stock
// físicamente devuelto pero excluido del disponible (solo se muestra).
type StockTotals struct {
	StockIn    decimal.Decimal
	StockOut   decimal.Decimal
	ReturnGood decimal.Decimal
	ReturnBad  decimal.Decimal
}

// Available disponible calculado, recortado a cero para presentación.
func (t StockTotals) Available() decimal.Decimal {
	avail := t.StockIn.Add(t.ReturnGood).Sub(t.StockOut)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}

// ApplyLine clasifica una línea de pedido y devuelve los totales acumulados:
//
//	DO                      → StockIn
//	INV sin trade return    → StockOut
//	INV trade return buena  → ReturnGood
//	INV trade return mala   → sin efecto (ni siquiera ReturnBad)
//	CN  devolución buena    → ReturnGood
//	CN  devolución mala     → ReturnBad (solo display)
func (t StockTotals) ApplyLine(line entity.OrderLine) StockTotals {
	qty := line.Quantity
	switch line.OrderType {
	case entity.OrderTypeDO:
		t.StockIn = t.StockIn.Add(qty)
	case entity.OrderTypeINV:
		switch {
		case !line.IsTradeReturn:
			t.StockOut = t.StockOut.Add(qty)
		case line.TradeReturnIsGood:
			t.ReturnGood = t.ReturnGood.Add(qty)
		}
		// trade return mala en INV: sin efecto
	case entity.OrderTypeCN:
		if line.TradeReturnIsGood {
			t.ReturnGood = t.ReturnGood.Add(qty)
		} else {
			t.ReturnBad = t.ReturnBad.Add(qty)
		}
	}
	return t
}

// ApplyTransaction acumula un asiento del log de stock. Los asientos con
// referencia "order" son espejos de auditoría de líneas que el escaneo de
// pedidos ya contó: se excluyen del pliegue para no duplicar. El resto
// (manuales y reversas) suma o resta según la dirección de su tipo.
func (t StockTotals) ApplyTransaction(tx entity.StockTransaction) StockTotals {
	if tx.ReferenceType == entity.ReferenceTypeOrder {
		return t
	}
	if entity.TransactionDirection(tx.TransactionType) > 0 {
		t.StockIn = t.StockIn.Add(tx.Quantity)
	} else {
		t.StockOut = t.StockOut.Add(tx.Quantity)
	}
	return t
}
