package report

import (
	"context"

	"github.com/jhoicas/Distribuidora-api/internal/application/stock"
)

// AgentSummarizer lo que el reporte necesita del motor de stock.
type AgentSummarizer interface {
	SummarizeAgent(ctx context.Context, agentID string) ([]stock.ItemTotals, error)
}

// StockReportPDFGenerator genera el PDF del resumen de stock de un agente.
type StockReportPDFGenerator interface {
	GenerateStockSummaryPDF(ctx context.Context, agentID string, items []stock.ItemTotals) ([]byte, error)
}
