package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Distribuidora-api/internal/domain"
)

// StockReportUseCase arma el reporte de inventario por agente: resume el
// libro de stock y lo entrega como PDF descargable.
type StockReportUseCase struct {
	summarizer AgentSummarizer
	generator  StockReportPDFGenerator
}

// NewStockReportUseCase construye el caso de uso inyectando sus dependencias.
func NewStockReportUseCase(summarizer AgentSummarizer, generator StockReportPDFGenerator) *StockReportUseCase {
	return &StockReportUseCase{summarizer: summarizer, generator: generator}
}

// DownloadStockSummaryPDF resume el stock del agente y genera el PDF.
// Retorna (pdfBytes, filename, nil) o el error del motor/generador.
func (uc *StockReportUseCase) DownloadStockSummaryPDF(ctx context.Context, agentID string) ([]byte, string, error) {
	if agentID == "" {
		return nil, "", domain.ErrInvalidInput
	}
	items, err := uc.summarizer.SummarizeAgent(ctx, agentID)
	if err != nil {
		return nil, "", fmt.Errorf("resumir stock del agente: %w", err)
	}
	pdf, err := uc.generator.GenerateStockSummaryPDF(ctx, agentID, items)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de stock: %w", err)
	}
	filename := fmt.Sprintf("stock_%s_%s.pdf", agentID, time.Now().Format("20060102"))
	return pdf, filename, nil
}
