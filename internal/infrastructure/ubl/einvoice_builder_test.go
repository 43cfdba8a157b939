package ubl_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/infrastructure/ubl"
)

func TestBuildRequestXML_IncluyeCamposDeLaSolicitud(t *testing.T) {
	builder := ubl.NewRequestXMLBuilder()
	req := &entity.EInvoiceRequest{
		ID:            "REQ-001",
		OrderID:       "ORD-123",
		AgentID:       "AGT-042",
		CustomerName:  "Comercial La Esquina",
		CustomerTaxID: "900123456-7",
		TotalAmount:   decimal.NewFromFloat(150000.50),
		CreatedAt:     time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	xml, err := builder.BuildRequestXML(req)
	require.NoError(t, err)

	assert.Contains(t, xml, "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2")
	assert.Contains(t, xml, "<cbc:ID>REQ-001</cbc:ID>")
	assert.Contains(t, xml, "<cbc:ID>ORD-123</cbc:ID>")
	assert.Contains(t, xml, "AGT-042")
	assert.Contains(t, xml, "Comercial La Esquina")
	assert.Contains(t, xml, "900123456-7")
	assert.Contains(t, xml, "150000.50")
	assert.Contains(t, xml, "<cbc:IssueDate>2026-03-15</cbc:IssueDate>")
}

func TestBuildRequestXML_SinTaxID_OmiteTaxScheme(t *testing.T) {
	builder := ubl.NewRequestXMLBuilder()
	req := &entity.EInvoiceRequest{
		ID:           "REQ-002",
		OrderID:      "ORD-124",
		AgentID:      "AGT-042",
		CustomerName: "Cliente Ocasional",
		TotalAmount:  decimal.NewFromInt(5000),
		CreatedAt:    time.Now(),
	}

	xml, err := builder.BuildRequestXML(req)
	require.NoError(t, err)
	assert.NotContains(t, xml, "PartyTaxScheme")
}

func TestBuildRequestXML_SolicitudNil_RetornaError(t *testing.T) {
	builder := ubl.NewRequestXMLBuilder()
	_, err := builder.BuildRequestXML(nil)
	assert.Error(t, err)
}
