// Package ubl construye el XML UBL de las solicitudes de factura electrónica
// capturadas. Solo captura: el documento no se firma ni se envía.
package ubl

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// RequestXMLBuilder construye el XML de una solicitud de factura con etree.
type RequestXMLBuilder struct{}

// NewRequestXMLBuilder crea el builder.
func NewRequestXMLBuilder() *RequestXMLBuilder {
	return &RequestXMLBuilder{}
}

// BuildRequestXML genera el documento Invoice de la solicitud capturada.
func (b *RequestXMLBuilder) BuildRequestXML(req *entity.EInvoiceRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("ubl: solicitud nil")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", nsInvoice)
	root.CreateAttr("xmlns:cac", nsCac)
	root.CreateAttr("xmlns:cbc", nsCbc)

	root.CreateElement("cbc:UBLVersionID").SetText("2.1")
	root.CreateElement("cbc:ID").SetText(req.ID)
	root.CreateElement("cbc:IssueDate").SetText(req.CreatedAt.Format("2006-01-02"))
	root.CreateElement("cbc:IssueTime").SetText(req.CreatedAt.Format("15:04:05-07:00"))
	root.CreateElement("cbc:DocumentCurrencyCode").SetText("COP")

	orderRef := root.CreateElement("cac:OrderReference")
	orderRef.CreateElement("cbc:ID").SetText(req.OrderID)

	supplier := root.CreateElement("cac:AccountingSupplierParty")
	supplierParty := supplier.CreateElement("cac:Party")
	supplierParty.CreateElement("cbc:IndustryClassificationCode").SetText("distribution")
	supplierID := supplierParty.CreateElement("cac:PartyIdentification")
	supplierID.CreateElement("cbc:ID").SetText(req.AgentID)

	customer := root.CreateElement("cac:AccountingCustomerParty")
	customerParty := customer.CreateElement("cac:Party")
	name := customerParty.CreateElement("cac:PartyName")
	name.CreateElement("cbc:Name").SetText(req.CustomerName)
	if req.CustomerTaxID != "" {
		taxScheme := customerParty.CreateElement("cac:PartyTaxScheme")
		taxScheme.CreateElement("cbc:CompanyID").SetText(req.CustomerTaxID)
	}

	total := root.CreateElement("cac:LegalMonetaryTotal")
	payable := total.CreateElement("cbc:PayableAmount")
	payable.CreateAttr("currencyID", "COP")
	payable.SetText(req.TotalAmount.StringFixed(2))

	doc.Indent(2)
	xml, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("ubl: serializar documento: %w", err)
	}
	return xml, nil
}
