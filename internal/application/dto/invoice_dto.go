package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea solicitada: ítem y cantidad.
type InvoiceItemRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateInvoiceRequest body para POST /invoices.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	Items      []InvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest body para PUT /invoices/:id.
// CustomerID nil = no reasignar; Items nil = dejar líneas y total intactos.
type UpdateInvoiceRequest struct {
	CustomerID *string               `json:"customer_id"`
	Items      *[]InvoiceItemRequest `json:"items"`
}

// CreateInvoiceResponse respuesta de creación de factura.
// Warnings lista las líneas omitidas por referenciar ítems inexistentes.
type CreateInvoiceResponse struct {
	ID       string          `json:"id"`
	Total    decimal.Decimal `json:"total"`
	Warnings []string        `json:"warnings,omitempty"`
}

// UpdateInvoiceResponse acuse de actualización de factura.
type UpdateInvoiceResponse struct {
	Message  string   `json:"message"`
	ID       string   `json:"id"`
	Warnings []string `json:"warnings,omitempty"`
}

// InvoiceSummaryResponse factura en el listado (cliente denormalizado).
type InvoiceSummaryResponse struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
}

// InvoiceLineResponse línea de factura en la respuesta de detalle.
type InvoiceLineResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// InvoiceResponse factura con detalle para GET /invoices/:id.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name"`
	Total        decimal.Decimal       `json:"total"`
	Lines        []InvoiceLineResponse `json:"lines"`
}
