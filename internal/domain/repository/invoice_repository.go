package repository

import "github.com/jhoicas/facturador-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateLine(line *entity.InvoiceLine) error
	GetByID(id string) (*entity.Invoice, error)
	GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceLine, error)
	// ListSummaries devuelve todas las facturas con el nombre del cliente denormalizado.
	ListSummaries() ([]*entity.InvoiceSummary, error)
	// Update persiste customer_id y total.
	Update(invoice *entity.Invoice) error
	// DeleteLinesByInvoiceID elimina todas las líneas de la factura (reemplazo de líneas y borrado).
	DeleteLinesByInvoiceID(invoiceID string) error
	Delete(id string) error
}
