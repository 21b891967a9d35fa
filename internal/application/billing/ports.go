package billing

import (
	"context"

	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repos atados a ella.
// Las secuencias borrar-líneas/insertar-líneas/actualizar-total deben ser atómicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		itemRepo repository.ItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoiceLineForPDF línea enriquecida con el nombre del ítem para el render.
type InvoiceLineForPDF struct {
	entity.InvoiceLine
	ItemName string
}

// InvoicePDFGenerator puerto del renderer de documentos. La implementación
// trabaja enteramente en memoria: nada de archivos temporales.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		customer *entity.Customer,
		lines []InvoiceLineForPDF,
	) ([]byte, error)
}
