package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura.
// Total es siempre la suma de quantity * unit_price de sus líneas vigentes.
type Invoice struct {
	ID         string
	CustomerID string
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvoiceSummary factura con el nombre del cliente denormalizado (listados).
type InvoiceSummary struct {
	ID           string
	CustomerName string
	Total        decimal.Decimal
}
