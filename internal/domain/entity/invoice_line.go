package entity

import "github.com/shopspring/decimal"

// InvoiceLine representa una línea de factura: ítem, cantidad y precio unitario
// congelado al momento de crear la línea. Pertenece exclusivamente a su factura;
// al borrar la factura o reemplazar sus líneas se eliminan primero las líneas.
type InvoiceLine struct {
	ID        string
	InvoiceID string
	ItemID    string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal // precio del ítem al crear la línea, no se recalcula
}

// Subtotal devuelve el aporte de la línea al total de la factura.
func (l InvoiceLine) Subtotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}
