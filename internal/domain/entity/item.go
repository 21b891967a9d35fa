package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un concepto facturable con precio unitario.
// Price nunca es negativo; el precio vigente se congela en la línea al facturar.
type Item struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
