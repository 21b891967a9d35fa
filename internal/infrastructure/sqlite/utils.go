package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// isUniqueViolation verifica si un error es una violación de constraint UNIQUE.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isFKViolation verifica si un error es una violación de foreign key
// (ej. borrar un cliente o ítem referenciado por facturas).
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// parseDecimal deserializa un decimal guardado como TEXT.
func parseDecimal(column, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("columna %s: decimal inválido %q: %w", column, s, err)
	}
	return d, nil
}

// unixTime convierte el epoch guardado en la DB a time.Time.
func unixTime(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}
