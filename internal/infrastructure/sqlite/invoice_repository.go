package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con DB o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar *sql.DB o *sql.Tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		invoice.ID, invoice.CustomerID, invoice.Total.String(),
		invoice.CreatedAt.Unix(), invoice.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de factura.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	query := `
		INSERT INTO invoice_lines (id, invoice_id, item_id, quantity, unit_price)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		line.ID, line.InvoiceID, line.ItemID, line.Quantity.String(), line.UnitPrice.String(),
	)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Retorna (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT id, customer_id, total, created_at, updated_at FROM invoices WHERE id = ?`
	var inv entity.Invoice
	var total string
	var createdAt, updatedAt int64
	err := r.q.QueryRow(query, id).Scan(&inv.ID, &inv.CustomerID, &total, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv.Total, err = parseDecimal("invoices.total", total); err != nil {
		return nil, err
	}
	inv.CreatedAt = unixTime(createdAt)
	inv.UpdatedAt = unixTime(updatedAt)
	return &inv, nil
}

// GetLinesByInvoiceID devuelve las líneas de una factura.
func (r *InvoiceRepo) GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, item_id, quantity, unit_price
		FROM invoice_lines WHERE invoice_id = ?`
	rows, err := r.q.Query(query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		var quantity, unitPrice string
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ItemID, &quantity, &unitPrice); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		if l.Quantity, err = parseDecimal("invoice_lines.quantity", quantity); err != nil {
			return nil, err
		}
		if l.UnitPrice, err = parseDecimal("invoice_lines.unit_price", unitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// ListSummaries devuelve todas las facturas con el nombre del cliente (JOIN denormalizado).
func (r *InvoiceRepo) ListSummaries() ([]*entity.InvoiceSummary, error) {
	query := `
		SELECT i.id, c.name, i.total
		FROM invoices i JOIN customers c ON c.id = i.customer_id
		ORDER BY i.created_at`
	rows, err := r.q.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceSummary
	for rows.Next() {
		var s entity.InvoiceSummary
		var total string
		if err := rows.Scan(&s.ID, &s.CustomerName, &total); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		if s.Total, err = parseDecimal("invoices.total", total); err != nil {
			return nil, err
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update persiste customer_id y total de la factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `UPDATE invoices SET customer_id = ?, total = ?, updated_at = ? WHERE id = ?`
	_, err := r.q.Exec(query,
		invoice.CustomerID, invoice.Total.String(), invoice.UpdatedAt.Unix(), invoice.ID,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// DeleteLinesByInvoiceID elimina todas las líneas de la factura.
func (r *InvoiceRepo) DeleteLinesByInvoiceID(invoiceID string) error {
	if _, err := r.q.Exec(`DELETE FROM invoice_lines WHERE invoice_id = ?`, invoiceID); err != nil {
		return fmt.Errorf("delete invoice lines: %w", err)
	}
	return nil
}

// Delete elimina la factura. Las líneas deben borrarse antes (se hace explícito
// en el caso de uso, dentro de la misma transacción).
func (r *InvoiceRepo) Delete(id string) error {
	if _, err := r.q.Exec(`DELETE FROM invoices WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
