package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con DB o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar *sql.DB o *sql.Tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		customer.ID, customer.Name, customer.Email, customer.Phone,
		customer.CreatedAt.Unix(), customer.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Retorna (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT id, name, email, phone, created_at, updated_at FROM customers WHERE id = ?`
	var c entity.Customer
	var createdAt, updatedAt int64
	err := r.q.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.CreatedAt = unixTime(createdAt)
	c.UpdatedAt = unixTime(updatedAt)
	return &c, nil
}

// List devuelve todos los clientes.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `SELECT id, name, email, phone, created_at, updated_at FROM customers ORDER BY name`
	rows, err := r.q.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var createdAt, updatedAt int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.CreatedAt = unixTime(createdAt)
		c.UpdatedAt = unixTime(updatedAt)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `UPDATE customers SET name = ?, email = ?, phone = ?, updated_at = ? WHERE id = ?`
	_, err := r.q.Exec(query,
		customer.Name, customer.Email, customer.Phone, customer.UpdatedAt.Unix(), customer.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Retorna domain.ErrConflict si alguna factura lo referencia.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
