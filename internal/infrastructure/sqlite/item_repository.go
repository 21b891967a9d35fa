package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository (usable con DB o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar *sql.DB o *sql.Tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		item.ID, item.Name, item.Price.String(), item.CreatedAt.Unix(), item.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Retorna (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM items WHERE id = ?`
	var it entity.Item
	var price string
	var createdAt, updatedAt int64
	err := r.q.QueryRow(query, id).Scan(&it.ID, &it.Name, &price, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if it.Price, err = parseDecimal("items.price", price); err != nil {
		return nil, err
	}
	it.CreatedAt = unixTime(createdAt)
	it.UpdatedAt = unixTime(updatedAt)
	return &it, nil
}

// List devuelve todos los ítems.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM items ORDER BY name`
	rows, err := r.q.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		var price string
		var createdAt, updatedAt int64
		if err := rows.Scan(&it.ID, &it.Name, &price, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if it.Price, err = parseDecimal("items.price", price); err != nil {
			return nil, err
		}
		it.CreatedAt = unixTime(createdAt)
		it.UpdatedAt = unixTime(updatedAt)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un ítem.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `UPDATE items SET name = ?, price = ?, updated_at = ? WHERE id = ?`
	_, err := r.q.Exec(query, item.Name, item.Price.String(), item.UpdatedAt.Unix(), item.ID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID. Retorna domain.ErrConflict si alguna línea de factura lo referencia.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
