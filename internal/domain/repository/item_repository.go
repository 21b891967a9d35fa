package repository

import "github.com/jhoicas/facturador-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
}
