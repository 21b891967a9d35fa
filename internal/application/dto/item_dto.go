package dto

import "github.com/shopspring/decimal"

// CreateItemRequest body para POST /items.
type CreateItemRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// UpdateItemRequest body para PUT /items/:id. Campos omitidos quedan intactos.
type UpdateItemRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// ItemResponse ítem en respuestas.
type ItemResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
