package model

import "github.com/nordicmagic/backend/internal/entity"

type GetCatalogRequest struct{}

// GetCatalogResponse marshals as a bare JSON array.
type GetCatalogResponse []CatalogItem

type CatalogItem struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Price entity.Price `json:"price"`
	Type  string       `json:"type"`
}
