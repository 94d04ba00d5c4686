package domain

import (
	"context"

	"github.com/nordicmagic/backend/internal/entity"
	"github.com/nordicmagic/backend/internal/model"
)

type CatalogDomain interface {
	GetList(context.Context, *model.GetCatalogRequest) (*model.GetCatalogResponse, error)
}

type catalogDomain struct{}

func NewCatalogDomain() *catalogDomain {
	return &catalogDomain{}
}

func (d *catalogDomain) GetList(
	ctx context.Context, req *model.GetCatalogRequest,
) (*model.GetCatalogResponse, error) {
	items := make(model.GetCatalogResponse, 0, len(entity.CatalogItems))
	for _, item := range entity.CatalogItems {
		items = append(items, model.CatalogItem{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Type:  string(item.Type),
		})
	}

	return &items, nil
}
