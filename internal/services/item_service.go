package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Vincent-WangCH/Project-list-backend/internal/domain"
	"github.com/Vincent-WangCH/Project-list-backend/internal/repos"
)

type ItemService struct {
	Items *repos.ItemRepo
}

func NewItemService(items *repos.ItemRepo) *ItemService {
	return &ItemService{Items: items}
}

func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.Items.List(ctx)
}

func (s *ItemService) Get(ctx context.Context, id string) (domain.Item, error) {
	return s.Items.Get(ctx, id)
}

// Create builds a full row from the patch, substituting schema defaults for
// anything not supplied. createdAt == updatedAt at the moment of creation.
func (s *ItemService) Create(ctx context.Context, p domain.ItemPatch) (domain.Item, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	it := domain.Item{
		ID:          uuid.NewString(),
		Name:        domain.DefaultName,
		Description: domain.DefaultDescription,
		Quantity:    domain.DefaultQuantity,
		UnitPrice:   domain.DefaultUnitPrice,
		Category:    domain.DefaultCategory,
		Date:        now,
		OwnerID:     domain.DefaultOwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		it.UnitPrice = *p.UnitPrice
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Date != nil {
		it.Date = *p.Date
	}
	if p.OwnerID != nil {
		it.OwnerID = *p.OwnerID
	}
	return s.Items.Insert(ctx, it)
}

func (s *ItemService) Update(ctx context.Context, id string, p domain.ItemPatch) (domain.Item, error) {
	return s.Items.Update(ctx, id, p)
}

func (s *ItemService) Delete(ctx context.Context, id string) (domain.Item, error) {
	return s.Items.Delete(ctx, id)
}
