package usecase

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
	"github.com/Jwerthe/chocorocks-inventory/pkg/money"
)

// ProductUseCase casos de uso CRUD para productos. El stock global no se
// edita aquí: lo mueven los movimientos y la creación de lotes.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo con stock global en cero.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.ProductionCost.IsNegative() || in.WholesalePrice.IsNegative() || in.RetailPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Product{
		Name:           in.Name,
		Flavor:         in.Flavor,
		Size:           in.Size,
		CategoryID:     in.CategoryID,
		ProductionCost: in.ProductionCost,
		WholesalePrice: in.WholesalePrice,
		RetailPrice:    in.RetailPrice,
		Barcode:        in.Barcode,
		Description:    in.Description,
		IsActive:       true,
	}
	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return toProductResponse(created), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, *toProductResponse(&list[i]))
	}
	return items, nil
}

// Update actualiza campos del producto. No toca el stock global.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Flavor != nil {
		p.Flavor = *in.Flavor
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.ProductionCost != nil {
		if in.ProductionCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.ProductionCost = *in.ProductionCost
	}
	if in.WholesalePrice != nil {
		if in.WholesalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.WholesalePrice = *in.WholesalePrice
	}
	if in.RetailPrice != nil {
		if in.RetailPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.RetailPrice = *in.RetailPrice
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Flavor:             p.Flavor,
		Size:               p.Size,
		CategoryID:         p.CategoryID,
		ProductionCost:     p.ProductionCost,
		WholesalePrice:     p.WholesalePrice,
		RetailPrice:        p.RetailPrice,
		RetailPriceDisplay: money.FormatUSD(p.RetailPrice),
		CurrentGlobalStock: p.CurrentGlobalStock,
		Barcode:            p.Barcode,
		Description:        p.Description,
		IsActive:           p.IsActive,
	}
}
