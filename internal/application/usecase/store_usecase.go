package usecase

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una tienda nueva.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	s := &entity.Store{
		Name:     in.Name,
		Address:  in.Address,
		Phone:    in.Phone,
		Type:     in.Type,
		IsActive: true,
	}
	created, err := uc.repo.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	return toStoreResponse(created), nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id int64) (*dto.StoreResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(s), nil
}

// List lista todas las tiendas.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for i := range list {
		items = append(items, *toStoreResponse(&list[i]))
	}
	return items, nil
}

// Update actualiza campos de la tienda.
func (uc *StoreUseCase) Update(ctx context.Context, id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Type != nil {
		s.Type = *in.Type
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toStoreResponse(s), nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:       s.ID,
		Name:     s.Name,
		Address:  s.Address,
		Phone:    s.Phone,
		Type:     s.Type,
		IsActive: s.IsActive,
	}
}
