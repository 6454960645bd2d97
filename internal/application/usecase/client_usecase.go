package usecase

import (
	"context"
	"strings"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. Rechazo rápido local de identificación duplicada;
// la autoridad final sigue siendo el backend.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	number := strings.TrimSpace(in.NumberIdentification)
	if number == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.NumberIdentification == number {
			return nil, domain.ErrDuplicate
		}
	}
	c := &entity.Client{
		NameLastname:         in.NameLastname,
		TypeIdentification:   in.TypeIdentification,
		NumberIdentification: number,
		Email:                in.Email,
		Phone:                in.Phone,
		Address:              in.Address,
		RequiresInvoice:      in.RequiresInvoice,
		IsActive:             true,
	}
	created, err := uc.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return toClientResponse(created), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for i := range list {
		items = append(items, *toClientResponse(&list[i]))
	}
	return items, nil
}

// Update actualiza campos del cliente. Tipo y número de identificación son inmutables.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.NameLastname != nil {
		c.NameLastname = *in.NameLastname
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.RequiresInvoice != nil {
		c.RequiresInvoice = *in.RequiresInvoice
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                   c.ID,
		NameLastname:         c.NameLastname,
		TypeIdentification:   c.TypeIdentification,
		NumberIdentification: c.NumberIdentification,
		Email:                c.Email,
		Phone:                c.Phone,
		Address:              c.Address,
		RequiresInvoice:      c.RequiresInvoice,
		IsActive:             c.IsActive,
	}
}
