package restapi

import (
	"context"
	"fmt"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de solo lectura de UserRepository.
type UserRepo struct {
	c *Client
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(c *Client) *UserRepo {
	return &UserRepo{c: c}
}

// GetByID devuelve nil, nil cuando el usuario no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var payload userPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payload).
		Get(fmt.Sprintf("/api/users/%d", id))
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("get usuario %d: %w", id, err)
	}
	u := payload.toEntity()
	return &u, nil
}

// List devuelve todos los usuarios.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	var payloads []userPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).Get("/api/users")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]entity.User, 0, len(payloads))
	for _, u := range payloads {
		out = append(out, u.toEntity())
	}
	return out, nil
}
