package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentbinder/dashboard/internal/domain"
)

type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

type userPayload struct {
	ID             uint   `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	FirstNameSnake string `json:"first_name"`
	LastName       string `json:"lastName"`
	LastNameSnake  string `json:"last_name"`
	Role           string `json:"role"`
	CreatedAt      string `json:"createdAt"`
	CreatedAtSnake string `json:"created_at"`
	LastLogin      string `json:"lastLogin"`
	LastLoginSnake string `json:"last_login"`
}

func (p userPayload) toDomain() domain.User {
	return domain.User{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: firstNonEmpty(p.FirstName, p.FirstNameSnake),
		LastName:  firstNonEmpty(p.LastName, p.LastNameSnake),
		Role:      p.Role,
		CreatedAt: parseTime(firstNonEmpty(p.CreatedAt, p.CreatedAtSnake)),
		LastLogin: parseTimePtr(firstNonEmpty(p.LastLogin, p.LastLoginSnake)),
	}
}

func (uc *UserClient) GetAll(ctx context.Context) ([]domain.User, error) {
	resp, raw, err := uc.c.do(ctx, http.MethodGet, "/users", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("users.GetAll -> %w", err)
	}

	var envelope struct {
		Users []userPayload `json:"users"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(envelope.Users))
	for _, p := range envelope.Users {
		users = append(users, p.toDomain())
	}

	return users, nil
}

func (uc *UserClient) Delete(ctx context.Context, id uint) error {
	resp, raw, err := uc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
	if err != nil {
		return fmt.Errorf("users.Delete -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}
