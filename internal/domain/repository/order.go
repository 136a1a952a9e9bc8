package repository

import (
	"context"

	"github.com/polkiloo/grubdash/internal/domain/model"
)

// OrderRepository describes operations on the ordered order collection.
// Returned orders are copies; mutations go through Update and Delete.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	// Update looks up the order and applies fn to it in a single step.
	Update(ctx context.Context, id string, fn func(*model.Order) error) (*model.Order, error)
	// Delete removes the order unless guard returns an error.
	Delete(ctx context.Context, id string, guard func(model.Order) error) error
}
