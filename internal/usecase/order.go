package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/grubdash/internal/domain/errors"
	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/domain/repository"
	"github.com/polkiloo/grubdash/internal/pkg/ids"
)

// DefaultOrderStatus is assigned to new orders unless configured otherwise.
const DefaultOrderStatus = model.OrderStatusOutForDelivery

const maxIDAttempts = 5

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders        repository.OrderRepository
	ids           ids.Generator
	defaultStatus model.OrderStatus

	readChain   Chain
	createChain Chain
	updateChain Chain
	deleteChain Chain
}

// NewOrderUseCase constructs OrderUseCase. An empty defaultStatus falls back to DefaultOrderStatus.
func NewOrderUseCase(orders repository.OrderRepository, gen ids.Generator, defaultStatus model.OrderStatus) *OrderUseCase {
	if defaultStatus == "" {
		defaultStatus = DefaultOrderStatus
	}
	exists := OrderExists(orders)
	return &OrderUseCase{
		orders:        orders,
		ids:           gen,
		defaultStatus: defaultStatus,
		readChain:     Chain{exists},
		createChain:   Chain{HasDeliverTo, HasMobileNumber, HasDishes, DishesIsArray, DishesQuantityValid},
		updateChain: Chain{
			exists, IDMatchesPath, HasDeliverTo, HasMobileNumber, HasDishes,
			HasStatus, StatusIsValid, DishesIsArray, DishesQuantityValid,
		},
		deleteChain: Chain{exists},
	}
}

// DefaultStatus returns the status assigned to created orders.
func (u *OrderUseCase) DefaultStatus() model.OrderStatus {
	return u.defaultStatus
}

// List returns every order in storage order.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Get returns a single order.
func (u *OrderUseCase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	if err := u.readChain.Validate(ctx, &OrderInput{OrderID: orderID}); err != nil {
		return nil, err
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err, orderID)
	}
	return order, nil
}

// Create validates the payload and appends a new order with a fresh id.
func (u *OrderUseCase) Create(ctx context.Context, in OrderInput) (*model.Order, error) {
	if err := u.createChain.Validate(ctx, &in); err != nil {
		return nil, err
	}

	dishes, err := toDishes(in.Dishes)
	if err != nil {
		return nil, err
	}
	order := model.Order{
		DeliverTo:    text(in.DeliverTo),
		MobileNumber: text(in.MobileNumber),
		Status:       u.defaultStatus,
		Dishes:       dishes,
	}
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		order.ID = u.ids.NextID()
		if order.ID == "" {
			continue
		}
		created, err := u.orders.Create(ctx, order)
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return created, nil
	}
	return nil, fmt.Errorf("allocate order id: %w", domainErrors.ErrAlreadyExists)
}

// Update validates the payload and overwrites every mutable field of the order.
func (u *OrderUseCase) Update(ctx context.Context, in OrderInput) (*model.Order, error) {
	if err := u.updateChain.Validate(ctx, &in); err != nil {
		return nil, err
	}

	status, _ := model.ParseOrderStatus(text(in.Status))
	dishes, err := toDishes(in.Dishes)
	if err != nil {
		return nil, err
	}
	updated, err := u.orders.Update(ctx, in.OrderID, func(o *model.Order) error {
		o.DeliverTo = text(in.DeliverTo)
		o.MobileNumber = text(in.MobileNumber)
		o.Status = status
		o.Dishes = dishes
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err, in.OrderID)
	}
	return updated, nil
}

// Delete removes a pending order. Orders in any other status are kept.
func (u *OrderUseCase) Delete(ctx context.Context, orderID string) error {
	if err := u.deleteChain.Validate(ctx, &OrderInput{OrderID: orderID}); err != nil {
		return err
	}
	err := u.orders.Delete(ctx, orderID, func(o model.Order) error {
		if !o.Status.Deletable() {
			return domainErrors.Conflict(msgNotDeletable)
		}
		return nil
	})
	return mapNotFound(err, orderID)
}

// mapNotFound turns a bare repository miss into the client-facing not found error.
func mapNotFound(err error, orderID string) error {
	if err == domainErrors.ErrNotFound {
		return orderNotFound(orderID)
	}
	return err
}

// toDishes converts validated dish entries into domain dishes, keeping every member
// the client sent.
func toDishes(v any) ([]model.Dish, error) {
	list, _ := v.([]any)
	dishes := make([]model.Dish, 0, len(list))
	for _, entry := range list {
		raw, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("encode dish: %w", err)
		}
		var dish model.Dish
		if err := json.Unmarshal(raw, &dish); err != nil {
			return nil, fmt.Errorf("decode dish: %w", err)
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}
