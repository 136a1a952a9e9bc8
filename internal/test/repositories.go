package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/grubdash/internal/domain/errors"
	"github.com/polkiloo/grubdash/internal/domain/model"
)

// OrderRepositoryStub keeps orders in a slice and lets tests inject failures.
type OrderRepositoryStub struct {
	Orders []model.Order

	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error

	CreateCalls int
	mu          sync.Mutex
}

func (s *OrderRepositoryStub) index(id string) int {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

// List returns stored orders or the configured error.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// GetByID fetches order by id or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if i := s.index(id); i >= 0 {
		o := s.Orders[i].Clone()
		return &o, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Create appends the order unless the id is taken.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CreateCalls++
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.index(order.ID) >= 0 {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.Orders = append(s.Orders, order.Clone())
	return &order, nil
}

// Update applies fn to the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, fn func(*model.Order) error) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	i := s.index(id)
	if i < 0 {
		return nil, domainErrors.ErrNotFound
	}
	if err := fn(&s.Orders[i]); err != nil {
		return nil, err
	}
	o := s.Orders[i].Clone()
	return &o, nil
}

// Delete removes the order unless guard objects.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string, guard func(model.Order) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	i := s.index(id)
	if i < 0 {
		return domainErrors.ErrNotFound
	}
	if guard != nil {
		if err := guard(s.Orders[i]); err != nil {
			return err
		}
	}
	s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
	return nil
}
