package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	domainErrors "github.com/polkiloo/grubdash/internal/domain/errors"
	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/domain/repository"
)

// Storage keeps orders in an ordered in-memory collection.
type Storage struct {
	mu     sync.RWMutex
	orders []model.Order
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

var (
	_ repository.Factory         = (*Storage)(nil)
	_ repository.OrderRepository = (*orderRepository)(nil)
)

// New creates storage holding copies of the seed orders.
func New(seed []model.Order, logger *slog.Logger) (*Storage, error) {
	s := &Storage{logger: logger, orders: make([]model.Order, 0, len(seed))}
	seen := make(map[string]struct{}, len(seed))
	for _, o := range seed {
		if o.ID == "" {
			return nil, fmt.Errorf("seed order without id")
		}
		if _, ok := seen[o.ID]; ok {
			return nil, fmt.Errorf("duplicate seed order id %q: %w", o.ID, domainErrors.ErrAlreadyExists)
		}
		seen[o.ID] = struct{}{}
		s.orders = append(s.orders, o.Clone())
	}
	return s, nil
}

// LoadSeed reads orders from a JSON file holding either {"data": [...]} or a bare array.
func LoadSeed(path string) ([]model.Order, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var wrapped struct {
		Data []model.Order `json:"data"`
	}
	if err := json.Unmarshal(content, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	var orders []model.Order
	if err := json.Unmarshal(content, &orders); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return orders, nil
}

// Orders returns the order repository backed by this storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Len reports the number of stored orders.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

// indexOf must be called with the lock held.
func (s *Storage) indexOf(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	result := make([]model.Order, 0, len(r.storage.orders))
	for _, o := range r.storage.orders {
		result = append(result, o.Clone())
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	i := r.storage.indexOf(id)
	if i < 0 {
		return nil, domainErrors.ErrNotFound
	}
	o := r.storage.orders[i].Clone()
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	if r.storage.indexOf(order.ID) >= 0 {
		return nil, domainErrors.ErrAlreadyExists
	}
	r.storage.orders = append(r.storage.orders, order.Clone())
	created := order.Clone()
	return &created, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, fn func(*model.Order) error) (*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	i := r.storage.indexOf(id)
	if i < 0 {
		return nil, domainErrors.ErrNotFound
	}

	// fn works on a copy so a failing callback leaves the stored order intact.
	working := r.storage.orders[i].Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = id
	r.storage.orders[i] = working

	updated := working.Clone()
	return &updated, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string, guard func(model.Order) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	i := r.storage.indexOf(id)
	if i < 0 {
		return domainErrors.ErrNotFound
	}
	if guard != nil {
		if err := guard(r.storage.orders[i].Clone()); err != nil {
			return err
		}
	}
	r.storage.orders = append(r.storage.orders[:i], r.storage.orders[i+1:]...)
	return nil
}
