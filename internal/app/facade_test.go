package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainErrors "github.com/polkiloo/grubdash/internal/domain/errors"
	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/storage/memory"
	testhelpers "github.com/polkiloo/grubdash/internal/test"
	"github.com/polkiloo/grubdash/internal/usecase"
)

func newFacade(t *testing.T, logs io.Writer, seed ...model.Order) *OrderFacade {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	store, err := memory.New(seed, logger)
	if err != nil {
		t.Fatalf("storage init failed: %v", err)
	}
	uc := usecase.NewOrderUseCase(store.Orders(), &testhelpers.SequenceGenerator{IDs: []string{"o-1", "o-2"}}, model.OrderStatusPending)
	return NewOrderFacade(uc, logger)
}

func validInput() usecase.OrderInput {
	return usecase.OrderInput{
		DeliverTo:    "A",
		MobileNumber: "555",
		Dishes:       []any{map[string]any{"id": "d1", "quantity": float64(2)}},
	}
}

func TestOrderFacadeLifecycle(t *testing.T) {
	var logs bytes.Buffer
	facade := newFacade(t, &logs)
	ctx := context.Background()

	created, err := facade.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID != "o-1" || created.Status != model.OrderStatusPending {
		t.Fatalf("unexpected created order %+v", created)
	}

	listed, err := facade.ListOrders(ctx)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v err=%v", listed, err)
	}

	read, err := facade.ReadOrder(ctx, "o-1")
	if err != nil || read.DeliverTo != "A" {
		t.Fatalf("unexpected read result %+v err=%v", read, err)
	}

	in := validInput()
	in.OrderID = "o-1"
	in.Status = "preparing"
	updated, err := facade.UpdateOrder(ctx, in)
	if err != nil || updated.Status != model.OrderStatusPreparing {
		t.Fatalf("unexpected update result %+v err=%v", updated, err)
	}

	if err := facade.DeleteOrder(ctx, "o-1"); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict deleting preparing order, got %v", err)
	}

	in.Status = "pending"
	if _, err := facade.UpdateOrder(ctx, in); err != nil {
		t.Fatalf("update back to pending failed: %v", err)
	}
	if err := facade.DeleteOrder(ctx, "o-1"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	for _, event := range []string{"order created", "order updated", "order deleted"} {
		if !strings.Contains(logs.String(), event) {
			t.Fatalf("expected %q to be logged, got %s", event, logs.String())
		}
	}
}

func TestOrderFacadeDoesNotLogFailures(t *testing.T) {
	var logs bytes.Buffer
	facade := newFacade(t, &logs)
	ctx := context.Background()

	if _, err := facade.CreateOrder(ctx, usecase.OrderInput{}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := facade.UpdateOrder(ctx, usecase.OrderInput{OrderID: "missing"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := facade.DeleteOrder(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no lifecycle logs, got %s", logs.String())
	}
}
