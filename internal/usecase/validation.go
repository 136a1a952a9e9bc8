package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	domainErrors "github.com/polkiloo/grubdash/internal/domain/errors"
	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/domain/repository"
)

// OrderInput is an order request payload together with the order id taken from the path.
// Payload members hold the decoded JSON values as they were sent, so their types are
// judged by validators rather than by the decoder.
type OrderInput struct {
	OrderID      string
	ID           any
	DeliverTo    any
	MobileNumber any
	Status       any
	Dishes       any
}

// Validator inspects the input and returns nil to pass or an error to stop the chain.
type Validator func(ctx context.Context, in *OrderInput) error

// Chain runs validators in order and stops at the first failure.
type Chain []Validator

// Validate returns the error of the first failing validator.
func (c Chain) Validate(ctx context.Context, in *OrderInput) error {
	for _, v := range c {
		if err := v(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

const (
	msgDeliverToRequired    = "A 'deliverTo' property is required."
	msgMobileNumberRequired = "A 'mobileNumber' property is required."
	msgDishesRequired       = "A 'dishes' property is required."
	msgDishesNotArray       = "invalid dishes property: dishes property must be non-empty array"
	msgStatusRequired       = "A 'status' property is required."
	msgStatusInvalid        = "status property must be valid string: 'pending', 'preparing', 'out-for-delivery', or 'delivered'"
	msgNotDeletable         = "order cannot be deleted unless order status = 'pending'"
)

// HasDeliverTo requires a delivery address.
func HasDeliverTo(_ context.Context, in *OrderInput) error {
	if !truthy(in.DeliverTo) {
		return domainErrors.Validation(msgDeliverToRequired)
	}
	return nil
}

// HasMobileNumber requires a contact number.
func HasMobileNumber(_ context.Context, in *OrderInput) error {
	if !truthy(in.MobileNumber) {
		return domainErrors.Validation(msgMobileNumberRequired)
	}
	return nil
}

// HasDishes requires a truthy dishes value.
func HasDishes(_ context.Context, in *OrderInput) error {
	if !truthy(in.Dishes) {
		return domainErrors.Validation(msgDishesRequired)
	}
	return nil
}

// DishesIsArray requires dishes to be a non-empty list.
func DishesIsArray(_ context.Context, in *OrderInput) error {
	list, ok := in.Dishes.([]any)
	if !ok || len(list) == 0 {
		return domainErrors.Validation(msgDishesNotArray)
	}
	return nil
}

// DishesQuantityValid requires every dish to carry a positive integer quantity.
func DishesQuantityValid(_ context.Context, in *OrderInput) error {
	list, _ := in.Dishes.([]any)
	for _, entry := range list {
		dish, _ := entry.(map[string]any)
		if _, ok := quantityOf(dish["quantity"]); !ok {
			return domainErrors.Validation(fmt.Sprintf(
				"dish %s must have quantity property, quantity must be an integer, and it must not be equal to or less than 0",
				dishLabel(dish),
			))
		}
	}
	return nil
}

// HasStatus requires a status.
func HasStatus(_ context.Context, in *OrderInput) error {
	if !truthy(in.Status) {
		return domainErrors.Validation(msgStatusRequired)
	}
	return nil
}

// StatusIsValid requires the status to be one of the known lifecycle values.
func StatusIsValid(_ context.Context, in *OrderInput) error {
	status, _ := in.Status.(string)
	if _, ok := model.ParseOrderStatus(status); !ok {
		return domainErrors.Validation(msgStatusInvalid)
	}
	return nil
}

// IDMatchesPath rejects a payload id that differs from the path order id. A falsy id is
// ignored; a non-string id never matches.
func IDMatchesPath(_ context.Context, in *OrderInput) error {
	if !truthy(in.ID) {
		return nil
	}
	if id, ok := in.ID.(string); ok && id == in.OrderID {
		return nil
	}
	return domainErrors.Validation(fmt.Sprintf("id %s must match orderId provided in parameters", text(in.ID)))
}

// OrderExists requires the path order id to be present in the collection.
func OrderExists(orders repository.OrderRepository) Validator {
	return func(ctx context.Context, in *OrderInput) error {
		if _, err := orders.GetByID(ctx, in.OrderID); err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return orderNotFound(in.OrderID)
			}
			return err
		}
		return nil
	}
}

func orderNotFound(orderID string) error {
	return domainErrors.NotFound("Order id not found: " + orderID)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

func quantityOf(v any) (int, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// dishLabel renders a dish id the way clients wrote it; a missing id reads "undefined".
func dishLabel(dish map[string]any) string {
	id, ok := dish["id"]
	if !ok {
		return "undefined"
	}
	return text(id)
}

// text converts a decoded JSON value to a string the way JavaScript's String() does.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return x.String()
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			if item != nil {
				parts[i] = text(item)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return fmt.Sprint(x)
	}
}
