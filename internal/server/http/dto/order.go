package dto

import (
	"bytes"
	"encoding/json"

	"github.com/polkiloo/grubdash/internal/domain/model"
)

// OrderRequest is the {"data": {...}} envelope of create and update requests.
type OrderRequest struct {
	Data OrderData `json:"data"`
}

// UnmarshalJSON reads the envelope from any JSON value. A body that is not an
// object, or a missing data member, leaves the request empty.
func (r *OrderRequest) UnmarshalJSON(b []byte) error {
	*r = OrderRequest{}
	if !isObject(b) {
		return nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}
	raw, ok := envelope["data"]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, &r.Data)
}

// OrderData carries the order fields a client may send. Every member stays
// untyped so that validators judge it after decoding.
type OrderData struct {
	ID           any `json:"id"`
	DeliverTo    any `json:"deliverTo"`
	MobileNumber any `json:"mobileNumber"`
	Status       any `json:"status"`
	Dishes       any `json:"dishes"`
}

// UnmarshalJSON takes members from a JSON object and ignores every other value.
func (d *OrderData) UnmarshalJSON(b []byte) error {
	*d = OrderData{}
	if !isObject(b) {
		return nil
	}
	var members map[string]any
	if err := json.Unmarshal(b, &members); err != nil {
		return err
	}
	d.ID = members["id"]
	d.DeliverTo = members["deliverTo"]
	d.MobileNumber = members["mobileNumber"]
	d.Status = members["status"]
	d.Dishes = members["dishes"]
	return nil
}

func isObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

// OrderResponse wraps a single order.
type OrderResponse struct {
	Data model.Order `json:"data"`
}

// OrderListResponse wraps the order collection.
type OrderListResponse struct {
	Data []model.Order `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
