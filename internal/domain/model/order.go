package model

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

func init() {
	// Dish prices travel as plain JSON numbers, the way clients send them.
	decimal.MarshalJSONWithoutQuotes = true
}

// OrderStatus describes delivery lifecycle.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// OrderStatuses lists every known status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// ParseOrderStatus reports whether value is exactly one of the known statuses.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	for _, s := range OrderStatuses {
		if string(s) == value {
			return s, true
		}
	}
	return "", false
}

// Deletable reports whether an order in this status may be removed.
func (s OrderStatus) Deletable() bool {
	return s == OrderStatusPending
}

// Dish is a dish reference inside an order. A known field is typed only
// when the client sent a non-empty value of its JSON type. Every other member,
// including a known field of another type, is kept in Extra and written back
// as it was received.
type Dish struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       *decimal.Decimal
	Quantity    int
	Extra       map[string]json.RawMessage
}

type dishFields struct {
	ID          string           `json:"id,omitempty"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Quantity    int              `json:"quantity,omitempty"`
}

// MarshalJSON writes the typed fields first and the extra members after them in key order.
func (d Dish) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(dishFields{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Price:       d.Price,
		Quantity:    d.Quantity,
	})
	if err != nil || len(d.Extra) == 0 {
		return known, err
	}

	keys := make([]string, 0, len(d.Extra))
	for key := range d.Extra {
		if !d.typed(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(known[:len(known)-1])
	for _, key := range keys {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(d.Extra[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON splits a dish object into typed fields and extra members.
func (d *Dish) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	*d = Dish{}
	for key, raw := range members {
		if d.assign(key, raw) {
			continue
		}
		if d.Extra == nil {
			d.Extra = make(map[string]json.RawMessage)
		}
		d.Extra[key] = append(json.RawMessage(nil), raw...)
	}
	return nil
}

func (d Dish) typed(key string) bool {
	switch key {
	case "id":
		return d.ID != ""
	case "name":
		return d.Name != ""
	case "description":
		return d.Description != ""
	case "image_url":
		return d.ImageURL != ""
	case "price":
		return d.Price != nil
	case "quantity":
		return d.Quantity != 0
	}
	return false
}

func (d *Dish) assign(key string, raw json.RawMessage) bool {
	switch key {
	case "id":
		return assignString(&d.ID, raw)
	case "name":
		return assignString(&d.Name, raw)
	case "description":
		return assignString(&d.Description, raw)
	case "image_url":
		return assignString(&d.ImageURL, raw)
	case "price":
		n, ok := number(raw)
		if !ok {
			return false
		}
		price, err := decimal.NewFromString(n.String())
		if err != nil {
			return false
		}
		d.Price = &price
		return true
	case "quantity":
		n, ok := number(raw)
		if !ok {
			return false
		}
		f, err := n.Float64()
		if err != nil || f == 0 || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return false
		}
		d.Quantity = int(f)
		return true
	}
	return false
}

func assignString(dst *string, raw json.RawMessage) bool {
	var s string
	if len(raw) == 0 || raw[0] != '"' || json.Unmarshal(raw, &s) != nil || s == "" {
		return false
	}
	*dst = s
	return true
}

func number(raw json.RawMessage) (json.Number, bool) {
	var n json.Number
	if len(raw) == 0 || raw[0] == '"' || json.Unmarshal(raw, &n) != nil || n == "" {
		return "", false
	}
	return n, true
}

// Order describes a customer purchase awaiting or in delivery.
type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       OrderStatus `json:"status"`
	Dishes       []Dish      `json:"dishes"`
}

func (d Dish) clone() Dish {
	c := d
	if d.Price != nil {
		price := *d.Price
		c.Price = &price
	}
	if d.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(d.Extra))
		for key, raw := range d.Extra {
			c.Extra[key] = append(json.RawMessage(nil), raw...)
		}
	}
	return c
}

// Clone returns a copy that shares no dishes with o.
func (o Order) Clone() Order {
	c := o
	if o.Dishes != nil {
		c.Dishes = make([]Dish, len(o.Dishes))
		for i, dish := range o.Dishes {
			c.Dishes[i] = dish.clone()
		}
	}
	return c
}
