// Package store holds sample domain classes for codec-generator. The
// generator emits their provider conversion functions into this package.
package store

import (
	"strings"
	"time"

	"codec-generator/rawconv"
)

// Product is an individual item available for sale. Prices are kept in cents.
type Product struct {
	ID          int64     `codec:"id"`
	SKU         string    `codec:"sku"`
	Name        string    `codec:"name"`
	Description *string   `codec:"description,nullable"`
	PriceCents  int64     `codec:"price_cents"`
	Inventory   int       `codec:"inventory_count,default=0"`
	Tags        []string  `codec:"tags"`
	CreatedAt   time.Time `codec:"created_at"`

	rank float64
}

// Rank is a search ranking score. It is not exposed to providers.
func (p *Product) Rank() float64 {
	return p.rank
}

// Address is a postal address embedded in customer documents.
type Address struct {
	Street     string
	City       string
	PostalCode string `codec:"postal_code"`
}

// Customer is the user placing orders.
type Customer struct {
	ID       int64               `codec:"id"`
	Email    string              `codec:"email"`
	FullName string              `codec:"full_name"`
	Address  *Address            `codec:"address,nullable"`
	Labels   map[string]struct{} `codec:"labels"`
	IsActive bool                `codec:"is_active,default=true"`
	Password string              `codec:"-"`
}

// DisplayName is exposed to providers as a computed, read-only field.
func (c *Customer) DisplayName() string {
	if c.FullName == "" {
		return c.Email
	}

	return strings.TrimSpace(c.FullName)
}

// Order is a transaction made by a customer. The customer document and the
// fraud score are resolved lazily by the provider.
type Order struct {
	ID        int64                     `codec:"id"`
	Customer  *rawconv.Future[Customer] `codec:"customer"`
	Status    OrderStatus               `codec:"status,default=StatusPending"`
	Items     []OrderItem               `codec:"items"`
	Score     *rawconv.Future[int]      `codec:"score"`
	Notes     *rawconv.Future[[]string] `codec:"notes,nullable"`
	Shipments []*rawconv.Future[string] `codec:"shipments"`
	OrderedAt time.Time                 `codec:"ordered_at"`
}

// TotalCents sums the order lines.
func (o *Order) TotalCents() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return total
}

// OrderItem is a product line within an order. It snapshots the price at
// the time of purchase.
type OrderItem struct {
	ProductID int64  `codec:"product_id"`
	Name      string `codec:"name"`
	Quantity  int    `codec:"quantity"`
	UnitPrice int64  `codec:"unit_price"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Audit mixes asynchronous wrapping in a way the generator rejects.
type Audit struct {
	Entries *rawconv.Future[[]*rawconv.Future[string]] `codec:"entries"`
}
