package handler

import (
	"time"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createOrderRequest struct {
	Customer string   `json:"customer" validate:"required"`
	Items    []string `json:"items"    validate:"required,min=1,dive,required"`
	Quantity int      `json:"quantity" validate:"required,gt=0"`
	Amount   float64  `json:"amount"   validate:"gte=0"`
}

type updateOrderRequest struct {
	Customer *string   `json:"customer,omitempty"`
	Items    *[]string `json:"items,omitempty"`
	Quantity *int      `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Amount   *float64  `json:"amount,omitempty"   validate:"omitempty,gte=0"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type orderResponse struct {
	ID          string     `json:"id"`
	Customer    string     `json:"customer"`
	Items       []string   `json:"items"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	Amount      float64    `json:"amount,omitempty"`
	Offline     bool       `json:"offline"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type listOrdersResponse struct {
	Data  []orderResponse `json:"data"`
	Total int             `json:"total"`
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		Customer:    o.Customer,
		Items:       o.Items,
		Quantity:    o.Quantity,
		Status:      string(o.Status),
		Amount:      o.Amount,
		Offline:     o.Offline(),
		CreatedAt:   o.CreatedAt,
		CompletedAt: o.CompletedAt,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
