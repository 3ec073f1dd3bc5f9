package model

import "math"

// CartLineItem is one committed product+quantity+flavor entry. Name and unit
// price are snapshots taken at add time so later catalog edits cannot alter
// lines already in a cart. JSON field names follow the submission wire
// contract.
type CartLineItem struct {
	CartItemID  int     `json:"cartItemId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Flavor      string  `json:"flavor"`
	UnitPrice   float64 `json:"price"`
}

// LineTotal returns quantity times unit price for this line.
func (li CartLineItem) LineTotal() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// Customer holds the contact fields collected on the order form. PickupDate
// stays in its wire form (YYYY-MM-DD).
type Customer struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PickupDate string `json:"pickupDate"`
}

// OrderSubmission is the full order payload sent to the backend.
type OrderSubmission struct {
	Customer            Customer       `json:"customer"`
	Items               []CartLineItem `json:"items"`
	SpecialInstructions string         `json:"specialInstructions"`
	TotalItems          int            `json:"totalItems"`
}

// ComputedTotalItems sums line quantities. It must equal TotalItems on a
// well-formed submission.
func (o *OrderSubmission) ComputedTotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// TotalAmount sums line totals. Accumulation happens in integer cents so
// repeated float additions cannot drift.
func (o *OrderSubmission) TotalAmount() float64 {
	var cents int64
	for _, item := range o.Items {
		cents += int64(math.Round(item.LineTotal() * 100))
	}
	return float64(cents) / 100
}

// SubmitResponse is the wire response for order submission, success or not.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
