package session

import (
	"fmt"
	"time"

	"github.com/mitchstreats/treats-backend/internal/app/model"
	"github.com/mitchstreats/treats-backend/internal/catalog"
	"github.com/mitchstreats/treats-backend/pkg/logger"
)

// Rules holds the date-driven ordering rules injected at startup.
type Rules struct {
	// SpecialDate is the pickup date that activates per-product special
	// minimums. Zero means no special date is configured.
	SpecialDate time.Time
	// EarliestPickup is the first allowed pickup date. Zero disables the
	// check.
	EarliestPickup time.Time
}

// Session is one customer's in-progress order: the cart, the per-product
// selection states and the pickup-date context. A session has a single writer
// and is mutated only by its own command handlers, so it carries no locks.
type Session struct {
	catalog    *catalog.Catalog
	rules      Rules
	cart       []model.CartLineItem
	lastItemID int
	selections map[string]*SelectionState
	pickupDate time.Time
	special    bool
}

// New creates an empty ordering session over the given catalog.
func New(cat *catalog.Catalog, rules Rules) *Session {
	return &Session{
		catalog:    cat,
		rules:      rules,
		selections: make(map[string]*SelectionState),
	}
}

// Catalog returns the catalog this session orders from.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Items returns the cart lines in insertion order.
func (s *Session) Items() []model.CartLineItem {
	return s.cart
}

// PickupDate returns the currently selected pickup date, zero if none.
func (s *Session) PickupDate() time.Time {
	return s.pickupDate
}

// SpecialDateActive reports whether the selected pickup date is the
// configured special date.
func (s *Session) SpecialDateActive() bool {
	return s.special
}

// AddItem validates and appends a cart line for the product. The line
// snapshots the product's name and price; the selection state for the product
// is reset so it can be added again with a different flavor or quantity.
func (s *Session) AddItem(productID string, quantity int, flavor string) (model.CartLineItem, error) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return model.CartLineItem{}, err
	}

	if quantity == 0 {
		return model.CartLineItem{}, &ValidationError{Reason: "no quantity selected"}
	}
	min := product.EffectiveMinQuantity(s.special)
	if quantity < min {
		return model.CartLineItem{}, &ValidationError{
			Reason: fmt.Sprintf("Minimum order for %s is %d", product.Name, min),
		}
	}
	if product.HasFlavorOptions && flavor == "" {
		return model.CartLineItem{}, &ValidationError{Reason: "Please select a flavor"}
	}

	s.lastItemID++
	line := model.CartLineItem{
		CartItemID:  s.lastItemID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Flavor:      flavor,
		UnitPrice:   product.Price,
	}
	s.cart = append(s.cart, line)
	s.resetSelection(productID)

	logger.Info("Cart line added", map[string]interface{}{
		"cart_item_id": line.CartItemID,
		"product_id":   line.ProductID,
		"quantity":     line.Quantity,
	})
	return line, nil
}

// RemoveItem removes the line with the given id. Removing an id that is not
// in the cart is a no-op.
func (s *Session) RemoveItem(cartItemID int) {
	for i, line := range s.cart {
		if line.CartItemID == cartItemID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			logger.Debug("Cart line removed", map[string]interface{}{
				"cart_item_id": cartItemID,
			})
			return
		}
	}
}

// Clear empties the cart, resets the id counter and resets every product's
// selection state.
func (s *Session) Clear() {
	s.cart = nil
	s.lastItemID = 0
	s.selections = make(map[string]*SelectionState)
}

// CompleteOrder resets the session after a confirmed submission: cart, id
// counter, selection states and the pickup-date context.
func (s *Session) CompleteOrder() {
	s.Clear()
	s.pickupDate = time.Time{}
	s.special = false
}

// Totals recomputes the cart's item count and dollar amount from the current
// lines. Amounts accumulate in integer cents so remove/re-add cycles cannot
// drift.
func (s *Session) Totals() (itemCount int, amount float64) {
	var cents int64
	for _, line := range s.cart {
		itemCount += line.Quantity
		cents += int64(line.Quantity) * int64(centsOf(line.UnitPrice))
	}
	return itemCount, float64(cents) / 100
}

func centsOf(dollars float64) int {
	return int(dollars*100 + 0.5)
}

// BuildSubmission assembles the order payload from the current cart and the
// given form fields. The items slice is a copy; the cart itself stays
// untouched until the submission is confirmed.
func (s *Session) BuildSubmission(customer model.Customer, specialInstructions string) model.OrderSubmission {
	items := make([]model.CartLineItem, len(s.cart))
	copy(items, s.cart)

	order := model.OrderSubmission{
		Customer:            customer,
		Items:               items,
		SpecialInstructions: specialInstructions,
	}
	order.TotalItems = order.ComputedTotalItems()
	return order
}

// HandleDateChanged applies a pickup-date selection. On a transition into the
// special date it sweeps the cart: every line for a date-special product whose
// quantity is below that product's special minimum is removed, and a single
// aggregate notice reports the removals. Leaving the special date never
// restores removed lines and never re-validates kept ones.
func (s *Session) HandleDateChanged(date time.Time) []Effect {
	wasSpecial := s.special
	s.pickupDate = date
	s.special = !date.IsZero() && sameDay(date, s.rules.SpecialDate)

	var effects []Effect
	if s.special && !wasSpecial {
		removed := s.sweepBelowSpecialMinimum()
		if len(removed) > 0 {
			effects = append(effects, Effect{
				Kind:    EffectNotice,
				Message: sweepNotice(removed),
			})
		}
	}

	// Effective minimums and options may have changed either way; every
	// product's controls need re-rendering.
	for _, p := range s.catalog.Products() {
		effects = append(effects, Effect{Kind: EffectRefreshControls, ProductID: p.ID})
	}
	return effects
}

func (s *Session) sweepBelowSpecialMinimum() []model.CartLineItem {
	var kept, removed []model.CartLineItem
	for _, line := range s.cart {
		product, err := s.catalog.FindByID(line.ProductID)
		if err == nil && product.IsDateSpecial && line.Quantity < product.SpecialMinQuantity {
			removed = append(removed, line)
			continue
		}
		kept = append(kept, line)
	}
	if len(removed) > 0 {
		s.cart = kept
		logger.Warn("Cart lines removed by special-date minimums", map[string]interface{}{
			"removed": len(removed),
			"kept":    len(kept),
		})
	}
	return removed
}

func sweepNotice(removed []model.CartLineItem) string {
	msg := "The selected pickup date has higher minimum quantities. Removed from your order:"
	for _, line := range removed {
		msg += fmt.Sprintf(" %s (x%d),", line.ProductName, line.Quantity)
	}
	return msg[:len(msg)-1] + ". Please re-add them with a compliant quantity."
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
