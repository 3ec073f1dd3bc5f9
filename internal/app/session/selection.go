package session

import (
	"fmt"

	"github.com/mitchstreats/treats-backend/internal/app/model"
)

// Phase is the position of a product's controls in the selection flow.
type Phase int

const (
	// PhaseInitial: nothing chosen. On flavor products only the flavor
	// control is live; the add action is unavailable.
	PhaseInitial Phase = iota
	// PhaseFlavorChosen: a flavor is picked, the quantity control is live.
	PhaseFlavorChosen
	// PhaseReady: quantity and flavor (where required) are satisfied and
	// the add action is available.
	PhaseReady
)

// SelectionState is the transient per-product state of the order controls.
// It exists only until the product is added to the cart or the order is
// cleared.
type SelectionState struct {
	Phase    Phase
	Flavor   string
	Quantity int // 0 is the "no selection" sentinel
}

// AddEnabled reports whether the add action is available.
func (st *SelectionState) AddEnabled() bool {
	return st.Phase == PhaseReady
}

// EffectKind names a view directive produced by a command handler.
type EffectKind string

const (
	EffectShowQuantity    EffectKind = "show-quantity"
	EffectHideQuantity    EffectKind = "hide-quantity"
	EffectResetQuantity   EffectKind = "reset-quantity"
	EffectResetFlavor     EffectKind = "reset-flavor"
	EffectShowAdd         EffectKind = "show-add"
	EffectHideAdd         EffectKind = "hide-add"
	EffectRefreshControls EffectKind = "refresh-controls"
	EffectNotice          EffectKind = "notice"
)

// Effect is a single view directive. The session decides; the view renders.
type Effect struct {
	Kind      EffectKind `json:"kind"`
	ProductID string     `json:"productId,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// ValidationError is a user-correctable input rejection. It never crosses the
// session boundary as a fatal condition and never leaves the cart modified.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Selection returns the current selection state for a product, creating the
// initial state on first use.
func (s *Session) Selection(productID string) *SelectionState {
	st, ok := s.selections[productID]
	if !ok {
		st = &SelectionState{}
		s.selections[productID] = st
	}
	return st
}

func (s *Session) resetSelection(productID string) {
	delete(s.selections, productID)
}

// HandleFlavorChanged applies a flavor selection. Picking a flavor reveals
// the quantity control; clearing it reverts the product to its initial state.
func (s *Session) HandleFlavorChanged(productID, flavor string) ([]Effect, error) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.HasFlavorOptions {
		return nil, &ValidationError{Reason: fmt.Sprintf("%s has no flavor options", product.Name)}
	}

	st := s.Selection(productID)
	if flavor == "" {
		s.resetSelection(productID)
		return []Effect{
			{Kind: EffectResetQuantity, ProductID: productID},
			{Kind: EffectHideQuantity, ProductID: productID},
			{Kind: EffectHideAdd, ProductID: productID},
		}, nil
	}

	st.Flavor = flavor
	if st.Phase == PhaseInitial {
		st.Phase = PhaseFlavorChosen
		return []Effect{{Kind: EffectShowQuantity, ProductID: productID}}, nil
	}
	// Changing flavor with a valid quantity keeps the product ready.
	return nil, nil
}

// HandleQuantityChanged applies a quantity selection. Zero is the explicit
// "no selection" sentinel and only hides the add action. A value below the
// effective minimum is rejected: the quantity resets to the sentinel and the
// cart is untouched.
func (s *Session) HandleQuantityChanged(productID string, quantity int) ([]Effect, error) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return nil, err
	}
	st := s.Selection(productID)

	if product.HasFlavorOptions && st.Phase == PhaseInitial {
		return []Effect{
				{Kind: EffectResetQuantity, ProductID: productID},
				{Kind: EffectHideAdd, ProductID: productID},
			}, &ValidationError{
				Reason: fmt.Sprintf("Please select a flavor for %s first", product.Name),
			}
	}

	if quantity == 0 {
		st.Quantity = 0
		if st.Phase == PhaseReady {
			if product.HasFlavorOptions {
				st.Phase = PhaseFlavorChosen
			} else {
				st.Phase = PhaseInitial
			}
		}
		return []Effect{{Kind: EffectHideAdd, ProductID: productID}}, nil
	}

	min := product.EffectiveMinQuantity(s.special)
	if quantity < min {
		st.Quantity = 0
		if st.Phase == PhaseReady {
			if product.HasFlavorOptions {
				st.Phase = PhaseFlavorChosen
			} else {
				st.Phase = PhaseInitial
			}
		}
		return []Effect{
				{Kind: EffectResetQuantity, ProductID: productID},
				{Kind: EffectHideAdd, ProductID: productID},
			}, &ValidationError{
				Reason: fmt.Sprintf("Minimum order for %s is %d", product.Name, min),
			}
	}

	st.Quantity = quantity
	st.Phase = PhaseReady
	return []Effect{{Kind: EffectShowAdd, ProductID: productID}}, nil
}

// HandleAddToOrder commits the product's current selection as a cart line and
// fully resets its controls so it can be added again.
func (s *Session) HandleAddToOrder(productID string) (model.CartLineItem, []Effect, error) {
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return model.CartLineItem{}, nil, err
	}

	st := s.Selection(productID)
	if !st.AddEnabled() {
		return model.CartLineItem{}, nil, &ValidationError{
			Reason: fmt.Sprintf("%s is not ready to add", product.Name),
		}
	}

	flavor := st.Flavor
	if !product.HasFlavorOptions {
		flavor = product.DefaultFlavor
	}

	line, err := s.AddItem(productID, st.Quantity, flavor)
	if err != nil {
		return model.CartLineItem{}, nil, err
	}

	effects := []Effect{
		{Kind: EffectResetQuantity, ProductID: productID},
		{Kind: EffectHideAdd, ProductID: productID},
	}
	if product.HasFlavorOptions {
		effects = append(effects,
			Effect{Kind: EffectResetFlavor, ProductID: productID},
			Effect{Kind: EffectHideQuantity, ProductID: productID},
		)
	}
	return line, effects, nil
}
