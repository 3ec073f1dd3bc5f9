package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchstreats/treats-backend/internal/app/model"
	"github.com/mitchstreats/treats-backend/internal/catalog"
)

var (
	specialDate    = time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)
	earliestPickup = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Product{
		{
			ID:              "cake-pops",
			Name:            "Cake Pops",
			Price:           3.00,
			Images:          []string{"images/cakepop.jpg"},
			DefaultFlavor:   "Vanilla",
			MinQuantity:     6,
			QuantityOptions: []int{6, 12, 18, 24},
		},
		{
			ID:               "premium-donuts",
			Name:             "Premium Donuts",
			Price:            4.50,
			Images:           []string{"images/donut.jpg"},
			HasFlavorOptions: true,
			Flavors:          []string{"Nutella", "Biscoff"},
			MinQuantity:      1,
			QuantityOptions:  []int{1, 2, 3, 4, 5, 6},
		},
		{
			ID:              "holiday-treat",
			Name:            "Holiday Treat",
			Price:           4.00,
			Images:          []string{"images/treat.jpg"},
			DefaultFlavor:   "Classic",
			MinQuantity:     1,
			QuantityOptions: []int{1, 2, 4, 6, 10, 12},

			IsDateSpecial:          true,
			SpecialMinQuantity:     10,
			SpecialQuantityOptions: []int{10, 12},
		},
	})
	require.NoError(t, err)
	return c
}

func testSession(t *testing.T) *Session {
	t.Helper()
	return New(testCatalog(t), Rules{
		SpecialDate:    specialDate,
		EarliestPickup: earliestPickup,
	})
}

func TestAddItem_Success(t *testing.T) {
	s := testSession(t)

	line, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)
	assert.Equal(t, 1, line.CartItemID)
	assert.Equal(t, "Cake Pops", line.ProductName)
	assert.Equal(t, 3.00, line.UnitPrice)

	require.Len(t, s.Items(), 1)
	count, amount := s.Totals()
	assert.Equal(t, 6, count)
	assert.Equal(t, 18.00, amount)
}

func TestAddItem_BelowMinimum(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("cake-pops", 3, "Vanilla")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "Minimum order for Cake Pops is 6")
	assert.Empty(t, s.Items())
}

func TestAddItem_ZeroQuantity(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("cake-pops", 0, "Vanilla")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, s.Items())
}

func TestAddItem_FlavorRequired(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("premium-donuts", 2, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, s.Items())

	line, err := s.AddItem("premium-donuts", 2, "Nutella")
	require.NoError(t, err)
	assert.Equal(t, "Nutella", line.Flavor)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("croissant", 1, "")
	assert.ErrorIs(t, err, catalog.ErrUnknownProduct)
}

func TestAddItem_SnapshotsPrice(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)

	// A later catalog price change must not alter existing lines.
	p, err := s.Catalog().FindByID("cake-pops")
	require.NoError(t, err)
	p.Price = 99.00

	_, amount := s.Totals()
	assert.Equal(t, 18.00, amount)
}

func TestCartItemIDs_MonotonicAcrossRemovals(t *testing.T) {
	s := testSession(t)

	first, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)
	second, err := s.AddItem("premium-donuts", 2, "Biscoff")
	require.NoError(t, err)
	assert.Greater(t, second.CartItemID, first.CartItemID)

	s.RemoveItem(second.CartItemID)

	third, err := s.AddItem("cake-pops", 12, "Vanilla")
	require.NoError(t, err)
	assert.Greater(t, third.CartItemID, second.CartItemID)
}

func TestRemoveItem(t *testing.T) {
	s := testSession(t)

	line, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)

	s.RemoveItem(line.CartItemID)
	assert.Empty(t, s.Items())

	// Absent ids are a no-op, not an error.
	s.RemoveItem(42)
	assert.Empty(t, s.Items())
}

func TestTotals_RecomputedAfterRemoval(t *testing.T) {
	s := testSession(t)

	keep, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)
	drop, err := s.AddItem("premium-donuts", 4, "Nutella")
	require.NoError(t, err)

	count, amount := s.Totals()
	assert.Equal(t, 10, count)
	assert.Equal(t, 36.00, amount)

	s.RemoveItem(drop.CartItemID)
	count, amount = s.Totals()
	assert.Equal(t, 6, count)
	assert.Equal(t, 18.00, amount)

	s.RemoveItem(keep.CartItemID)
	count, amount = s.Totals()
	assert.Equal(t, 0, count)
	assert.Equal(t, 0.00, amount)
}

func TestClear_ResetsCounterAndSelections(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)
	_, err = s.HandleFlavorChanged("premium-donuts", "Nutella")
	require.NoError(t, err)

	s.Clear()
	assert.Empty(t, s.Items())
	assert.Equal(t, PhaseInitial, s.Selection("premium-donuts").Phase)

	line, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)
	assert.Equal(t, 1, line.CartItemID)
}

func TestHandleDateChanged_SweepsBelowSpecialMinimum(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("holiday-treat", 4, "Classic")
	require.NoError(t, err)
	_, err = s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)

	effects := s.HandleDateChanged(specialDate)

	require.Len(t, s.Items(), 1)
	assert.Equal(t, "cake-pops", s.Items()[0].ProductID)
	assert.True(t, s.SpecialDateActive())

	var notice *Effect
	for i := range effects {
		if effects[i].Kind == EffectNotice {
			notice = &effects[i]
		}
	}
	require.NotNil(t, notice, "sweep must produce an aggregate notice")
	assert.Contains(t, notice.Message, "Holiday Treat")
}

func TestHandleDateChanged_GrandfathersCompliantLines(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("holiday-treat", 12, "Classic")
	require.NoError(t, err)

	effects := s.HandleDateChanged(specialDate)
	assert.Len(t, s.Items(), 1)
	for _, e := range effects {
		assert.NotEqual(t, EffectNotice, e.Kind)
	}
}

func TestHandleDateChanged_SweepIsOneWay(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("holiday-treat", 4, "Classic")
	require.NoError(t, err)

	s.HandleDateChanged(specialDate)
	require.Empty(t, s.Items())

	// Reverting the date does not restore the removed line.
	s.HandleDateChanged(specialDate.AddDate(0, 0, 1))
	assert.False(t, s.SpecialDateActive())
	assert.Empty(t, s.Items())
}

func TestHandleDateChanged_RefreshesAllProducts(t *testing.T) {
	s := testSession(t)

	effects := s.HandleDateChanged(specialDate)

	refreshed := map[string]bool{}
	for _, e := range effects {
		if e.Kind == EffectRefreshControls {
			refreshed[e.ProductID] = true
		}
	}
	assert.Len(t, refreshed, len(s.Catalog().Products()))
}

func TestBuildSubmission_Snapshot(t *testing.T) {
	s := testSession(t)

	line, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)

	customer := model.Customer{
		Name:       "Dana",
		Email:      "dana@example.com",
		Phone:      "555-0100",
		PickupDate: "2025-12-10",
	}
	order := s.BuildSubmission(customer, "extra sprinkles")

	assert.Equal(t, 6, order.TotalItems)
	assert.Equal(t, "extra sprinkles", order.SpecialInstructions)
	require.Len(t, order.Items, 1)

	// The submission is a copy: later cart mutation leaves it untouched.
	s.RemoveItem(line.CartItemID)
	assert.Len(t, order.Items, 1)
}

func TestCompleteOrder(t *testing.T) {
	s := testSession(t)

	_, err := s.AddItem("holiday-treat", 12, "Classic")
	require.NoError(t, err)
	s.HandleDateChanged(specialDate)

	s.CompleteOrder()
	assert.Empty(t, s.Items())
	assert.False(t, s.SpecialDateActive())
	assert.True(t, s.PickupDate().IsZero())

	line, err := s.AddItem("cake-pops", 6, "Vanilla")
	require.NoError(t, err)
	assert.Equal(t, 1, line.CartItemID)
}
