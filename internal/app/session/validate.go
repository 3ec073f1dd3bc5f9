package session

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mitchstreats/treats-backend/internal/app/model"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidPickupDate = errors.New("invalid pickup date")
)

// emailPattern is the storefront's loose local@domain.tld shape, not a full
// RFC 5322 check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MissingFieldError reports an absent required form field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// DateTooEarlyError reports a pickup date before the earliest allowed date.
type DateTooEarlyError struct {
	PickupDate time.Time
	Earliest   time.Time
}

func (e *DateTooEarlyError) Error() string {
	return fmt.Sprintf("pickup date %s is before the earliest available date %s",
		e.PickupDate.Format("2006-01-02"), e.Earliest.Format("2006-01-02"))
}

// SpecialMinimumError reports cart lines below their product's special-date
// minimum at submission time.
type SpecialMinimumError struct {
	Items []model.CartLineItem
}

func (e *SpecialMinimumError) Error() string {
	names := make([]string, len(e.Items))
	for i, line := range e.Items {
		names[i] = fmt.Sprintf("%s (x%d)", line.ProductName, line.Quantity)
	}
	return "items below the special-date minimum: " + strings.Join(names, ", ")
}

// ValidateForSubmit runs the pre-submission checks in order, stopping at the
// first failure. The cart is never modified here.
func (s *Session) ValidateForSubmit(customer model.Customer) error {
	if len(s.cart) == 0 {
		return ErrEmptyCart
	}

	if strings.TrimSpace(customer.Name) == "" {
		return &MissingFieldError{Field: "name"}
	}
	email := strings.TrimSpace(customer.Email)
	if email == "" {
		return &MissingFieldError{Field: "email"}
	}
	if strings.TrimSpace(customer.Phone) == "" {
		return &MissingFieldError{Field: "phone"}
	}
	if strings.TrimSpace(customer.PickupDate) == "" {
		return &MissingFieldError{Field: "pickupDate"}
	}

	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	pickup, err := time.Parse("2006-01-02", strings.TrimSpace(customer.PickupDate))
	if err != nil {
		return ErrInvalidPickupDate
	}
	if !s.rules.EarliestPickup.IsZero() && pickup.Before(s.rules.EarliestPickup) {
		return &DateTooEarlyError{PickupDate: pickup, Earliest: s.rules.EarliestPickup}
	}

	if !s.rules.SpecialDate.IsZero() && sameDay(pickup, s.rules.SpecialDate) {
		var offending []model.CartLineItem
		for _, line := range s.cart {
			product, err := s.catalog.FindByID(line.ProductID)
			if err == nil && product.IsDateSpecial && line.Quantity < product.SpecialMinQuantity {
				offending = append(offending, line)
			}
		}
		if len(offending) > 0 {
			return &SpecialMinimumError{Items: offending}
		}
	}

	return nil
}
