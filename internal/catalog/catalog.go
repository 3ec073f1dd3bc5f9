package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no products")
	ErrUnknownProduct = errors.New("unknown product")
)

// Product is a catalog entry. Products are defined once at startup and never
// mutated afterwards; cart lines snapshot the fields they need at add time.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Images           []string `json:"images"`
	Description      string   `json:"description,omitempty"`
	HasFlavorOptions bool     `json:"hasFlavorOptions"`
	Flavors          []string `json:"flavors,omitempty"`
	DefaultFlavor    string   `json:"defaultFlavor,omitempty"`
	MinQuantity      int      `json:"minQuantity"`
	QuantityOptions  []int    `json:"quantityOptions"`
	IsKit            bool     `json:"isKit,omitempty"`

	// Special pickup-date overrides, active only when the order's pickup
	// date equals the configured trigger date.
	IsDateSpecial          bool  `json:"isDateSpecial,omitempty"`
	SpecialMinQuantity     int   `json:"specialMinQuantity,omitempty"`
	SpecialQuantityOptions []int `json:"specialQuantityOptions,omitempty"`
}

// EffectiveMinQuantity resolves the minimum order quantity for the product
// under the given pickup-date context.
func (p *Product) EffectiveMinQuantity(specialDate bool) int {
	if specialDate && p.IsDateSpecial {
		return p.SpecialMinQuantity
	}
	return p.MinQuantity
}

// EffectiveQuantityOptions resolves the selectable quantities for the product
// under the given pickup-date context.
func (p *Product) EffectiveQuantityOptions(specialDate bool) []int {
	if specialDate && p.IsDateSpecial {
		return p.SpecialQuantityOptions
	}
	return p.QuantityOptions
}

// Catalog is the read-only product list, display order preserved.
type Catalog struct {
	products []Product
	byID     map[string]*Product
}

// New builds a catalog from product definitions, rejecting invalid ones.
func New(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		products: products,
		byID:     make(map[string]*Product, len(products)),
	}
	for i := range c.products {
		p := &c.products[i]
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.ID, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id", p.ID)
		}
		c.byID[p.ID] = p
	}
	return c, nil
}

func validateProduct(p *Product) error {
	if p.ID == "" {
		return errors.New("missing id")
	}
	if p.Name == "" {
		return errors.New("missing name")
	}
	if p.Price < 0 {
		return errors.New("negative price")
	}
	if len(p.Images) == 0 {
		return errors.New("no images")
	}
	if p.MinQuantity < 1 {
		return errors.New("minimum quantity below 1")
	}
	for _, q := range p.QuantityOptions {
		if q < p.MinQuantity {
			return fmt.Errorf("quantity option %d below minimum %d", q, p.MinQuantity)
		}
	}
	if p.HasFlavorOptions && len(p.Flavors) == 0 {
		return errors.New("flavor options flagged but no flavors listed")
	}
	if !p.HasFlavorOptions && len(p.Flavors) > 0 {
		return errors.New("flavors listed but flavor options not flagged")
	}
	if p.IsDateSpecial {
		if p.SpecialMinQuantity < 1 {
			return errors.New("special minimum quantity below 1")
		}
		for _, q := range p.SpecialQuantityOptions {
			if q < p.SpecialMinQuantity {
				return fmt.Errorf("special quantity option %d below special minimum %d", q, p.SpecialMinQuantity)
			}
		}
	}
	return nil
}

// Products returns all products in display order.
func (c *Catalog) Products() []Product {
	return c.products
}

// FindByID returns the product with the given id.
func (c *Catalog) FindByID(id string) (*Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}
	return p, nil
}

// LoadFile reads a JSON product list from disk and builds a catalog from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return New(products)
}
