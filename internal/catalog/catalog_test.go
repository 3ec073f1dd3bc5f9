package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		ID:              "cake-pops",
		Name:            "Cake Pops",
		Price:           3.00,
		Images:          []string{"images/cakepop.jpg"},
		DefaultFlavor:   "Vanilla",
		MinQuantity:     6,
		QuantityOptions: []int{6, 12, 18},
	}
}

func TestNew_Valid(t *testing.T) {
	c, err := New([]Product{validProduct()})
	require.NoError(t, err)

	p, err := c.FindByID("cake-pops")
	require.NoError(t, err)
	assert.Equal(t, "Cake Pops", p.Name)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Product)
	}{
		{"missing id", func(p *Product) { p.ID = "" }},
		{"missing name", func(p *Product) { p.Name = "" }},
		{"negative price", func(p *Product) { p.Price = -1 }},
		{"no images", func(p *Product) { p.Images = nil }},
		{"zero minimum", func(p *Product) { p.MinQuantity = 0 }},
		{"option below minimum", func(p *Product) { p.QuantityOptions = []int{3} }},
		{"flavors without flag", func(p *Product) { p.Flavors = []string{"Nutella"} }},
		{"flag without flavors", func(p *Product) { p.HasFlavorOptions = true }},
		{"special without minimum", func(p *Product) { p.IsDateSpecial = true }},
		{"special option below special minimum", func(p *Product) {
			p.IsDateSpecial = true
			p.SpecialMinQuantity = 10
			p.SpecialQuantityOptions = []int{6}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			_, err := New([]Product{p})
			assert.Error(t, err)
		})
	}
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New([]Product{validProduct(), validProduct()})
	assert.ErrorContains(t, err, "duplicate id")
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestFindByID_Unknown(t *testing.T) {
	c, err := New([]Product{validProduct()})
	require.NoError(t, err)

	_, err = c.FindByID("croissant")
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestEffectiveRules(t *testing.T) {
	p := validProduct()
	p.IsDateSpecial = true
	p.SpecialMinQuantity = 10
	p.SpecialQuantityOptions = []int{10, 20}

	assert.Equal(t, 6, p.EffectiveMinQuantity(false))
	assert.Equal(t, 10, p.EffectiveMinQuantity(true))
	assert.Equal(t, []int{6, 12, 18}, p.EffectiveQuantityOptions(false))
	assert.Equal(t, []int{10, 20}, p.EffectiveQuantityOptions(true))

	// Non-special products ignore the date context entirely.
	plain := validProduct()
	assert.Equal(t, 6, plain.EffectiveMinQuantity(true))
	assert.Equal(t, []int{6, 12, 18}, plain.EffectiveQuantityOptions(true))
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Len(t, c.Products(), 7)

	p, err := c.FindByID("cake-pops")
	require.NoError(t, err)
	assert.Equal(t, 3.00, p.Price)
	assert.Equal(t, 6, p.MinQuantity)

	premium, err := c.FindByID("sofganiyot-4.5")
	require.NoError(t, err)
	assert.True(t, premium.HasFlavorOptions)
	assert.NotEmpty(t, premium.Flavors)

	kit, err := c.FindByID("cookie-kit")
	require.NoError(t, err)
	assert.True(t, kit.IsKit)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "catalog.json")
	data := `[{
		"id": "brownies",
		"name": "Brownies",
		"price": 2.50,
		"images": ["images/brownies.jpg"],
		"minQuantity": 4,
		"quantityOptions": [4, 8, 12]
	}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	p, err := c.FindByID("brownies")
	require.NoError(t, err)
	assert.Equal(t, 2.50, p.Price)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
