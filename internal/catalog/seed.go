package catalog

// Default returns the built-in storefront catalog, used when no catalog file
// is configured.
func Default() *Catalog {
	c, err := New(defaultProducts())
	if err != nil {
		// The built-in list is validated by tests; this is unreachable
		// with a correct seed.
		panic(err)
	}
	return c
}

func defaultProducts() []Product {
	return []Product{
		{
			ID:              "sofganiyot-4",
			Name:            "Sofganiyot - Strawberry Jam",
			Price:           4.00,
			Images:          []string{"images/Sofganiyot - Strawberry Jam/Sufganiyot Strawberry.jpg"},
			Description:     "Traditional jelly donuts with strawberry jam filling",
			DefaultFlavor:   "Strawberry Jam",
			MinQuantity:     1,
			QuantityOptions: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 24, 36, 48},

			IsDateSpecial:          true,
			SpecialMinQuantity:     10,
			SpecialQuantityOptions: []int{10, 12, 24, 36, 48},
		},
		{
			ID:    "sofganiyot-4.5",
			Name:  "Sofganiyot - Premium Fillings",
			Price: 4.50,
			Images: []string{
				"images/Sofganiyot - Premium Fillings/Sofganiya 1.jpg",
				"images/Sofganiyot - Premium Fillings/1.jpg",
				"images/Sofganiyot - Premium Fillings/3.jpg",
			},
			Description:      "Donuts with premium fillings",
			HasFlavorOptions: true,
			Flavors:          []string{"Nutella", "Dulce de Leche", "Vanilla Custard", "Biscoff", "Marshmallows"},
			MinQuantity:      1,
			QuantityOptions:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 24, 36, 48},

			IsDateSpecial:          true,
			SpecialMinQuantity:     10,
			SpecialQuantityOptions: []int{10, 12, 24, 36, 48},
		},
		{
			ID:              "cake-pops",
			Name:            "Cake Pops",
			Price:           3.00,
			Images:          []string{"images/Cake Pops/cakepop.jpg"},
			Description:     "Vanilla cake pops (minimum order of 6)",
			DefaultFlavor:   "Vanilla",
			MinQuantity:     6,
			QuantityOptions: []int{6, 12, 18, 24, 36, 48},
		},
		{
			ID:              "pretzels",
			Name:            "Chocolate Covered Pretzels",
			Price:           2.00,
			Images:          []string{"images/Chocolate Covered Pretzels/pretzels.jpg"},
			Description:     "Chocolate covered pretzels (minimum order of 6)",
			DefaultFlavor:   "Chocolate",
			MinQuantity:     6,
			QuantityOptions: []int{6, 12, 18, 24, 36, 48, 60},
		},
		{
			ID:              "decorated-cookies",
			Name:            "Decorated Cookies",
			Price:           3.00,
			Images:          []string{"images/Decorated Cookies/Decorated cookies.jpg"},
			Description:     "Custom decorated cookies (minimum order of 6)",
			DefaultFlavor:   "Sugar Cookie",
			MinQuantity:     6,
			QuantityOptions: []int{6, 12, 18, 24, 36, 48},
		},
		{
			ID:              "plain-cookies",
			Name:            "Plain Hanukkah Cookies",
			Price:           1.25,
			Images:          []string{"images/Plain Hanukkah Cookies/Cookies undecorated.jpg"},
			Description:     "Plain Hanukkah cookies (minimum order of 6)",
			DefaultFlavor:   "Plain",
			MinQuantity:     6,
			QuantityOptions: []int{6, 12, 18, 24, 36, 48},
		},
		{
			ID:              "cookie-kit",
			Name:            "Cookie Decorating Kit",
			Price:           25.00,
			Images:          []string{"images/Cookie Decorating Kit/Cookie kit.jpg"},
			Description:     "Includes 12 cookies, 2 color icings, and 3 kinds of sprinkles",
			DefaultFlavor:   "Complete Kit",
			MinQuantity:     1,
			QuantityOptions: []int{1, 2, 3, 4, 5},
			IsKit:           true,
		},
	}
}
