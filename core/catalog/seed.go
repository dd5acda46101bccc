package catalog

// Seed loads the demo dataset the storefront ships with. Prices are in
// cents.
func Seed(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brands = []Brand{
		{ID: 1, Name: "Apple"},
		{ID: 2, Name: "Samsung"},
		{ID: 3, Name: "Google"},
		{ID: 4, Name: "OnePlus"},
	}

	s.models = []PhoneModel{
		{ID: 1, BrandID: 1, Name: "iPhone 15 Pro"},
		{ID: 2, BrandID: 1, Name: "iPhone 15"},
		{ID: 3, BrandID: 2, Name: "Galaxy S24 Ultra"},
		{ID: 4, BrandID: 2, Name: "Galaxy Z Fold 5"},
		{ID: 5, BrandID: 3, Name: "Pixel 8 Pro"},
		{ID: 6, BrandID: 3, Name: "Pixel 8"},
		{ID: 7, BrandID: 4, Name: "OnePlus 12"},
		{ID: 8, BrandID: 4, Name: "OnePlus Open"},
	}

	s.skins = []Skin{
		{ID: 1, ModelID: 1, Name: "Carbon Fiber"},
		{ID: 2, ModelID: 3, Name: "Cosmic"},
		{ID: 3, ModelID: 5, Name: "Wood Finish"},
		{ID: 4, ModelID: 7, Name: "Sandstone"},
	}

	s.variants = []Variant{
		{
			ID: 101, SkinID: 1, Name: "Obsidian Weave", Price: 2499, ColorHex: "#000000",
			ImageURLs: []string{
				"https://placehold.co/600x600/000000/FFFFFF.png",
				"https://placehold.co/600x600/111111/FFFFFF.png",
				"https://placehold.co/600x600/222222/FFFFFF.png",
			},
		},
		{
			ID: 102, SkinID: 1, Name: "Crimson Carbon", Price: 2499, ColorHex: "#8B0000",
			ImageURLs: []string{
				"https://placehold.co/600x600/8B0000/FFFFFF.png",
				"https://placehold.co/600x600/9B0000/FFFFFF.png",
				"https://placehold.co/600x600/AB0000/FFFFFF.png",
			},
		},
		{
			ID: 103, SkinID: 1, Name: "Cobalt Blue", Price: 2499, ColorHex: "#0047AB",
			ImageURLs: []string{
				"https://placehold.co/600x600/0047AB/FFFFFF.png",
				"https://placehold.co/600x600/0057BB/FFFFFF.png",
				"https://placehold.co/600x600/0067CB/FFFFFF.png",
			},
		},
		{
			ID: 201, SkinID: 2, Name: "Cosmic Marble", Price: 2999, ColorHex: "#465067",
			ImageURLs: []string{
				"https://placehold.co/600x600/465067/FFFFFF.png",
				"https://placehold.co/600x600/566077/FFFFFF.png",
			},
		},
		{
			ID: 202, SkinID: 2, Name: "Cyber Hex", Price: 2999, ColorHex: "#00FFFF",
			ImageURLs: []string{
				"https://placehold.co/600x600/00FFFF/000000.png",
				"https://placehold.co/600x600/11FFFF/000000.png",
				"https://placehold.co/600x600/22FFFF/000000.png",
				"https://placehold.co/600x600/33FFFF/000000.png",
			},
		},
		{
			ID: 301, SkinID: 3, Name: "Matte Black", Price: 1999, ColorHex: "#1C1C1C",
			ImageURLs: []string{"https://placehold.co/600x600/1C1C1C/FFFFFF.png"},
		},
		{
			ID: 302, SkinID: 3, Name: "Walnut Burl", Price: 2299, ColorHex: "#654321",
			ImageURLs: []string{
				"https://placehold.co/600x600/654321/FFFFFF.png",
				"https://placehold.co/600x600/755331/FFFFFF.png",
			},
		},
		{
			ID: 401, SkinID: 4, Name: "Sandstone Red", Price: 2199, ColorHex: "#B22222",
			ImageURLs: []string{"https://placehold.co/600x600/B22222/FFFFFF.png"},
		},
		{
			ID: 402, SkinID: 4, Name: "Arctic Camo", Price: 2199, ColorHex: "#F5F5F5",
			ImageURLs: []string{"https://placehold.co/600x600/F5F5F5/000000.png"},
		},
	}

	s.featured = []int64{1, 2, 3, 4}

	s.nextBrandID = 5
	s.nextModelID = 9
	s.nextSkinID = 5
	s.nextVariantID = 403
}
