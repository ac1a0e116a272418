package catalog

// Static catalog data. Prices are whole pounds (GBP). The tables mirror the
// EPP portal's published configurations; they are compiled into the binary
// and never change at runtime.

// watchBands is the standard strap line-up shared by every non-Ultra case.
func watchBands() []BandGroup {
	return []BandGroup{
		{
			Material: "Rubber",
			Styles: []BandStyle{
				{
					Name:   "Solo Loop",
					Price:  0,
					Colors: []string{"Northern Lights", "Periwinkle", "Peony", "Black", "Light Blush"},
					Sizes:  []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
				},
				{
					Name:   "Sport Band",
					Price:  0,
					Colors: []string{"Aquamarine", "Periwinkle", "Tangerine", "Starlight", "Black", "Light Blush", "Stone Grey", "Pride", "Black Unity"},
					Sizes:  []string{"S/M", "M/L"},
				},
				{
					Name:   "Nike Sport Band",
					Price:  0,
					Colors: []string{"Volt Splash", "Magic Ember", "Midnight Sky", "Pure Platinum", "Desert Stone", "Cargo Khaki", "Blue Flame"},
					Sizes:  []string{"S/M", "M/L"},
				},
			},
		},
		{
			Material: "Textile",
			Styles: []BandStyle{
				{
					Name:   "Sport Loop",
					Price:  0,
					Colors: []string{"Black", "White", "Red", "Blue", "Green"},
					Sizes:  []string{"S/M", "M/L"},
				},
				{
					Name:   "Magnetic Link",
					Price:  50,
					Colors: []string{"Dark Taupe", "Black", "Blackberry"},
					Sizes:  []string{"S/M", "M/L"},
				},
				{
					Name:   "Modern Buckle",
					Price:  100,
					Colors: []string{"Deep Blue", "Dark Taupe", "Chartreuse"},
					Sizes:  []string{"Small", "Medium", "Large"},
				},
				{
					Name:   "Braided Solo Loop",
					Price:  50,
					Colors: []string{"Black", "White", "Red", "Blue", "Green"},
					Sizes:  []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
				},
				{
					Name:   "Nike Sport Loop",
					Price:  0,
					Colors: []string{"Black", "White", "Red", "Blue", "Green"},
					Sizes:  []string{"S/M", "M/L"},
				},
			},
		},
		{
			Material: "Stainless Steel",
			Styles: []BandStyle{
				{
					Name:   "Milanese Loop",
					Price:  50,
					Colors: []string{"Natural", "Gold", "Slate"},
				},
				{
					Name:   "Link Bracelet",
					Price:  250,
					Colors: []string{"Natural", "Gold", "Slate"},
				},
			},
		},
	}
}

// tabletPencils is the Apple Pencil line-up offered with current iPads.
func tabletPencils() []Pencil {
	return []Pencil{
		{Type: "None", Price: 0},
		{Type: "Apple Pencil Pro", Price: 129},
		{Type: "Apple Pencil (USB-C)", Price: 79},
	}
}

func macbookConfigurations() *categoryConfig {
	return &categoryConfig{
		order: []string{
			`MacBook Pro 16"`, `MacBook Pro 14"`, `MacBook Air 15"`,
			`MacBook Air 13"`, "iMac", "Mac mini", "Mac Studio",
		},
		models: map[string]*Model{
			`MacBook Pro 16"`: {
				DisplayName:    `MacBook Pro 16"`,
				Colors:         []string{"Space Black", "Silver"},
				AppleCarePrice: intPtr(199),
				Specs: []Specification{
					{
						Name:        "M4 Pro 14-Core CPU 20-Core GPU 24GB Unified Memory",
						Price:       2499,
						Constraints: Constraints{MinStorage: "512GB", MinMemory: "24GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"24GB": 0, "36GB": 200, "48GB": 400, "64GB": 600, "128GB": 1400},
							Storage:     map[string]int{"512GB": 0, "1TB": 200, "2TB": 600, "4TB": 1200, "8TB": 2400},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
					{
						Name:        "M4 Pro 14-Core CPU 20-Core GPU 48GB Unified Memory",
						Price:       2899,
						Constraints: Constraints{MinStorage: "512GB", MinMemory: "36GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"36GB": 0, "48GB": 0, "64GB": 200, "128GB": 1000},
							Storage:     map[string]int{"512GB": 0, "1TB": 200, "2TB": 600, "4TB": 1200, "8TB": 2400},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
					{
						Name:        "M4 Max 14-Core CPU 32-Core GPU 36GB Unified Memory",
						Price:       3499,
						Constraints: Constraints{MinStorage: "1TB", MinMemory: "24GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"36GB": 0, "48GB": 200, "64GB": 400, "128GB": 1200},
							Storage:     map[string]int{"1TB": 0, "2TB": 400, "4TB": 1000, "8TB": 2200},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
					{
						Name:        "M4 Max 16-Core CPU 40-Core GPU 48GB Unified Memory",
						Price:       3999,
						Constraints: Constraints{MinStorage: "1TB", MinMemory: "48GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"48GB": 0, "64GB": 200, "128GB": 1000},
							Storage:     map[string]int{"1TB": 0, "2TB": 400, "4TB": 1000, "8TB": 2200},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
				},
			},
			`MacBook Pro 14"`: {
				DisplayName:    `MacBook Pro 14"`,
				Colors:         []string{"Space Black", "Silver"},
				AppleCarePrice: intPtr(199),
				Specs: []Specification{
					{
						Name:        "M4 10-Core CPU 10-Core GPU 16GB Unified Memory",
						Price:       1599,
						Constraints: Constraints{MinStorage: "512GB", MinMemory: "16GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"16GB": 0, "24GB": 200, "32GB": 400},
							Storage:     map[string]int{"512GB": 0, "1TB": 200, "2TB": 600},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
					{
						Name:        "M4 10-Core CPU 10-Core GPU 24GB Unified Memory",
						Price:       1999,
						Constraints: Constraints{MinStorage: "1TB", MinMemory: "24GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"24GB": 0, "32GB": 200},
							Storage:     map[string]int{"1TB": 0, "2TB": 400},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
					{
						Name:        "M4 Pro 12-Core CPU 16-Core GPU 24GB Unified Memory",
						Price:       1999,
						Constraints: Constraints{MinStorage: "512GB", MinMemory: "24GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"24GB": 0, "36GB": 200, "48GB": 400, "64GB": 600, "128GB": 1400},
							Storage:     map[string]int{"512GB": 0, "1TB": 200, "2TB": 600, "4TB": 1200, "8TB": 2400},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
					{
						Name:        "M4 Pro 14-Core CPU 20-Core GPU 24GB Unified Memory",
						Price:       2399,
						Constraints: Constraints{MinStorage: "1TB", MinMemory: "24GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"24GB": 0, "36GB": 200, "48GB": 400, "64GB": 600, "128GB": 1400},
							Storage:     map[string]int{"1TB": 0, "2TB": 400, "4TB": 1000, "8TB": 2200},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
					{
						Name:        "M4 Max 14-Core CPU 32-Core GPU 36GB Unified Memory",
						Price:       3199,
						Constraints: Constraints{MinStorage: "1TB", MinMemory: "36GB"},
						Laptop: &LaptopOptions{
							Memory:      map[string]int{"36GB": 0, "48GB": 200, "64GB": 400, "128GB": 1200},
							Storage:     map[string]int{"1TB": 0, "2TB": 400, "4TB": 1000, "8TB": 2200},
							Charger:     map[string]int{"70W": 0, "96W": 20},
							NanoTexture: intPtr(150),
						},
					},
				},
			},
			`MacBook Air 15"`: {
				DisplayName:    `MacBook Air 15"`,
				Colors:         []string{"Starlight", "Silver", "Sky Blue", "Midnight"},
				AppleCarePrice: intPtr(199),
				Specs: []Specification{
					{
						Name:        "M4 10-Core CPU 10-Core GPU 16GB Unified Memory",
						Price:       1199,
						Constraints: Constraints{MinStorage: "256GB", MinMemory: "16GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"16GB": 0, "24GB": 200, "32GB": 400},
							Storage: map[string]int{"256GB": 0, "512GB": 200, "1TB": 400, "2TB": 800},
							Charger: map[string]int{"35W Dual": 0, "70W": 0},
						},
					},
					{
						Name:        "M4 10-Core CPU 10-Core GPU 24GB Unified Memory",
						Price:       1599,
						Constraints: Constraints{MinStorage: "512GB", MinMemory: "16GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"24GB": 0, "32GB": 200},
							Storage: map[string]int{"512GB": 0, "1TB": 200, "2TB": 600},
							Charger: map[string]int{"35W Dual": 0, "70W": 0},
						},
					},
				},
			},
			`MacBook Air 13"`: {
				DisplayName:    `MacBook Air 13"`,
				Colors:         []string{"Starlight", "Silver", "Sky Blue", "Midnight"},
				AppleCarePrice: intPtr(199),
				Specs: []Specification{
					{
						Name:        "M4 10-Core CPU 8-Core GPU 16GB Unified Memory",
						Price:       999,
						Constraints: Constraints{MinStorage: "256GB", MinMemory: "16GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"16GB": 0, "24GB": 200, "32GB": 400},
							Storage: map[string]int{"256GB": 0, "512GB": 200, "1TB": 400, "2TB": 800},
							Charger: map[string]int{"30W": 0, "35W Dual": 20, "70W": 20},
						},
					},
					{
						Name:        "M4 10-Core CPU 10-Core GPU 16GB Unified Memory",
						Price:       1199,
						Constraints: Constraints{MinStorage: "512GB", MinMemory: "16GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"16GB": 0, "24GB": 200, "32GB": 400},
							Storage: map[string]int{"512GB": 0, "1TB": 200, "2TB": 600},
							Charger: map[string]int{"35W Dual": 0, "70W": 0},
						},
					},
					{
						Name:        "M4 10-Core CPU 10-Core GPU 24GB Unified Memory",
						Price:       1399,
						Constraints: Constraints{MinStorage: "512GB", MinMemory: "24GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"24GB": 0, "32GB": 200},
							Storage: map[string]int{"512GB": 0, "1TB": 200, "2TB": 600},
							Charger: map[string]int{"35W Dual": 0, "70W": 0},
						},
					},
				},
			},
			"iMac": {
				DisplayName:    "iMac",
				Colors:         []string{"Silver", "Blue", "Green", "Pink", "Yellow", "Purple", "Orange", "Red"},
				AppleCarePrice: intPtr(199),
				Specs: []Specification{
					{
						Name:        "M4 8-Core CPU 10-Core GPU 16GB Unified Memory",
						Price:       1299,
						Constraints: Constraints{MinStorage: "256GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"16GB": 0, "24GB": 200},
							Storage: map[string]int{"256GB": 200, "512GB": 400, "1TB": 800},
							Charger: map[string]int{"30W": 0, "67W": 0},
						},
					},
					{
						Name:        "M4 8-Core CPU 10-Core GPU 24GB Unified Memory",
						Price:       1499,
						Constraints: Constraints{MinStorage: "512GB"},
						Laptop:      &LaptopOptions{},
					},
				},
			},
			"Mac mini": {
				DisplayName:    "Mac mini",
				Colors:         []string{"Silver"},
				AppleCarePrice: intPtr(199),
				Specs: []Specification{
					{
						Name:        "M4 8-Core CPU 10-Core GPU 16GB Unified Memory",
						Price:       699,
						Constraints: Constraints{MinStorage: "256GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"16GB": 0, "24GB": 200},
							Storage: map[string]int{"256GB": 200, "512GB": 400, "1TB": 800},
						},
					},
					{
						Name:        "M4 8-Core CPU 10-Core GPU 24GB Unified Memory",
						Price:       899,
						Constraints: Constraints{MinStorage: "512GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"24GB": 0},
							Storage: map[string]int{"512GB": 0, "1TB": 400},
						},
					},
				},
			},
			"Mac Studio": {
				DisplayName:    "Mac Studio",
				Colors:         []string{"Silver"},
				AppleCarePrice: intPtr(199),
				Specs: []Specification{
					{
						Name:        "M4 10-Core CPU 16-Core GPU 24GB Unified Memory",
						Price:       1999,
						Constraints: Constraints{MinStorage: "512GB"},
						Laptop: &LaptopOptions{
							Memory:  map[string]int{"24GB": 0, "48GB": 200},
							Storage: map[string]int{"512GB": 200, "1TB": 400, "2TB": 800},
							Charger: map[string]int{"67W": 0, "96W": 0},
						},
					},
					{
						Name:        "M4 10-Core CPU 16-Core GPU 48GB Unified Memory",
						Price:       2499,
						Constraints: Constraints{MinStorage: "1TB"},
						Laptop:      &LaptopOptions{},
					},
				},
			},
		},
	}
}

func iphoneConfigurations() *categoryConfig {
	return &categoryConfig{
		order: []string{"iPhone 16 Pro & Pro Max", "iPhone 16 & 16 Plus", "iPhone 16e"},
		models: map[string]*Model{
			"iPhone 16 Pro & Pro Max": {
				DisplayName:    "iPhone 16 Pro & Pro Max",
				Colors:         []string{"Desert Titanium", "Natural Titanium", "White Titanium", "Black Titanium"},
				AppleCarePrice: intPtr(179),
				Specs: []Specification{
					{
						Name:        "iPhone 16 Pro",
						Price:       999,
						Constraints: Constraints{MinStorage: "128GB"},
						Phone: &PhoneOptions{
							Storage: map[string]int{"128GB": 0, "256GB": 100, "512GB": 300, "1TB": 500},
						},
					},
					{
						Name:        "iPhone 16 Pro Max",
						Price:       1199,
						Constraints: Constraints{MinStorage: "256GB"},
						Phone: &PhoneOptions{
							Storage: map[string]int{"256GB": 0, "512GB": 100, "1TB": 200},
						},
					},
				},
			},
			"iPhone 16 & 16 Plus": {
				DisplayName:    "iPhone 16 & 16 Plus",
				Colors:         []string{"Ultramarine", "Teal", "Pink", "White", "Black"},
				AppleCarePrice: intPtr(179),
				Specs: []Specification{
					{
						Name:        "iPhone 16",
						Price:       799,
						Constraints: Constraints{MinStorage: "128GB"},
						Phone: &PhoneOptions{
							Storage: map[string]int{"128GB": 0, "256GB": 100, "512GB": 300},
						},
					},
					{
						Name:        "iPhone 16 Plus",
						Price:       899,
						Constraints: Constraints{MinStorage: "128GB"},
						Phone: &PhoneOptions{
							Storage: map[string]int{"128GB": 0, "256GB": 100, "512GB": 300},
						},
					},
				},
			},
			"iPhone 16e": {
				DisplayName:    "iPhone 16e",
				Colors:         []string{"Black", "White"},
				AppleCarePrice: intPtr(99),
				Specs: []Specification{
					{
						Name:        "iPhone 16e",
						Price:       599,
						Constraints: Constraints{MinStorage: "128GB"},
						Phone: &PhoneOptions{
							Storage: map[string]int{"128GB": 0, "256GB": 100, "512GB": 300},
						},
					},
				},
			},
		},
	}
}

func ipadConfigurations() *categoryConfig {
	return &categoryConfig{
		order: []string{"iPad Pro", "iPad Air", "iPad", "iPad mini"},
		models: map[string]*Model{
			"iPad Pro": {
				DisplayName: "iPad Pro",
				Colors:      []string{"Silver", "Space Black"},
				Specs: []Specification{
					{
						Name:           "11-inch iPad Pro",
						Price:          999,
						Constraints:    Constraints{MinStorage: "256GB", MinStorageForNanoTexture: "1TB"},
						AppleCarePrice: intPtr(149),
						Tablet: &TabletOptions{
							Storage:       map[string]int{"256GB": 0, "512GB": 200, "1TB": 600, "2TB": 1000},
							Connectivity:  map[string]int{"Wi-Fi": 0, "Wi-Fi + Cellular": 200},
							NanoTexture:   intPtr(100),
							Pencils:       tabletPencils(),
							MagicKeyboard: intPtr(299),
						},
					},
					{
						Name:           "13-inch iPad Pro",
						Price:          1299,
						Constraints:    Constraints{MinStorage: "256GB", MinStorageForNanoTexture: "1TB"},
						AppleCarePrice: intPtr(169),
						Tablet: &TabletOptions{
							Storage:       map[string]int{"256GB": 0, "512GB": 200, "1TB": 600, "2TB": 1000},
							Connectivity:  map[string]int{"Wi-Fi": 0, "Wi-Fi + Cellular": 200},
							NanoTexture:   intPtr(100),
							Pencils:       tabletPencils(),
							MagicKeyboard: intPtr(349),
						},
					},
				},
			},
			"iPad Air": {
				DisplayName: "iPad Air",
				Colors:      []string{"Space Gray", "Blue", "Purple", "Starlight"},
				Specs: []Specification{
					{
						Name:           "11-inch iPad Air",
						Price:          599,
						Constraints:    Constraints{MinStorage: "128GB"},
						AppleCarePrice: intPtr(79),
						Tablet: &TabletOptions{
							Storage:       map[string]int{"128GB": 0, "256GB": 100, "512GB": 300, "1TB": 500},
							Connectivity:  map[string]int{"Wi-Fi": 0, "Wi-Fi + Cellular": 150},
							Pencils:       tabletPencils(),
							MagicKeyboard: intPtr(269),
						},
					},
					{
						Name:           "13-inch iPad Air",
						Price:          799,
						Constraints:    Constraints{MinStorage: "128GB"},
						AppleCarePrice: intPtr(99),
						Tablet: &TabletOptions{
							Storage:       map[string]int{"128GB": 0, "256GB": 100, "512GB": 300, "1TB": 500},
							Connectivity:  map[string]int{"Wi-Fi": 0, "Wi-Fi + Cellular": 150},
							Pencils:       tabletPencils(),
							MagicKeyboard: intPtr(299),
						},
					},
				},
			},
			"iPad": {
				DisplayName: "iPad",
				Colors:      []string{"Silver", "Blue", "Pink", "Yellow"},
				Specs: []Specification{
					{
						Name:           "default",
						Price:          329,
						Constraints:    Constraints{MinStorage: "128GB"},
						AppleCarePrice: intPtr(69),
						Tablet: &TabletOptions{
							Storage:      map[string]int{"128GB": 0, "256GB": 100, "512GB": 300},
							Connectivity: map[string]int{"Wi-Fi": 0, "Wi-Fi + Cellular": 150},
							Pencils: []Pencil{
								{Type: "None", Price: 0},
								{Type: "Apple Pencil (USB-C)", Price: 79},
								{Type: "Apple Pencil (1st Gen)", Price: 99},
							},
							MagicKeyboard: intPtr(249),
						},
					},
				},
			},
			"iPad mini": {
				DisplayName: "iPad mini",
				Colors:      []string{"Space Gray", "Blue", "Purple", "Starlight"},
				Specs: []Specification{
					{
						Name:           "default",
						Price:          499,
						Constraints:    Constraints{MinStorage: "128GB"},
						AppleCarePrice: intPtr(69),
						Tablet: &TabletOptions{
							Storage:      map[string]int{"128GB": 0, "256GB": 100, "512GB": 300},
							Connectivity: map[string]int{"Wi-Fi": 0, "Wi-Fi + Cellular": 150},
							Pencils:      tabletPencils(),
						},
					},
				},
			},
		},
	}
}

func watchConfigurations() *categoryConfig {
	return &categoryConfig{
		order: []string{"Apple Watch Series 10", "Apple Watch Ultra 2", "Apple Watch SE"},
		models: map[string]*Model{
			"Apple Watch Series 10": {
				DisplayName: "Apple Watch Series 10",
				Colors:      []string{},
				Specs: []Specification{
					{
						Name:           "Aluminium Case",
						Price:          399,
						AppleCarePrice: intPtr(79),
						Watch: &WatchOptions{
							Colors:       []string{"Silver", "Rose Gold", "Jet Black"},
							Sizes:        map[string]int{"42mm": 0, "46mm": 30},
							Connectivity: map[string]int{"GPS": 0, "GPS + Cellular": 100},
							Bands:        watchBands(),
						},
					},
					{
						Name:           "Titanium Case",
						Price:          699,
						AppleCarePrice: intPtr(79),
						Watch: &WatchOptions{
							Colors:       []string{"Natural", "Slate", "Gold"},
							Sizes:        map[string]int{"42mm": 0, "46mm": 50},
							Connectivity: map[string]int{"GPS + Cellular": 0},
							Bands:        watchBands(),
						},
					},
				},
			},
			"Apple Watch Ultra 2": {
				DisplayName: "Apple Watch Ultra 2",
				Colors:      []string{"Natural", "Black"},
				Specs: []Specification{
					{
						Name:           "default",
						Price:          799,
						AppleCarePrice: intPtr(99),
						Watch: &WatchOptions{
							Sizes:        map[string]int{"49mm": 0},
							Connectivity: map[string]int{"GPS + Cellular": 0},
							Bands: []BandGroup{
								{
									Material: "default",
									Styles: []BandStyle{
										{
											Name:   "Trail Loop",
											Price:  0,
											Colors: []string{"Black", "Green", "Blue"},
											Sizes:  []string{"S/M", "M/L"},
										},
										{
											Name:   "Ocean Band",
											Price:  0,
											Colors: []string{"Ice Blue", "Black", "Navy"},
										},
										{
											Name:   "Alpine Loop",
											Price:  0,
											Colors: []string{"Tan", "Navy", "Dark Green"},
											Sizes:  []string{"Small", "Medium", "Large"},
										},
										{
											Name:   "Titanium Milanese Loop",
											Price:  100,
											Colors: []string{"Natural", "Black"},
											Sizes:  []string{"Small", "Medium", "Large"},
										},
									},
								},
							},
						},
					},
				},
			},
			"Apple Watch SE": {
				DisplayName:    "Apple Watch SE 2nd Gen",
				Colors:         []string{"Midnight", "Starlight", "Silver"},
				AppleCarePrice: intPtr(49),
				Specs: []Specification{
					{
						Name:  "default",
						Price: 219,
						Watch: &WatchOptions{
							Sizes:        map[string]int{"40mm": 0, "44mm": 30},
							Connectivity: map[string]int{"GPS": 0, "GPS + Cellular": 70},
							Bands:        watchBands(),
						},
					},
				},
			},
		},
	}
}
