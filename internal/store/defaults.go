package store

// counterStart is the first order id ever allocated on a fresh install.
const counterStart = 1001

// Seed catalog written on first run (or after a corrupt file reset) so the
// storefront is never empty. The admin panel replaces it wholesale.

func defaultProducts() []CatalogItem {
	return []CatalogItem{
		{
			"name":        "Mango Pickle",
			"description": "Homemade raw mango pickle in mustard oil",
			"price":       180.0,
			"unit":        "250g jar",
			"image":       "/images/products/mango-pickle.jpg",
			"available":   true,
		},
		{
			"name":        "Lemon Pickle",
			"description": "Sun-cured lemon pickle, mildly spiced",
			"price":       160.0,
			"unit":        "250g jar",
			"image":       "/images/products/lemon-pickle.jpg",
			"available":   true,
		},
		{
			"name":        "Masala Mathri",
			"description": "Crispy ajwain mathri, batch-fried",
			"price":       120.0,
			"unit":        "400g pack",
			"image":       "/images/products/masala-mathri.jpg",
			"available":   true,
		},
	}
}

func defaultBanners() []CatalogItem {
	return []CatalogItem{
		{
			"title":  "Festive Season Offer",
			"text":   "Free delivery on orders above ₹500",
			"image":  "/images/banners/festive.jpg",
			"active": true,
		},
		{
			"title":  "Fresh Batch Every Monday",
			"text":   "Order before Sunday evening",
			"image":  "/images/banners/fresh-batch.jpg",
			"active": true,
		},
	}
}
