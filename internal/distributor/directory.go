// Package distributor maps product codes to fulfillment partners via
// case-insensitive prefix matching. The directory is static; directory
// order is the precedence order.
package distributor

import (
	"strings"

	"inventory-request-service/internal/models"
)

var directory = []models.DistributorProfile{
	{
		ID: "best-choice-international",
		Office: models.AddressBlock{
			Name:  "Best Choice International Ltd",
			Email: "irenesogood@gmail.com",
			Lines: []string{
				"Block A, Floor 5 , Po Chai Industrial Bldg",
				"#28 Wong Chuk Hnag Road",
				"Aberdeen, Hong Kong",
			},
		},
		Delivery: models.AddressBlock{
			Name:  "Best Choice International Ltd",
			Email: "irenesogood@gmail.com",
			Lines: []string{
				"Block A, Floor 5 , Po Chai Industrial Bldg",
				"#28 Wong Chuk Hnag Road",
				"Aberdeen, Hong Kong",
			},
		},
		ProductCodePrefixes: []string{
			"PKA", "PKI", "SFI", "GFJ", "GFE", "TGE", "SFM", "DGF", "KCPF", "KCPFL",
		},
	},
	{
		ID: "distributor-3",
		Office: models.AddressBlock{
			Name:  "Happy Dog Inc",
			Email: "cathrina@cobbgrill.com.ph",
			Lines: []string{
				"Level 24, Philippine Stock Exchange Tower",
				"One Bonifacio High Street",
				"5th Ave. Cor. 28th St. BGC, Taguig City",
				"Manila, Philippines",
			},
		},
		Delivery: models.AddressBlock{
			Name:  "Nirvasian Fullfillment Centre",
			Email: "cathrina@cobbgrill.com.ph",
			Lines: []string{
				"East Gerodias Street",
				"San Antonio",
				"San Pedro, Laguna 4023",
				"Philippines",
			},
		},
		// EAN-style numeric codes
		ProductCodePrefixes: []string{"600"},
	},
}

// Resolve returns the profile owning a product code, or nil when no prefix
// matches. The first matching profile in directory order wins.
func Resolve(productCode string) *models.DistributorProfile {
	if productCode == "" {
		return nil
	}
	upper := strings.ToUpper(productCode)
	for i := range directory {
		for _, prefix := range directory[i].ProductCodePrefixes {
			if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
				return &directory[i]
			}
		}
	}
	return nil
}

// ResolveForItems returns the profile of the first resolvable item,
// scanning in item order. A cart spanning several distributors collapses
// to the first one found; Distinct lets callers detect and log that case.
func ResolveForItems(items []models.LineItem) *models.DistributorProfile {
	for _, it := range items {
		if d := Resolve(it.ProductID); d != nil {
			return d
		}
	}
	return nil
}

// Distinct returns the ids of every distributor the items resolve to, in
// first-seen order.
func Distinct(items []models.LineItem) []string {
	var ids []string
	seen := map[string]bool{}
	for _, it := range items {
		if d := Resolve(it.ProductID); d != nil && !seen[d.ID] {
			seen[d.ID] = true
			ids = append(ids, d.ID)
		}
	}
	return ids
}
