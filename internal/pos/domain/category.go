package domain

import "strings"

// BusinessType selects the seed category set
type BusinessType string

// Known business types
const (
	BusinessRetail      BusinessType = "retail"
	BusinessRestaurant  BusinessType = "restaurant"
	BusinessGrocery     BusinessType = "grocery"
	BusinessPharmacy    BusinessType = "pharmacy"
	BusinessElectronics BusinessType = "electronics"
)

// defaultCategories holds the seed category list per business type.
var defaultCategories = map[BusinessType][]string{
	BusinessRetail:      {"Clothing", "Shoes", "Accessories", "Electronics", "Other"},
	BusinessRestaurant:  {"Food", "Beverages", "Desserts", "Snacks"},
	BusinessGrocery:     {"Produce", "Dairy", "Bakery", "Beverages", "Household"},
	BusinessPharmacy:    {"Medicine", "Personal Care", "Supplements", "First Aid"},
	BusinessElectronics: {"Phones", "Computers", "Audio", "Accessories"},
}

// SeedCategories returns a fresh copy of the default category set for the
// given business type. Unknown types fall back to the retail set.
func SeedCategories(bt BusinessType) []string {
	seed, ok := defaultCategories[bt]
	if !ok {
		seed = defaultCategories[BusinessRetail]
	}
	return append([]string(nil), seed...)
}

// ContainsCategory reports whether name is in the set, case-insensitively.
func ContainsCategory(categories []string, name string) bool {
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// CategoriesCustomized reports whether the user has diverged from the seed
// lists: a set is considered customized once it holds any category that is
// not part of a known default list.
func CategoriesCustomized(categories []string) bool {
	for _, c := range categories {
		known := false
		for _, seed := range defaultCategories {
			if ContainsCategory(seed, c) {
				known = true
				break
			}
		}
		if !known {
			return true
		}
	}
	return false
}

// ReseedOnBusinessTypeChange applies the business-type switch heuristic:
// an empty or uncustomized category set is replaced with the new type's
// defaults, a customized set is kept as-is.
func ReseedOnBusinessTypeChange(current []string, next BusinessType) ([]string, bool) {
	if len(current) == 0 || !CategoriesCustomized(current) {
		return SeedCategories(next), true
	}
	return current, false
}
