package services

import "github.com/tekrabyte/waui-sub001/entity"

// ResolveCategoryName looks a category up by id and returns its display name.
func ResolveCategoryName(id string, categories []entity.Category) (string, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// MatchesCategory reports whether a product is tagged with the category, either by id
// or by the resolved display name. Upstream data uses both. When the name did not
// resolve only the id branch applies.
func MatchesCategory(p entity.Product, id, name string, nameResolved bool) bool {
	if p.Category == id {
		return true
	}
	return nameResolved && p.Category == name
}

// FilterProducts narrows products to the selected category. "all" returns the input as is.
func FilterProducts(selected string, products []entity.Product, categories []entity.Category) []entity.Product {
	if selected == entity.AllCategoryID {
		return products
	}

	name, ok := ResolveCategoryName(selected, categories)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(p, selected, name, ok) {
			out = append(out, p)
		}
	}
	return out
}
