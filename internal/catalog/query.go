package catalog

import "sort"

// PagingInfo describes where a result page sits within the full filtered set.
type PagingInfo struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
}

// ProductsPage is the view model for one page of the catalog listing.
type ProductsPage struct {
	Products        []Product  `json:"products"`
	PagingInfo      PagingInfo `json:"pagingInfo"`
	CurrentCategory string     `json:"currentCategory,omitempty"`
}

// ListPage filters products by category (empty category means no filter),
// sorts by product ID ascending and returns the requested page.
//
// Paging is permissive: a page before the first or past the last yields an
// empty page, while PagingInfo still reflects the full filtered set. The page
// number is reported as given, not clamped. pageSize must be positive; that is
// the caller's contract, not validated here.
func ListPage(products []Product, category string, page, pageSize int) ProductsPage {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category == "" || p.Category == category {
			filtered = append(filtered, p)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })

	start := (page - 1) * pageSize
	end := start + pageSize

	var pageItems []Product
	if start >= 0 && start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		pageItems = filtered[start:end]
	}

	// Keep the result independent of the filtered slice.
	out := make([]Product, len(pageItems))
	copy(out, pageItems)

	return ProductsPage{
		Products: out,
		PagingInfo: PagingInfo{
			CurrentPage:  page,
			ItemsPerPage: pageSize,
			TotalItems:   len(filtered),
			TotalPages:   (len(filtered) + pageSize - 1) / pageSize,
		},
		CurrentCategory: category,
	}
}

// CategoryMenu returns the distinct categories present across products,
// sorted ascending. Products without a category are skipped.
func CategoryMenu(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var categories []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
