package report

import (
	"sort"

	"ShopPulse/internal/domain/models"
)

const unknownProductName = "Unknown product"

// TopProducts ranks products by revenue accumulated from eligible orders'
// line items. Display names resolve product snapshot first, then the name
// captured on the line item, then a generic placeholder. Sorting is stable:
// equal revenues keep their first-encountered order. Entries with zero
// revenue are not ranked. The result holds at most limit entries and is
// never padded.
func TopProducts(eligible []models.Order, products []models.Product, limit int) []models.TopProduct {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	index := make(map[string]int) // productID -> position in ranked
	ranked := make([]models.TopProduct, 0)

	for _, o := range eligible {
		for _, item := range o.Items {
			i, seen := index[item.ProductID]
			if !seen {
				index[item.ProductID] = len(ranked)
				i = len(ranked)
				ranked = append(ranked, models.TopProduct{
					ProductID: item.ProductID,
					Name:      resolveProductName(byID, item),
				})
			}
			ranked[i].Sales += item.Quantity
			ranked[i].Revenue += float64(item.Quantity) * item.UnitPrice
		}
	}

	withRevenue := ranked[:0]
	for _, p := range ranked {
		if p.Revenue > 0 {
			withRevenue = append(withRevenue, p)
		}
	}

	sort.SliceStable(withRevenue, func(a, b int) bool {
		return withRevenue[a].Revenue > withRevenue[b].Revenue
	})

	if limit > 0 && len(withRevenue) > limit {
		withRevenue = withRevenue[:limit]
	}
	return withRevenue
}

func resolveProductName(byID map[string]models.Product, item models.OrderItem) string {
	if p, ok := byID[item.ProductID]; ok && p.Name != "" {
		return p.Name
	}
	if item.CapturedName != "" {
		return item.CapturedName
	}
	return unknownProductName
}

const unknownCategoryName = "Unknown category"

// TopCategories ranks categories by how many catalog products they contain,
// across the full catalog rather than order activity. Percentage is the
// category's share of the total product count. Ties keep first-encountered
// order; the result is truncated to limit and never padded.
func TopCategories(products []models.Product, categories []models.Category, limit int) []models.TopCategory {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	index := make(map[string]int)
	ranked := make([]models.TopCategory, 0)

	for _, p := range products {
		i, seen := index[p.CategoryID]
		if !seen {
			name, ok := names[p.CategoryID]
			if !ok || name == "" {
				name = unknownCategoryName
			}
			index[p.CategoryID] = len(ranked)
			i = len(ranked)
			ranked = append(ranked, models.TopCategory{
				CategoryID: p.CategoryID,
				Name:       name,
			})
		}
		ranked[i].Count++
	}

	if total := len(products); total > 0 {
		for i := range ranked {
			ranked[i].Percentage = float64(ranked[i].Count) / float64(total) * 100
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Count > ranked[b].Count
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
