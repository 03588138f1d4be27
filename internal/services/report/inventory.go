package report

import (
	"ShopPulse/internal/domain/models"
)

// DefaultLowStockThreshold applies when no persisted threshold is configured.
const DefaultLowStockThreshold = 10

// ClassifyStock classifies a stock level against a threshold. Negative stock
// from malformed input classifies as out of stock.
func ClassifyStock(stock, threshold int) string {
	switch {
	case stock <= 0:
		return models.StockLevelOut
	case stock <= threshold:
		return models.StockLevelLow
	default:
		return models.StockLevelIn
	}
}

// BuildInventoryReport classifies every product and tallies the summary.
// Pure: same products and threshold always yield the same report.
func BuildInventoryReport(products []models.Product, threshold int) models.InventoryReport {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	report := models.InventoryReport{
		Threshold: threshold,
		Items:     make([]models.InventoryItem, 0, len(products)),
	}

	for _, p := range products {
		level := ClassifyStock(p.Stock, threshold)
		report.Items = append(report.Items, models.InventoryItem{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			Level:     level,
		})

		switch level {
		case models.StockLevelOut:
			report.Summary.OutOfStock++
		case models.StockLevelLow:
			report.Summary.LowStock++
		default:
			report.Summary.InStock++
		}
	}

	return report
}
