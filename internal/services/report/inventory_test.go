package report

import (
	"testing"

	"ShopPulse/internal/domain/models"
)

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		stock     int
		threshold int
		want      string
	}{
		{0, 10, models.StockLevelOut},
		{-3, 10, models.StockLevelOut},
		{5, 10, models.StockLevelLow},
		{10, 10, models.StockLevelLow},
		{11, 10, models.StockLevelIn},
		{20, 10, models.StockLevelIn},
		{3, 3, models.StockLevelLow},
	}

	for _, tc := range cases {
		if got := ClassifyStock(tc.stock, tc.threshold); got != tc.want {
			t.Fatalf("stock=%d threshold=%d: got %s want %s", tc.stock, tc.threshold, got, tc.want)
		}
	}
}

func TestBuildInventoryReport(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "A", Stock: 0},
		{ID: "b", Name: "B", Stock: 5},
		{ID: "c", Name: "C", Stock: 50},
	}

	report := BuildInventoryReport(products, 10)
	if report.Threshold != 10 {
		t.Fatalf("threshold: got %d", report.Threshold)
	}
	if len(report.Items) != 3 {
		t.Fatalf("items: got %d", len(report.Items))
	}
	if report.Summary.OutOfStock != 1 || report.Summary.LowStock != 1 || report.Summary.InStock != 1 {
		t.Fatalf("summary: %+v", report.Summary)
	}
}

func TestBuildInventoryReportDefaultThreshold(t *testing.T) {
	products := []models.Product{{ID: "a", Stock: 10}}

	report := BuildInventoryReport(products, 0)
	if report.Threshold != DefaultLowStockThreshold {
		t.Fatalf("threshold: got %d", report.Threshold)
	}
	if report.Items[0].Level != models.StockLevelLow {
		t.Fatalf("level: got %s", report.Items[0].Level)
	}
}
