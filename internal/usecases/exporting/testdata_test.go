package exporting

import (
	"time"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
)

func sampleReport() *domain.Report {
	regions := domain.NewKeyed[domain.RegionStats](2)
	regions.Set("nordeste", domain.RegionStats{TotalSales: 350, TransactionCount: 1, AveragePerTransaction: 350})
	regions.Set("sudeste", domain.RegionStats{TotalSales: 300, TransactionCount: 2, AveragePerTransaction: 150})

	gender := domain.NewKeyed[domain.Share](2)
	gender.Set("f", domain.Share{Count: 2, Percent: 66.66666666666667})
	gender.Set("m", domain.Share{Count: 1, Percent: 33.333333333333336})

	return &domain.Report{
		GeneratedAt:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		DatasetID:           "ds-1",
		OriginalFilename:    "vendas.csv",
		RowCount:            3,
		SalesSummary:        domain.SalesSummary{TotalSales: 650, TransactionCount: 3, AveragePerTransaction: 216.66666666666666},
		FinancialMetrics:    domain.FinancialMetrics{NetRevenue: 650, GrossProfit: 155, TotalCost: 495},
		RegionalPerformance: regions,
		TopProducts: []domain.ProductSales{
			{ProductName: "Mochila", QuantitySold: 1, TotalCollected: 350},
		},
		CustomerProfile: domain.CustomerProfile{
			Gender:   gender,
			AgeRange: domain.NewKeyed[domain.Share](0),
			City:     domain.NewKeyed[domain.Share](0),
		},
	}
}
