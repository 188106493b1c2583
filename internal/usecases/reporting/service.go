// Package reporting calcula os relatórios analíticos sobre o dataset carregado
package reporting

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GomesTenorio/Hanami2025/infrastructure/repository"
	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
)

const DefaultTopProducts = 20

// Reporter expõe os relatórios sobre o dataset atual.
// Cada chamada lê o dataset uma única vez e trabalha sobre essa referência.
type Reporter interface {
	Status(ctx context.Context) domain.DatasetStatus
	SalesSummary(ctx context.Context, period DateRange) (domain.SalesSummary, error)
	FinancialMetrics(ctx context.Context) (domain.FinancialMetrics, error)
	ProductAnalysis(ctx context.Context, sortBy, order string) ([]domain.ProductSales, error)
	RegionalPerformance(ctx context.Context, state string) (domain.RegionalPerformance, error)
	CustomerProfile(ctx context.Context) (domain.CustomerProfile, error)
	BuildReport(ctx context.Context) (*domain.Report, error)
}

type Service struct {
	store       repository.DatasetStore
	topProducts int
	now         func() time.Time
}

func NewService(store repository.DatasetStore, topProducts int) *Service {
	if topProducts <= 0 {
		topProducts = DefaultTopProducts
	}

	return &Service{
		store:       store,
		topProducts: topProducts,
		now:         time.Now,
	}
}

func (s *Service) snapshot() (*domain.Dataset, error) {
	dataset, ok := s.store.Current()
	if !ok {
		return nil, domain.ErrNoDataset
	}
	return dataset, nil
}

func (s *Service) Status(_ context.Context) domain.DatasetStatus {
	dataset, ok := s.store.Current()
	if !ok {
		return domain.StatusOf(nil)
	}
	return domain.StatusOf(dataset)
}

func (s *Service) SalesSummary(ctx context.Context, period DateRange) (domain.SalesSummary, error) {
	if err := period.Validate(); err != nil {
		return domain.SalesSummary{}, err
	}

	dataset, err := s.snapshot()
	if err != nil {
		return domain.SalesSummary{}, err
	}

	table := FilterByDateRange(dataset.Table, ColumnSaleDate, period)
	summary := SalesSummary(table)

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_id":   dataset.ID,
		"rows":         table.Len(),
		"filtered":     !period.IsZero(),
		"total_vendas": summary.TotalSales,
	}).Debug("reporting: resumo de vendas calculado")

	return summary, nil
}

func (s *Service) FinancialMetrics(_ context.Context) (domain.FinancialMetrics, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return domain.FinancialMetrics{}, err
	}
	return FinancialMetrics(dataset.Table), nil
}

func (s *Service) ProductAnalysis(ctx context.Context, sortBy, order string) ([]domain.ProductSales, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	products, err := ProductAnalysis(dataset.Table, sortBy, order)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sort_by": sortBy,
		"order":   order,
		"itens":   len(products),
	}).Info("reporting: análise de produtos gerada")

	return products, nil
}

func (s *Service) RegionalPerformance(ctx context.Context, state string) (domain.RegionalPerformance, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return domain.RegionalPerformance{}, err
	}

	performance, err := RegionalPerformance(FilterByState(dataset.Table, state))
	if err != nil {
		return domain.RegionalPerformance{}, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"estado":  NormalizeState(state),
		"regioes": performance.Len(),
	}).Info("reporting: performance regional gerada")

	return performance, nil
}

func (s *Service) CustomerProfile(_ context.Context) (domain.CustomerProfile, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return domain.CustomerProfile{}, err
	}
	return CustomerProfile(dataset.Table)
}

// BuildReport monta o relatório consolidado. Qualquer falha de agregação falha o relatório inteiro.
func (s *Service) BuildReport(ctx context.Context) (*domain.Report, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table := dataset.Table
	report := &domain.Report{
		GeneratedAt:      s.now().UTC(),
		DatasetID:        dataset.ID,
		OriginalFilename: dataset.OriginalFilename,
		RowCount:         table.Len(),
	}

	var g errgroup.Group

	g.Go(func() error {
		report.SalesSummary = SalesSummary(table)
		return nil
	})
	g.Go(func() error {
		report.FinancialMetrics = FinancialMetrics(table)
		return nil
	})
	g.Go(func() error {
		performance, err := RegionalPerformance(table)
		if err != nil {
			return err
		}
		report.RegionalPerformance = performance
		return nil
	})
	g.Go(func() error {
		products, err := TopProducts(table, s.topProducts)
		if err != nil {
			return err
		}
		report.TopProducts = products
		return nil
	})
	g.Go(func() error {
		profile, err := CustomerProfile(table)
		if err != nil {
			return err
		}
		report.CustomerProfile = profile
		return nil
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithField("dataset_id", dataset.ID).Warn("reporting: falha ao montar relatório")
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_id": dataset.ID,
		"rows":       report.RowCount,
	}).Info("reporting: relatório consolidado gerado")

	return report, nil
}
