package reporting

import (
	"math"
	"sort"
	"strings"

	"github.com/GomesTenorio/Hanami2025/internal/domain"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/ingesting"
)

const (
	ColumnFinalValue   = "valor_final"
	ColumnQuantity     = "quantidade"
	ColumnProfitMargin = "margem_lucro"
	ColumnProductName  = "nome_produto"
	ColumnRegion       = "regiao"
	ColumnSaleDate     = "data_venda"
	ColumnGender       = "genero_cliente"
	ColumnAge          = "idade_cliente"
	ColumnCity         = "cidade_cliente"
	ColumnState        = "estado_cliente"
)

// group acumula os valores de uma chave de agrupamento
type group[A any] struct {
	key     string
	missing bool
	first   int
	acc     A
}

// groupBy agrupa as linhas em uma única passada. Valores ausentes formam um grupo próprio.
// Os grupos são devolvidos na ordem da primeira aparição.
func groupBy[A any](t *domain.Table, keyColumn int, keyOf func(domain.Value) string, add func(acc *A, row int)) []*group[A] {
	byKey := make(map[string]*group[A])
	var missing *group[A]
	groups := make([]*group[A], 0)

	for row := 0; row < t.Len(); row++ {
		v := t.Value(row, keyColumn)

		var g *group[A]
		if v.IsNull() {
			if missing == nil {
				missing = &group[A]{key: domain.MissingLabel, missing: true, first: row}
				groups = append(groups, missing)
			}
			g = missing
		} else {
			key := keyOf(v)
			g = byKey[key]
			if g == nil {
				g = &group[A]{key: key, first: row}
				byKey[key] = g
				groups = append(groups, g)
			}
		}

		add(&g.acc, row)
	}

	return groups
}

// sortByKey ordena os grupos pela chave em ordem crescente, com o grupo ausente por último
func sortByKey[A any](groups []*group[A]) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].missing != groups[j].missing {
			return groups[j].missing
		}
		return groups[i].key < groups[j].key
	})
}

func rawKey(v domain.Value) string {
	return v.String()
}

func sumColumn(t *domain.Table, column string) float64 {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return 0
	}

	total := 0.0
	for row := 0; row < t.Len(); row++ {
		total += t.Value(row, idx).NumberOrZero()
	}
	return total
}

// SalesSummary soma valor_final e calcula a média por transação
func SalesSummary(t *domain.Table) domain.SalesSummary {
	if t.Len() == 0 {
		return domain.SalesSummary{}
	}

	total := sumColumn(t, ColumnFinalValue)
	count := t.Len()

	return domain.SalesSummary{
		TotalSales:            total,
		TransactionCount:      count,
		AveragePerTransaction: total / float64(count),
	}
}

// FinancialMetrics calcula receita líquida, lucro bruto (valor_final * margem_lucro/100)
// e custo total. Margem ausente ou inválida conta como zero.
func FinancialMetrics(t *domain.Table) domain.FinancialMetrics {
	if t.Len() == 0 {
		return domain.FinancialMetrics{}
	}

	revenue := sumColumn(t, ColumnFinalValue)

	profit := 0.0
	valueIdx, hasValue := t.ColumnIndex(ColumnFinalValue)
	marginIdx, hasMargin := t.ColumnIndex(ColumnProfitMargin)
	if hasValue && hasMargin {
		for row := 0; row < t.Len(); row++ {
			margin := ingesting.ToNumber(t.Value(row, marginIdx)).NumberOrZero() / 100.0
			profit += t.Value(row, valueIdx).NumberOrZero() * margin
		}
	}

	return domain.FinancialMetrics{
		NetRevenue:  revenue,
		GrossProfit: profit,
		TotalCost:   revenue - profit,
	}
}

type productAcc struct {
	quantity float64
	total    float64
}

// ProductAnalysis agrupa por nome_produto somando quantidade e valor_final.
// Campo de ordenação desconhecido usa total_arrecadado; ordem desconhecida usa desc.
func ProductAnalysis(t *domain.Table, sortBy, order string) ([]domain.ProductSales, error) {
	if t.Len() == 0 {
		return []domain.ProductSales{}, nil
	}

	if err := ingesting.RequireColumns(t, []string{ColumnProductName, ColumnQuantity, ColumnFinalValue}); err != nil {
		return nil, err
	}

	nameIdx, _ := t.ColumnIndex(ColumnProductName)
	quantityIdx, _ := t.ColumnIndex(ColumnQuantity)
	valueIdx, _ := t.ColumnIndex(ColumnFinalValue)

	groups := groupBy(t, nameIdx, rawKey, func(acc *productAcc, row int) {
		acc.quantity += ingesting.ToNumber(t.Value(row, quantityIdx)).NumberOrZero()
		acc.total += t.Value(row, valueIdx).NumberOrZero()
	})
	sortByKey(groups)

	products := make([]domain.ProductSales, len(groups))
	missing := make([]bool, len(groups))
	for i, g := range groups {
		products[i] = domain.ProductSales{
			ProductName:    g.key,
			QuantitySold:   int64(math.Trunc(g.acc.quantity)),
			TotalCollected: g.acc.total,
		}
		missing[i] = g.missing
	}

	sortProducts(products, missing, sortBy, order)

	return products, nil
}

func sortProducts(products []domain.ProductSales, missing []bool, sortBy, order string) {
	ascending := strings.ToLower(strings.TrimSpace(order)) == domain.OrderAsc

	type item struct {
		product domain.ProductSales
		missing bool
	}
	items := make([]item, len(products))
	for i := range products {
		items[i] = item{product: products[i], missing: missing[i]}
	}

	var less func(a, b item) bool
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case domain.SortByQuantity:
		less = func(a, b item) bool {
			if ascending {
				return a.product.QuantitySold < b.product.QuantitySold
			}
			return a.product.QuantitySold > b.product.QuantitySold
		}
	case domain.SortByName:
		less = func(a, b item) bool {
			// produto sem nome fica por último nas duas direções
			if a.missing != b.missing {
				return b.missing
			}
			if ascending {
				return a.product.ProductName < b.product.ProductName
			}
			return a.product.ProductName > b.product.ProductName
		}
	default:
		less = func(a, b item) bool {
			if ascending {
				return a.product.TotalCollected < b.product.TotalCollected
			}
			return a.product.TotalCollected > b.product.TotalCollected
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})

	for i := range items {
		products[i] = items[i].product
	}
}

// TopProducts devolve os n produtos de maior total arrecadado
func TopProducts(t *domain.Table, n int) ([]domain.ProductSales, error) {
	products, err := ProductAnalysis(t, domain.SortByTotal, domain.OrderDesc)
	if err != nil {
		return nil, err
	}

	if n >= 0 && len(products) > n {
		products = products[:n]
	}
	return products, nil
}

type regionAcc struct {
	total float64
	count int
}

// RegionalMetrics agrupa por regiao, ordenado por total de vendas decrescente
func RegionalMetrics(t *domain.Table) ([]domain.RegionalMetric, error) {
	if t.Len() == 0 {
		return []domain.RegionalMetric{}, nil
	}

	if err := ingesting.RequireColumns(t, []string{ColumnRegion, ColumnFinalValue}); err != nil {
		return nil, err
	}

	regionIdx, _ := t.ColumnIndex(ColumnRegion)
	valueIdx, _ := t.ColumnIndex(ColumnFinalValue)

	groups := groupBy(t, regionIdx, rawKey, func(acc *regionAcc, row int) {
		acc.total += t.Value(row, valueIdx).NumberOrZero()
		acc.count++
	})
	sortByKey(groups)

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].acc.total > groups[j].acc.total
	})

	metrics := make([]domain.RegionalMetric, len(groups))
	for i, g := range groups {
		average := 0.0
		if g.acc.count > 0 {
			average = g.acc.total / float64(g.acc.count)
		}

		metrics[i] = domain.RegionalMetric{
			Region: g.key,
			RegionStats: domain.RegionStats{
				TotalSales:            g.acc.total,
				TransactionCount:      g.acc.count,
				AveragePerTransaction: average,
			},
		}
	}

	return metrics, nil
}

// RegionalPerformance é a forma indexada por região de RegionalMetrics, na mesma ordem
func RegionalPerformance(t *domain.Table) (domain.RegionalPerformance, error) {
	metrics, err := RegionalMetrics(t)
	if err != nil {
		return domain.RegionalPerformance{}, err
	}

	performance := domain.NewKeyed[domain.RegionStats](len(metrics))
	for _, m := range metrics {
		performance.Set(m.Region, m.RegionStats)
	}
	return performance, nil
}

// CustomerDistribution calcula a distribuição de clientes por gênero, faixa etária e cidade.
// O percentual usa o total de linhas como base.
func CustomerDistribution(t *domain.Table) (domain.CustomerDistribution, error) {
	if t.Len() == 0 {
		return domain.CustomerDistribution{
			Gender:   []domain.DistributionEntry{},
			AgeRange: []domain.DistributionEntry{},
			City:     []domain.DistributionEntry{},
		}, nil
	}

	if err := ingesting.RequireColumns(t, []string{ColumnGender, ColumnAge, ColumnCity}); err != nil {
		return domain.CustomerDistribution{}, err
	}

	genderIdx, _ := t.ColumnIndex(ColumnGender)
	ageIdx, _ := t.ColumnIndex(ColumnAge)
	cityIdx, _ := t.ColumnIndex(ColumnCity)
	total := t.Len()

	gender := countValues(t, total, func(row int) string {
		return strings.ToLower(strings.TrimSpace(t.Value(row, genderIdx).String()))
	})
	city := countValues(t, total, func(row int) string {
		return strings.TrimSpace(t.Value(row, cityIdx).String())
	})

	return domain.CustomerDistribution{
		Gender:   gender,
		AgeRange: ageDistribution(t, ageIdx, total),
		City:     city,
	}, nil
}

// countValues conta os valores por chave, do mais frequente para o menos frequente.
// Empates mantêm a ordem da primeira aparição.
func countValues(t *domain.Table, total int, keyOf func(row int) string) []domain.DistributionEntry {
	counts := make(map[string]int)
	order := make([]string, 0)

	for row := 0; row < t.Len(); row++ {
		key := keyOf(row)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	entries := make([]domain.DistributionEntry, len(order))
	for i, key := range order {
		entries[i] = domain.DistributionEntry{Key: key, Share: share(counts[key], total)}
	}
	return entries
}

// Limites superiores (inclusivos) de cada faixa etária; a primeira faixa inclui o zero
var ageUpperBounds = []float64{17, 24, 34, 44, 54, 64, math.Inf(1)}

// AgeRange devolve o índice da faixa etária da idade, ou -1 se a idade é inválida
func AgeRange(age float64) int {
	if age < 0 || math.IsNaN(age) {
		return -1
	}
	for i, upper := range ageUpperBounds {
		if age <= upper {
			return i
		}
	}
	return -1
}

func ageDistribution(t *domain.Table, ageIdx int, total int) []domain.DistributionEntry {
	counts := make([]int, len(domain.AgeRangeLabels))
	invalid := 0

	for row := 0; row < t.Len(); row++ {
		age, ok := ingesting.ToNumber(t.Value(row, ageIdx)).Number()
		bucket := -1
		if ok {
			bucket = AgeRange(age)
		}

		if bucket < 0 {
			invalid++
			continue
		}
		counts[bucket]++
	}

	entries := make([]domain.DistributionEntry, 0, len(counts)+1)
	for i, label := range domain.AgeRangeLabels {
		entries = append(entries, domain.DistributionEntry{Key: label, Share: share(counts[i], total)})
	}
	if invalid > 0 {
		entries = append(entries, domain.DistributionEntry{Key: domain.MissingLabel, Share: share(invalid, total)})
	}

	return entries
}

func share(count, total int) domain.Share {
	if total <= 0 {
		total = 1
	}
	return domain.Share{Count: count, Percent: float64(count) / float64(total) * 100}
}

// CustomerProfile é a forma indexada de CustomerDistribution
func CustomerProfile(t *domain.Table) (domain.CustomerProfile, error) {
	dist, err := CustomerDistribution(t)
	if err != nil {
		return domain.CustomerProfile{}, err
	}

	return domain.CustomerProfile{
		Gender:   keyedShares(dist.Gender),
		AgeRange: keyedShares(dist.AgeRange),
		City:     keyedShares(dist.City),
	}, nil
}

func keyedShares(entries []domain.DistributionEntry) domain.Keyed[domain.Share] {
	keyed := domain.NewKeyed[domain.Share](len(entries))
	for _, e := range entries {
		keyed.Set(e.Key, e.Share)
	}
	return keyed
}
